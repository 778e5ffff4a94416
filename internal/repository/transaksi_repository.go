package repository

import (
	"context"
	"time"

	"sales-performance-backend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Realisasi adalah hasil agregasi penjualan satu salesman dalam satu periode.
type Realisasi struct {
	Qty         decimal.Decimal
	CustomerIDs []string
}

type TransaksiRepository interface {
	SumRealized(ctx context.Context, salesman string, start, end time.Time) (Realisasi, error)
	QueryRange(ctx context.Context, salesmen []string, start, end time.Time) ([]model.Transaksi, error)
	InsertIfAbsent(ctx context.Context, rows []model.Transaksi) (int64, error)
}

type transaksiRepository struct {
	db *gorm.DB
}

func NewTransaksiRepository(db *gorm.DB) TransaksiRepository {
	return &transaksiRepository{db}
}

// SumRealized menjumlahkan qty_sls dan mengumpulkan cust_id unik untuk tgl_sls di [start, end).
// Baris dengan net_sls = 0 (retur/batal) tidak dihitung.
func (r *transaksiRepository) SumRealized(ctx context.Context, salesman string, start, end time.Time) (Realisasi, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.Transaksi{}).
			Where("rep_sls = ? AND tgl_sls >= ? AND tgl_sls < ? AND net_sls <> 0", salesman, sqlDate(start), sqlDate(end))
	}

	var res Realisasi
	if err := base().Select("COALESCE(SUM(qty_sls), 0)").Row().Scan(&res.Qty); err != nil {
		return Realisasi{}, err
	}
	if err := base().Distinct().Order("cust_id asc").Pluck("cust_id", &res.CustomerIDs).Error; err != nil {
		return Realisasi{}, err
	}
	return res, nil
}

// QueryRange mengambil transaksi (net_sls <> 0) milik salesmen dengan tgl_sls di [start, end).
func (r *transaksiRepository) QueryRange(ctx context.Context, salesmen []string, start, end time.Time) ([]model.Transaksi, error) {
	var rows []model.Transaksi
	if len(salesmen) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Where("rep_sls IN ? AND tgl_sls >= ? AND tgl_sls < ? AND net_sls <> 0", salesmen, sqlDate(start), sqlDate(end)).
		Order("tgl_sls asc").Order("id asc").
		Find(&rows).Error
	return rows, err
}

func (r *transaksiRepository) InsertIfAbsent(ctx context.Context, rows []model.Transaksi) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	return insertTransaksiIgnore(r.db.WithContext(ctx), rows)
}

// insertTransaksiIgnore mengembalikan jumlah baris yang benar-benar masuk; duplikat
// (nomdok, kode_itm, qty_sls, net_sls) diabaikan tanpa error.
func insertTransaksiIgnore(db *gorm.DB, rows []model.Transaksi) (int64, error) {
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	return res.RowsAffected, res.Error
}

// sqlDate mengirim batas periode sebagai literal tanggal agar perbandingan dengan kolom DATE
// tidak tergeser zona waktu koneksi.
func sqlDate(t time.Time) string {
	return t.Format("2006-01-02")
}
