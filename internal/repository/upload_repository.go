package repository

import (
	"context"
	"fmt"

	"sales-performance-backend/internal/model"

	"gorm.io/gorm"
)

// RowFailure menandai baris input (index 0-based pada slice yang dikirim) yang gagal ditulis.
type RowFailure struct {
	Index  int
	Reason string
}

type BatchResult struct {
	Written    int64 // baris baru (transaksi) atau baris yang di-upsert (customer)
	Duplicates int64
	Assigned   int64 // customer yang otomatis mendapat pengampu dari transaksi
	Failed     []RowFailure
}

// UploadRepository menulis hasil upload file dalam satu transaksi database per file.
// Statement dikirim per batch; batch yang gagal diulang per baris di bawah savepoint
// sehingga satu baris rusak tidak membatalkan seluruh file.
type UploadRepository interface {
	ImportCustomers(ctx context.Context, rows []model.Customer, batchSize int) (BatchResult, error)
	ImportTransaksi(ctx context.Context, rows []model.Transaksi, batchSize int) (BatchResult, error)
}

type uploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &uploadRepository{db}
}

func (r *uploadRepository) ImportCustomers(ctx context.Context, rows []model.Customer, batchSize int) (BatchResult, error) {
	var result BatchResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return eachBatch(tx, len(rows), batchSize, &result,
			func(db *gorm.DB, from, to int) (int64, error) {
				if err := upsertCustomers(db, rows[from:to]); err != nil {
					return 0, err
				}
				return int64(to - from), nil
			},
		)
	})
	return result, err
}

func (r *uploadRepository) ImportTransaksi(ctx context.Context, rows []model.Transaksi, batchSize int) (BatchResult, error) {
	var result BatchResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := eachBatch(tx, len(rows), batchSize, &result,
			func(db *gorm.DB, from, to int) (int64, error) {
				return insertTransaksiIgnore(db, rows[from:to])
			},
		)
		if err != nil {
			return err
		}

		// Mapping otomatis: customer yang belum punya pengampu diisi rep_sls transaksi pertamanya di file ini
		failed := make(map[int]bool, len(result.Failed))
		for _, f := range result.Failed {
			failed[f.Index] = true
		}
		seen := make(map[string]bool)
		for i, row := range rows {
			if failed[i] || row.RepSls == "" || seen[row.CustID] {
				continue
			}
			seen[row.CustID] = true
			ok, err := assignIfUnassigned(tx, row.CustID, row.RepSls)
			if err != nil {
				return err
			}
			if ok {
				result.Assigned++
			}
		}
		return nil
	})
	return result, err
}

// eachBatch menjalankan write per batch; jika satu batch gagal, batch tsb diulang per baris.
func eachBatch(tx *gorm.DB, total, batchSize int, result *BatchResult, write func(db *gorm.DB, from, to int) (int64, error)) error {
	if batchSize <= 0 {
		batchSize = 200
	}
	for from := 0; from < total; from += batchSize {
		to := from + batchSize
		if to > total {
			to = total
		}

		if err := tx.SavePoint("sp_batch").Error; err != nil {
			return err
		}
		n, err := write(tx, from, to)
		if err == nil {
			result.Written += n
			result.Duplicates += int64(to-from) - n
			continue
		}
		if err := tx.RollbackTo("sp_batch").Error; err != nil {
			return err
		}

		for i := from; i < to; i++ {
			if err := tx.SavePoint("sp_row").Error; err != nil {
				return err
			}
			n, err := write(tx, i, i+1)
			if err != nil {
				if rbErr := tx.RollbackTo("sp_row").Error; rbErr != nil {
					return rbErr
				}
				result.Failed = append(result.Failed, RowFailure{Index: i, Reason: fmt.Sprintf("gagal simpan: %v", err)})
				continue
			}
			result.Written += n
			result.Duplicates += 1 - n
		}
	}
	return nil
}
