package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/repository"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type RekapLine struct {
	Kode string          `json:"kode"`
	Nama string          `json:"nama"`
	Qty  decimal.Decimal `json:"qty"`
	Net  decimal.Decimal `json:"net"`
}

type Rekap struct {
	Dari        string          `json:"dari"`
	Sampai      string          `json:"sampai"`
	Salesmen    []string        `json:"salesmen"`
	PerCustomer []RekapLine     `json:"per_customer"`
	PerItem     []RekapLine     `json:"per_item"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	Message     string          `json:"message,omitempty"`
}

type RekapUsecase struct {
	users     repository.UserRepository
	transaksi repository.TransaksiRepository
}

func NewRekapUsecase(users repository.UserRepository, transaksi repository.TransaksiRepository) *RekapUsecase {
	return &RekapUsecase{users: users, transaksi: transaksi}
}

// Salesmen adalah pilihan filter rekap: seluruh salesman dalam cakupan session.
func (u *RekapUsecase) Salesmen(ctx context.Context, s Session) ([]string, error) {
	_, scope, err := Scope(ctx, u.users, s)
	return scope, err
}

// ParseDateRange membaca "dari" dan "sampai" (yyyy-mm-dd). Default: tanggal 1 bulan berjalan s/d hari ini.
func ParseDateRange(dari, sampai string, now time.Time) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start, end := today.AddDate(0, 0, 1-today.Day()), today

	var err error
	if dari = strings.TrimSpace(dari); dari != "" {
		if start, err = time.Parse(dateLayout, dari); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: tanggal awal %q", ErrInvalidPeriod, dari)
		}
	}
	if sampai = strings.TrimSpace(sampai); sampai != "" {
		if end, err = time.Parse(dateLayout, sampai); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: tanggal akhir %q", ErrInvalidPeriod, sampai)
		}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: tanggal akhir sebelum tanggal awal", ErrInvalidPeriod)
	}
	return start, end, nil
}

// Rekap merangkum transaksi [dari, sampai] (kedua tanggal inklusif) per customer dan per item.
// salesman kosong berarti seluruh cakupan; salesman di luar cakupan ditolak.
func (u *RekapUsecase) Rekap(ctx context.Context, s Session, dari, sampai time.Time, salesman string) (*Rekap, error) {
	if sampai.Before(dari) {
		return nil, fmt.Errorf("%w: tanggal akhir sebelum tanggal awal", ErrInvalidPeriod)
	}

	_, scope, err := Scope(ctx, u.users, s)
	if err != nil {
		return nil, err
	}

	if salesman = strings.TrimSpace(salesman); salesman != "" {
		if !contains(scope, salesman) {
			return nil, fmt.Errorf("%w: salesman %s di luar cakupan anda", ErrForbidden, salesman)
		}
		scope = []string{salesman}
	}

	rows, err := u.transaksi.QueryRange(ctx, scope, dari, sampai.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	r := BuildRekap(rows)
	r.Dari, r.Sampai = dari.Format(dateLayout), sampai.Format(dateLayout)
	r.Salesmen = scope
	if r.Salesmen == nil {
		r.Salesmen = []string{}
	}
	switch {
	case len(scope) == 0:
		r.Message = "Silakan pilih Salesman terlebih dahulu."
	case len(rows) == 0:
		r.Message = "Tidak ada data transaksi pada periode yang dipilih."
	}
	return r, nil
}

// BuildRekap mengelompokkan transaksi. Per customer diurutkan net terbesar, per item qty terbesar;
// nilai yang sama diurutkan berdasarkan kode. Baris net 0 tidak ikut dihitung.
func BuildRekap(rows []model.Transaksi) *Rekap {
	type key struct{ kode, nama string }

	group := func(keyOf func(model.Transaksi) key) []RekapLine {
		index := make(map[key]int)
		lines := []RekapLine{}
		for _, t := range rows {
			if t.NetSls.IsZero() {
				continue
			}
			k := keyOf(t)
			i, ok := index[k]
			if !ok {
				i = len(lines)
				index[k] = i
				lines = append(lines, RekapLine{Kode: k.kode, Nama: k.nama})
			}
			lines[i].Qty = lines[i].Qty.Add(t.QtySls)
			lines[i].Net = lines[i].Net.Add(t.NetSls)
		}
		return lines
	}

	r := &Rekap{
		PerCustomer: group(func(t model.Transaksi) key { return key{t.CustID, t.NamaCst} }),
		PerItem:     group(func(t model.Transaksi) key { return key{t.KodeItm, t.NamaItm} }),
		GrandTotal:  decimal.Zero,
	}

	sort.SliceStable(r.PerCustomer, func(i, j int) bool {
		a, b := r.PerCustomer[i], r.PerCustomer[j]
		if !a.Net.Equal(b.Net) {
			return a.Net.GreaterThan(b.Net)
		}
		return a.Kode < b.Kode
	})
	sort.SliceStable(r.PerItem, func(i, j int) bool {
		a, b := r.PerItem[i], r.PerItem[j]
		if !a.Qty.Equal(b.Qty) {
			return a.Qty.GreaterThan(b.Qty)
		}
		return a.Kode < b.Kode
	})

	for _, line := range r.PerCustomer {
		r.GrandTotal = r.GrandTotal.Add(line.Net)
	}
	return r
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
