package usecase

import (
	"context"
	"fmt"
	"io"

	"sales-performance-backend/internal/importer"
	"sales-performance-backend/internal/logger"
	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	ImportCustomer  = "customer"
	ImportTransaksi = "transaksi"
)

// ImportReport dikembalikan ke admin setelah upload. Baris yang dilewati tidak membatalkan baris lain.
type ImportReport struct {
	BatchID    string              `json:"batch_id"`
	Jenis      string              `json:"jenis"`
	FileName   string              `json:"file_name"`
	TotalRows  int                 `json:"total_rows"`
	Inserted   int64               `json:"inserted"`
	Duplicates int64               `json:"duplicates"`
	Assigned   int64               `json:"assigned"`
	Skipped    []importer.RowError `json:"skipped"`
}

type ImportUsecase struct {
	uploads   repository.UploadRepository
	batchSize int
}

func NewImportUsecase(uploads repository.UploadRepository, batchSize int) *ImportUsecase {
	return &ImportUsecase{uploads: uploads, batchSize: batchSize}
}

// ImportCustomers meng-upsert master pelanggan. Customer lama hanya diperbarui nama & alamatnya,
// salesman pengampu tidak ditimpa.
func (u *ImportUsecase) ImportCustomers(ctx context.Context, filename string, r io.Reader) (*ImportReport, error) {
	table, err := importer.Read(filename, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	records, skipped, err := importer.Customers(table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	report := newReport(ImportCustomer, filename, len(table.Rows), skipped)

	rows := make([]model.Customer, len(records))
	lines := make([]int, len(records))
	for i, rec := range records {
		rows[i], lines[i] = rec.Customer, rec.Line
	}

	res, err := u.uploads.ImportCustomers(ctx, rows, u.batchSize)
	if err != nil {
		return nil, err
	}
	report.apply(res, lines)
	report.log()
	return report, nil
}

// ImportTransaksi menyimpan transaksi baru (duplikat diabaikan) dan mengisi mapping customer
// yang masih kosong dengan rep_sls transaksinya.
func (u *ImportUsecase) ImportTransaksi(ctx context.Context, filename string, r io.Reader) (*ImportReport, error) {
	table, err := importer.Read(filename, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	records, skipped, err := importer.Transaksi(table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	report := newReport(ImportTransaksi, filename, len(table.Rows), skipped)

	rows := make([]model.Transaksi, len(records))
	lines := make([]int, len(records))
	for i, rec := range records {
		rows[i], lines[i] = rec.Transaksi, rec.Line
	}

	res, err := u.uploads.ImportTransaksi(ctx, rows, u.batchSize)
	if err != nil {
		return nil, err
	}
	report.apply(res, lines)
	report.log()
	return report, nil
}

func newReport(jenis, filename string, total int, skipped []importer.RowError) *ImportReport {
	if skipped == nil {
		skipped = []importer.RowError{}
	}
	return &ImportReport{
		BatchID:   uuid.NewString(),
		Jenis:     jenis,
		FileName:  filename,
		TotalRows: total,
		Skipped:   skipped,
	}
}

func (r *ImportReport) apply(res repository.BatchResult, lines []int) {
	r.Inserted = res.Written
	r.Duplicates = res.Duplicates
	r.Assigned = res.Assigned
	for _, f := range res.Failed {
		r.Skipped = append(r.Skipped, importer.RowError{Row: lines[f.Index], Reason: f.Reason})
	}
}

func (r *ImportReport) log() {
	logger.Log.Info().
		Str("batch_id", r.BatchID).
		Str("jenis", r.Jenis).
		Str("file", r.FileName).
		Int("total", r.TotalRows).
		Int64("inserted", r.Inserted).
		Int64("duplicates", r.Duplicates).
		Int64("assigned", r.Assigned).
		Int("skipped", len(r.Skipped)).
		Msg("upload selesai")
}
