package usecase

import (
	"context"
	"fmt"
	"strings"

	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type TargetInput struct {
	SalesmanNama  string          `json:"salesman_nama"`
	Bulan         int             `json:"bulan"`
	Tahun         int             `json:"tahun"`
	TargetQty     decimal.Decimal `json:"target_qty"`
	TargetTagihan decimal.Decimal `json:"target_tagihan"`
}

type TargetEdit struct {
	ID            uint            `json:"id"`
	TargetQty     decimal.Decimal `json:"target_qty"`
	TargetTagihan decimal.Decimal `json:"target_tagihan"`
}

type TargetView struct {
	model.Target
	NamaBulan string `json:"nama_bulan"`
}

type TargetUsecase struct {
	targets repository.TargetRepository
	users   repository.UserRepository
}

func NewTargetUsecase(targets repository.TargetRepository, users repository.UserRepository) *TargetUsecase {
	return &TargetUsecase{targets: targets, users: users}
}

// List diurutkan tahun & bulan terbaru lebih dulu, lalu nama salesman.
func (u *TargetUsecase) List(ctx context.Context) ([]TargetView, error) {
	targets, err := u.targets.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]TargetView, 0, len(targets))
	for _, t := range targets {
		v := TargetView{Target: t}
		if t.Bulan >= 1 && t.Bulan <= 12 {
			v.NamaBulan = NamaBulan[t.Bulan-1]
		}
		views = append(views, v)
	}
	return views, nil
}

// Save membuat target baru atau menimpa target periode yang sama.
func (u *TargetUsecase) Save(ctx context.Context, in TargetInput) (*model.Target, error) {
	in.SalesmanNama = strings.TrimSpace(in.SalesmanNama)
	if in.SalesmanNama == "" {
		return nil, fmt.Errorf("%w: salesman wajib dipilih", ErrValidation)
	}
	if in.Bulan < 1 || in.Bulan > 12 || !validYear(in.Tahun) {
		return nil, fmt.Errorf("%w: bulan %d tahun %d", ErrInvalidPeriod, in.Bulan, in.Tahun)
	}
	if err := validateAmounts(in.TargetQty, in.TargetTagihan); err != nil {
		return nil, err
	}

	exists, err := u.users.ExistsSalesman(ctx, in.SalesmanNama)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: salesman %s tidak terdaftar", ErrValidation, in.SalesmanNama)
	}

	target := &model.Target{
		SalesmanNama:  in.SalesmanNama,
		Bulan:         in.Bulan,
		Tahun:         in.Tahun,
		TargetQty:     in.TargetQty,
		TargetTagihan: in.TargetTagihan,
	}
	if err := u.targets.Upsert(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

// BulkUpdate menyimpan perubahan dari editor tabel target (hanya qty & tagihan yang bisa diubah).
func (u *TargetUsecase) BulkUpdate(ctx context.Context, edits []TargetEdit) error {
	if len(edits) == 0 {
		return nil
	}
	targets := make([]model.Target, 0, len(edits))
	for _, e := range edits {
		if e.ID == 0 {
			return fmt.Errorf("%w: id target wajib diisi", ErrValidation)
		}
		if err := validateAmounts(e.TargetQty, e.TargetTagihan); err != nil {
			return err
		}
		targets = append(targets, model.Target{ID: e.ID, TargetQty: e.TargetQty, TargetTagihan: e.TargetTagihan})
	}
	return u.targets.UpdateMany(ctx, targets)
}

func validateAmounts(qty, tagihan decimal.Decimal) error {
	if qty.IsNegative() || tagihan.IsNegative() {
		return fmt.Errorf("%w: target tidak boleh negatif", ErrValidation)
	}
	return nil
}
