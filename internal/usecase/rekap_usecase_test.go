package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/usecase"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRekap_Admin(t *testing.T) {
	store := newFixture()
	uc := usecase.NewRekapUsecase(store.Users(), store.Transaksi())

	r, err := uc.Rekap(context.Background(), session("admin", model.RoleAdmin, "Administrator"), day("2024-03-01"), day("2024-03-31"), "")
	if err != nil {
		t.Fatalf("Rekap: %v", err)
	}

	if len(r.PerCustomer) != 2 || r.PerCustomer[0].Kode != "C4" || r.PerCustomer[1].Kode != "C1" {
		t.Fatalf("per customer = %+v", r.PerCustomer)
	}
	if len(r.PerItem) != 1 || !r.PerItem[0].Qty.Equal(dec("75")) || !r.PerItem[0].Net.Equal(dec("1400")) {
		t.Errorf("per item = %+v", r.PerItem)
	}
	if !r.GrandTotal.Equal(dec("1400")) {
		t.Errorf("grand total = %s", r.GrandTotal)
	}
	if r.Dari != "2024-03-01" || r.Sampai != "2024-03-31" {
		t.Errorf("range = %s..%s", r.Dari, r.Sampai)
	}
}

func TestRekap_EndDateInclusive(t *testing.T) {
	store := newFixture()
	uc := usecase.NewRekapUsecase(store.Users(), store.Transaksi())
	admin := session("admin", model.RoleAdmin, "Administrator")

	r, _ := uc.Rekap(context.Background(), admin, day("2024-03-31"), day("2024-03-31"), "")
	if len(r.PerCustomer) != 1 || r.PerCustomer[0].Kode != "C4" {
		t.Errorf("single day range = %+v", r.PerCustomer)
	}

	r, _ = uc.Rekap(context.Background(), admin, day("2024-03-01"), day("2024-03-30"), "")
	if len(r.PerCustomer) != 1 || r.PerCustomer[0].Kode != "C1" {
		t.Errorf("range before 31st = %+v", r.PerCustomer)
	}
}

func TestRekap_SalesmanFilter(t *testing.T) {
	store := newFixture()
	uc := usecase.NewRekapUsecase(store.Users(), store.Transaksi())
	budi := session("budi", model.RoleSPV, "Budi")

	r, err := uc.Rekap(context.Background(), budi, day("2024-03-01"), day("2024-03-31"), "Alice")
	if err != nil {
		t.Fatalf("Rekap: %v", err)
	}
	if len(r.Salesmen) != 1 || !r.GrandTotal.Equal(dec("500")) {
		t.Errorf("filtered rekap = %+v", r)
	}

	_, err = uc.Rekap(context.Background(), budi, day("2024-03-01"), day("2024-03-31"), "Dewi")
	if !errors.Is(err, usecase.ErrForbidden) {
		t.Errorf("expected ErrForbidden for salesman outside team, got %v", err)
	}

	alice := session("alice", model.RoleSalesman, "Alice")
	if _, err := uc.Rekap(context.Background(), alice, day("2024-03-01"), day("2024-03-31"), "Carol"); !errors.Is(err, usecase.ErrForbidden) {
		t.Errorf("salesman should not see colleague, got %v", err)
	}
}

func TestRekap_EmptyScopeAndNoData(t *testing.T) {
	store := newFixture()
	uc := usecase.NewRekapUsecase(store.Users(), store.Transaksi())

	r, err := uc.Rekap(context.Background(), session("eko", model.RoleSPV, "Eko"), day("2024-03-01"), day("2024-03-31"), "")
	if err != nil {
		t.Fatalf("Rekap: %v", err)
	}
	if len(r.PerCustomer) != 0 || !r.GrandTotal.IsZero() || r.Message == "" {
		t.Errorf("empty scope rekap = %+v", r)
	}

	r, _ = uc.Rekap(context.Background(), session("dewi", model.RoleSalesman, "Dewi"), day("2024-03-01"), day("2024-03-31"), "")
	if r.Message != "Tidak ada data transaksi pada periode yang dipilih." {
		t.Errorf("message = %q", r.Message)
	}
}

func TestRekap_InvalidRange(t *testing.T) {
	store := newFixture()
	uc := usecase.NewRekapUsecase(store.Users(), store.Transaksi())

	_, err := uc.Rekap(context.Background(), session("admin", model.RoleAdmin, "A"), day("2024-03-10"), day("2024-03-01"), "")
	if !errors.Is(err, usecase.ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestParseDateRange(t *testing.T) {
	now := time.Date(2024, 3, 17, 15, 0, 0, 0, time.UTC)

	start, end, err := usecase.ParseDateRange("", "", now)
	if err != nil {
		t.Fatalf("ParseDateRange: %v", err)
	}
	if !start.Equal(day("2024-03-01")) || !end.Equal(day("2024-03-17")) {
		t.Errorf("default range = %v..%v", start, end)
	}

	if _, _, err := usecase.ParseDateRange("17-03-2024", "", now); !errors.Is(err, usecase.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
	if _, _, err := usecase.ParseDateRange("2024-03-10", "2024-03-09", now); !errors.Is(err, usecase.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod for reversed range, got %v", err)
	}
}

func TestBuildRekap_TiesOrderedByCode(t *testing.T) {
	rows := []model.Transaksi{
		{CustID: "B", NamaCst: "Toko B", KodeItm: "X", QtySls: dec("1"), NetSls: dec("100")},
		{CustID: "A", NamaCst: "Toko A", KodeItm: "Y", QtySls: dec("1"), NetSls: dec("100")},
		{CustID: "A", NamaCst: "Toko A", KodeItm: "Y", QtySls: dec("5"), NetSls: dec("0")},
	}
	r := usecase.BuildRekap(rows)
	if r.PerCustomer[0].Kode != "A" || r.PerItem[0].Kode != "X" {
		t.Errorf("tie order: customers %+v items %+v", r.PerCustomer, r.PerItem)
	}
	if !r.GrandTotal.Equal(dec("200")) {
		t.Errorf("grand total = %s", r.GrandTotal)
	}
}
