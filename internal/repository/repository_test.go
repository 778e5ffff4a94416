package repository_test

import (
	"context"
	"testing"
	"time"

	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/repository"
	"sales-performance-backend/internal/testhelpers"

	"github.com/shopspring/decimal"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func trx(nomdok, tgl, rep, cust string, qty, net int64) model.Transaksi {
	return model.Transaksi{
		Nomdok:  nomdok,
		TglSls:  date(tgl),
		RepSls:  rep,
		CustID:  cust,
		NamaCst: "Toko " + cust,
		KodeItm: "I1",
		NamaItm: "Item I1",
		QtySls:  decimal.NewFromInt(qty),
		NetSls:  decimal.NewFromInt(net),
	}
}

func TestTransaksiRepository(t *testing.T) {
	testhelpers.SkipIfNoDatabase(t)
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	repo := repository.NewTransaksiRepository(db)
	rows := []model.Transaksi{
		trx("D1", "2024-03-05", "Alice", "C1", 30, 500),
		trx("D2", "2024-03-06", "Alice", "C2", 20, 0),
		trx("D3", "2024-04-01", "Alice", "C3", 10, 200),
		trx("D4", "2024-03-31", "Carol", "C4", 45, 900),
	}

	n, err := repo.InsertIfAbsent(ctx, rows)
	if err != nil || n != 4 {
		t.Fatalf("InsertIfAbsent = %d, %v", n, err)
	}
	n, err = repo.InsertIfAbsent(ctx, rows[:2])
	if err != nil || n != 0 {
		t.Fatalf("InsertIfAbsent duplicate = %d, %v", n, err)
	}

	start, end := date("2024-03-01"), date("2024-04-01")
	realisasi, err := repo.SumRealized(ctx, "Alice", start, end)
	if err != nil {
		t.Fatalf("SumRealized: %v", err)
	}
	if !realisasi.Qty.Equal(decimal.NewFromInt(30)) {
		t.Errorf("qty = %s, want 30", realisasi.Qty)
	}
	if len(realisasi.CustomerIDs) != 1 || realisasi.CustomerIDs[0] != "C1" {
		t.Errorf("customers = %v", realisasi.CustomerIDs)
	}

	empty, err := repo.SumRealized(ctx, "Eko", start, end)
	if err != nil || !empty.Qty.IsZero() {
		t.Errorf("SumRealized(Eko) = %v, %v", empty, err)
	}

	list, err := repo.QueryRange(ctx, []string{"Alice", "Carol"}, start, end)
	if err != nil {
		t.Fatalf("QueryRange: %v", err)
	}
	if len(list) != 2 || list[0].Nomdok != "D1" || list[1].Nomdok != "D4" {
		t.Errorf("QueryRange = %+v", list)
	}
}

func TestUploadRepositoryAssignsPengampu(t *testing.T) {
	testhelpers.SkipIfNoDatabase(t)
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	uploads := repository.NewUploadRepository(db)
	customers := repository.NewCustomerRepository(db)

	res, err := uploads.ImportCustomers(ctx, []model.Customer{
		{CustID: "C1", NamaCst: "Toko Satu", Alamat: "-"},
		{CustID: "C2", NamaCst: "Toko Dua", Alamat: "-"},
	}, 1)
	if err != nil || res.Written != 2 {
		t.Fatalf("ImportCustomers = %+v, %v", res, err)
	}
	if err := customers.UpdateMapping(ctx, "C2", "Dewi"); err != nil {
		t.Fatalf("UpdateMapping: %v", err)
	}

	res, err = uploads.ImportTransaksi(ctx, []model.Transaksi{
		trx("D1", "2024-03-05", "Alice", "C1", 30, 500),
		trx("D1", "2024-03-05", "Alice", "C1", 30, 500),
		trx("D2", "2024-03-06", "Alice", "C2", 5, 50),
	}, 2)
	if err != nil {
		t.Fatalf("ImportTransaksi: %v", err)
	}
	if res.Written != 2 || res.Duplicates != 1 || len(res.Failed) != 0 {
		t.Errorf("result = %+v", res)
	}
	if res.Assigned != 1 {
		t.Errorf("assigned = %d, want 1", res.Assigned)
	}

	c1, err := customers.FindByID(ctx, "C1")
	if err != nil || c1.Pengampu() != "Alice" {
		t.Errorf("C1 = %+v, %v", c1, err)
	}
	c2, err := customers.FindByID(ctx, "C2")
	if err != nil || c2.Pengampu() != "Dewi" {
		t.Errorf("C2 = %+v, %v", c2, err)
	}
}
