package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"sales-performance-backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// RowError adalah baris file yang dilewati beserta alasannya.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type CustomerRecord struct {
	Line     int
	Customer model.Customer
}

type TransaksiRecord struct {
	Line      int
	Transaksi model.Transaksi
}

// customerColumn memetakan header bebas ke kolom master_customer. Urutan pengecekan penting:
// "alamat_id" jatuh ke alamat, bukan cust_id.
func customerColumn(h string) string {
	switch {
	case strings.Contains(h, "alam") || strings.Contains(h, "addr"):
		return "alamat"
	case strings.Contains(h, "kd") || strings.Contains(h, "id"):
		return "cust_id"
	case strings.Contains(h, "nama"):
		return "nama_cst"
	case strings.Contains(h, "sale"):
		return "salesman_pengampu"
	}
	return ""
}

// Customers membaca master pelanggan. Bila cust_id muncul lebih dari sekali, nama & alamat
// diambil dari baris terakhir sedangkan salesman dari baris pertama yang mengisinya.
func Customers(t *Table) ([]CustomerRecord, []RowError, error) {
	cols := make(map[string]int)
	for i, h := range t.Header {
		name := customerColumn(h)
		if _, taken := cols[name]; name == "" || taken {
			continue
		}
		cols[name] = i
	}
	if _, ok := cols["cust_id"]; !ok {
		return nil, nil, fmt.Errorf("%w: [cust_id]", ErrMissingColumns)
	}

	get := func(r Row, name string) string {
		idx, ok := cols[name]
		if !ok {
			return ""
		}
		return r.Cell(idx)
	}

	var (
		records []CustomerRecord
		skipped []RowError
		index   = make(map[string]int)
	)
	for _, r := range t.Rows {
		id := get(r, "cust_id")
		if id == "" {
			skipped = append(skipped, RowError{Row: r.Line, Reason: "cust_id kosong"})
			continue
		}

		c := model.Customer{
			CustID:  id,
			NamaCst: orDash(get(r, "nama_cst")),
			Alamat:  orDash(get(r, "alamat")),
		}
		if s := get(r, "salesman_pengampu"); s != "" {
			c.SalesmanPengampu = &s
		}

		if pos, dup := index[id]; dup {
			prev := &records[pos].Customer
			prev.NamaCst, prev.Alamat = c.NamaCst, c.Alamat
			if prev.SalesmanPengampu == nil {
				prev.SalesmanPengampu = c.SalesmanPengampu
			}
			continue
		}
		index[id] = len(records)
		records = append(records, CustomerRecord{Line: r.Line, Customer: c})
	}
	return records, skipped, nil
}

var transaksiRequired = []string{"cust_id", "tgl_sls", "rep_sls", "qty_sls", "net_sls"}

// Transaksi membaca file penjualan. Nama kolom harus persis (setelah trim + lower case).
func Transaksi(t *Table) ([]TransaksiRecord, []RowError, error) {
	cols := make(map[string]int)
	for i, h := range t.Header {
		if _, taken := cols[h]; !taken {
			cols[h] = i
		}
	}

	var missing []string
	for _, c := range transaksiRequired {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: %v", ErrMissingColumns, missing)
	}

	get := func(r Row, name string) string {
		idx, ok := cols[name]
		if !ok {
			return ""
		}
		return r.Cell(idx)
	}

	var (
		records []TransaksiRecord
		skipped []RowError
	)
	for _, r := range t.Rows {
		custID, rep := get(r, "cust_id"), get(r, "rep_sls")
		if custID == "" {
			skipped = append(skipped, RowError{Row: r.Line, Reason: "cust_id kosong"})
			continue
		}
		if rep == "" {
			skipped = append(skipped, RowError{Row: r.Line, Reason: "rep_sls kosong"})
			continue
		}

		tgl, err := ParseDate(get(r, "tgl_sls"))
		if err != nil {
			skipped = append(skipped, RowError{Row: r.Line, Reason: err.Error()})
			continue
		}
		qty, err := ParseAmount(get(r, "qty_sls"))
		if err != nil {
			skipped = append(skipped, RowError{Row: r.Line, Reason: "qty_sls: " + err.Error()})
			continue
		}
		net, err := ParseAmount(get(r, "net_sls"))
		if err != nil {
			skipped = append(skipped, RowError{Row: r.Line, Reason: "net_sls: " + err.Error()})
			continue
		}

		records = append(records, TransaksiRecord{Line: r.Line, Transaksi: model.Transaksi{
			Nomdok:  get(r, "nomdok"),
			TglSls:  tgl,
			RepSls:  rep,
			NamaSPV: get(r, "nama_spv"),
			CustID:  custID,
			NamaCst: get(r, "nama_cst"),
			KodeItm: get(r, "kode_itm"),
			NamaItm: get(r, "nama_itm"),
			QtySls:  qty,
			NetSls:  net,
		}})
	}
	return records, skipped, nil
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
}

// ParseDate menerima tanggal ISO, format Indonesia (dd/mm/yyyy) atau serial tanggal Excel.
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("tgl_sls kosong")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return dateOnly(t), nil
		}
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return dateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("tgl_sls tidak valid: %q", v)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseAmount membaca angka qty/net; sel kosong dianggap 0. Hasil dibulatkan 2 desimal
// sesuai kolom DECIMAL(18,2) agar kunci unik transaksi stabil.
func ParseAmount(v string) (decimal.Decimal, error) {
	v = strings.ReplaceAll(strings.TrimSpace(v), " ", "")
	if v == "" {
		return decimal.Zero, nil
	}
	if strings.Count(v, ",") == 1 && !strings.Contains(v, ".") {
		v = strings.Replace(v, ",", ".", 1)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("angka tidak valid: %q", v)
	}
	return d.Round(2), nil
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
