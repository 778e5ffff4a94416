package importer_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"sales-performance-backend/internal/importer"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestRead_UnsupportedExtension(t *testing.T) {
	_, err := importer.Read("data.pdf", strings.NewReader("x"))
	if !errors.Is(err, importer.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestRead_CSVNormalizesHeaderAndSkipsBlankRows(t *testing.T) {
	data := "\xef\xbb\xbf CUST_ID ,Tgl_Sls\nC1,2024-03-01\n,\nC2,2024-03-02\n"
	table, err := importer.Read("trx.CSV", strings.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if table.Header[0] != "cust_id" || table.Header[1] != "tgl_sls" {
		t.Errorf("header = %v", table.Header)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if table.Rows[1].Line != 4 {
		t.Errorf("line of second data row = %d, want 4", table.Rows[1].Line)
	}
}

func TestRead_CSVSemicolon(t *testing.T) {
	table, err := importer.Read("x.csv", strings.NewReader("cust_id;nama_cst\nC1;Toko A\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := table.Rows[0].Cell(1); got != "Toko A" {
		t.Errorf("cell = %q", got)
	}
}

func TestCustomers_KeywordMapping(t *testing.T) {
	data := "Kode ID,Nama Toko,Alamat Lengkap,Salesman\n" +
		"C1,Toko A,Jl. Mawar,Alice\n" +
		",Toko Tanpa ID,Jl. X,\n" +
		"C2,,,\n" +
		"C1,Toko A Baru,Jl. Melati,Bob\n"
	table, err := importer.Read("cust.csv", strings.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	records, skipped, err := importer.Customers(table)
	if err != nil {
		t.Fatalf("Customers: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	c1 := records[0].Customer
	if c1.CustID != "C1" || c1.NamaCst != "Toko A Baru" || c1.Alamat != "Jl. Melati" {
		t.Errorf("C1 merged wrongly: %+v", c1)
	}
	if c1.Pengampu() != "Alice" {
		t.Errorf("C1 salesman = %q, want first row's Alice", c1.Pengampu())
	}

	c2 := records[1].Customer
	if c2.NamaCst != "-" || c2.Alamat != "-" || c2.SalesmanPengampu != nil {
		t.Errorf("C2 defaults wrong: %+v", c2)
	}

	if len(skipped) != 1 || skipped[0].Row != 3 {
		t.Errorf("skipped = %+v", skipped)
	}
}

func TestCustomers_MissingID(t *testing.T) {
	table, _ := importer.Read("c.csv", strings.NewReader("nama,alamat\nA,B\n"))
	_, _, err := importer.Customers(table)
	if !errors.Is(err, importer.ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
}

func TestTransaksi_MissingColumns(t *testing.T) {
	table, _ := importer.Read("t.csv", strings.NewReader("cust_id,rep_sls\nC1,Alice\n"))
	_, _, err := importer.Transaksi(table)
	if !errors.Is(err, importer.ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
	if !strings.Contains(err.Error(), "tgl_sls") || !strings.Contains(err.Error(), "net_sls") {
		t.Errorf("error should list missing columns: %v", err)
	}
}

func TestTransaksi_RowsAndSkips(t *testing.T) {
	data := "nomdok,tgl_sls,rep_sls,cust_id,kode_itm,qty_sls,net_sls\n" +
		"D1,2024-03-05,Alice,C1,I1,30,500\n" +
		"D2,bukan tanggal,Alice,C1,I1,1,1\n" +
		"D3,2024-03-06,,C1,I1,1,1\n" +
		"D4,15/03/2024,Alice,C2,I2,,\n" +
		"D5,2024-03-07,Alice,C3,I3,abc,1\n"
	table, err := importer.Read("t.csv", strings.NewReader(data))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	records, skipped, err := importer.Transaksi(table)
	if err != nil {
		t.Fatalf("Transaksi: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if !records[0].Transaksi.QtySls.Equal(decimal.NewFromInt(30)) {
		t.Errorf("qty = %s", records[0].Transaksi.QtySls)
	}
	if !records[1].Transaksi.NetSls.IsZero() {
		t.Errorf("empty net should be 0, got %s", records[1].Transaksi.NetSls)
	}
	if want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC); !records[1].Transaksi.TglSls.Equal(want) {
		t.Errorf("tgl = %v, want %v", records[1].Transaksi.TglSls, want)
	}

	wantRows := []int{3, 4, 6}
	if len(skipped) != len(wantRows) {
		t.Fatalf("skipped = %+v", skipped)
	}
	for i, row := range wantRows {
		if skipped[i].Row != row {
			t.Errorf("skipped[%d].Row = %d, want %d", i, skipped[i].Row, row)
		}
	}
}

func TestTransaksi_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"CUST_ID", "TGL_SLS", "REP_SLS", "QTY_SLS", "NET_SLS", "NAMA_ITM"},
		{"C1", "2024-03-05", "Alice", 30, 500.5, "Sabun"},
		{"C2", "45366", "Bob", 2, 0, "Sikat"},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	table, err := importer.Read("penjualan.xlsx", buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	records, skipped, err := importer.Transaksi(table)
	if err != nil {
		t.Fatalf("Transaksi: %v", err)
	}
	if len(skipped) != 0 || len(records) != 2 {
		t.Fatalf("records=%d skipped=%+v", len(records), skipped)
	}
	if !records[0].Transaksi.NetSls.Equal(decimal.RequireFromString("500.5")) {
		t.Errorf("net = %s", records[0].Transaksi.NetSls)
	}
	if records[0].Transaksi.NamaItm != "Sabun" {
		t.Errorf("nama_itm = %q", records[0].Transaksi.NamaItm)
	}
	if want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC); !records[1].Transaksi.TglSls.Equal(want) {
		t.Errorf("serial date = %v, want %v", records[1].Transaksi.TglSls, want)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"12", "12"},
		{"12,5", "12.5"},
		{" 1 000.255 ", "1000.26"},
	}
	for _, tt := range tests {
		got, err := importer.ParseAmount(tt.in)
		if err != nil {
			t.Errorf("ParseAmount(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
