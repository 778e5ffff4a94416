// Package importer membaca file upload (csv / xlsx) dan mengubahnya menjadi baris customer atau transaksi.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("format file tidak didukung, gunakan .csv atau .xlsx")
	ErrEmptyFile         = errors.New("file kosong atau tidak memiliki header")
	ErrMissingColumns    = errors.New("kolom wajib hilang")
)

// Table adalah isi sheet pertama / file csv. Header sudah dinormalisasi (trim + lower case).
type Table struct {
	Header []string
	Rows   []Row
}

// Row menyimpan nomor baris asli di file (header = baris 1) agar laporan error bisa ditunjuk ke sumbernya.
type Row struct {
	Line  int
	Cells []string
}

// Cell mengembalikan nilai kolom ke-col, "" bila kolom tidak ada atau baris lebih pendek dari header.
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r.Cells) {
		return ""
	}
	return strings.TrimSpace(r.Cells[col])
}

// Read memilih parser berdasarkan ekstensi nama file.
func Read(filename string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r)
	case ".xlsx", ".xlsm":
		return readXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

func readCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	if semicolonSeparated(data) {
		reader.Comma = ';'
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("gagal membaca csv: %w", err)
	}
	return newTable(records)
}

// semicolonSeparated mendeteksi csv hasil export Excel locale Indonesia yang memakai ';'.
func semicolonSeparated(data []byte) bool {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	return bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(","))
}

func readXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca excel: %w", err)
	}
	defer f.Close()

	// RawCellValue: tanggal datang sebagai serial Excel, angka tanpa format ribuan
	rows, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("gagal membaca sheet: %w", err)
	}
	return newTable(rows)
}

func newTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = normalizeHeader(h)
	}

	t := &Table{Header: header}
	for i, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		t.Rows = append(t.Rows, Row{Line: i + 2, Cells: rec})
	}
	return t, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
