package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var NamaBulan = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// YearCandidates adalah tahun yang bisa dipilih di dashboard.
var YearCandidates = []int{2024, 2025, 2026, 2027}

// Bila tahun berjalan di luar daftar, default jatuh ke kandidat indeks ini (bukan tahun terdekat).
const defaultYearIndex = 2

type Period struct {
	Bulan int `json:"bulan"`
	Tahun int `json:"tahun"`
}

// Start adalah hari pertama bulan (inklusif).
func (p Period) Start() time.Time {
	return time.Date(p.Tahun, time.Month(p.Bulan), 1, 0, 0, 0, 0, time.UTC)
}

// End adalah hari pertama bulan berikutnya (eksklusif).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

func (p Period) NamaBulan() string {
	return NamaBulan[p.Bulan-1]
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.NamaBulan(), p.Tahun)
}

// MonthIndex mengubah nama bulan (atau angka "1".."12") menjadi 1-12. Nama yang tidak dikenali
// menghasilkan bulan berjalan.
func MonthIndex(name string, now time.Time) int {
	name = strings.TrimSpace(name)
	for i, n := range NamaBulan {
		if strings.EqualFold(n, name) {
			return i + 1
		}
	}
	if m, err := strconv.Atoi(name); err == nil && m >= 1 && m <= 12 {
		return m
	}
	return int(now.Month())
}

func DefaultYear(now time.Time) int {
	for _, y := range YearCandidates {
		if y == now.Year() {
			return y
		}
	}
	return YearCandidates[defaultYearIndex]
}

func validYear(y int) bool {
	for _, c := range YearCandidates {
		if c == y {
			return true
		}
	}
	return false
}

// ParsePeriod membaca query bulan & tahun. Tahun kosong memakai DefaultYear, tahun di luar
// YearCandidates ditolak.
func ParsePeriod(bulan, tahun string, now time.Time) (Period, error) {
	p := Period{Bulan: MonthIndex(bulan, now), Tahun: DefaultYear(now)}

	if tahun = strings.TrimSpace(tahun); tahun != "" {
		y, err := strconv.Atoi(tahun)
		if err != nil || !validYear(y) {
			return Period{}, fmt.Errorf("%w: tahun %q tidak tersedia", ErrInvalidPeriod, tahun)
		}
		p.Tahun = y
	}
	return p, nil
}

// PeriodOptions dipakai klien untuk mengisi pilihan bulan & tahun.
type PeriodOptions struct {
	Bulan        []string `json:"bulan"`
	Tahun        []int    `json:"tahun"`
	DefaultBulan string   `json:"default_bulan"`
	DefaultTahun int      `json:"default_tahun"`
}

func Options(now time.Time) PeriodOptions {
	return PeriodOptions{
		Bulan:        NamaBulan[:],
		Tahun:        YearCandidates,
		DefaultBulan: NamaBulan[now.Month()-1],
		DefaultTahun: DefaultYear(now),
	}
}
