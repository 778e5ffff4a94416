package usecase_test

import (
	"time"

	"sales-performance-backend/internal/logger"
	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/testhelpers"
	"sales-performance-backend/internal/usecase"
)

func init() {
	logger.Nop()
}

var march2024 = usecase.Period{Bulan: 3, Tahun: 2024}

// newFixture: tim Budi (Alice, Carol), Dewi salesman tim lain, Eko supervisor tanpa anggota.
func newFixture() *testhelpers.Store {
	s := testhelpers.NewStore()
	s.AddMasterSPV("Budi")
	s.AddMasterSPV("Eko")
	s.AddMasterSPV("Fajar")

	s.AddUser("admin", model.RoleAdmin, "Administrator", "", "admin123")
	s.AddUser("budi", model.RoleSPV, "Budi", "", "budi123")
	s.AddUser("eko", model.RoleSPV, "Eko", "", "eko123")
	s.AddUser("alice", model.RoleSalesman, "Alice", "Budi", "123456")
	s.AddUser("carol", model.RoleSalesman, "Carol", "Budi", "123456")
	s.AddUser("dewi", model.RoleSalesman, "Dewi", "Fajar", "123456")

	s.AddTarget("Alice", 3, 2024, "100", "5000000")
	s.AddTarget("Carol", 3, 2024, "50", "2500000")

	s.AddCustomer("C1", "Toko Satu", "Alice")
	s.AddCustomer("C2", "Toko Dua", "Alice")
	s.AddCustomer("C3", "Toko Tiga", "Alice")
	s.AddCustomer("C4", "Toko Empat", "Carol")

	s.AddTransaksi("D1", "2024-03-05", "Alice", "C1", "I1", "30", "500")
	s.AddTransaksi("D2", "2024-03-06", "Alice", "C2", "I2", "20", "0")
	s.AddTransaksi("D3", "2024-04-01", "Alice", "C3", "I1", "10", "200")
	s.AddTransaksi("D4", "2024-03-31", "Carol", "C4", "I1", "45", "900")
	return s
}

func newPerformance(s *testhelpers.Store) *usecase.PerformanceUsecase {
	return usecase.NewPerformanceUsecase(s.Users(), s.Targets(), s.Transaksi(), s.Customers())
}

func session(username, role, realName string) usecase.Session {
	return usecase.Session{Username: username, Role: role, RealName: realName}
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time { return time.Date(year, month, day, 10, 0, 0, 0, time.UTC) }
}
