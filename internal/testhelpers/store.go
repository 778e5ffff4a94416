package testhelpers

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Store adalah pengganti database di unit test. Perilakunya mengikuti repository gorm:
// transaksi duplikat diabaikan, net_sls = 0 tidak dihitung, mapping otomatis hanya mengisi yang kosong.
type Store struct {
	mu        sync.Mutex
	users     []model.User
	spvs      []model.MasterSPV
	customers map[string]model.Customer
	targets   []model.Target
	transaksi []model.Transaksi
	nextID    uint

	// FailCustID membuat penulisan baris dengan cust_id ini gagal (simulasi error database per baris).
	FailCustID string
}

func NewStore() *Store {
	return &Store{customers: make(map[string]model.Customer)}
}

func (s *Store) Users() repository.UserRepository          { return userRepo{s} }
func (s *Store) MasterSPV() repository.MasterSPVRepository { return spvRepo{s} }
func (s *Store) Customers() repository.CustomerRepository  { return customerRepo{s} }
func (s *Store) Targets() repository.TargetRepository      { return targetRepo{s} }
func (s *Store) Transaksi() repository.TransaksiRepository { return transaksiRepo{s} }
func (s *Store) Uploads() repository.UploadRepository      { return uploadRepo{s} }

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// --- seed helpers ---

func (s *Store) AddUser(username, role, realName, namaSPV, password string) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := model.User{Username: username, Password: string(hashed), Role: role, RealName: realName}
	u.ID = s.id()
	if namaSPV != "" {
		spv := namaSPV
		u.NamaSPV = &spv
	}
	s.users = append(s.users, u)
	return u
}

func (s *Store) AddMasterSPV(nama string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spvs = append(s.spvs, model.MasterSPV{ID: s.id(), NamaSPV: nama})
}

func (s *Store) AddCustomer(custID, nama, salesman string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := model.Customer{CustID: custID, NamaCst: nama, Alamat: "-"}
	if salesman != "" {
		c.SalesmanPengampu = &salesman
	}
	s.customers[custID] = c
}

func (s *Store) AddTarget(salesman string, bulan, tahun int, qty, tagihan string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targets = append(s.targets, model.Target{
		ID:            s.id(),
		SalesmanNama:  salesman,
		Bulan:         bulan,
		Tahun:         tahun,
		TargetQty:     decimal.RequireFromString(qty),
		TargetTagihan: decimal.RequireFromString(tagihan),
	})
}

// AddTransaksi menambah satu transaksi; tgl dalam format yyyy-mm-dd.
func (s *Store) AddTransaksi(nomdok, tgl, rep, custID, kodeItm, qty, net string) {
	d, err := time.Parse("2006-01-02", tgl)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertTransaksi(model.Transaksi{
		Nomdok:  nomdok,
		TglSls:  d,
		RepSls:  rep,
		CustID:  custID,
		NamaCst: "Toko " + custID,
		KodeItm: kodeItm,
		NamaItm: "Item " + kodeItm,
		QtySls:  decimal.RequireFromString(qty),
		NetSls:  decimal.RequireFromString(net),
	})
}

func (s *Store) Customer(custID string) (model.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[custID]
	return c, ok
}

func (s *Store) TransaksiCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transaksi)
}

func transaksiKey(t model.Transaksi) string {
	return strings.Join([]string{t.Nomdok, t.KodeItm, t.QtySls.StringFixed(2), t.NetSls.StringFixed(2)}, "|")
}

func (s *Store) insertTransaksi(t model.Transaksi) bool {
	key := transaksiKey(t)
	for _, existing := range s.transaksi {
		if transaksiKey(existing) == key {
			return false
		}
	}
	t.ID = s.id()
	s.transaksi = append(s.transaksi, t)
	return true
}

func (s *Store) assign(custID, salesman string) bool {
	c, ok := s.customers[custID]
	if !ok || salesman == "" || c.Pengampu() != "" {
		return false
	}
	c.SalesmanPengampu = &salesman
	s.customers[custID] = c
	return true
}

func (s *Store) sortedCustomers() []model.Customer {
	list := make([]model.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CustID < list[j].CustID })
	return list
}

// --- users ---

type userRepo struct{ s *Store }

func (r userRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r userRepo) ListTeamMembers(_ context.Context, namaSPV string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var names []string
	for _, u := range r.s.users {
		if u.NamaSPV != nil && *u.NamaSPV == namaSPV {
			names = append(names, u.RealName)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (r userRepo) ListAllSalesmen(_ context.Context) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seen := make(map[string]bool)
	var names []string
	for _, u := range r.s.users {
		if u.Role == model.RoleSalesman && !seen[u.RealName] {
			seen[u.RealName] = true
			names = append(names, u.RealName)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (r userRepo) ListByRole(_ context.Context, role string) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []model.User
	for _, u := range r.s.users {
		if u.Role == role {
			list = append(list, u)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].RealName < list[j].RealName })
	return list, nil
}

func (r userRepo) ExistsSalesman(_ context.Context, realName string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Role == model.RoleSalesman && u.RealName == realName {
			return true, nil
		}
	}
	return false, nil
}

func (r userRepo) Create(_ context.Context, user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.s.id()
	r.s.users = append(r.s.users, *user)
	return nil
}

// --- master spv ---

type spvRepo struct{ s *Store }

func (r spvRepo) List(_ context.Context) ([]model.MasterSPV, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := append([]model.MasterSPV(nil), r.s.spvs...)
	sort.Slice(list, func(i, j int) bool { return list[i].NamaSPV < list[j].NamaSPV })
	return list, nil
}

func (r spvRepo) Create(_ context.Context, spv *model.MasterSPV) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	spv.ID = r.s.id()
	r.s.spvs = append(r.s.spvs, *spv)
	return nil
}

func (r spvRepo) Exists(_ context.Context, nama string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, spv := range r.s.spvs {
		if spv.NamaSPV == nama {
			return true, nil
		}
	}
	return false, nil
}

// --- customers ---

type customerRepo struct{ s *Store }

func (r customerRepo) ListBySalesman(_ context.Context, salesman string) ([]model.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []model.Customer
	for _, c := range r.s.sortedCustomers() {
		if c.Pengampu() == salesman {
			list = append(list, c)
		}
	}
	return list, nil
}

func (r customerRepo) Search(_ context.Context, text string) ([]model.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	text = strings.ToLower(strings.TrimSpace(text))
	var list []model.Customer
	for _, c := range r.s.sortedCustomers() {
		if text == "" ||
			strings.Contains(strings.ToLower(c.NamaCst), text) ||
			strings.Contains(strings.ToLower(c.Alamat), text) ||
			strings.Contains(strings.ToLower(c.CustID), text) {
			list = append(list, c)
		}
	}
	return list, nil
}

func (r customerRepo) FindByID(_ context.Context, custID string) (*model.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[custID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r customerRepo) UpdateMapping(_ context.Context, custID, salesman string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[custID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.SalesmanPengampu = nil
	if salesman != "" {
		c.SalesmanPengampu = &salesman
	}
	r.s.customers[custID] = c
	return nil
}

func (r customerRepo) AssignIfUnassigned(_ context.Context, custID, salesman string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.assign(custID, salesman), nil
}

func (r customerRepo) Upsert(_ context.Context, customers []model.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range customers {
		r.s.upsertCustomer(c)
	}
	return nil
}

func (s *Store) upsertCustomer(c model.Customer) {
	if existing, ok := s.customers[c.CustID]; ok {
		existing.NamaCst, existing.Alamat = c.NamaCst, c.Alamat
		s.customers[c.CustID] = existing
		return
	}
	s.customers[c.CustID] = c
}

// --- targets ---

type targetRepo struct{ s *Store }

func (r targetRepo) Get(_ context.Context, salesman string, bulan, tahun int) (*model.Target, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.targets {
		if t.SalesmanNama == salesman && t.Bulan == bulan && t.Tahun == tahun {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

func (r targetRepo) Upsert(_ context.Context, target *model.Target) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, t := range r.s.targets {
		if t.SalesmanNama == target.SalesmanNama && t.Bulan == target.Bulan && t.Tahun == target.Tahun {
			r.s.targets[i].TargetQty = target.TargetQty
			r.s.targets[i].TargetTagihan = target.TargetTagihan
			target.ID = t.ID
			return nil
		}
	}
	target.ID = r.s.id()
	r.s.targets = append(r.s.targets, *target)
	return nil
}

func (r targetRepo) UpdateMany(_ context.Context, targets []model.Target) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, edit := range targets {
		for i := range r.s.targets {
			if r.s.targets[i].ID == edit.ID {
				r.s.targets[i].TargetQty = edit.TargetQty
				r.s.targets[i].TargetTagihan = edit.TargetTagihan
			}
		}
	}
	return nil
}

func (r targetRepo) List(_ context.Context) ([]model.Target, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := append([]model.Target(nil), r.s.targets...)
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Tahun != b.Tahun {
			return a.Tahun > b.Tahun
		}
		if a.Bulan != b.Bulan {
			return a.Bulan > b.Bulan
		}
		return a.SalesmanNama < b.SalesmanNama
	})
	return list, nil
}

// --- transaksi ---

type transaksiRepo struct{ s *Store }

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func (r transaksiRepo) SumRealized(_ context.Context, salesman string, start, end time.Time) (repository.Realisasi, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res := repository.Realisasi{Qty: decimal.Zero}
	seen := make(map[string]bool)
	for _, t := range r.s.transaksi {
		if t.RepSls != salesman || t.NetSls.IsZero() || !inRange(t.TglSls, start, end) {
			continue
		}
		res.Qty = res.Qty.Add(t.QtySls)
		if !seen[t.CustID] {
			seen[t.CustID] = true
			res.CustomerIDs = append(res.CustomerIDs, t.CustID)
		}
	}
	sort.Strings(res.CustomerIDs)
	return res, nil
}

func (r transaksiRepo) QueryRange(_ context.Context, salesmen []string, start, end time.Time) ([]model.Transaksi, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := make(map[string]bool, len(salesmen))
	for _, s := range salesmen {
		wanted[s] = true
	}
	var rows []model.Transaksi
	for _, t := range r.s.transaksi {
		if wanted[t.RepSls] && !t.NetSls.IsZero() && inRange(t.TglSls, start, end) {
			rows = append(rows, t)
		}
	}
	return rows, nil
}

func (r transaksiRepo) InsertIfAbsent(_ context.Context, rows []model.Transaksi) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, t := range rows {
		if r.s.insertTransaksi(t) {
			n++
		}
	}
	return n, nil
}

// --- uploads ---

type uploadRepo struct{ s *Store }

var errInjected = errors.New("simulated write failure")

func (r uploadRepo) ImportCustomers(_ context.Context, rows []model.Customer, _ int) (repository.BatchResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var res repository.BatchResult
	for i, c := range rows {
		if r.s.FailCustID != "" && c.CustID == r.s.FailCustID {
			res.Failed = append(res.Failed, repository.RowFailure{Index: i, Reason: "gagal simpan: " + errInjected.Error()})
			continue
		}
		r.s.upsertCustomer(c)
		res.Written++
	}
	return res, nil
}

func (r uploadRepo) ImportTransaksi(_ context.Context, rows []model.Transaksi, _ int) (repository.BatchResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var res repository.BatchResult
	seen := make(map[string]bool)
	for i, t := range rows {
		if r.s.FailCustID != "" && t.CustID == r.s.FailCustID {
			res.Failed = append(res.Failed, repository.RowFailure{Index: i, Reason: "gagal simpan: " + errInjected.Error()})
			continue
		}
		if r.s.insertTransaksi(t) {
			res.Written++
		} else {
			res.Duplicates++
		}
		if !seen[t.CustID] {
			seen[t.CustID] = true
			if r.s.assign(t.CustID, t.RepSls) {
				res.Assigned++
			}
		}
	}
	return res, nil
}
