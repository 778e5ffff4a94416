package usecase

import (
	"context"
	"sort"
	"time"

	"sales-performance-backend/internal/model"
	"sales-performance-backend/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	StatusOnTrack = "On Track"
	StatusBehind  = "Behind"

	// persentase minimal agar dianggap On Track
	onTrackThreshold = 80.0
)

const (
	CallPlanPending    = "pending"
	CallPlanAllOrdered = "all_ordered"
	CallPlanNoMapping  = "no_mapping"
)

const MsgEmptyTeam = "Anda belum memiliki Salesman yang terdaftar di bawah Anda."

type CallPlan struct {
	Status    string           `json:"status"`
	Message   string           `json:"message,omitempty"`
	Customers []model.Customer `json:"customers"`
}

type Scorecard struct {
	Salesman      string          `json:"salesman"`
	TargetQty     decimal.Decimal `json:"target_qty"`
	TargetTagihan decimal.Decimal `json:"target_tagihan"`
	RealisasiQty  decimal.Decimal `json:"realisasi_qty"`
	Persentase    float64         `json:"persentase"`
	Status        string          `json:"status"`
	CallPlan      CallPlan        `json:"call_plan"`
}

type RankRow struct {
	Salesman     string          `json:"salesman"`
	TargetQty    decimal.Decimal `json:"target_qty"`
	RealisasiQty decimal.Decimal `json:"realisasi_qty"`
	Persentase   float64         `json:"persentase"`
}

type TeamSummary struct {
	TargetQty     decimal.Decimal `json:"target_qty"`
	RealisasiQty  decimal.Decimal `json:"realisasi_qty"`
	TargetTagihan decimal.Decimal `json:"target_tagihan"`
	Persentase    float64         `json:"persentase"`
	Ranking       []RankRow       `json:"ranking"`
}

type Dashboard struct {
	Period     Period       `json:"periode"`
	NamaBulan  string       `json:"nama_bulan"`
	TeamView   bool         `json:"team_view"`
	Team       *TeamSummary `json:"team,omitempty"`
	Scorecards []Scorecard  `json:"scorecards"`
	Message    string       `json:"message,omitempty"`
}

// Attainment = realisasi / target * 100. Target nol (atau belum diisi) selalu menghasilkan 0.
func Attainment(realized, target decimal.Decimal) float64 {
	if !target.IsPositive() {
		return 0
	}
	pct, _ := realized.Div(target).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

func Status(pct float64) string {
	if pct >= onTrackThreshold {
		return StatusOnTrack
	}
	return StatusBehind
}

type PerformanceUsecase struct {
	users     repository.UserRepository
	targets   repository.TargetRepository
	transaksi repository.TransaksiRepository
	customers repository.CustomerRepository
	now       func() time.Time
}

func NewPerformanceUsecase(
	users repository.UserRepository,
	targets repository.TargetRepository,
	transaksi repository.TransaksiRepository,
	customers repository.CustomerRepository,
) *PerformanceUsecase {
	return &PerformanceUsecase{
		users:     users,
		targets:   targets,
		transaksi: transaksi,
		customers: customers,
		now:       time.Now,
	}
}

// Now dipakai handler untuk default periode; bisa diganti di test lewat SetClock.
func (u *PerformanceUsecase) Now() time.Time {
	return u.now()
}

func (u *PerformanceUsecase) SetClock(now func() time.Time) {
	u.now = now
}

// Dashboard menyusun ringkasan tim (khusus admin/spv) dan scorecard per salesman dalam cakupan session.
func (u *PerformanceUsecase) Dashboard(ctx context.Context, s Session, p Period) (*Dashboard, error) {
	role, scope, err := Scope(ctx, u.users, s)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		Period:     p,
		NamaBulan:  p.NamaBulan(),
		TeamView:   role.TeamView(),
		Scorecards: []Scorecard{},
	}
	if len(scope) == 0 {
		d.Message = MsgEmptyTeam
		return d, nil
	}

	for _, salesman := range scope {
		card, err := u.Scorecard(ctx, salesman, p)
		if err != nil {
			return nil, err
		}
		d.Scorecards = append(d.Scorecards, card)
	}

	if d.TeamView {
		d.Team = summarizeTeam(d.Scorecards)
	}
	return d, nil
}

// Scorecard menghitung target, realisasi, persentase, status, dan call plan satu salesman.
func (u *PerformanceUsecase) Scorecard(ctx context.Context, salesman string, p Period) (Scorecard, error) {
	card := Scorecard{Salesman: salesman}

	target, err := u.targets.Get(ctx, salesman, p.Bulan, p.Tahun)
	if err != nil {
		return card, err
	}
	if target != nil {
		card.TargetQty = target.TargetQty
		card.TargetTagihan = target.TargetTagihan
	}

	realisasi, err := u.transaksi.SumRealized(ctx, salesman, p.Start(), p.End())
	if err != nil {
		return card, err
	}
	card.RealisasiQty = realisasi.Qty
	card.Persentase = Attainment(realisasi.Qty, card.TargetQty)
	card.Status = Status(card.Persentase)

	card.CallPlan, err = u.CallPlan(ctx, salesman, realisasi.CustomerIDs)
	if err != nil {
		return card, err
	}
	return card, nil
}

// CallPlan = customer mapping salesman yang belum bertransaksi (cust_id tidak ada di transacted).
func (u *PerformanceUsecase) CallPlan(ctx context.Context, salesman string, transacted []string) (CallPlan, error) {
	mapped, err := u.customers.ListBySalesman(ctx, salesman)
	if err != nil {
		return CallPlan{}, err
	}
	if len(mapped) == 0 {
		return CallPlan{
			Status:    CallPlanNoMapping,
			Message:   "Belum ada mapping pelanggan untuk sales ini.",
			Customers: []model.Customer{},
		}, nil
	}

	ordered := make(map[string]struct{}, len(transacted))
	for _, id := range transacted {
		ordered[id] = struct{}{}
	}

	plan := CallPlan{Status: CallPlanPending, Customers: []model.Customer{}}
	for _, c := range mapped {
		if _, ok := ordered[c.CustID]; !ok {
			plan.Customers = append(plan.Customers, c)
		}
	}
	if len(plan.Customers) == 0 {
		plan.Status = CallPlanAllOrdered
		plan.Message = "Semua pelanggan mappingan sudah order."
	}
	return plan, nil
}

// summarizeTeam menjumlahkan target & realisasi lalu meranking berdasarkan persentase (stabil: urutan scope).
func summarizeTeam(cards []Scorecard) *TeamSummary {
	team := &TeamSummary{
		TargetQty:     decimal.Zero,
		RealisasiQty:  decimal.Zero,
		TargetTagihan: decimal.Zero,
		Ranking:       make([]RankRow, 0, len(cards)),
	}
	for _, c := range cards {
		team.TargetQty = team.TargetQty.Add(c.TargetQty)
		team.RealisasiQty = team.RealisasiQty.Add(c.RealisasiQty)
		team.TargetTagihan = team.TargetTagihan.Add(c.TargetTagihan)
		team.Ranking = append(team.Ranking, RankRow{
			Salesman:     c.Salesman,
			TargetQty:    c.TargetQty,
			RealisasiQty: c.RealisasiQty,
			Persentase:   c.Persentase,
		})
	}
	team.Persentase = Attainment(team.RealisasiQty, team.TargetQty)

	sort.SliceStable(team.Ranking, func(i, j int) bool {
		return team.Ranking[i].Persentase > team.Ranking[j].Persentase
	})
	return team
}
