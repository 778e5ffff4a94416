package usecase

import (
	"context"
	"fmt"

	"sales-performance-backend/internal/model"
)

// Session adalah identitas user yang sedang login, dibawa di token dan dibangun ulang tiap request.
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	RealName string `json:"real_name"`
	NamaSPV  string `json:"nama_spv,omitempty"`
}

// Directory adalah bagian UserRepository yang dibutuhkan untuk menentukan cakupan salesman.
type Directory interface {
	ListTeamMembers(ctx context.Context, namaSPV string) ([]string, error)
	ListAllSalesmen(ctx context.Context) ([]string, error)
}

// Role menentukan salesman mana saja yang boleh dilihat user dan apa yang boleh ia kelola.
type Role interface {
	Name() string
	ResolveScope(ctx context.Context, dir Directory, s Session) ([]string, error)
	// TeamView: dashboard menampilkan ringkasan tim dan ranking.
	TeamView() bool
	// CanManage: boleh mengubah target, mapping customer, upload data, dan akun.
	CanManage() bool
}

type Admin struct{}

func (Admin) Name() string    { return model.RoleAdmin }
func (Admin) TeamView() bool  { return true }
func (Admin) CanManage() bool { return true }

func (Admin) ResolveScope(ctx context.Context, dir Directory, _ Session) ([]string, error) {
	return dir.ListAllSalesmen(ctx)
}

type Supervisor struct{}

func (Supervisor) Name() string    { return model.RoleSPV }
func (Supervisor) TeamView() bool  { return true }
func (Supervisor) CanManage() bool { return true }

// ResolveScope: anggota tim adalah user yang nama_spv-nya sama dengan nama supervisor. Tim kosong bukan error.
func (Supervisor) ResolveScope(ctx context.Context, dir Directory, s Session) ([]string, error) {
	return dir.ListTeamMembers(ctx, s.RealName)
}

type Salesperson struct{}

func (Salesperson) Name() string    { return model.RoleSalesman }
func (Salesperson) TeamView() bool  { return false }
func (Salesperson) CanManage() bool { return false }

func (Salesperson) ResolveScope(_ context.Context, _ Directory, s Session) ([]string, error) {
	return []string{s.RealName}, nil
}

func ParseRole(name string) (Role, error) {
	switch name {
	case model.RoleAdmin:
		return Admin{}, nil
	case model.RoleSPV:
		return Supervisor{}, nil
	case model.RoleSalesman:
		return Salesperson{}, nil
	}
	return nil, fmt.Errorf("%w: role %q tidak dikenal", ErrForbidden, name)
}

// Scope adalah helper: parse role dari session lalu resolve daftar salesman.
func Scope(ctx context.Context, dir Directory, s Session) (Role, []string, error) {
	role, err := ParseRole(s.Role)
	if err != nil {
		return nil, nil, err
	}
	names, err := role.ResolveScope(ctx, dir, s)
	if err != nil {
		return nil, nil, err
	}
	return role, names, nil
}
