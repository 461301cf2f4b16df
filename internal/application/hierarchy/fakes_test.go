package hierarchy_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un arena de nodos por id con puntero al padre (manager_id),
// igual que la tabla real. Sin índices derivados persistidos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User

	errListByManagerIn error
	errUpdateManagerID error

	listByManagerInCalls int
	updateManagerIDCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) add(id, companyID, role string, managerID *string) *entity.User {
	u := &entity.User{
		ID:        id,
		CompanyID: companyID,
		Email:     id + "@test.local",
		FullName:  id,
		Role:      role,
		ManagerID: managerID,
		Status:    "active",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.users[id] = u
	return u
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByCompanyAndID(companyID, id string) (*entity.User, error) {
	u := f.users[id]
	if u == nil || u.CompanyID != companyID {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.CompanyID == companyID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByFullName(companyID, fullName string) (*entity.User, error) {
	for _, u := range f.users {
		if u.CompanyID == companyID && strings.EqualFold(u.FullName, fullName) {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	return f.ListAllByCompany(companyID)
}

func (f *fakeUserRepo) ListAllByCompany(companyID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error { f.users[u.ID] = u; return nil }

func (f *fakeUserRepo) UpdatePassword(id, hash string) error {
	if u := f.users[id]; u != nil {
		u.PasswordHash = hash
	}
	return nil
}

func (f *fakeUserRepo) Delete(companyID, id string) error {
	if u := f.users[id]; u != nil && u.CompanyID == companyID {
		delete(f.users, id)
	}
	return nil
}

func (f *fakeUserRepo) ListByManagerIn(companyID string, managerIDs []string) ([]*entity.User, error) {
	f.listByManagerInCalls++
	if f.errListByManagerIn != nil {
		return nil, f.errListByManagerIn
	}
	in := make(map[string]struct{}, len(managerIDs))
	for _, id := range managerIDs {
		in[id] = struct{}{}
	}
	var out []*entity.User
	for _, u := range f.users {
		if u.CompanyID != companyID || u.ManagerID == nil {
			continue
		}
		if _, ok := in[*u.ManagerID]; ok {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) ListSelfManaged(companyID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.CompanyID == companyID && u.ManagerID != nil && *u.ManagerID == u.ID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateManagerID(companyID string, ids []string, managerID *string) (int64, error) {
	f.updateManagerIDCalls++
	if f.errUpdateManagerID != nil {
		return 0, f.errUpdateManagerID
	}
	var n int64
	for _, id := range ids {
		u := f.users[id]
		if u == nil || u.CompanyID != companyID {
			continue
		}
		u.ManagerID = managerID
		n++
	}
	return n, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// fakeTxRunner ejecuta el callback directamente contra el repo en memoria.
type fakeTxRunner struct {
	repo *fakeUserRepo
}

func (f *fakeTxRunner) RunUsers(_ context.Context, fn func(users repository.UserRepository) error) error {
	return fn(f.repo)
}

// ── Deudas y clientes (solo lo que necesita la transferencia de cartera) ──────

type fakeDebtRepo struct {
	debts map[string]*entity.Debt
	err   error
}

func newFakeDebtRepo() *fakeDebtRepo { return &fakeDebtRepo{debts: make(map[string]*entity.Debt)} }

func (f *fakeDebtRepo) Create(d *entity.Debt) error { f.debts[d.ID] = d; return nil }

func (f *fakeDebtRepo) GetByID(companyID, id string) (*entity.Debt, error) {
	d := f.debts[id]
	if d == nil || d.CompanyID != companyID {
		return nil, nil
	}
	return d, nil
}

func (f *fakeDebtRepo) GetByCustomerAndDueDate(companyID, customerID string, dueDate time.Time) (*entity.Debt, error) {
	return nil, nil
}

func (f *fakeDebtRepo) ListByCompany(companyID string, _ repository.DebtFilter, limit, offset int) ([]*entity.Debt, error) {
	return nil, nil
}

func (f *fakeDebtRepo) Update(d *entity.Debt) error { f.debts[d.ID] = d; return nil }

func (f *fakeDebtRepo) Delete(companyID, id string) error { delete(f.debts, id); return nil }

func (f *fakeDebtRepo) ReassignSeller(companyID, from, to string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, d := range f.debts {
		if d.CompanyID == companyID && d.SellerID != nil && *d.SellerID == from {
			seller := to
			d.SellerID = &seller
			n++
		}
	}
	return n, nil
}

var _ repository.DebtRepository = (*fakeDebtRepo)(nil)

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	err       error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { f.customers[c.ID] = c; return nil }

func (f *fakeCustomerRepo) GetByID(companyID, id string) (*entity.Customer, error) {
	c := f.customers[id]
	if c == nil || c.CompanyID != companyID {
		return nil, nil
	}
	return c, nil
}

func (f *fakeCustomerRepo) GetByCompanyAndName(companyID, name string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.CompanyID == companyID && c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) error { f.customers[c.ID] = c; return nil }

func (f *fakeCustomerRepo) Delete(companyID, id string) error { delete(f.customers, id); return nil }

func (f *fakeCustomerRepo) ReassignSeller(companyID, from, to string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, c := range f.customers {
		if c.CompanyID == companyID && c.AssignedSellerID != nil && *c.AssignedSellerID == from {
			seller := to
			c.AssignedSellerID = &seller
			n++
		}
	}
	return n, nil
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func ptr(s string) *string { return &s }
