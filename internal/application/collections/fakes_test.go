package collections_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

// Fakes en memoria para los casos de uso de cobranza.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.users[id], nil }

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

func (f *fakeUserRepo) Delete(companyID, id string) error { delete(f.users, id); return nil }

func (f *fakeUserRepo) ListByManagerIn(companyID string, managerIDs []string) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) ListSelfManaged(companyID string) ([]*entity.User, error) { return nil, nil }

func (f *fakeUserRepo) UpdateManagerID(companyID string, ids []string, managerID *string) (int64, error) {
	return 0, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
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
	var out []*entity.Customer
	for _, c := range f.customers {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) error { f.customers[c.ID] = c; return nil }

func (f *fakeCustomerRepo) Delete(companyID, id string) error { delete(f.customers, id); return nil }

func (f *fakeCustomerRepo) ReassignSeller(companyID, from, to string) (int64, error) {
	return 0, nil
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

type fakeDebtRepo struct {
	debts map[string]*entity.Debt
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
	for _, d := range f.debts {
		if d.CompanyID == companyID && d.CustomerID == customerID && d.DueDate.Equal(dueDate) {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDebtRepo) ListByCompany(companyID string, filter repository.DebtFilter, limit, offset int) ([]*entity.Debt, error) {
	var out []*entity.Debt
	for _, d := range f.debts {
		if d.CompanyID != companyID {
			continue
		}
		if filter.CustomerID != "" && d.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeDebtRepo) Update(d *entity.Debt) error { f.debts[d.ID] = d; return nil }

func (f *fakeDebtRepo) Delete(companyID, id string) error { delete(f.debts, id); return nil }

func (f *fakeDebtRepo) ReassignSeller(companyID, from, to string) (int64, error) { return 0, nil }

var _ repository.DebtRepository = (*fakeDebtRepo)(nil)

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*entity.Payment)}
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error { f.payments[p.ID] = p; return nil }

func (f *fakePaymentRepo) ListByDebt(companyID, debtID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		if p.CompanyID == companyID && p.DebtID == debtID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByCustomer(companyID, customerID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range f.payments {
		if p.CompanyID == companyID && p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ repository.PaymentRepository = (*fakePaymentRepo)(nil)

// fakeTxRunner ejecuta el callback directamente contra los repos en memoria.
type fakeTxRunner struct {
	debts    *fakeDebtRepo
	payments *fakePaymentRepo
}

func (f *fakeTxRunner) RunCollections(_ context.Context, fn func(debts repository.DebtRepository, payments repository.PaymentRepository) error) error {
	return fn(f.debts, f.payments)
}
