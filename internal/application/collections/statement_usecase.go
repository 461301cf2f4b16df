package collections

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

// StatementUseCase arma el estado de cuenta PDF de un cliente: sus deudas,
// pagos y totales por moneda.
type StatementUseCase struct {
	companies repository.CompanyRepository
	customers repository.CustomerRepository
	debts     repository.DebtRepository
	payments  repository.PaymentRepository
	generator StatementGenerator
}

// NewStatementUseCase construye el caso de uso con el generador de PDF.
func NewStatementUseCase(
	companies repository.CompanyRepository,
	customers repository.CustomerRepository,
	debts repository.DebtRepository,
	payments repository.PaymentRepository,
	generator StatementGenerator,
) *StatementUseCase {
	return &StatementUseCase{
		companies: companies,
		customers: customers,
		debts:     debts,
		payments:  payments,
		generator: generator,
	}
}

// Generate produce el PDF del estado de cuenta del cliente.
func (uc *StatementUseCase) Generate(ctx context.Context, companyID, customerID string) ([]byte, error) {
	if companyID == "" || customerID == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	customer, err := uc.customers.GetByID(companyID, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	debts, err := uc.debts.ListByCompany(companyID, repository.DebtFilter{CustomerID: customerID}, 1000, 0)
	if err != nil {
		return nil, err
	}
	payments, err := uc.payments.ListByCustomer(companyID, customerID)
	if err != nil {
		return nil, err
	}

	data := &StatementData{
		Company:     company,
		Customer:    customer,
		Debts:       debts,
		Payments:    payments,
		Totals:      totalsByCurrency(debts),
		GeneratedAt: time.Now(),
	}
	return uc.generator.GenerateStatementPDF(ctx, data)
}

func totalsByCurrency(debts []*entity.Debt) []CurrencyTotal {
	byCurrency := make(map[string]*CurrencyTotal)
	for _, d := range debts {
		t, ok := byCurrency[d.Currency]
		if !ok {
			t = &CurrencyTotal{
				Currency:  d.Currency,
				Original:  decimal.Zero,
				Paid:      decimal.Zero,
				Remaining: decimal.Zero,
			}
			byCurrency[d.Currency] = t
		}
		t.Original = t.Original.Add(d.Amount)
		t.Paid = t.Paid.Add(d.Amount.Sub(d.Remaining))
		t.Remaining = t.Remaining.Add(d.Remaining)
	}
	out := make([]CurrencyTotal, 0, len(byCurrency))
	for _, t := range byCurrency {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out
}
