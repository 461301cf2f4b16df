package collections

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

// TxRunner ejecuta fn con repos de deudas y pagos atados a una transacción:
// el abono y la actualización del saldo de la deuda se confirman juntos.
type TxRunner interface {
	RunCollections(ctx context.Context, fn func(debts repository.DebtRepository, payments repository.PaymentRepository) error) error
}

// CurrencyTotal totales de cartera agregados por moneda.
type CurrencyTotal struct {
	Currency  string
	Original  decimal.Decimal
	Paid      decimal.Decimal
	Remaining decimal.Decimal
}

// StatementData todo lo que el generador necesita para armar el estado de
// cuenta de un cliente: deudas, pagos y totales por moneda.
type StatementData struct {
	Company     *entity.Company
	Customer    *entity.Customer
	Debts       []*entity.Debt
	Payments    []*entity.Payment
	Totals      []CurrencyTotal
	GeneratedAt time.Time
}

// StatementGenerator puerto de generación del PDF de estado de cuenta.
// La implementación (maroto) vive en infrastructure/pdf.
type StatementGenerator interface {
	GenerateStatementPDF(ctx context.Context, data *StatementData) ([]byte, error)
}
