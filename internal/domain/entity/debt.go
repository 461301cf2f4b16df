package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una deuda (cuenta por cobrar).
const (
	DebtStatusActive   = "active"
	DebtStatusPaid     = "paid"
	DebtStatusCanceled = "canceled"
)

// Monedas soportadas (valor persistido; "TL" se normaliza a "TRY" en el import).
const (
	CurrencyTRY = "TRY"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Debt representa una cuenta por cobrar contra un Customer.
// Remaining arranca igual a Amount y se descuenta con cada pago; al llegar a
// cero la deuda pasa a status "paid".
type Debt struct {
	ID          string
	CompanyID   string
	CustomerID  string
	SellerID    *string // vendedor responsable del cobro (referencia plana)
	Amount      decimal.Decimal
	Remaining   decimal.Decimal
	Currency    string // TRY, USD, EUR
	DueDate     time.Time
	Status      string // active, paid, canceled
	Description string // ej. "type=factura"
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
