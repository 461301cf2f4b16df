package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una promesa de pago.
const (
	PromiseStatusPending = "pending"
	PromiseStatusKept    = "kept"
	PromiseStatusBroken  = "broken"
)

// PaymentPromise representa el compromiso de un deudor de abonar un monto en
// una fecha. Las promesas vencidas sin pago se marcan como "broken".
type PaymentPromise struct {
	ID             string
	CompanyID      string
	DebtID         string
	CustomerID     string
	PromisedAmount decimal.Decimal
	PromisedDate   time.Time
	Status         string // pending, kept, broken
	Notes          string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
