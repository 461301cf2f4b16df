package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment representa un abono registrado contra una deuda.
type Payment struct {
	ID         string
	CompanyID  string
	DebtID     string
	CustomerID string
	Amount     decimal.Decimal
	Currency   string
	Method     string // efectivo, transferencia, cheque
	Reference  string
	PaidAt     time.Time
	CreatedBy  string // usuario que registró el pago
	CreatedAt  time.Time
}
