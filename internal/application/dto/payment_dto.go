package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterPaymentRequest abono contra una deuda.
type RegisterPaymentRequest struct {
	DebtID    string          `json:"debt_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Method    string          `json:"method" validate:"omitempty,max=50"`
	Reference string          `json:"reference" validate:"omitempty,max=100"`
	PaidAt    string          `json:"paid_at"` // opcional, ISO; vacío = ahora
}

// PaymentResponse salida de un pago; incluye el saldo de la deuda tras aplicar el abono.
type PaymentResponse struct {
	ID            string          `json:"id"`
	DebtID        string          `json:"debt_id"`
	CustomerID    string          `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Method        string          `json:"method"`
	Reference     string          `json:"reference"`
	PaidAt        time.Time       `json:"paid_at"`
	DebtRemaining decimal.Decimal `json:"debt_remaining"`
	DebtStatus    string          `json:"debt_status"`
}

// CreatePromiseRequest compromiso de pago del deudor.
type CreatePromiseRequest struct {
	DebtID         string          `json:"debt_id" validate:"required"`
	PromisedAmount decimal.Decimal `json:"promised_amount" validate:"required"`
	PromisedDate   string          `json:"promised_date" validate:"required"`
	Notes          string          `json:"notes" validate:"omitempty,max=500"`
}

// PromiseResponse salida de una promesa.
type PromiseResponse struct {
	ID             string          `json:"id"`
	DebtID         string          `json:"debt_id"`
	CustomerID     string          `json:"customer_id"`
	PromisedAmount decimal.Decimal `json:"promised_amount"`
	PromisedDate   time.Time       `json:"promised_date"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes"`
}

// CreateNoteRequest anotación de seguimiento.
type CreateNoteRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	DebtID     string `json:"debt_id"`
	Body       string `json:"body" validate:"required,min=1,max=2000"`
}

// NoteResponse salida de una nota.
type NoteResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	DebtID     *string   `json:"debt_id"`
	Body       string    `json:"body"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
