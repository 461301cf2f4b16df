package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDebtRequest entrada para registrar una deuda manualmente.
type CreateDebtRequest struct {
	CustomerID     string          `json:"customer_id"`
	CustomerName   string          `json:"customer_name"` // alternativa: se resuelve/crea por nombre
	SellerID       string          `json:"seller_id"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	Currency       string          `json:"currency" validate:"required"`
	DueDate        string          `json:"due_date" validate:"required"`
	ReceivableType string          `json:"receivable_type"`
}

// UpdateDebtRequest patch parcial de una deuda. Los campos vacíos se ignoran;
// SellerName se resuelve por nombre dentro de la empresa si SellerID no viene.
type UpdateDebtRequest struct {
	CustomerName   string          `json:"customer_name"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	DueDate        string          `json:"due_date"`
	ReceivableType string          `json:"receivable_type"`
	SellerID       string          `json:"seller_id"`
	SellerName     string          `json:"seller_name"`
}

// DebtResponse salida de una deuda.
type DebtResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	CustomerID  string          `json:"customer_id"`
	SellerID    *string         `json:"seller_id"`
	Amount      decimal.Decimal `json:"amount"`
	Remaining   decimal.Decimal `json:"remaining_amount"`
	Currency    string          `json:"currency"`
	DueDate     time.Time       `json:"due_date"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BulkDebtItem una fila del import masivo de cuentas por cobrar, ya parseada.
// Moneda y fechas llegan crudas (TL, 15/03/2026, serial de Excel…) y se
// normalizan en el use case.
type BulkDebtItem struct {
	CustomerName   string `json:"customer_name"`
	DueDate        any    `json:"due_date"`  // string en varios formatos o número serial Excel
	Amount         any    `json:"amount"`    // string o número
	Currency       string `json:"currency"`  // TL/TRY/USD/EUR, cualquier caja
	ReceivableType string `json:"receivable_type"`
	SellerName     string `json:"seller"`
	TxnDate        any    `json:"txn_date"`
}

// BulkDebtRequest import masivo.
type BulkDebtRequest struct {
	Items []BulkDebtItem `json:"items" validate:"required"`
}

// BulkDebtResult resultado por fila: deuda insertada/actualizada o error.
type BulkDebtResult struct {
	ID           string `json:"id,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`
	SellerName   string `json:"seller_name,omitempty"`
	Action       string `json:"_action,omitempty"` // inserted | updated
	Error        string `json:"error,omitempty"`
}
