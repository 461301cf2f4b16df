package entity

import "time"

// Note es una anotación libre de seguimiento de cobranza, atada a un cliente
// y opcionalmente a una deuda concreta.
type Note struct {
	ID         string
	CompanyID  string
	CustomerID string
	DebtID     *string // nil = nota a nivel de cliente
	Body       string
	CreatedBy  string
	CreatedAt  time.Time
}
