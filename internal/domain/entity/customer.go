package entity

import "time"

// Customer representa un deudor/cliente de la empresa.
// AssignedSellerID es una referencia plana (un salto, sin árbol) al vendedor
// responsable de la cuenta; se reescribe en bloque al transferir cartera.
type Customer struct {
	ID               string
	CompanyID        string
	Name             string
	Email            string
	Phone            string
	AssignedSellerID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
