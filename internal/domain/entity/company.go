package entity

import "time"

// Company representa una organización/tenant del sistema. Todo dato operativo
// (usuarios, clientes, deudas, pagos) está particionado por CompanyID; el Slug
// es la dirección pública del tenant en la URL.
type Company struct {
	ID        string
	Name      string
	Slug      string // único global, derivado del nombre (ver pkg/slug)
	Email     string
	Phone     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanySettings preferencias por empresa: monedas aceptadas y tipos de
// cuenta por cobrar que la UI ofrece al registrar deudas.
type CompanySettings struct {
	CompanyID       string
	Currencies      []string // subconjunto de {TRY, USD, EUR}
	ReceivableTypes []string // ej. "factura", "cheque", "pagaré"
	UpdatedAt       time.Time
}
