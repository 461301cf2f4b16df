package dto

import "time"

// RegisterCompanyRequest alta de tenant: crea la empresa y su usuario admin.
type RegisterCompanyRequest struct {
	CompanyName   string `json:"company_name" validate:"required,min=2,max=200"`
	CompanyEmail  string `json:"company_email" validate:"required,email"`
	AdminFullName string `json:"admin_full_name" validate:"required,min=1,max=200"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=8"`
}

// CompanyResponse salida pública de una empresa (resolución de tenant por slug).
type CompanyResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// RegisterCompanyResponse empresa creada + token del admin.
type RegisterCompanyResponse struct {
	Company CompanyResponse `json:"company"`
	Token   string          `json:"token"`
	User    UserResponse    `json:"user"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SettingsRequest guarda la configuración del tenant.
type SettingsRequest struct {
	Currencies      []string `json:"currencies" validate:"required,min=1,dive,oneof=TRY USD EUR"`
	ReceivableTypes []string `json:"receivable_types" validate:"required,min=1"`
}

// SettingsResponse configuración vigente.
type SettingsResponse struct {
	CompanyID       string    `json:"company_id"`
	Currencies      []string  `json:"currencies"`
	ReceivableTypes []string  `json:"receivable_types"`
	UpdatedAt       time.Time `json:"updated_at"`
}
