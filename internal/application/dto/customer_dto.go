package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente/deudor.
type CreateCustomerRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=200"`
	Email            string `json:"email" validate:"omitempty,email"`
	Phone            string `json:"phone" validate:"omitempty,max=30"`
	AssignedSellerID string `json:"assigned_seller_id"`
}

// UpdateCustomerRequest entrada parcial (campos vacíos se ignoran).
type UpdateCustomerRequest struct {
	Name             string `json:"name" validate:"omitempty,max=200"`
	Email            string `json:"email" validate:"omitempty,email"`
	Phone            string `json:"phone" validate:"omitempty,max=30"`
	AssignedSellerID string `json:"assigned_seller_id"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID               string    `json:"id"`
	CompanyID        string    `json:"company_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	AssignedSellerID *string   `json:"assigned_seller_id"`
	CreatedAt        time.Time `json:"created_at"`
}
