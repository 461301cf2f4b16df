package dto

import "time"

// CreateUserRequest entrada para crear un usuario. La contraseña temporal de 6
// dígitos se genera en el use case y se devuelve una sola vez en la respuesta.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required,oneof=admin manager accountant seller"`
}

// UpdateUserRequest entrada parcial para actualizar un usuario (campos vacíos se ignoran).
type UpdateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	FullName string `json:"full_name" validate:"omitempty,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=admin manager accountant seller"`
}

// BulkUserItem una fila del alta masiva (ya parseada; la hoja de cálculo se
// procesa en el cliente). Las etiquetas de rol localizadas se mapean en el use case.
type BulkUserItem struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// BulkUserRequest alta masiva de usuarios.
type BulkUserRequest struct {
	Items []BulkUserItem `json:"items" validate:"required,min=1"`
}

// BulkUserResult resultado por fila del alta masiva: o bien el usuario creado
// con su contraseña temporal, o bien el error de esa fila.
type BulkUserResult struct {
	ID       string `json:"id,omitempty"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password,omitempty"`
	Error    string `json:"error,omitempty"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	ManagerID *string   `json:"manager_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatedUserResponse usuario recién creado + contraseña temporal (solo se muestra una vez).
type CreatedUserResponse struct {
	UserResponse
	Password string `json:"password"`
}

// UserExportRow fila del export de usuarios. TempPassword solo viene poblada si
// el caller pidió rotación de contraseñas; Note registra el fallo por fila.
type UserExportRow struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	ManagerID    *string `json:"manager_id"`
	CreatedAt    string  `json:"created_at"`
	TempPassword string  `json:"temp_password"`
	Note         string  `json:"note"`
}
