package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleAccountant = "accountant"
	RoleSeller     = "seller"
)

// User representa un usuario del sistema (pertenece a una Company).
// ManagerID forma un bosque por empresa: cada usuario reporta como máximo a otro
// usuario de la MISMA empresa. Invariante: ManagerID nunca debe ser igual a ID.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string  // admin, manager, accountant, seller
	ManagerID    *string // nil = no reporta a nadie (raíz del bosque)
	Status       string  // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsMoveable indica si el rol participa como subordinado en la jerarquía de
// reporte. Solo seller y manager se mueven en bloque; admin y accountant no.
func (u *User) IsMoveable() bool {
	return u.Role == RoleSeller || u.Role == RoleManager
}

// ValidRole verifica que el rol esté dentro de la enumeración plana.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleAccountant, RoleSeller:
		return true
	}
	return false
}
