package dto

// AssignManagerRequest entrada de la reasignación en bloque: los UserIDs son
// los nodos semilla seleccionados; el motor expande sus subárboles completos.
type AssignManagerRequest struct {
	ManagerID string   `json:"manager_id" validate:"required"`
	UserIDs   []string `json:"user_ids"`
}

// AssignManagerResponse cuántos usuarios quedaron reportando al nuevo gerente
// (semillas + descendientes, sin contar al gerente destino).
type AssignManagerResponse struct {
	Moved int `json:"moved"`
}

// RepairResponse cuántos self-loops (manager_id = id) se limpiaron.
type RepairResponse struct {
	Repaired int `json:"repaired"`
}

// ReassignOwnershipRequest transferencia plana de cartera entre vendedores:
// deudas y clientes del origen pasan al destino.
type ReassignOwnershipRequest struct {
	FromSellerID string `json:"from_seller_id" validate:"required"`
	ToSellerID   string `json:"to_seller_id" validate:"required"`
}

// ReassignOwnershipResponse filas tocadas por tabla.
type ReassignOwnershipResponse struct {
	DebtsMoved     int64 `json:"debts_moved"`
	CustomersMoved int64 `json:"customers_moved"`
}
