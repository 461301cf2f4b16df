package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrSlugAlreadyExists  = errors.New("el slug ya está en uso")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrCycleRejected: el gerente destino está dentro del subárbol que se intenta
	// mover; completar la asignación crearía un ciclo en la jerarquía de reporte.
	ErrCycleRejected = errors.New("la reasignación crearía un ciclo en la jerarquía")

	// ErrSameSeller: origen y destino de una transferencia de cartera coinciden.
	ErrSameSeller = errors.New("el vendedor origen y destino son el mismo")

	// ErrPaymentExceedsDebt: el abono supera el saldo pendiente de la deuda.
	ErrPaymentExceedsDebt = errors.New("el pago excede el saldo pendiente")
)
