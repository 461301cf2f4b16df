package collections

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
	"github.com/tu-usuario/cobranzas-pro/internal/metrics"
)

// PaymentUseCase registro de abonos contra deudas. La inserción del pago y el
// descuento del saldo corren en una transacción: nunca queda un pago sin
// reflejar en Remaining ni al revés.
type PaymentUseCase struct {
	tx       TxRunner
	payments repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(tx TxRunner, payments repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{tx: tx, payments: payments}
}

// Register aplica un abono a una deuda.
//
// Reglas:
//   - el monto debe ser positivo y no superar el saldo (ErrPaymentExceedsDebt);
//   - no se aceptan pagos sobre deudas canceladas (ErrConflict);
//   - si el saldo llega a cero la deuda pasa a "paid".
func (uc *PaymentUseCase) Register(ctx context.Context, companyID, userID string, in dto.RegisterPaymentRequest) (*dto.PaymentResponse, error) {
	if companyID == "" || in.DebtID == "" {
		metrics.PaymentsRecordedTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		metrics.PaymentsRecordedTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidInput
	}

	paidAt := time.Now()
	if in.PaidAt != "" {
		d, ok := NormalizeDate(in.PaidAt)
		if !ok {
			metrics.PaymentsRecordedTotal.WithLabelValues("rejected").Inc()
			return nil, domain.ErrInvalidInput
		}
		paidAt = d
	}

	var out *dto.PaymentResponse
	err := uc.tx.RunCollections(ctx, func(debts repository.DebtRepository, payments repository.PaymentRepository) error {
		debt, err := debts.GetByID(companyID, in.DebtID)
		if err != nil {
			return err
		}
		if debt == nil {
			return domain.ErrNotFound
		}
		if debt.Status == entity.DebtStatusCanceled {
			return domain.ErrConflict
		}
		if in.Amount.GreaterThan(debt.Remaining) {
			return domain.ErrPaymentExceedsDebt
		}

		payment := &entity.Payment{
			ID:         uuid.New().String(),
			CompanyID:  companyID,
			DebtID:     debt.ID,
			CustomerID: debt.CustomerID,
			Amount:     in.Amount,
			Currency:   debt.Currency,
			Method:     in.Method,
			Reference:  in.Reference,
			PaidAt:     paidAt,
			CreatedBy:  userID,
			CreatedAt:  time.Now(),
		}
		if err := payments.Create(payment); err != nil {
			return err
		}

		debt.Remaining = debt.Remaining.Sub(in.Amount)
		if debt.Remaining.IsZero() {
			debt.Status = entity.DebtStatusPaid
		}
		debt.UpdatedAt = time.Now()
		if err := debts.Update(debt); err != nil {
			return err
		}

		out = &dto.PaymentResponse{
			ID:            payment.ID,
			DebtID:        payment.DebtID,
			CustomerID:    payment.CustomerID,
			Amount:        payment.Amount,
			Currency:      payment.Currency,
			Method:        payment.Method,
			Reference:     payment.Reference,
			PaidAt:        payment.PaidAt,
			DebtRemaining: debt.Remaining,
			DebtStatus:    debt.Status,
		}
		return nil
	})
	if err != nil {
		switch err {
		case domain.ErrPaymentExceedsDebt, domain.ErrConflict, domain.ErrNotFound, domain.ErrInvalidInput:
			metrics.PaymentsRecordedTotal.WithLabelValues("rejected").Inc()
		default:
			metrics.PaymentsRecordedTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.PaymentsRecordedTotal.WithLabelValues("ok").Inc()
	return out, nil
}

// ListByDebt lista los abonos de una deuda.
func (uc *PaymentUseCase) ListByDebt(companyID, debtID string) ([]*dto.PaymentResponse, error) {
	payments, err := uc.payments.ListByDebt(companyID, debtID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, &dto.PaymentResponse{
			ID:         p.ID,
			DebtID:     p.DebtID,
			CustomerID: p.CustomerID,
			Amount:     p.Amount,
			Currency:   p.Currency,
			Method:     p.Method,
			Reference:  p.Reference,
			PaidAt:     p.PaidAt,
		})
	}
	return out, nil
}
