package collections

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
	"github.com/tu-usuario/cobranzas-pro/internal/metrics"
	"github.com/tu-usuario/cobranzas-pro/pkg/slug"
)

// ImportUseCase import masivo de cuentas por cobrar desde hojas de cálculo.
//
// Cada fila se procesa de forma independiente: normaliza moneda/fecha/monto,
// resuelve el vendedor por nombre (creándolo si no existe), resuelve o crea el
// cliente, y hace upsert de la deuda por la clave natural cliente+vencimiento.
// Una fila mala produce un resultado con error, nunca aborta el lote.
type ImportUseCase struct {
	users     repository.UserRepository
	customers repository.CustomerRepository
	debts     repository.DebtRepository
}

// NewImportUseCase construye el caso de uso con los puertos de persistencia.
func NewImportUseCase(users repository.UserRepository, customers repository.CustomerRepository, debts repository.DebtRepository) *ImportUseCase {
	return &ImportUseCase{users: users, customers: customers, debts: debts}
}

// Import procesa el lote y devuelve un resultado por fila, en el mismo orden.
func (uc *ImportUseCase) Import(companyID string, in dto.BulkDebtRequest) ([]dto.BulkDebtResult, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	results := make([]dto.BulkDebtResult, 0, len(in.Items))
	for _, item := range in.Items {
		res := uc.importRow(companyID, item)
		if res.Error != "" {
			metrics.DebtsImportedTotal.WithLabelValues("failed").Inc()
		} else {
			metrics.DebtsImportedTotal.WithLabelValues(res.Action).Inc()
		}
		results = append(results, res)
	}
	return results, nil
}

func (uc *ImportUseCase) importRow(companyID string, item dto.BulkDebtItem) dto.BulkDebtResult {
	customerName := strings.TrimSpace(item.CustomerName)
	sellerName := strings.TrimSpace(item.SellerName)
	res := dto.BulkDebtResult{CustomerName: customerName, SellerName: sellerName}

	if customerName == "" {
		res.Error = "falta el nombre del cliente"
		return res
	}
	currency, ok := NormalizeCurrency(item.Currency)
	if !ok {
		res.Error = fmt.Sprintf("moneda no soportada: %q", item.Currency)
		return res
	}
	amount, ok := ParseAmount(item.Amount)
	if !ok {
		res.Error = fmt.Sprintf("monto inválido: %v", item.Amount)
		return res
	}
	dueDate, ok := NormalizeDate(item.DueDate)
	if !ok {
		res.Error = fmt.Sprintf("fecha de vencimiento inválida: %v", item.DueDate)
		return res
	}

	var sellerID *string
	if sellerName != "" {
		seller, err := uc.resolveOrCreateSeller(companyID, sellerName)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		sellerID = &seller.ID
	}

	customer, err := uc.resolveOrCreateCustomer(companyID, customerName, sellerID)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	// Upsert por clave natural: la misma fila re-importada actualiza en vez
	// de duplicar.
	existing, err := uc.debts.GetByCustomerAndDueDate(companyID, customer.ID, dueDate)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if existing != nil {
		changed := false
		if !existing.Amount.Equal(amount) {
			// el saldo conserva lo ya abonado
			paid := existing.Amount.Sub(existing.Remaining)
			existing.Amount = amount
			existing.Remaining = amount.Sub(paid)
			changed = true
		}
		if existing.Currency != currency {
			existing.Currency = currency
			changed = true
		}
		if item.ReceivableType != "" && existing.Description != item.ReceivableType {
			existing.Description = item.ReceivableType
			changed = true
		}
		if sellerID != nil && (existing.SellerID == nil || *existing.SellerID != *sellerID) {
			existing.SellerID = sellerID
			changed = true
		}
		if changed {
			existing.UpdatedAt = time.Now()
			if err := uc.debts.Update(existing); err != nil {
				res.Error = err.Error()
				return res
			}
		}
		res.ID = existing.ID
		res.Action = "updated"
		return res
	}

	now := time.Now()
	debt := &entity.Debt{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CustomerID:  customer.ID,
		SellerID:    sellerID,
		Amount:      amount,
		Remaining:   amount,
		Currency:    currency,
		DueDate:     dueDate,
		Status:      entity.DebtStatusActive,
		Description: item.ReceivableType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.debts.Create(debt); err != nil {
		res.Error = err.Error()
		return res
	}
	res.ID = debt.ID
	res.Action = "inserted"
	return res
}

// resolveOrCreateSeller busca el vendedor por nombre dentro de la empresa; si
// no existe lo crea con rol seller, email sintético y contraseña temporal.
func (uc *ImportUseCase) resolveOrCreateSeller(companyID, fullName string) (*entity.User, error) {
	seller, err := uc.users.FindByFullName(companyID, fullName)
	if err != nil {
		return nil, err
	}
	if seller != nil {
		return seller, nil
	}

	password, err := genImportPassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	seller = &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Email:        syntheticEmail(companyID, fullName),
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         entity.RoleSeller,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(seller); err != nil {
		return nil, err
	}
	return seller, nil
}

func (uc *ImportUseCase) resolveOrCreateCustomer(companyID, name string, sellerID *string) (*entity.Customer, error) {
	customer, err := uc.customers.GetByCompanyAndName(companyID, name)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}
	now := time.Now()
	customer = &entity.Customer{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		Name:             name,
		AssignedSellerID: sellerID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// syntheticEmail arma un email único por empresa para vendedores creados desde
// el import (no pueden loguearse hasta que el admin les asigne uno real).
func syntheticEmail(companyID, fullName string) string {
	prefix := companyID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("%s.%s@import.local", slug.Make(fullName), prefix)
}

func genImportPassword() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
