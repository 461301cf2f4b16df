package collections_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cobranzas-pro/internal/application/collections"
	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
)

func newImportUC() (*collections.ImportUseCase, *fakeUserRepo, *fakeCustomerRepo, *fakeDebtRepo) {
	users := newFakeUserRepo()
	customers := newFakeCustomerRepo()
	debts := newFakeDebtRepo()
	return collections.NewImportUseCase(users, customers, debts), users, customers, debts
}

func TestImport_FilaNuevaCreaTodo(t *testing.T) {
	uc, users, customers, debts := newImportUC()

	results, err := uc.Import(tenant, dto.BulkDebtRequest{Items: []dto.BulkDebtItem{{
		CustomerName:   "Yılmaz Tekstil",
		DueDate:        "15/03/2026",
		Amount:         "1250.50",
		Currency:       "tl",
		ReceivableType: "factura",
		SellerName:     "Ayşe Demir",
	}}})
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	require.Empty(t, res.Error)
	assert.Equal(t, "inserted", res.Action)
	assert.NotEmpty(t, res.ID)

	// vendedor creado con rol seller y email sintético
	seller, err := users.FindByFullName(tenant, "Ayşe Demir")
	require.NoError(t, err)
	require.NotNil(t, seller)
	assert.Equal(t, entity.RoleSeller, seller.Role)
	assert.Contains(t, seller.Email, "ayse-demir")
	assert.NotEmpty(t, seller.PasswordHash)

	// cliente creado y asignado al vendedor
	customer, err := customers.GetByCompanyAndName(tenant, "Yılmaz Tekstil")
	require.NoError(t, err)
	require.NotNil(t, customer)
	require.NotNil(t, customer.AssignedSellerID)
	assert.Equal(t, seller.ID, *customer.AssignedSellerID)

	// deuda con moneda y fecha normalizadas
	debt := debts.debts[res.ID]
	require.NotNil(t, debt)
	assert.Equal(t, entity.CurrencyTRY, debt.Currency)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), debt.DueDate)
	assert.True(t, debt.Amount.Equal(decimal.RequireFromString("1250.50")))
	assert.True(t, debt.Remaining.Equal(debt.Amount))
	assert.Equal(t, entity.DebtStatusActive, debt.Status)
}

func TestImport_ReimportarActualizaEnVezDeDuplicar(t *testing.T) {
	uc, _, _, debts := newImportUC()

	item := dto.BulkDebtItem{
		CustomerName: "Cliente Uno",
		DueDate:      "2026-04-01",
		Amount:       "500",
		Currency:     "TRY",
	}
	first, err := uc.Import(tenant, dto.BulkDebtRequest{Items: []dto.BulkDebtItem{item}})
	require.NoError(t, err)
	require.Equal(t, "inserted", first[0].Action)

	// mismo cliente + vencimiento, monto corregido
	item.Amount = "750"
	second, err := uc.Import(tenant, dto.BulkDebtRequest{Items: []dto.BulkDebtItem{item}})
	require.NoError(t, err)

	assert.Equal(t, "updated", second[0].Action)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Len(t, debts.debts, 1)
	assert.True(t, debts.debts[first[0].ID].Amount.Equal(decimal.NewFromInt(750)))
}

func TestImport_ActualizarConservaLoAbonado(t *testing.T) {
	uc, _, _, debts := newImportUC()

	item := dto.BulkDebtItem{
		CustomerName: "Cliente Uno",
		DueDate:      "2026-04-01",
		Amount:       "500",
		Currency:     "TRY",
	}
	first, err := uc.Import(tenant, dto.BulkDebtRequest{Items: []dto.BulkDebtItem{item}})
	require.NoError(t, err)

	// simula un abono de 200 antes del re-import
	debt := debts.debts[first[0].ID]
	debt.Remaining = decimal.NewFromInt(300)

	item.Amount = "800"
	_, err = uc.Import(tenant, dto.BulkDebtRequest{Items: []dto.BulkDebtItem{item}})
	require.NoError(t, err)

	// 800 nuevos - 200 ya abonados
	assert.True(t, debt.Remaining.Equal(decimal.NewFromInt(600)))
}

func TestImport_FilaMalaNoAbortaElLote(t *testing.T) {
	uc, _, _, debts := newImportUC()

	results, err := uc.Import(tenant, dto.BulkDebtRequest{Items: []dto.BulkDebtItem{
		{CustomerName: "", DueDate: "2026-04-01", Amount: "100", Currency: "TRY"},
		{CustomerName: "Bueno", DueDate: "2026-04-01", Amount: "100", Currency: "GBP"},
		{CustomerName: "Bueno", DueDate: "sin-fecha", Amount: "100", Currency: "TRY"},
		{CustomerName: "Bueno", DueDate: "2026-04-01", Amount: "-3", Currency: "TRY"},
		{CustomerName: "Bueno", DueDate: "2026-04-01", Amount: "100", Currency: "TRY"},
	}})
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.NotEmpty(t, results[0].Error)
	assert.NotEmpty(t, results[1].Error)
	assert.NotEmpty(t, results[2].Error)
	assert.NotEmpty(t, results[3].Error)
	assert.Empty(t, results[4].Error)
	assert.Equal(t, "inserted", results[4].Action)
	assert.Len(t, debts.debts, 1)
}

func TestImport_SerialExcelComoFecha(t *testing.T) {
	uc, _, _, debts := newImportUC()

	results, err := uc.Import(tenant, dto.BulkDebtRequest{Items: []dto.BulkDebtItem{{
		CustomerName: "Cliente Serial",
		DueDate:      float64(46107), // 2026-03-26
		Amount:       float64(100),
		Currency:     "USD",
	}}})
	require.NoError(t, err)
	require.Empty(t, results[0].Error)

	debt := debts.debts[results[0].ID]
	assert.Equal(t, 2026, debt.DueDate.Year())
	assert.Equal(t, entity.CurrencyUSD, debt.Currency)
}

func TestImport_SinTenantEsInvalido(t *testing.T) {
	uc, _, _, _ := newImportUC()
	_, err := uc.Import("", dto.BulkDebtRequest{})
	assert.Error(t, err)
}

func TestImport_VendedorExistenteSeReutiliza(t *testing.T) {
	uc, users, _, _ := newImportUC()
	users.users["v-1"] = &entity.User{ID: "v-1", CompanyID: tenant, FullName: "Ayşe Demir", Role: entity.RoleSeller}

	results, err := uc.Import(tenant, dto.BulkDebtRequest{Items: []dto.BulkDebtItem{{
		CustomerName: "Cliente",
		DueDate:      "2026-04-01",
		Amount:       "100",
		Currency:     "TRY",
		SellerName:   "ayşe demir", // case-insensitive
	}}})
	require.NoError(t, err)
	require.Empty(t, results[0].Error)
	assert.Len(t, users.users, 1) // no creó un duplicado
}
