package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range f.users {
		if u.CompanyID == user.CompanyID && u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByCompanyAndID(companyID, id string) (*entity.User, error) {
	if u, ok := f.users[id]; ok && u.CompanyID == companyID {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmailAndCompany(email, companyID string) (*entity.User, error) {
	for _, u := range f.users {
		if u.CompanyID == companyID && u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByFullName(companyID, fullName string) (*entity.User, error) {
	for _, u := range f.users {
		if u.CompanyID == companyID && strings.EqualFold(u.FullName, fullName) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	return f.ListAllByCompany(companyID)
}

func (f *fakeUserRepo) ListAllByCompany(companyID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(user *entity.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdatePassword(id, passwordHash string) error {
	if u, ok := f.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeUserRepo) Delete(companyID, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) ListByManagerIn(companyID string, managerIDs []string) ([]*entity.User, error) {
	set := make(map[string]struct{}, len(managerIDs))
	for _, id := range managerIDs {
		set[id] = struct{}{}
	}
	var out []*entity.User
	for _, u := range f.users {
		if u.CompanyID != companyID || u.ManagerID == nil {
			continue
		}
		if _, ok := set[*u.ManagerID]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ListSelfManaged(companyID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.CompanyID == companyID && u.ManagerID != nil && *u.ManagerID == u.ID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateManagerID(companyID string, ids []string, managerID *string) (int64, error) {
	var n int64
	for _, id := range ids {
		if u, ok := f.users[id]; ok && u.CompanyID == companyID {
			u.ManagerID = managerID
			n++
		}
	}
	return n, nil
}

// fakeDetacher registra las llamadas de desenganche previas al borrado.
type fakeDetacher struct {
	calls []string
}

func (f *fakeDetacher) DetachSubordinates(companyID, userID string) (int, error) {
	f.calls = append(f.calls, userID)
	return 0, nil
}

const tenant = "00000000-0000-0000-0000-00000000aaaa"

func seedUser(repo *fakeUserRepo, id, email, role string, managerID *string) {
	repo.users[id] = &entity.User{
		ID:        id,
		CompanyID: tenant,
		Email:     email,
		FullName:  "Usuario " + id,
		Role:      role,
		ManagerID: managerID,
		Status:    "active",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestUserCreate_GeneraPasswordTemporalDeSeisDigitos(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo, &fakeDetacher{})

	out, err := uc.Create(tenant, dto.CreateUserRequest{
		Email:    "Vendedor@Empresa.com",
		FullName: "Vendedor Uno",
		Role:     entity.RoleSeller,
	})
	require.NoError(t, err)

	assert.Len(t, out.Password, 6, "la contraseña temporal debe tener 6 dígitos")
	assert.Equal(t, "vendedor@empresa.com", out.Email, "el email se normaliza a minúsculas")

	stored := repo.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, out.Password, stored.PasswordHash, "solo se persiste el hash")
}

func TestUserCreate_EmailDuplicadoEnLaEmpresa(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "dup@empresa.com", entity.RoleSeller, nil)
	uc := NewUserUseCase(repo, &fakeDetacher{})

	_, err := uc.Create(tenant, dto.CreateUserRequest{
		Email:    "dup@empresa.com",
		FullName: "Otro",
		Role:     entity.RoleSeller,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_RolInvalido(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), &fakeDetacher{})
	_, err := uc.Create(tenant, dto.CreateUserRequest{
		Email:    "x@empresa.com",
		FullName: "X",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// BulkCreate — normalización de etiquetas de rol
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkCreate_NormalizaEtiquetasDeRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo, &fakeDetacher{})

	results, err := uc.BulkCreate(tenant, dto.BulkUserRequest{Items: []dto.BulkUserItem{
		{Email: "a@e.com", FullName: "A", Role: "Vendedor"},
		{Email: "b@e.com", FullName: "B", Role: "satıcı"},
		{Email: "c@e.com", FullName: "C", Role: "Yönetici"},
		{Email: "d@e.com", FullName: "D", Role: "muhasebe"},
	}})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, entity.RoleSeller, results[0].Role)
	assert.Equal(t, entity.RoleSeller, results[1].Role)
	assert.Equal(t, entity.RoleManager, results[2].Role)
	assert.Equal(t, entity.RoleAccountant, results[3].Role)
	for _, r := range results {
		assert.Empty(t, r.Error)
		assert.Len(t, r.Password, 6)
	}
}

func TestBulkCreate_FilaMalaNoAbortaElLote(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo, &fakeDetacher{})

	results, err := uc.BulkCreate(tenant, dto.BulkUserRequest{Items: []dto.BulkUserItem{
		{Email: "ok@e.com", FullName: "OK", Role: "seller"},
		{Email: "", FullName: "Sin Email", Role: "seller"},
		{Email: "rol@e.com", FullName: "Rol Raro", Role: "astronauta"},
		{Email: "ok2@e.com", FullName: "OK2", Role: "gerente"},
	}})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Empty(t, results[0].Error)
	assert.NotEmpty(t, results[1].Error, "fila sin email debe reportar error")
	assert.NotEmpty(t, results[2].Error, "rol desconocido debe reportar error")
	assert.Empty(t, results[3].Error)
	assert.Len(t, repo.users, 2, "solo las filas válidas crean usuarios")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — desenganche previo de subordinados
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_DesenganchaSubordinadosAntesDeBorrar(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "jefe", "jefe@e.com", entity.RoleManager, nil)
	detacher := &fakeDetacher{}
	uc := NewUserUseCase(repo, detacher)

	require.NoError(t, uc.Delete(tenant, "jefe"))

	assert.Equal(t, []string{"jefe"}, detacher.calls, "debe desenganchar antes de borrar")
	assert.NotContains(t, repo.users, "jefe")
}

func TestDelete_UsuarioInexistente(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), &fakeDetacher{})
	err := uc.Delete(tenant, "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDelete_OtroTenantNoVeElUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "u1@e.com", entity.RoleSeller, nil)
	uc := NewUserUseCase(repo, &fakeDetacher{})

	err := uc.Delete("otro-tenant", "u1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Contains(t, repo.users, "u1", "el usuario del otro tenant queda intacto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Export
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_SinRotacionNoTocaPasswords(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "u1@e.com", entity.RoleSeller, nil)
	repo.users["u1"].PasswordHash = "hash-original"
	uc := NewUserUseCase(repo, &fakeDetacher{})

	rows, err := uc.Export(tenant, false)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Empty(t, rows[0].TempPassword)
	assert.Equal(t, "hash-original", repo.users["u1"].PasswordHash)
}

func TestExport_ConRotacionGeneraPasswordNueva(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(repo, "u1", "u1@e.com", entity.RoleSeller, nil)
	repo.users["u1"].PasswordHash = "hash-original"
	uc := NewUserUseCase(repo, &fakeDetacher{})

	rows, err := uc.Export(tenant, true)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Len(t, rows[0].TempPassword, 6, "con rotate se entrega la contraseña nueva")
	assert.NotEqual(t, "hash-original", repo.users["u1"].PasswordHash, "el hash debe rotarse")
}
