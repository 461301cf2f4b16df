// Package auth casos de uso de autenticación: alta de tenant (empresa + admin)
// y login. El tenant se resuelve por slug en la URL pública; el token JWT
// lleva user_id, company_id y role para que el middleware decida sin DB.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
	"github.com/tu-usuario/cobranzas-pro/pkg/jwt"
	"github.com/tu-usuario/cobranzas-pro/pkg/slug"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	jwtCfg    JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, companies repository.CompanyRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, companies: companies, jwtCfg: jwtCfg}
}

// RegisterCompany da de alta un tenant completo: la empresa (con slug derivado
// del nombre) y su primer usuario con rol admin. Devuelve el token del admin
// para que el front quede logueado tras el registro.
func (uc *UseCase) RegisterCompany(in dto.RegisterCompanyRequest) (*dto.RegisterCompanyResponse, error) {
	companySlug := slug.Make(in.CompanyName)
	if companySlug == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.companies.GetBySlug(companySlug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrSlugAlreadyExists
	}
	if existing, err := uc.users.GetByEmail(in.AdminEmail); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.CompanyName,
		Slug:      companySlug,
		Email:     in.CompanyEmail,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companies.Create(company); err != nil {
		return nil, err
	}

	admin := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Email:        in.AdminEmail,
		PasswordHash: string(hash),
		FullName:     in.AdminFullName,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(admin); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, company.ID, admin.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterCompanyResponse{
		Company: toCompanyResponse(company),
		Token:   token,
		User:    *toUserResponse(admin),
	}, nil
}

// Login verifica email/password dentro del tenant (resuelto por slug), genera
// el JWT y retorna token + usuario.
func (uc *UseCase) Login(companySlug string, in dto.LoginRequest) (*dto.LoginResponse, error) {
	company, err := uc.companies.GetBySlug(companySlug)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	user, err := uc.users.GetByEmailAndCompany(in.Email, company.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// ResolveCompany resuelve el tenant público por slug (pantalla de login).
func (uc *UseCase) ResolveCompany(companySlug string) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetBySlug(companySlug)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	out := toCompanyResponse(company)
	return &out, nil
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:     c.ID,
		Name:   c.Name,
		Slug:   c.Slug,
		Email:  c.Email,
		Status: c.Status,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		ManagerID: u.ManagerID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
