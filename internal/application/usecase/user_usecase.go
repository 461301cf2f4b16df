package usecase

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
)

// SubordinateDetacher desengancha los subordinados directos de un usuario antes
// de borrarlo (lo implementa el servicio de jerarquía).
type SubordinateDetacher interface {
	DetachSubordinates(companyID, userID string) (int, error)
}

// UserUseCase gestión del personal de la empresa: altas individuales y masivas
// con contraseña temporal, edición, export y baja con desenganche de subordinados.
type UserUseCase struct {
	repo      repository.UserRepository
	hierarchy SubordinateDetacher
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, hierarchy SubordinateDetacher) *UserUseCase {
	return &UserUseCase{repo: repo, hierarchy: hierarchy}
}

// Create da de alta un usuario con una contraseña temporal de 6 dígitos que se
// devuelve UNA sola vez en la respuesta; después solo existe el hash.
func (uc *UserUseCase) Create(companyID string, in dto.CreateUserRequest) (*dto.CreatedUserResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmailAndCompany(in.Email, companyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	password, err := genTempPassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         in.Role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return &dto.CreatedUserResponse{
		UserResponse: *toUserResponse(user),
		Password:     password,
	}, nil
}

// BulkCreate procesa el alta masiva fila a fila: cada fila produce o bien el
// usuario creado con su contraseña temporal, o bien el error de esa fila. Una
// fila mala no aborta el lote.
func (uc *UserUseCase) BulkCreate(companyID string, in dto.BulkUserRequest) ([]dto.BulkUserResult, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	results := make([]dto.BulkUserResult, 0, len(in.Items))
	for _, item := range in.Items {
		email := strings.ToLower(strings.TrimSpace(item.Email))
		if email == "" || item.FullName == "" {
			results = append(results, dto.BulkUserResult{Email: email, Error: "nombre y email son obligatorios"})
			continue
		}
		role := normalizeRoleLabel(item.Role)
		if role == "" {
			results = append(results, dto.BulkUserResult{Email: email, Error: fmt.Sprintf("rol desconocido: %q", item.Role)})
			continue
		}
		created, err := uc.Create(companyID, dto.CreateUserRequest{
			Email:    email,
			FullName: item.FullName,
			Role:     role,
		})
		if err != nil {
			results = append(results, dto.BulkUserResult{Email: email, Error: err.Error()})
			continue
		}
		results = append(results, dto.BulkUserResult{
			ID:       created.ID,
			Email:    created.Email,
			FullName: created.FullName,
			Role:     created.Role,
			Password: created.Password,
		})
	}
	return results, nil
}

// GetByID obtiene un usuario de la empresa.
func (uc *UserUseCase) GetByID(companyID, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByCompanyAndID(companyID, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List lista el personal de la empresa con paginación.
func (uc *UserUseCase) List(companyID string, page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Update aplica un patch parcial (campos vacíos se ignoran).
func (uc *UserUseCase) Update(companyID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByCompanyAndID(companyID, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.FullName != "" {
		user.FullName = in.FullName
	}
	if in.Role != "" {
		if !entity.ValidRole(in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = in.Role
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete borra la cuenta. Antes desengancha a sus subordinados directos para
// no dejar manager_id colgando hacia un usuario inexistente.
func (uc *UserUseCase) Delete(companyID, id string) error {
	user, err := uc.repo.GetByCompanyAndID(companyID, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if _, err := uc.hierarchy.DetachSubordinates(companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(companyID, id)
}

// Export devuelve todo el personal como filas planas. Con rotatePasswords se
// genera y persiste una contraseña temporal nueva por usuario (para repartir
// credenciales tras un alta masiva); si la rotación de una fila falla, la fila
// sale igual con el fallo anotado.
func (uc *UserUseCase) Export(companyID string, rotatePasswords bool) ([]dto.UserExportRow, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	users, err := uc.repo.ListAllByCompany(companyID)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.UserExportRow, 0, len(users))
	for _, u := range users {
		row := dto.UserExportRow{
			ID:        u.ID,
			FullName:  u.FullName,
			Email:     u.Email,
			Role:      u.Role,
			ManagerID: u.ManagerID,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
		}
		if rotatePasswords {
			password, err := genTempPassword()
			if err != nil {
				row.Note = "no se pudo generar contraseña"
				rows = append(rows, row)
				continue
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				row.Note = "no se pudo generar contraseña"
				rows = append(rows, row)
				continue
			}
			if err := uc.repo.UpdatePassword(u.ID, string(hash)); err != nil {
				row.Note = "no se pudo rotar la contraseña"
				rows = append(rows, row)
				continue
			}
			row.TempPassword = password
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// normalizeRoleLabel mapea las etiquetas de rol que llegan en las hojas de
// cálculo (en español o turco, cualquier caja) al rol persistido.
func normalizeRoleLabel(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin", "administrador":
		return entity.RoleAdmin
	case "manager", "gerente", "yönetici":
		return entity.RoleManager
	case "accountant", "contador", "muhasebe", "muhasebeci":
		return entity.RoleAccountant
	case "seller", "vendedor", "satıcı", "satici":
		return entity.RoleSeller
	}
	return ""
}

// genTempPassword genera una contraseña temporal de 6 dígitos (crypto/rand).
func genTempPassword() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
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
