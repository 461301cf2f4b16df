// Package hierarchy mantiene el bosque de reporte (manager_id) del personal de
// cada empresa y lo muta en bloque de forma segura: reasignación de subárboles
// completos a un nuevo gerente, reparación de self-loops y transferencia plana
// de cartera entre vendedores.
package hierarchy

import (
	"context"

	"github.com/tu-usuario/cobranzas-pro/internal/application/dto"
	"github.com/tu-usuario/cobranzas-pro/internal/domain"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
	"github.com/tu-usuario/cobranzas-pro/internal/metrics"
)

// DefaultMaxDepth rondas de expansión por defecto; cubre organizaciones de
// hasta 6 niveles de gerencia. Es una válvula de seguridad contra datos
// cíclicos, no un límite de negocio (configurable vía HIERARCHY_MAX_DEPTH).
const DefaultMaxDepth = 6

// detachRounds rondas al desenganchar subordinados directos antes de borrar un
// usuario; más de una solo por si llegan re-altas concurrentes entre rondas.
const detachRounds = 3

// TxRunner ejecuta fn con un UserRepository atado a una transacción, de modo
// que la expansión (lectura) y la reescritura (escritura) de una reasignación
// vean el mismo estado y se confirmen juntas.
type TxRunner interface {
	RunUsers(ctx context.Context, fn func(users repository.UserRepository) error) error
}

// Service casos de uso del subsistema de jerarquía. Sin estado mutable en
// proceso: cada operación corre dentro de un request y toca solo el store.
type Service struct {
	users     repository.UserRepository
	debts     repository.DebtRepository
	customers repository.CustomerRepository
	tx        TxRunner
	maxDepth  int
}

// NewService construye el servicio. maxDepth <= 0 aplica DefaultMaxDepth.
func NewService(
	users repository.UserRepository,
	debts repository.DebtRepository,
	customers repository.CustomerRepository,
	tx TxRunner,
	maxDepth int,
) *Service {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Service{users: users, debts: debts, customers: customers, tx: tx, maxDepth: maxDepth}
}

// AssignManager mueve cada usuario semilla Y todo su subárbol a reportar al
// gerente destino, en una sola reescritura de manager_id.
//
// Reglas:
//   - companyID y ManagerID son obligatorios (ErrInvalidInput si faltan).
//   - Los semilla se deduplican y el propio destino se excluye (nadie puede ser
//     su propio gerente). Un set resultante vacío es un no-op exitoso con 0.
//   - Si el destino aparece dentro del conjunto expandido (es descendiente de
//     un semilla), la operación se rechaza con ErrCycleRejected: de otro modo
//     el gerente quedaría reportando dentro de su propio equipo.
//
// La expansión y la reescritura corren en una misma transacción; cualquier
// error del store aborta la operación completa sin escritura parcial.
func (s *Service) AssignManager(ctx context.Context, companyID string, in dto.AssignManagerRequest) (*dto.AssignManagerResponse, error) {
	if companyID == "" || in.ManagerID == "" {
		metrics.HierarchyReassignTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidInput
	}

	candidates := dedupeExcluding(in.UserIDs, in.ManagerID)
	if len(candidates) == 0 {
		// Selección vacía o reducida a trivial: éxito sin escrituras.
		metrics.HierarchyReassignTotal.WithLabelValues("ok").Inc()
		return &dto.AssignManagerResponse{Moved: 0}, nil
	}

	var moved int64
	err := s.tx.RunUsers(ctx, func(users repository.UserRepository) error {
		expanded, err := expandDescendants(users, companyID, candidates, s.maxDepth)
		if err != nil {
			return err
		}
		if _, ok := expanded[in.ManagerID]; ok {
			return domain.ErrCycleRejected
		}
		managerID := in.ManagerID
		moved, err = users.UpdateManagerID(companyID, setToSlice(expanded), &managerID)
		return err
	})
	if err != nil {
		if err == domain.ErrCycleRejected {
			metrics.HierarchyReassignTotal.WithLabelValues("cycle_rejected").Inc()
		} else {
			metrics.HierarchyReassignTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.HierarchyReassignTotal.WithLabelValues("ok").Inc()
	metrics.HierarchyMovedUsers.Add(float64(moved))
	return &dto.AssignManagerResponse{Moved: int(moved)}, nil
}

// Repair limpia los manager_id auto-referentes (manager_id = id) de la empresa.
// Solo cubre el ciclo a 1 salto; los ciclos más largos se previenen en el
// momento de asignar (ErrCycleRejected), no se reparan aquí. Idempotente: con
// datos limpios reporta 0.
func (s *Service) Repair(companyID string) (*dto.RepairResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	bad, err := s.users.ListSelfManaged(companyID)
	if err != nil {
		return nil, err
	}
	if len(bad) == 0 {
		return &dto.RepairResponse{Repaired: 0}, nil
	}
	ids := make([]string, 0, len(bad))
	for _, u := range bad {
		ids = append(ids, u.ID)
	}
	n, err := s.users.UpdateManagerID(companyID, ids, nil)
	if err != nil {
		return nil, err
	}
	metrics.HierarchyRepairsTotal.Add(float64(n))
	return &dto.RepairResponse{Repaired: int(n)}, nil
}

// ReassignOwnership transfiere en bloque la cartera de un vendedor a otro:
// deudas (seller_id) y clientes (assigned_seller_id). Plano, sin recorrer el
// árbol; ambas reescrituras van acotadas por tenant.
func (s *Service) ReassignOwnership(companyID string, in dto.ReassignOwnershipRequest) (*dto.ReassignOwnershipResponse, error) {
	if companyID == "" || in.FromSellerID == "" || in.ToSellerID == "" {
		metrics.OwnershipTransfersTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidInput
	}
	if in.FromSellerID == in.ToSellerID {
		metrics.OwnershipTransfersTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrSameSeller
	}

	debtsMoved, err := s.debts.ReassignSeller(companyID, in.FromSellerID, in.ToSellerID)
	if err != nil {
		metrics.OwnershipTransfersTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	customersMoved, err := s.customers.ReassignSeller(companyID, in.FromSellerID, in.ToSellerID)
	if err != nil {
		metrics.OwnershipTransfersTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.OwnershipTransfersTotal.WithLabelValues("ok").Inc()
	return &dto.ReassignOwnershipResponse{
		DebtsMoved:     debtsMoved,
		CustomersMoved: customersMoved,
	}, nil
}

// DetachSubordinates pone en nil el manager_id de los subordinados DIRECTOS de
// userID (rondas acotadas). Se usa antes de borrar una cuenta para no dejar
// referencias colgantes.
func (s *Service) DetachSubordinates(companyID, userID string) (int, error) {
	if companyID == "" || userID == "" {
		return 0, domain.ErrInvalidInput
	}
	detached := 0
	for round := 0; round < detachRounds; round++ {
		children, err := s.users.ListByManagerIn(companyID, []string{userID})
		if err != nil {
			return detached, err
		}
		if len(children) == 0 {
			break
		}
		ids := make([]string, 0, len(children))
		for _, c := range children {
			ids = append(ids, c.ID)
		}
		n, err := s.users.UpdateManagerID(companyID, ids, nil)
		if err != nil {
			return detached, err
		}
		detached += int(n)
	}
	return detached, nil
}

// dedupeExcluding devuelve los ids únicos, sin vacíos y sin excluded,
// preservando el orden de llegada.
func dedupeExcluding(ids []string, excluded string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || id == excluded {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
