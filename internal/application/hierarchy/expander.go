package hierarchy

import (
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

// expandDescendants calcula el conjunto de ids alcanzables siguiendo las
// aristas manager_id hacia abajo desde los semilla: los semilla mismos más
// todos sus subordinados transitivos con rol seller o manager.
//
// Expansión breadth-first por rondas: una sola consulta ListByManagerIn por
// ronda resuelve toda la frontera (O(profundidad) round-trips, no O(nodos)).
// Termina cuando una ronda no aporta ids nuevos o al agotar maxDepth; el tope
// garantiza terminación incluso si los datos violan la aciclicidad.
func expandDescendants(users repository.UserRepository, companyID string, seeds []string, maxDepth int) (map[string]struct{}, error) {
	visited := make(map[string]struct{}, len(seeds))
	frontier := make([]string, 0, len(seeds))
	for _, id := range seeds {
		visited[id] = struct{}{}
		frontier = append(frontier, id)
	}

	for round := 0; round < maxDepth && len(frontier) > 0; round++ {
		rows, err := users.ListByManagerIn(companyID, frontier)
		if err != nil {
			return nil, err
		}
		next := frontier[:0:0]
		for _, u := range rows {
			if _, ok := visited[u.ID]; ok {
				continue
			}
			if !u.IsMoveable() {
				// admin y accountant no se arrastran con el subárbol
				continue
			}
			visited[u.ID] = struct{}{}
			next = append(next, u.ID)
		}
		frontier = next
	}

	return visited, nil
}
