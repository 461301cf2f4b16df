package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/cobranzas-pro/internal/domain/entity"
	"github.com/tu-usuario/cobranzas-pro/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

const noteColumns = `id, company_id, customer_id, debt_id, body, created_by, created_at`

// NoteRepo implementación del puerto NoteRepository sobre PostgreSQL.
type NoteRepo struct {
	q Querier
}

// NewNoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNoteRepository(q Querier) *NoteRepo {
	return &NoteRepo{q: q}
}

// Create persiste una nueva nota.
func (r *NoteRepo) Create(note *entity.Note) error {
	query := `
		INSERT INTO notes (` + noteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		note.ID, note.CompanyID, note.CustomerID, note.DebtID, note.Body,
		note.CreatedBy, note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// ListByCustomer lista las notas de un cliente (más recientes primero).
func (r *NoteRepo) ListByCustomer(companyID, customerID string) ([]*entity.Note, error) {
	return r.scanMany(
		`SELECT `+noteColumns+` FROM notes WHERE company_id = $1 AND customer_id = $2 ORDER BY created_at DESC`,
		companyID, customerID,
	)
}

// ListByDebt lista las notas atadas a una deuda.
func (r *NoteRepo) ListByDebt(companyID, debtID string) ([]*entity.Note, error) {
	return r.scanMany(
		`SELECT `+noteColumns+` FROM notes WHERE company_id = $1 AND debt_id = $2 ORDER BY created_at DESC`,
		companyID, debtID,
	)
}

func (r *NoteRepo) scanMany(query string, args ...any) ([]*entity.Note, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Note
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(
			&n.ID, &n.CompanyID, &n.CustomerID, &n.DebtID, &n.Body, &n.CreatedBy, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}
