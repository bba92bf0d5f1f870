package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
	"github.com/jhoicas/amazone-warehouse/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre SQLite.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, product_id, seq, date, from_zone, to_zone, warehouse`

// Create inserta un registro. Falla por FK si el producto no existe.
func (r *MovementRepo) Create(ctx context.Context, m *entity.MovementRecord) error {
	var from sql.NullString
	if m.FromZone != nil {
		from = sql.NullString{String: string(*m.FromZone), Valid: true}
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO movements (`+movementColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.ProductID, m.Seq, formatTime(m.Date), from, string(m.ToZone), m.Warehouse,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("insert movement: producto %s inexistente o secuencia repetida: %w", m.ProductID, err)
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByProduct historial de un producto en orden cronológico.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID string) ([]entity.MovementRecord, error) {
	return r.list(ctx,
		`SELECT `+movementColumns+` FROM movements WHERE product_id = ? ORDER BY date, seq`, productID)
}

// ListAll todos los registros en orden cronológico.
func (r *MovementRepo) ListAll(ctx context.Context) ([]entity.MovementRecord, error) {
	return r.list(ctx, `SELECT `+movementColumns+` FROM movements ORDER BY date, seq, rowid`)
}

// DeleteByProduct borra el historial de un producto y devuelve cuántos registros eliminó.
func (r *MovementRepo) DeleteByProduct(ctx context.Context, productID string) (int, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM movements WHERE product_id = ?`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete movements: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete movements: %w", err)
	}
	return int(n), nil
}

func (r *MovementRepo) list(ctx context.Context, query string, args ...any) ([]entity.MovementRecord, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []entity.MovementRecord
	for rows.Next() {
		var (
			m        entity.MovementRecord
			date, to string
			from     sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Seq, &date, &from, &to, &m.Warehouse); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if m.Date, err = parseTime(date); err != nil {
			return nil, err
		}
		if from.Valid {
			z := entity.ZoneType(from.String)
			m.FromZone = &z
		}
		m.ToZone = entity.ZoneType(to)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return out, nil
}
