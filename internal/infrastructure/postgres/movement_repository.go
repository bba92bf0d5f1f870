package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
	"github.com/jhoicas/amazone-warehouse/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id::text, product_id::text, seq, date, from_zone, to_zone, warehouse`

// Create inserta un registro. Falla por FK si el producto no existe.
func (r *MovementRepo) Create(ctx context.Context, m *entity.MovementRecord) error {
	var from *string
	if m.FromZone != nil {
		s := string(*m.FromZone)
		from = &s
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO movements (id, product_id, seq, date, from_zone, to_zone, warehouse)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.ProductID, m.Seq, m.Date, from, string(m.ToZone), m.Warehouse,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert movement: producto %s no existe: %w", m.ProductID, err)
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByProduct historial de un producto en orden cronológico.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID string) ([]entity.MovementRecord, error) {
	return r.list(ctx,
		`SELECT `+movementColumns+` FROM movements WHERE product_id::text = $1 ORDER BY date, seq`, productID)
}

// ListAll todos los registros en orden cronológico.
func (r *MovementRepo) ListAll(ctx context.Context) ([]entity.MovementRecord, error) {
	return r.list(ctx, `SELECT `+movementColumns+` FROM movements ORDER BY date, seq, id`)
}

// DeleteByProduct borra el historial de un producto y devuelve cuántos registros eliminó.
func (r *MovementRepo) DeleteByProduct(ctx context.Context, productID string) (int, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM movements WHERE product_id::text = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete movements: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *MovementRepo) list(ctx context.Context, query string, args ...any) ([]entity.MovementRecord, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.MovementRecord, error) {
		var (
			m      entity.MovementRecord
			from   *string
			toZone string
		)
		if err := row.Scan(&m.ID, &m.ProductID, &m.Seq, &m.Date, &from, &toZone, &m.Warehouse); err != nil {
			return m, err
		}
		if from != nil {
			z := entity.ZoneType(*from)
			m.FromZone = &z
		}
		m.ToZone = entity.ZoneType(toZone)
		return m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return out, nil
}
