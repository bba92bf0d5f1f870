package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
	"github.com/jhoicas/amazone-warehouse/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const (
	productColumns = `id, name, sku, zone, warehouse, arrival_date, expiration_date, created_at, updated_at`
	productSelect  = `id::text, name, sku, zone, warehouse, arrival_date, expiration_date, created_at, updated_at`
)

// Create persiste la fila del producto. El historial se persiste con MovementRepository.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.SKU, string(product.Zone), product.Warehouse,
		product.ArrivalDate, product.ExpirationDate, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert product: id duplicado %s: %w", product.ID, err)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto con su historial. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productSelect+` FROM products WHERE id::text = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	history, err := NewMovementRepository(r.q).ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	p.History = history
	if err := p.CheckHistory(); err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	return p, nil
}

// UpdateZone cambia la zona actual.
func (r *ProductRepo) UpdateZone(ctx context.Context, id string, zone entity.ZoneType, updatedAt time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE products SET zone = $1, updated_at = $2 WHERE id::text = $3`,
		string(zone), updatedAt, id,
	)
	if err != nil {
		return fmt.Errorf("update product zone: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update product zone: %s no existe", id)
	}
	return nil
}

// ListAll todos los productos en orden de alta, cada uno con su historial.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productSelect+` FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	movs, err := NewMovementRepository(r.q).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}
	for _, m := range movs {
		if p, ok := byID[m.ProductID]; ok {
			p.History = append(p.History, m)
		}
	}
	for _, p := range list {
		if err := p.CheckHistory(); err != nil {
			return nil, fmt.Errorf("load products: %w", err)
		}
	}
	return list, nil
}

// Delete borra la fila del producto. La FK impide borrarlo si aún tiene movimientos.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id::text = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, fmt.Errorf("delete product: %s aún tiene movimientos: %w", id, err)
		}
		return false, fmt.Errorf("delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p    entity.Product
		zone string
	)
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &zone, &p.Warehouse,
		&p.ArrivalDate, &p.ExpirationDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Zone = entity.ZoneType(zone)
	return &p, nil
}
