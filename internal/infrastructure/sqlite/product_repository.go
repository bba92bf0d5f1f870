package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
	"github.com/jhoicas/amazone-warehouse/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite (usable con db o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, sku, zone, warehouse, arrival_date, expiration_date, created_at, updated_at`

// Create inserta la fila del producto. El historial se persiste con MovementRepository.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `INSERT INTO products (` + productColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		product.ID, product.Name, product.SKU, string(product.Zone), product.Warehouse,
		formatTime(product.ArrivalDate), nullTime(product.ExpirationDate),
		formatTime(product.CreatedAt), formatTime(product.UpdatedAt),
	)
	if err != nil {
		if isConstraintViolation(err) {
			return fmt.Errorf("insert product: id duplicado %s: %w", product.ID, err)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto con su historial. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
	res, err := r.q.ExecContext(ctx,
		`UPDATE products SET zone = ?, updated_at = ? WHERE id = ?`,
		string(zone), formatTime(updatedAt), id,
	)
	if err != nil {
		return fmt.Errorf("update product zone: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update product zone: %s no existe", id)
	}
	return nil
}

// ListAll todos los productos en orden de alta, cada uno con su historial.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	byID := map[string]*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	rows.Close()

	movs, err := NewMovementRepository(r.q).ListAll(ctx)
	if err != nil {
		return nil, err
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
	res, err := r.q.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*entity.Product, error) {
	var (
		p                               entity.Product
		zone, arrival, created, updated string
		expiration                      sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Name, &p.SKU, &zone, &p.Warehouse, &arrival, &expiration, &created, &updated); err != nil {
		return nil, err
	}
	p.Zone = entity.ZoneType(zone)
	var err error
	if p.ArrivalDate, err = parseTime(arrival); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	if expiration.Valid {
		exp, err := parseTime(expiration.String)
		if err != nil {
			return nil, err
		}
		p.ExpirationDate = &exp
	}
	return &p, nil
}
