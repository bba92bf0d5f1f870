package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
	"github.com/jhoicas/amazone-warehouse/internal/domain/repository"
)

func newProduct(t *testing.T, name string) *entity.Product {
	t.Helper()
	p, err := entity.NewProduct(entity.NewProductParams{
		Name: name, SKU: name, Zone: entity.ZoneComing, Warehouse: "Warehouse A",
	}, time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p
}

func insert(t *testing.T, s *Store, p *entity.Product) {
	t.Helper()
	err := s.Run(context.Background(), func(products repository.ProductRepository, movements repository.MovementRepository) error {
		if err := products.Create(context.Background(), p); err != nil {
			return err
		}
		return movements.Create(context.Background(), &p.History[0])
	})
	require.NoError(t, err)
}

func TestStore_RunConfirma(t *testing.T) {
	s := NewStore()
	p := newProduct(t, "widget")
	insert(t, s, p)

	products, movements := s.Counts()
	assert.Equal(t, 1, products)
	assert.Equal(t, 1, movements)

	err := s.View(context.Background(), func(products repository.ProductRepository, _ repository.MovementRepository) error {
		got, err := products.GetByID(context.Background(), p.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "widget", got.Name)
		assert.Len(t, got.History, 1)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_ErrorEnFnDescartaCambios(t *testing.T) {
	s := NewStore()
	boom := errors.New("boom")
	err := s.Run(context.Background(), func(products repository.ProductRepository, _ repository.MovementRepository) error {
		require.NoError(t, products.Create(context.Background(), newProduct(t, "a")))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	products, _ := s.Counts()
	assert.Zero(t, products)
}

func TestStore_FailNextCommitSoloUnaVez(t *testing.T) {
	s := NewStore()
	s.FailNextCommit(errors.New("disk I/O error"))

	err := s.Run(context.Background(), func(products repository.ProductRepository, _ repository.MovementRepository) error {
		return products.Create(context.Background(), newProduct(t, "a"))
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit transaction")
	products, _ := s.Counts()
	assert.Zero(t, products)

	insert(t, s, newProduct(t, "b"))
	products, _ = s.Counts()
	assert.Equal(t, 1, products)
}

func TestStore_ViewEsDeSoloLectura(t *testing.T) {
	s := NewStore()
	err := s.View(context.Background(), func(products repository.ProductRepository, _ repository.MovementRepository) error {
		return products.Create(context.Background(), newProduct(t, "a"))
	})
	assert.ErrorIs(t, err, errReadOnly)
}

func TestStore_ContextoCancelado(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := s.Run(ctx, func(repository.ProductRepository, repository.MovementRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestStore_ReglasDeIntegridad(t *testing.T) {
	s := NewStore()
	p := newProduct(t, "a")
	insert(t, s, p)

	err := s.Run(context.Background(), func(products repository.ProductRepository, _ repository.MovementRepository) error {
		_, err := products.Delete(context.Background(), p.ID)
		return err
	})
	assert.Error(t, err, "no se borra un producto con movimientos")

	orphan := entity.MovementRecord{ID: "m1", ProductID: "missing", ToZone: entity.ZoneShipment}
	err = s.Run(context.Background(), func(_ repository.ProductRepository, movements repository.MovementRepository) error {
		return movements.Create(context.Background(), &orphan)
	})
	assert.Error(t, err, "no se crean movimientos huérfanos")

	err = s.Run(context.Background(), func(products repository.ProductRepository, movements repository.MovementRepository) error {
		n, err := movements.DeleteByProduct(context.Background(), p.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, 1, n)
		ok, err := products.Delete(context.Background(), p.ID)
		assert.True(t, ok)
		return err
	})
	require.NoError(t, err)
	assert.Empty(t, s.MovementProductIDs())
}

func TestStore_CopiasAisladas(t *testing.T) {
	s := NewStore()
	p := newProduct(t, "a")
	insert(t, s, p)

	p.Name = "mutado fuera"
	err := s.View(context.Background(), func(products repository.ProductRepository, _ repository.MovementRepository) error {
		got, err := products.GetByID(context.Background(), p.ID)
		require.NoError(t, err)
		assert.Equal(t, "a", got.Name)
		got.Zone = entity.ZoneDefective
		return nil
	})
	require.NoError(t, err)

	err = s.View(context.Background(), func(products repository.ProductRepository, _ repository.MovementRepository) error {
		got, _ := products.GetByID(context.Background(), p.ID)
		assert.Equal(t, entity.ZoneComing, got.Zone)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_ListadosOrdenados(t *testing.T) {
	s := NewStore()
	a, b := newProduct(t, "a"), newProduct(t, "b")
	insert(t, s, a)
	insert(t, s, b)

	err := s.Run(context.Background(), func(products repository.ProductRepository, movements repository.MovementRepository) error {
		stored, err := products.GetByID(context.Background(), a.ID)
		if err != nil {
			return err
		}
		rec, err := stored.MoveTo(entity.ZoneShipment, time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC))
		if err != nil {
			return err
		}
		if err := products.UpdateZone(context.Background(), stored.ID, stored.Zone, stored.UpdatedAt); err != nil {
			return err
		}
		return movements.Create(context.Background(), &rec)
	})
	require.NoError(t, err)

	err = s.View(context.Background(), func(products repository.ProductRepository, movements repository.MovementRepository) error {
		all, err := products.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, a.ID, all[0].ID)
		assert.Equal(t, entity.ZoneShipment, all[0].Zone)
		assert.NoError(t, all[0].CheckHistory())

		movs, err := movements.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, movs, 3)
		assert.Equal(t, entity.ZoneShipment, movs[2].ToZone)

		byProduct, err := movements.ListByProduct(context.Background(), a.ID)
		require.NoError(t, err)
		assert.Len(t, byProduct, 2)
		return nil
	})
	require.NoError(t, err)
}

func TestSettingsRepo(t *testing.T) {
	r := NewStore().Settings()
	_, ok, err := r.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Set(context.Background(), "k", "v"))
	v, ok, err := r.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
