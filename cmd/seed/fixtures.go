package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	appinventory "github.com/jhoicas/amazone-warehouse/internal/application/inventory"
	"github.com/jhoicas/amazone-warehouse/internal/application/settings"
	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
)

// fixtureFile archivo YAML de datos de ejemplo.
type fixtureFile struct {
	Warehouse string           `yaml:"warehouse"`
	Products  []productFixture `yaml:"products"`
}

// productFixture un producto y, opcionalmente, la secuencia de zonas por las que pasa.
type productFixture struct {
	Name           string   `yaml:"name"`
	SKU            string   `yaml:"sku"`
	Zone           string   `yaml:"zone"`
	Warehouse      string   `yaml:"warehouse"`
	ArrivedDaysAgo int      `yaml:"arrived_days_ago"`
	ExpiresInDays  *int     `yaml:"expires_in_days"`
	Moves          []string `yaml:"moves"`
}

type seedResult struct {
	Products int
	Moves    int
}

func parseFixtures(r io.Reader) (*fixtureFile, error) {
	var f fixtureFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("leer fixtures: %w", err)
	}
	return &f, nil
}

// apply da de alta cada producto y aplica sus movimientos con los casos de uso reales,
// así el resultado respeta las mismas reglas que la API.
func apply(ctx context.Context, f *fixtureFile, st *settings.SettingsUseCase, add *appinventory.AddProductUseCase, move *appinventory.MoveProductsUseCase, now time.Time) (seedResult, error) {
	var res seedResult
	for i, p := range f.Products {
		zone, err := entity.ParseZone(p.Zone)
		if err != nil {
			return res, fmt.Errorf("producto %d (%s): %w", i, p.Name, err)
		}
		requested := p.Warehouse
		if requested == "" {
			requested = f.Warehouse
		}
		warehouse, err := st.ResolveWarehouse(ctx, requested)
		if err != nil {
			return res, fmt.Errorf("producto %d (%s): %w", i, p.Name, err)
		}
		in := appinventory.AddProductInput{
			Name:        p.Name,
			SKU:         p.SKU,
			Zone:        zone,
			Warehouse:   warehouse,
			ArrivalDate: now.AddDate(0, 0, -p.ArrivedDaysAgo),
		}
		if p.ExpiresInDays != nil {
			exp := now.AddDate(0, 0, *p.ExpiresInDays)
			in.ExpirationDate = &exp
		}
		id, err := add.AddProduct(ctx, in)
		if err != nil {
			return res, fmt.Errorf("producto %d (%s): %w", i, p.Name, err)
		}
		res.Products++

		for _, m := range p.Moves {
			to, err := entity.ParseZone(m)
			if err != nil {
				return res, fmt.Errorf("producto %d (%s) mover a %q: %w", i, p.Name, m, err)
			}
			if _, err := move.MoveProducts(ctx, appinventory.MoveProductsInput{ProductIDs: []string{id}, ToZone: to, Warehouse: warehouse}); err != nil {
				return res, fmt.Errorf("producto %d (%s) mover a %q: %w", i, p.Name, m, err)
			}
			res.Moves++
		}
	}
	return res, nil
}
