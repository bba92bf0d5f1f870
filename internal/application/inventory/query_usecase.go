package inventory

import (
	"context"
	"strings"

	"github.com/jhoicas/amazone-warehouse/internal/application/dto"
	"github.com/jhoicas/amazone-warehouse/internal/domain"
	"github.com/jhoicas/amazone-warehouse/internal/domain/entity"
	inv "github.com/jhoicas/amazone-warehouse/internal/domain/inventory"
	"github.com/jhoicas/amazone-warehouse/internal/domain/repository"
)

// QueryUseCase ruta de lectura para las pantallas: tablero, zona, ficha, vencimientos e historial.
// Cada consulta carga la colección en una instantánea (TxRunner.View) y filtra en memoria.
type QueryUseCase struct {
	tx     TxRunner
	policy inv.DeadlinePolicy
	options
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(tx TxRunner, policy inv.DeadlinePolicy, opts ...Option) *QueryUseCase {
	if policy.NearExpiryDays <= 0 {
		policy = inv.DefaultDeadlinePolicy()
	}
	return &QueryUseCase{tx: tx, policy: policy, options: buildOptions(opts)}
}

// MovementHistoryQuery filtros del historial. From/To son búsquedas de texto sobre las zonas.
type MovementHistoryQuery struct {
	Warehouse string
	Period    inv.Period
	From      string
	To        string
}

// GetProduct ficha de un producto con su historial ordenado.
func (uc *QueryUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewValidationError("id", "es requerido")
	}
	var product *entity.Product
	err := uc.tx.View(ctx, func(products repository.ProductRepository, _ repository.MovementRepository) error {
		p, err := products.GetByID(ctx, id)
		product = p
		return err
	})
	if err != nil {
		return nil, domain.NewPersistenceError("get product", err)
	}
	if product == nil {
		return nil, domain.NewNotFoundError("product", id)
	}
	out := toProductResponse(product, uc.policy, uc.now())
	return &out, nil
}

// Products productos de la bodega, opcionalmente de una sola zona.
func (uc *QueryUseCase) Products(ctx context.Context, warehouse string, zone *entity.ZoneType) (*dto.ProductListResponse, error) {
	all, err := uc.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	filters := []inv.ProductFilter{inv.InWarehouse(warehouse)}
	out := &dto.ProductListResponse{Warehouse: warehouse}
	if zone != nil {
		filters = append(filters, inv.InZone(*zone))
		out.Zone = zone.String()
	}
	list := inv.FilterProducts(all, filters...)
	now := uc.now()
	out.Items = make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out.Items = append(out.Items, toProductResponse(p, uc.policy, now))
	}
	out.Total = len(out.Items)
	return out, nil
}

// Dashboard cantidad de productos por zona en la bodega.
func (uc *QueryUseCase) Dashboard(ctx context.Context, warehouse string) (*dto.DashboardResponse, error) {
	all, err := uc.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	counts := inv.CountByZone(all, warehouse)
	out := &dto.DashboardResponse{Warehouse: warehouse, Zones: make([]dto.ZoneSummary, 0, len(counts))}
	for _, z := range entity.AllZones() {
		out.Zones = append(out.Zones, dto.ZoneSummary{Zone: z.String(), Icon: z.IconName(), Count: counts[z]})
		out.Total += counts[z]
	}
	return out, nil
}

// Deadlines productos con vencimiento de la bodega, del más próximo al más lejano.
func (uc *QueryUseCase) Deadlines(ctx context.Context, warehouse string) (*dto.DeadlineListResponse, error) {
	all, err := uc.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	list := inv.FilterProducts(all, inv.InWarehouse(warehouse), inv.WithExpiration())
	inv.SortByExpiration(list)

	now := uc.now()
	out := &dto.DeadlineListResponse{
		Warehouse:      warehouse,
		NearExpiryDays: uc.policy.NearExpiryDays,
		Items:          make([]dto.DeadlineResponse, 0, len(list)),
	}
	for _, p := range list {
		d := uc.policy.Evaluate(now, *p.ExpirationDate)
		out.Items = append(out.Items, toDeadlineResponse(p, d))
	}
	out.Total = len(out.Items)
	return out, nil
}

// MovementHistory movimientos de la bodega en el período, filtrados por texto de zona, más reciente primero.
func (uc *QueryUseCase) MovementHistory(ctx context.Context, q MovementHistoryQuery) (*dto.MovementHistoryResponse, error) {
	if q.Period == "" {
		q.Period = inv.PeriodMonth
	}
	var (
		movs  []entity.MovementRecord
		names = map[string]string{}
	)
	err := uc.tx.View(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		all, err := products.ListAll(ctx)
		if err != nil {
			return err
		}
		for _, p := range all {
			names[p.ID] = p.Name
		}
		movs, err = movements.ListAll(ctx)
		return err
	})
	if err != nil {
		return nil, domain.NewPersistenceError("list movements", err)
	}

	now := uc.now()
	list := inv.FilterMovements(movs,
		inv.MovementInWarehouse(q.Warehouse),
		inv.MovementInPeriod(q.Period, now),
		inv.FromZoneMatches(q.From),
		inv.ToZoneMatches(q.To),
	)
	inv.SortMovementsNewestFirst(list)

	out := &dto.MovementHistoryResponse{
		Warehouse:   q.Warehouse,
		Period:      string(q.Period),
		PeriodLabel: q.Period.Label(),
		Count:       len(list),
		Items:       make([]dto.MovementResponse, 0, len(list)),
	}
	for _, m := range list {
		out.Items = append(out.Items, toMovementResponse(m, names[m.ProductID]))
	}
	return out, nil
}

func (uc *QueryUseCase) loadProducts(ctx context.Context) ([]*entity.Product, error) {
	var all []*entity.Product
	err := uc.tx.View(ctx, func(products repository.ProductRepository, _ repository.MovementRepository) error {
		var err error
		all, err = products.ListAll(ctx)
		return err
	})
	if err != nil {
		return nil, domain.NewPersistenceError("list products", err)
	}
	return all, nil
}
