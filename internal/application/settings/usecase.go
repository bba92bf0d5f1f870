package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/amazone-warehouse/internal/application/dto"
	"github.com/jhoicas/amazone-warehouse/internal/domain"
	"github.com/jhoicas/amazone-warehouse/internal/domain/repository"
)

// Claves persistidas en el almacén clave-valor.
const (
	KeyOnboardingCompleted = "hasCompletedOnboarding"
	KeySelectedWarehouse   = "selectedWarehouse"
)

// SettingsUseCase preferencias del usuario (onboarding y bodega activa).
// Se construye una vez y se pasa explícitamente a quien lo necesita.
type SettingsUseCase struct {
	repo             repository.SettingsRepository
	warehouses       []string
	defaultWarehouse string
}

// NewSettingsUseCase construye el caso de uso. Si defaultWarehouse está vacío o no
// pertenece a warehouses, se usa la primera bodega configurada.
func NewSettingsUseCase(repo repository.SettingsRepository, warehouses []string, defaultWarehouse string) *SettingsUseCase {
	list := make([]string, 0, len(warehouses))
	for _, w := range warehouses {
		if w = strings.TrimSpace(w); w != "" {
			list = append(list, w)
		}
	}
	uc := &SettingsUseCase{repo: repo, warehouses: list, defaultWarehouse: strings.TrimSpace(defaultWarehouse)}
	if !uc.isKnown(uc.defaultWarehouse) && len(list) > 0 {
		uc.defaultWarehouse = list[0]
	}
	return uc
}

// Warehouses bodegas disponibles para seleccionar.
func (uc *SettingsUseCase) Warehouses() []string {
	out := make([]string, len(uc.warehouses))
	copy(out, uc.warehouses)
	return out
}

// HasCompletedOnboarding false si nunca se completó.
func (uc *SettingsUseCase) HasCompletedOnboarding(ctx context.Context) (bool, error) {
	v, ok, err := uc.repo.Get(ctx, KeyOnboardingCompleted)
	if err != nil {
		return false, domain.NewPersistenceError("read onboarding flag", err)
	}
	if !ok {
		return false, nil
	}
	done, err := strconv.ParseBool(v)
	if err != nil {
		return false, domain.NewPersistenceError("parse onboarding flag", fmt.Errorf("valor %q: %w", v, err))
	}
	return done, nil
}

func (uc *SettingsUseCase) CompleteOnboarding(ctx context.Context) error {
	return uc.setOnboarding(ctx, true)
}

func (uc *SettingsUseCase) ResetOnboarding(ctx context.Context) error {
	return uc.setOnboarding(ctx, false)
}

func (uc *SettingsUseCase) setOnboarding(ctx context.Context, done bool) error {
	if err := uc.repo.Set(ctx, KeyOnboardingCompleted, strconv.FormatBool(done)); err != nil {
		return domain.NewPersistenceError("write onboarding flag", err)
	}
	return nil
}

// SelectedWarehouse bodega activa; la de por defecto si no hay una guardada válida.
func (uc *SettingsUseCase) SelectedWarehouse(ctx context.Context) (string, error) {
	v, ok, err := uc.repo.Get(ctx, KeySelectedWarehouse)
	if err != nil {
		return "", domain.NewPersistenceError("read selected warehouse", err)
	}
	if !ok || !uc.isKnown(v) {
		return uc.defaultWarehouse, nil
	}
	return v, nil
}

// SelectWarehouse cambia la bodega activa. Debe ser una de las configuradas.
func (uc *SettingsUseCase) SelectWarehouse(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if !uc.isKnown(name) {
		return domain.NewValidationError("warehouse", "no es una bodega configurada")
	}
	if err := uc.repo.Set(ctx, KeySelectedWarehouse, name); err != nil {
		return domain.NewPersistenceError("write selected warehouse", err)
	}
	return nil
}

// ResolveWarehouse devuelve requested si viene informado (debe ser una bodega
// configurada); si no, la bodega activa.
func (uc *SettingsUseCase) ResolveWarehouse(ctx context.Context, requested string) (string, error) {
	if requested = strings.TrimSpace(requested); requested != "" {
		if !uc.isKnown(requested) {
			return "", domain.NewValidationError("warehouse", "no es una bodega configurada")
		}
		return requested, nil
	}
	return uc.SelectedWarehouse(ctx)
}

// Get todas las preferencias.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	done, err := uc.HasCompletedOnboarding(ctx)
	if err != nil {
		return nil, err
	}
	selected, err := uc.SelectedWarehouse(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		HasCompletedOnboarding: done,
		SelectedWarehouse:      selected,
		Warehouses:             uc.Warehouses(),
	}, nil
}

func (uc *SettingsUseCase) isKnown(name string) bool {
	for _, w := range uc.warehouses {
		if w == name {
			return true
		}
	}
	return false
}
