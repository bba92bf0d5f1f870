package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/amazone-warehouse/internal/application/settings"
	"github.com/jhoicas/amazone-warehouse/internal/domain"
	"github.com/jhoicas/amazone-warehouse/internal/infrastructure/memory"
)

var warehouses = []string{"Warehouse A", "Warehouse B", "Warehouse C"}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("database is locked")
}
func (failingRepo) Set(context.Context, string, string) error { return errors.New("database is locked") }

func TestSettings_Onboarding(t *testing.T) {
	ctx := context.Background()
	uc := settings.NewSettingsUseCase(memory.NewSettingsRepository(), warehouses, "Warehouse A")

	done, err := uc.HasCompletedOnboarding(ctx)
	require.NoError(t, err)
	assert.False(t, done, "por defecto no se ha completado")

	require.NoError(t, uc.CompleteOnboarding(ctx))
	done, err = uc.HasCompletedOnboarding(ctx)
	require.NoError(t, err)
	assert.True(t, done)

	require.NoError(t, uc.ResetOnboarding(ctx))
	done, err = uc.HasCompletedOnboarding(ctx)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestSettings_SelectWarehouse(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSettingsRepository()
	uc := settings.NewSettingsUseCase(repo, warehouses, "Warehouse A")

	got, err := uc.SelectedWarehouse(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Warehouse A", got)

	require.NoError(t, uc.SelectWarehouse(ctx, " Warehouse C "))
	got, err = uc.SelectedWarehouse(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Warehouse C", got)

	err = uc.SelectWarehouse(ctx, "Warehouse Z")
	assert.True(t, errors.Is(err, domain.ErrValidation))

	// un valor guardado que ya no está configurado cae a la bodega por defecto
	require.NoError(t, repo.Set(ctx, settings.KeySelectedWarehouse, "Old Warehouse"))
	got, err = uc.SelectedWarehouse(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Warehouse A", got)
}

func TestSettings_ResolveWarehouse(t *testing.T) {
	ctx := context.Background()
	uc := settings.NewSettingsUseCase(memory.NewSettingsRepository(), warehouses, "Warehouse B")

	got, err := uc.ResolveWarehouse(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Warehouse B", got)

	got, err = uc.ResolveWarehouse(ctx, "Warehouse C")
	require.NoError(t, err)
	assert.Equal(t, "Warehouse C", got)

	_, err = uc.ResolveWarehouse(ctx, "Warehouse ZZZ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "warehouse", ve.Field)
}

func TestSettings_OnboardingCorruptoNoSeOculta(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSettingsRepository()
	uc := settings.NewSettingsUseCase(repo, warehouses, "Warehouse A")
	require.NoError(t, repo.Set(ctx, settings.KeyOnboardingCompleted, "quizás"))

	_, err := uc.HasCompletedOnboarding(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Contains(t, err.Error(), "quizás")

	_, err = uc.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrPersistence)

	// reset sobrescribe el valor sin leerlo
	require.NoError(t, uc.ResetOnboarding(ctx))
	done, err := uc.HasCompletedOnboarding(ctx)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestSettings_DefaultInvalidoUsaLaPrimera(t *testing.T) {
	uc := settings.NewSettingsUseCase(memory.NewSettingsRepository(), []string{" ", "North", "South"}, "Nowhere")
	got, err := uc.SelectedWarehouse(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "North", got)
	assert.Equal(t, []string{"North", "South"}, uc.Warehouses())
}

func TestSettings_Get(t *testing.T) {
	ctx := context.Background()
	uc := settings.NewSettingsUseCase(memory.NewSettingsRepository(), warehouses, "")
	require.NoError(t, uc.CompleteOnboarding(ctx))

	out, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, out.HasCompletedOnboarding)
	assert.Equal(t, "Warehouse A", out.SelectedWarehouse)
	assert.Equal(t, warehouses, out.Warehouses)
}

func TestSettings_ErroresDePersistencia(t *testing.T) {
	ctx := context.Background()
	uc := settings.NewSettingsUseCase(failingRepo{}, warehouses, "Warehouse A")

	_, err := uc.HasCompletedOnboarding(ctx)
	assert.True(t, errors.Is(err, domain.ErrPersistence))
	assert.True(t, errors.Is(uc.CompleteOnboarding(ctx), domain.ErrPersistence))
	assert.True(t, errors.Is(uc.SelectWarehouse(ctx, "Warehouse B"), domain.ErrPersistence))
	_, err = uc.Get(ctx)
	assert.True(t, errors.Is(err, domain.ErrPersistence))
}
