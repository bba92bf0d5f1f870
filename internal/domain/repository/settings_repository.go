package repository

import "context"

// SettingsRepository almacén clave-valor local para preferencias del usuario.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
