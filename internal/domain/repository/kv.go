package repository

import "context"

// KeyValueStore puerto del almacén clave-valor donde vive todo el estado
// persistente (registros de usuario, listas de empleos por identidad,
// catálogos IAM, búsquedas recientes). Los valores son blobs JSON.
//
// Layout de claves:
//
//	<email>                → registro de usuario (JSON)
//	<email>_applied_jobs   → array JSON de ids de empleo
//	<email>_saved_jobs     → array JSON de ids de empleo
//	admin_permissions      → array JSON de Permission
//	admin_groups           → array JSON de Group
//	recentJobSearches      → array JSON de strings (máx. 5, más reciente primero)
//	hire-at-language       → código de idioma de dos letras
type KeyValueStore interface {
	// Get devuelve el valor de la clave, o (nil, nil) si no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set escribe el valor completo bajo la clave (upsert).
	Set(ctx context.Context, key string, value []byte) error
	// Delete elimina la clave; borrar una clave inexistente no es error.
	Delete(ctx context.Context, key string) error
	// Keys devuelve todas las claves del almacén.
	Keys(ctx context.Context) ([]string, error)
}
