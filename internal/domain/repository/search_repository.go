package repository

import "context"

// SearchRepository búsquedas recientes de empleo (clave recentJobSearches)
// y preferencia de idioma (clave hire-at-language).
type SearchRepository interface {
	// RecentSearches devuelve los términos, más reciente primero.
	RecentSearches(ctx context.Context) ([]string, error)
	// RecordSearch inserta el término al frente, deduplicando y recortando
	// la lista a los 5 más recientes.
	RecordSearch(ctx context.Context, term string) ([]string, error)
	// ClearSearches vacía la lista.
	ClearSearches(ctx context.Context) error

	Language(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, code string) error
}
