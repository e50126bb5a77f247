package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

var _ repository.SearchRepository = (*SearchStore)(nil)

// SearchStore búsquedas recientes (clave recentJobSearches: más reciente
// primero, deduplicadas, máximo 5) y preferencia de idioma
// (clave hire-at-language).
type SearchStore struct {
	kv    repository.KeyValueStore
	locks *keyedMutex
}

// NewSearchStore construye el repositorio.
func NewSearchStore(kv repository.KeyValueStore) *SearchStore {
	return &SearchStore{kv: kv, locks: newKeyedMutex()}
}

// RecentSearches devuelve los términos; vacío si no hay o el blob es ilegible.
func (s *SearchStore) RecentSearches(ctx context.Context) ([]string, error) {
	raw, err := s.kv.Get(ctx, keyRecentSearches)
	if err != nil {
		return nil, fmt.Errorf("leer búsquedas recientes: %w", err)
	}
	if raw == nil {
		return []string{}, nil
	}
	var terms []string
	if err := json.Unmarshal(raw, &terms); err != nil {
		log.Debug().Str("key", keyRecentSearches).Err(err).Msg("búsquedas recientes ilegibles, tratadas como vacías")
		return []string{}, nil
	}
	return terms, nil
}

// RecordSearch inserta el término al frente, retira duplicados y recorta a
// los 5 más recientes. Devuelve la lista resultante.
func (s *SearchStore) RecordSearch(ctx context.Context, term string) ([]string, error) {
	unlock := s.locks.Lock(keyRecentSearches)
	defer unlock()

	current, err := s.RecentSearches(ctx)
	if err != nil {
		return nil, err
	}
	updated := make([]string, 0, maxRecentSearches)
	updated = append(updated, term)
	for _, t := range current {
		if t != term {
			updated = append(updated, t)
		}
	}
	if len(updated) > maxRecentSearches {
		updated = updated[:maxRecentSearches]
	}
	raw, err := json.Marshal(updated)
	if err != nil {
		return nil, fmt.Errorf("serializar búsquedas recientes: %w", err)
	}
	if err := s.kv.Set(ctx, keyRecentSearches, raw); err != nil {
		return nil, fmt.Errorf("guardar búsquedas recientes: %w", err)
	}
	return updated, nil
}

// ClearSearches vacía la lista.
func (s *SearchStore) ClearSearches(ctx context.Context) error {
	if err := s.kv.Delete(ctx, keyRecentSearches); err != nil {
		return fmt.Errorf("limpiar búsquedas recientes: %w", err)
	}
	return nil
}

// Language devuelve el código de idioma guardado, o "en" si no hay o el blob
// es ilegible.
func (s *SearchStore) Language(ctx context.Context) (string, error) {
	raw, err := s.kv.Get(ctx, keyLanguage)
	if err != nil {
		return "", fmt.Errorf("leer idioma: %w", err)
	}
	if len(raw) == 0 {
		return defaultLanguage, nil
	}
	var code string
	if err := json.Unmarshal(raw, &code); err != nil {
		log.Debug().Str("key", keyLanguage).Err(err).Msg("idioma ilegible, se usa el valor por defecto")
		return defaultLanguage, nil
	}
	return code, nil
}

// SetLanguage guarda el código de idioma de dos letras. El valor se almacena
// como string JSON: el puerto KV solo admite blobs JSON.
func (s *SearchStore) SetLanguage(ctx context.Context, code string) error {
	raw, err := json.Marshal(code)
	if err != nil {
		return fmt.Errorf("serializar idioma: %w", err)
	}
	if err := s.kv.Set(ctx, keyLanguage, raw); err != nil {
		return fmt.Errorf("guardar idioma: %w", err)
	}
	return nil
}
