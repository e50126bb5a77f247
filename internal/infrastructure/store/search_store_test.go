package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seventechnologies/hireat-api/internal/infrastructure/memory"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/store"
)

func TestSearchStore_MasRecientePrimeroYDeduplicado(t *testing.T) {
	s := store.NewSearchStore(memory.NewKV())
	ctx := context.Background()

	for _, term := range []string{"go", "react", "go"} {
		_, err := s.RecordSearch(ctx, term)
		require.NoError(t, err)
	}

	terms, err := s.RecentSearches(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "react"}, terms,
		"repetir un término lo mueve al frente sin duplicarlo")
}

// Registrar un sexto término expulsa al más antiguo: la lista nunca pasa de 5.
func TestSearchStore_MaximoCincoTerminos(t *testing.T) {
	s := store.NewSearchStore(memory.NewKV())
	ctx := context.Background()

	for _, term := range []string{"a", "b", "c", "d", "e", "f"} {
		_, err := s.RecordSearch(ctx, term)
		require.NoError(t, err)
	}

	terms, err := s.RecentSearches(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "e", "d", "c", "b"}, terms,
		"el sexto término expulsa al más antiguo")
}

func TestSearchStore_Clear(t *testing.T) {
	s := store.NewSearchStore(memory.NewKV())
	ctx := context.Background()

	_, err := s.RecordSearch(ctx, "go")
	require.NoError(t, err)
	require.NoError(t, s.ClearSearches(ctx))

	terms, err := s.RecentSearches(ctx)
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestSearchStore_BlobIlegible_TratadoComoVacio(t *testing.T) {
	kv := memory.NewKV()
	s := store.NewSearchStore(kv)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "recentJobSearches", []byte("{corrupto")))

	terms, err := s.RecentSearches(ctx)
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestSearchStore_Idioma(t *testing.T) {
	s := store.NewSearchStore(memory.NewKV())
	ctx := context.Background()

	code, err := s.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", code, "sin preferencia guardada se asume inglés")

	require.NoError(t, s.SetLanguage(ctx, "es"))
	code, err = s.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "es", code)
}

// El puerto KV solo admite blobs JSON (el backend Postgres persiste en una
// columna jsonb): el idioma debe viajar como string JSON, no como bytes
// crudos, y un blob ilegible degrada al idioma por defecto.
func TestSearchStore_Idioma_AlmacenadoComoJSON(t *testing.T) {
	kv := memory.NewKV()
	s := store.NewSearchStore(kv)
	ctx := context.Background()

	require.NoError(t, s.SetLanguage(ctx, "es"))

	raw, err := kv.Get(ctx, "hire-at-language")
	require.NoError(t, err)
	assert.Equal(t, `"es"`, string(raw))
	assert.True(t, json.Valid(raw))

	require.NoError(t, kv.Set(ctx, "hire-at-language", []byte("fr")))
	code, err := s.Language(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", code, "un blob que no es JSON degrada al valor por defecto")
}
