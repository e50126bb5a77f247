package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seventechnologies/hireat-api/internal/infrastructure/memory"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/store"
)

func TestUserJobsStore_ApplyEsIdempotente(t *testing.T) {
	s := store.NewUserJobsStore(memory.NewKV())
	ctx := context.Background()

	require.NoError(t, s.ApplyToJob(ctx, "ana@example.com", 7))
	require.NoError(t, s.ApplyToJob(ctx, "ana@example.com", 7))
	require.NoError(t, s.ApplyToJob(ctx, "ana@example.com", 3))

	ids, err := s.AppliedJobs(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 3}, ids, "aplicar dos veces no duplica el id")
}

func TestUserJobsStore_ListasSeparadasPorIdentidad(t *testing.T) {
	s := store.NewUserJobsStore(memory.NewKV())
	ctx := context.Background()

	require.NoError(t, s.SaveJob(ctx, "ana@example.com", 1))
	require.NoError(t, s.SaveJob(ctx, "luis@example.com", 2))

	ana, err := s.SavedJobs(ctx, "ana@example.com")
	require.NoError(t, err)
	luis, err := s.SavedJobs(ctx, "luis@example.com")
	require.NoError(t, err)

	assert.Equal(t, []int{1}, ana)
	assert.Equal(t, []int{2}, luis)
}

func TestUserJobsStore_UnsaveAusente_NoOp(t *testing.T) {
	s := store.NewUserJobsStore(memory.NewKV())
	ctx := context.Background()

	require.NoError(t, s.SaveJob(ctx, "ana@example.com", 1))
	require.NoError(t, s.UnsaveJob(ctx, "ana@example.com", 99))

	ids, err := s.SavedJobs(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids, "retirar un id ausente deja la lista igual")

	require.NoError(t, s.UnsaveJob(ctx, "ana@example.com", 1))
	ids, err = s.SavedJobs(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestUserJobsStore_ListaIlegible_TratadaComoVacia(t *testing.T) {
	kv := memory.NewKV()
	s := store.NewUserJobsStore(kv)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "ana@example.com_saved_jobs", []byte("no es un array")))

	ids, err := s.SavedJobs(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Empty(t, ids)

	// la siguiente escritura repara la clave
	require.NoError(t, s.SaveJob(ctx, "ana@example.com", 5))
	ids, err = s.SavedJobs(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, ids)
}

// Escrituras concurrentes sobre la misma identidad no pierden actualizaciones:
// el mutex por clave serializa el leer-modificar-escribir.
func TestUserJobsStore_EscriturasConcurrentesNoPierdenIDs(t *testing.T) {
	s := store.NewUserJobsStore(memory.NewKV())
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, s.ApplyToJob(ctx, "ana@example.com", id))
		}(i)
	}
	wg.Wait()

	ids, err := s.AppliedJobs(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Len(t, ids, n, "cada id aplicado debe sobrevivir la concurrencia")
}
