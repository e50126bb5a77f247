package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

var _ repository.UserJobsRepository = (*UserJobsStore)(nil)

// UserJobsStore listas de empleos aplicados/guardados por identidad, como
// arrays JSON de enteros bajo <email>_applied_jobs y <email>_saved_jobs.
// Cada mutación lee el array completo, lo modifica en memoria y lo vuelve a
// escribir; un mutex por clave serializa esas escrituras para no perder
// actualizaciones entre peticiones concurrentes de la misma identidad.
type UserJobsStore struct {
	kv    repository.KeyValueStore
	locks *keyedMutex
}

// NewUserJobsStore construye el repositorio.
func NewUserJobsStore(kv repository.KeyValueStore) *UserJobsStore {
	return &UserJobsStore{kv: kv, locks: newKeyedMutex()}
}

// AppliedJobs devuelve los ids aplicados; vacío si la clave no existe o el
// blob es ilegible.
func (s *UserJobsStore) AppliedJobs(ctx context.Context, email string) ([]int, error) {
	return s.readList(ctx, email+suffixAppliedJobs)
}

// SavedJobs devuelve los ids guardados; vacío si la clave no existe o el
// blob es ilegible.
func (s *UserJobsStore) SavedJobs(ctx context.Context, email string) ([]int, error) {
	return s.readList(ctx, email+suffixSavedJobs)
}

// ApplyToJob añade el id a la lista de aplicados si no está. Idempotente.
func (s *UserJobsStore) ApplyToJob(ctx context.Context, email string, jobID int) error {
	return s.appendUnique(ctx, email+suffixAppliedJobs, jobID)
}

// SaveJob añade el id a favoritos si no está. Idempotente.
func (s *UserJobsStore) SaveJob(ctx context.Context, email string, jobID int) error {
	return s.appendUnique(ctx, email+suffixSavedJobs, jobID)
}

// UnsaveJob retira el id de favoritos; si no está presente la lista queda
// igual.
func (s *UserJobsStore) UnsaveJob(ctx context.Context, email string, jobID int) error {
	key := email + suffixSavedJobs
	unlock := s.locks.Lock(key)
	defer unlock()

	list, err := s.readList(ctx, key)
	if err != nil {
		return err
	}
	filtered := make([]int, 0, len(list))
	for _, id := range list {
		if id != jobID {
			filtered = append(filtered, id)
		}
	}
	return s.writeList(ctx, key, filtered)
}

func (s *UserJobsStore) appendUnique(ctx context.Context, key string, jobID int) error {
	unlock := s.locks.Lock(key)
	defer unlock()

	list, err := s.readList(ctx, key)
	if err != nil {
		return err
	}
	for _, id := range list {
		if id == jobID {
			return nil
		}
	}
	return s.writeList(ctx, key, append(list, jobID))
}

func (s *UserJobsStore) readList(ctx context.Context, key string) ([]int, error) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("leer lista %q: %w", key, err)
	}
	if raw == nil {
		return []int{}, nil
	}
	var list []int
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Debug().Str("key", key).Err(err).Msg("lista de empleos ilegible, tratada como vacía")
		return []int{}, nil
	}
	return list, nil
}

func (s *UserJobsStore) writeList(ctx context.Context, key string, list []int) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("serializar lista %q: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("guardar lista %q: %w", key, err)
	}
	return nil
}
