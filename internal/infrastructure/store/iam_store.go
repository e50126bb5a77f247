package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

var (
	_ repository.PermissionRepository = (*IAMStore)(nil)
	_ repository.GroupRepository      = (*IAMStore)(nil)
)

// IAMStore catálogos de permisos y grupos bajo las claves admin_permissions
// y admin_groups. Cada catálogo es un array JSON que se reemplaza completo
// en cada escritura; un mutex por clave serializa esas escrituras.
type IAMStore struct {
	kv    repository.KeyValueStore
	locks *keyedMutex
}

// NewIAMStore construye el repositorio.
func NewIAMStore(kv repository.KeyValueStore) *IAMStore {
	return &IAMStore{kv: kv, locks: newKeyedMutex()}
}

// ListPermissions devuelve el catálogo; si aún no existe, siembra y devuelve
// los permisos base.
func (s *IAMStore) ListPermissions(ctx context.Context) ([]entity.Permission, error) {
	unlock := s.locks.Lock(keyPermissions)
	defer unlock()

	raw, err := s.kv.Get(ctx, keyPermissions)
	if err != nil {
		return nil, fmt.Errorf("leer catálogo de permisos: %w", err)
	}
	if raw == nil {
		defaults := entity.DefaultPermissions()
		if err := s.write(ctx, keyPermissions, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	var perms []entity.Permission
	if err := json.Unmarshal(raw, &perms); err != nil {
		log.Debug().Str("key", keyPermissions).Err(err).Msg("catálogo de permisos ilegible, tratado como vacío")
		return []entity.Permission{}, nil
	}
	return perms, nil
}

// SavePermissions reemplaza el catálogo completo.
func (s *IAMStore) SavePermissions(ctx context.Context, perms []entity.Permission) error {
	unlock := s.locks.Lock(keyPermissions)
	defer unlock()
	return s.write(ctx, keyPermissions, perms)
}

// ListGroups devuelve el catálogo; si aún no existe, siembra y devuelve los
// grupos por defecto.
func (s *IAMStore) ListGroups(ctx context.Context) ([]entity.Group, error) {
	unlock := s.locks.Lock(keyGroups)
	defer unlock()

	raw, err := s.kv.Get(ctx, keyGroups)
	if err != nil {
		return nil, fmt.Errorf("leer catálogo de grupos: %w", err)
	}
	if raw == nil {
		defaults := entity.DefaultGroups()
		if err := s.write(ctx, keyGroups, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	var groups []entity.Group
	if err := json.Unmarshal(raw, &groups); err != nil {
		log.Debug().Str("key", keyGroups).Err(err).Msg("catálogo de grupos ilegible, tratado como vacío")
		return []entity.Group{}, nil
	}
	return groups, nil
}

// SaveGroups reemplaza el catálogo completo.
func (s *IAMStore) SaveGroups(ctx context.Context, groups []entity.Group) error {
	unlock := s.locks.Lock(keyGroups)
	defer unlock()
	return s.write(ctx, keyGroups, groups)
}

func (s *IAMStore) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("guardar %q: %w", key, err)
	}
	return nil
}
