package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserStore)(nil)

// UserStore registros de usuario sobre el almacén clave-valor. La clave es el
// email y el valor el registro completo en JSON; no existe escritura parcial.
type UserStore struct {
	kv          repository.KeyValueStore
	masterEmail string
}

// NewUserStore construye el repositorio. masterEmail es la identidad
// protegida que PurgeSessions puede conservar.
func NewUserStore(kv repository.KeyValueStore, masterEmail string) *UserStore {
	return &UserStore{kv: kv, masterEmail: masterEmail}
}

// Get devuelve el registro bajo la clave email, o (nil, nil) si no existe.
// Un blob ilegible degrada a un registro mínimo con solo el email: el dato
// corrupto nunca se propaga como error al llamador.
func (s *UserStore) Get(ctx context.Context, email string) (*entity.User, error) {
	raw, err := s.kv.Get(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("leer usuario %q: %w", email, err)
	}
	if raw == nil {
		return nil, nil
	}
	var u entity.User
	if err := json.Unmarshal(raw, &u); err != nil {
		log.Debug().Str("key", email).Err(err).Msg("registro de usuario ilegible, degradado a registro mínimo")
		return &entity.User{Email: email}, nil
	}
	u.Email = email // la clave manda sobre el campo del blob
	return &u, nil
}

// Save escribe el registro completo bajo user.Email, reemplazando cualquier
// valor previo.
func (s *UserStore) Save(ctx context.Context, user *entity.User) error {
	if user == nil || !strings.Contains(user.Email, "@") {
		return fmt.Errorf("guardar usuario: email inválido %q", userEmail(user))
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serializar usuario %q: %w", user.Email, err)
	}
	if err := s.kv.Set(ctx, user.Email, raw); err != nil {
		return fmt.Errorf("guardar usuario %q: %w", user.Email, err)
	}
	return nil
}

// Delete elimina el registro del email.
func (s *UserStore) Delete(ctx context.Context, email string) error {
	if err := s.kv.Delete(ctx, email); err != nil {
		return fmt.Errorf("eliminar usuario %q: %w", email, err)
	}
	return nil
}

// List enumera los registros cuya clave contiene "@" y termina en el sufijo
// de dominio dado ("" = cualquiera). Orden: identidad maestra primero, luego
// rol admin, luego alfabético por email.
func (s *UserStore) List(ctx context.Context, domainSuffix string) ([]*entity.User, error) {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	var users []*entity.User
	for _, key := range keys {
		if !isUserKey(key) {
			continue
		}
		if domainSuffix != "" && !strings.HasSuffix(key, domainSuffix) {
			continue
		}
		u, err := s.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if u != nil {
			users = append(users, u)
		}
	}
	sort.SliceStable(users, func(i, j int) bool {
		a, b := users[i], users[j]
		if a.Email == s.masterEmail {
			return true
		}
		if b.Email == s.masterEmail {
			return false
		}
		if (a.Role == entity.RoleAdmin) != (b.Role == entity.RoleAdmin) {
			return a.Role == entity.RoleAdmin
		}
		return a.Email < b.Email
	})
	return users, nil
}

// PurgeSessions elimina todos los registros de usuario. Con keepMaster
// conserva la identidad maestra (cierre de sesión del panel admin).
func (s *UserStore) PurgeSessions(ctx context.Context, keepMaster bool) error {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		return fmt.Errorf("purgar sesiones: %w", err)
	}
	for _, key := range keys {
		if !isUserKey(key) {
			continue
		}
		if keepMaster && key == s.masterEmail {
			continue
		}
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("purgar sesiones: %w", err)
		}
	}
	return nil
}

// isUserKey reconoce claves de registro de usuario: contienen "@" y no son
// claves derivadas de listas por identidad.
func isUserKey(key string) bool {
	return strings.Contains(key, "@") &&
		!strings.HasSuffix(key, suffixAppliedJobs) &&
		!strings.HasSuffix(key, suffixSavedJobs)
}

func userEmail(u *entity.User) string {
	if u == nil {
		return ""
	}
	return u.Email
}
