package repository

import (
	"context"

	"github.com/seventechnologies/hireat-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para registros de usuario (DIP).
// La clave es el email; toda escritura reemplaza el registro completo.
type UserRepository interface {
	// Get devuelve el registro, o (nil, nil) si no existe. Un valor JSON
	// corrupto degrada a un registro mínimo con solo el email, nunca a error.
	Get(ctx context.Context, email string) (*entity.User, error)
	// Save escribe el registro completo bajo la clave email (sin merge).
	Save(ctx context.Context, user *entity.User) error
	// Delete elimina el registro.
	Delete(ctx context.Context, email string) error
	// List enumera los usuarios cuyo email termina en el sufijo de dominio
	// dado ("" = cualquiera), ordenados: maestro primero, luego rol admin,
	// luego por email.
	List(ctx context.Context, domainSuffix string) ([]*entity.User, error)
	// PurgeSessions elimina todos los registros de usuario; con keepMaster
	// conserva la identidad maestra (variante del panel de administración).
	PurgeSessions(ctx context.Context, keepMaster bool) error
}
