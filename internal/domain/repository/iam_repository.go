package repository

import (
	"context"

	"github.com/seventechnologies/hireat-api/internal/domain/entity"
)

// PermissionRepository catálogo de permisos administrable (clave admin_permissions).
type PermissionRepository interface {
	ListPermissions(ctx context.Context) ([]entity.Permission, error)
	// SavePermissions reemplaza el catálogo completo.
	SavePermissions(ctx context.Context, perms []entity.Permission) error
}

// GroupRepository catálogo de grupos administrable (clave admin_groups).
type GroupRepository interface {
	ListGroups(ctx context.Context) ([]entity.Group, error)
	// SaveGroups reemplaza el catálogo completo.
	SaveGroups(ctx context.Context, groups []entity.Group) error
}
