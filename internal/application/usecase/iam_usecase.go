package usecase

import (
	"context"
	"time"

	"github.com/seventechnologies/hireat-api/internal/application/dto"
	"github.com/seventechnologies/hireat-api/internal/domain"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

// IAMUseCase CRUD de los catálogos de permisos y grupos. Los grupos son solo
// una conveniencia de gestión: el evaluador no los consulta.
type IAMUseCase struct {
	perms  repository.PermissionRepository
	groups repository.GroupRepository
}

// NewIAMUseCase construye el caso de uso.
func NewIAMUseCase(perms repository.PermissionRepository, groups repository.GroupRepository) *IAMUseCase {
	return &IAMUseCase{perms: perms, groups: groups}
}

// ListPermissions devuelve el catálogo (sembrando los base si está vacío).
func (uc *IAMUseCase) ListPermissions(ctx context.Context) ([]entity.Permission, error) {
	return uc.perms.ListPermissions(ctx)
}

// CreatePermission añade una entrada; el id debe ser único.
func (uc *IAMUseCase) CreatePermission(ctx context.Context, in dto.PermissionRequest) (*entity.Permission, error) {
	if in.ID == "" || in.Name == "" || in.Scope == "" {
		return nil, domain.ErrInvalidInput
	}
	perms, err := uc.perms.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range perms {
		if p.ID == in.ID {
			return nil, domain.ErrDuplicateID
		}
	}
	perm := entity.Permission{
		ID: in.ID, Name: in.Name, Description: in.Description, Scope: in.Scope,
		CreatedAt: time.Now(),
	}
	if err := uc.perms.SavePermissions(ctx, append(perms, perm)); err != nil {
		return nil, err
	}
	return &perm, nil
}

// UpdatePermission edita una entrada; cambiar el id a uno ya usado falla. En
// los permisos base, id y scope son inmutables: renombrarlos equivaldría a
// borrarlos del catálogo.
func (uc *IAMUseCase) UpdatePermission(ctx context.Context, id string, in dto.PermissionRequest) (*entity.Permission, error) {
	if entity.IsCorePermission(id) && in.ID != id {
		return nil, domain.ErrCorePermission
	}
	perms, err := uc.perms.ListPermissions(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, p := range perms {
		if p.ID == id {
			idx = i
		} else if p.ID == in.ID {
			return nil, domain.ErrDuplicateID
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	if entity.IsCorePermission(id) && in.Scope != perms[idx].Scope {
		return nil, domain.ErrCorePermission
	}
	updated := perms[idx]
	updated.ID = in.ID
	updated.Name = in.Name
	updated.Description = in.Description
	updated.Scope = in.Scope
	updated.UpdatedAt = time.Now()
	perms[idx] = updated
	if err := uc.perms.SavePermissions(ctx, perms); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePermission elimina una entrada. Los cinco permisos base están
// protegidos.
func (uc *IAMUseCase) DeletePermission(ctx context.Context, id string) error {
	if entity.IsCorePermission(id) {
		return domain.ErrCorePermission
	}
	perms, err := uc.perms.ListPermissions(ctx)
	if err != nil {
		return err
	}
	filtered := make([]entity.Permission, 0, len(perms))
	found := false
	for _, p := range perms {
		if p.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, p)
	}
	if !found {
		return domain.ErrNotFound
	}
	return uc.perms.SavePermissions(ctx, filtered)
}

// ListGroups devuelve el catálogo (sembrando los grupos por defecto si está
// vacío).
func (uc *IAMUseCase) ListGroups(ctx context.Context) ([]entity.Group, error) {
	return uc.groups.ListGroups(ctx)
}

// CreateGroup añade un grupo; el id debe ser único.
func (uc *IAMUseCase) CreateGroup(ctx context.Context, in dto.GroupRequest) (*entity.Group, error) {
	if in.ID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	groups, err := uc.groups.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.ID == in.ID {
			return nil, domain.ErrDuplicateID
		}
	}
	group := entity.Group{
		ID: in.ID, Name: in.Name, Description: in.Description,
		Permissions: in.Permissions, CreatedAt: time.Now(),
	}
	if err := uc.groups.SaveGroups(ctx, append(groups, group)); err != nil {
		return nil, err
	}
	return &group, nil
}

// UpdateGroup edita un grupo; cambiar el id a uno ya usado falla.
func (uc *IAMUseCase) UpdateGroup(ctx context.Context, id string, in dto.GroupRequest) (*entity.Group, error) {
	groups, err := uc.groups.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, g := range groups {
		if g.ID == id {
			idx = i
		} else if g.ID == in.ID {
			return nil, domain.ErrDuplicateID
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	updated := groups[idx]
	updated.ID = in.ID
	updated.Name = in.Name
	updated.Description = in.Description
	updated.Permissions = in.Permissions
	updated.UpdatedAt = time.Now()
	groups[idx] = updated
	if err := uc.groups.SaveGroups(ctx, groups); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteGroup elimina un grupo.
func (uc *IAMUseCase) DeleteGroup(ctx context.Context, id string) error {
	groups, err := uc.groups.ListGroups(ctx)
	if err != nil {
		return err
	}
	filtered := make([]entity.Group, 0, len(groups))
	found := false
	for _, g := range groups {
		if g.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, g)
	}
	if !found {
		return domain.ErrNotFound
	}
	return uc.groups.SaveGroups(ctx, filtered)
}
