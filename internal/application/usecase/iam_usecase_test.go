package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seventechnologies/hireat-api/internal/application/dto"
	"github.com/seventechnologies/hireat-api/internal/application/usecase"
	"github.com/seventechnologies/hireat-api/internal/domain"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/memory"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/store"
)

func newIAMUC() *usecase.IAMUseCase {
	iam := store.NewIAMStore(memory.NewKV())
	return usecase.NewIAMUseCase(iam, iam)
}

// Los cinco permisos base no pueden eliminarse.
func TestIAMUC_DeletePermisoBase_Rechazado(t *testing.T) {
	uc := newIAMUC()
	ctx := context.Background()

	for _, id := range entity.CorePermissionIDs {
		err := uc.DeletePermission(ctx, id)
		assert.ErrorIs(t, err, domain.ErrCorePermission, "el permiso base %s está protegido", id)
	}

	perms, err := uc.ListPermissions(ctx)
	require.NoError(t, err)
	assert.Len(t, perms, 5, "el catálogo sigue intacto")
}

func TestIAMUC_CreatePermission_IDDuplicadoRechazado(t *testing.T) {
	uc := newIAMUC()
	ctx := context.Background()

	_, err := uc.CreatePermission(ctx, dto.PermissionRequest{
		ID: entity.PermManageJobs, Name: "Otro", Scope: "jobs",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)

	out, err := uc.CreatePermission(ctx, dto.PermissionRequest{
		ID: "export_reports", Name: "Export Reports", Scope: "reports",
	})
	require.NoError(t, err)
	assert.Equal(t, "export_reports", out.ID)

	// un permiso no-base sí puede eliminarse
	require.NoError(t, uc.DeletePermission(ctx, "export_reports"))
}

func TestIAMUC_UpdatePermission_CambioDeIDAColisionRechazado(t *testing.T) {
	uc := newIAMUC()
	ctx := context.Background()

	_, err := uc.CreatePermission(ctx, dto.PermissionRequest{
		ID: "export_reports", Name: "Export Reports", Scope: "reports",
	})
	require.NoError(t, err)

	_, err = uc.UpdatePermission(ctx, "export_reports", dto.PermissionRequest{
		ID: entity.PermManageIAM, Name: "Colisión", Scope: "reports",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)

	_, err = uc.UpdatePermission(ctx, "no-existe", dto.PermissionRequest{
		ID: "no-existe", Name: "X", Scope: "x",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Renombrar un permiso base (o cambiarle el scope) equivaldría a sacarlo del
// catálogo protegido; solo nombre y descripción son editables.
func TestIAMUC_UpdatePermisoBase_IDYScopeInmutables(t *testing.T) {
	uc := newIAMUC()
	ctx := context.Background()

	_, err := uc.UpdatePermission(ctx, entity.PermManageJobs, dto.PermissionRequest{
		ID: "renamed", Name: "Manage Jobs", Scope: "jobs",
	})
	assert.ErrorIs(t, err, domain.ErrCorePermission)

	_, err = uc.UpdatePermission(ctx, entity.PermManageJobs, dto.PermissionRequest{
		ID: entity.PermManageJobs, Name: "Manage Jobs", Scope: "everything",
	})
	assert.ErrorIs(t, err, domain.ErrCorePermission)

	perms, err := uc.ListPermissions(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(perms))
	for _, p := range perms {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, entity.PermManageJobs, "el id base sigue en el catálogo")

	// nombre y descripción sí son editables
	out, err := uc.UpdatePermission(ctx, entity.PermManageJobs, dto.PermissionRequest{
		ID: entity.PermManageJobs, Name: "Gestión de ofertas", Scope: "jobs",
	})
	require.NoError(t, err)
	assert.Equal(t, "Gestión de ofertas", out.Name)
}

func TestIAMUC_Groups_CRUD(t *testing.T) {
	uc := newIAMUC()
	ctx := context.Background()

	groups, err := uc.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3, "los grupos por defecto se siembran")

	_, err = uc.CreateGroup(ctx, dto.GroupRequest{ID: "recruiters", Name: "Dup"})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)

	out, err := uc.CreateGroup(ctx, dto.GroupRequest{
		ID: "auditors", Name: "Auditors", Permissions: []string{entity.PermManageIAM},
	})
	require.NoError(t, err)
	assert.Equal(t, "auditors", out.ID)

	updated, err := uc.UpdateGroup(ctx, "auditors", dto.GroupRequest{
		ID: "auditors", Name: "Internal Auditors", Permissions: []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, "Internal Auditors", updated.Name)

	require.NoError(t, uc.DeleteGroup(ctx, "auditors"))
	assert.ErrorIs(t, uc.DeleteGroup(ctx, "auditors"), domain.ErrNotFound)
}
