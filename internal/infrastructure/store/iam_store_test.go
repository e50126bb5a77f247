package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/memory"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/store"
)

func TestIAMStore_SiembraPermisosBase(t *testing.T) {
	kv := memory.NewKV()
	s := store.NewIAMStore(kv)
	ctx := context.Background()

	perms, err := s.ListPermissions(ctx)
	require.NoError(t, err)
	require.Len(t, perms, 5, "el primer listado siembra los cinco permisos base")

	ids := make([]string, 0, len(perms))
	for _, p := range perms {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, entity.CorePermissionIDs, ids)

	// la siembra queda persistida
	raw, err := kv.Get(ctx, "admin_permissions")
	require.NoError(t, err)
	assert.NotNil(t, raw)
}

func TestIAMStore_SiembraGruposPorDefecto(t *testing.T) {
	s := store.NewIAMStore(memory.NewKV())

	groups, err := s.ListGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "administrators", groups[0].ID)
	assert.Equal(t, "recruiters", groups[1].ID)
	assert.Equal(t, "analysts", groups[2].ID)
}

func TestIAMStore_SaveReemplazaCatalogoCompleto(t *testing.T) {
	s := store.NewIAMStore(memory.NewKV())
	ctx := context.Background()

	perms, err := s.ListPermissions(ctx)
	require.NoError(t, err)

	custom := append(perms, entity.Permission{ID: "export_reports", Name: "Export Reports", Scope: "reports"})
	require.NoError(t, s.SavePermissions(ctx, custom))

	got, err := s.ListPermissions(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 6)
	assert.Equal(t, "export_reports", got[5].ID)
}

func TestIAMStore_CatalogoIlegible_TratadoComoVacio(t *testing.T) {
	kv := memory.NewKV()
	s := store.NewIAMStore(kv)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "admin_permissions", []byte("{corrupto")))

	perms, err := s.ListPermissions(ctx)
	require.NoError(t, err)
	assert.Empty(t, perms, "catálogo corrupto no vuelve a sembrarse ni falla")
}
