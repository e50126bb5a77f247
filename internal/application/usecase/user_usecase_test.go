package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seventechnologies/hireat-api/internal/application/dto"
	"github.com/seventechnologies/hireat-api/internal/application/usecase"
	"github.com/seventechnologies/hireat-api/internal/domain"
	"github.com/seventechnologies/hireat-api/internal/domain/authz"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/memory"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/store"
)

const (
	testDomain = "seventechnologies.cloud"
	master     = "admin@seventechnologies.cloud"
)

func newUserUC(t *testing.T, seed ...*entity.User) (*usecase.UserUseCase, *store.UserStore) {
	t.Helper()
	users := store.NewUserStore(memory.NewKV(), master)
	for _, u := range seed {
		require.NoError(t, users.Save(context.Background(), u))
	}
	eval := authz.NewEvaluator(master)
	return usecase.NewUserUseCase(users, eval, testDomain), users
}

func adminActor() *entity.User {
	return &entity.User{Email: "jefa@" + testDomain, Role: entity.RoleAdmin}
}

// La identidad maestra no puede eliminarse, ni siquiera por otro admin.
func TestUserUC_Delete_MasterProtegido(t *testing.T) {
	actor := adminActor()
	uc, _ := newUserUC(t, actor, &entity.User{Email: master, Role: entity.RoleAdmin})

	err := uc.Delete(context.Background(), actor, master)
	assert.ErrorIs(t, err, domain.ErrMasterAdminProtected)
}

// Nadie puede eliminar su propia cuenta.
func TestUserUC_Delete_PropiaCuentaRechazada(t *testing.T) {
	actor := adminActor()
	uc, _ := newUserUC(t, actor)

	err := uc.Delete(context.Background(), actor, actor.Email)
	assert.ErrorIs(t, err, domain.ErrSelfDelete)
}

func TestUserUC_Delete_SinPermisoRechazado(t *testing.T) {
	actor := &entity.User{Email: "analista@" + testDomain, Role: entity.RoleUser}
	objetivo := &entity.User{Email: "otro@" + testDomain, Role: entity.RoleUser}
	uc, _ := newUserUC(t, actor, objetivo)

	err := uc.Delete(context.Background(), actor, objetivo.Email)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserUC_Delete_OK(t *testing.T) {
	actor := adminActor()
	objetivo := &entity.User{Email: "otro@" + testDomain, Role: entity.RoleUser}
	uc, users := newUserUC(t, actor, objetivo)

	require.NoError(t, uc.Delete(context.Background(), actor, objetivo.Email))

	got, err := users.Get(context.Background(), objetivo.Email)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Un actor sin privilegios de administrador no puede conceder rol admin ni
// los tokens reservados.
func TestUserUC_Update_ActorNoAdminNoEscalaPrivilegios(t *testing.T) {
	actor := &entity.User{
		Email: "editor@" + testDomain, Role: entity.RoleUser,
		Permissions: []string{"manage_users"},
	}
	objetivo := &entity.User{Email: "otro@" + testDomain, Role: entity.RoleUser}
	uc, _ := newUserUC(t, actor, objetivo)
	ctx := context.Background()

	_, err := uc.Update(ctx, actor, objetivo.Email, dto.UserUpsertRequest{
		Email: objetivo.Email, Role: entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "conceder rol admin exige ser admin")

	_, err = uc.Update(ctx, actor, objetivo.Email, dto.UserUpsertRequest{
		Email: objetivo.Email, Role: entity.RoleUser, Permissions: []string{entity.PermManageIAM},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "conceder manage_iam exige ser admin")
}

// Editar la identidad maestra nunca le quita privilegios: la escritura se
// normaliza de vuelta a rol admin con los permisos base.
func TestUserUC_Update_MasterNoPierdePrivilegios(t *testing.T) {
	actor := adminActor()
	uc, users := newUserUC(t, actor, &entity.User{
		Email: master, Role: entity.RoleAdmin, Permissions: entity.CorePermissionIDs,
	})
	ctx := context.Background()

	out, err := uc.Update(ctx, actor, master, dto.UserUpsertRequest{
		Email: master, Role: entity.RoleUser, Permissions: []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Subset(t, out.Permissions, entity.CorePermissionIDs)

	persisted, err := users.Get(ctx, master)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, persisted.Role)
}

// Un usuario puede editar su propio perfil sin permisos sobre users.
func TestUserUC_Update_AutoEdicionPermitida(t *testing.T) {
	actor := &entity.User{Email: "ana@" + testDomain, Role: entity.RoleUser, FirstName: "Ana"}
	uc, _ := newUserUC(t, actor)

	out, err := uc.Update(context.Background(), actor, actor.Email, dto.UserUpsertRequest{
		Email: actor.Email, FirstName: "Anita", Role: entity.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, "Anita", out.FirstName)
}

// El alta aplica la misma regla que la edición: un actor con manage_users
// pero sin privilegios de administrador no puede crear cuentas privilegiadas.
func TestUserUC_Create_ActorNoAdminNoEscalaPrivilegios(t *testing.T) {
	actor := &entity.User{
		Email: "editor@" + testDomain, Role: entity.RoleUser,
		Permissions: []string{"manage_users"},
	}
	uc, users := newUserUC(t, actor)
	ctx := context.Background()

	_, err := uc.Create(ctx, actor, dto.UserUpsertRequest{
		Email: "intruso@" + testDomain, Role: entity.RoleAdmin,
		Permissions: []string{entity.PermAdmin},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "crear una cuenta admin exige ser admin")

	_, err = uc.Create(ctx, actor, dto.UserUpsertRequest{
		Email: "intruso@" + testDomain, Role: entity.RoleUser,
		Permissions: []string{entity.PermManageIAM},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "conceder manage_iam en el alta exige ser admin")

	got, err := users.Get(ctx, "intruso@"+testDomain)
	require.NoError(t, err)
	assert.Nil(t, got)

	// sin tokens reservados el alta sí procede
	out, err := uc.Create(ctx, actor, dto.UserUpsertRequest{
		Email: "becario@" + testDomain, Role: entity.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role)
}

func TestUserUC_Create_ExigeDominioYPermiso(t *testing.T) {
	actor := adminActor()
	uc, _ := newUserUC(t, actor)
	ctx := context.Background()

	_, err := uc.Create(ctx, actor, dto.UserUpsertRequest{
		Email: "fuera@gmail.com", Role: entity.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el alta exige email del dominio")

	sinPermiso := &entity.User{Email: "raso@" + testDomain, Role: entity.RoleUser}
	_, err = uc.Create(ctx, sinPermiso, dto.UserUpsertRequest{
		Email: "nuevo@" + testDomain, Role: entity.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Create(ctx, actor, dto.UserUpsertRequest{
		Email: "nuevo@" + testDomain, Role: entity.RoleManager,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, out.Role)
}

func TestUserUC_PurgeSessions_SoloAdmin(t *testing.T) {
	actor := adminActor()
	raso := &entity.User{Email: "raso@" + testDomain, Role: entity.RoleUser}
	uc, users := newUserUC(t, actor, raso, &entity.User{Email: master, Role: entity.RoleAdmin})
	ctx := context.Background()

	assert.ErrorIs(t, uc.PurgeSessions(ctx, raso), domain.ErrForbidden)

	require.NoError(t, uc.PurgeSessions(ctx, actor))
	got, err := users.Get(ctx, master)
	require.NoError(t, err)
	assert.NotNil(t, got, "la purga conserva la identidad maestra")
	gone, err := users.Get(ctx, raso.Email)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
