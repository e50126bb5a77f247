package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seventechnologies/hireat-api/internal/domain/authz"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
)

const masterEmail = "admin@seventechnologies.cloud"

var allScopes = []string{authz.ScopeCandidates, authz.ScopeJobs, authz.ScopeCompanies, authz.ScopeIAM, authz.ScopeUsers}
var allActions = []string{authz.ActionView, authz.ActionCreate, authz.ActionEdit, authz.ActionDelete, authz.ActionManage}

// Caso 1: usuario ausente → toda verificación es false.
func TestHasPermission_UsuarioAusente(t *testing.T) {
	e := authz.NewEvaluator(masterEmail)
	for _, scope := range allScopes {
		for _, action := range allActions {
			assert.False(t, e.HasPermission(nil, scope, action))
		}
	}
	assert.False(t, e.IsAdmin(nil))
	assert.False(t, e.IsMasterAdmin(nil))
}

// Caso 2: la identidad maestra pasa toda verificación aunque el registro
// almacenado no tenga rol ni permisos.
func TestHasPermission_IdentidadMaestra(t *testing.T) {
	e := authz.NewEvaluator(masterEmail)
	u := &entity.User{Email: masterEmail, Role: entity.RoleUser}
	for _, scope := range allScopes {
		for _, action := range allActions {
			assert.True(t, e.HasPermission(u, scope, action),
				"la identidad maestra debe pasar %s_%s", action, scope)
		}
	}
	assert.True(t, e.IsMasterAdmin(u))
	assert.True(t, e.IsAdmin(u))
}

// Caso 3: rol admin o token "admin" → override total (propiedad del spec de
// producto: cualquier par scope/acción es permitido).
func TestHasPermission_OverrideAdmin(t *testing.T) {
	e := authz.NewEvaluator(masterEmail)
	porRol := &entity.User{Email: "staff@seventechnologies.cloud", Role: entity.RoleAdmin}
	porToken := &entity.User{Email: "staff@seventechnologies.cloud", Role: entity.RoleUser, Permissions: []string{entity.PermAdmin}}

	for _, u := range []*entity.User{porRol, porToken} {
		for _, scope := range allScopes {
			for _, action := range allActions {
				assert.True(t, e.HasPermission(u, scope, action))
			}
		}
	}
	assert.True(t, e.IsAdmin(porRol))
	assert.False(t, e.IsAdmin(porToken), "el token admin no convierte el rol en admin")
}

// Caso 4: manage_<scope> implica create/edit/delete/view sobre el scope.
func TestManageImplicaTodaAccion(t *testing.T) {
	e := authz.NewEvaluator(masterEmail)
	u := &entity.User{Email: "rec@seventechnologies.cloud", Role: entity.RoleUser, Permissions: []string{entity.PermManageJobs}}

	assert.True(t, e.CanAccess(u, authz.ScopeJobs))
	assert.True(t, e.CanCreate(u, authz.ScopeJobs))
	assert.True(t, e.CanEdit(u, authz.ScopeJobs))
	assert.True(t, e.CanDelete(u, authz.ScopeJobs))
	assert.True(t, e.CanManage(u, authz.ScopeJobs))
}

// Caso 5: escenario del spec de producto — usuario con manage_jobs y rol user.
func TestEscenario_ManageJobsSolamente(t *testing.T) {
	e := authz.NewEvaluator(masterEmail)
	u := &entity.User{Email: "rec@seventechnologies.cloud", Role: entity.RoleUser, Permissions: []string{entity.PermManageJobs}}

	assert.True(t, e.CanAccess(u, authz.ScopeJobs))
	assert.False(t, e.CanAccess(u, authz.ScopeCompanies))
	assert.False(t, e.CanManage(u, authz.ScopeCandidates))
}

// Caso 6: token específico de acción (edit_jobs) autoriza esa acción sin
// conceder manage.
func TestTokenDeAccionEspecifica(t *testing.T) {
	e := authz.NewEvaluator(masterEmail)
	u := &entity.User{Email: "ed@seventechnologies.cloud", Role: entity.RoleUser, Permissions: []string{"edit_jobs"}}

	assert.True(t, e.CanEdit(u, authz.ScopeJobs))
	assert.False(t, e.CanDelete(u, authz.ScopeJobs))
	assert.False(t, e.CanManage(u, authz.ScopeJobs))
}

// Caso 7: sin permisos → todo denegado salvo nada.
func TestSinPermisos(t *testing.T) {
	e := authz.NewEvaluator(masterEmail)
	u := &entity.User{Email: "nadie@seventechnologies.cloud", Role: entity.RoleUser}

	for _, scope := range allScopes {
		assert.False(t, e.CanAccess(u, scope))
		assert.False(t, e.CanManage(u, scope))
	}
}
