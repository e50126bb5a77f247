// Package authz implementa la evaluación de permisos del panel de
// administración. Es lógica pura de dominio: no toca almacenamiento ni HTTP.
//
// Las reglas se componen con OR (gana la unión más permisiva): no existen
// permisos negativos ni precedencias de denegación.
package authz

import (
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
)

// Acciones reconocidas sobre un scope.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
	ActionManage = "manage"
)

// Scopes del panel de administración.
const (
	ScopeCandidates = "candidates"
	ScopeJobs       = "jobs"
	ScopeCompanies  = "companies"
	ScopeIAM        = "iam"
	ScopeUsers      = "users"
)

// Evaluator decide accesos a partir del registro de usuario. MasterEmail es
// la identidad siempre autenticada y con privilegios totales
// (admin@<dominio>); ninguna edición puede retirárselos.
type Evaluator struct {
	MasterEmail string
}

// NewEvaluator construye el evaluador para el email maestro dado.
func NewEvaluator(masterEmail string) *Evaluator {
	return &Evaluator{MasterEmail: masterEmail}
}

// IsMasterAdmin informa si el usuario es la identidad maestra.
func (e *Evaluator) IsMasterAdmin(u *entity.User) bool {
	return u != nil && u.Email == e.MasterEmail
}

// IsAdmin informa si el usuario tiene privilegios de administrador
// (identidad maestra o rol admin).
func (e *Evaluator) IsAdmin(u *entity.User) bool {
	if u == nil {
		return false
	}
	return e.IsMasterAdmin(u) || u.Role == entity.RoleAdmin
}

// HasPermission decide si el usuario puede realizar la acción sobre el scope.
// Orden de evaluación, con cortocircuito en el primer verdadero:
//
//  1. usuario ausente            → false
//  2. identidad maestra          → true
//  3. rol admin                  → true
//  4. token "admin"              → true
//  5. token "<action>_<scope>"   → true
//  6. token "manage_<scope>"     → true (manage cubre toda acción del scope)
func (e *Evaluator) HasPermission(u *entity.User, scope, action string) bool {
	if u == nil {
		return false
	}
	if e.IsMasterAdmin(u) {
		return true
	}
	if u.Role == entity.RoleAdmin {
		return true
	}
	if u.HasPermissionToken(entity.PermAdmin) {
		return true
	}
	if action != "" && u.HasPermissionToken(action+"_"+scope) {
		return true
	}
	return u.HasPermissionToken("manage_" + scope)
}

// CanAccess equivale a la acción view sobre el scope.
func (e *Evaluator) CanAccess(u *entity.User, scope string) bool {
	return e.HasPermission(u, scope, ActionView)
}

// CanCreate acepta el permiso create o el grant manage del scope.
func (e *Evaluator) CanCreate(u *entity.User, scope string) bool {
	return e.HasPermission(u, scope, ActionCreate) || e.HasPermission(u, scope, ActionManage)
}

// CanEdit acepta el permiso edit o el grant manage del scope.
func (e *Evaluator) CanEdit(u *entity.User, scope string) bool {
	return e.HasPermission(u, scope, ActionEdit) || e.HasPermission(u, scope, ActionManage)
}

// CanDelete acepta el permiso delete o el grant manage del scope.
func (e *Evaluator) CanDelete(u *entity.User, scope string) bool {
	return e.HasPermission(u, scope, ActionDelete) || e.HasPermission(u, scope, ActionManage)
}

// CanManage exige el grant manage (o privilegios de administrador).
func (e *Evaluator) CanManage(u *entity.User, scope string) bool {
	return e.HasPermission(u, scope, ActionManage)
}
