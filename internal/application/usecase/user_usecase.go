package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/seventechnologies/hireat-api/internal/application/dto"
	"github.com/seventechnologies/hireat-api/internal/domain"
	"github.com/seventechnologies/hireat-api/internal/domain/authz"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios del panel IAM. Todas las operaciones
// reciben el actor autenticado: la autorización fina (crear/editar/borrar
// sobre el scope users) se decide aquí, no solo en el route guard.
type UserUseCase struct {
	users repository.UserRepository
	eval  *authz.Evaluator
	admin string // sufijo de dominio requerido, p. ej. "seventechnologies.cloud"
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, eval *authz.Evaluator, adminDomain string) *UserUseCase {
	return &UserUseCase{users: users, eval: eval, admin: adminDomain}
}

// List devuelve los usuarios del dominio organizacional, identidad maestra
// primero.
func (uc *UserUseCase) List(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := uc.users.List(ctx, "@"+uc.admin)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return out, nil
}

// Create da de alta un usuario del panel. Requiere permiso de creación sobre
// el scope users; actores sin privilegios de administrador no pueden conceder
// rol admin ni los tokens admin / manage_iam en el alta.
func (uc *UserUseCase) Create(ctx context.Context, actor *entity.User, in dto.UserUpsertRequest) (*dto.UserResponse, error) {
	if !uc.eval.CanCreate(actor, authz.ScopeUsers) {
		return nil, domain.ErrForbidden
	}
	if !uc.eval.IsAdmin(actor) && grantsAdminRights(in) {
		return nil, domain.ErrForbidden
	}
	if !strings.HasSuffix(in.Email, "@"+uc.admin) {
		return nil, domain.ErrInvalidInput
	}
	if !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.Get(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	user := &entity.User{
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Role:        in.Role,
		Permissions: in.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Update edita identidad, rol y permisos. Un usuario puede editarse a sí
// mismo; editar a terceros exige permiso de edición sobre users. Actores sin
// privilegios de administrador no pueden conceder rol admin ni los tokens
// admin / manage_iam. La identidad maestra nunca pierde sus privilegios:
// cualquier intento de rebajarla se normaliza de vuelta.
func (uc *UserUseCase) Update(ctx context.Context, actor *entity.User, email string, in dto.UserUpsertRequest) (*dto.UserResponse, error) {
	selfEdit := actor != nil && actor.Email == email
	if !selfEdit && !uc.eval.CanEdit(actor, authz.ScopeUsers) {
		return nil, domain.ErrForbidden
	}
	if !uc.eval.IsAdmin(actor) && grantsAdminRights(in) {
		return nil, domain.ErrForbidden
	}
	if !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrUserNotFound
	}

	// sobrescritura del registro completo: se parte del existente y se
	// reemplazan los campos gestionados por IAM
	existing.FirstName = in.FirstName
	existing.LastName = in.LastName
	existing.Role = in.Role
	existing.Permissions = in.Permissions
	existing.UpdatedAt = time.Now()

	if uc.eval.IsMasterAdmin(existing) {
		existing.Role = entity.RoleAdmin
		existing.Permissions = withCorePermissions(existing.Permissions)
	}
	if err := uc.users.Save(ctx, existing); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(existing), nil
}

// Delete elimina un usuario. La identidad maestra y la propia cuenta del
// actor están protegidas.
func (uc *UserUseCase) Delete(ctx context.Context, actor *entity.User, email string) error {
	if !uc.eval.CanDelete(actor, authz.ScopeUsers) {
		return domain.ErrForbidden
	}
	if email == uc.eval.MasterEmail {
		return domain.ErrMasterAdminProtected
	}
	if actor != nil && actor.Email == email {
		return domain.ErrSelfDelete
	}
	existing, err := uc.users.Get(ctx, email)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrUserNotFound
	}
	return uc.users.Delete(ctx, email)
}

// PurgeSessions elimina todos los registros de usuario del almacén,
// conservando la identidad maestra.
func (uc *UserUseCase) PurgeSessions(ctx context.Context, actor *entity.User) error {
	if !uc.eval.IsAdmin(actor) {
		return domain.ErrForbidden
	}
	return uc.users.PurgeSessions(ctx, true)
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleUser:
		return true
	}
	return false
}

// grantsAdminRights detecta peticiones que conceden privilegios reservados.
func grantsAdminRights(in dto.UserUpsertRequest) bool {
	if in.Role == entity.RoleAdmin {
		return true
	}
	for _, p := range in.Permissions {
		if p == entity.PermAdmin || p == entity.PermManageIAM {
			return true
		}
	}
	return false
}

// withCorePermissions garantiza que la lista contenga todos los permisos base.
func withCorePermissions(perms []string) []string {
	out := append([]string{}, perms...)
	for _, core := range entity.CorePermissionIDs {
		found := false
		for _, p := range out {
			if p == core {
				found = true
				break
			}
		}
		if !found {
			out = append(out, core)
		}
	}
	return out
}
