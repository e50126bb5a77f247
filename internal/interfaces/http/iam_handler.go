package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seventechnologies/hireat-api/internal/application/dto"
	"github.com/seventechnologies/hireat-api/internal/application/usecase"
	"github.com/seventechnologies/hireat-api/internal/domain"
)

// IAMHandler panel IAM: usuarios del dominio, permisos, grupos y purga de
// sesiones.
type IAMHandler struct {
	users *usecase.UserUseCase
	iam   *usecase.IAMUseCase
}

// NewIAMHandler construye el handler de IAM.
func NewIAMHandler(users *usecase.UserUseCase, iam *usecase.IAMUseCase) *IAMHandler {
	return &IAMHandler{users: users, iam: iam}
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

// ListUsers godoc
// @Summary      Usuarios del dominio (identidad maestra primero)
// @Tags         iam
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/iam/users [get]
// @Security     BearerAuth
func (h *IAMHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.users.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateUser godoc
// @Summary      Alta de usuario del panel
// @Tags         iam
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserUpsertRequest  true  "usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/iam/users [post]
// @Security     BearerAuth
func (h *IAMHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.UserUpsertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.users.Create(c.Context(), GetAdminUser(c), in)
	if err != nil {
		return iamError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateUser godoc
// @Summary      Editar usuario del panel
// @Tags         iam
// @Accept       json
// @Produce      json
// @Param        email  path  string                 true  "email del usuario"
// @Param        body   body  dto.UserUpsertRequest  true  "usuario"
// @Success      200    {object}  dto.UserResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/admin/iam/users/{email} [put]
// @Security     BearerAuth
func (h *IAMHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.UserUpsertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.users.Update(c.Context(), GetAdminUser(c), c.Params("email"), in)
	if err != nil {
		return iamError(c, err)
	}
	return c.JSON(out)
}

// DeleteUser godoc
// @Summary      Eliminar usuario del panel
// @Tags         iam
// @Produce      json
// @Param        email  path  string  true  "email del usuario"
// @Success      200    {object}  dto.MessageResponse
// @Failure      403    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/admin/iam/users/{email} [delete]
// @Security     BearerAuth
func (h *IAMHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Context(), GetAdminUser(c), c.Params("email")); err != nil {
		return iamError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuario eliminado"})
}

// PurgeSessions godoc
// @Summary      Purgar todos los registros de usuario (conserva la identidad maestra)
// @Tags         iam
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/iam/sessions/purge [post]
// @Security     BearerAuth
func (h *IAMHandler) PurgeSessions(c *fiber.Ctx) error {
	if err := h.users.PurgeSessions(c.Context(), GetAdminUser(c)); err != nil {
		return iamError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "sesiones purgadas"})
}

// ── Permisos ──────────────────────────────────────────────────────────────────

// ListPermissions godoc
// @Summary      Catálogo de permisos
// @Tags         iam
// @Produce      json
// @Success      200  {array}  entity.Permission
// @Router       /api/admin/iam/permissions [get]
// @Security     BearerAuth
func (h *IAMHandler) ListPermissions(c *fiber.Ctx) error {
	out, err := h.iam.ListPermissions(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreatePermission godoc
// @Summary      Alta de permiso
// @Tags         iam
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PermissionRequest  true  "permiso"
// @Success      201   {object}  entity.Permission
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/iam/permissions [post]
// @Security     BearerAuth
func (h *IAMHandler) CreatePermission(c *fiber.Ctx) error {
	var in dto.PermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.iam.CreatePermission(c.Context(), in)
	if err != nil {
		return iamError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdatePermission godoc
// @Summary      Editar permiso
// @Tags         iam
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "id del permiso"
// @Param        body  body  dto.PermissionRequest  true  "permiso"
// @Success      200   {object}  entity.Permission
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/iam/permissions/{id} [put]
// @Security     BearerAuth
func (h *IAMHandler) UpdatePermission(c *fiber.Ctx) error {
	var in dto.PermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.iam.UpdatePermission(c.Context(), c.Params("id"), in)
	if err != nil {
		return iamError(c, err)
	}
	return c.JSON(out)
}

// DeletePermission godoc
// @Summary      Eliminar permiso (los cinco base están protegidos)
// @Tags         iam
// @Produce      json
// @Param        id   path  string  true  "id del permiso"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/iam/permissions/{id} [delete]
// @Security     BearerAuth
func (h *IAMHandler) DeletePermission(c *fiber.Ctx) error {
	if err := h.iam.DeletePermission(c.Context(), c.Params("id")); err != nil {
		return iamError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "permiso eliminado"})
}

// ── Grupos ────────────────────────────────────────────────────────────────────

// ListGroups godoc
// @Summary      Grupos de permisos
// @Tags         iam
// @Produce      json
// @Success      200  {array}  entity.Group
// @Router       /api/admin/iam/groups [get]
// @Security     BearerAuth
func (h *IAMHandler) ListGroups(c *fiber.Ctx) error {
	out, err := h.iam.ListGroups(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateGroup godoc
// @Summary      Alta de grupo
// @Tags         iam
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GroupRequest  true  "grupo"
// @Success      201   {object}  entity.Group
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/iam/groups [post]
// @Security     BearerAuth
func (h *IAMHandler) CreateGroup(c *fiber.Ctx) error {
	var in dto.GroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.iam.CreateGroup(c.Context(), in)
	if err != nil {
		return iamError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateGroup godoc
// @Summary      Editar grupo
// @Tags         iam
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "id del grupo"
// @Param        body  body  dto.GroupRequest  true  "grupo"
// @Success      200   {object}  entity.Group
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/iam/groups/{id} [put]
// @Security     BearerAuth
func (h *IAMHandler) UpdateGroup(c *fiber.Ctx) error {
	var in dto.GroupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.iam.UpdateGroup(c.Context(), c.Params("id"), in)
	if err != nil {
		return iamError(c, err)
	}
	return c.JSON(out)
}

// DeleteGroup godoc
// @Summary      Eliminar grupo
// @Tags         iam
// @Produce      json
// @Param        id   path  string  true  "id del grupo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/iam/groups/{id} [delete]
// @Security     BearerAuth
func (h *IAMHandler) DeleteGroup(c *fiber.Ctx) error {
	if err := h.iam.DeleteGroup(c.Context(), c.Params("id")); err != nil {
		return iamError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "grupo eliminado"})
}

// iamError mapea los sentinelas de dominio del panel IAM a HTTP.
func iamError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCESS_DENIED", Message: "No tienes permisos para realizar esta acción."})
	case errors.Is(err, domain.ErrMasterAdminProtected):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MASTER_PROTECTED", Message: "la cuenta de administrador principal no puede eliminarse"})
	case errors.Is(err, domain.ErrSelfDelete):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SELF_DELETE", Message: "no puedes eliminar tu propia cuenta"})
	case errors.Is(err, domain.ErrCorePermission):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "CORE_PERMISSION", Message: "los permisos base del sistema no pueden eliminarse"})
	case errors.Is(err, domain.ErrDuplicateID):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_ID", Message: "el id ya existe"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el recurso no existe"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
