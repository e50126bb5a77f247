package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/seventechnologies/hireat-api/internal/application/dto"
	"github.com/seventechnologies/hireat-api/internal/domain/authz"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

// LocalUser clave de locals con el registro completo del usuario del panel.
const LocalUser = "admin_user"

// RequireAdminDomain verifica que la identidad autenticada pertenezca al
// dominio organizacional y carga su registro completo en c.Locals. Debe
// usarse DESPUÉS de AuthMiddleware (necesita LocalEmail).
//
// Comportamiento:
//   - 401 UNAUTHENTICATED → email fuera del dominio o registro inexistente
//     (equivale a mandar al login del panel).
//   - 503 → fallo de infraestructura al consultar el almacén.
func RequireAdminDomain(domain string, users repository.UserRepository) fiber.Handler {
	suffix := "@" + domain
	return func(c *fiber.Ctx) error {
		email := GetEmail(c)
		if email == "" || !strings.HasSuffix(email, suffix) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHENTICATED",
				Message: "se requiere una cuenta del dominio " + domain,
			})
		}
		user, err := users.Get(c.Context(), email)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "STORE_UNAVAILABLE",
				Message: "no se pudo consultar la cuenta, intente más tarde",
			})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHENTICATED",
				Message: "la cuenta no existe",
			})
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireScope exige permiso de vista sobre el scope del área. La raíz del
// panel (dashboard) no lleva scope: basta con estar autenticado en el
// dominio. Debe usarse DESPUÉS de RequireAdminDomain (necesita LocalUser).
func RequireScope(scope string, eval *authz.Evaluator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetAdminUser(c)
		if !eval.CanAccess(user, scope) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "ACCESS_DENIED",
				Message: "No tienes permisos para acceder a esta sección.",
			})
		}
		return c.Next()
	}
}

// GetAdminUser devuelve el registro cargado por RequireAdminDomain.
func GetAdminUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
