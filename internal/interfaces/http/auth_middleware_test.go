package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seventechnologies/hireat-api/internal/domain/authz"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/memory"
	"github.com/seventechnologies/hireat-api/internal/infrastructure/store"
	apphttp "github.com/seventechnologies/hireat-api/internal/interfaces/http"
	pkgjwt "github.com/seventechnologies/hireat-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testDomain    = "seventechnologies.cloud"
	testMaster    = "admin@seventechnologies.cloud"
	testIssuer    = "hireat-test"
	testExpMin    = 60
)

// buildGuardedApp construye una aplicación Fiber mínima con la cadena de
// middlewares del panel (JWT → dominio → scope) y handlers dummy. users
// contiene los registros a sembrar en el almacén.
func buildGuardedApp(t *testing.T, users ...*entity.User) *fiber.App {
	t.Helper()
	userStore := store.NewUserStore(memory.NewKV(), testMaster)
	for _, u := range users {
		require.NoError(t, userStore.Save(context.Background(), u))
	}
	eval := authz.NewEvaluator(testMaster)

	app := fiber.New()
	admin := app.Group("/api/admin",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAdminDomain(testDomain, userStore),
	)
	ok := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "email": apphttp.GetEmail(c)})
	}
	admin.Get("/", ok) // dashboard: sin scope
	admin.Get("/jobs", apphttp.RequireScope(authz.ScopeJobs, eval), ok)
	admin.Get("/companies", apphttp.RequireScope(authz.ScopeCompanies, eval), ok)
	admin.Get("/iam/users", apphttp.RequireScope(authz.ScopeIAM, eval), ok)
	return app
}

// tokenFor genera el JWT de sesión del email indicado.
func tokenFor(t *testing.T, email, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, email, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del route guard del panel
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: navegación anónima a cualquier ruta del panel → HTTP 401.
func TestGuard_AnonimoRecibe401(t *testing.T) {
	app := buildGuardedApp(t)
	for _, path := range []string{"/api/admin/", "/api/admin/jobs", "/api/admin/iam/users"} {
		resp := doRequest(t, app, path, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"sin sesión debe responder 401 en %s", path)
	}
}

// Caso 2: token válido pero email fuera del dominio organizacional → HTTP 401.
func TestGuard_EmailFueraDelDominioRecibe401(t *testing.T) {
	app := buildGuardedApp(t)
	resp := doRequest(t, app, "/api/admin/", tokenFor(t, "persona@gmail.com", "user"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHENTICATED")
}

// Caso 3: cuenta del dominio sin permisos → dashboard sí, sección iam no
// (403 con código y mensaje legible).
func TestGuard_SinPermisoIAM_Recibe403ConMensaje(t *testing.T) {
	user := &entity.User{Email: "analista@" + testDomain, Role: entity.RoleUser}
	app := buildGuardedApp(t, user)
	tok := tokenFor(t, user.Email, user.Role)

	resp := doRequest(t, app, "/api/admin/", tok)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el dashboard no lleva scope: basta la cuenta del dominio")

	resp = doRequest(t, app, "/api/admin/iam/users", tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ACCESS_DENIED",
		"la denegación debe llevar código")
	assert.Contains(t, string(body), "permisos",
		"la denegación debe llevar mensaje legible para el toast")
}

// Caso 4: token manage_jobs abre jobs pero no companies ni iam.
func TestGuard_ManageJobsSoloAbreJobs(t *testing.T) {
	user := &entity.User{
		Email:       "reclutador@" + testDomain,
		Role:        entity.RoleUser,
		Permissions: []string{"manage_jobs"},
	}
	app := buildGuardedApp(t, user)
	tok := tokenFor(t, user.Email, user.Role)

	resp := doRequest(t, app, "/api/admin/jobs", tok)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "/api/admin/companies", tok)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, "/api/admin/iam/users", tok)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 5: la identidad maestra abre todas las secciones.
func TestGuard_IdentidadMaestraAbreTodo(t *testing.T) {
	master := &entity.User{Email: testMaster, Role: entity.RoleAdmin}
	app := buildGuardedApp(t, master)
	tok := tokenFor(t, testMaster, entity.RoleAdmin)

	for _, path := range []string{"/api/admin/", "/api/admin/jobs", "/api/admin/companies", "/api/admin/iam/users"} {
		resp := doRequest(t, app, path, tok)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "master debe acceder a %s", path)
	}
}

// Caso 6: token válido pero sin registro en el almacén → HTTP 401.
func TestGuard_CuentaInexistenteRecibe401(t *testing.T) {
	app := buildGuardedApp(t) // almacén vacío
	resp := doRequest(t, app, "/api/admin/", tokenFor(t, "fantasma@"+testDomain, "user"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"email": apphttp.GetEmail(c),
			"role":  apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "persona@example.com", "user"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "persona@example.com", body["email"])
	assert.Equal(t, "user", body["role"])
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildGuardedApp(t)
	resp := doRequest(t, app, "/api/admin/", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "persona@example.com", "manager", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, "persona@example.com", email)
	assert.Equal(t, "manager", role)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, "persona@example.com", "user", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "persona@example.com", "user", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
