package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seventechnologies/hireat-api/internal/application/auth"
	"github.com/seventechnologies/hireat-api/internal/application/usecase"
	"github.com/seventechnologies/hireat-api/internal/domain/authz"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProfileUC   *usecase.ProfileUseCase
	JobUC       *usecase.JobUseCase
	CandidateUC *usecase.CandidateUseCase
	CompanyUC   *usecase.CompanyUseCase
	UserUC      *usecase.UserUseCase
	IAMUC       *usecase.IAMUseCase
	Users       repository.UserRepository
	Evaluator   *authz.Evaluator
	JWTSecret   string
	AdminDomain string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogos públicos
	jobHandler := NewJobHandler(deps.JobUC)
	jobs := api.Group("/jobs")
	jobs.Get("/", jobHandler.List)
	jobs.Get("/:id", jobHandler.GetByID)

	candidateHandler := NewCandidateHandler(deps.CandidateUC)
	candidates := api.Group("/candidates")
	candidates.Get("/", candidateHandler.List)
	candidates.Get("/:id", candidateHandler.GetByID)

	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.JobUC)
	companies := api.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Get("/:id/jobs", companyHandler.JobsByCompany)

	// Rutas autenticadas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	profileHandler := NewProfileHandler(deps.ProfileUC, deps.JobUC)
	profile := protected.Group("/profile")
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)
	profile.Get("/cv.pdf", profileHandler.DownloadCV)
	profile.Get("/language", profileHandler.GetLanguage)
	profile.Put("/language", profileHandler.SetLanguage)
	profile.Get("/applied-jobs", profileHandler.AppliedJobs)
	profile.Post("/applied-jobs", profileHandler.ApplyToJob)
	profile.Get("/saved-jobs", profileHandler.SavedJobs)
	profile.Post("/saved-jobs", profileHandler.SaveJob)
	profile.Delete("/saved-jobs/:id", profileHandler.UnsaveJob)

	searches := protected.Group("/searches")
	searches.Get("/recent", profileHandler.RecentSearches)
	searches.Post("/recent", profileHandler.RecordSearch)
	searches.Delete("/recent", profileHandler.ClearSearches)

	// Panel de administración: cuenta del dominio + scope por sección
	admin := api.Group("/admin",
		AuthMiddleware(deps.JWTSecret),
		RequireAdminDomain(deps.AdminDomain, deps.Users),
	)

	iamHandler := NewIAMHandler(deps.UserUC, deps.IAMUC)
	dashboardHandler := NewAdminDashboardHandler(deps.JobUC, deps.CandidateUC, deps.CompanyUC, deps.UserUC)

	// la raíz del panel no lleva scope
	admin.Get("/", dashboardHandler.GetSummary)

	adminJobs := admin.Group("/jobs", RequireScope(authz.ScopeJobs, deps.Evaluator))
	adminJobs.Get("/", jobHandler.List)
	adminJobs.Post("/", jobHandler.Create)
	adminJobs.Put("/:id", jobHandler.Update)
	adminJobs.Delete("/:id", jobHandler.Delete)

	adminCandidates := admin.Group("/candidates", RequireScope(authz.ScopeCandidates, deps.Evaluator))
	adminCandidates.Get("/", candidateHandler.List)
	adminCandidates.Post("/", candidateHandler.Create)
	adminCandidates.Put("/:id", candidateHandler.Update)
	adminCandidates.Delete("/:id", candidateHandler.Delete)

	adminCompanies := admin.Group("/companies", RequireScope(authz.ScopeCompanies, deps.Evaluator))
	adminCompanies.Get("/", companyHandler.List)
	adminCompanies.Post("/", companyHandler.Create)
	adminCompanies.Put("/:id", companyHandler.Update)
	adminCompanies.Delete("/:id", companyHandler.Delete)

	adminIAM := admin.Group("/iam", RequireScope(authz.ScopeIAM, deps.Evaluator))
	adminIAM.Get("/users", iamHandler.ListUsers)
	adminIAM.Post("/users", iamHandler.CreateUser)
	adminIAM.Put("/users/:email", iamHandler.UpdateUser)
	adminIAM.Delete("/users/:email", iamHandler.DeleteUser)
	adminIAM.Post("/sessions/purge", iamHandler.PurgeSessions)
	adminIAM.Get("/permissions", iamHandler.ListPermissions)
	adminIAM.Post("/permissions", iamHandler.CreatePermission)
	adminIAM.Put("/permissions/:id", iamHandler.UpdatePermission)
	adminIAM.Delete("/permissions/:id", iamHandler.DeletePermission)
	adminIAM.Get("/groups", iamHandler.ListGroups)
	adminIAM.Post("/groups", iamHandler.CreateGroup)
	adminIAM.Put("/groups/:id", iamHandler.UpdateGroup)
	adminIAM.Delete("/groups/:id", iamHandler.DeleteGroup)
}
