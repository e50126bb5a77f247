package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seventechnologies/hireat-api/internal/application/dto"
	"github.com/seventechnologies/hireat-api/internal/application/usecase"
)

// AdminDashboardHandler maneja la raíz del panel de administración.
type AdminDashboardHandler struct {
	jobs       *usecase.JobUseCase
	candidates *usecase.CandidateUseCase
	companies  *usecase.CompanyUseCase
	users      *usecase.UserUseCase
}

// NewAdminDashboardHandler construye el handler.
func NewAdminDashboardHandler(jobs *usecase.JobUseCase, candidates *usecase.CandidateUseCase, companies *usecase.CompanyUseCase, users *usecase.UserUseCase) *AdminDashboardHandler {
	return &AdminDashboardHandler{jobs: jobs, candidates: candidates, companies: companies, users: users}
}

// GetSummary devuelve los contadores del dashboard del panel.
// GET /api/admin
//
// La raíz del panel no lleva scope: cualquier cuenta del dominio autenticada
// puede verla, igual que las tarjetas de resumen del panel original.
func (h *AdminDashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary := dto.DashboardSummary{
		User: dto.ToUserResponse(GetAdminUser(c)),
	}

	if jobs, err := h.jobs.List(c.Context(), dto.JobFilter{}); err == nil {
		summary.Jobs = jobs.Total
	}
	if cands, err := h.candidates.List(c.Context(), "", ""); err == nil {
		summary.Candidates = len(cands)
	}
	if companies, err := h.companies.List(c.Context()); err == nil {
		summary.Companies = len(companies)
	}
	if users, err := h.users.List(c.Context()); err == nil {
		summary.Users = len(users)
	}

	return c.JSON(summary)
}
