package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seventechnologies/hireat-api/internal/application/dto"
	"github.com/seventechnologies/hireat-api/internal/application/usecase"
	"github.com/seventechnologies/hireat-api/internal/domain"
)

// ProfileHandler perfil del usuario autenticado: datos, CV, idioma y las
// listas de empleos aplicados/guardados.
type ProfileHandler struct {
	uc   *usecase.ProfileUseCase
	jobs *usecase.JobUseCase
}

// NewProfileHandler construye el handler de perfil.
func NewProfileHandler(uc *usecase.ProfileUseCase, jobs *usecase.JobUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc, jobs: jobs}
}

// Get godoc
// @Summary      Perfil propio
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetEmail(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la cuenta no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar perfil propio
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "perfil completo"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetEmail(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la cuenta no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DownloadCV godoc
// @Summary      Exportar el perfil como CV en PDF
// @Tags         profile
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/profile/cv.pdf [get]
// @Security     BearerAuth
func (h *ProfileHandler) DownloadCV(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GenerateCV(c.Context(), GetEmail(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la cuenta no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cv.pdf"`)
	return c.Send(pdfBytes)
}

// GetLanguage godoc
// @Summary      Preferencia de idioma
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.LanguageRequest
// @Router       /api/profile/language [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetLanguage(c *fiber.Ctx) error {
	code, err := h.uc.Language(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LanguageRequest{Code: code})
}

// SetLanguage godoc
// @Summary      Guardar preferencia de idioma
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LanguageRequest  true  "código de dos letras"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/profile/language [put]
// @Security     BearerAuth
func (h *ProfileHandler) SetLanguage(c *fiber.Ctx) error {
	var in dto.LanguageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetLanguage(c.Context(), in.Code); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code debe ser un código de dos letras minúsculas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "idioma actualizado"})
}

// AppliedJobs godoc
// @Summary      Empleos a los que la identidad aplicó
// @Tags         profile
// @Produce      json
// @Success      200  {array}  entity.Job
// @Router       /api/profile/applied-jobs [get]
// @Security     BearerAuth
func (h *ProfileHandler) AppliedJobs(c *fiber.Ctx) error {
	jobs, err := h.jobs.AppliedJobs(c.Context(), GetEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(jobs)
}

// ApplyToJob godoc
// @Summary      Aplicar a una oferta (idempotente)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyJobRequest  true  "jobId"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/profile/applied-jobs [post]
// @Security     BearerAuth
func (h *ProfileHandler) ApplyToJob(c *fiber.Ctx) error {
	var in dto.ApplyJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.jobs.Apply(c.Context(), GetEmail(c), in.JobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la oferta no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "aplicación registrada"})
}

// SavedJobs godoc
// @Summary      Empleos guardados por la identidad
// @Tags         profile
// @Produce      json
// @Success      200  {array}  entity.Job
// @Router       /api/profile/saved-jobs [get]
// @Security     BearerAuth
func (h *ProfileHandler) SavedJobs(c *fiber.Ctx) error {
	jobs, err := h.jobs.SavedJobs(c.Context(), GetEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(jobs)
}

// SaveJob godoc
// @Summary      Guardar oferta en favoritos (idempotente)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyJobRequest  true  "jobId"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/profile/saved-jobs [post]
// @Security     BearerAuth
func (h *ProfileHandler) SaveJob(c *fiber.Ctx) error {
	var in dto.ApplyJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.jobs.Save(c.Context(), GetEmail(c), in.JobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la oferta no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "oferta guardada"})
}

// UnsaveJob godoc
// @Summary      Retirar oferta de favoritos (no-op si no estaba)
// @Tags         profile
// @Produce      json
// @Param        id   path      int  true  "id de la oferta"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/profile/saved-jobs/{id} [delete]
// @Security     BearerAuth
func (h *ProfileHandler) UnsaveJob(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if err := h.jobs.Unsave(c.Context(), GetEmail(c), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "oferta retirada de favoritos"})
}

// RecentSearches godoc
// @Summary      Búsquedas recientes (máximo 5, la más nueva primero)
// @Tags         searches
// @Produce      json
// @Success      200  {object}  dto.RecentSearchesResponse
// @Router       /api/searches/recent [get]
// @Security     BearerAuth
func (h *ProfileHandler) RecentSearches(c *fiber.Ctx) error {
	terms, err := h.jobs.RecentSearches(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.RecentSearchesResponse{Searches: terms})
}

// RecordSearch godoc
// @Summary      Registrar un término de búsqueda
// @Tags         searches
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SearchRequest  true  "término"
// @Success      200   {object}  dto.RecentSearchesResponse
// @Router       /api/searches/recent [post]
// @Security     BearerAuth
func (h *ProfileHandler) RecordSearch(c *fiber.Ctx) error {
	var in dto.SearchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	terms, err := h.jobs.RecordSearch(c.Context(), in.Term)
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "término de búsqueda vacío"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.RecentSearchesResponse{Searches: terms})
}

// ClearSearches godoc
// @Summary      Vaciar las búsquedas recientes
// @Tags         searches
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/searches/recent [delete]
// @Security     BearerAuth
func (h *ProfileHandler) ClearSearches(c *fiber.Ctx) error {
	if err := h.jobs.ClearSearches(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "búsquedas recientes vaciadas"})
}
