package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/seventechnologies/hireat-api/internal/application/dto"
	"github.com/seventechnologies/hireat-api/internal/application/usecase"
	"github.com/seventechnologies/hireat-api/internal/domain"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
)

// CandidateHandler directorio de candidatos: listado público y CRUD del panel.
type CandidateHandler struct {
	uc *usecase.CandidateUseCase
}

// NewCandidateHandler construye el handler de candidatos.
func NewCandidateHandler(uc *usecase.CandidateUseCase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

// List godoc
// @Summary      Listar candidatos
// @Tags         candidates
// @Produce      json
// @Param        skill         query  string  false  "filtra por habilidad"
// @Param        availability  query  string  false  "filtra por disponibilidad"
// @Success      200  {array}  entity.Candidate
// @Router       /api/candidates [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	cands, err := h.uc.List(c.Context(), c.Query("skill"), c.Query("availability"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cands)
}

// GetByID godoc
// @Summary      Detalle de un candidato
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "id del candidato"
// @Success      200  {object}  entity.Candidate
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	cand, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el candidato no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cand)
}

// Create godoc
// @Summary      Alta de candidato (panel)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Candidate  true  "candidato"
// @Success      201   {object}  entity.Candidate
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/candidates [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var in entity.Candidate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cand, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(cand)
}

// Update godoc
// @Summary      Editar candidato (panel)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "id del candidato"
// @Param        body  body  entity.Candidate  true  "candidato"
// @Success      200   {object}  entity.Candidate
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/candidates/{id} [put]
func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	var in entity.Candidate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cand, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el candidato no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cand)
}

// Delete godoc
// @Summary      Eliminar candidato (panel)
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "id del candidato"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el candidato no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "candidato eliminado"})
}
