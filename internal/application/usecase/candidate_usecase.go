package usecase

import (
	"context"
	"strings"

	"github.com/seventechnologies/hireat-api/internal/domain"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

// CandidateUseCase directorio de candidatos: listado con filtros y CRUD del
// panel.
type CandidateUseCase struct {
	catalog repository.CandidateCatalog
}

// NewCandidateUseCase construye el caso de uso.
func NewCandidateUseCase(catalog repository.CandidateCatalog) *CandidateUseCase {
	return &CandidateUseCase{catalog: catalog}
}

// List devuelve los candidatos, filtrando por habilidad y disponibilidad si
// se indican.
func (uc *CandidateUseCase) List(ctx context.Context, skill, availability string) ([]entity.Candidate, error) {
	cands, err := uc.catalog.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Candidate, 0, len(cands))
	for _, c := range cands {
		if skill != "" && !hasSkill(c, skill) {
			continue
		}
		if availability != "" && !strings.EqualFold(c.Availability, availability) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// Get devuelve el candidato por id.
func (uc *CandidateUseCase) Get(ctx context.Context, id int) (*entity.Candidate, error) {
	return uc.catalog.GetCandidate(ctx, id)
}

// Create da de alta un candidato en el directorio.
func (uc *CandidateUseCase) Create(ctx context.Context, c entity.Candidate) (*entity.Candidate, error) {
	if c.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.catalog.CreateCandidate(ctx, c)
}

// Update edita el candidato del id dado.
func (uc *CandidateUseCase) Update(ctx context.Context, id int, c entity.Candidate) (*entity.Candidate, error) {
	c.ID = id
	if err := uc.catalog.UpdateCandidate(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete elimina el candidato.
func (uc *CandidateUseCase) Delete(ctx context.Context, id int) error {
	return uc.catalog.DeleteCandidate(ctx, id)
}

func hasSkill(c entity.Candidate, skill string) bool {
	for _, s := range c.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}
