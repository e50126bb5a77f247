package fixtures

import (
	"context"
	"sync"

	"github.com/seventechnologies/hireat-api/internal/domain"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

var _ repository.CandidateCatalog = (*CandidateCatalog)(nil)

// CandidateCatalog directorio de candidatos en memoria.
type CandidateCatalog struct {
	mu         sync.RWMutex
	candidates []entity.Candidate
	nextID     int
}

// NewCandidateCatalog construye el directorio sembrado.
func NewCandidateCatalog() *CandidateCatalog {
	cands := seedCandidates()
	next := 1
	for _, c := range cands {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return &CandidateCatalog{candidates: cands, nextID: next}
}

// ListCandidates devuelve una copia del directorio.
func (c *CandidateCatalog) ListCandidates(_ context.Context) ([]entity.Candidate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Candidate, len(c.candidates))
	copy(out, c.candidates)
	return out, nil
}

// GetCandidate devuelve el candidato por id, o ErrNotFound.
func (c *CandidateCatalog) GetCandidate(_ context.Context, id int) (*entity.Candidate, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cand := range c.candidates {
		if cand.ID == id {
			out := cand
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// CreateCandidate asigna id y añade el perfil.
func (c *CandidateCatalog) CreateCandidate(_ context.Context, cand entity.Candidate) (*entity.Candidate, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cand.ID = c.nextID
	c.nextID++
	c.candidates = append(c.candidates, cand)
	return &cand, nil
}

// UpdateCandidate reemplaza el perfil con el mismo id, o ErrNotFound.
func (c *CandidateCatalog) UpdateCandidate(_ context.Context, cand entity.Candidate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.candidates {
		if existing.ID == cand.ID {
			c.candidates[i] = cand
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteCandidate elimina el perfil, o ErrNotFound si no existe.
func (c *CandidateCatalog) DeleteCandidate(_ context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.candidates {
		if existing.ID == id {
			c.candidates = append(c.candidates[:i], c.candidates[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func seedCandidates() []entity.Candidate {
	return []entity.Candidate{
		{
			ID: 1, Name: "Alex Johnson", Title: "Senior Frontend Developer",
			Location: "London, UK", Experience: "7",
			Skills: []string{"React", "TypeScript", "UI/UX", "Redux"},
			Avatar: "https://randomuser.me/api/portraits/men/32.jpg",
			Availability: "Available Now", OpenToRemote: true,
		},
		{
			ID: 2, Name: "Sofia Rodriguez", Title: "Full Stack Engineer",
			Location: "Madrid, Spain", Experience: "5",
			Skills: []string{"JavaScript", "Node.js", "Python", "MongoDB"},
			Avatar: "https://randomuser.me/api/portraits/women/44.jpg",
			Availability: "Available in 2 weeks", OpenToRemote: true,
		},
		{
			ID: 3, Name: "Marcus Chen", Title: "DevOps Engineer",
			Location: "Berlin, Germany", Experience: "6",
			Skills: []string{"AWS", "Docker", "Kubernetes", "CI/CD"},
			Avatar: "https://randomuser.me/api/portraits/men/55.jpg",
			Availability: "Available in 1 month", OpenToRemote: false,
		},
		{
			ID: 4, Name: "Camila Santos", Title: "UX/UI Designer",
			Location: "São Paulo, Brazil", Experience: "4",
			Skills: []string{"Figma", "Adobe XD", "User Research", "Wireframing"},
			Avatar: "https://randomuser.me/api/portraits/women/67.jpg",
			Availability: "Available Now", OpenToRemote: true,
		},
	}
}
