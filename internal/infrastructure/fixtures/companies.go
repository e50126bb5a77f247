package fixtures

import (
	"context"
	"sync"

	"github.com/seventechnologies/hireat-api/internal/domain"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

var _ repository.CompanyCatalog = (*CompanyCatalog)(nil)

// CompanyCatalog perfiles de empresa en memoria.
type CompanyCatalog struct {
	mu        sync.RWMutex
	companies []entity.Company
	nextID    int
}

// NewCompanyCatalog construye el catálogo sembrado.
func NewCompanyCatalog() *CompanyCatalog {
	comps := seedCompanies()
	next := 1
	for _, c := range comps {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return &CompanyCatalog{companies: comps, nextID: next}
}

// ListCompanies devuelve una copia del catálogo.
func (c *CompanyCatalog) ListCompanies(_ context.Context) ([]entity.Company, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Company, len(c.companies))
	copy(out, c.companies)
	return out, nil
}

// GetCompany devuelve la empresa por id, o ErrNotFound.
func (c *CompanyCatalog) GetCompany(_ context.Context, id int) (*entity.Company, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, comp := range c.companies {
		if comp.ID == id {
			out := comp
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// CreateCompany asigna id y añade la empresa.
func (c *CompanyCatalog) CreateCompany(_ context.Context, comp entity.Company) (*entity.Company, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	comp.ID = c.nextID
	c.nextID++
	c.companies = append(c.companies, comp)
	return &comp, nil
}

// UpdateCompany reemplaza la empresa con el mismo id, o ErrNotFound.
func (c *CompanyCatalog) UpdateCompany(_ context.Context, comp entity.Company) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.companies {
		if existing.ID == comp.ID {
			c.companies[i] = comp
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteCompany elimina la empresa, o ErrNotFound si no existe.
func (c *CompanyCatalog) DeleteCompany(_ context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.companies {
		if existing.ID == id {
			c.companies = append(c.companies[:i], c.companies[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func seedCompanies() []entity.Company {
	return []entity.Company{
		{
			ID: 1, Name: "TechGlobal Inc.",
			Logo:     "https://ui-avatars.com/api/?name=TG&background=5944f5&color=fff",
			Location: "San Francisco, USA", Size: "Enterprise (1000+)",
			Description: "TechGlobal is a leading technology company specializing in innovative software solutions for global enterprises.",
			Industries:  []string{"Software Development", "AI & Machine Learning", "Cloud Computing"},
			Founded:     2010, Website: "https://techglobal-example.com", OpenPositions: 12,
		},
		{
			ID: 2, Name: "Innovative Solutions",
			Logo:     "https://ui-avatars.com/api/?name=IS&background=5944f5&color=fff",
			Location: "Berlin, Germany", Size: "Mid-size (201-1000)",
			Description: "Innovative Solutions provides cutting-edge backend infrastructure and cloud services to businesses across Europe.",
			Industries:  []string{"Cloud Infrastructure", "Cybersecurity", "Software Development"},
			Founded:     2015, Website: "https://innosolutions-example.com", OpenPositions: 8,
		},
		{
			ID: 3, Name: "Cloud Systems",
			Logo:     "https://ui-avatars.com/api/?name=CS&background=5944f5&color=fff",
			Location: "New York, USA", Size: "Mid-size (201-1000)",
			Description: "Cloud Systems is a DevOps and cloud infrastructure company helping organizations optimize their cloud deployments.",
			Industries:  []string{"DevOps", "Cloud Computing", "Infrastructure as Code"},
			Founded:     2013, Website: "https://cloudsystems-example.com", OpenPositions: 5,
		},
		{
			ID: 4, Name: "DataMinds",
			Logo:     "https://ui-avatars.com/api/?name=DM&background=5944f5&color=fff",
			Location: "São Paulo, Brazil", Size: "Startup (1-50)",
			Description: "DataMinds builds machine-learning products for the Latin American market.",
			Industries:  []string{"Data Science", "AI & Machine Learning"},
			Founded:     2018, Website: "https://dataminds-example.com", OpenPositions: 3,
		},
	}
}
