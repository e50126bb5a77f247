// Package fixtures contiene los catálogos sembrados del portal (empleos,
// candidatos, empresas). Son los datos de muestra del producto: viven en
// memoria y el CRUD del panel de administración opera sobre esta copia.
package fixtures

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/seventechnologies/hireat-api/internal/domain"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

var _ repository.JobCatalog = (*JobCatalog)(nil)

// JobCatalog catálogo de ofertas en memoria, seguro para uso concurrente.
type JobCatalog struct {
	mu     sync.RWMutex
	jobs   []entity.Job
	nextID int
}

// NewJobCatalog construye el catálogo sembrado con las ofertas destacadas.
func NewJobCatalog() *JobCatalog {
	jobs := seedJobs()
	next := 1
	for _, j := range jobs {
		if j.ID >= next {
			next = j.ID + 1
		}
	}
	return &JobCatalog{jobs: jobs, nextID: next}
}

// ListJobs devuelve una copia del catálogo.
func (c *JobCatalog) ListJobs(_ context.Context) ([]entity.Job, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Job, len(c.jobs))
	copy(out, c.jobs)
	return out, nil
}

// GetJob devuelve la oferta por id, o ErrNotFound.
func (c *JobCatalog) GetJob(_ context.Context, id int) (*entity.Job, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, j := range c.jobs {
		if j.ID == id {
			job := j
			return &job, nil
		}
	}
	return nil, domain.ErrNotFound
}

// CreateJob asigna id y añade la oferta.
func (c *JobCatalog) CreateJob(_ context.Context, job entity.Job) (*entity.Job, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	job.ID = c.nextID
	c.nextID++
	c.jobs = append(c.jobs, job)
	return &job, nil
}

// UpdateJob reemplaza la oferta con el mismo id, o ErrNotFound.
func (c *JobCatalog) UpdateJob(_ context.Context, job entity.Job) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, j := range c.jobs {
		if j.ID == job.ID {
			c.jobs[i] = job
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteJob elimina la oferta, o ErrNotFound si no existe.
func (c *JobCatalog) DeleteJob(_ context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, j := range c.jobs {
		if j.ID == id {
			c.jobs = append(c.jobs[:i], c.jobs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func k(n int64) decimal.Decimal { return decimal.NewFromInt(n * 1000) }

func seedJobs() []entity.Job {
	return []entity.Job{
		{
			ID: 1, Title: "Senior Frontend Developer", Company: "TechGlobal Inc.",
			Location: "Remote", Type: "Full-time",
			Salary: "$90K - $120K", SalaryMin: k(90), SalaryMax: k(120),
			Tags: []string{"React", "TypeScript", "UI/UX"},
			Logo: "https://ui-avatars.com/api/?name=TG&background=5944f5&color=fff",
			IsRemote: true, PostedAt: "2 days ago",
			ExternalLink: "https://www.google.com/jobs/techglobal",
		},
		{
			ID: 2, Title: "Backend Engineer", Company: "Innovative Solutions",
			Location: "Berlin, Germany", Type: "Full-time",
			Salary: "€70K - €90K", SalaryMin: k(70), SalaryMax: k(90),
			Tags: []string{"Node.js", "Python", "AWS"},
			Logo: "https://ui-avatars.com/api/?name=IS&background=5944f5&color=fff",
			IsRemote: false, PostedAt: "1 week ago",
			ExternalLink: "https://www.google.com/jobs/innovative",
		},
		{
			ID: 3, Title: "DevOps Specialist", Company: "Cloud Systems",
			Location: "New York, USA", Type: "Full-time",
			Salary: "$100K - $130K", SalaryMin: k(100), SalaryMax: k(130),
			Tags: []string{"Docker", "Kubernetes", "CI/CD"},
			Logo: "https://ui-avatars.com/api/?name=CS&background=5944f5&color=fff",
			IsRemote: false, PostedAt: "3 days ago",
			ExternalLink: "https://www.google.com/jobs/cloudsystems",
		},
		{
			ID: 4, Title: "Mobile Developer", Company: "AppWorks Ltd",
			Location: "Remote", Type: "Contract",
			Salary: "$70K - $100K", SalaryMin: k(70), SalaryMax: k(100),
			Tags: []string{"React Native", "Flutter", "iOS/Android"},
			Logo: "https://ui-avatars.com/api/?name=AW&background=5944f5&color=fff",
			IsRemote: true, PostedAt: "5 days ago",
			ExternalLink: "https://www.google.com/jobs/appworks",
		},
		{
			ID: 5, Title: "Data Scientist", Company: "DataMinds",
			Location: "São Paulo, Brazil", Type: "Full-time",
			Salary: "R$15K - R$20K", SalaryMin: k(15), SalaryMax: k(20),
			Tags: []string{"Python", "Machine Learning", "SQL"},
			Logo: "https://ui-avatars.com/api/?name=DM&background=5944f5&color=fff",
			IsRemote: false, PostedAt: "1 day ago",
			ExternalLink: "https://www.google.com/jobs/dataminds",
		},
		{
			ID: 6, Title: "UX/UI Designer", Company: "Creative Hub",
			Location: "Remote", Type: "Full-time",
			Salary: "$75K - $95K", SalaryMin: k(75), SalaryMax: k(95),
			Tags: []string{"Figma", "Adobe XD", "User Research"},
			Logo: "https://ui-avatars.com/api/?name=CH&background=5944f5&color=fff",
			IsRemote: true, PostedAt: "4 days ago",
			ExternalLink: "https://www.google.com/jobs/creativehub",
		},
	}
}
