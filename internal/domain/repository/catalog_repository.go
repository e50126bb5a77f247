package repository

import (
	"context"

	"github.com/seventechnologies/hireat-api/internal/domain/entity"
)

// JobCatalog catálogo de ofertas de empleo. Los datos se siembran como
// fixtures en memoria; el CRUD del panel opera sobre esa copia.
type JobCatalog interface {
	ListJobs(ctx context.Context) ([]entity.Job, error)
	GetJob(ctx context.Context, id int) (*entity.Job, error)
	CreateJob(ctx context.Context, job entity.Job) (*entity.Job, error)
	UpdateJob(ctx context.Context, job entity.Job) error
	DeleteJob(ctx context.Context, id int) error
}

// CandidateCatalog directorio de candidatos destacados.
type CandidateCatalog interface {
	ListCandidates(ctx context.Context) ([]entity.Candidate, error)
	GetCandidate(ctx context.Context, id int) (*entity.Candidate, error)
	CreateCandidate(ctx context.Context, c entity.Candidate) (*entity.Candidate, error)
	UpdateCandidate(ctx context.Context, c entity.Candidate) error
	DeleteCandidate(ctx context.Context, id int) error
}

// CompanyCatalog perfiles de empresa.
type CompanyCatalog interface {
	ListCompanies(ctx context.Context) ([]entity.Company, error)
	GetCompany(ctx context.Context, id int) (*entity.Company, error)
	CreateCompany(ctx context.Context, c entity.Company) (*entity.Company, error)
	UpdateCompany(ctx context.Context, c entity.Company) error
	DeleteCompany(ctx context.Context, id int) error
}
