package usecase

import (
	"context"
	"strings"

	"github.com/seventechnologies/hireat-api/internal/application/dto"
	"github.com/seventechnologies/hireat-api/internal/domain"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

// JobUseCase listado público de empleos, filtros de búsqueda y las listas
// por identidad (aplicados / guardados).
type JobUseCase struct {
	catalog  repository.JobCatalog
	userJobs repository.UserJobsRepository
	searches repository.SearchRepository
}

// NewJobUseCase construye el caso de uso.
func NewJobUseCase(catalog repository.JobCatalog, userJobs repository.UserJobsRepository, searches repository.SearchRepository) *JobUseCase {
	return &JobUseCase{catalog: catalog, userJobs: userJobs, searches: searches}
}

// List aplica los filtros del buscador: término libre sobre título, empresa
// y tags; tipo de contrato exacto; ubicación Remote/On-site. Un término no
// vacío queda registrado en las búsquedas recientes.
func (uc *JobUseCase) List(ctx context.Context, f dto.JobFilter) (*dto.JobListResponse, error) {
	jobs, err := uc.catalog.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	if term := strings.TrimSpace(f.Query); term != "" {
		if _, err := uc.searches.RecordSearch(ctx, term); err != nil {
			return nil, err
		}
	}
	filtered := make([]entity.Job, 0, len(jobs))
	for _, j := range jobs {
		if !matchesQuery(j, f.Query) {
			continue
		}
		if f.Type != "" && j.Type != f.Type {
			continue
		}
		if f.Location == "Remote" && !j.IsRemote {
			continue
		}
		if f.Location == "On-site" && j.IsRemote {
			continue
		}
		filtered = append(filtered, j)
	}
	return &dto.JobListResponse{Jobs: filtered, Total: len(filtered)}, nil
}

// Get devuelve la oferta por id.
func (uc *JobUseCase) Get(ctx context.Context, id int) (*entity.Job, error) {
	return uc.catalog.GetJob(ctx, id)
}

// ListByCompany devuelve las ofertas publicadas por la empresa.
func (uc *JobUseCase) ListByCompany(ctx context.Context, companyName string) ([]entity.Job, error) {
	jobs, err := uc.catalog.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Job, 0)
	for _, j := range jobs {
		if strings.EqualFold(j.Company, companyName) {
			out = append(out, j)
		}
	}
	return out, nil
}

// Apply registra la aplicación de la identidad a la oferta. Idempotente; la
// oferta debe existir.
func (uc *JobUseCase) Apply(ctx context.Context, email string, jobID int) error {
	if _, err := uc.catalog.GetJob(ctx, jobID); err != nil {
		return err
	}
	return uc.userJobs.ApplyToJob(ctx, email, jobID)
}

// Save guarda la oferta en favoritos de la identidad. Idempotente.
func (uc *JobUseCase) Save(ctx context.Context, email string, jobID int) error {
	if _, err := uc.catalog.GetJob(ctx, jobID); err != nil {
		return err
	}
	return uc.userJobs.SaveJob(ctx, email, jobID)
}

// Unsave retira la oferta de favoritos; si no estaba, no pasa nada.
func (uc *JobUseCase) Unsave(ctx context.Context, email string, jobID int) error {
	return uc.userJobs.UnsaveJob(ctx, email, jobID)
}

// AppliedJobs resuelve las ofertas aplicadas de la identidad. Ids que ya no
// existen en el catálogo se omiten.
func (uc *JobUseCase) AppliedJobs(ctx context.Context, email string) ([]entity.Job, error) {
	ids, err := uc.userJobs.AppliedJobs(ctx, email)
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, ids)
}

// SavedJobs resuelve las ofertas guardadas de la identidad.
func (uc *JobUseCase) SavedJobs(ctx context.Context, email string) ([]entity.Job, error) {
	ids, err := uc.userJobs.SavedJobs(ctx, email)
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, ids)
}

func (uc *JobUseCase) resolve(ctx context.Context, ids []int) ([]entity.Job, error) {
	out := make([]entity.Job, 0, len(ids))
	for _, id := range ids {
		job, err := uc.catalog.GetJob(ctx, id)
		if err != nil {
			continue // la oferta fue retirada del catálogo
		}
		out = append(out, *job)
	}
	return out, nil
}

// Create publica una oferta nueva en el catálogo (panel de administración).
func (uc *JobUseCase) Create(ctx context.Context, job entity.Job) (*entity.Job, error) {
	if job.Title == "" || job.Company == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.catalog.CreateJob(ctx, job)
}

// Update edita la oferta del id dado.
func (uc *JobUseCase) Update(ctx context.Context, id int, job entity.Job) (*entity.Job, error) {
	job.ID = id
	if err := uc.catalog.UpdateJob(ctx, job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Delete retira la oferta del catálogo.
func (uc *JobUseCase) Delete(ctx context.Context, id int) error {
	return uc.catalog.DeleteJob(ctx, id)
}

// RecentSearches devuelve los términos recientes, el más nuevo primero.
func (uc *JobUseCase) RecentSearches(ctx context.Context) ([]string, error) {
	return uc.searches.RecentSearches(ctx)
}

// RecordSearch registra un término en las búsquedas recientes. Los términos
// vacíos o de solo espacios se rechazan.
func (uc *JobUseCase) RecordSearch(ctx context.Context, term string) ([]string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.searches.RecordSearch(ctx, term)
}

// ClearSearches vacía la lista de búsquedas recientes.
func (uc *JobUseCase) ClearSearches(ctx context.Context) error {
	return uc.searches.ClearSearches(ctx)
}

func matchesQuery(j entity.Job, query string) bool {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(j.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(j.Company), term) {
		return true
	}
	for _, tag := range j.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
