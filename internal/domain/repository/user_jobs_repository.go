package repository

import "context"

// UserJobsRepository listas ordenadas de ids de empleo por identidad
// (claves <email>_applied_jobs y <email>_saved_jobs). Semántica de conjunto:
// inserciones deduplicadas, orden de inserción preservado. Las mutaciones
// leen-modifican-escriben el array completo, por lo que la implementación
// debe serializar escrituras por identidad.
type UserJobsRepository interface {
	AppliedJobs(ctx context.Context, email string) ([]int, error)
	SavedJobs(ctx context.Context, email string) ([]int, error)
	// ApplyToJob añade el id si no está presente. Idempotente.
	ApplyToJob(ctx context.Context, email string, jobID int) error
	// SaveJob añade el id a favoritos si no está presente. Idempotente.
	SaveJob(ctx context.Context, email string, jobID int) error
	// UnsaveJob retira el id de favoritos; si no está, la lista no cambia.
	UnsaveJob(ctx context.Context, email string, jobID int) error
}
