package dto

import "github.com/seventechnologies/hireat-api/internal/domain/entity"

// JobFilter filtros de búsqueda del listado público de empleos.
type JobFilter struct {
	Query    string `query:"q"`
	Type     string `query:"type"`     // Full-time, Contract...
	Location string `query:"location"` // Remote | On-site
}

// JobListResponse resultado del listado con el total tras filtrar.
type JobListResponse struct {
	Jobs  []entity.Job `json:"jobs"`
	Total int          `json:"total"`
}

// ApplyJobRequest referencia a una oferta para aplicar o guardar.
type ApplyJobRequest struct {
	JobID int `json:"jobId"`
}

// SearchRequest término de búsqueda a registrar en recientes.
type SearchRequest struct {
	Term string `json:"term"`
}

// RecentSearchesResponse términos recientes, el más nuevo primero.
type RecentSearchesResponse struct {
	Searches []string `json:"searches"`
}

// LanguageRequest preferencia de idioma (código de dos letras).
type LanguageRequest struct {
	Code string `json:"code"`
}
