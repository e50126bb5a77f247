package entity

import "time"

// Group agrupación nominal de permisos. Es solo una conveniencia de gestión:
// el evaluador de permisos no consulta grupos (no existe asignación
// usuario→grupo en los flujos actuales).
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// DefaultGroups grupos sembrados cuando aún no existe ninguno.
func DefaultGroups() []Group {
	return []Group{
		{ID: "administrators", Name: "Administrators", Description: "Full access to all features",
			Permissions: []string{PermAdmin, PermManageCandidates, PermManageJobs, PermManageCompanies, PermManageIAM}},
		{ID: "recruiters", Name: "Recruiters", Description: "Manage candidates and jobs",
			Permissions: []string{PermManageCandidates, PermManageJobs}},
		{ID: "analysts", Name: "Analysts", Description: "View-only access to data",
			Permissions: []string{}},
	}
}
