package entity

import "time"

// IDs de los permisos base del catálogo. No pueden eliminarse.
const (
	PermManageCandidates = "manage_candidates"
	PermManageJobs       = "manage_jobs"
	PermManageCompanies  = "manage_companies"
	PermManageIAM        = "manage_iam"
	PermAdmin            = "admin"
)

// CorePermissionIDs permisos protegidos: no pueden borrarse ni cambiar de id
// o scope.
var CorePermissionIDs = []string{
	PermManageCandidates,
	PermManageJobs,
	PermManageCompanies,
	PermManageIAM,
	PermAdmin,
}

// IsCorePermission informa si el id pertenece al conjunto base.
func IsCorePermission(id string) bool {
	for _, core := range CorePermissionIDs {
		if core == id {
			return true
		}
	}
	return false
}

// Permission entrada del catálogo de permisos administrable desde IAM.
type Permission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Scope       string    `json:"scope"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// DefaultPermissions catálogo sembrado cuando aún no existe ninguno.
func DefaultPermissions() []Permission {
	return []Permission{
		{ID: PermManageCandidates, Name: "Manage Candidates", Description: "Create, view, edit and delete candidate profiles", Scope: "candidates"},
		{ID: PermManageJobs, Name: "Manage Jobs", Description: "Create, view, edit and delete job listings", Scope: "jobs"},
		{ID: PermManageCompanies, Name: "Manage Companies", Description: "Create, view, edit and delete company profiles", Scope: "companies"},
		{ID: PermManageIAM, Name: "Manage IAM", Description: "Manage users, groups and permissions", Scope: "iam"},
		{ID: PermAdmin, Name: "Full Admin Access", Description: "Full administrative access to all platform features", Scope: "system"},
	}
}
