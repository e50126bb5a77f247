package dto

// UserUpsertRequest alta/edición de usuario del panel IAM.
type UserUpsertRequest struct {
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Role        string   `json:"role"` // admin, manager, user
	Permissions []string `json:"permissions"`
}

// PermissionRequest alta/edición de una entrada del catálogo de permisos.
type PermissionRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Scope       string `json:"scope"`
}

// GroupRequest alta/edición de un grupo de permisos.
type GroupRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}
