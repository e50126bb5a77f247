package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple de una operación.
type MessageResponse struct {
	Message string `json:"message"`
}

// DashboardSummary contadores de la raíz del panel de administración.
type DashboardSummary struct {
	User       *UserResponse `json:"user"`
	Jobs       int           `json:"jobs"`
	Candidates int           `json:"candidates"`
	Companies  int           `json:"companies"`
	Users      int           `json:"users"`
}
