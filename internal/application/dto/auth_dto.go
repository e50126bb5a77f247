package dto

import (
	"time"

	"github.com/seventechnologies/hireat-api/internal/domain/entity"
)

// RegisterRequest payload final del wizard de registro de candidato. Todos
// los pasos llegan aplanados en una sola petición.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	Title            string                 `json:"title,omitempty"`
	Phone            string                 `json:"phone,omitempty"`
	Location         string                 `json:"location,omitempty"`
	YearsExperience  string                 `json:"yearsExperience,omitempty"`
	Summary          string                 `json:"summary,omitempty"`
	Experiences      []entity.Experience    `json:"experiences,omitempty"`
	Educations       []entity.Education     `json:"educations,omitempty"`
	Certifications   []entity.Certification `json:"certifications,omitempty"`
	Skills           []entity.Skill         `json:"skills,omitempty"`
	Salary           string                 `json:"salary,omitempty"`
	Currency         string                 `json:"currency,omitempty"`
	Availability     string                 `json:"availability,omitempty"`
	RemotePreference string                 `json:"remotePreference,omitempty"`
	NoticePeriod     string                 `json:"noticePeriod,omitempty"`
	Portfolio        string                 `json:"portfolio,omitempty"`
	LinkedIn         string                 `json:"linkedin,omitempty"`
	GitHub           string                 `json:"github,omitempty"`
	AdditionalInfo   string                 `json:"additionalInfo,omitempty"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse registro de usuario sin el hash de contraseña.
type UserResponse struct {
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty"`
	Role        string    `json:"role,omitempty"`
	Permissions []string  `json:"permissions,omitempty"`
	Title       string    `json:"title,omitempty"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// ToUserResponse proyecta el registro de dominio a la respuesta pública.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role,
		Permissions: u.Permissions,
		Title:       u.Title,
		Location:    u.Location,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
