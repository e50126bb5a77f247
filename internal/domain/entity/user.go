package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// User es el registro de identidad/perfil completo. Se persiste como un único
// blob JSON bajo la clave = Email; toda escritura reemplaza el registro entero
// (nunca se hace merge parcial).
type User struct {
	Email        string   `json:"email"`
	FirstName    string   `json:"firstName,omitempty"`
	LastName     string   `json:"lastName,omitempty"`
	PasswordHash string   `json:"passwordHash,omitempty"` // bcrypt; nunca en respuestas
	Role         string   `json:"role,omitempty"`         // admin, manager, user
	Permissions  []string `json:"permissions,omitempty"`  // tokens tipo manage_jobs, admin

	// Perfil de candidato (wizard de registro / editor de perfil).
	Title            string          `json:"title,omitempty"`
	Phone            string          `json:"phone,omitempty"`
	Location         string          `json:"location,omitempty"`
	ProfilePhoto     string          `json:"profilePhoto,omitempty"`
	YearsExperience  string          `json:"yearsExperience,omitempty"`
	Summary          string          `json:"summary,omitempty"`
	Experiences      []Experience    `json:"experiences,omitempty"`
	Educations       []Education     `json:"educations,omitempty"`
	Certifications   []Certification `json:"certifications,omitempty"`
	Skills           []Skill         `json:"skills,omitempty"`
	Salary           string          `json:"salary,omitempty"`
	Currency         string          `json:"currency,omitempty"`
	Availability     string          `json:"availability,omitempty"`
	RemotePreference string          `json:"remotePreference,omitempty"`
	NoticePeriod     string          `json:"noticePeriod,omitempty"`
	Portfolio        string          `json:"portfolio,omitempty"`
	LinkedIn         string          `json:"linkedin,omitempty"`
	GitHub           string          `json:"github,omitempty"`
	AdditionalInfo   string          `json:"additionalInfo,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// HasPermissionToken informa si el registro contiene el token exacto.
func (u *User) HasPermissionToken(token string) bool {
	for _, p := range u.Permissions {
		if p == token {
			return true
		}
	}
	return false
}

// Experience entrada de experiencia laboral del perfil.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description,omitempty"`
}

// Education entrada de formación académica.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Certification certificación profesional.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
	Expiry string `json:"expiry,omitempty"`
}

// Skill habilidad con años de experiencia declarados.
type Skill struct {
	Name  string `json:"name"`
	Years string `json:"years,omitempty"`
}
