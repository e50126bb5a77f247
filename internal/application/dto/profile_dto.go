package dto

import "github.com/seventechnologies/hireat-api/internal/domain/entity"

// ProfileResponse perfil completo del usuario autenticado, sin credenciales.
type ProfileResponse struct {
	Email            string                 `json:"email"`
	FirstName        string                 `json:"firstName,omitempty"`
	LastName         string                 `json:"lastName,omitempty"`
	Role             string                 `json:"role,omitempty"`
	Title            string                 `json:"title,omitempty"`
	Phone            string                 `json:"phone,omitempty"`
	Location         string                 `json:"location,omitempty"`
	ProfilePhoto     string                 `json:"profilePhoto,omitempty"`
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

// UpdateProfileRequest edición de perfil. La escritura reemplaza los campos
// de perfil del registro completo; rol, permisos y credenciales no se tocan
// por esta vía.
type UpdateProfileRequest struct {
	FirstName        string                 `json:"firstName"`
	LastName         string                 `json:"lastName"`
	Title            string                 `json:"title,omitempty"`
	Phone            string                 `json:"phone,omitempty"`
	Location         string                 `json:"location,omitempty"`
	ProfilePhoto     string                 `json:"profilePhoto,omitempty"`
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

// ToProfileResponse proyecta el registro de dominio al perfil público.
func ToProfileResponse(u *entity.User) *ProfileResponse {
	if u == nil {
		return nil
	}
	return &ProfileResponse{
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Role:             u.Role,
		Title:            u.Title,
		Phone:            u.Phone,
		Location:         u.Location,
		ProfilePhoto:     u.ProfilePhoto,
		YearsExperience:  u.YearsExperience,
		Summary:          u.Summary,
		Experiences:      u.Experiences,
		Educations:       u.Educations,
		Certifications:   u.Certifications,
		Skills:           u.Skills,
		Salary:           u.Salary,
		Currency:         u.Currency,
		Availability:     u.Availability,
		RemotePreference: u.RemotePreference,
		NoticePeriod:     u.NoticePeriod,
		Portfolio:        u.Portfolio,
		LinkedIn:         u.LinkedIn,
		GitHub:           u.GitHub,
		AdditionalInfo:   u.AdditionalInfo,
	}
}
