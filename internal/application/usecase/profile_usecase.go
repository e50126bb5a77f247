package usecase

import (
	"context"
	"regexp"
	"time"

	"github.com/seventechnologies/hireat-api/internal/application/dto"
	"github.com/seventechnologies/hireat-api/internal/domain"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

// CVGenerator puerto de generación del CV en PDF (lo implementa el adaptador
// maroto de infraestructura).
type CVGenerator interface {
	GenerateCV(ctx context.Context, user *entity.User) ([]byte, error)
}

var languageCode = regexp.MustCompile(`^[a-z]{2}$`)

// ProfileUseCase perfil del usuario autenticado: lectura, edición (escritura
// del registro completo), preferencia de idioma y exportación del CV.
type ProfileUseCase struct {
	users    repository.UserRepository
	searches repository.SearchRepository
	cv       CVGenerator
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(users repository.UserRepository, searches repository.SearchRepository, cv CVGenerator) *ProfileUseCase {
	return &ProfileUseCase{users: users, searches: searches, cv: cv}
}

// Get devuelve el perfil de la identidad.
func (uc *ProfileUseCase) Get(ctx context.Context, email string) (*dto.ProfileResponse, error) {
	user, err := uc.users.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.ToProfileResponse(user), nil
}

// Update aplica la edición del perfil. Sigue el patrón del registro único:
// se lee el registro completo, se reemplazan los campos de perfil y se
// escribe entero de vuelta. Rol, permisos y credenciales no se tocan.
func (uc *ProfileUseCase) Update(ctx context.Context, email string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := uc.users.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Title = in.Title
	user.Phone = in.Phone
	user.Location = in.Location
	user.ProfilePhoto = in.ProfilePhoto
	user.YearsExperience = in.YearsExperience
	user.Summary = in.Summary
	user.Experiences = in.Experiences
	user.Educations = in.Educations
	user.Certifications = in.Certifications
	user.Skills = in.Skills
	user.Salary = in.Salary
	user.Currency = in.Currency
	user.Availability = in.Availability
	user.RemotePreference = in.RemotePreference
	user.NoticePeriod = in.NoticePeriod
	user.Portfolio = in.Portfolio
	user.LinkedIn = in.LinkedIn
	user.GitHub = in.GitHub
	user.AdditionalInfo = in.AdditionalInfo
	user.UpdatedAt = time.Now()

	if err := uc.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToProfileResponse(user), nil
}

// GenerateCV exporta el perfil como PDF.
func (uc *ProfileUseCase) GenerateCV(ctx context.Context, email string) ([]byte, error) {
	user, err := uc.users.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.cv.GenerateCV(ctx, user)
}

// Language devuelve la preferencia de idioma guardada.
func (uc *ProfileUseCase) Language(ctx context.Context) (string, error) {
	return uc.searches.Language(ctx)
}

// SetLanguage guarda la preferencia; solo códigos de dos letras minúsculas.
func (uc *ProfileUseCase) SetLanguage(ctx context.Context, code string) error {
	if !languageCode.MatchString(code) {
		return domain.ErrInvalidInput
	}
	return uc.searches.SetLanguage(ctx, code)
}
