package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/seventechnologies/hireat-api/internal/application/dto"
	"github.com/seventechnologies/hireat-api/internal/domain"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
	"github.com/seventechnologies/hireat-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y siembra de la
// identidad maestra.
type AuthUseCase struct {
	users       repository.UserRepository
	jwtCfg      JWTConfig
	masterEmail string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig, masterEmail string) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg, masterEmail: masterEmail}
}

// Register finaliza el wizard de registro: hashea el password con bcrypt y
// persiste el registro de perfil completo. Devuelve ErrEmailAlreadyExists si
// ya hay un registro bajo ese email.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if !strings.Contains(in.Email, "@") {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.Get(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Email:            in.Email,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		PasswordHash:     string(hash),
		Role:             entity.RoleUser,
		Title:            in.Title,
		Phone:            in.Phone,
		Location:         in.Location,
		YearsExperience:  in.YearsExperience,
		Summary:          in.Summary,
		Experiences:      in.Experiences,
		Educations:       in.Educations,
		Certifications:   in.Certifications,
		Skills:           in.Skills,
		Salary:           in.Salary,
		Currency:         in.Currency,
		Availability:     in.Availability,
		RemotePreference: in.RemotePreference,
		NoticePeriod:     in.NoticePeriod,
		Portfolio:        in.Portfolio,
		LinkedIn:         in.LinkedIn,
		GitHub:           in.GitHub,
		AdditionalInfo:   in.AdditionalInfo,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Login verifica email/password, genera el JWT de sesión y retorna token +
// usuario. El registro maestro existe siempre (lo siembra EnsureMasterAdmin
// al arrancar), así que su login no tiene caso especial.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.Get(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *dto.ToUserResponse(user)}, nil
}

// EnsureMasterAdmin siembra la identidad maestra si no existe: rol admin y
// el conjunto completo de permisos base. Se llama al arrancar.
func (uc *AuthUseCase) EnsureMasterAdmin(ctx context.Context, password string) error {
	existing, err := uc.users.Get(ctx, uc.masterEmail)
	if err != nil {
		return err
	}
	if existing != nil && existing.PasswordHash != "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	master := &entity.User{
		Email:        uc.masterEmail,
		FirstName:    "Admin",
		LastName:     "User",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Permissions:  append([]string(nil), entity.CorePermissionIDs...),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if existing != nil {
		// conservar el perfil existente, solo completar credenciales y rol
		master = existing
		master.PasswordHash = string(hash)
		master.Role = entity.RoleAdmin
		master.Permissions = append([]string(nil), entity.CorePermissionIDs...)
		master.UpdatedAt = now
	}
	return uc.users.Save(ctx, master)
}
