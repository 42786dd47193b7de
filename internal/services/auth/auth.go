// Package services реализует регистрацию и аутентификацию тренеров.
package services

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/gym-client-manager/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-client-manager/internal/lib/password"
	"github.com/magabrotheeeer/gym-client-manager/internal/models"
)

// ErrInvalidCredentials возвращается при неверной паре логин-пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// InstructorRepository определяет методы хранилища для учётных записей тренеров.
type InstructorRepository interface {
	RegisterInstructor(ctx context.Context, instructor models.Instructor) (string, error)
	GetInstructorByUsername(ctx context.Context, username string) (*models.Instructor, error)
}

// AuthService реализует бизнес-логику авторизации и аутентификации тренеров.
type AuthService struct {
	instructors InstructorRepository
	jwtMaker    jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(instructors InstructorRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		instructors: instructors,
		jwtMaker:    jwtMaker,
	}
}

// Register создаёт нового тренера с хэшированием пароля и возвращает его UID.
func (s *AuthService) Register(ctx context.Context, username, email, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	instructor := models.Instructor{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}
	return s.instructors.RegisterInstructor(ctx, instructor)
}

// Login проверяет пароль и возвращает JWT с username и UID тренера.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (string, error) {
	instructor, err := s.instructors.GetInstructorByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if instructor == nil {
		return "", ErrInvalidCredentials
	}
	if err := password.CompareHash(instructor.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwtMaker.GenerateToken(instructor.Username, instructor.UID)
}

// ValidateToken проверяет JWT и возвращает claims с username и UID тренера.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(token)
}
