package services

import (
	"errors"
	"strings"

	"github.com/dmelo/catalog/app/models"
	"github.com/dmelo/catalog/app/repositories"
	"github.com/dmelo/catalog/pkg/apperr"
	"github.com/dmelo/catalog/pkg/auth"
	"github.com/dmelo/catalog/pkg/logger"
	"github.com/dmelo/catalog/pkg/rbac"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegisterInput is the self-service registration body. Registration always
// produces a CUSTOMER; role selection is reserved for CreateUser.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput is the credential pair.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateUserInput is the privileged account-creation body.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

// AuthService handles registration, login, and role-gated account creation.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{users: repositories.NewUserRepository(db)}
}

// Register creates a CUSTOMER account. Emails are case-normalized at write
// time so lookups never depend on the caller's casing.
func (s *AuthService) Register(input RegisterInput) (models.User, error) {
	return s.createUser(input.Name, input.Email, input.Password, rbac.RoleCustomer)
}

// Login verifies the credential pair and issues a signed token.
func (s *AuthService) Login(input LoginInput) (string, error) {
	user, err := s.users.FindByEmail(strings.ToLower(input.Email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperr.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return "", apperr.Internal(err)
	}

	if !auth.CheckPassword(user.Password, input.Password) {
		return "", apperr.Unauthorized("Invalid credentials")
	}

	return auth.GenerateToken(user.ID, user.Role)
}

// CreateUser creates an account with an explicit role, gated by the
// creation-authority table. A role outside the creator's authority fails with
// Forbidden, never a silent downgrade.
func (s *AuthService) CreateUser(creatorRole string, input CreateUserInput) (models.User, error) {
	if !rbac.Valid(input.Role) {
		return models.User{}, apperr.Validation("Validation failed", map[string]string{
			"role": "Unknown role: " + input.Role,
		})
	}

	if !rbac.CanCreateRole(creatorRole, input.Role) {
		return models.User{}, apperr.Forbidden("Not allowed to create a user with role: " + input.Role)
	}

	return s.createUser(input.Name, input.Email, input.Password, input.Role)
}

// GetByID loads a user by primary key.
func (s *AuthService) GetByID(id uuid.UUID) (models.User, error) {
	user, err := s.users.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, apperr.NotFound("User not found")
	}
	if err != nil {
		return models.User{}, apperr.Internal(err)
	}
	return user, nil
}

func (s *AuthService) createUser(name, email, password, role string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	taken, err := s.users.ExistsByEmail(email)
	if err != nil {
		return models.User{}, apperr.Internal(err)
	}
	if taken {
		return models.User{}, apperr.Conflict("Email already registered")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, apperr.Internal(err)
	}

	user := models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, apperr.Internal(err)
	}

	logger.Info("user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}
