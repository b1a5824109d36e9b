package services

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/lotionhq/huddle/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type RosterUserRepository interface {
	ListAll() ([]models.User, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	Create(user *models.User) error
	UpdateName(userID uint, name string) (int64, error)
	DeleteAndDetachHistory(userID uint) error
}

type NewUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// RosterService manages the team member list. Creation is admin-gated;
// deletion detaches history instead of cascading it away.
type RosterService struct {
	users RosterUserRepository
}

func NewRosterService(users RosterUserRepository) *RosterService {
	return &RosterService{users: users}
}

func (service *RosterService) ListUsers() ([]models.User, error) {
	return service.users.ListAll()
}

func (service *RosterService) CreateUser(actorRole string, input NewUserInput) (models.User, error) {
	if actorRole != models.RoleAdmin {
		return models.User{}, fmt.Errorf("%w: only administrators can create users", ErrForbidden)
	}

	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return models.User{}, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return models.User{}, fmt.Errorf("%w: bad email address", ErrValidation)
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = models.RoleMember
	}
	if role != models.RoleAdmin && role != models.RoleMember {
		return models.User{}, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("check email uniqueness: %w", err)
	}
	if exists {
		return models.User{}, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: email already registered", ErrConflict)
	}
	return user, nil
}

func (service *RosterService) UpdateUserName(userID uint, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	affected, err := service.users.UpdateName(userID, trimmed)
	if err != nil {
		return fmt.Errorf("update user name: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	return nil
}

func (service *RosterService) DeleteUser(userID uint) error {
	if err := service.users.DeleteAndDetachHistory(userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
