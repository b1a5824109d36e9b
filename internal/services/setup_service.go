package services

import (
	"fmt"
	"time"

	"github.com/lotionhq/huddle/internal/models"
	"github.com/lotionhq/huddle/internal/security"
	"golang.org/x/crypto/bcrypt"
)

const bootstrapAdminEmail = "admin@huddle.local"

type SetupBucketRepository interface {
	CountBuckets() (int64, error)
	Create(bucket *models.Bucket) error
}

type SetupTaskRepository interface {
	Create(task *models.TaskDefinition) error
}

type SetupUserRepository interface {
	CountUsers() (int64, error)
	Create(user *models.User) error
}

// SetupService prepares an empty store for first use: the default bucket
// catalog and a bootstrap admin account.
type SetupService struct {
	buckets SetupBucketRepository
	tasks   SetupTaskRepository
	users   SetupUserRepository
}

func NewSetupService(buckets SetupBucketRepository, tasks SetupTaskRepository, users SetupUserRepository) *SetupService {
	return &SetupService{buckets: buckets, tasks: tasks, users: users}
}

// EnsureSeedBuckets installs the starter catalog when no buckets exist yet.
func (service *SetupService) EnsureSeedBuckets() (bool, error) {
	count, err := service.buckets.CountBuckets()
	if err != nil {
		return false, fmt.Errorf("count buckets: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	for index, seed := range models.DefaultSeedBuckets() {
		bucket := models.Bucket{
			Title:        seed.Title,
			Description:  seed.Description,
			Icon:         seed.Icon,
			Color:        seed.Color,
			DisplayOrder: index + 1,
		}
		if err := service.buckets.Create(&bucket); err != nil {
			return false, fmt.Errorf("seed bucket %s: %w", seed.Title, err)
		}
		for taskIndex, content := range seed.Tasks {
			task := models.TaskDefinition{
				BucketID:     bucket.ID,
				Content:      content,
				DisplayOrder: taskIndex + 1,
			}
			if err := service.tasks.Create(&task); err != nil {
				return false, fmt.Errorf("seed task for %s: %w", seed.Title, err)
			}
		}
	}
	return true, nil
}

// EnsureBootstrapAdmin creates the first admin on an empty roster and
// returns its one-time generated password. The password is handed back so
// the caller can print it exactly once; only the hash is stored.
func (service *SetupService) EnsureBootstrapAdmin() (string, string, error) {
	count, err := service.users.CountUsers()
	if err != nil {
		return "", "", fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return "", "", nil
	}

	password, err := generateInitialPassword(12)
	if err != nil {
		return "", "", fmt.Errorf("generate bootstrap password: %w", err)
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("hash bootstrap password: %w", err)
	}

	admin := models.User{
		Name:         "Admin",
		Email:        bootstrapAdminEmail,
		PasswordHash: string(passwordHash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&admin); err != nil {
		return "", "", fmt.Errorf("create bootstrap admin: %w", err)
	}
	return admin.Email, password, nil
}

func generateInitialPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
