package services

import (
	"fmt"
	"strings"

	"github.com/lotionhq/huddle/internal/models"
)

type CatalogBucketRepository interface {
	FindByID(bucketID uint) (models.Bucket, bool, error)
	UpdateTitle(bucketID uint, title string) (int64, error)
}

type CatalogTaskRepository interface {
	MaxDisplayOrder(bucketID uint) (int, error)
	Create(task *models.TaskDefinition) error
	UpdateContent(taskID uint, content string) (int64, error)
	FindByID(taskID uint) (models.TaskDefinition, bool, error)
	DeleteWithProgress(taskID uint) error
}

// CatalogService covers admin edit mode: renaming buckets and maintaining
// their checklist items.
type CatalogService struct {
	buckets CatalogBucketRepository
	tasks   CatalogTaskRepository
}

func NewCatalogService(buckets CatalogBucketRepository, tasks CatalogTaskRepository) *CatalogService {
	return &CatalogService{buckets: buckets, tasks: tasks}
}

func (service *CatalogService) UpdateBucketTitle(bucketID uint, title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}

	affected, err := service.buckets.UpdateTitle(bucketID, trimmed)
	if err != nil {
		return fmt.Errorf("update bucket title: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: bucket %d", ErrNotFound, bucketID)
	}
	return nil
}

// CreateTask appends a checklist item at the end of its bucket's list.
func (service *CatalogService) CreateTask(bucketID uint, content string) (models.TaskDefinition, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return models.TaskDefinition{}, fmt.Errorf("%w: content is required", ErrValidation)
	}

	_, found, err := service.buckets.FindByID(bucketID)
	if err != nil {
		return models.TaskDefinition{}, fmt.Errorf("load bucket: %w", err)
	}
	if !found {
		return models.TaskDefinition{}, fmt.Errorf("%w: bucket %d", ErrNotFound, bucketID)
	}

	maxOrder, err := service.tasks.MaxDisplayOrder(bucketID)
	if err != nil {
		return models.TaskDefinition{}, fmt.Errorf("load max task order: %w", err)
	}

	task := models.TaskDefinition{
		BucketID:     bucketID,
		Content:      trimmed,
		DisplayOrder: maxOrder + 1,
	}
	if err := service.tasks.Create(&task); err != nil {
		return models.TaskDefinition{}, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (service *CatalogService) UpdateTaskContent(taskID uint, content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}

	affected, err := service.tasks.UpdateContent(taskID, trimmed)
	if err != nil {
		return fmt.Errorf("update task content: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: task %d", ErrNotFound, taskID)
	}
	return nil
}

// DeleteTask removes a checklist item and its progress history together.
func (service *CatalogService) DeleteTask(taskID uint) error {
	_, found, err := service.tasks.FindByID(taskID)
	if err != nil {
		return fmt.Errorf("load task: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: task %d", ErrNotFound, taskID)
	}
	if err := service.tasks.DeleteWithProgress(taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
