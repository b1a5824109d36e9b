package db

import (
	"github.com/lotionhq/huddle/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

// ListByBucketIDs bulk-loads task definitions for a set of buckets in one
// query. The missed-task computation depends on this staying a single fetch.
func (repo *TaskRepository) ListByBucketIDs(bucketIDs []uint) ([]models.TaskDefinition, error) {
	tasks := make([]models.TaskDefinition, 0)
	if len(bucketIDs) == 0 {
		return tasks, nil
	}
	if err := repo.database.Where("bucket_id IN ?", bucketIDs).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) FindByID(taskID uint) (models.TaskDefinition, bool, error) {
	task := models.TaskDefinition{}
	result := repo.database.Limit(1).Find(&task, taskID)
	if result.Error != nil {
		return models.TaskDefinition{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TaskDefinition{}, false, nil
	}
	return task, true, nil
}

func (repo *TaskRepository) MaxDisplayOrder(bucketID uint) (int, error) {
	var maxOrder *int
	if err := repo.database.Model(&models.TaskDefinition{}).
		Where("bucket_id = ?", bucketID).
		Select("MAX(display_order)").
		Scan(&maxOrder).Error; err != nil {
		return 0, err
	}
	if maxOrder == nil {
		return 0, nil
	}
	return *maxOrder, nil
}

func (repo *TaskRepository) Create(task *models.TaskDefinition) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) UpdateContent(taskID uint, content string) (int64, error) {
	result := repo.database.Model(&models.TaskDefinition{}).Where("id = ?", taskID).Update("content", content)
	return result.RowsAffected, result.Error
}

// DeleteWithProgress removes a task definition together with its progress
// rows so no orphaned progress survives the delete.
func (repo *TaskRepository) DeleteWithProgress(taskID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_definition_id = ?", taskID).Delete(&models.TaskProgress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TaskDefinition{}, taskID).Error
	})
}
