package db

import (
	"time"

	"github.com/lotionhq/huddle/internal/models"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	database *gorm.DB
}

func NewProgressRepository(database *gorm.DB) *ProgressRepository {
	return &ProgressRepository{database: database}
}

// Upsert converges repeated toggles of the same (assignment, task) pair onto
// a single row, guarded by the unique index on that pair.
func (repo *ProgressRepository) Upsert(assignmentID uint, taskDefinitionID uint, status string, completedAt *time.Time, supportedByUserID *uint) (models.TaskProgress, error) {
	updates := map[string]any{
		"status":               status,
		"completed_at":         completedAt,
		"supported_by_user_id": supportedByUserID,
	}

	existing := models.TaskProgress{}
	result := repo.database.
		Where("assignment_id = ? AND task_definition_id = ?", assignmentID, taskDefinitionID).
		Limit(1).
		Find(&existing)
	if result.Error != nil {
		return models.TaskProgress{}, result.Error
	}

	if result.RowsAffected > 0 {
		if err := repo.database.Model(&existing).Updates(updates).Error; err != nil {
			return models.TaskProgress{}, err
		}
		existing.Status = status
		existing.CompletedAt = completedAt
		existing.SupportedByUserID = supportedByUserID
		return existing, nil
	}

	created := models.TaskProgress{
		AssignmentID:      assignmentID,
		TaskDefinitionID:  taskDefinitionID,
		Status:            status,
		CompletedAt:       completedAt,
		SupportedByUserID: supportedByUserID,
	}
	if err := repo.database.Create(&created).Error; err != nil {
		winner := models.TaskProgress{}
		retry := repo.database.
			Where("assignment_id = ? AND task_definition_id = ?", assignmentID, taskDefinitionID).
			Limit(1).
			Find(&winner)
		if retry.Error != nil || retry.RowsAffected == 0 {
			return models.TaskProgress{}, err
		}
		if updateErr := repo.database.Model(&winner).Updates(updates).Error; updateErr != nil {
			return models.TaskProgress{}, updateErr
		}
		winner.Status = status
		winner.CompletedAt = completedAt
		winner.SupportedByUserID = supportedByUserID
		return winner, nil
	}
	return created, nil
}

func (repo *ProgressRepository) CountByTaskDefinition(taskDefinitionID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.TaskProgress{}).
		Where("task_definition_id = ?", taskDefinitionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
