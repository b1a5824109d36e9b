package db

import (
	"github.com/lotionhq/huddle/internal/models"
	"gorm.io/gorm"
)

type AssignmentRepository struct {
	database *gorm.DB
}

func NewAssignmentRepository(database *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{database: database}
}

func (repo *AssignmentRepository) ListByDailyLog(dailyLogID uint) ([]models.Assignment, error) {
	assignments := make([]models.Assignment, 0)
	if err := repo.database.
		Preload("User").
		Preload("TaskProgress").
		Where("daily_log_id = ?", dailyLogID).
		Order("id ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *AssignmentRepository) FindByID(assignmentID uint) (models.Assignment, bool, error) {
	assignment := models.Assignment{}
	result := repo.database.Limit(1).Find(&assignment, assignmentID)
	if result.Error != nil {
		return models.Assignment{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Assignment{}, false, nil
	}
	return assignment, true, nil
}

// Upsert sets the assignee for one bucket on one day. The unique index on
// (daily_log_id, bucket_id) is the only concurrency guard: a lost insert race
// falls through to an update of the winner's row.
func (repo *AssignmentRepository) Upsert(dailyLogID uint, bucketID uint, userID *uint) (models.Assignment, error) {
	existing := models.Assignment{}
	result := repo.database.
		Where("daily_log_id = ? AND bucket_id = ?", dailyLogID, bucketID).
		Limit(1).
		Find(&existing)
	if result.Error != nil {
		return models.Assignment{}, result.Error
	}

	if result.RowsAffected > 0 {
		if err := repo.database.Model(&existing).Update("user_id", userID).Error; err != nil {
			return models.Assignment{}, err
		}
		existing.UserID = userID
		return existing, nil
	}

	created := models.Assignment{DailyLogID: dailyLogID, BucketID: bucketID, UserID: userID}
	if err := repo.database.Create(&created).Error; err != nil {
		winner := models.Assignment{}
		retry := repo.database.
			Where("daily_log_id = ? AND bucket_id = ?", dailyLogID, bucketID).
			Limit(1).
			Find(&winner)
		if retry.Error != nil || retry.RowsAffected == 0 {
			return models.Assignment{}, err
		}
		if updateErr := repo.database.Model(&winner).Update("user_id", userID).Error; updateErr != nil {
			return models.Assignment{}, updateErr
		}
		winner.UserID = userID
		return winner, nil
	}
	return created, nil
}
