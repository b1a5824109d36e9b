package db

import (
	"time"

	"github.com/lotionhq/huddle/internal/models"
	"gorm.io/gorm"
)

type DailyLogRepository struct {
	database *gorm.DB
}

func NewDailyLogRepository(database *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{database: database}
}

// GetOrCreateByDate inserts first and falls back to a re-select when the
// unique index on date rejects the insert. Two concurrent first requests for
// a new date therefore converge on the same row instead of one of them
// failing.
func (repo *DailyLogRepository) GetOrCreateByDate(date string) (models.DailyLog, error) {
	entry := models.DailyLog{Date: date, CreatedAt: time.Now()}
	if err := repo.database.Create(&entry).Error; err != nil {
		existing := models.DailyLog{}
		if findErr := repo.database.Where("date = ?", date).First(&existing).Error; findErr == nil {
			return existing, nil
		}
		return models.DailyLog{}, err
	}
	return entry, nil
}

func (repo *DailyLogRepository) FindByDate(date string) (models.DailyLog, bool, error) {
	entry := models.DailyLog{}
	result := repo.database.Where("date = ?", date).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.DailyLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyLog{}, false, nil
	}
	return entry, true, nil
}
