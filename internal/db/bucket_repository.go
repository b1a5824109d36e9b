package db

import (
	"github.com/lotionhq/huddle/internal/models"
	"gorm.io/gorm"
)

type BucketRepository struct {
	database *gorm.DB
}

func NewBucketRepository(database *gorm.DB) *BucketRepository {
	return &BucketRepository{database: database}
}

func (repo *BucketRepository) CountBuckets() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Bucket{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListOrderedWithTasks returns the full catalog: buckets by display order,
// each with its task definitions in display order.
func (repo *BucketRepository) ListOrderedWithTasks() ([]models.Bucket, error) {
	buckets := make([]models.Bucket, 0)
	if err := repo.database.
		Preload("Tasks", func(query *gorm.DB) *gorm.DB {
			return query.Order("display_order ASC, id ASC")
		}).
		Order("display_order ASC, id ASC").
		Find(&buckets).Error; err != nil {
		return nil, err
	}
	return buckets, nil
}

func (repo *BucketRepository) FindByID(bucketID uint) (models.Bucket, bool, error) {
	bucket := models.Bucket{}
	result := repo.database.Limit(1).Find(&bucket, bucketID)
	if result.Error != nil {
		return models.Bucket{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Bucket{}, false, nil
	}
	return bucket, true, nil
}

func (repo *BucketRepository) Create(bucket *models.Bucket) error {
	return repo.database.Create(bucket).Error
}

func (repo *BucketRepository) UpdateTitle(bucketID uint, title string) (int64, error) {
	result := repo.database.Model(&models.Bucket{}).Where("id = ?", bucketID).Update("title", title)
	return result.RowsAffected, result.Error
}
