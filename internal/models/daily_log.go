package models

import "time"

// DailyLog anchors one calendar day. Date is the unique "YYYY-MM-DD" key;
// the row is created lazily on first access to that day.
type DailyLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"uniqueIndex;not null" json:"date"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// Assignment binds one user to one bucket for one day. A nil UserID means
// the bucket is explicitly unassigned for that day.
type Assignment struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	DailyLogID uint  `gorm:"not null;uniqueIndex:uidx_log_bucket" json:"daily_log_id"`
	BucketID   uint  `gorm:"not null;uniqueIndex:uidx_log_bucket" json:"bucket_id"`
	UserID     *uint `json:"user_id"`

	User         *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TaskProgress []TaskProgress `gorm:"foreignKey:AssignmentID" json:"task_progress"`
}
