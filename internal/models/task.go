package models

import "time"

const (
	StatusPending = "PENDING"
	StatusDone    = "DONE"
)

type TaskDefinition struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	BucketID     uint   `gorm:"not null;index" json:"bucket_id"`
	Content      string `gorm:"not null" json:"content"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`
}

type TaskProgress struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	AssignmentID      uint       `gorm:"not null;uniqueIndex:uidx_assignment_task" json:"assignment_id"`
	TaskDefinitionID  uint       `gorm:"not null;uniqueIndex:uidx_assignment_task" json:"task_definition_id"`
	Status            string     `gorm:"not null;default:PENDING" json:"status"`
	CompletedAt       *time.Time `json:"completed_at"`
	SupportedByUserID *uint      `json:"supported_by_user_id"`
}

func (TaskProgress) TableName() string {
	return "task_progress"
}
