package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Buckets     *BucketRepository
	Tasks       *TaskRepository
	DailyLogs   *DailyLogRepository
	Assignments *AssignmentRepository
	Progress    *ProgressRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Buckets:     NewBucketRepository(database),
		Tasks:       NewTaskRepository(database),
		DailyLogs:   NewDailyLogRepository(database),
		Assignments: NewAssignmentRepository(database),
		Progress:    NewProgressRepository(database),
	}
}
