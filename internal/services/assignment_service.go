package services

import (
	"fmt"
	"time"

	"github.com/lotionhq/huddle/internal/models"
)

type AssignmentLogRepository interface {
	GetOrCreateByDate(date string) (models.DailyLog, error)
}

type AssignmentStore interface {
	FindByID(assignmentID uint) (models.Assignment, bool, error)
	Upsert(dailyLogID uint, bucketID uint, userID *uint) (models.Assignment, error)
}

type AssignmentUserRepository interface {
	FindByID(userID uint) (models.User, error)
}

type ProgressStore interface {
	Upsert(assignmentID uint, taskDefinitionID uint, status string, completedAt *time.Time, supportedByUserID *uint) (models.TaskProgress, error)
}

type AssignmentTaskRepository interface {
	FindByID(taskID uint) (models.TaskDefinition, bool, error)
}

type AssignmentService struct {
	logs        AssignmentLogRepository
	assignments AssignmentStore
	progress    ProgressStore
	users       AssignmentUserRepository
	tasks       AssignmentTaskRepository
	now         func() time.Time
}

func NewAssignmentService(
	logs AssignmentLogRepository,
	assignments AssignmentStore,
	progress ProgressStore,
	users AssignmentUserRepository,
	tasks AssignmentTaskRepository,
) *AssignmentService {
	return &AssignmentService{
		logs:        logs,
		assignments: assignments,
		progress:    progress,
		users:       users,
		tasks:       tasks,
		now:         time.Now,
	}
}

// AssignBucket sets or clears the user responsible for a bucket on a date.
// A nil userID unassigns. Repeated calls with the same arguments converge on
// the same single row.
func (service *AssignmentService) AssignBucket(bucketID uint, userID *uint, date string) error {
	if _, err := ParseDay(date); err != nil {
		return err
	}

	dailyLog, err := service.logs.GetOrCreateByDate(date)
	if err != nil {
		return fmt.Errorf("ensure daily log: %w", err)
	}

	if _, err := service.assignments.Upsert(dailyLog.ID, bucketID, userID); err != nil {
		if userID != nil {
			if _, findErr := service.users.FindByID(*userID); findErr != nil {
				return fmt.Errorf("%w: unknown user %d", ErrValidation, *userID)
			}
		}
		return fmt.Errorf("upsert assignment: %w", err)
	}
	return nil
}

// ToggleTask records done/not-done for one task under one assignment. The
// supporter, when present, is the acting user working on someone else's
// bucket; the assignee itself is never altered here. Progress may be written
// even when the assignment currently has no assignee, matching the store's
// permissive schema.
func (service *AssignmentService) ToggleTask(assignmentID uint, taskDefinitionID uint, done bool, supporterID *uint) error {
	_, found, err := service.assignments.FindByID(assignmentID)
	if err != nil {
		return fmt.Errorf("load assignment: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: assignment %d", ErrNotFound, assignmentID)
	}

	_, found, err = service.tasks.FindByID(taskDefinitionID)
	if err != nil {
		return fmt.Errorf("load task definition: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: unknown task %d", ErrValidation, taskDefinitionID)
	}

	status := models.StatusPending
	var completedAt *time.Time
	if done {
		status = models.StatusDone
		completed := service.now()
		completedAt = &completed
	}

	if _, err := service.progress.Upsert(assignmentID, taskDefinitionID, status, completedAt, supporterID); err != nil {
		return fmt.Errorf("upsert task progress: %w", err)
	}
	return nil
}
