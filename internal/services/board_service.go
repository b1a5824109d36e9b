package services

import (
	"fmt"

	"github.com/lotionhq/huddle/internal/models"
)

type BoardDailyLogRepository interface {
	GetOrCreateByDate(date string) (models.DailyLog, error)
	FindByDate(date string) (models.DailyLog, bool, error)
}

type BoardBucketRepository interface {
	ListOrderedWithTasks() ([]models.Bucket, error)
}

type BoardAssignmentRepository interface {
	ListByDailyLog(dailyLogID uint) ([]models.Assignment, error)
}

type BoardTaskRepository interface {
	ListByBucketIDs(bucketIDs []uint) ([]models.TaskDefinition, error)
}

type BoardUserRepository interface {
	ListAll() ([]models.User, error)
}

// DailyState is everything the dashboard needs to render one day.
type DailyState struct {
	DailyLog        models.DailyLog     `json:"daily_log"`
	Buckets         []models.Bucket     `json:"buckets"`
	Assignments     []models.Assignment `json:"assignments"`
	Users           []models.User       `json:"users"`
	MissedTaskIDs   []uint              `json:"missed_task_ids"`
	CurrentUserRole string              `json:"current_user_role"`
}

type BoardService struct {
	logs        BoardDailyLogRepository
	buckets     BoardBucketRepository
	assignments BoardAssignmentRepository
	tasks       BoardTaskRepository
	users       BoardUserRepository
}

func NewBoardService(
	logs BoardDailyLogRepository,
	buckets BoardBucketRepository,
	assignments BoardAssignmentRepository,
	tasks BoardTaskRepository,
	users BoardUserRepository,
) *BoardService {
	return &BoardService{
		logs:        logs,
		buckets:     buckets,
		assignments: assignments,
		tasks:       tasks,
		users:       users,
	}
}

// GetDailyState aggregates the view model for one calendar date. Reading is
// its only side effect apart from the lazy creation of the date's DailyLog.
func (service *BoardService) GetDailyState(date string, viewerRole string) (DailyState, error) {
	if _, err := ParseDay(date); err != nil {
		return DailyState{}, err
	}

	dailyLog, err := service.logs.GetOrCreateByDate(date)
	if err != nil {
		return DailyState{}, fmt.Errorf("ensure daily log: %w", err)
	}

	buckets, err := service.buckets.ListOrderedWithTasks()
	if err != nil {
		return DailyState{}, fmt.Errorf("load buckets: %w", err)
	}

	assignments, err := service.assignments.ListByDailyLog(dailyLog.ID)
	if err != nil {
		return DailyState{}, fmt.Errorf("load assignments: %w", err)
	}

	users, err := service.users.ListAll()
	if err != nil {
		return DailyState{}, fmt.Errorf("load users: %w", err)
	}

	missedTaskIDs, err := service.missedTaskIDsForPriorDay(date)
	if err != nil {
		return DailyState{}, err
	}

	return DailyState{
		DailyLog:        dailyLog,
		Buckets:         buckets,
		Assignments:     assignments,
		Users:           users,
		MissedTaskIDs:   missedTaskIDs,
		CurrentUserRole: viewerRole,
	}, nil
}

// missedTaskIDsForPriorDay checks the previous calendar day. No prior log is
// a valid empty result, never an error. Task definitions for all assigned
// buckets come from one bulk query and are grouped in memory.
func (service *BoardService) missedTaskIDsForPriorDay(date string) ([]uint, error) {
	yesterday, err := PreviousDay(date)
	if err != nil {
		return nil, err
	}

	yesterdayLog, found, err := service.logs.FindByDate(yesterday)
	if err != nil {
		return nil, fmt.Errorf("load prior daily log: %w", err)
	}
	if !found {
		return []uint{}, nil
	}

	assignments, err := service.assignments.ListByDailyLog(yesterdayLog.ID)
	if err != nil {
		return nil, fmt.Errorf("load prior assignments: %w", err)
	}

	assignedBucketIDs := AssignedBucketIDs(assignments)
	if len(assignedBucketIDs) == 0 {
		return []uint{}, nil
	}

	bucketTasks, err := service.tasks.ListByBucketIDs(assignedBucketIDs)
	if err != nil {
		return nil, fmt.Errorf("load prior bucket tasks: %w", err)
	}

	return ComputeMissedTaskIDs(assignments, GroupTasksByBucket(bucketTasks)), nil
}
