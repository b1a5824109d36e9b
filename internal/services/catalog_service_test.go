package services

import (
	"errors"
	"testing"

	"github.com/lotionhq/huddle/internal/models"
)

type catalogBucketRepositoryStub struct {
	titles map[uint]string
}

func (stub *catalogBucketRepositoryStub) FindByID(bucketID uint) (models.Bucket, bool, error) {
	title, ok := stub.titles[bucketID]
	if !ok {
		return models.Bucket{}, false, nil
	}
	return models.Bucket{ID: bucketID, Title: title}, true, nil
}

func (stub *catalogBucketRepositoryStub) UpdateTitle(bucketID uint, title string) (int64, error) {
	if _, ok := stub.titles[bucketID]; !ok {
		return 0, nil
	}
	stub.titles[bucketID] = title
	return 1, nil
}

type catalogTaskRepositoryStub struct {
	tasks  map[uint]models.TaskDefinition
	nextID uint
}

func newCatalogTaskRepositoryStub() *catalogTaskRepositoryStub {
	return &catalogTaskRepositoryStub{tasks: make(map[uint]models.TaskDefinition), nextID: 1}
}

func (stub *catalogTaskRepositoryStub) MaxDisplayOrder(bucketID uint) (int, error) {
	maxOrder := 0
	for _, task := range stub.tasks {
		if task.BucketID == bucketID && task.DisplayOrder > maxOrder {
			maxOrder = task.DisplayOrder
		}
	}
	return maxOrder, nil
}

func (stub *catalogTaskRepositoryStub) Create(task *models.TaskDefinition) error {
	task.ID = stub.nextID
	stub.nextID++
	stub.tasks[task.ID] = *task
	return nil
}

func (stub *catalogTaskRepositoryStub) UpdateContent(taskID uint, content string) (int64, error) {
	task, ok := stub.tasks[taskID]
	if !ok {
		return 0, nil
	}
	task.Content = content
	stub.tasks[taskID] = task
	return 1, nil
}

func (stub *catalogTaskRepositoryStub) FindByID(taskID uint) (models.TaskDefinition, bool, error) {
	task, ok := stub.tasks[taskID]
	return task, ok, nil
}

func (stub *catalogTaskRepositoryStub) DeleteWithProgress(taskID uint) error {
	delete(stub.tasks, taskID)
	return nil
}

func newCatalogServiceFixture() (*CatalogService, *catalogTaskRepositoryStub) {
	tasks := newCatalogTaskRepositoryStub()
	buckets := &catalogBucketRepositoryStub{titles: map[uint]string{1: "Inbound Support", 2: "Team Sync"}}
	return NewCatalogService(buckets, tasks), tasks
}

func TestCreateTaskAppendsAfterHighestOrder(t *testing.T) {
	service, tasks := newCatalogServiceFixture()
	tasks.tasks[50] = models.TaskDefinition{ID: 50, BucketID: 1, Content: "existing", DisplayOrder: 4}

	created, err := service.CreateTask(1, "  Review escalations  ")
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if created.DisplayOrder != 5 {
		t.Fatalf("expected order 5, got %d", created.DisplayOrder)
	}
	if created.Content != "Review escalations" {
		t.Fatalf("expected trimmed content, got %q", created.Content)
	}
}

func TestCreateTaskFirstInBucketGetsOrderOne(t *testing.T) {
	service, _ := newCatalogServiceFixture()

	created, err := service.CreateTask(2, "First task")
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if created.DisplayOrder != 1 {
		t.Fatalf("expected order 1 in empty bucket, got %d", created.DisplayOrder)
	}
}

func TestCreateTaskRejectsBlankContent(t *testing.T) {
	service, _ := newCatalogServiceFixture()

	if _, err := service.CreateTask(1, "   "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateTaskUnknownBucketIsNotFound(t *testing.T) {
	service, _ := newCatalogServiceFixture()

	if _, err := service.CreateTask(99, "Orphan task"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateBucketTitleUnknownBucketIsNotFound(t *testing.T) {
	service, _ := newCatalogServiceFixture()

	if err := service.UpdateBucketTitle(99, "Renamed"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteTaskUnknownTaskIsNotFound(t *testing.T) {
	service, _ := newCatalogServiceFixture()

	if err := service.DeleteTask(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateTaskContentTrimsAndPersists(t *testing.T) {
	service, tasks := newCatalogServiceFixture()
	tasks.tasks[3] = models.TaskDefinition{ID: 3, BucketID: 1, Content: "old"}

	if err := service.UpdateTaskContent(3, " new content "); err != nil {
		t.Fatalf("update content: %v", err)
	}
	if tasks.tasks[3].Content != "new content" {
		t.Fatalf("expected trimmed content persisted, got %q", tasks.tasks[3].Content)
	}
}
