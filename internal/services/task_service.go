package services

import (
	"context"
	"time"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
)

const (
	EventTaskCreated = "taskCreated"
	EventTaskUpdated = "taskUpdated"
	EventTaskDeleted = "taskDeleted"
)

// TaskStore is the persistence surface the service depends on. A
// missing row on FindByID must surface as an error, never as a nil
// task.
type TaskStore interface {
	Create(ctx context.Context, title string, description *string) (*model.Task, error)
	FindByID(ctx context.Context, id uint) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uint) error
}

// Broadcaster delivers a named event to every connected subscriber,
// best effort. It must never fail the calling operation.
type Broadcaster interface {
	Publish(event string, payload any)
}

type TaskService struct {
	store       TaskStore
	broadcaster Broadcaster
}

func NewTaskService(store TaskStore, broadcaster Broadcaster) *TaskService {
	return &TaskService{
		store:       store,
		broadcaster: broadcaster,
	}
}

// CreateTask persists a new pending task and announces it. The
// broadcast happens only after the row is committed; its outcome does
// not affect the result.
func (s *TaskService) CreateTask(ctx context.Context, title string, description *string) (*model.Task, error) {
	task, err := s.store.Create(ctx, title, description)
	if err != nil {
		return nil, err
	}

	s.broadcaster.Publish(EventTaskCreated, task)
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.store.FindByID(ctx, id)
}

// UpdateTask applies only the supplied fields. The existence read runs
// before the mutation, so a missing id never reaches the store's write
// path and never produces a broadcast.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, title, description, status *string) (*model.Task, error) {
	task, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		task.Title = *title
	}
	if description != nil {
		task.Description = description
	}
	if status != nil {
		task.Status = constants.TaskStatus(*status)
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, task); err != nil {
		return nil, err
	}

	s.broadcaster.Publish(EventTaskUpdated, task)
	return task, nil
}

// DeleteTask removes the row and announces the pre-deletion state.
func (s *TaskService) DeleteTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.broadcaster.Publish(EventTaskDeleted, task)
	return task, nil
}
