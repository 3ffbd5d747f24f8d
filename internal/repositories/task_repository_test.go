package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

func setupRepo(t *testing.T) *TaskRepository {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tasks.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return NewTaskRepository(db)
}

func TestTaskRepository_CreateAssignsIDAndPending(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	desc := "first"
	task, err := repo.Create(ctx, "Task One", &desc)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if task.ID == 0 {
		t.Error("expected the store to assign an id")
	}
	if task.Status != constants.StatusPending {
		t.Errorf("expected pending status, got %s", task.Status)
	}
	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set on creation")
	}
}

func TestTaskRepository_FindByIDMiss(t *testing.T) {
	repo := setupRepo(t)

	task, err := repo.FindByID(context.Background(), 7)
	if task != nil {
		t.Error("a miss must not return a task")
	}

	var appErr *apperrors.Exception
	if !errors.As(err, &appErr) || appErr.StatusCode != 404 {
		t.Errorf("expected an explicit 404 miss, got %v", err)
	}
}

func TestTaskRepository_ListEmptyIsNotNil(t *testing.T) {
	repo := setupRepo(t)

	tasks, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if tasks == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(tasks) != 0 {
		t.Errorf("expected no rows, got %d", len(tasks))
	}
}

func TestTaskRepository_DeleteIsPhysical(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	task, err := repo.Create(ctx, "Task Two", nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.Delete(ctx, task.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, task.ID); err == nil {
		t.Error("expected the row to be gone after delete")
	}
}
