package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/constants"
	dto "task-tracker.com/task-tracker/internal/data_models"
)

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title != nil {
		if *r.Title == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "title must not be empty")
		}
		if len(*r.Title) > 100 {
			return echo.NewHTTPError(http.StatusBadRequest, "title must be at most 100 characters")
		}
	}
	if r.Description != nil && len(*r.Description) > 500 {
		return echo.NewHTTPError(http.StatusBadRequest, "description must be at most 500 characters")
	}
	if r.Status != nil && !constants.TaskStatus(*r.Status).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be one of pending, in_progress, completed")
	}
	return nil
}
