package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if len(r.Title) > 100 {
		return echo.NewHTTPError(http.StatusBadRequest, "title must be at most 100 characters")
	}
	if r.Description != nil && len(*r.Description) > 500 {
		return echo.NewHTTPError(http.StatusBadRequest, "description must be at most 500 characters")
	}
	return nil
}
