package errors

import (
	"fmt"
	"net/http"
)

func TaskNotFound(id uint) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("task %d not found", id),
		StatusCode: http.StatusNotFound,
	}
}
