package datamodels

// CreateTaskRequest carries no status field: a caller-supplied status
// on creation is dropped during decoding and the task starts pending.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// UpdateTaskRequest uses pointer fields so that absent fields leave the
// stored values untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
