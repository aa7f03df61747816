package dto

import (
	"time"

	"taskmanager/internal/models"
)

// TaskStatusDTO represents a task status in API responses.
type TaskStatusDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskStatusCreateRequest is the payload for POST /api/task_statuses.
type TaskStatusCreateRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

// TaskStatusUpdateRequest is the payload for PUT /api/task_statuses/:id.
type TaskStatusUpdateRequest struct {
	Name Optional[string] `json:"name"`
	Slug Optional[string] `json:"slug"`
}

// ToTaskStatusDTO converts a TaskStatus model to TaskStatusDTO
func ToTaskStatusDTO(status models.TaskStatus) TaskStatusDTO {
	return TaskStatusDTO{
		ID:        status.ID,
		Name:      status.Name,
		Slug:      status.Slug,
		CreatedAt: status.CreatedAt,
	}
}

// ToTaskStatusDTOs converts a slice of TaskStatus models to DTOs
func ToTaskStatusDTOs(statuses []models.TaskStatus) []TaskStatusDTO {
	dtos := make([]TaskStatusDTO, len(statuses))
	for i, status := range statuses {
		dtos[i] = ToTaskStatusDTO(status)
	}
	return dtos
}
