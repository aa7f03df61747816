package dto

import (
	"time"

	"taskmanager/internal/models"
)

// TaskDTO represents a task in API responses. The status is emitted as the
// slug of the linked TaskStatus, the assignee as its numeric id and the
// labels as a set of numeric ids.
type TaskDTO struct {
	ID         uint64    `json:"id"`
	Title      string    `json:"title"`
	Index      *int      `json:"index"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	AssigneeID uint64    `json:"assignee_id"`
	LabelIDs   []uint64  `json:"taskLabelIds"`
	CreatedAt  time.Time `json:"created_at"`
}

// TaskCreateRequest is the payload for POST /api/tasks.
type TaskCreateRequest struct {
	Title      string   `json:"title" binding:"required"`
	Index      *int     `json:"index"`
	Content    string   `json:"content"`
	Status     string   `json:"status" binding:"required"`
	AssigneeID uint64   `json:"assignee_id" binding:"required"`
	LabelIDs   []uint64 `json:"taskLabelIds"`
}

// TaskUpdateRequest is the payload for PUT /api/tasks/:id. Only fields
// present in the payload are applied.
type TaskUpdateRequest struct {
	Title      Optional[string]   `json:"title"`
	Index      Optional[int]      `json:"index"`
	Content    Optional[string]   `json:"content"`
	Status     Optional[string]   `json:"status"`
	AssigneeID Optional[uint64]   `json:"assignee_id"`
	LabelIDs   Optional[[]uint64] `json:"taskLabelIds"`
}

// ToTaskDTO converts a Task model to TaskDTO. The TaskStatus and Labels
// relations must be loaded.
func ToTaskDTO(task models.Task) TaskDTO {
	labelIDs := make([]uint64, len(task.Labels))
	for i, label := range task.Labels {
		labelIDs[i] = label.ID
	}

	return TaskDTO{
		ID:         task.ID,
		Title:      task.Title,
		Index:      task.Index,
		Content:    task.Content,
		Status:     task.TaskStatus.Slug,
		AssigneeID: task.AssigneeID,
		LabelIDs:   labelIDs,
		CreatedAt:  task.CreatedAt,
	}
}

// ToTaskDTOs converts a slice of Task models to DTOs
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
