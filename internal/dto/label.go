package dto

import (
	"time"

	"taskmanager/internal/models"
)

// LabelDTO represents a label in API responses.
type LabelDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// LabelCreateRequest is the payload for POST /api/labels.
type LabelCreateRequest struct {
	Name string `json:"name" binding:"required,min=3,max=1000"`
}

// LabelUpdateRequest is the payload for PUT /api/labels/:id.
type LabelUpdateRequest struct {
	Name Optional[string] `json:"name"`
}

// ToLabelDTO converts a Label model to LabelDTO
func ToLabelDTO(label models.Label) LabelDTO {
	return LabelDTO{
		ID:        label.ID,
		Name:      label.Name,
		CreatedAt: label.CreatedAt,
	}
}

// ToLabelDTOs converts a slice of Label models to DTOs
func ToLabelDTOs(labels []models.Label) []LabelDTO {
	dtos := make([]LabelDTO, len(labels))
	for i, label := range labels {
		dtos[i] = ToLabelDTO(label)
	}
	return dtos
}
