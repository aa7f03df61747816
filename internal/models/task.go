package models

import (
	"time"
)

type Task struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Index        *int      `gorm:"column:task_index" json:"index"`
	Content      string    `gorm:"type:text" json:"content"`
	TaskStatusID uint64    `gorm:"not null" json:"task_status_id"`
	AssigneeID   uint64    `gorm:"not null" json:"assignee_id"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	TaskStatus TaskStatus `gorm:"foreignKey:TaskStatusID" json:"task_status,omitempty"`
	Assignee   User       `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	Labels     []Label    `gorm:"many2many:task_labels" json:"labels,omitempty"`
}
