package repository

import (
	"taskmanager/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindAll returns all users
	FindAll() ([]models.User, error)

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// ExistsByEmail reports whether a user with the given email exists
	ExistsByEmail(email string) (bool, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// Delete removes a user
	Delete(id uint64) error
}

// TaskStatusRepository defines the interface for task status data access
type TaskStatusRepository interface {
	// Create creates a new task status
	Create(status *models.TaskStatus) error

	// FindAll returns all task statuses
	FindAll() ([]models.TaskStatus, error)

	// FindByID finds a task status by ID
	FindByID(id uint64) (*models.TaskStatus, error)

	// FindBySlug finds a task status by its slug
	FindBySlug(slug string) (*models.TaskStatus, error)

	// ExistsByName reports whether a status with the given name exists
	ExistsByName(name string) (bool, error)

	// ExistsBySlug reports whether a status with the given slug exists
	ExistsBySlug(slug string) (bool, error)

	// Update persists changes to a task status
	Update(status *models.TaskStatus) error

	// Delete removes a task status
	Delete(id uint64) error
}

// LabelRepository defines the interface for label data access
type LabelRepository interface {
	// Create creates a new label
	Create(label *models.Label) error

	// FindAll returns all labels
	FindAll() ([]models.Label, error)

	// FindByID finds a label by ID
	FindByID(id uint64) (*models.Label, error)

	// FindAllByIDs returns the labels whose ids are in the given set.
	// Ids that do not resolve are silently skipped.
	FindAllByIDs(ids []uint64) ([]models.Label, error)

	// ExistsByName reports whether a label with the given name exists
	ExistsByName(name string) (bool, error)

	// Update persists changes to a label
	Update(label *models.Label) error

	// Delete removes a label
	Delete(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task together with its label references
	Create(task *models.Task) error

	// FindByID finds a task with its status and labels loaded
	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks matching the filter, relations loaded
	List(filter TaskFilter) ([]models.Task, error)

	// Update persists changes to a task's own columns
	Update(task *models.Task) error

	// ReplaceLabels replaces the task's label set
	ReplaceLabels(task *models.Task, labels []models.Label) error

	// Delete removes a task and its label references
	Delete(id uint64) error

	// ExistsByAssigneeID reports whether any task is assigned to the user
	ExistsByAssigneeID(userID uint64) (bool, error)

	// ExistsByTaskStatusID reports whether any task references the status
	ExistsByTaskStatusID(statusID uint64) (bool, error)

	// ExistsByLabelID reports whether any task references the label
	ExistsByLabelID(labelID uint64) (bool, error)
}

// TaskFilter holds the optional criteria for listing tasks. Every nil or
// empty criterion matches all tasks; set criteria are combined with AND.
type TaskFilter struct {
	TitleCont  *string
	AssigneeID *uint64
	Status     *string
	LabelIDs   []uint64
}
