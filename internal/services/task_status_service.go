package services

import (
	"errors"
	"fmt"
	"strings"

	"taskmanager/internal/dto"
	"taskmanager/internal/models"
	"taskmanager/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskStatusNotFound = errors.New("task status not found")
	ErrStatusNameTaken    = errors.New("task status with this name already exists")
	ErrStatusSlugTaken    = errors.New("task status with this slug already exists")
	ErrStatusNameBlank    = errors.New("task status name cannot be blank")
	ErrStatusSlugBlank    = errors.New("task status slug cannot be blank")
	ErrStatusInUse        = errors.New("task status is referenced by a task")
)

// TaskStatusService handles task status business logic.
type TaskStatusService struct {
	statusRepo repository.TaskStatusRepository
	taskRepo   repository.TaskRepository
}

// NewTaskStatusService creates a new TaskStatusService.
func NewTaskStatusService(statusRepo repository.TaskStatusRepository, taskRepo repository.TaskRepository) *TaskStatusService {
	return &TaskStatusService{
		statusRepo: statusRepo,
		taskRepo:   taskRepo,
	}
}

// CreateTaskStatusInput represents the required information to create a
// task status.
type CreateTaskStatusInput struct {
	Name string
	Slug string
}

// Create adds a new task status. Name and slug collisions are checked
// before the insert so the caller gets a specific error instead of a bare
// constraint violation.
func (s *TaskStatusService) Create(input CreateTaskStatusInput) (*models.TaskStatus, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrStatusNameBlank
	}
	if strings.TrimSpace(input.Slug) == "" {
		return nil, ErrStatusSlugBlank
	}

	nameTaken, err := s.statusRepo.ExistsByName(input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check status name: %w", err)
	}
	if nameTaken {
		return nil, ErrStatusNameTaken
	}

	slugTaken, err := s.statusRepo.ExistsBySlug(input.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check status slug: %w", err)
	}
	if slugTaken {
		return nil, ErrStatusSlugTaken
	}

	status := &models.TaskStatus{
		Name: input.Name,
		Slug: input.Slug,
	}

	if err := s.statusRepo.Create(status); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStatusNameTaken
		}
		return nil, fmt.Errorf("failed to create task status: %w", err)
	}

	return status, nil
}

// Update applies the fields present in the request. Each present field is
// independently checked for blankness and for collision with a different
// record; keeping the current value is allowed.
func (s *TaskStatusService) Update(id uint64, req dto.TaskStatusUpdateRequest) (*models.TaskStatus, error) {
	status, err := s.statusRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskStatusNotFound
		}
		return nil, fmt.Errorf("failed to find task status: %w", err)
	}

	if req.Name.Present {
		name, ok := req.Name.Get()
		if !ok || strings.TrimSpace(name) == "" {
			return nil, ErrStatusNameBlank
		}
		if name != status.Name {
			taken, err := s.statusRepo.ExistsByName(name)
			if err != nil {
				return nil, fmt.Errorf("failed to check status name: %w", err)
			}
			if taken {
				return nil, ErrStatusNameTaken
			}
		}
		status.Name = name
	}

	if req.Slug.Present {
		slug, ok := req.Slug.Get()
		if !ok || strings.TrimSpace(slug) == "" {
			return nil, ErrStatusSlugBlank
		}
		if slug != status.Slug {
			taken, err := s.statusRepo.ExistsBySlug(slug)
			if err != nil {
				return nil, fmt.Errorf("failed to check status slug: %w", err)
			}
			if taken {
				return nil, ErrStatusSlugTaken
			}
		}
		status.Slug = slug
	}

	if err := s.statusRepo.Update(status); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrStatusNameTaken
		}
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return status, nil
}

// Delete removes a task status unless any task still references it.
func (s *TaskStatusService) Delete(id uint64) error {
	status, err := s.statusRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskStatusNotFound
		}
		return fmt.Errorf("failed to find task status: %w", err)
	}

	inUse, err := s.taskRepo.ExistsByTaskStatusID(status.ID)
	if err != nil {
		return fmt.Errorf("failed to check task references: %w", err)
	}
	if inUse {
		return ErrStatusInUse
	}

	return s.statusRepo.Delete(id)
}

// Get retrieves a task status by ID.
func (s *TaskStatusService) Get(id uint64) (*models.TaskStatus, error) {
	status, err := s.statusRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskStatusNotFound
		}
		return nil, fmt.Errorf("failed to find task status: %w", err)
	}
	return status, nil
}

// List returns all task statuses.
func (s *TaskStatusService) List() ([]models.TaskStatus, error) {
	return s.statusRepo.FindAll()
}
