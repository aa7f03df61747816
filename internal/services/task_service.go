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
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskTitleBlank   = errors.New("task title cannot be blank")
	ErrAssigneeNotFound = errors.New("assignee not found")
)

// TaskService handles task business logic: reference resolution on
// create/update and filtered listing.
type TaskService struct {
	taskRepo   repository.TaskRepository
	userRepo   repository.UserRepository
	statusRepo repository.TaskStatusRepository
	labelRepo  repository.LabelRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	statusRepo repository.TaskStatusRepository,
	labelRepo repository.LabelRepository,
) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		userRepo:   userRepo,
		statusRepo: statusRepo,
		labelRepo:  labelRepo,
	}
}

// Create builds a task from the request. The status slug and assignee id
// must resolve; label ids that do not resolve are silently dropped.
func (s *TaskService) Create(req dto.TaskCreateRequest) (*models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTaskTitleBlank
	}

	status, err := s.resolveStatus(req.Status)
	if err != nil {
		return nil, err
	}

	assignee, err := s.resolveAssignee(req.AssigneeID)
	if err != nil {
		return nil, err
	}

	labels, err := s.labelRepo.FindAllByIDs(req.LabelIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve labels: %w", err)
	}

	task := &models.Task{
		Title:        req.Title,
		Index:        req.Index,
		Content:      req.Content,
		TaskStatusID: status.ID,
		AssigneeID:   assignee.ID,
		Labels:       labels,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	task.TaskStatus = *status
	task.Assignee = *assignee
	return task, nil
}

// Update applies the fields present in the request to the task. Present
// references must resolve; a present label set replaces the previous one
// with whatever ids resolve.
func (s *TaskService) Update(id uint64, req dto.TaskUpdateRequest) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if req.Title.Present {
		title, ok := req.Title.Get()
		if !ok || strings.TrimSpace(title) == "" {
			return nil, ErrTaskTitleBlank
		}
		task.Title = title
	}

	if req.Index.Present {
		task.Index = req.Index.Value
	}

	if req.Content.Present {
		content, _ := req.Content.Get()
		task.Content = content
	}

	if req.Status.Present {
		slug, ok := req.Status.Get()
		if !ok {
			return nil, ErrTaskStatusNotFound
		}
		status, err := s.resolveStatus(slug)
		if err != nil {
			return nil, err
		}
		task.TaskStatusID = status.ID
		task.TaskStatus = *status
	}

	if req.AssigneeID.Present {
		assigneeID, ok := req.AssigneeID.Get()
		if !ok {
			return nil, ErrAssigneeNotFound
		}
		assignee, err := s.resolveAssignee(assigneeID)
		if err != nil {
			return nil, err
		}
		task.AssigneeID = assignee.ID
		task.Assignee = *assignee
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if req.LabelIDs.Present {
		var ids []uint64
		if v, ok := req.LabelIDs.Get(); ok {
			ids = v
		}
		labels, err := s.labelRepo.FindAllByIDs(ids)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve labels: %w", err)
		}
		if err := s.taskRepo.ReplaceLabels(task, labels); err != nil {
			return nil, fmt.Errorf("failed to replace labels: %w", err)
		}
	}

	return task, nil
}

// List returns the tasks matching the filter.
func (s *TaskService) List(filter repository.TaskFilter) ([]models.Task, error) {
	return s.taskRepo.List(filter)
}

// Get retrieves a task by ID with its relations loaded.
func (s *TaskService) Get(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(id uint64) error {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	return s.taskRepo.Delete(id)
}

func (s *TaskService) resolveStatus(slug string) (*models.TaskStatus, error) {
	status, err := s.statusRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskStatusNotFound
		}
		return nil, fmt.Errorf("failed to find task status: %w", err)
	}
	return status, nil
}

func (s *TaskService) resolveAssignee(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssigneeNotFound
		}
		return nil, fmt.Errorf("failed to find assignee: %w", err)
	}
	return user, nil
}
