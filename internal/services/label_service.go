package services

import (
	"errors"
	"fmt"
	"strings"

	"taskmanager/internal/constants"
	"taskmanager/internal/dto"
	"taskmanager/internal/models"
	"taskmanager/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrLabelNotFound    = errors.New("label not found")
	ErrLabelNameTaken   = errors.New("label with this name already exists")
	ErrLabelNameInvalid = errors.New("label name must be between 3 and 1000 characters")
	ErrLabelInUse       = errors.New("label is referenced by a task")
)

// LabelService handles label business logic. Labels follow the same
// policy as task statuses: unique name checked before the insert and a
// delete guard while any task references the label.
type LabelService struct {
	labelRepo repository.LabelRepository
	taskRepo  repository.TaskRepository
}

// NewLabelService creates a new LabelService.
func NewLabelService(labelRepo repository.LabelRepository, taskRepo repository.TaskRepository) *LabelService {
	return &LabelService{
		labelRepo: labelRepo,
		taskRepo:  taskRepo,
	}
}

// Create adds a new label.
func (s *LabelService) Create(name string) (*models.Label, error) {
	if !validLabelName(name) {
		return nil, ErrLabelNameInvalid
	}

	taken, err := s.labelRepo.ExistsByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to check label name: %w", err)
	}
	if taken {
		return nil, ErrLabelNameTaken
	}

	label := &models.Label{Name: name}

	if err := s.labelRepo.Create(label); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLabelNameTaken
		}
		return nil, fmt.Errorf("failed to create label: %w", err)
	}

	return label, nil
}

// Update applies the fields present in the request.
func (s *LabelService) Update(id uint64, req dto.LabelUpdateRequest) (*models.Label, error) {
	label, err := s.labelRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, fmt.Errorf("failed to find label: %w", err)
	}

	if req.Name.Present {
		name, ok := req.Name.Get()
		if !ok || !validLabelName(name) {
			return nil, ErrLabelNameInvalid
		}
		if name != label.Name {
			taken, err := s.labelRepo.ExistsByName(name)
			if err != nil {
				return nil, fmt.Errorf("failed to check label name: %w", err)
			}
			if taken {
				return nil, ErrLabelNameTaken
			}
		}
		label.Name = name
	}

	if err := s.labelRepo.Update(label); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLabelNameTaken
		}
		return nil, fmt.Errorf("failed to update label: %w", err)
	}

	return label, nil
}

// Delete removes a label unless any task still references it.
func (s *LabelService) Delete(id uint64) error {
	label, err := s.labelRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLabelNotFound
		}
		return fmt.Errorf("failed to find label: %w", err)
	}

	inUse, err := s.taskRepo.ExistsByLabelID(label.ID)
	if err != nil {
		return fmt.Errorf("failed to check task references: %w", err)
	}
	if inUse {
		return ErrLabelInUse
	}

	return s.labelRepo.Delete(id)
}

// Get retrieves a label by ID.
func (s *LabelService) Get(id uint64) (*models.Label, error) {
	label, err := s.labelRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, fmt.Errorf("failed to find label: %w", err)
	}
	return label, nil
}

// List returns all labels.
func (s *LabelService) List() ([]models.Label, error) {
	return s.labelRepo.FindAll()
}

func validLabelName(name string) bool {
	length := len(strings.TrimSpace(name))
	return length >= constants.MinLabelNameLength && length <= constants.MaxLabelNameLength
}
