package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"taskmanager/internal/constants"
	"taskmanager/internal/dto"
	"taskmanager/internal/models"
	"taskmanager/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("user with this email already exists")
	ErrInvalidEmail         = errors.New("email is malformed")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserHasTasks         = errors.New("user is referenced by a task")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService handles user management business logic.
type UserService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, taskRepo repository.TaskRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}

// CreateUserInput represents the required information to create a user.
type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Create registers a new user. The email must be unused and the password
// is stored only as a bcrypt hash.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	input.Email = normalizeEmail(input.Email)

	taken, err := s.userRepo.ExistsByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Update applies the fields present in the request to the user. A present
// password is re-hashed before storage.
func (s *UserService) Update(id uint64, req dto.UserUpdateRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if req.Email.Present {
		email, ok := req.Email.Get()
		if !ok {
			return nil, ErrInvalidEmail
		}
		email = normalizeEmail(email)
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, ErrInvalidEmail
		}
		if email != user.Email {
			taken, err := s.userRepo.ExistsByEmail(email)
			if err != nil {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			if taken {
				return nil, ErrEmailTaken
			}
		}
		user.Email = email
	}

	if req.FirstName.Present {
		firstName, _ := req.FirstName.Get()
		user.FirstName = firstName
	}

	if req.LastName.Present {
		lastName, _ := req.LastName.Get()
		user.LastName = lastName
	}

	if req.Password.Present {
		password, ok := req.Password.Get()
		if !ok || len(password) < constants.MinPasswordLength {
			return nil, ErrPasswordTooShort
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrFailedToHashPassword
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete removes a user unless any task still references them as assignee.
func (s *UserService) Delete(id uint64) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	assigned, err := s.taskRepo.ExistsByAssigneeID(id)
	if err != nil {
		return fmt.Errorf("failed to check task references: %w", err)
	}
	if assigned {
		return ErrUserHasTasks
	}

	return s.userRepo.Delete(id)
}

// Get retrieves a user by ID.
func (s *UserService) Get(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// List returns all users.
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.FindAll()
}

// normalizeEmail trims surrounding whitespace so lookups and uniqueness
// checks compare the stored form.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
