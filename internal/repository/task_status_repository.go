package repository

import (
	"taskmanager/internal/models"
	"gorm.io/gorm"
)

// GormTaskStatusRepository is a GORM implementation of TaskStatusRepository
type GormTaskStatusRepository struct {
	db *gorm.DB
}

// NewTaskStatusRepository creates a new TaskStatusRepository
func NewTaskStatusRepository(db *gorm.DB) TaskStatusRepository {
	return &GormTaskStatusRepository{db: db}
}

// Create creates a new task status
func (r *GormTaskStatusRepository) Create(status *models.TaskStatus) error {
	return r.db.Create(status).Error
}

// FindAll returns all task statuses
func (r *GormTaskStatusRepository) FindAll() ([]models.TaskStatus, error) {
	var statuses []models.TaskStatus
	if err := r.db.Order("id").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// FindByID finds a task status by ID
func (r *GormTaskStatusRepository) FindByID(id uint64) (*models.TaskStatus, error) {
	var status models.TaskStatus
	if err := r.db.First(&status, id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// FindBySlug finds a task status by its slug
func (r *GormTaskStatusRepository) FindBySlug(slug string) (*models.TaskStatus, error) {
	var status models.TaskStatus
	if err := r.db.Where("slug = ?", slug).First(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// ExistsByName reports whether a status with the given name exists
func (r *GormTaskStatusRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.TaskStatus{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// ExistsBySlug reports whether a status with the given slug exists
func (r *GormTaskStatusRepository) ExistsBySlug(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.TaskStatus{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Update persists changes to a task status
func (r *GormTaskStatusRepository) Update(status *models.TaskStatus) error {
	return r.db.Save(status).Error
}

// Delete removes a task status
func (r *GormTaskStatusRepository) Delete(id uint64) error {
	return r.db.Delete(&models.TaskStatus{}, id).Error
}
