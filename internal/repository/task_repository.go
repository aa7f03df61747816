package repository

import (
	"strings"

	"taskmanager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task together with its label references
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task with its status and labels loaded
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.
		Preload("TaskStatus").
		Preload("Labels").
		First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks matching the filter. Absent criteria match
// everything; set criteria are combined with AND.
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	query := r.db.Model(&models.Task{})

	if filter.TitleCont != nil && strings.TrimSpace(*filter.TitleCont) != "" {
		pattern := "%" + strings.ToLower(*filter.TitleCont) + "%"
		query = query.Where("LOWER(tasks.title) LIKE ?", pattern)
	}
	if filter.AssigneeID != nil {
		query = query.Where("tasks.assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Status != nil && strings.TrimSpace(*filter.Status) != "" {
		query = query.
			Joins("JOIN task_statuses ON task_statuses.id = tasks.task_status_id").
			Where("task_statuses.slug = ?", *filter.Status)
	}
	if len(filter.LabelIDs) > 0 {
		labelSubQuery := r.db.Table("task_labels").
			Select("1").
			Where("task_labels.task_id = tasks.id").
			Where("task_labels.label_id IN ?", filter.LabelIDs)
		query = query.Where("EXISTS (?)", labelSubQuery)
	}

	var tasks []models.Task
	if err := query.
		Order("tasks.id").
		Preload("TaskStatus").
		Preload("Labels").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update persists changes to a task's own columns. Label references are
// managed through ReplaceLabels.
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Omit(clause.Associations).Save(task).Error
}

// ReplaceLabels replaces the task's label set
func (r *GormTaskRepository) ReplaceLabels(task *models.Task, labels []models.Label) error {
	if err := r.db.Model(task).Association("Labels").Replace(labels); err != nil {
		return err
	}
	task.Labels = labels
	return nil
}

// Delete removes a task and its label references
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_labels WHERE task_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Task{}, id).Error
	})
}

// ExistsByAssigneeID reports whether any task is assigned to the user
func (r *GormTaskRepository) ExistsByAssigneeID(userID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("assignee_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// ExistsByTaskStatusID reports whether any task references the status
func (r *GormTaskRepository) ExistsByTaskStatusID(statusID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("task_status_id = ?", statusID).Count(&count).Error
	return count > 0, err
}

// ExistsByLabelID reports whether any task references the label
func (r *GormTaskRepository) ExistsByLabelID(labelID uint64) (bool, error) {
	var count int64
	err := r.db.Table("task_labels").Where("label_id = ?", labelID).Count(&count).Error
	return count > 0, err
}
