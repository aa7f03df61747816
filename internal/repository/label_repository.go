package repository

import (
	"taskmanager/internal/models"
	"gorm.io/gorm"
)

// GormLabelRepository is a GORM implementation of LabelRepository
type GormLabelRepository struct {
	db *gorm.DB
}

// NewLabelRepository creates a new LabelRepository
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &GormLabelRepository{db: db}
}

// Create creates a new label
func (r *GormLabelRepository) Create(label *models.Label) error {
	return r.db.Create(label).Error
}

// FindAll returns all labels
func (r *GormLabelRepository) FindAll() ([]models.Label, error) {
	var labels []models.Label
	if err := r.db.Order("id").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

// FindByID finds a label by ID
func (r *GormLabelRepository) FindByID(id uint64) (*models.Label, error) {
	var label models.Label
	if err := r.db.First(&label, id).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// FindAllByIDs returns the labels whose ids are in the given set
func (r *GormLabelRepository) FindAllByIDs(ids []uint64) ([]models.Label, error) {
	if len(ids) == 0 {
		return []models.Label{}, nil
	}
	var labels []models.Label
	if err := r.db.Where("id IN ?", ids).Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

// ExistsByName reports whether a label with the given name exists
func (r *GormLabelRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Label{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// Update persists changes to a label
func (r *GormLabelRepository) Update(label *models.Label) error {
	return r.db.Save(label).Error
}

// Delete removes a label
func (r *GormLabelRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Label{}, id).Error
}
