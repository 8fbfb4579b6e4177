package repositories

import (
	"github.com/wizard-2006/CrimeLogix/internal/models"
	"gorm.io/gorm"
)

// SuspectRepository defines the data access surface for suspects.
type SuspectRepository interface {
	WithTx(tx *gorm.DB) SuspectRepository
	Create(suspect *models.Suspect) (*models.Suspect, error)
	FindByID(id int64) (*models.Suspect, error)
	FindAll() ([]models.Suspect, error)
	Save(suspect *models.Suspect) error
	DeleteByID(id int64) error
}

type gormSuspectRepository struct {
	db *gorm.DB
}

// NewGormSuspectRepository creates a new gormSuspectRepository instance.
func NewGormSuspectRepository(db *gorm.DB) SuspectRepository {
	return &gormSuspectRepository{db: db}
}

func (r *gormSuspectRepository) WithTx(tx *gorm.DB) SuspectRepository {
	return &gormSuspectRepository{db: tx}
}

func (r *gormSuspectRepository) Create(suspect *models.Suspect) (*models.Suspect, error) {
	if err := r.db.Create(suspect).Error; err != nil {
		return nil, err
	}
	return suspect, nil
}

func (r *gormSuspectRepository) FindByID(id int64) (*models.Suspect, error) {
	var suspect models.Suspect
	if err := r.db.First(&suspect, "suspect_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &suspect, nil
}

func (r *gormSuspectRepository) FindAll() ([]models.Suspect, error) {
	var suspects []models.Suspect
	if err := r.db.Find(&suspects).Error; err != nil {
		return nil, err
	}
	return suspects, nil
}

func (r *gormSuspectRepository) Save(suspect *models.Suspect) error {
	return r.db.Save(suspect).Error
}

func (r *gormSuspectRepository) DeleteByID(id int64) error {
	return r.db.Delete(&models.Suspect{}, "suspect_id = ?", id).Error
}
