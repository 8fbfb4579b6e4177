package repositories

import (
	"github.com/wizard-2006/CrimeLogix/internal/models"
	"gorm.io/gorm"
)

// ErrRecordNotFound is returned when a queried row does not exist.
var ErrRecordNotFound = gorm.ErrRecordNotFound

// CaseRepository defines the data access surface for cases.
type CaseRepository interface {
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) CaseRepository
	Create(kase *models.Case) (*models.Case, error)
	FindByID(id int64) (*models.Case, error)
	FindAll() ([]models.Case, error)
	Save(kase *models.Case) error
	DeleteByID(id int64) error
}

// gormCaseRepository is the GORM implementation of CaseRepository.
type gormCaseRepository struct {
	db *gorm.DB
}

// NewGormCaseRepository creates a new gormCaseRepository instance.
func NewGormCaseRepository(db *gorm.DB) CaseRepository {
	return &gormCaseRepository{db: db}
}

func (r *gormCaseRepository) WithTx(tx *gorm.DB) CaseRepository {
	return &gormCaseRepository{db: tx}
}

func (r *gormCaseRepository) Create(kase *models.Case) (*models.Case, error) {
	if err := r.db.Create(kase).Error; err != nil {
		return nil, err
	}
	return kase, nil
}

func (r *gormCaseRepository) FindByID(id int64) (*models.Case, error) {
	var kase models.Case
	if err := r.db.First(&kase, "case_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &kase, nil
}

func (r *gormCaseRepository) FindAll() ([]models.Case, error) {
	var cases []models.Case
	if err := r.db.Find(&cases).Error; err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *gormCaseRepository) Save(kase *models.Case) error {
	return r.db.Save(kase).Error
}

func (r *gormCaseRepository) DeleteByID(id int64) error {
	return r.db.Delete(&models.Case{}, "case_id = ?", id).Error
}
