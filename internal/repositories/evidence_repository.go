package repositories

import (
	"github.com/wizard-2006/CrimeLogix/internal/models"
	"gorm.io/gorm"
)

// EvidenceRepository defines the data access surface for evidence entries.
type EvidenceRepository interface {
	WithTx(tx *gorm.DB) EvidenceRepository
	Create(evidence *models.Evidence) (*models.Evidence, error)
	FindByID(id int64) (*models.Evidence, error)
	FindAll() ([]models.Evidence, error)
	Save(evidence *models.Evidence) error
	DeleteByID(id int64) error
}

type gormEvidenceRepository struct {
	db *gorm.DB
}

// NewGormEvidenceRepository creates a new gormEvidenceRepository instance.
func NewGormEvidenceRepository(db *gorm.DB) EvidenceRepository {
	return &gormEvidenceRepository{db: db}
}

func (r *gormEvidenceRepository) WithTx(tx *gorm.DB) EvidenceRepository {
	return &gormEvidenceRepository{db: tx}
}

func (r *gormEvidenceRepository) Create(evidence *models.Evidence) (*models.Evidence, error) {
	if err := r.db.Create(evidence).Error; err != nil {
		return nil, err
	}
	return evidence, nil
}

func (r *gormEvidenceRepository) FindByID(id int64) (*models.Evidence, error) {
	var evidence models.Evidence
	if err := r.db.First(&evidence, "evidence_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &evidence, nil
}

func (r *gormEvidenceRepository) FindAll() ([]models.Evidence, error) {
	var entries []models.Evidence
	if err := r.db.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *gormEvidenceRepository) Save(evidence *models.Evidence) error {
	return r.db.Save(evidence).Error
}

func (r *gormEvidenceRepository) DeleteByID(id int64) error {
	return r.db.Delete(&models.Evidence{}, "evidence_id = ?", id).Error
}
