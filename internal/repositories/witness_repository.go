package repositories

import (
	"github.com/wizard-2006/CrimeLogix/internal/models"
	"gorm.io/gorm"
)

// WitnessRepository defines the data access surface for witnesses.
type WitnessRepository interface {
	WithTx(tx *gorm.DB) WitnessRepository
	Create(witness *models.Witness) (*models.Witness, error)
	FindByID(id int64) (*models.Witness, error)
	FindAll() ([]models.Witness, error)
	Save(witness *models.Witness) error
	DeleteByID(id int64) error
}

type gormWitnessRepository struct {
	db *gorm.DB
}

// NewGormWitnessRepository creates a new gormWitnessRepository instance.
func NewGormWitnessRepository(db *gorm.DB) WitnessRepository {
	return &gormWitnessRepository{db: db}
}

func (r *gormWitnessRepository) WithTx(tx *gorm.DB) WitnessRepository {
	return &gormWitnessRepository{db: tx}
}

func (r *gormWitnessRepository) Create(witness *models.Witness) (*models.Witness, error) {
	if err := r.db.Create(witness).Error; err != nil {
		return nil, err
	}
	return witness, nil
}

func (r *gormWitnessRepository) FindByID(id int64) (*models.Witness, error) {
	var witness models.Witness
	if err := r.db.First(&witness, "witness_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &witness, nil
}

func (r *gormWitnessRepository) FindAll() ([]models.Witness, error) {
	var witnesses []models.Witness
	if err := r.db.Find(&witnesses).Error; err != nil {
		return nil, err
	}
	return witnesses, nil
}

func (r *gormWitnessRepository) Save(witness *models.Witness) error {
	return r.db.Save(witness).Error
}

func (r *gormWitnessRepository) DeleteByID(id int64) error {
	return r.db.Delete(&models.Witness{}, "witness_id = ?", id).Error
}
