package repositories

import (
	"github.com/wizard-2006/CrimeLogix/internal/models"
	"gorm.io/gorm"
)

// VictimRepository defines the data access surface for victims.
type VictimRepository interface {
	WithTx(tx *gorm.DB) VictimRepository
	Create(victim *models.Victim) (*models.Victim, error)
	FindByID(id int64) (*models.Victim, error)
	FindAll() ([]models.Victim, error)
	Save(victim *models.Victim) error
	DeleteByID(id int64) error
}

type gormVictimRepository struct {
	db *gorm.DB
}

// NewGormVictimRepository creates a new gormVictimRepository instance.
func NewGormVictimRepository(db *gorm.DB) VictimRepository {
	return &gormVictimRepository{db: db}
}

func (r *gormVictimRepository) WithTx(tx *gorm.DB) VictimRepository {
	return &gormVictimRepository{db: tx}
}

func (r *gormVictimRepository) Create(victim *models.Victim) (*models.Victim, error) {
	if err := r.db.Create(victim).Error; err != nil {
		return nil, err
	}
	return victim, nil
}

func (r *gormVictimRepository) FindByID(id int64) (*models.Victim, error) {
	var victim models.Victim
	if err := r.db.First(&victim, "victim_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &victim, nil
}

func (r *gormVictimRepository) FindAll() ([]models.Victim, error) {
	var victims []models.Victim
	if err := r.db.Find(&victims).Error; err != nil {
		return nil, err
	}
	return victims, nil
}

func (r *gormVictimRepository) Save(victim *models.Victim) error {
	return r.db.Save(victim).Error
}

func (r *gormVictimRepository) DeleteByID(id int64) error {
	return r.db.Delete(&models.Victim{}, "victim_id = ?", id).Error
}
