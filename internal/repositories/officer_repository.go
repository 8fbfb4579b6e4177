package repositories

import (
	"errors"
	"strings"

	"github.com/wizard-2006/CrimeLogix/internal/models"
	"gorm.io/gorm"
)

// ErrBadgeExists is returned when an officer with the same badge already exists.
var ErrBadgeExists = errors.New("an officer with this badge already exists")

// OfficerRepository defines the data access surface for officers.
type OfficerRepository interface {
	WithTx(tx *gorm.DB) OfficerRepository
	Create(officer *models.Officer) (*models.Officer, error)
	FindByID(id int64) (*models.Officer, error)
	FindAll() ([]models.Officer, error)
	Save(officer *models.Officer) error
	DeleteByID(id int64) error
}

type gormOfficerRepository struct {
	db *gorm.DB
}

// NewGormOfficerRepository creates a new gormOfficerRepository instance.
func NewGormOfficerRepository(db *gorm.DB) OfficerRepository {
	return &gormOfficerRepository{db: db}
}

func (r *gormOfficerRepository) WithTx(tx *gorm.DB) OfficerRepository {
	return &gormOfficerRepository{db: tx}
}

func (r *gormOfficerRepository) Create(officer *models.Officer) (*models.Officer, error) {
	if err := r.db.Create(officer).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique constraint") {
			return nil, ErrBadgeExists
		}
		return nil, err
	}
	return officer, nil
}

func (r *gormOfficerRepository) FindByID(id int64) (*models.Officer, error) {
	var officer models.Officer
	if err := r.db.First(&officer, "officer_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &officer, nil
}

func (r *gormOfficerRepository) FindAll() ([]models.Officer, error) {
	var officers []models.Officer
	if err := r.db.Find(&officers).Error; err != nil {
		return nil, err
	}
	return officers, nil
}

func (r *gormOfficerRepository) Save(officer *models.Officer) error {
	return r.db.Save(officer).Error
}

func (r *gormOfficerRepository) DeleteByID(id int64) error {
	return r.db.Delete(&models.Officer{}, "officer_id = ?", id).Error
}
