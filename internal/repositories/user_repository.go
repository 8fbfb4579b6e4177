package repositories

import (
	"errors"
	"strings"

	"github.com/wizard-2006/CrimeLogix/internal/models"
	"gorm.io/gorm"
)

// ErrEmailExists is returned when a user with the same email already exists.
var ErrEmailExists = errors.New("a user with this email already exists")

// UserRepository defines the data access surface for users.
type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	Create(user *models.User) (*models.User, error)
	FindByID(id int64) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Save(user *models.User) error
}

type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new gormUserRepository instance.
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) WithTx(tx *gorm.DB) UserRepository {
	return &gormUserRepository{db: tx}
}

func (r *gormUserRepository) Create(user *models.User) (*models.User, error) {
	if err := r.db.Create(user).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique constraint") {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

func (r *gormUserRepository) FindByID(id int64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}
