package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/Jitwisut/Backend-money-tracker/internal/errors"
	"github.com/Jitwisut/Backend-money-tracker/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories retrieves all categories owned by the user, ordered by name.
func (s *categoryService) ListCategories(userID uint) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.
		Where("user_id = ?", userID).
		Order("name ASC").
		Select("id", "name", "type").
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID for a specific user
func (s *categoryService) GetCategoryByID(userID, categoryID uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// FindOrCreate resolves a category by (name, userID), creating it with
// placeholder display metadata when absent. A concurrent duplicate insert is
// detected via the (name, user_id) unique index and retried as a lookup.
func (s *categoryService) FindOrCreate(tx *gorm.DB, userID uint, name string, categoryType models.CategoryType) (*models.Category, error) {
	if tx == nil {
		tx = s.db
	}

	var category models.Category
	err := tx.Where("user_id = ? AND name = ?", userID, name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	category = models.Category{
		UserID: userID,
		Name:   name,
		Type:   categoryType,
		Icon:   models.DefaultCategoryIcon,
		Color:  models.DefaultCategoryColor,
	}

	// The insert runs in a nested transaction, which becomes a savepoint
	// when tx is already transactional. On Postgres a unique violation
	// aborts the current transaction, so without the savepoint the
	// recovery lookup below could not run inside the caller's transaction.
	err = tx.Transaction(func(txn *gorm.DB) error {
		return txn.Create(&category).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent creator; the row exists now.
			if lookupErr := tx.Where("user_id = ? AND name = ?", userID, name).First(&category).Error; lookupErr != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, lookupErr)
			}
			return &category, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &category, nil
}
