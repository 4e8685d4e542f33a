package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/Jitwisut/Backend-money-tracker/internal/errors"
	"github.com/Jitwisut/Backend-money-tracker/internal/models"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		categoryService: categoryService,
	}
}

// CreateTransaction records a new transaction, resolving the category by name
// and creating it for the user when it does not exist yet. Category creation
// and the transaction insert run in one database transaction.
func (s *transactionService) CreateTransaction(
	userID uint,
	title string,
	amount decimal.Decimal,
	transactionType models.TransactionType,
	categoryName string,
	date time.Time,
	note string,
) (*models.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !transactionType.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be INCOME or EXPENSE")
	}
	if categoryName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	if date.IsZero() {
		date = time.Now()
	}

	var result *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		category, err := s.categoryService.FindOrCreate(tx, userID, categoryName, models.CategoryType(transactionType))
		if err != nil {
			return err
		}

		transaction := &models.Transaction{
			UserID:     userID,
			CategoryID: &category.ID,
			Title:      title,
			Amount:     amount,
			Type:       transactionType,
			Date:       date,
			Note:       note,
		}

		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result = transaction
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetUserTransactions retrieves the user's transactions matching the filter,
// with the category preloaded, ordered by date descending and id descending
// as the tie-break.
func (s *transactionService) GetUserTransactions(userID uint, filter TransactionFilter) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.
		Where("user_id = ?", userID).
		Scopes(filter.Scope(), filter.TypeScope()).
		Preload("Category").
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// getTransactionByID retrieves a transaction scoped to its owner. Absent and
// not-owned rows are indistinguishable to the caller.
func (s *transactionService) getTransactionByID(userID, transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction applies a partial update to a transaction owned by the
// user. A caller-supplied category must belong to the same user.
func (s *transactionService) UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error) {
	transaction, err := s.getTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if fields.Amount != nil && fields.Amount.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if fields.Type != nil && !fields.Type.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be INCOME or EXPENSE")
	}

	updates := make(map[string]interface{})
	if fields.Title != nil {
		updates["title"] = *fields.Title
	}
	if fields.Amount != nil {
		updates["amount"] = *fields.Amount
	}
	if fields.Type != nil {
		updates["type"] = *fields.Type
	}
	if fields.Date != nil {
		updates["date"] = *fields.Date
	}
	if fields.Note != nil {
		updates["note"] = *fields.Note
	}
	if fields.CategoryID != nil {
		// Reject cross-user category linkage.
		if _, err := s.categoryService.GetCategoryByID(userID, *fields.CategoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = *fields.CategoryID
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return transaction, nil
}

// DeleteTransaction deletes a transaction owned by the user.
func (s *transactionService) DeleteTransaction(userID, transactionID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", transactionID, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
