package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Jitwisut/Backend-money-tracker/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(username, password, name string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories(userID uint) ([]models.Category, error)
	GetCategoryByID(userID, categoryID uint) (*models.Category, error)
	FindOrCreate(tx *gorm.DB, userID uint, name string, categoryType models.CategoryType) (*models.Category, error)
}

// TransactionUpdateFields holds the optional fields of a partial transaction
// update. Nil fields are left unchanged.
type TransactionUpdateFields struct {
	Title      *string
	Amount     *decimal.Decimal
	Type       *models.TransactionType
	Date       *time.Time
	Note       *string
	CategoryID *uint
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID uint, title string, amount decimal.Decimal, transactionType models.TransactionType, categoryName string, date time.Time, note string) (*models.Transaction, error)
	GetUserTransactions(userID uint, filter TransactionFilter) ([]models.Transaction, error)
	UpdateTransaction(userID, transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) error
}

// Summary holds the aggregate totals for a dashboard request.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
}

// PieSlice is one entry of the per-category breakdown, ranked by total.
type PieSlice struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Color    string          `json:"color"`
}

// DashboardData is the reporting engine's result.
type DashboardData struct {
	Summary      Summary    `json:"summary"`
	PieChartData []PieSlice `json:"pieChartData"`
}

// DashboardServicer defines the contract for the reporting engine.
type DashboardServicer interface {
	Summarize(userID uint, filter TransactionFilter) (*DashboardData, error)
}
