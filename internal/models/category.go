package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "INCOME"
	CategoryTypeExpense CategoryType = "EXPENSE"
)

// Default display metadata for categories created implicitly during
// transaction creation.
const (
	DefaultCategoryIcon  = "❓"
	DefaultCategoryColor = "#cccccc"
)

// Category represents a transaction category. The (name, user_id) pair is
// unique: a user cannot own two categories with the same name.
type Category struct {
	Base
	UserID uint         `gorm:"not null;uniqueIndex:idx_categories_name_user" json:"userId"`
	Name   string       `gorm:"not null;uniqueIndex:idx_categories_name_user" json:"name"`
	Type   CategoryType `gorm:"not null" json:"type"`
	Icon   string       `json:"icon"`
	Color  string       `json:"color"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}
