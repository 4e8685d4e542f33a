package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/Jitwisut/Backend-money-tracker/internal/errors"
	"github.com/Jitwisut/Backend-money-tracker/internal/logger"
	"github.com/Jitwisut/Backend-money-tracker/internal/models"
)

// Chart colors for the per-category breakdown.
const (
	incomeColor  = "#22c55e"
	expenseColor = "#ef4444"
)

// uncategorizedLabel is shown when a breakdown group's category id resolves
// to no known category.
const uncategorizedLabel = "Uncategorized"

// dashboardService is the reporting engine: aggregate totals and the
// per-category breakdown over the user's transactions.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// typeTotal is one row of the totals-by-type aggregation.
type typeTotal struct {
	Type  models.TransactionType
	Total decimal.Decimal
}

// categoryTotal is one row of the per-category aggregation. CategoryID is a
// pointer because transactions may carry no category.
type categoryTotal struct {
	CategoryID *uint
	Total      decimal.Decimal
}

// Summarize computes the dashboard data for a user: income and expense
// totals with their balance, and the per-category breakdown for the
// effective pie-chart type, ranked by summed amount. Store failures are
// logged and surface as a single generic dashboard error; partial results
// are never returned.
func (s *dashboardService) Summarize(userID uint, filter TransactionFilter) (*DashboardData, error) {
	totals, err := s.sumByType(userID, filter)
	if err != nil {
		logger.Get().Errorw("dashboard totals query failed", "user_id", userID, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrDashboardFetch, err)
	}

	income := totals[models.TransactionTypeIncome]
	expense := totals[models.TransactionTypeExpense]

	slices, err := s.breakdownByCategory(userID, filter)
	if err != nil {
		logger.Get().Errorw("dashboard breakdown query failed", "user_id", userID, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrDashboardFetch, err)
	}

	return &DashboardData{
		Summary: Summary{
			TotalIncome:  income,
			TotalExpense: expense,
			Balance:      income.Sub(expense),
		},
		PieChartData: slices,
	}, nil
}

// sumByType sums transaction amounts per type over the base predicate in a
// single grouped query. Types with no matching rows are absent from the map;
// the zero decimal covers them.
func (s *dashboardService) sumByType(userID uint, filter TransactionFilter) (map[models.TransactionType]decimal.Decimal, error) {
	var rows []typeTotal
	if err := s.db.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Scopes(filter.Scope()).
		Group("type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[models.TransactionType]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.Type] = row.Total
	}
	return totals, nil
}

// breakdownByCategory groups the matching transactions of the effective pie
// type by category, resolves category names in one IN query, and assembles
// the ranked, color-coded slices. Ordering ties break on category id so the
// result is stable for the same input.
func (s *dashboardService) breakdownByCategory(userID uint, filter TransactionFilter) ([]PieSlice, error) {
	var rows []categoryTotal
	if err := s.db.Model(&models.Transaction{}).
		Select("category_id, SUM(amount) AS total").
		Where("user_id = ? AND type = ?", userID, filter.PieType()).
		Scopes(filter.Scope()).
		Group("category_id").
		Order("total DESC, category_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	var ids []uint
	for _, row := range rows {
		if row.CategoryID != nil {
			ids = append(ids, *row.CategoryID)
		}
	}

	names := make(map[uint]models.Category, len(ids))
	if len(ids) > 0 {
		var categories []models.Category
		if err := s.db.
			Select("id", "name", "type").
			Where("id IN ? AND user_id = ?", ids, userID).
			Find(&categories).Error; err != nil {
			return nil, err
		}
		for _, c := range categories {
			names[c.ID] = c
		}
	}

	slices := make([]PieSlice, 0, len(rows))
	for _, row := range rows {
		slice := PieSlice{
			Category: uncategorizedLabel,
			Total:    row.Total,
			Color:    expenseColor,
		}
		if row.CategoryID != nil {
			if category, ok := names[*row.CategoryID]; ok {
				slice.Category = category.Name
				if category.Type == models.CategoryTypeIncome {
					slice.Color = incomeColor
				}
			}
		}
		slices = append(slices, slice)
	}
	return slices, nil
}
