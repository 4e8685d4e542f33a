package services

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Jitwisut/Backend-money-tracker/internal/models"
)

// bangkok is the fixed reporting timezone. Date-range bounds are interpreted
// as calendar days in this zone regardless of how the caller encoded them.
var bangkok = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}()

// TransactionFilter holds the validated filter criteria shared by the
// dashboard summary and the transaction listing. It is built once at the
// boundary via ParseTransactionFilter.
type TransactionFilter struct {
	FromDate    *time.Time
	ToDate      *time.Time
	Type        *models.TransactionType
	CategoryIDs []uint
}

// ParseTransactionFilter builds a TransactionFilter from raw query values.
//
// The date range applies only when both bounds parse; each bound is widened to
// its full Bangkok-local day (00:00:00 through 23:59:59.999). Malformed dates
// drop the date filter silently rather than failing the request.
//
// typeStr must be exactly INCOME or EXPENSE to take effect; anything else
// leaves the type unset.
//
// categoryIDs accepts a single id or a comma-separated list. The sentinels
// "", "ALL" and "undefined" mean no filter, and tokens that are not positive
// integers are discarded. An empty result after parsing means no filter.
func ParseTransactionFilter(startDate, endDate, typeStr, categoryIDs string) TransactionFilter {
	var filter TransactionFilter

	if startDate != "" && endDate != "" {
		from, fromErr := parseDay(startDate)
		to, toErr := parseDay(endDate)
		if fromErr == nil && toErr == nil {
			start := startOfDay(from)
			end := endOfDay(to)
			filter.FromDate = &start
			filter.ToDate = &end
		}
	}

	switch t := models.TransactionType(typeStr); t {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
		filter.Type = &t
	}

	filter.CategoryIDs = parseCategoryIDs(categoryIDs)

	return filter
}

// parseDay parses a date string as either a plain calendar date or an RFC3339
// timestamp, anchored to the Bangkok timezone.
func parseDay(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, bangkok); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(bangkok), nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.In(bangkok).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, bangkok)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.In(bangkok).Date()
	return time.Date(y, m, d, 23, 59, 59, 999_000_000, bangkok)
}

// parseCategoryIDs parses a comma-separated category id list, discarding
// non-numeric and non-positive tokens and deduplicating while preserving
// order. Returns nil when no filter should be applied.
func parseCategoryIDs(raw string) []uint {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "", "ALL", "undefined":
		return nil
	}

	var ids []uint
	seen := make(map[uint]bool)
	for _, token := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(token), 10, 32)
		if err != nil || id == 0 {
			continue
		}
		if !seen[uint(id)] {
			seen[uint(id)] = true
			ids = append(ids, uint(id))
		}
	}
	return ids
}

// Scope returns a GORM scope applying the base predicate: the normalized date
// range and the category id set. The type filter is applied separately since
// the dashboard summary aggregates income and expense regardless of it.
func (f TransactionFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if f.FromDate != nil && f.ToDate != nil {
			q = q.Where("date >= ? AND date <= ?", *f.FromDate, *f.ToDate)
		}
		switch len(f.CategoryIDs) {
		case 0:
		case 1:
			q = q.Where("category_id = ?", f.CategoryIDs[0])
		default:
			q = q.Where("category_id IN ?", f.CategoryIDs)
		}
		return q
	}
}

// TypeScope returns a GORM scope applying the type filter when set.
func (f TransactionFilter) TypeScope() func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if f.Type != nil {
			q = q.Where("type = ?", *f.Type)
		}
		return q
	}
}

// PieType returns the transaction type used for the per-category breakdown:
// the requested type when valid, otherwise EXPENSE.
func (f TransactionFilter) PieType() models.TransactionType {
	if f.Type != nil {
		return *f.Type
	}
	return models.TransactionTypeExpense
}
