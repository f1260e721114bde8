// Package specifications builds the dynamic query predicates used by the
// product catalogue.
package specifications

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductFilter is the optional, partially-populated filter over products.
// Blank strings and zero-valued numerics mean "no constraint": a caller
// supplying minPrice=0 intends no lower bound, since every price already
// satisfies it.
type ProductFilter struct {
	Name       string
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
	MinStock   int
	CategoryID uuid.UUID
}

// Condition is one conjunct of a filter predicate: Column Op Value.
// Conditions are always ANDed; there is no OR support.
type Condition struct {
	Column string
	Op     string
	Value  interface{}
}

// Operators understood by Apply.
const (
	OpEq       = "="
	OpGte      = ">="
	OpLte      = "<="
	OpContains = "contains" // case-insensitive substring match
)

// FilterBy translates a filter into its ordered conjunct list. The first
// conjunct is always active = true, so an all-absent filter degenerates to
// "list all active products". Never fails.
func FilterBy(filter ProductFilter) []Condition {
	conditions := []Condition{
		{Column: "active", Op: OpEq, Value: true},
	}

	if name := strings.TrimSpace(filter.Name); name != "" {
		conditions = append(conditions, Condition{Column: "name", Op: OpContains, Value: name})
	}

	if filter.MinPrice.IsPositive() {
		conditions = append(conditions, Condition{Column: "price", Op: OpGte, Value: filter.MinPrice})
	}

	if filter.MaxPrice.IsPositive() {
		conditions = append(conditions, Condition{Column: "price", Op: OpLte, Value: filter.MaxPrice})
	}

	if filter.MinStock > 0 {
		conditions = append(conditions, Condition{Column: "stock", Op: OpGte, Value: filter.MinStock})
	}

	if filter.CategoryID != uuid.Nil {
		conditions = append(conditions, Condition{Column: "category_id", Op: OpEq, Value: filter.CategoryID})
	}

	return conditions
}

// Apply translates a condition list into GORM clauses. This is the only place
// the abstract (column, op, value) triples meet the store's query language.
func Apply(query *gorm.DB, conditions []Condition) *gorm.DB {
	for _, c := range conditions {
		switch c.Op {
		case OpContains:
			pattern := "%" + strings.ToLower(c.Value.(string)) + "%"
			query = query.Where("lower("+c.Column+") LIKE ?", pattern)
		case OpGte:
			query = query.Where(c.Column+" >= ?", c.Value)
		case OpLte:
			query = query.Where(c.Column+" <= ?", c.Value)
		default:
			query = query.Where(c.Column+" = ?", c.Value)
		}
	}
	return query
}
