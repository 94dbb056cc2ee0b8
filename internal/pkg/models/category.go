package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts travel as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCategoryColor is used when a category is created without a color
const DefaultCategoryColor = "#4F46E5"

// Category represents a named slice of a user's salary
type Category struct {
	ID             int64           `json:"id" db:"id"`
	UserID         int64           `json:"user_id" db:"user_id"`
	Name           string          `json:"name" db:"name"`
	Percentage     decimal.Decimal `json:"percentage" db:"percentage"`
	FixedAmount    decimal.Decimal `json:"fixed_amount" db:"fixed_amount"`
	CurrentBalance decimal.Decimal `json:"current_balance" db:"current_balance"`
	Color          string          `json:"color" db:"color"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// CategoryNameKey is the form category names are compared in. Uniqueness
// per user is enforced on it, so "Épargne" and "éPARGNE" collide.
func CategoryNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// RuleKind names how a category's balance is derived from the salary
type RuleKind string

const (
	RulePercentage RuleKind = "percentage"
	RuleFixed      RuleKind = "fixed"
	RuleNone       RuleKind = "none"
)

// AllocationRule is the effective allocation of a category
type AllocationRule struct {
	Kind  RuleKind
	Value decimal.Decimal
}

// Rule returns the effective allocation rule. A positive percentage wins
// over a fixed amount for rows that carry both.
func (c *Category) Rule() AllocationRule {
	if c.Percentage.IsPositive() {
		return AllocationRule{Kind: RulePercentage, Value: c.Percentage}
	}
	if c.FixedAmount.IsPositive() {
		return AllocationRule{Kind: RuleFixed, Value: c.FixedAmount}
	}
	return AllocationRule{Kind: RuleNone, Value: decimal.Zero}
}

// Entitlement returns the balance the rule grants for salary
func (r AllocationRule) Entitlement(salary decimal.Decimal) decimal.Decimal {
	switch r.Kind {
	case RulePercentage:
		return salary.Mul(r.Value).Div(decimal.NewFromInt(100))
	case RuleFixed:
		return r.Value
	default:
		return decimal.Zero
	}
}

// CategoryRequest represents a create or update payload
type CategoryRequest struct {
	Name        string          `json:"name"`
	Percentage  decimal.Decimal `json:"percentage"`
	FixedAmount decimal.Decimal `json:"fixed_amount"`
	Color       string          `json:"color"`
}

// BulkCategoryRequest represents a batch create payload
type BulkCategoryRequest struct {
	Categories []CategoryRequest `json:"categories"`
}

// BalancesRecalculatedEvent is published after a user's balances are reset
// from their salary
type BalancesRecalculatedEvent struct {
	UserID     int64           `json:"user_id"`
	Salary     decimal.Decimal `json:"salary"`
	Categories int             `json:"categories"`
	OccurredAt time.Time       `json:"occurred_at"`
}
