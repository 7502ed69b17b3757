package domain

import "time"

// Transaction is a single entry from the caller-supplied transaction history.
// Negative amounts are expenses, positive amounts are income.
type Transaction struct {
	ID       string
	Amount   float64
	Category string
	Date     time.Time
	Merchant string
}

// IsExpense returns true when the transaction represents money spent.
func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}

// SavingsOpportunity flags a category whose share of total spending makes it
// a candidate for behavioral reduction.
type SavingsOpportunity struct {
	Category         string
	CurrentSpending  float64
	PotentialSavings float64
}

// SpendingProfile is the aggregate output of the spending analyzer.
// It is recomputed fresh on every call and never mutated in place.
type SpendingProfile struct {
	TotalMonthlySpending float64
	SpendingByCategory   map[string]float64
	TopCategories        []string
	SavingsOpportunities []SavingsOpportunity
	AverageTransaction   float64
}

// TopCategory returns the highest-spend category, or fallback when the
// profile has no expenses.
func (p SpendingProfile) TopCategory(fallback string) string {
	if len(p.TopCategories) == 0 {
		return fallback
	}
	return p.TopCategories[0]
}

// TopOpportunity returns the largest savings opportunity, if any.
func (p SpendingProfile) TopOpportunity() (SavingsOpportunity, bool) {
	if len(p.SavingsOpportunities) == 0 {
		return SavingsOpportunity{}, false
	}
	return p.SavingsOpportunities[0], true
}
