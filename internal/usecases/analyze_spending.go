package usecases

import (
	"context"
	"math"
	"sort"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/financialpeak/goalcoach/internal/domain"
	"github.com/financialpeak/goalcoach/internal/telemetry"
)

// Analyzer thresholds. Empirical values carried over from the original
// analyzer, kept as named constants.
const (
	// TopCategoryLimit caps how many categories appear in TopCategories.
	TopCategoryLimit = 5
	// OpportunityCandidateLimit is how many of the top categories are
	// examined for savings opportunities.
	OpportunityCandidateLimit = 3
	// OpportunityShareThreshold is the share of total spending a category
	// must exceed to be flagged as a savings opportunity.
	OpportunityShareThreshold = 0.15
	// OpportunitySavingsRate is the assumed achievable reduction for a
	// flagged category.
	OpportunitySavingsRate = 0.2
)

// AnalyzeSpending is the use case interface for computing a spending profile
// from a transaction history.
type AnalyzeSpending interface {
	Execute(ctx context.Context, transactions []domain.Transaction) domain.SpendingProfile
}

// AnalyzeSpendingImpl is the implementation of the AnalyzeSpending use case.
// It is a pure computation over its input; the transaction list is treated
// as read-only and the profile is rebuilt on every call.
type AnalyzeSpendingImpl struct{}

// NewAnalyzeSpendingImpl creates a new instance of AnalyzeSpendingImpl.
func NewAnalyzeSpendingImpl() AnalyzeSpendingImpl {
	return AnalyzeSpendingImpl{}
}

// Execute aggregates expenses by category and derives savings opportunities.
// Only expenses (negative amounts) count toward spending; amounts are summed
// as absolute values. An empty history yields an all-zero profile.
func (as AnalyzeSpendingImpl) Execute(ctx context.Context, transactions []domain.Transaction) domain.SpendingProfile {
	_, span := telemetry.Start(ctx)
	defer span.End()

	byCategory := make(map[string]float64)
	var categoryOrder []string
	var total float64

	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		amount := math.Abs(tx.Amount)
		if _, seen := byCategory[tx.Category]; !seen {
			categoryOrder = append(categoryOrder, tx.Category)
		}
		byCategory[tx.Category] += amount
		total += amount
	}

	// Stable sort on first-encounter order: ties keep the category that
	// appeared first in the history.
	sorted := make([]string, len(categoryOrder))
	copy(sorted, categoryOrder)
	sort.SliceStable(sorted, func(i, j int) bool {
		return byCategory[sorted[i]] > byCategory[sorted[j]]
	})

	top := sorted
	if len(top) > TopCategoryLimit {
		top = top[:TopCategoryLimit]
	}

	var opportunities []domain.SavingsOpportunity
	candidates := sorted
	if len(candidates) > OpportunityCandidateLimit {
		candidates = candidates[:OpportunityCandidateLimit]
	}
	for _, category := range candidates {
		spending := byCategory[category]
		if spending <= total*OpportunityShareThreshold {
			continue
		}
		opportunities = append(opportunities, domain.SavingsOpportunity{
			Category:         category,
			CurrentSpending:  spending,
			PotentialSavings: spending * OpportunitySavingsRate,
		})
	}

	var average float64
	if len(transactions) > 0 {
		average = total / float64(len(transactions))
	}

	return domain.SpendingProfile{
		TotalMonthlySpending: total,
		SpendingByCategory:   byCategory,
		TopCategories:        top,
		SavingsOpportunities: opportunities,
		AverageTransaction:   average,
	}
}

// InitAnalyzeSpending initializes the AnalyzeSpending use case.
type InitAnalyzeSpending struct{}

// Initialize registers the AnalyzeSpending use case implementation.
func (ias InitAnalyzeSpending) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AnalyzeSpending](NewAnalyzeSpendingImpl())
	return ctx, nil
}
