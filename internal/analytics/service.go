// Package analytics derives dashboard figures from a user's stored
// transactions. It owns no tables of its own.
package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cognitax/cognitax/internal/tax"
	"github.com/cognitax/cognitax/internal/transaction"
)

// Summary is the full dashboard payload: cash-flow totals, per-category
// and per-mode amount breakdowns, and the most recent tax estimate.
type Summary struct {
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetCashFlow       decimal.Decimal
	TransactionsCount int
	CategoryBreakdown map[string]decimal.Decimal
	ModeBreakdown     map[string]decimal.Decimal
	LatestTax         *tax.Calculation
}

type Service struct {
	transactions *transaction.Service
	taxes        *tax.Service
}

func NewService(transactions *transaction.Service, taxes *tax.Service) *Service {
	return &Service{transactions: transactions, taxes: taxes}
}

// Summarize recomputes the dashboard from the user's full history.
// Breakdowns sum absolute amounts regardless of direction, so a category
// with only debits still shows its volume.
func (s *Service) Summarize(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	txs, err := s.transactions.List(ctx, userID, transaction.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}

	summary := &Summary{
		TransactionsCount: len(txs),
		CategoryBreakdown: make(map[string]decimal.Decimal),
		ModeBreakdown:     make(map[string]decimal.Decimal),
	}

	for _, tx := range txs {
		switch tx.Type {
		case transaction.TypeCredit:
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
		case transaction.TypeDebit:
			summary.TotalExpenses = summary.TotalExpenses.Add(tx.Amount)
		}

		summary.CategoryBreakdown[tx.Category] = summary.CategoryBreakdown[tx.Category].Add(tx.Amount)
		summary.ModeBreakdown[tx.Mode] = summary.ModeBreakdown[tx.Mode].Add(tx.Amount)
	}

	summary.NetCashFlow = summary.TotalIncome.Sub(summary.TotalExpenses)

	latest, err := s.taxes.Latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading latest tax calculation: %w", err)
	}
	summary.LatestTax = latest

	return summary, nil
}
