package tax

import (
	"github.com/shopspring/decimal"

	"github.com/cognitax/cognitax/internal/transaction"
)

// Figures are the aggregates derived from one transaction set.
type Figures struct {
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	NetCashFlow       decimal.Decimal
	EstimatedTurnover decimal.Decimal
	GSTAmount         decimal.Decimal
	ITRAmount         decimal.Decimal
	TDSAmount         decimal.Decimal
}

// Compute derives the tax figures for a transaction set under the policy.
// Turnover is approximated as gross credits. Credits add to income, debits
// to expenses; amounts are stored non-negative so no sign handling is
// needed here.
func Compute(p Policy, txs []*transaction.Transaction) Figures {
	var income, expenses decimal.Decimal

	for _, tx := range txs {
		switch tx.Type {
		case transaction.TypeCredit:
			income = income.Add(tx.Amount)
		case transaction.TypeDebit:
			expenses = expenses.Add(tx.Amount)
		}
	}

	turnover := income

	f := Figures{
		TotalIncome:       income,
		TotalExpenses:     expenses,
		NetCashFlow:       income.Sub(expenses),
		EstimatedTurnover: turnover,
	}

	if turnover.GreaterThan(p.GSTThreshold) {
		f.GSTAmount = turnover.Mul(p.GSTRate)
	}

	taxable := turnover.Sub(expenses).Sub(p.ITRExemption)
	if taxable.IsPositive() {
		f.ITRAmount = taxable.Mul(p.ITRRate)
	}

	if turnover.GreaterThan(p.TDSThreshold) {
		f.TDSAmount = turnover.Mul(p.TDSRate)
	}

	return f
}
