package tax

import "github.com/shopspring/decimal"

// Baseline tips are always present, in this order. Rule-triggered tips are
// appended based on the computed figures.
var baselineTips = []string{
	"Maintain proper GST invoices for all transactions",
	"Claim deductions under Section 80C",
	"Consider tax-saving investments",
	"Keep records of business expenses",
	"File returns on time to avoid penalties",
}

var (
	highExpenseRatio = decimal.NewFromFloat(0.8)
	lowExpenseRatio  = decimal.NewFromFloat(0.2)
)

// tipsFor returns the ordered optimization suggestions for the figures.
func tipsFor(p Policy, f Figures) []string {
	tips := make([]string, 0, len(baselineTips)+3)
	tips = append(tips, baselineTips...)

	if f.TotalIncome.IsPositive() {
		ratio := f.TotalExpenses.Div(f.TotalIncome)

		if ratio.GreaterThan(highExpenseRatio) {
			tips = append(tips, "Expenses exceed 80% of income; review recurring outflows and verify business-expense documentation")
		} else if ratio.LessThan(lowExpenseRatio) {
			tips = append(tips, "Low recorded expenses relative to income; ensure all deductible business expenses are captured")
		}
	}

	if f.EstimatedTurnover.GreaterThan(p.GSTThreshold) {
		tips = append(tips, "Turnover is above the GST registration threshold; ensure GST registration and timely GSTR filings")
	}

	if f.TDSAmount.IsPositive() {
		tips = append(tips, "TDS applies at this turnover; reconcile Form 26AS against deducted amounts")
	}

	return tips
}
