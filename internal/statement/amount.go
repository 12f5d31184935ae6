package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches monetary values as they appear in Indian bank
// statements: optional currency marker, comma-grouped digits (both western
// 1,234,567.89 and Indian 12,34,567.89 grouping), two-decimal fraction.
var amountPattern = regexp.MustCompile(`(?:₹|Rs\.?\s*|INR\s*)?-?[\d,]+\.\d{2}`)

// parseAmount converts a string like "1,23,456.78" or "₹500.00" to a decimal.
// The returned value keeps its sign; callers decide what a negative means.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.ReplaceAll(clean, "₹", "")
	clean = strings.ReplaceAll(clean, "INR", "")
	clean = strings.ReplaceAll(clean, "Rs.", "")
	clean = strings.ReplaceAll(clean, "Rs", "")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, " ", "")

	return decimal.NewFromString(clean)
}

// findAmounts returns all monetary values on a line, left to right.
func findAmounts(line string) []decimal.Decimal {
	matches := amountPattern.FindAllString(line, -1)

	amounts := make([]decimal.Decimal, 0, len(matches))

	for _, m := range matches {
		a, err := parseAmount(m)
		if err != nil {
			continue
		}

		amounts = append(amounts, a)
	}

	return amounts
}

// stripAmounts removes every monetary value from a line, leaving the
// description text.
func stripAmounts(line string) string {
	return strings.TrimSpace(amountPattern.ReplaceAllString(line, ""))
}
