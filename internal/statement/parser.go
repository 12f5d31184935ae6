package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// balanceTolerance absorbs rounding noise when checking that a candidate's
// amount reconciles the previous running balance with this line's.
var balanceTolerance = decimal.NewFromFloat(0.01)

// Parser turns extracted statement text into transaction candidates. It is
// stateless across calls: parsing the same lines twice yields the same
// ordered result.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse scans the lines for recognizable transaction layouts. Lines that
// match no layout are skipped; an input with no recognizable transactions
// yields an empty (not nil-error) statement.
func (p *Parser) Parse(lines []string) *Statement {
	stmt := &Statement{
		BankName: detectBank(lines),
		Period:   detectPeriod(lines),
	}

	var prevBalance *decimal.Decimal

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		date, rest, ok := leadingDate(line)
		if !ok {
			continue
		}

		for _, l := range layouts {
			readings := l.match(date, rest)
			if len(readings) == 0 {
				continue
			}

			c := pickReading(readings, prevBalance)
			stmt.Transactions = append(stmt.Transactions, c)

			if c.Balance != nil {
				prevBalance = c.Balance
			}

			break
		}
	}

	return stmt
}

// pickReading chooses between plausible readings of one line. When the
// previous running balance is known and a reading reconciles it with this
// line's balance (previous ± amount, within tolerance), that reading wins;
// otherwise the first one does.
func pickReading(readings []Candidate, prevBalance *decimal.Decimal) Candidate {
	if len(readings) == 1 || prevBalance == nil {
		return readings[0]
	}

	for _, r := range readings {
		if r.Balance == nil {
			continue
		}

		expected := prevBalance.Add(r.Amount)
		if r.Direction == DirectionDebit {
			expected = prevBalance.Sub(r.Amount)
		}

		if expected.Sub(*r.Balance).Abs().LessThanOrEqual(balanceTolerance) {
			return r
		}
	}

	return readings[0]
}

// knownBanks maps statement header markers to display names.
var knownBanks = []struct {
	marker string
	name   string
}{
	{"state bank of india", "State Bank of India"},
	{"sbi", "State Bank of India"},
	{"hdfc", "HDFC Bank"},
	{"icici", "ICICI Bank"},
	{"axis bank", "Axis Bank"},
	{"kotak", "Kotak Mahindra Bank"},
	{"punjab national", "Punjab National Bank"},
	{"bank of baroda", "Bank of Baroda"},
	{"canara bank", "Canara Bank"},
	{"union bank", "Union Bank of India"},
	{"yes bank", "Yes Bank"},
	{"idfc first", "IDFC First Bank"},
	{"indusind", "IndusInd Bank"},
}

func detectBank(lines []string) string {
	combined := strings.ToLower(strings.Join(lines, "\n"))

	for _, b := range knownBanks {
		if strings.Contains(combined, b.marker) {
			return b.name
		}
	}

	return ""
}

var periodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)statement\s+period\s*:?\s*(.+?)\s*$`),
	regexp.MustCompile(`(?i)\bfrom\s+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s+to\s+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(?i)\b((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\s*[-–]\s*(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})`),
}

func detectPeriod(lines []string) string {
	for _, line := range lines {
		for _, pat := range periodPatterns {
			m := pat.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			if len(m) == 3 {
				return m[1] + " - " + m[2]
			}

			return strings.TrimSpace(m[1])
		}
	}

	return ""
}
