package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// A layout recognizes one family of statement line formats. match returns
// every plausible reading of the line; a line with an explicit direction
// marker yields exactly one, an ambiguous line may yield two (debit and
// credit readings) for the parser to disambiguate against the running
// balance.
type layout struct {
	name  string
	match func(date time.Time, rest string) []Candidate
}

// layouts are tried in fixed priority order; the first layout that accepts
// the line wins (subject to balance-based tie-breaking between readings).
var layouts = []layout{
	{name: "withdrawal-deposit", match: matchWithdrawalDeposit},
	{name: "dr-cr-marker", match: matchMarker},
	{name: "single-amount", match: matchSingleAmount},
}

// amountMarkerPattern matches an amount annotated with its Dr/Cr marker.
// The marker must sit right after the amount it qualifies; a DEBIT or
// CREDIT word elsewhere on the line is narration, not a marker.
var amountMarkerPattern = regexp.MustCompile(`((?:₹|Rs\.?\s*|INR\s*)?-?[\d,]+\.\d{2})\s*(?i:(DR|CR|DEBIT|CREDIT))\b\.?`)

// matchWithdrawalDeposit handles the classic five-column layout where the
// withdrawal and deposit columns are both printed (the unused one as 0.00):
//
//	01/04/2024  UPI/SWIGGY/...  450.00  0.00  12,340.50
func matchWithdrawalDeposit(date time.Time, rest string) []Candidate {
	amounts := findAmounts(rest)
	if len(amounts) != 3 {
		return nil
	}

	withdrawal, deposit := amounts[0], amounts[1]
	balance := amounts[2]
	desc := stripAmounts(rest)

	if desc == "" {
		return nil
	}

	base := Candidate{
		Date:        date,
		Description: desc,
		Balance:     &balance,
	}

	switch {
	case withdrawal.IsPositive() && deposit.IsZero():
		base.Amount = withdrawal
		base.Direction = DirectionDebit

		return []Candidate{base}
	case deposit.IsPositive() && withdrawal.IsZero():
		base.Amount = deposit
		base.Direction = DirectionCredit

		return []Candidate{base}
	default:
		// Both columns populated reads as two plausible candidates; the
		// parser picks the one consistent with the running balance.
		debit := base
		debit.Amount = withdrawal
		debit.Direction = DirectionDebit

		credit := base
		credit.Amount = deposit
		credit.Direction = DirectionCredit

		return []Candidate{debit, credit}
	}
}

// matchMarker handles lines with an explicit Dr/Cr marker next to the
// amount, with or without a trailing balance:
//
//	01/04/2024  NEFT FROM ACME LTD  25,000.00 Cr  47,340.50
func matchMarker(date time.Time, rest string) []Candidate {
	loc := amountMarkerPattern.FindStringSubmatchIndex(rest)
	if loc == nil {
		return nil
	}

	amount, err := parseAmount(rest[loc[2]:loc[3]])
	if err != nil {
		return nil
	}

	dir := DirectionDebit
	if strings.HasPrefix(strings.ToUpper(rest[loc[4]:loc[5]]), "C") {
		dir = DirectionCredit
	}

	// Only the marked amount and its marker leave the description; any
	// single remaining amount is the running balance.
	remainder := rest[:loc[0]] + rest[loc[1]:]

	others := findAmounts(remainder)
	if len(others) > 1 {
		return nil
	}

	desc := stripAmounts(remainder)
	if desc == "" {
		return nil
	}

	c := Candidate{
		Date:        date,
		Description: desc,
		Amount:      amount.Abs(),
		Direction:   dir,
	}

	if len(others) == 1 {
		bal := others[0]
		c.Balance = &bal
	}

	return []Candidate{c}
}

// matchSingleAmount handles the minimal layout of one amount plus an
// optional running balance. A signed amount fixes the direction; an
// unsigned one is ambiguous and yields both readings, debit first.
//
//	01/04/2024  ATM WDL MUMBAI  -2,000.00  10,340.50
//	01/04/2024  SALARY APR      85,000.00
func matchSingleAmount(date time.Time, rest string) []Candidate {
	amounts := findAmounts(rest)
	if len(amounts) == 0 || len(amounts) > 2 {
		return nil
	}

	desc := stripAmounts(rest)
	if desc == "" {
		return nil
	}

	var balance *decimal.Decimal

	if len(amounts) == 2 {
		bal := amounts[1]
		balance = &bal
	}

	base := Candidate{
		Date:        date,
		Description: desc,
		Balance:     balance,
	}

	if amounts[0].IsNegative() {
		base.Amount = amounts[0].Neg()
		base.Direction = DirectionDebit

		return []Candidate{base}
	}

	debit := base
	debit.Amount = amounts[0]
	debit.Direction = DirectionDebit

	credit := base
	credit.Amount = amounts[0]
	credit.Direction = DirectionCredit

	// Narration keywords give the preferred reading when the balance can't
	// settle it.
	if looksLikeCredit(desc) {
		return []Candidate{credit, debit}
	}

	return []Candidate{debit, credit}
}

var creditNarrations = []string{
	"salary", "neft from", "imps from", "upi from", "credit from",
	"refund", "interest", "cashback", "received", "deposit",
}

func looksLikeCredit(desc string) bool {
	lower := strings.ToLower(desc)

	for _, kw := range creditNarrations {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	return false
}
