package statement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether money moved into or out of the account.
type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// Candidate is one transaction extracted from a statement line, before
// classification.
type Candidate struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Direction   Direction
	Balance     *decimal.Decimal // running balance, when the layout carries one
}

// Statement is the parsed view of one uploaded document.
type Statement struct {
	BankName     string
	Period       string
	Transactions []Candidate
}
