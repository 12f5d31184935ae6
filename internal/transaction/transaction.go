package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a transaction does not exist or belongs to
// another user.
var ErrNotFound = errors.New("transaction not found")

// Type tells whether money moved into (credit) or out of (debit) the
// account. It determines the sign of the amount in every aggregate.
type Type string

const (
	TypeCredit Type = "credit"
	TypeDebit  Type = "debit"
)

// Transaction is one parsed and classified bank-statement entry. Amounts
// are always non-negative; Type carries the direction.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	UploadID    uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        Type
	Category    string
	Mode        string
	CreatedAt   time.Time
}
