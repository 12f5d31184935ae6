// Package tax computes estimated GST, ITR and TDS figures from a user's
// transaction history. The computation is deterministic: given the same
// transaction set and policy, it always produces the same figures, with no
// external calls.
package tax

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Calculation is one derived tax estimate. Later calculations supersede
// earlier ones; "latest" is by CreatedAt.
type Calculation struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	UploadID          uuid.UUID
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	EstimatedTurnover decimal.Decimal
	GSTAmount         decimal.Decimal
	ITRAmount         decimal.Decimal
	TDSAmount         decimal.Decimal
	OptimizationTips  []string
	CreatedAt         time.Time
}
