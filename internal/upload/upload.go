package upload

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of one upload. Completed and failed are
// terminal; only the orchestrator advances the status.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Upload is one user-submitted bank-statement document and its processing
// lifecycle.
type Upload struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Filename        string
	FileSize        int64
	BankName        string // inferred, may stay empty
	StatementPeriod string
	Status          Status
	ErrorReason     string // set when Status is failed
	CreatedAt       time.Time
}
