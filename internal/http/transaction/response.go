package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/cognitax/cognitax/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	UploadID    uuid.UUID        `json:"upload_id"`
	Date        time.Time        `json:"date"`
	Description string           `json:"description"`
	Amount      string           `json:"amount"`
	Type        transaction.Type `json:"type"`
	Category    string           `json:"category"`
	Mode        string           `json:"mode"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		UploadID:    tx.UploadID,
		Date:        tx.Date,
		Description: tx.Description,
		Amount:      tx.Amount.StringFixed(2),
		Type:        tx.Type,
		Category:    tx.Category,
		Mode:        tx.Mode,
		CreatedAt:   tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
