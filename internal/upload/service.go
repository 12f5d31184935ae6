package upload

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cognitax/cognitax/internal/classifier"
	"github.com/cognitax/cognitax/internal/extractor"
	"github.com/cognitax/cognitax/internal/statement"
	"github.com/cognitax/cognitax/internal/tax"
	"github.com/cognitax/cognitax/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=upload
type Repository interface {
	CreateUpload(ctx context.Context, up *Upload) error
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, bankName, period string) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	ListUploads(ctx context.Context, userID uuid.UUID) ([]*Upload, error)
}

// Result is what the caller gets back for one processed document: a
// transaction count (possibly zero) and the terminal status.
type Result struct {
	UploadID          uuid.UUID
	Status            Status
	TransactionsCount int
	BankName          string
	StatementPeriod   string
	Tax               *tax.Calculation
}

// Service runs the ingestion pipeline for one uploaded document:
// extract -> parse -> classify per candidate -> persist transactions ->
// re-estimate tax over the user's full history.
type Service struct {
	repo         Repository
	parser       *statement.Parser
	classifier   *classifier.Classifier
	transactions *transaction.Service
	taxes        *tax.Service
}

func NewService(
	repo Repository,
	parser *statement.Parser,
	cls *classifier.Classifier,
	transactions *transaction.Service,
	taxes *tax.Service,
) *Service {
	return &Service{
		repo:         repo,
		parser:       parser,
		classifier:   cls,
		transactions: transactions,
		taxes:        taxes,
	}
}

// Process ingests one document synchronously. Extraction and persistence
// failures are fatal for the upload (status failed, reason stored);
// classification fallbacks and empty parses are not. An upload with zero
// recognizable transactions completes with a zero count.
func (s *Service) Process(ctx context.Context, userID uuid.UUID, filename string, data []byte) (*Result, error) {
	up := &Upload{
		UserID:   userID,
		Filename: filename,
		FileSize: int64(len(data)),
		Status:   StatusPending,
	}

	if err := s.repo.CreateUpload(ctx, up); err != nil {
		return nil, fmt.Errorf("creating upload record: %w", err)
	}

	if err := s.repo.MarkProcessing(ctx, up.ID); err != nil {
		return nil, fmt.Errorf("marking upload processing: %w", err)
	}

	lines, err := extractor.Extract(data)
	if err != nil {
		s.fail(ctx, up.ID, err.Error())
		return nil, err
	}

	stmt := s.parser.Parse(lines)

	txs := make([]*transaction.Transaction, 0, len(stmt.Transactions))

	for _, cand := range stmt.Transactions {
		res := s.classifier.Classify(ctx, cand.Description, cand.Amount, cand.Direction)

		txType := transaction.TypeDebit
		if cand.Direction == statement.DirectionCredit {
			txType = transaction.TypeCredit
		}

		txs = append(txs, &transaction.Transaction{
			UserID:      userID,
			UploadID:    up.ID,
			Date:        cand.Date,
			Description: cand.Description,
			Amount:      cand.Amount,
			Type:        txType,
			Category:    res.Category,
			Mode:        res.Mode,
		})
	}

	if err := s.transactions.CreateBatch(ctx, txs); err != nil {
		s.fail(ctx, up.ID, "failed to store transactions")
		return nil, fmt.Errorf("storing transactions: %w", err)
	}

	// Tax is re-estimated over the user's entire history, not just this
	// upload, so the latest calculation always reflects everything known.
	history, err := s.transactions.List(ctx, userID, transaction.ListFilter{})
	if err != nil {
		s.fail(ctx, up.ID, "failed to load transaction history")
		return nil, fmt.Errorf("loading transaction history: %w", err)
	}

	calc, err := s.taxes.Estimate(ctx, userID, up.ID, history)
	if err != nil {
		s.fail(ctx, up.ID, "failed to store tax estimate")
		return nil, fmt.Errorf("estimating tax: %w", err)
	}

	if err := s.repo.MarkCompleted(ctx, up.ID, stmt.BankName, stmt.Period); err != nil {
		s.fail(ctx, up.ID, "failed to finalize upload")
		return nil, fmt.Errorf("marking upload completed: %w", err)
	}

	return &Result{
		UploadID:          up.ID,
		Status:            StatusCompleted,
		TransactionsCount: len(txs),
		BankName:          stmt.BankName,
		StatementPeriod:   stmt.Period,
		Tax:               calc,
	}, nil
}

// List returns the user's uploads, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Upload, error) {
	return s.repo.ListUploads(ctx, userID)
}

func (s *Service) fail(ctx context.Context, id uuid.UUID, reason string) {
	if err := s.repo.MarkFailed(ctx, id, reason); err != nil {
		slog.Error("failed to mark upload failed", "upload_id", id, "error", err)
	}
}
