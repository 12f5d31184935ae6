package transaction

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error
}

// ListFilter narrows a listing. Zero value lists everything the user owns.
type ListFilter struct {
	UploadID *uuid.UUID
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateBatch persists the transactions produced for one upload.
func (s *Service) CreateBatch(ctx context.Context, txs []*Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	return s.repo.CreateTransactions(ctx, txs)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, userID, filter)
}

func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, userID, id)
}

// BulkDeleteResult reports a best-effort bulk deletion.
type BulkDeleteResult struct {
	Deleted int
	Failed  int
}

// BulkDelete removes the given transactions one by one. Deletions are
// independent: a missing id (or a failed delete) is counted and the rest
// proceed. There is no atomicity across the set.
func (s *Service) BulkDelete(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) BulkDeleteResult {
	var result BulkDeleteResult

	for _, id := range ids {
		if err := s.repo.DeleteTransaction(ctx, userID, id); err != nil {
			if !errors.Is(err, ErrNotFound) {
				slog.Warn("bulk delete: store failure", "id", id, "error", err)
			}

			result.Failed++

			continue
		}

		result.Deleted++
	}

	return result
}
