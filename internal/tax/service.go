package tax

import (
	"context"

	"github.com/google/uuid"

	"github.com/cognitax/cognitax/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=tax
type Repository interface {
	CreateCalculation(ctx context.Context, calc *Calculation) error
	ListCalculations(ctx context.Context, userID uuid.UUID) ([]*Calculation, error)
	LatestCalculation(ctx context.Context, userID uuid.UUID) (*Calculation, error)
}

type Service struct {
	repo   Repository
	policy Policy
}

func NewService(repo Repository, policy Policy) *Service {
	return &Service{repo: repo, policy: policy}
}

// Estimate computes the figures for the transaction set and persists the
// resulting calculation, tied to the upload that triggered it.
func (s *Service) Estimate(ctx context.Context, userID, uploadID uuid.UUID, txs []*transaction.Transaction) (*Calculation, error) {
	f := Compute(s.policy, txs)

	calc := &Calculation{
		UserID:            userID,
		UploadID:          uploadID,
		TotalIncome:       f.TotalIncome,
		TotalExpenses:     f.TotalExpenses,
		EstimatedTurnover: f.EstimatedTurnover,
		GSTAmount:         f.GSTAmount,
		ITRAmount:         f.ITRAmount,
		TDSAmount:         f.TDSAmount,
		OptimizationTips:  tipsFor(s.policy, f),
	}

	if err := s.repo.CreateCalculation(ctx, calc); err != nil {
		return nil, err
	}

	return calc, nil
}

// List returns the user's calculations, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Calculation, error) {
	return s.repo.ListCalculations(ctx, userID)
}

// Latest returns the user's most recent calculation, or nil when none
// exists yet.
func (s *Service) Latest(ctx context.Context, userID uuid.UUID) (*Calculation, error) {
	return s.repo.LatestCalculation(ctx, userID)
}
