package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/cognitax/cognitax/internal/tax"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectColumns = `
	id, user_id, upload_id, total_income, total_expenses, estimated_turnover,
	gst_amount, itr_amount, tds_amount, optimization_tips, created_at
`

type scanner interface {
	Scan(dest ...any) error
}

func scanCalculation(s scanner) (*tax.Calculation, error) {
	var calc tax.Calculation

	var tips []byte

	if err := s.Scan(
		&calc.ID, &calc.UserID, &calc.UploadID,
		&calc.TotalIncome, &calc.TotalExpenses, &calc.EstimatedTurnover,
		&calc.GSTAmount, &calc.ITRAmount, &calc.TDSAmount,
		&tips, &calc.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(tips, &calc.OptimizationTips); err != nil {
		return nil, fmt.Errorf("decoding tips: %w", err)
	}

	return &calc, nil
}

func (s *Store) CreateCalculation(ctx context.Context, calc *tax.Calculation) error {
	tips, err := json.Marshal(calc.OptimizationTips)
	if err != nil {
		return fmt.Errorf("encoding tips: %w", err)
	}

	query := `
		INSERT INTO tax_calculations
			(user_id, upload_id, total_income, total_expenses, estimated_turnover,
			 gst_amount, itr_amount, tds_amount, optimization_tips, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		calc.UserID,
		calc.UploadID,
		calc.TotalIncome,
		calc.TotalExpenses,
		calc.EstimatedTurnover,
		calc.GSTAmount,
		calc.ITRAmount,
		calc.TDSAmount,
		tips,
	).Scan(&calc.ID, &calc.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating tax calculation: %w", err)
	}

	return nil
}

func (s *Store) ListCalculations(ctx context.Context, userID uuid.UUID) ([]*tax.Calculation, error) {
	query := `SELECT ` + selectColumns + `
		FROM tax_calculations
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tax calculations: %w", err)
	}
	defer rows.Close()

	var calcs []*tax.Calculation

	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tax calculation: %w", err)
		}

		calcs = append(calcs, calc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tax calculations: %w", err)
	}

	return calcs, nil
}

// LatestCalculation returns nil without error when the user has no
// calculations yet.
func (s *Store) LatestCalculation(ctx context.Context, userID uuid.UUID) (*tax.Calculation, error) {
	query := `SELECT ` + selectColumns + `
		FROM tax_calculations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	calc, err := scanCalculation(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("getting latest tax calculation: %w", err)
	}

	return calc, nil
}
