package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cognitax/cognitax/internal/upload"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateUpload(ctx context.Context, up *upload.Upload) error {
	query := `
		INSERT INTO uploads (user_id, filename, file_size, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := s.db.QueryRowContext(ctx, query,
		up.UserID,
		up.Filename,
		up.FileSize,
		up.Status,
	).Scan(&up.ID, &up.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting upload: %w", err)
	}

	return nil
}

func (s *Store) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return s.setStatus(ctx, id, upload.StatusProcessing)
}

func (s *Store) MarkCompleted(ctx context.Context, id uuid.UUID, bankName, period string) error {
	query := `
		UPDATE uploads
		SET status = $2, bank_name = $3, statement_period = $4, error_reason = NULL
		WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id, upload.StatusCompleted, bankName, period); err != nil {
		return fmt.Errorf("completing upload: %w", err)
	}

	return nil
}

func (s *Store) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `
		UPDATE uploads
		SET status = $2, error_reason = $3
		WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id, upload.StatusFailed, reason); err != nil {
		return fmt.Errorf("failing upload: %w", err)
	}

	return nil
}

func (s *Store) ListUploads(ctx context.Context, userID uuid.UUID) ([]*upload.Upload, error) {
	query := `
		SELECT id, user_id, filename, file_size,
		       COALESCE(bank_name, ''), COALESCE(statement_period, ''),
		       status, COALESCE(error_reason, ''), created_at
		FROM uploads
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying uploads: %w", err)
	}
	defer rows.Close()

	var uploads []*upload.Upload

	for rows.Next() {
		var up upload.Upload

		err := rows.Scan(
			&up.ID,
			&up.UserID,
			&up.Filename,
			&up.FileSize,
			&up.BankName,
			&up.StatementPeriod,
			&up.Status,
			&up.ErrorReason,
			&up.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning upload: %w", err)
		}

		uploads = append(uploads, &up)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating uploads: %w", err)
	}

	return uploads, nil
}

func (s *Store) setStatus(ctx context.Context, id uuid.UUID, status upload.Status) error {
	query := `UPDATE uploads SET status = $2 WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("updating upload status: %w", err)
	}

	return nil
}
