package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cognitax/cognitax/internal/transaction"
)

func TestService_CreateBatch(t *testing.T) {
	type testCase struct {
		name      string
		txs       []*transaction.Transaction
		setupMock func(m *transaction.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			txs: []*transaction.Transaction{
				{
					UserID:      uuid.New(),
					Date:        time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
					Description: "UPI/SWIGGY/ORDER",
					Amount:      decimal.NewFromInt(450),
					Type:        transaction.TypeDebit,
				},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransactions(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "EmptyBatchSkipsStore",
			txs:  nil,
		},
		{
			name: "RepoError",
			txs: []*transaction.Transaction{
				{Amount: decimal.NewFromInt(100)},
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransactions(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			err := svc.CreateBatch(context.Background(), tt.txs)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID, id := uuid.New(), uuid.New()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		GetTransaction(gomock.Any(), userID, id).
		Return(nil, transaction.ErrNotFound)

	svc := transaction.NewService(repo)

	_, err := svc.Get(context.Background(), userID, id)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestService_BulkDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	ids := []uuid.UUID{
		uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New(),
	}
	missing := ids[2]

	repo := transaction.NewMockRepository(ctrl)
	for _, id := range ids {
		if id == missing {
			repo.EXPECT().
				DeleteTransaction(gomock.Any(), userID, id).
				Return(transaction.ErrNotFound)

			continue
		}

		repo.EXPECT().
			DeleteTransaction(gomock.Any(), userID, id).
			Return(nil)
	}

	svc := transaction.NewService(repo)

	result := svc.BulkDelete(context.Background(), userID, ids)

	assert.Equal(t, 4, result.Deleted)
	assert.Equal(t, 1, result.Failed)
}

func TestService_BulkDelete_StoreFailureDoesNotStopBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteTransaction(gomock.Any(), userID, ids[0]).
		Return(errors.New("db error"))
	repo.EXPECT().
		DeleteTransaction(gomock.Any(), userID, ids[1]).
		Return(nil)

	svc := transaction.NewService(repo)

	result := svc.BulkDelete(context.Background(), userID, ids)

	require.Equal(t, 1, result.Deleted)
	require.Equal(t, 1, result.Failed)
}
