package upload_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cognitax/cognitax/internal/classifier"
	"github.com/cognitax/cognitax/internal/extractor"
	"github.com/cognitax/cognitax/internal/statement"
	"github.com/cognitax/cognitax/internal/tax"
	"github.com/cognitax/cognitax/internal/transaction"
	"github.com/cognitax/cognitax/internal/upload"
)

type fixture struct {
	repo    *upload.MockRepository
	txRepo  *transaction.MockRepository
	taxRepo *tax.MockRepository
	svc     *upload.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	repo := upload.NewMockRepository(ctrl)
	txRepo := transaction.NewMockRepository(ctrl)
	taxRepo := tax.NewMockRepository(ctrl)

	svc := upload.NewService(
		repo,
		statement.NewParser(),
		classifier.New(nil, nil, time.Second),
		transaction.NewService(txRepo),
		tax.NewService(taxRepo, tax.DefaultPolicy()),
	)

	return &fixture{repo: repo, txRepo: txRepo, taxRepo: taxRepo, svc: svc}
}

func expectCreate(f *fixture, id uuid.UUID) {
	f.repo.EXPECT().
		CreateUpload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, up *upload.Upload) error {
			up.ID = id
			up.CreatedAt = time.Now()
			return nil
		})
	f.repo.EXPECT().MarkProcessing(gomock.Any(), id).Return(nil)
}

var statementText = []byte(`HDFC Bank Statement
Statement Period: 01/04/2024 to 30/04/2024
01/04/2024 UPI/SWIGGY/ORDER 450.00 0.00 12,340.50
02/04/2024 NEFT SALARY ACME LTD 0.00 85,000.00 97,340.50
`)

func TestProcess_Completes(t *testing.T) {
	f := newFixture(t)

	userID, uploadID := uuid.New(), uuid.New()

	expectCreate(f, uploadID)

	var stored []*transaction.Transaction

	f.txRepo.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
			stored = txs
			return nil
		})
	f.txRepo.EXPECT().
		ListTransactions(gomock.Any(), userID, transaction.ListFilter{}).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ transaction.ListFilter) ([]*transaction.Transaction, error) {
			return stored, nil
		})

	f.taxRepo.EXPECT().
		CreateCalculation(gomock.Any(), gomock.Any()).
		Return(nil)

	f.repo.EXPECT().
		MarkCompleted(gomock.Any(), uploadID, "HDFC Bank", "01/04/2024 to 30/04/2024").
		Return(nil)

	result, err := f.svc.Process(context.Background(), userID, "statement.txt", statementText)
	require.NoError(t, err)

	assert.Equal(t, uploadID, result.UploadID)
	assert.Equal(t, upload.StatusCompleted, result.Status)
	assert.Equal(t, 2, result.TransactionsCount)
	assert.Equal(t, "HDFC Bank", result.BankName)
	require.NotNil(t, result.Tax)

	require.Len(t, stored, 2)
	assert.Equal(t, userID, stored[0].UserID)
	assert.Equal(t, uploadID, stored[0].UploadID)
	assert.Equal(t, transaction.TypeDebit, stored[0].Type)
	assert.Equal(t, classifier.CategoryFood, stored[0].Category)
	assert.Equal(t, classifier.ModeUPI, stored[0].Mode)
	assert.Equal(t, transaction.TypeCredit, stored[1].Type)
	assert.Equal(t, classifier.CategorySalary, stored[1].Category)
}

func TestProcess_UnmatchedNarrationStillCompletes(t *testing.T) {
	f := newFixture(t)

	userID, uploadID := uuid.New(), uuid.New()

	expectCreate(f, uploadID)

	var stored []*transaction.Transaction

	f.txRepo.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
			stored = txs
			return nil
		})
	f.txRepo.EXPECT().
		ListTransactions(gomock.Any(), userID, transaction.ListFilter{}).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ transaction.ListFilter) ([]*transaction.Transaction, error) {
			return stored, nil
		})

	f.taxRepo.EXPECT().
		CreateCalculation(gomock.Any(), gomock.Any()).
		Return(nil)

	f.repo.EXPECT().
		MarkCompleted(gomock.Any(), uploadID, gomock.Any(), gomock.Any()).
		Return(nil)

	text := []byte("01/04/2024 XJQW UNMATCHABLE NARRATION 120.00 0.00 11,880.00\n")

	result, err := f.svc.Process(context.Background(), userID, "statement.txt", text)
	require.NoError(t, err)

	assert.Equal(t, upload.StatusCompleted, result.Status)
	require.Len(t, stored, 1)
	assert.Equal(t, classifier.CategoryOther, stored[0].Category)
	assert.Equal(t, classifier.ModeUnknown, stored[0].Mode)
}

func TestProcess_UnreadableDocumentFails(t *testing.T) {
	f := newFixture(t)

	userID, uploadID := uuid.New(), uuid.New()

	expectCreate(f, uploadID)
	f.repo.EXPECT().
		MarkFailed(gomock.Any(), uploadID, gomock.Any()).
		Return(nil)

	_, err := f.svc.Process(context.Background(), userID, "scan.pdf", []byte("%PDF-1.4\nnot really a pdf"))
	assert.ErrorIs(t, err, extractor.ErrUnreadableDocument)
}

func TestProcess_NoRecognizableTransactionsStillCompletes(t *testing.T) {
	f := newFixture(t)

	userID, uploadID := uuid.New(), uuid.New()

	expectCreate(f, uploadID)

	// Nothing to insert, so the batch create is skipped entirely.
	f.txRepo.EXPECT().
		ListTransactions(gomock.Any(), userID, transaction.ListFilter{}).
		Return(nil, nil)

	f.taxRepo.EXPECT().
		CreateCalculation(gomock.Any(), gomock.Any()).
		Return(nil)

	f.repo.EXPECT().
		MarkCompleted(gomock.Any(), uploadID, gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := f.svc.Process(context.Background(), userID, "notes.txt", []byte("Dear customer,\nthank you for banking with us.\n"))
	require.NoError(t, err)

	assert.Equal(t, upload.StatusCompleted, result.Status)
	assert.Equal(t, 0, result.TransactionsCount)
}

func TestProcess_FinalizeFailureMarksFailed(t *testing.T) {
	f := newFixture(t)

	userID, uploadID := uuid.New(), uuid.New()

	expectCreate(f, uploadID)

	f.txRepo.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		Return(nil)
	f.txRepo.EXPECT().
		ListTransactions(gomock.Any(), userID, transaction.ListFilter{}).
		Return(nil, nil)
	f.taxRepo.EXPECT().
		CreateCalculation(gomock.Any(), gomock.Any()).
		Return(nil)

	f.repo.EXPECT().
		MarkCompleted(gomock.Any(), uploadID, gomock.Any(), gomock.Any()).
		Return(errors.New("db error"))
	f.repo.EXPECT().
		MarkFailed(gomock.Any(), uploadID, "failed to finalize upload").
		Return(nil)

	_, err := f.svc.Process(context.Background(), userID, "statement.txt", statementText)
	assert.Error(t, err)
}

func TestProcess_StoreFailureMarksFailed(t *testing.T) {
	f := newFixture(t)

	userID, uploadID := uuid.New(), uuid.New()

	expectCreate(f, uploadID)

	f.txRepo.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Any()).
		Return(errors.New("db error"))

	f.repo.EXPECT().
		MarkFailed(gomock.Any(), uploadID, "failed to store transactions").
		Return(nil)

	_, err := f.svc.Process(context.Background(), userID, "statement.txt", statementText)
	assert.Error(t, err)
}
