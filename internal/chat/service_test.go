package chat_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cognitax/cognitax/internal/chat"
	"github.com/cognitax/cognitax/internal/tax"
	"github.com/cognitax/cognitax/internal/transaction"
)

type stubModel struct {
	reply      string
	lastSystem string
}

func (s *stubModel) Send(_ context.Context, _, system string) (string, error) {
	s.lastSystem = system
	return s.reply, nil
}

func newChatService(ctrl *gomock.Controller, model *stubModel) (*chat.Service, *chat.MockRepository, *transaction.MockRepository, *tax.MockRepository) {
	repo := chat.NewMockRepository(ctrl)
	txRepo := transaction.NewMockRepository(ctrl)
	taxRepo := tax.NewMockRepository(ctrl)

	svc := chat.NewService(repo, model, transaction.NewService(txRepo), tax.NewService(taxRepo, tax.DefaultPolicy()))

	return svc, repo, txRepo, taxRepo
}

func TestSend_PersistsBothSides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := &stubModel{reply: "File GSTR-1 by the 11th of next month."}
	svc, repo, txRepo, taxRepo := newChatService(ctrl, model)

	userID := uuid.New()

	var roles []string

	repo.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *chat.Message) error {
			msg.ID = uuid.New()
			roles = append(roles, msg.Role)
			return nil
		}).
		Times(2)

	txRepo.EXPECT().
		ListTransactions(gomock.Any(), userID, transaction.ListFilter{}).
		Return([]*transaction.Transaction{{}, {}, {}}, nil)
	taxRepo.EXPECT().
		LatestCalculation(gomock.Any(), userID).
		Return(nil, nil)

	reply, err := svc.Send(context.Background(), userID, uuid.Nil, "When is my GST filing due?")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, reply.SessionID)
	assert.Equal(t, model.reply, reply.Response)
	assert.Equal(t, []string{chat.RoleUser, chat.RoleAssistant}, roles)

	assert.Contains(t, model.lastSystem, "Total Transactions: 3")
	assert.Contains(t, model.lastSystem, "Latest Tax Calculation: None")
}

func TestSend_KeepsExistingSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, txRepo, taxRepo := newChatService(ctrl, &stubModel{reply: "ok"})

	userID, sessionID := uuid.New(), uuid.New()

	repo.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *chat.Message) error {
			assert.Equal(t, sessionID, msg.SessionID)
			return nil
		}).
		Times(2)

	txRepo.EXPECT().
		ListTransactions(gomock.Any(), userID, transaction.ListFilter{}).
		Return(nil, nil)
	taxRepo.EXPECT().
		LatestCalculation(gomock.Any(), userID).
		Return(nil, nil)

	reply, err := svc.Send(context.Background(), userID, sessionID, "hello")
	require.NoError(t, err)
	assert.Equal(t, sessionID, reply.SessionID)
}

func TestSend_NoModelConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := chat.NewMockRepository(ctrl)
	txRepo := transaction.NewMockRepository(ctrl)
	taxRepo := tax.NewMockRepository(ctrl)

	svc := chat.NewService(repo, nil, transaction.NewService(txRepo), tax.NewService(taxRepo, tax.DefaultPolicy()))

	_, err := svc.Send(context.Background(), uuid.New(), uuid.Nil, "hello")
	assert.ErrorIs(t, err, chat.ErrModelUnavailable)
}

func TestHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, _ := newChatService(ctrl, &stubModel{})

	userID, sessionID := uuid.New(), uuid.New()

	repo.EXPECT().
		ListMessages(gomock.Any(), userID, sessionID).
		Return([]*chat.Message{
			{Role: chat.RoleUser, Content: "hi"},
			{Role: chat.RoleAssistant, Content: "hello"},
		}, nil)

	msgs, err := svc.History(context.Background(), userID, sessionID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, chat.RoleUser, msgs[0].Role)
}
