package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cognitax/cognitax/internal/ai"
	"github.com/cognitax/cognitax/internal/tax"
	"github.com/cognitax/cognitax/internal/transaction"
)

// ErrModelUnavailable is returned when no AI backend is configured.
var ErrModelUnavailable = errors.New("assistant model not configured")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=chat
type Repository interface {
	CreateMessage(ctx context.Context, msg *Message) error
	ListMessages(ctx context.Context, userID, sessionID uuid.UUID) ([]*Message, error)
}

// Reply is the assistant's answer to one chat message.
type Reply struct {
	SessionID uuid.UUID
	Response  string
}

// Service drives the tax-assistant conversation. Each exchange is
// persisted message by message; the assistant is primed with a summary
// of the user's financial data.
type Service struct {
	repo         Repository
	model        ai.Client
	transactions *transaction.Service
	taxes        *tax.Service
}

func NewService(repo Repository, model ai.Client, transactions *transaction.Service, taxes *tax.Service) *Service {
	return &Service{
		repo:         repo,
		model:        model,
		transactions: transactions,
		taxes:        taxes,
	}
}

// Send persists the user's message, asks the model with the user's
// financial context as system instruction, and persists the reply. A new
// session ID is minted when the caller does not supply one.
func (s *Service) Send(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, message string) (*Reply, error) {
	if s.model == nil {
		return nil, ErrModelUnavailable
	}

	if sessionID == uuid.Nil {
		sessionID = uuid.New()
	}

	userMsg := &Message{
		UserID:    userID,
		SessionID: sessionID,
		Role:      RoleUser,
		Content:   message,
	}
	if err := s.repo.CreateMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("storing user message: %w", err)
	}

	system, err := s.systemInstruction(ctx, userID)
	if err != nil {
		return nil, err
	}

	response, err := s.model.Send(ctx, message, system)
	if err != nil {
		return nil, fmt.Errorf("querying model: %w", err)
	}

	assistantMsg := &Message{
		UserID:    userID,
		SessionID: sessionID,
		Role:      RoleAssistant,
		Content:   response,
	}
	if err := s.repo.CreateMessage(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("storing assistant message: %w", err)
	}

	return &Reply{SessionID: sessionID, Response: response}, nil
}

// History returns one session's messages, oldest first.
func (s *Service) History(ctx context.Context, userID, sessionID uuid.UUID) ([]*Message, error) {
	return s.repo.ListMessages(ctx, userID, sessionID)
}

func (s *Service) systemInstruction(ctx context.Context, userID uuid.UUID) (string, error) {
	txs, err := s.transactions.List(ctx, userID, transaction.ListFilter{})
	if err != nil {
		return "", fmt.Errorf("loading transactions: %w", err)
	}

	latest, err := s.taxes.Latest(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("loading latest tax calculation: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are an expert Indian tax assistant helping with GST, ITR, TDS, and business tax queries.\n")
	b.WriteString("Provide accurate, helpful advice based on Indian tax laws.\n\n")
	b.WriteString("User's Financial Context:\n")
	fmt.Fprintf(&b, "- Total Transactions: %d\n", len(txs))

	if latest == nil {
		b.WriteString("- Latest Tax Calculation: None\n")
	} else {
		fmt.Fprintf(&b, "- Latest Tax Calculation: turnover %s, income %s, expenses %s, GST due %s, ITR due %s, TDS due %s\n",
			format(latest.EstimatedTurnover),
			format(latest.TotalIncome),
			format(latest.TotalExpenses),
			format(latest.GSTAmount),
			format(latest.ITRAmount),
			format(latest.TDSAmount),
		)
	}

	return b.String(), nil
}

func format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
