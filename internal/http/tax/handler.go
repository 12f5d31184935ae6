package tax

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cognitax/cognitax/internal/analytics"
	"github.com/cognitax/cognitax/internal/http/session"
	"github.com/cognitax/cognitax/internal/tax"
)

type Handler struct {
	svc       *tax.Service
	analytics *analytics.Service
}

func NewHandler(svc *tax.Service, analytics *analytics.Service) *Handler {
	return &Handler{svc: svc, analytics: analytics}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/tax-calculations", h.list)
	r.Get("/analytics", h.summary)
}

type calculationResponse struct {
	ID                uuid.UUID `json:"id"`
	UploadID          uuid.UUID `json:"upload_id"`
	TotalIncome       string    `json:"total_income"`
	TotalExpenses     string    `json:"total_expenses"`
	EstimatedTurnover string    `json:"estimated_turnover"`
	GSTAmount         string    `json:"gst_amount"`
	ITRAmount         string    `json:"itr_amount"`
	TDSAmount         string    `json:"tds_amount"`
	OptimizationTips  []string  `json:"optimization_tips"`
	CreatedAt         time.Time `json:"created_at"`
}

type summaryResponse struct {
	TotalIncome       string               `json:"total_income"`
	TotalExpenses     string               `json:"total_expenses"`
	NetCashFlow       string               `json:"net_cash_flow"`
	TransactionsCount int                  `json:"transactions_count"`
	CategoryBreakdown map[string]string    `json:"category_breakdown"`
	ModeBreakdown     map[string]string    `json:"mode_breakdown"`
	LatestTax         *calculationResponse `json:"latest_tax,omitempty"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	calcs, err := h.svc.List(r.Context(), sess.UserID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]calculationResponse, 0, len(calcs))
	for _, calc := range calcs {
		resp = append(resp, toCalculationResponse(calc))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	summary, err := h.analytics.Summarize(r.Context(), sess.UserID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := summaryResponse{
		TotalIncome:       summary.TotalIncome.StringFixed(2),
		TotalExpenses:     summary.TotalExpenses.StringFixed(2),
		NetCashFlow:       summary.NetCashFlow.StringFixed(2),
		TransactionsCount: summary.TransactionsCount,
		CategoryBreakdown: make(map[string]string, len(summary.CategoryBreakdown)),
		ModeBreakdown:     make(map[string]string, len(summary.ModeBreakdown)),
	}

	for category, amount := range summary.CategoryBreakdown {
		resp.CategoryBreakdown[category] = amount.StringFixed(2)
	}

	for mode, amount := range summary.ModeBreakdown {
		resp.ModeBreakdown[mode] = amount.StringFixed(2)
	}

	if summary.LatestTax != nil {
		latest := toCalculationResponse(summary.LatestTax)
		resp.LatestTax = &latest
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toCalculationResponse(calc *tax.Calculation) calculationResponse {
	return calculationResponse{
		ID:                calc.ID,
		UploadID:          calc.UploadID,
		TotalIncome:       calc.TotalIncome.StringFixed(2),
		TotalExpenses:     calc.TotalExpenses.StringFixed(2),
		EstimatedTurnover: calc.EstimatedTurnover.StringFixed(2),
		GSTAmount:         calc.GSTAmount.StringFixed(2),
		ITRAmount:         calc.ITRAmount.StringFixed(2),
		TDSAmount:         calc.TDSAmount.StringFixed(2),
		OptimizationTips:  calc.OptimizationTips,
		CreatedAt:         calc.CreatedAt,
	}
}
