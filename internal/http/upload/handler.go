package upload

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cognitax/cognitax/internal/extractor"
	"github.com/cognitax/cognitax/internal/http/session"
	"github.com/cognitax/cognitax/internal/tax"
	"github.com/cognitax/cognitax/internal/upload"
)

const maxUploadBytes = 20 << 20

type Handler struct {
	svc *upload.Service
}

func NewHandler(svc *upload.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
}

type uploadResponse struct {
	ID              uuid.UUID `json:"id"`
	Filename        string    `json:"filename"`
	FileSize        int64     `json:"file_size"`
	BankName        string    `json:"bank_name,omitempty"`
	StatementPeriod string    `json:"statement_period,omitempty"`
	Status          string    `json:"status"`
	ErrorReason     string    `json:"error_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type resultResponse struct {
	UploadID          uuid.UUID    `json:"upload_id"`
	Status            string       `json:"status"`
	TransactionsCount int          `json:"transactions_count"`
	BankName          string       `json:"bank_name,omitempty"`
	StatementPeriod   string       `json:"statement_period,omitempty"`
	Tax               *taxResponse `json:"tax,omitempty"`
}

type taxResponse struct {
	TotalIncome       string   `json:"total_income"`
	TotalExpenses     string   `json:"total_expenses"`
	EstimatedTurnover string   `json:"estimated_turnover"`
	GSTAmount         string   `json:"gst_amount"`
	ITRAmount         string   `json:"itr_amount"`
	TDSAmount         string   `json:"tds_amount"`
	OptimizationTips  []string `json:"optimization_tips"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "failed to read file", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Process(r.Context(), sess.UserID, filepath.Base(header.Filename), data)
	if err != nil {
		if errors.Is(err, extractor.ErrUnreadableDocument) {
			http.Error(w, "document is not readable: upload a text-based statement", http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResultResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	uploads, err := h.svc.List(r.Context(), sess.UserID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]uploadResponse, 0, len(uploads))
	for _, up := range uploads {
		resp = append(resp, toUploadResponse(up))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toUploadResponse(up *upload.Upload) uploadResponse {
	return uploadResponse{
		ID:              up.ID,
		Filename:        up.Filename,
		FileSize:        up.FileSize,
		BankName:        up.BankName,
		StatementPeriod: up.StatementPeriod,
		Status:          string(up.Status),
		ErrorReason:     up.ErrorReason,
		CreatedAt:       up.CreatedAt,
	}
}

func toResultResponse(res *upload.Result) resultResponse {
	resp := resultResponse{
		UploadID:          res.UploadID,
		Status:            string(res.Status),
		TransactionsCount: res.TransactionsCount,
		BankName:          res.BankName,
		StatementPeriod:   res.StatementPeriod,
	}

	if res.Tax != nil {
		resp.Tax = toTaxResponse(res.Tax)
	}

	return resp
}

func toTaxResponse(calc *tax.Calculation) *taxResponse {
	return &taxResponse{
		TotalIncome:       calc.TotalIncome.StringFixed(2),
		TotalExpenses:     calc.TotalExpenses.StringFixed(2),
		EstimatedTurnover: calc.EstimatedTurnover.StringFixed(2),
		GSTAmount:         calc.GSTAmount.StringFixed(2),
		ITRAmount:         calc.ITRAmount.StringFixed(2),
		TDSAmount:         calc.TDSAmount.StringFixed(2),
		OptimizationTips:  calc.OptimizationTips,
	}
}
