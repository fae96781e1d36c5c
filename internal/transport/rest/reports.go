package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/repairshop-backend/internal/service/report"
)

type reportService interface {
	SendEmail(ctx context.Context, input report.SendEmailInput) (string, error)
	Render(ctx context.Context, clientName string) (string, error)
	EmailReport(ctx context.Context, clientName, to string) (string, error)
}

// ReportHandler serves report and mail endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type sendEmailRequest struct {
	ToEmail string `json:"toEmail"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type emailReportRequest struct {
	ToEmail string `json:"toEmail"`
}

// SendEmail handles POST /send-email.
func (h *ReportHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := h.svc.SendEmail(r.Context(), report.SendEmailInput{
		To:      req.ToEmail,
		Subject: req.Subject,
		Text:    req.Text,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, messageIDResponse{MessageID: id})
}

// Report handles GET /history/{clientName}/report.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	text, err := h.svc.Render(r.Context(), r.PathValue("clientName"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, text) //nolint:errcheck
}

// EmailReport handles POST /history/{clientName}/report/email. The body is
// optional; without toEmail the report goes to the client's address.
func (h *ReportHandler) EmailReport(w http.ResponseWriter, r *http.Request) {
	var req emailReportRequest
	if r.ContentLength != 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	id, err := h.svc.EmailReport(r.Context(), r.PathValue("clientName"), req.ToEmail)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, messageIDResponse{MessageID: id})
}
