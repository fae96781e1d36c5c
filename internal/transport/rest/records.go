package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/repairshop-backend/internal/domain"
	"github.com/heartmarshall/repairshop-backend/internal/service/record"
)

type recordService interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetHistory(ctx context.Context, clientName string) ([]domain.HistoryEntry, error)
	AddClientWithHistory(ctx context.Context, input record.AddClientWithHistoryInput) (*domain.HistoryEntry, error)
	AddHistoryForExistingClient(ctx context.Context, input record.AddHistoryInput) (*domain.HistoryEntry, error)
	NextRepairOrderNumber(ctx context.Context) (int64, error)
}

// RecordHandler serves client and history endpoints.
type RecordHandler struct {
	svc recordService
	log *slog.Logger
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(svc recordService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{svc: svc, log: logger.With("handler", "record")}
}

type clientResponse struct {
	Name             string `json:"name"`
	Machine          string `json:"machine"`
	RegistrationDate string `json:"registrationDate"`
	Email            string `json:"email"`
}

type historyEntryResponse struct {
	ID            int64     `json:"id"`
	ClientName    string    `json:"clientName"`
	Machine       string    `json:"machine"`
	WorkDate      string    `json:"workDate"`
	Description   string    `json:"description"`
	MaterialState string    `json:"materialState"`
	Phone         string    `json:"phone"`
	Technician    string    `json:"technician"`
	SerialNumber  string    `json:"serialNumber"`
	EndDate       *string   `json:"endDate"`
	Email         string    `json:"email"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type addClientRequest struct {
	Name          string `json:"name"`
	Machine       string `json:"machine"`
	Date          string `json:"date"`
	Email         string `json:"email"`
	Description   string `json:"description"`
	MaterialState string `json:"materialState"`
	Phone         string `json:"phone"`
	Technician    string `json:"technician"`
	SerialNumber  string `json:"serialNumber"`
	EndDate       string `json:"endDate"`
}

type addHistoryRequest struct {
	ClientName    string `json:"clientName"`
	Machine       string `json:"machine"`
	WorkDate      string `json:"workDate"`
	Description   string `json:"description"`
	MaterialState string `json:"materialState"`
	Phone         string `json:"phone"`
	Technician    string `json:"technician"`
	SerialNumber  string `json:"serialNumber"`
	EndDate       string `json:"endDate"`
	Email         string `json:"email"`
}

type nextRepairOrderResponse struct {
	Next int64 `json:"next"`
}

// ListClients handles GET /clients.
func (h *RecordHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.ListClients(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]clientResponse, len(clients))
	for i, c := range clients {
		resp[i] = toClientResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetHistory handles GET /history/{clientName}.
func (h *RecordHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.GetHistory(r.Context(), r.PathValue("clientName"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]historyEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toHistoryEntryResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddClient handles POST /clients: a first visit that creates the client
// if needed and records its first history entry.
func (h *RecordHandler) AddClient(w http.ResponseWriter, r *http.Request) {
	var req addClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.AddClientWithHistory(r.Context(), record.AddClientWithHistoryInput{
		Name:          req.Name,
		Machine:       req.Machine,
		Date:          req.Date,
		Email:         req.Email,
		Description:   req.Description,
		MaterialState: req.MaterialState,
		Phone:         req.Phone,
		Technician:    req.Technician,
		SerialNumber:  req.SerialNumber,
		EndDate:       req.EndDate,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, ackResponse{Message: "client and history recorded", ID: entry.ID})
}

// AddHistory handles POST /history for an existing client.
func (h *RecordHandler) AddHistory(w http.ResponseWriter, r *http.Request) {
	var req addHistoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.AddHistoryForExistingClient(r.Context(), record.AddHistoryInput{
		ClientName:    req.ClientName,
		Machine:       req.Machine,
		WorkDate:      req.WorkDate,
		Description:   req.Description,
		MaterialState: req.MaterialState,
		Phone:         req.Phone,
		Technician:    req.Technician,
		SerialNumber:  req.SerialNumber,
		EndDate:       req.EndDate,
		Email:         req.Email,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, ackResponse{Message: "history recorded", ID: entry.ID})
}

// NextRepairOrder handles GET /repair-orders/next.
func (h *RecordHandler) NextRepairOrder(w http.ResponseWriter, r *http.Request) {
	next, err := h.svc.NextRepairOrderNumber(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, nextRepairOrderResponse{Next: next})
}

func toClientResponse(c domain.Client) clientResponse {
	return clientResponse{
		Name:             c.Name,
		Machine:          c.Machine,
		RegistrationDate: domain.FormatDate(c.RegistrationDate),
		Email:            c.Email,
	}
}

func toHistoryEntryResponse(e domain.HistoryEntry) historyEntryResponse {
	resp := historyEntryResponse{
		ID:            e.ID,
		ClientName:    e.ClientName,
		Machine:       e.Machine,
		WorkDate:      domain.FormatDate(e.WorkDate),
		Description:   e.Description,
		MaterialState: e.MaterialState,
		Phone:         e.Phone,
		Technician:    e.Technician,
		SerialNumber:  e.SerialNumber,
		Email:         e.Email,
		Status:        e.Status.String(),
		CreatedAt:     e.CreatedAt,
	}
	if e.EndDate != nil {
		end := domain.FormatDate(*e.EndDate)
		resp.EndDate = &end
	}
	return resp
}
