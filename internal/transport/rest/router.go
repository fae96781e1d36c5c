package rest

import "net/http"

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Records *RecordHandler
	Reports *ReportHandler
	Health  *HealthHandler
	Metrics http.Handler
}

// NewRouter registers all routes on a fresh ServeMux. Metrics may be nil.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /clients", h.Records.ListClients)
	mux.HandleFunc("POST /clients", h.Records.AddClient)
	mux.HandleFunc("GET /history/{clientName}", h.Records.GetHistory)
	mux.HandleFunc("POST /history", h.Records.AddHistory)
	mux.HandleFunc("GET /repair-orders/next", h.Records.NextRepairOrder)

	mux.HandleFunc("POST /send-email", h.Reports.SendEmail)
	mux.HandleFunc("GET /history/{clientName}/report", h.Reports.Report)
	mux.HandleFunc("POST /history/{clientName}/report/email", h.Reports.EmailReport)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	return mux
}
