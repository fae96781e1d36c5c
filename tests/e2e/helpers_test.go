//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/repairshop-backend/internal/adapter/mail"
	"github.com/heartmarshall/repairshop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/repairshop-backend/internal/adapter/postgres/client"
	"github.com/heartmarshall/repairshop-backend/internal/adapter/postgres/history"
	"github.com/heartmarshall/repairshop-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/repairshop-backend/internal/config"
	"github.com/heartmarshall/repairshop-backend/internal/service/record"
	"github.com/heartmarshall/repairshop-backend/internal/service/report"
	"github.com/heartmarshall/repairshop-backend/internal/transport/middleware"
	"github.com/heartmarshall/repairshop-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Loc    *time.Location
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	clients := client.New(pool)
	entries := history.New(pool)
	txm := postgres.NewTxManager(pool)

	records := record.NewService(logger, clients, entries, txm, loc)
	reports := report.NewService(logger, clients, entries, mail.Disabled{}, report.Settings{
		ShopName: "Ordilan",
		Subject:  "Rapport d'historique de travaux",
		Location: loc,
	})

	mux := rest.NewRouter(rest.Handlers{
		Records: rest.NewRecordHandler(records, logger),
		Reports: rest.NewReportHandler(reports, logger),
		Health:  rest.NewHealthHandler(pool, config.DriverPostgres, false, "e2e"),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         86400,
		}),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, Loc: loc}
}

// uniqueName returns a client name no other test uses; the container is shared.
func uniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// postJSON sends body as JSON and decodes the response into out when non-nil.
func (ts *testServer) postJSON(t *testing.T, path string, body, out any) int {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// getJSON issues a GET and decodes the response into out.
func (ts *testServer) getJSON(t *testing.T, path string, out any) int {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}
