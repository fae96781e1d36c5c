package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/repairshop-backend/internal/domain"
	"github.com/heartmarshall/repairshop-backend/internal/service/report"
)

func TestSendEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"delivered", nil, http.StatusOK},
		{"validation", domain.NewValidationError("toEmail", "invalid address"), http.StatusBadRequest},
		{"mail disabled", domain.ErrMailDisabled, http.StatusServiceUnavailable},
		{"smtp failure", fmt.Errorf("%w: 550 mailbox unavailable", domain.ErrMailDelivery), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &reportServiceMock{
				SendEmailFunc: func(ctx context.Context, input report.SendEmailInput) (string, error) {
					if tt.err != nil {
						return "", tt.err
					}
					return "<id@shop>", nil
				},
			}
			body := `{"toEmail":"a@b.com","subject":"Votre machine","text":"Elle est prête."}`

			rec := httptest.NewRecorder()
			NewReportHandler(svc, discardLogger()).SendEmail(rec, httptest.NewRequest(http.MethodPost, "/send-email", strings.NewReader(body)))

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			in := svc.SendEmailCalls()[0].Input
			if in.To != "a@b.com" || in.Subject != "Votre machine" || in.Text != "Elle est prête." {
				t.Errorf("input = %+v", in)
			}
			if tt.err == nil {
				var resp messageIDResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if resp.MessageID != "<id@shop>" {
					t.Errorf("messageId = %q", resp.MessageID)
				}
			}
		})
	}
}

func TestReport_PlainText(t *testing.T) {
	t.Parallel()

	svc := &reportServiceMock{
		RenderFunc: func(ctx context.Context, clientName string) (string, error) {
			return "Historique de " + clientName + "\n", nil
		},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /history/{clientName}/report", NewReportHandler(svc, discardLogger()).Report)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history/Dupont/report", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.String() != "Historique de Dupont\n" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestEmailReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		err      error
		wantTo   string
		wantCode int
	}{
		{"no body uses client address", "", nil, "", http.StatusOK},
		{"explicit recipient", `{"toEmail":"boss@shop.fr"}`, nil, "boss@shop.fr", http.StatusOK},
		{"unknown client", "", domain.ErrClientNotFound, "", http.StatusNotFound},
		{"malformed body", `{"toEmail":`, nil, "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &reportServiceMock{
				EmailReportFunc: func(ctx context.Context, clientName, to string) (string, error) {
					return "<r@shop>", tt.err
				},
			}
			mux := http.NewServeMux()
			mux.HandleFunc("POST /history/{clientName}/report/email", NewReportHandler(svc, discardLogger()).EmailReport)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/history/Dupont/report/email", strings.NewReader(tt.body)))

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantCode == http.StatusBadRequest {
				if len(svc.EmailReportCalls()) != 0 {
					t.Error("service must not be called on malformed JSON")
				}
				return
			}
			call := svc.EmailReportCalls()[0]
			if call.ClientName != "Dupont" || call.To != tt.wantTo {
				t.Errorf("call = %+v", call)
			}
		})
	}
}
