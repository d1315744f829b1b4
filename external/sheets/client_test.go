package sheets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/fkl-dashboard/internal/domain/roundstat"
	"github.com/riskibarqy/fkl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fkl-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/fkl-dashboard/internal/usecase"
)

const testSpreadsheet = "sheet-1"

func newTestClient(t *testing.T, baseURL string, retries int, breaker resilience.BreakerConfig) *Client {
	t.Helper()

	client, err := NewClient(ClientConfig{
		HTTPClient:     &http.Client{Timeout: 2 * time.Second},
		BaseURL:        baseURL,
		SpreadsheetID:  testSpreadsheet,
		MaxConcurrency: 2,
		Retry:          resilience.RetryPolicy{MaxRetries: retries, Backoff: time.Millisecond},
		CircuitBreaker: breaker,
		Logger:         logging.NewNop(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func sheetsHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/spreadsheets/" + testSpreadsheet:
			if got := r.URL.Query().Get("fields"); got != "sheets.properties.title" {
				t.Errorf("unexpected fields param %q", got)
			}
			_, _ = w.Write([]byte(`{"sheets":[{"properties":{"title":"울산 HD"}},{"properties":{"title":"Kim's XI"}}]}`))
		case "/spreadsheets/" + testSpreadsheet + "/values/'울산 HD'":
			if got := r.URL.Query().Get("valueRenderOption"); got != "UNFORMATTED_VALUE" {
				t.Errorf("unexpected render option %q", got)
			}
			_, _ = w.Write([]byte(`{"range":"'울산 HD'!A1:Z3","majorDimension":"ROWS","values":[
				["이름","포지션","라운드","FKL 포인트","득점"],
				["주민규","FW",1,8.5,1],
				[],
				["이청용","MF",1]
			]}`))
		case "/spreadsheets/" + testSpreadsheet + "/values/'Kim''s XI'":
			_, _ = w.Write([]byte(`{"range":"'Kim''s XI'!A1:Z1","majorDimension":"ROWS"}`))
		default:
			http.NotFound(w, r)
		}
	}
}

func TestFetchTeams_MapsWorksheetsInOrder(t *testing.T) {
	server := httptest.NewServer(sheetsHandler(t))
	defer server.Close()

	client := newTestClient(t, server.URL, 0, resilience.BreakerConfig{})
	tables, err := client.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("fetch teams: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	if tables[0].Team != "울산 HD" || tables[1].Team != "Kim's XI" {
		t.Fatalf("unexpected team order: %q, %q", tables[0].Team, tables[1].Team)
	}

	rows := tables[0].Rows
	if len(rows) != 2 {
		t.Fatalf("blank rows must be skipped, got %d rows", len(rows))
	}
	if rows[1][roundstat.FieldGoals] != "" {
		t.Fatalf("short rows must be padded, got %#v", rows[1])
	}

	ds := roundstat.Normalize(tables)
	if ds[0].Name != "주민규" || ds[0].Stats.Points != 8 || ds[0].Stats.Goals != 1 || ds[0].Round != "1" {
		t.Fatalf("unexpected normalized record: %+v", ds[0])
	}
	if len(tables[1].Rows) != 0 {
		t.Fatalf("empty worksheet must give no rows, got %d", len(tables[1].Rows))
	}
}

func TestFetchTeams_RetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	handler := sheetsHandler(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "backend error", http.StatusServiceUnavailable)
			return
		}
		handler(w, r)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 2, resilience.BreakerConfig{})
	if _, err := client.FetchTeams(context.Background()); err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
}

func TestFetchTeams_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":{"code":403,"message":"caller does not have permission"}}`, http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 3, resilience.BreakerConfig{})
	_, err := client.FetchTeams(context.Background())
	if err == nil || !strings.Contains(err.Error(), "status=403") {
		t.Fatalf("expected status error, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single attempt, got %d", calls.Load())
	}
}

func TestFetchTeams_BreakerOpensAfterTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 0, resilience.BreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		if _, err := client.FetchTeams(context.Background()); err == nil {
			t.Fatalf("attempt %d: expected failure", i)
		}
	}

	_, err := client.FetchTeams(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected dependency unavailable, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("open breaker must short-circuit, got %d calls", calls.Load())
	}
}

func TestNewClient_RequiresSpreadsheetID(t *testing.T) {
	if _, err := NewClient(ClientConfig{SpreadsheetID: "  "}); err == nil {
		t.Fatalf("expected error for missing spreadsheet id")
	}
}

func TestQuoteSheetTitle(t *testing.T) {
	if got := quoteSheetTitle("Kim's XI"); got != "'Kim''s XI'" {
		t.Fatalf("unexpected range: %s", got)
	}
}
