package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"TrendPull/internal/channel"
	icache "TrendPull/internal/service/cache"
	"TrendPull/internal/usecase"
	xlogger "TrendPull/pkg/logger"

	"github.com/labstack/echo/v4"
)

type noopMetrics struct{}

func (noopMetrics) RecordAnalysis(string, float64) {}
func (noopMetrics) RecordSignal(string, float64)   {}
func (noopMetrics) RecordError(string)             {}
func (noopMetrics) RecordCacheLookup(bool)         {}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	logger, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	uc := usecase.NewChannelUseCase(channel.NewEngine(), icache.NewTTLCache(), noopMetrics{}, logger, time.Minute)

	e := echo.New()
	NewChannelHandler(logger, uc, nil).RegisterRoutes(e)
	return e
}

func postChannel(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/channel", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := postChannel(e, `{"symbol":"AAPL","prices":[1,2,3,4,5]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Status int `json:"status"`
		Data   struct {
			Symbol     string  `json:"symbol"`
			Signal     string  `json:"signal"`
			Strength   float64 `json:"strength"`
			Slope      float64 `json:"slope"`
			Equation   string  `json:"equation"`
			Multiplier float64 `json:"multiplier"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Status != http.StatusOK {
		t.Fatalf("envelope status=%d, want 200", envelope.Status)
	}
	d := envelope.Data
	if d.Symbol != "AAPL" || d.Signal != "HOLD" {
		t.Fatalf("data=%+v, want AAPL/HOLD", d)
	}
	if d.Equation != "y = +1.0000x +1.00" {
		t.Fatalf("equation=%q", d.Equation)
	}
	if d.Multiplier != 2 {
		t.Fatalf("multiplier=%v, want defaulted 2", d.Multiplier)
	}
}

func TestAnalyzeEndpointValidation(t *testing.T) {
	e := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing prices", `{"symbol":"AAPL"}`},
		{"single price", `{"prices":[42]}`},
		{"negative multiplier", `{"prices":[1,2,3],"multiplier":-1}`},
		{"multiplier too large", `{"prices":[1,2,3],"multiplier":11}`},
		{"malformed json", `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postChannel(e, tc.body)
			var envelope struct {
				Status int `json:"status"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if envelope.Status != http.StatusBadRequest {
				t.Fatalf("envelope status=%d, want 400: %s", envelope.Status, rec.Body.String())
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("body=%v, want status ok", body)
	}
}
