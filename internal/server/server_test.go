package server

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/OwoSlots_Go/internal/event"
	"github.com/osse101/OwoSlots_Go/internal/handler"
	"github.com/osse101/OwoSlots_Go/internal/ledger"
	"github.com/osse101/OwoSlots_Go/internal/slots"
	"github.com/osse101/OwoSlots_Go/internal/sse"
	"github.com/osse101/OwoSlots_Go/internal/stats"
)

func newTestServer(t *testing.T, apiKey string) (*Server, *ledger.Ledger, *sse.Hub) {
	t.Helper()
	engine, err := slots.NewEngine(slots.WithRandomSource(slots.NewSequenceSource(0.48)))
	require.NoError(t, err)
	bus := event.NewMemoryBus()
	sessionStats := stats.NewService(slots.RuleOwOJackpot)
	stats.NewEventHandler(sessionStats).Register(bus)
	l, err := ledger.New(engine, ledger.DefaultLimits(), ledger.WithPublisher(bus))
	require.NoError(t, err)

	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)

	srv := NewServer(Config{
		Port:           0,
		APIKey:         apiKey,
		AllowedOrigins: []string{"http://localhost:5173"},
		ServiceName:    "owo-slots",
	}, Dependencies{
		Ledger:      l,
		Machine:     engine,
		Idempotency: handler.NewIdempotencyCache(8, time.Minute),
		Hub:         hub,
		Stats:       sessionStats,
	})
	return srv, l, hub
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Routes(t *testing.T) {
	srv, l, _ := newTestServer(t, "")
	h := srv.Handler()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		want   string
	}{
		{"healthz", http.MethodGet, "/healthz", "", http.StatusOK, `"status":"ok"`},
		{"readyz", http.MethodGet, "/readyz", "", http.StatusOK, `"status":"ok"`},
		{"version", http.MethodGet, "/version", "", http.StatusOK, `"service":"owo-slots"`},
		{"balance", http.MethodGet, "/api/v1/balance", "", http.StatusOK, `"balance":10000`},
		{"paytable", http.MethodGet, "/api/v1/paytable", "", http.StatusOK, `"expected_return":"0.95"`},
		{"presets", http.MethodGet, "/api/v1/wager/presets", "", http.StatusOK, `"label":"all in"`},
		{"clamp", http.MethodPost, "/api/v1/wager/clamp", `{"wager":0}`, http.StatusOK, `"clamped":true`},
		{"spin", http.MethodPost, "/api/v1/slots/spin", `{"wager":100}`, http.StatusOK, `"balance":10900`},
		{"simulate", http.MethodPost, "/api/v1/slots/simulate", `{"wager":100,"count":2}`, http.StatusOK, `"spins_run":2`},
		{"stats", http.MethodGet, "/api/v1/stats", "", http.StatusOK, `"total_spins":3`},
		{"adjust", http.MethodPost, "/api/v1/balance/adjust", `{"delta":-100}`, http.StatusOK, `"message":"Balance adjusted by -100.`},
		{"set", http.MethodPost, "/api/v1/balance/set", `{"amount":5000}`, http.StatusOK, `"message":"Balance set to 5,000."`},
		{"history", http.MethodGet, "/api/v1/history?limit=1", "", http.StatusOK, `"kind":"set"`},
		{"stats reset", http.MethodPost, "/api/v1/stats/reset", "", http.StatusOK, `"total_spins":0`},
		{"unknown route", http.MethodGet, "/api/v1/nope", "", http.StatusNotFound, ""},
		{"wrong method", http.MethodGet, "/api/v1/slots/spin", "", http.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body, nil)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}

	assert.Equal(t, int64(5000), l.Balance())
	assert.Equal(t, HeaderValueNoSniff, do(t, h, http.MethodGet, "/healthz", "", nil).Header().Get(HeaderContentTypeOptions))
}

func TestServer_APIKey(t *testing.T) {
	srv, _, _ := newTestServer(t, "s3cret")
	h := srv.Handler()

	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/api/v1/balance", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/v1/balance", "", map[string]string{HeaderAPIKey: "s3cret"}).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz", "", nil).Code)
}

func TestServer_CORSPreflight(t *testing.T) {
	srv, _, _ := newTestServer(t, "s3cret")

	rec := do(t, srv.Handler(), http.MethodOptions, "/api/v1/slots/spin", "", map[string]string{
		"Origin":                         "http://localhost:5173",
		"Access-Control-Request-Method":  http.MethodPost,
		"Access-Control-Request-Headers": "Content-Type, X-API-Key, Idempotency-Key",
	})

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_EventStreamSeesSpins(t *testing.T) {
	srv, _, hub := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/v1/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	hub.Broadcast(sse.EventTypeBalanceChanged, sse.BalancePayload{Balance: 42})

	reader := bufio.NewReader(resp.Body)
	deadline := time.After(2 * time.Second)
	lines := make(chan string, 64)
	go func() {
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				close(lines)
				return
			}
			lines <- line
		}
	}()
	for {
		select {
		case line, ok := <-lines:
			require.True(t, ok, "stream closed early")
			if strings.HasPrefix(line, "event: "+sse.EventTypeBalanceChanged) {
				return
			}
		case <-deadline:
			t.Fatal("balance event never arrived")
		}
	}
}
