package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/OwoSlots_Go/internal/logger"
)

// hasPathPrefix reports whether path falls under any of prefixes
func hasPathPrefix(path string, prefixes []string) bool {
	return slices.ContainsFunc(prefixes, func(p string) bool {
		return strings.HasPrefix(path, p)
	})
}

// AuthMiddleware checks the X-API-Key header on every non-public path
func AuthMiddleware(apiKey string, trustedProxies []string, tracker *ActivityTracker) func(http.Handler) http.Handler {
	want := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hasPathPrefix(r.URL.Path, PublicPaths) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r, trustedProxies)
			failures := tracker.FailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", provided != "",
				"failures", failures)

			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// clientActivity is one client's tally for its current window
type clientActivity struct {
	requests   int
	failedAuth int
}

// ActivityTracker counts requests and failed API key checks per client IP.
// A client's window opens on its first request and lasts RateLimitWindow.
type ActivityTracker struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *clientActivity]
}

// NewActivityTracker creates a tracker holding at most MaxTrackedClients windows
func NewActivityTracker() *ActivityTracker {
	return &ActivityTracker{
		clients: expirable.NewLRU[string, *clientActivity](MaxTrackedClients, nil, RateLimitWindow),
	}
}

// activity returns ip's tally, opening a window if none is live. Caller holds mu.
func (t *ActivityTracker) activity(ip string) *clientActivity {
	if a, ok := t.clients.Get(ip); ok {
		return a
	}
	a := &clientActivity{}
	t.clients.Add(ip, a)
	return a
}

// FailedAuth records a rejected API key and returns the failures in the window
func (t *ActivityTracker) FailedAuth(ip string) int {
	t.mu.Lock()
	a := t.activity(ip)
	a.failedAuth++
	failures := a.failedAuth
	t.mu.Unlock()

	if failures >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", failures)
	}
	return failures
}

// Allow records a request and reports whether ip is still under the rate limit
func (t *ActivityTracker) Allow(ip string) bool {
	t.mu.Lock()
	a := t.activity(ip)
	a.requests++
	requests := a.requests
	t.mu.Unlock()

	if requests <= RateLimitMaxRequests {
		return true
	}
	if requests%RateLimitLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", requests)
	}
	return false
}

// Requests returns the requests ip has made in its current window
func (t *ActivityTracker) Requests(ip string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if a, ok := t.clients.Peek(ip); ok {
		return a.requests
	}
	return 0
}

// RateLimitMiddleware rejects clients over RateLimitMaxRequests per window
func RateLimitMiddleware(trustedProxies []string, tracker *ActivityTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tracker.Allow(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the caller's address. X-Forwarded-For is honoured only when
// the direct peer is a trusted proxy, and then only its last hop.
func clientIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	if i := strings.LastIndexByte(forwarded, ','); i >= 0 {
		forwarded = forwarded[i+1:]
	}
	return strings.TrimSpace(forwarded)
}

// SecurityHeadersMiddleware adds SecurityHeaders to every response
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, sh := range SecurityHeaders {
				h.Set(sh.Name, sh.Value)
			}
			next.ServeHTTP(w, r)
		})
	}
}
