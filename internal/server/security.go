package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BrandishRPG_Go/internal/logger"
)

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthMiddleware requires the X-API-Key header on everything outside PublicPaths
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	want := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := extractIP(r, trustedProxies)
			detector.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"has_key", provided != "")
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipWindow counts one address's activity since its first request in the window
type ipWindow struct {
	requests int
	failures int
}

// SuspiciousActivityDetector counts requests and failed logins per IP over
// DetectorWindow. Each IP's window starts at its first request and the table
// is bounded by DetectorMaxTrackedIPs, so a scan from many addresses cannot
// grow it without limit.
type SuspiciousActivityDetector struct {
	mu      sync.Mutex
	windows *expirable.LRU[string, *ipWindow]
	limit   int
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return newDetector(MaxRequestsPerWindow, DetectorWindow)
}

func newDetector(limit int, window time.Duration) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		windows: expirable.NewLRU[string, *ipWindow](DetectorMaxTrackedIPs, nil, window),
		limit:   limit,
	}
}

// window returns ip's live window, opening one when absent. Caller holds mu.
func (s *SuspiciousActivityDetector) window(ip string) *ipWindow {
	if w, ok := s.windows.Get(ip); ok {
		return w
	}
	w := &ipWindow{}
	s.windows.Add(ip, w)
	return w
}

// RecordFailedAuth counts a rejected API key and alerts once the count reaches FailedAuthAlertCount
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	w := s.window(ip)
	w.failures++
	failures := w.failures
	s.mu.Unlock()

	if failures >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", failures)
	}
}

// FailedAuths reports the failures counted for ip in its current window
func (s *SuspiciousActivityDetector) FailedAuths(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.windows.Peek(ip); ok {
		return w.failures
	}
	return 0
}

// RecordRequest counts a request and reports whether ip is still under the limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	w := s.window(ip)
	w.requests++
	count := w.requests
	s.mu.Unlock()

	if count <= s.limit {
		return true
	}
	if count%HighRateLogEveryNthHit == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false
}

// RateLimitMiddleware answers 429 once an IP exceeds the detector's limit
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				w.Header().Set("Retry-After", RetryAfterSeconds)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the peer address, or the rightmost X-Forwarded-For hop
// when the peer is a trusted proxy
func extractIP(r *http.Request, trustedProxies []string) string {
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
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// securityHeaders are set on every response
var securityHeaders = [][2]string{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueDeny},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
	{HeaderCacheControl, HeaderValueNoStore},
}

func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, h := range securityHeaders {
				w.Header().Set(h[0], h[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
