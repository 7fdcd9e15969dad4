// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Limiter is a fixed-window counter per key. It is safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int
	duration time.Duration
	now      func() time.Time
	done     chan struct{}
	stopOnce sync.Once
}

type window struct {
	count     int
	expiresAt time.Time
}

// New creates a limiter allowing limit requests per key per duration and
// starts its background sweep. Call Stop to end the sweep.
func New(limit int, duration time.Duration) *Limiter {
	l := &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go l.sweepLoop(duration * 2)
	return l
}

// Allow records an attempt for key and reports whether it is within limit.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.After(w.expiresAt) {
		l.windows[key] = &window{count: 1, expiresAt: now.Add(l.duration)}
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// Reset forgets key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// Stop ends the background sweep. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

func (l *Limiter) sweepLoop(every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := l.now()
			for key, w := range l.windows {
				if now.After(w.expiresAt) {
					delete(l.windows, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// ClientIP extracts the client IP from an HTTP request. X-Forwarded-For and
// X-Real-IP are consulted only when trustProxy is set; otherwise any client
// could pick its own key by sending the header.
func ClientIP(r *http.Request, trustProxy bool) string {
	if !trustProxy {
		return remoteIP(r)
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return remoteIP(r)
}

func remoteIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// LoginLimiter throttles admin login attempts per client IP and per
// username, so neither a single host nor a distributed guess against one
// account gets unlimited tries.
type LoginLimiter struct {
	ip         *Limiter
	username   *Limiter
	trustProxy bool
}

// NewLoginLimiter allows limit attempts per window for each IP and each
// username. trustProxy selects how the client IP is derived (see ClientIP).
func NewLoginLimiter(limit int, per time.Duration, trustProxy bool) *LoginLimiter {
	return &LoginLimiter{
		ip:         New(limit, per),
		username:   New(limit, per),
		trustProxy: trustProxy,
	}
}

// ClientIP returns the key the limiter uses for r.
func (ll *LoginLimiter) ClientIP(r *http.Request) string {
	return ClientIP(r, ll.trustProxy)
}

// Check records an attempt and reports whether it may proceed.
func (ll *LoginLimiter) Check(r *http.Request, username string) bool {
	if !ll.ip.Allow(ll.ClientIP(r)) {
		return false
	}
	if key := strings.ToLower(strings.TrimSpace(username)); key != "" {
		return ll.username.Allow(key)
	}
	return true
}

// Succeeded clears the username counter after a successful login.
func (ll *LoginLimiter) Succeeded(username string) {
	if key := strings.ToLower(strings.TrimSpace(username)); key != "" {
		ll.username.Reset(key)
	}
}

// Stop ends both background sweeps.
func (ll *LoginLimiter) Stop() {
	ll.ip.Stop()
	ll.username.Stop()
}
