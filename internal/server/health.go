package server

import (
	"sync"
	"time"
)

// HealthStatus is the catalog source state reported by /api/health.
type HealthStatus string

const (
	StatusOK       HealthStatus = "ok"
	StatusDegraded HealthStatus = "degraded"
	StatusFailed   HealthStatus = "failed"
)

// failureThreshold is the number of consecutive read failures after which
// the source is reported failed rather than degraded.
const failureThreshold = 3

// sourceHealth tracks consecutive catalog read failures. Request handlers
// write it concurrently, so fields are guarded by mu.
type sourceHealth struct {
	mu       sync.Mutex
	failures int
	lastErr  string
	lastFail time.Time
}

func (h *sourceHealth) recordSuccess() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures = 0
	h.lastErr = ""
}

func (h *sourceHealth) recordFailure(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures++
	h.lastErr = err.Error()
	h.lastFail = time.Now()
}

// healthReport is the /api/health body.
type healthReport struct {
	Status    HealthStatus `json:"status"`
	Source    string       `json:"source,omitempty"`
	Failures  int          `json:"failures,omitempty"`
	LastError string       `json:"lastError,omitempty"`
	LastFail  *time.Time   `json:"lastFailure,omitempty"`
}

// snapshot returns a consistent copy of the health fields.
func (h *sourceHealth) snapshot(source string) healthReport {
	h.mu.Lock()
	defer h.mu.Unlock()

	r := healthReport{Status: StatusOK, Source: source}
	if h.failures == 0 {
		return r
	}
	r.Status = StatusDegraded
	if h.failures >= failureThreshold {
		r.Status = StatusFailed
	}
	r.Failures = h.failures
	r.LastError = h.lastErr
	at := h.lastFail
	r.LastFail = &at
	return r
}
