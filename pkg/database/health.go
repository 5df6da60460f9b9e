package database

import (
	"context"
	"sync"
	"time"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status is a point-in-time view of database connectivity.
type Status struct {
	Connected bool      `json:"connected"`
	LastError string    `json:"lastError,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Health tracks whether the database was reachable at the last check.
// It is safe for concurrent use.
type Health struct {
	mu     sync.RWMutex
	pinger Pinger
	status Status
	now    func() time.Time

	observer func(Status)
}

func NewHealth(p Pinger) *Health {
	return &Health{pinger: p, now: time.Now}
}

// Check pings the database and records the outcome.
func (h *Health) Check(ctx context.Context) Status {
	var err error
	if h.pinger == nil {
		err = errNoPool
	} else {
		err = h.pinger.Ping(ctx)
	}
	h.Record(err)
	return h.Status()
}

// OnCheck registers fn to receive every recorded status. Call it before Watch.
func (h *Health) OnCheck(fn func(Status)) {
	h.mu.Lock()
	h.observer = fn
	h.mu.Unlock()
}

// Record stores the outcome of a connectivity attempt made elsewhere.
func (h *Health) Record(err error) {
	h.mu.Lock()
	h.status.CheckedAt = h.now().UTC()
	if err != nil {
		h.status.Connected = false
		h.status.LastError = err.Error()
	} else {
		h.status.Connected = true
		h.status.LastError = ""
	}
	status, observer := h.status, h.observer
	h.mu.Unlock()

	if observer != nil {
		observer(status)
	}
}

func (h *Health) Status() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Watch re-checks connectivity on every tick until ctx is done.
func (h *Health) Watch(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			h.Check(checkCtx)
			cancel()
		}
	}
}

type healthError string

func (e healthError) Error() string { return string(e) }

const errNoPool healthError = "database pool not initialised"
