package cooldown

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Decision is the outcome of a mood-selection attempt. When the selection is
// denied, RetryAfter holds the whole seconds remaining until the next one is
// allowed.
type Decision struct {
	Allowed    bool
	RetryAfter int
}

// Gate enforces a minimum interval between mood selections within one screen
// session. It only throttles the selected-mood state, never journal writes.
type Gate struct {
	interval time.Duration
	last     time.Time
}

func NewGate(interval time.Duration) *Gate {
	return &Gate{interval: interval}
}

// TryRegisterSelection records now as the latest selection instant if at
// least the configured interval has elapsed since the previous one.
func (g *Gate) TryRegisterSelection(now time.Time) Decision {
	if !g.last.IsZero() {
		elapsed := now.Sub(g.last)
		if elapsed < g.interval {
			remaining := int(math.Ceil((g.interval - elapsed).Seconds()))
			return Decision{RetryAfter: remaining}
		}
	}
	g.last = now
	return Decision{Allowed: true}
}

type sessionGate struct {
	gate       *Gate
	lastAccess time.Time
}

// Sessions keeps one Gate per user. Gates are session state, not persisted:
// Reset drops a user's gate (the client leaving the mood screen), and idle
// gates are evicted in the background.
type Sessions struct {
	interval time.Duration

	mu    sync.Mutex
	gates map[uuid.UUID]*sessionGate

	stopCh chan struct{}
}

// NewSessions creates a session registry and starts the idle-gate cleanup
// goroutine. Call Stop on shutdown.
func NewSessions(interval time.Duration) *Sessions {
	s := &Sessions{
		interval: interval,
		gates:    make(map[uuid.UUID]*sessionGate),
		stopCh:   make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

func (s *Sessions) Stop() {
	close(s.stopCh)
}

// TryRegisterSelection applies the cooldown rule to the given user's gate.
func (s *Sessions) TryRegisterSelection(userID uuid.UUID, now time.Time) Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	sg, ok := s.gates[userID]
	if !ok {
		sg = &sessionGate{gate: NewGate(s.interval)}
		s.gates[userID] = sg
	}
	sg.lastAccess = now

	return sg.gate.TryRegisterSelection(now)
}

// Reset discards the user's gate so the next selection is allowed immediately.
func (s *Sessions) Reset(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.gates, userID)
}

func (s *Sessions) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup(time.Now())
		case <-s.stopCh:
			return
		}
	}
}

// cleanup evicts gates idle for more than ten intervals.
func (s *Sessions) cleanup(now time.Time) {
	ttl := 10 * s.interval

	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, sg := range s.gates {
		if now.Sub(sg.lastAccess) > ttl {
			delete(s.gates, userID)
		}
	}
}
