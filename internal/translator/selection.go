package translator

import "sync"

// Ticket identifies one request started through a SelectionGuard.
type Ticket struct {
	Fingerprint string
	seq         uint64
}

// SelectionGuard tracks the most recent selection so that a slow response for
// an earlier selection can be recognized and dropped.
type SelectionGuard struct {
	mu     sync.Mutex
	seq    uint64
	active Ticket
}

// Begin records a new selection and returns its ticket.
func (g *SelectionGuard) Begin(fingerprint string) Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	g.active = Ticket{Fingerprint: fingerprint, seq: g.seq}
	return g.active
}

// Current reports whether t is still the latest selection.
func (g *SelectionGuard) Current(t Ticket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active == t
}
