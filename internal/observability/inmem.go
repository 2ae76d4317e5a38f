package observability

import "sync"

type observe struct {
	Kind          string
	Method, Route string
	Status        int
	Dur           float64
	OK            bool
}

// Inmem keeps a bounded ring of recent observations plus running totals.
// Good enough for a debug endpoint or a test; not a metrics backend.
type Inmem struct {
	mu     sync.Mutex
	last   []*observe
	max    int
	totals struct {
		notificationsSent, notificationsFailed int
	}
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v *observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[1:]
	}
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(&observe{
		Kind:   "http",
		Method: method,
		Route:  route,
		Status: status,
		Dur:    durMs,
	})
}

func (m *Inmem) ObservePaymentIntent(durMs float64, ok bool) {
	m.push(&observe{
		Kind: "payment_intent",
		Dur:  durMs,
		OK:   ok,
	})
}

func (m *Inmem) ObserveNotification(kind string, ok bool) {
	m.push(&observe{
		Kind:  "notification",
		Route: kind,
		OK:    ok,
	})
	m.mu.Lock()
	if ok {
		m.totals.notificationsSent++
	} else {
		m.totals.notificationsFailed++
	}
	m.mu.Unlock()
}

// NotificationTotals reports sent/failed counters since process start.
func (m *Inmem) NotificationTotals() (sent, failed int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.notificationsSent, m.totals.notificationsFailed
}
