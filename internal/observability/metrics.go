package observability

type Metrics interface {
	ObserveHTTP(method, route string, status int, durMs float64)
	ObservePaymentIntent(durMs float64, ok bool)
	ObserveNotification(kind string, ok bool)
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObservePaymentIntent(float64, bool)       {}
func (Noop) ObserveNotification(string, bool)         {}
