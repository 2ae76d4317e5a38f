package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/watchstore-app/backend/internal/auth"
	"github.com/watchstore-app/backend/internal/observability"
	"github.com/watchstore-app/backend/internal/payments"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

var (
	errAmountRequired    = errors.New("Amount is required")
	errAmountNotPositive = errors.New("Amount must be a positive integer")
)

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*auth.Claims, error)
}

type PaymentProvider interface {
	CreateIntent(ctx context.Context, req payments.IntentRequest) (*payments.Intent, error)
}

type Server struct {
	verifier TokenVerifier
	provider PaymentProvider
	router   chi.Router
	logger   *zap.Logger
	metrics  observability.Metrics
}

func New(verifier TokenVerifier, provider PaymentProvider, logger *zap.Logger, metrics observability.Metrics) *Server {
	s := &Server{
		verifier: verifier,
		provider: provider,
		logger:   logger,
		metrics:  metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
	)
	// Public endpoint consumed by the mobile/web client directly.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(ServerTimingApp(s.metrics))

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Post("/payments/intent", s.createPaymentIntent)

	s.router = r
}

type intentRequest struct {
	Amount   json.Number `json:"amount"`
	Currency string      `json:"currency"`
}

type intentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

func (s *Server) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized: Missing token")
		return
	}

	if _, err := s.verifier.Verify(r.Context(), token); err != nil {
		// Logged for audit; the caller only learns the token was rejected.
		s.logger.Warn("id token rejected", zap.Error(err))
		writeError(w, http.StatusUnauthorized, "Unauthorized: Invalid token")
		return
	}

	var req intentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = payments.DefaultCurrency
	}

	start := time.Now()
	intent, err := s.provider.CreateIntent(r.Context(), payments.IntentRequest{
		Amount:   amount,
		Currency: currency,
	})
	durMs := float64(time.Since(start).Microseconds()) / 1000.0
	observability.AppendServerTiming(w, "provider", durMs, "")

	if err != nil {
		s.metrics.ObservePaymentIntent(durMs, false)
		s.logger.Error("payment intent creation failed",
			zap.Int64("amount", amount),
			zap.String("currency", currency),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.metrics.ObservePaymentIntent(durMs, true)
	s.logger.Info("payment intent created",
		zap.String("payment_intent_id", intent.PaymentIntentID),
		zap.Int64("amount", amount),
		zap.String("currency", currency),
	)

	writeJSON(w, http.StatusOK, intentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.PaymentIntentID,
	})
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}

// parseAmount pins the loose ends of the contract: the amount must be a
// JSON number that is a positive integer in minor units. Zero and absent
// amounts share the "required" error; NaN-ish input cannot get this far.
func parseAmount(raw json.Number) (int64, error) {
	if raw.String() == "" {
		return 0, errAmountRequired
	}
	n, err := raw.Int64()
	if err != nil || n < 0 {
		return 0, errAmountNotPositive
	}
	if n == 0 {
		return 0, errAmountRequired
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	return srv.ListenAndServe()
}

func (s *Server) Handler() http.Handler { return s.router }
