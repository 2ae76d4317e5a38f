package payments

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

const DefaultCurrency = "usd"

// Marker attached to every intent so provider-side dashboards can tell
// these requests apart from other integrations.
const integrationMarker = "accept_a_payment"

// IntentRequest is the request-scoped input for one authorization. Amount
// is in currency minor units.
type IntentRequest struct {
	Amount   int64
	Currency string
}

// Intent is the provider's result, passed through to the client verbatim.
type Intent struct {
	ClientSecret    string
	PaymentIntentID string
}

type Provider interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

// StripeProvider creates card-only payment intents through the Stripe API.
// The underlying client is stateless and safe for concurrent use.
type StripeProvider struct {
	api *client.API
}

func NewStripeProvider(secretKey string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.AddMetadata("integration_check", integrationMarker)

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}

	return &Intent{
		ClientSecret:    pi.ClientSecret,
		PaymentIntentID: pi.ID,
	}, nil
}
