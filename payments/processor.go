package payments

import (
	"context"
	"time"

	"github.com/go-playground/errors/v5"
	"github.com/go-resty/resty/v2"
)

// Processor creates checkout sessions with the external payment processor.
type Processor interface {
	CreateCheckoutSession(ctx context.Context, amountMinorUnits int64, currency string) (checkoutURL string, err error)
}

const processorTimeout = 15 * time.Second

var _ Processor = &ProcessorClient{}

// ProcessorClient is the HTTP client for the processor's session-creation
// endpoint. It never retries: a failed creation is surfaced so the
// orchestrator can fall back, and any fresh attempt is user-initiated.
type ProcessorClient struct {
	rest *resty.Client
}

// NewProcessorClient creates a processor client for the given base URL.
func NewProcessorClient(baseURL string) *ProcessorClient {
	return &ProcessorClient{
		rest: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(processorTimeout),
	}
}

// CreateCheckoutSession asks the processor for a fresh checkout URL.
func (p *ProcessorClient) CreateCheckoutSession(ctx context.Context, amountMinorUnits int64, currency string) (string, error) {
	type request struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	type response struct {
		URL string `json:"url"`
	}

	res := &response{}
	resp, err := p.rest.R().
		SetContext(ctx).
		SetBody(request{Amount: amountMinorUnits, Currency: currency}).
		SetResult(res).
		Post("/checkout/sessions")
	if err != nil {
		return "", errors.Wrap(err, "resty.Request.Post()")
	}

	switch {
	case resp.IsError():
		return "", errors.Newf("payment processor returned %s", resp.Status())
	case res.URL == "":
		return "", errors.New("payment processor returned an empty checkout url")
	}

	return res.URL, nil
}
