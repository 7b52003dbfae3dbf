// Package capital fetches the operator's capital snapshot and transaction
// history from the external data endpoint.
package capital

import (
	"context"
	"net/http"

	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
)

// name is the tracer name used for spans emitted by this package.
const name = "github.com/stripe-autobot/dashgate/capital"

// Snapshot is the capital state reported by the data endpoint.
type Snapshot struct {
	InitialCapital      decimal.Decimal `json:"initial_capital"`
	CurrentCapital      decimal.Decimal `json:"current_capital"`
	Profit              decimal.Decimal `json:"profit"`
	ROI                 decimal.Decimal `json:"roi"`
	TradingAllocation   decimal.Decimal `json:"trading_allocation"`
	EcommerceAllocation decimal.Decimal `json:"ecommerce_allocation"`
	Transactions        []Transaction   `json:"transactions"`
}

// Transaction is one entry of the reported history.
type Transaction struct {
	Date   string          `json:"date"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Source string          `json:"source"`
	Status string          `json:"status"`
}

// LogHandler defines the handler signature required for handling logs.
type LogHandler func(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc

// Client is the HTTP client for the data endpoint. Construct it with the
// SessionManager's outbound client so fetches carry the operator identity
// when a session exists; requests use absolute URLs so the shared client's
// base URL is never touched.
type Client struct {
	rest    *resty.Client
	baseURL string
	handle  LogHandler
}

// NewClient creates a capital data client for the given base URL.
func NewClient(baseURL string, rest *resty.Client, options ...Option) *Client {
	if rest == nil {
		rest = resty.New()
	}
	c := &Client{
		rest:    rest,
		baseURL: baseURL,
		handle:  httpio.Log,
	}
	for _, opt := range options {
		opt(c)
	}

	return c
}

// Fetch returns the current capital snapshot.
func (c *Client) Fetch(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(snap).
		Get(c.baseURL + "/capital")
	if err != nil {
		return nil, errors.Wrap(err, "resty.Request.Get()")
	}
	if resp.IsError() {
		return nil, errors.Newf("data endpoint returned %s", resp.Status())
	}

	return snap, nil
}

// Snapshot is a handler proxying the capital snapshot to the dashboard.
func (c *Client) Snapshot() http.HandlerFunc {
	return c.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Client.Snapshot()")
		defer span.End()

		snap, err := c.Fetch(ctx)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(snap)
	})
}

// Option defines a function signature for setting client options.
type Option func(*Client)

// WithLogHandler sets the LogHandler. (default: httpio.Log)
func WithLogHandler(l LogHandler) Option {
	return func(c *Client) {
		c.handle = l
	}
}
