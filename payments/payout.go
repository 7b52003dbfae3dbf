package payments

import (
	"context"
	"time"

	"github.com/go-playground/errors/v5"
	"github.com/go-resty/resty/v2"
)

// PayoutRequest is the wire form of a withdrawal submission.
type PayoutRequest struct {
	Amount            int64       `json:"amount"`
	Currency          string      `json:"currency"`
	Destination       Destination `json:"destination"`
	AccountHolderName string      `json:"accountHolderName"`
}

// PayoutResponse is the payout service's verdict on a submission.
type PayoutResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// PayoutService submits withdrawal requests to the external payout endpoint.
type PayoutService interface {
	SubmitPayout(ctx context.Context, req *PayoutRequest) (*PayoutResponse, error)
}

const payoutTimeout = 20 * time.Second

var _ PayoutService = &PayoutClient{}

// PayoutClient is the HTTP client for the payout endpoint. The endpoint is a
// defined contract; a client constructed with the SessionManager's outbound
// client carries the operator identity on every submission. Requests use
// absolute URLs so the shared client's base URL is never touched.
type PayoutClient struct {
	rest    *resty.Client
	baseURL string
}

// NewPayoutClient creates a payout client for the given base URL. Pass the
// SessionManager's outbound client so submissions carry the operator identity
// when a session exists; pass nil for an anonymous client.
func NewPayoutClient(baseURL string, rest *resty.Client) *PayoutClient {
	if rest == nil {
		rest = resty.New().SetTimeout(payoutTimeout)
	}

	return &PayoutClient{
		rest:    rest,
		baseURL: baseURL,
	}
}

// SubmitPayout sends the withdrawal to the payout endpoint.
func (p *PayoutClient) SubmitPayout(ctx context.Context, req *PayoutRequest) (*PayoutResponse, error) {
	res := &PayoutResponse{}
	resp, err := p.rest.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(res).
		Post(p.baseURL + "/payouts")
	if err != nil {
		return nil, errors.Wrap(err, "resty.Request.Post()")
	}
	if resp.IsError() {
		return nil, errors.Newf("payout service returned %s", resp.Status())
	}

	return res, nil
}
