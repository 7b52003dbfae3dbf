package payments

import (
	"time"

	"github.com/gofrs/uuid"
)

// PaymentStatus is the lifecycle state of a deposit checkout attempt.
type PaymentStatus string

const (
	// StatusCreated means a checkout URL is ready for the browser to navigate to.
	StatusCreated PaymentStatus = "created"

	// StatusRedirected means the browser has navigated away to the processor.
	StatusRedirected PaymentStatus = "redirected"

	// StatusFailed means no checkout URL could be produced.
	StatusFailed PaymentStatus = "failed"
)

// WithdrawalStatus is the lifecycle state of a payout instruction.
type WithdrawalStatus string

const (
	// StatusDraft is a withdrawal built and validated client-side, not yet sent.
	StatusDraft WithdrawalStatus = "draft"

	// StatusSubmitted is a withdrawal accepted for processing but not yet settled.
	StatusSubmitted WithdrawalStatus = "submitted"

	// StatusAccepted is a terminal state reported by the payout service.
	StatusAccepted WithdrawalStatus = "accepted"

	// StatusRejected is a terminal state reported by the payout service.
	StatusRejected WithdrawalStatus = "rejected"
)

// PaymentSession is a server-issued handle representing one deposit checkout
// attempt. Its lifetime ends when the browser navigates away to the processor
// or creation fails.
type PaymentSession struct {
	ID               uuid.UUID     `json:"id"`
	AmountMinorUnits int64         `json:"amountMinorUnits"`
	Currency         string        `json:"currency"`
	CheckoutURL      string        `json:"checkoutUrl"`
	Status           PaymentStatus `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// Destination is the bank destination of a withdrawal: an IBAN or an
// equivalent account identifier.
type Destination struct {
	Type    string `json:"type"`
	Details string `json:"details"`
}

// WithdrawalRequest is a client-initiated payout instruction pending
// acceptance by the external service.
type WithdrawalRequest struct {
	ID               uuid.UUID        `json:"id"`
	AmountMinorUnits int64            `json:"amountMinorUnits"`
	Currency         string           `json:"currency"`
	HolderName       string           `json:"accountHolderName"`
	Destination      Destination      `json:"destination"`
	Subject          string           `json:"subject,omitempty"`
	Status           WithdrawalStatus `json:"status"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// supportedCurrencies are the checkout currencies the processor account accepts.
var supportedCurrencies = map[string]bool{
	"eur": true,
	"usd": true,
	"gbp": true,
}

// SupportedCurrency reports whether a currency code can be charged.
func SupportedCurrency(currency string) bool {
	return supportedCurrencies[currency]
}
