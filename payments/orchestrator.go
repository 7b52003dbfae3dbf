// Package payments orchestrates deposit checkout sessions and withdrawal
// requests for the capital dashboard. It is independent of the access gate:
// the public surface permits deposits without a session.
package payments

import (
	"context"
	"strings"
	"time"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/stripe-autobot/dashgate/sessioninfo"
)

// Orchestrator validates money-movement requests before any network call and
// submits them to the external processor and payout services.
type Orchestrator struct {
	processor Processor
	payouts   PayoutService
	store     Store
	handle    LogHandler

	// fallbackCheckoutURL is the pre-provisioned static checkout link handed
	// out when a fresh session cannot be created. Depositing stays available
	// in that degraded state.
	fallbackCheckoutURL string

	// accountCurrency is the currency withdrawals settle in.
	accountCurrency string
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(processor Processor, payouts PayoutService, store Store, options ...Option) *Orchestrator {
	o := &Orchestrator{
		processor:       processor,
		payouts:         payouts,
		store:           store,
		handle:          httpio.Log,
		accountCurrency: "eur",
	}
	for _, opt := range options {
		opt(o)
	}

	return o
}

// CreateDeposit validates the deposit and asks the processor for a checkout
// session. Invalid input fails fast with no network round-trip. Each call
// creates a new PaymentSession: deduplication and idempotency belong to the
// processor. A failed creation is never retried here; a fresh attempt is a
// fresh user click.
func (o *Orchestrator) CreateDeposit(ctx context.Context, amountMinorUnits int64, currency string) (*PaymentSession, error) {
	if amountMinorUnits <= 0 {
		return nil, httpio.NewBadRequestMessage("deposit amount must be a positive number of minor units")
	}
	currency = strings.ToLower(strings.TrimSpace(currency))
	if !SupportedCurrency(currency) {
		return nil, httpio.NewBadRequestMessagef("unsupported currency %q", currency)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "uuid.NewV4()")
	}
	session := &PaymentSession{
		ID:               id,
		AmountMinorUnits: amountMinorUnits,
		Currency:         currency,
		Status:           StatusCreated,
		CreatedAt:        time.Now(),
	}

	checkoutURL, err := o.processor.CreateCheckoutSession(ctx, amountMinorUnits, currency)
	switch {
	case err == nil:
		session.CheckoutURL = checkoutURL
	case o.fallbackCheckoutURL != "":
		// Degraded but available: hand out the static link instead of
		// blocking the deposit entirely.
		logger.Ctx(ctx).Errorf("creating checkout session, using fallback link: %v", err)
		session.CheckoutURL = o.fallbackCheckoutURL
	default:
		session.Status = StatusFailed
		o.record(ctx, session)

		return nil, errors.Wrap(err, "Processor.CreateCheckoutSession()")
	}

	o.record(ctx, session)

	return session, nil
}

// SubmitWithdrawal validates the payout instruction and submits it. Invalid
// input returns immediately with no side effects. On a failure to send, the
// returned request remains Draft: it never transitions to Submitted unless
// the payout service actually received it.
func (o *Orchestrator) SubmitWithdrawal(ctx context.Context, amountMinorUnits int64, holderName string, destination Destination) (*WithdrawalRequest, error) {
	holderName = strings.TrimSpace(holderName)

	switch {
	case amountMinorUnits <= 0:
		return nil, httpio.NewBadRequestMessage("withdrawal amount must be a positive number of minor units")
	case holderName == "":
		return nil, httpio.NewBadRequestMessage("account holder name is required")
	case strings.TrimSpace(destination.Details) == "":
		return nil, httpio.NewBadRequestMessage("destination account is required")
	}
	if destination.Type == "" {
		destination.Type = "iban"
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "uuid.NewV4()")
	}
	request := &WithdrawalRequest{
		ID:               id,
		AmountMinorUnits: amountMinorUnits,
		Currency:         o.accountCurrency,
		HolderName:       holderName,
		Destination:      destination,
		Subject:          sessioninfo.SubjectFromCtx(ctx),
		Status:           StatusDraft,
		CreatedAt:        time.Now(),
	}

	res, err := o.payouts.SubmitPayout(ctx, &PayoutRequest{
		Amount:            amountMinorUnits,
		Currency:          o.accountCurrency,
		Destination:       destination,
		AccountHolderName: holderName,
	})
	if err != nil {
		return request, httpio.NewServiceUnavailableMessageWithError(err, "withdrawal service unavailable, try again later")
	}

	switch strings.ToLower(res.Status) {
	case "accepted":
		request.Status = StatusAccepted
	case "rejected":
		request.Status = StatusRejected
	default:
		request.Status = StatusSubmitted
	}

	o.record(ctx, request)

	return request, nil
}

// record persists the outcome for display. Failure to record is logged, not
// surfaced: the money movement already happened and must be reported to the
// caller.
func (o *Orchestrator) record(ctx context.Context, outcome any) {
	if o.store == nil {
		return
	}

	var err error
	switch v := outcome.(type) {
	case *PaymentSession:
		err = o.store.SavePaymentSession(ctx, v)
	case *WithdrawalRequest:
		err = o.store.SaveWithdrawalRequest(ctx, v)
	}
	if err != nil {
		logger.Ctx(ctx).Errorf("recording payment outcome: %v", err)
	}
}

// Option defines a function signature for setting orchestrator options.
type Option func(*Orchestrator)

// WithLogHandler sets the LogHandler. (default: httpio.Log)
func WithLogHandler(l LogHandler) Option {
	return func(o *Orchestrator) {
		o.handle = l
	}
}

// WithFallbackCheckoutURL sets the static checkout link used when the
// processor cannot create a fresh session.
func WithFallbackCheckoutURL(url string) Option {
	return func(o *Orchestrator) {
		o.fallbackCheckoutURL = url
	}
}

// WithAccountCurrency sets the currency withdrawals settle in. (default: eur)
func WithAccountCurrency(currency string) Option {
	return func(o *Orchestrator) {
		o.accountCurrency = strings.ToLower(currency)
	}
}
