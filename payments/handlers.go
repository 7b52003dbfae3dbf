package payments

import (
	"encoding/json"
	"net/http"

	"github.com/cccteam/httpio"
	"go.opentelemetry.io/otel"
)

// name is the tracer name used for spans emitted by this package.
const name = "github.com/stripe-autobot/dashgate/payments"

// LogHandler defines the handler signature required for handling logs.
type LogHandler func(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc

// Deposit is a handler for creating a deposit checkout session. The response
// carries the checkout URL the browser navigates to; issuing the navigation
// marks the session Redirected on the client side.
func (o *Orchestrator) Deposit() http.HandlerFunc {
	type request struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}

	return o.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Orchestrator.Deposit()")
		defer span.End()

		// decode request
		req := &request{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			return httpio.NewEncoder(w).BadRequestMessage(ctx, "invalid request body")
		}

		session, err := o.CreateDeposit(ctx, req.Amount, req.Currency)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(session)
	})
}

// Withdraw is a handler for submitting a withdrawal request.
func (o *Orchestrator) Withdraw() http.HandlerFunc {
	type request struct {
		Amount            int64       `json:"amount"`
		AccountHolderName string      `json:"accountHolderName"`
		Destination       Destination `json:"destination"`
	}

	return o.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Orchestrator.Withdraw()")
		defer span.End()

		// decode request
		req := &request{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			return httpio.NewEncoder(w).BadRequestMessage(ctx, "invalid request body")
		}

		request, err := o.SubmitWithdrawal(ctx, req.Amount, req.AccountHolderName, req.Destination)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(request)
	})
}

// History is a handler listing recorded payment sessions and withdrawal
// requests for display.
func (o *Orchestrator) History() http.HandlerFunc {
	type response struct {
		PaymentSessions    []PaymentSession    `json:"paymentSessions"`
		WithdrawalRequests []WithdrawalRequest `json:"withdrawalRequests"`
	}

	return o.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Orchestrator.History()")
		defer span.End()

		if o.store == nil {
			return httpio.NewEncoder(w).Ok(response{})
		}

		sessions, err := o.store.PaymentSessions(ctx)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}
		withdrawals, err := o.store.WithdrawalRequests(ctx)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(response{
			PaymentSessions:    sessions,
			WithdrawalRequests: withdrawals,
		})
	})
}
