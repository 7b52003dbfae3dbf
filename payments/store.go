package payments

import "context"

// Store records resulting payment sessions and withdrawal requests for
// display. Records are written only after the external call resolves; a
// withdrawal that never left Draft is not recorded.
type Store interface {
	SavePaymentSession(ctx context.Context, session *PaymentSession) error
	SaveWithdrawalRequest(ctx context.Context, request *WithdrawalRequest) error
	PaymentSessions(ctx context.Context) ([]PaymentSession, error)
	WithdrawalRequests(ctx context.Context) ([]WithdrawalRequest, error)
}
