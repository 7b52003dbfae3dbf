// Package mock holds the generated mocks used by the test suites.
package mock

//go:generate mockgen -package mock_payments -destination mock_payments/mock_payments.go github.com/stripe-autobot/dashgate/payments Processor,PayoutService,Store
