// Package paymentstore persists payment activity for dashboard display.
package paymentstore

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/stripe-autobot/dashgate/payments"

	_ "modernc.org/sqlite"
)

var _ payments.Store = &SQLite{}

// SQLite stores payment sessions and withdrawal requests in a local SQLite
// database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (and migrates) the store at the given file path.
func NewSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "os.MkdirAll()")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "sql.Open()")
	}
	// single connection: SQLite is more stable without writer contention
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return s, nil
}

func (s *SQLite) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS payment_sessions (
	id TEXT PRIMARY KEY,
	amount_minor_units INTEGER NOT NULL,
	currency TEXT NOT NULL,
	checkout_url TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS withdrawal_requests (
	id TEXT PRIMARY KEY,
	amount_minor_units INTEGER NOT NULL,
	currency TEXT NOT NULL,
	holder_name TEXT NOT NULL,
	destination_type TEXT NOT NULL,
	destination_details TEXT NOT NULL,
	subject TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);`

	if _, err := s.db.Exec(schema); err != nil {
		return errors.Wrap(err, "sql.DB.Exec()")
	}

	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.Wrap(err, "sql.DB.Close()")
	}

	return nil
}

// SavePaymentSession records a deposit checkout attempt.
func (s *SQLite) SavePaymentSession(ctx context.Context, session *payments.PaymentSession) error {
	const insert = `INSERT INTO payment_sessions
	(id, amount_minor_units, currency, checkout_url, status, created_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, insert,
		session.ID.String(), session.AmountMinorUnits, session.Currency,
		session.CheckoutURL, string(session.Status), session.CreatedAt.UTC(),
	); err != nil {
		return errors.Wrap(err, "sql.DB.ExecContext()")
	}

	return nil
}

// SaveWithdrawalRequest records a payout instruction outcome.
func (s *SQLite) SaveWithdrawalRequest(ctx context.Context, request *payments.WithdrawalRequest) error {
	const insert = `INSERT INTO withdrawal_requests
	(id, amount_minor_units, currency, holder_name, destination_type, destination_details, subject, status, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, insert,
		request.ID.String(), request.AmountMinorUnits, request.Currency,
		request.HolderName, request.Destination.Type, request.Destination.Details,
		request.Subject, string(request.Status), request.CreatedAt.UTC(),
	); err != nil {
		return errors.Wrap(err, "sql.DB.ExecContext()")
	}

	return nil
}

// PaymentSessions lists recorded deposit checkout attempts, newest first.
func (s *SQLite) PaymentSessions(ctx context.Context) ([]payments.PaymentSession, error) {
	const query = `SELECT id, amount_minor_units, currency, checkout_url, status, created_at
	FROM payment_sessions ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "sql.DB.QueryContext()")
	}
	defer rows.Close()

	var sessions []payments.PaymentSession
	for rows.Next() {
		var (
			session   payments.PaymentSession
			id        string
			status    string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &session.AmountMinorUnits, &session.Currency,
			&session.CheckoutURL, &status, &createdAt); err != nil {
			return nil, errors.Wrap(err, "sql.Rows.Scan()")
		}
		session.ID, err = uuid.FromString(id)
		if err != nil {
			return nil, errors.Wrap(err, "uuid.FromString()")
		}
		session.Status = payments.PaymentStatus(status)
		session.CreatedAt = createdAt
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "sql.Rows.Err()")
	}

	return sessions, nil
}

// WithdrawalRequests lists recorded payout instructions, newest first.
func (s *SQLite) WithdrawalRequests(ctx context.Context) ([]payments.WithdrawalRequest, error) {
	const query = `SELECT id, amount_minor_units, currency, holder_name, destination_type, destination_details, subject, status, created_at
	FROM withdrawal_requests ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "sql.DB.QueryContext()")
	}
	defer rows.Close()

	var requests []payments.WithdrawalRequest
	for rows.Next() {
		var (
			request   payments.WithdrawalRequest
			id        string
			status    string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &request.AmountMinorUnits, &request.Currency,
			&request.HolderName, &request.Destination.Type, &request.Destination.Details,
			&request.Subject, &status, &createdAt); err != nil {
			return nil, errors.Wrap(err, "sql.Rows.Scan()")
		}
		request.ID, err = uuid.FromString(id)
		if err != nil {
			return nil, errors.Wrap(err, "uuid.FromString()")
		}
		request.Status = payments.WithdrawalStatus(status)
		request.CreatedAt = createdAt
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "sql.Rows.Err()")
	}

	return requests, nil
}
