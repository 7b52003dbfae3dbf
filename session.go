package dashgate

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/go-resty/resty/v2"
	"github.com/gorilla/securecookie"
	"github.com/stripe-autobot/dashgate/internal/cookie"
	"github.com/stripe-autobot/dashgate/internal/token"
	"github.com/stripe-autobot/dashgate/sessioninfo"
	"go.opentelemetry.io/otel"
)

// CredentialVerifier exchanges operator credentials for a signed session token.
type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, username, password, licenseKey string) (token string, err error)
}

// SessionManager owns the lifecycle of the bearer session token: load from
// the persisted slot, decode, expiry check, issuance via login, teardown via
// logout.
//
// The token slot and the outbound identity bearer are singly-owned by the
// SessionManager; nothing else writes them.
type SessionManager struct {
	creds    CredentialVerifier
	verifier *token.Verifier
	cookies  cookie.Handler
	handle   LogHandler

	// mu guards installs and teardowns so a session transition is atomic:
	// either the full token is installed or nothing changes.
	mu       sync.Mutex
	outbound *resty.Client
}

// NewSessionManager creates a SessionManager.
func NewSessionManager(creds CredentialVerifier, verifier *token.Verifier, secureCookie *securecookie.SecureCookie, options ...SessionOption) *SessionManager {
	s := &SessionManager{
		creds:    creds,
		verifier: verifier,
		cookies:  cookie.NewClient(secureCookie),
		handle:   httpio.Log,
		outbound: resty.New(),
	}
	for _, opt := range options {
		opt(s)
	}

	return s
}

// Load restores the session from the persisted token slot without a network
// round-trip. A missing, malformed, or expired token degrades silently to
// absent and clears the slot: an anonymous visit is a normal, expected state,
// not a fault.
func (s *SessionManager) Load(w http.ResponseWriter, r *http.Request) (sess *sessioninfo.Session, present bool) {
	raw, found := s.cookies.ReadToken(r)
	if !found {
		return nil, false
	}

	sess, err := s.verifier.Decode(raw)
	if err != nil {
		logger.Req(r).Infof("discarding stored token: %v", err)
		s.cookies.ClearToken(w)

		return nil, false
	}

	return sess, true
}

// Login is a handler for authenticating the operator against the external
// credential service. On success the returned token is persisted to the slot
// and attached as the default outbound identity bearer; on failure any prior
// session is left untouched.
func (s *SessionManager) Login() http.HandlerFunc {
	type request struct {
		Username   string `json:"username"`
		Password   string `json:"password"`
		LicenseKey string `json:"licenseKey"`
	}
	type response struct {
		Subject string           `json:"subject"`
		Role    sessioninfo.Role `json:"role"`
	}

	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "SessionManager.Login()")
		defer span.End()

		// decode request
		req := &request{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			return httpio.NewEncoder(w).BadRequestMessage(ctx, "invalid request body")
		}

		bearer, err := s.creds.VerifyCredentials(ctx, req.Username, req.Password, req.LicenseKey)
		if err != nil {
			if httpio.HasUnauthorized(err) {
				return httpio.NewEncoder(w).UnauthorizedMessage(ctx, "invalid credentials")
			}

			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		// decode before install so a bad issuance never replaces a working session
		sess, err := s.verifier.Decode(bearer)
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, errors.Wrap(err, "token.Verifier.Decode()"))
		}

		if err := s.install(w, bearer); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, err)
		}

		return httpio.NewEncoder(w).Ok(response{Subject: sess.Subject, Role: sess.Role})
	})
}

// Logout is a handler which destroys the current session. It is idempotent:
// logging out an already-absent session is a no-op.
func (s *SessionManager) Logout() http.HandlerFunc {
	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		_, span := otel.Tracer(name).Start(r.Context(), "SessionManager.Logout()")
		defer span.End()

		s.teardown(w)

		return httpio.NewEncoder(w).Ok(nil)
	})
}

// Authenticated is the handler that reports if the session is authenticated
func (s *SessionManager) Authenticated() http.HandlerFunc {
	type response struct {
		Authenticated bool             `json:"authenticated"`
		Subject       string           `json:"subject,omitempty"`
		Role          sessioninfo.Role `json:"role,omitempty"`
	}

	return s.handle(func(w http.ResponseWriter, r *http.Request) error {
		_, span := otel.Tracer(name).Start(r.Context(), "SessionManager.Authenticated()")
		defer span.End()

		sess, present := s.Load(w, r)
		if !present {
			return httpio.NewEncoder(w).Ok(response{})
		}

		return httpio.NewEncoder(w).Ok(response{
			Authenticated: true,
			Subject:       sess.Subject,
			Role:          sess.Role,
		})
	})
}

// Attach is middleware that loads the session, when present, into the
// request context. It makes no gating decision: anonymous requests pass
// through unchanged, so ungated endpoints can still see the subject when a
// session exists.
func (s *SessionManager) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, present := s.Load(w, r); present {
			r = r.WithContext(sessioninfo.NewCtx(r.Context(), sess))
		}

		next.ServeHTTP(w, r)
	})
}

// Outbound returns the client carrying the operator's identity header for
// requests to the data and payout endpoints.
func (s *SessionManager) Outbound() *resty.Client {
	return s.outbound
}

func (s *SessionManager) install(w http.ResponseWriter, bearer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cookies.WriteToken(w, bearer); err != nil {
		return errors.Wrap(err, "cookie.Handler.WriteToken()")
	}
	s.outbound.SetAuthToken(bearer)

	return nil
}

func (s *SessionManager) teardown(w http.ResponseWriter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cookies.ClearToken(w)
	s.outbound.SetAuthToken("")
}
