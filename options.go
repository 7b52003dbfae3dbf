package dashgate

import (
	"github.com/go-resty/resty/v2"
	"github.com/stripe-autobot/dashgate/internal/cookie"
)

// SessionOption defines a function signature for setting session manager options.
type SessionOption func(*SessionManager)

// WithLogHandler sets the LogHandler. (default: httpio.Log)
func WithLogHandler(l LogHandler) SessionOption {
	return func(s *SessionManager) {
		s.handle = l
	}
}

// WithCookieHandler replaces the cookie client managing the token slot.
func WithCookieHandler(c cookie.Handler) SessionOption {
	return func(s *SessionManager) {
		s.cookies = c
	}
}

// WithOutboundClient sets the client the identity bearer is attached to.
func WithOutboundClient(rest *resty.Client) SessionOption {
	return func(s *SessionManager) {
		s.outbound = rest
	}
}

// GateOption defines a function signature for setting gate options.
type GateOption func(*Gate)

// WithGateLogHandler sets the LogHandler for the gate. (default: httpio.Log)
func WithGateLogHandler(l LogHandler) GateOption {
	return func(g *Gate) {
		g.handle = l
	}
}
