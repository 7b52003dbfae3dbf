// Package sessioninfo carries the authenticated identity and its validity window.
package sessioninfo

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// ctxKey is a type for storing values in the request context
type ctxKey string

// CtxSession is the key used to store the Session in the context.
const CtxSession ctxKey = "session"

// Role is the role claim issued by the credential service.
type Role string

const (
	// RoleAdmin grants full control of the dashboard.
	RoleAdmin Role = "admin"

	// RoleUser grants the standard operator surface.
	RoleUser Role = "user"
)

// Session is the authenticated identity derived from a bearer token.
//
// A Session is never mutated in place. Expiry transitions replace it with
// absent; a new login installs a complete replacement.
type Session struct {
	Subject   string
	Role      Role
	Claims    map[string]any
	ExpiresAt time.Time
}

// Valid reports whether the session is within its validity window.
func (s *Session) Valid(now time.Time) bool {
	return s != nil && now.Before(s.ExpiresAt)
}

// NewCtx returns a context carrying the session.
func NewCtx(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, CtxSession, sess)
}

// FromRequest returns the session from the request context.
func FromRequest(r *http.Request) *Session {
	return FromCtx(r.Context())
}

// FromCtx returns the session from the context.
func FromCtx(ctx context.Context) *Session {
	sess, ok := ctx.Value(CtxSession).(*Session)
	if !ok {
		panic(fmt.Sprintf("failed to find %s in request context", CtxSession))
	}

	return sess
}

// SubjectFromCtx returns the session subject, or an empty string when no
// session is present. Anonymous callers are a normal state for public
// surfaces, so absence is not an error.
func SubjectFromCtx(ctx context.Context) string {
	sess, ok := ctx.Value(CtxSession).(*Session)
	if !ok || sess == nil {
		return ""
	}

	return sess.Subject
}
