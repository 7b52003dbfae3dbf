package dashgate

import (
	"net/http"

	"github.com/cccteam/httpio"
	"github.com/stripe-autobot/dashgate/sessioninfo"
	"go.opentelemetry.io/otel"
)

// Decision is the per-navigation outcome of combining deployment mode,
// session presence, and a route's access requirement. It is never persisted.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Gate decides, per navigation event, whether a view renders or redirects.
type Gate struct {
	mode     DomainMode
	sessions *SessionManager
	routes   *RouteTable
	handle   LogHandler
}

// NewGate creates a Gate for the deployment mode classified from the serving
// origin at process start.
func NewGate(mode DomainMode, sessions *SessionManager, routes *RouteTable, options ...GateOption) *Gate {
	g := &Gate{
		mode:     mode,
		sessions: sessions,
		routes:   routes,
		handle:   httpio.Log,
	}
	for _, opt := range options {
		opt(g)
	}

	return g
}

// Mode returns the deployment mode the gate was constructed with.
func (g *Gate) Mode() DomainMode {
	return g.mode
}

// Evaluate resolves a route requirement against the gate's deployment mode
// and the session presence visible at this instant. It is re-evaluated on
// every navigation and is side-effect free.
func (g *Gate) Evaluate(requirement Requirement, sessionPresent bool) Decision {
	switch g.mode {
	case ModePublic:
		// Private views never exist on the public surface.
		if requirement == PrivateOnly || requirement == PrivateEntry {
			return Decision{RedirectTo: g.routes.DefaultPath()}
		}

		return Decision{Allow: true}
	default:
		switch requirement {
		case PrivateOnly:
			if !sessionPresent {
				return Decision{RedirectTo: g.routes.LoginPath()}
			}

			return Decision{Allow: true}
		case PublicOnly:
			// Public-only views are exclusive to the public domain.
			return Decision{RedirectTo: g.routes.DefaultPath()}
		default:
			// Either and PrivateEntry render with or without a session.
			return Decision{Allow: true}
		}
	}
}

// Protect gates a view navigation. Session expiry is detected here, lazily at
// evaluation time: there is no background timer to yank a view out from under
// a reader.
func (g *Gate) Protect(next http.Handler) http.Handler {
	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Gate.Protect()")
		defer span.End()

		route := g.routes.Lookup(r.URL.Path)
		sess, present := g.sessions.Load(w, r)

		decision := g.Evaluate(route.Requirement, present)
		if !decision.Allow {
			http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)

			return nil
		}

		if present {
			ctx = sessioninfo.NewCtx(ctx, sess)
		}

		next.ServeHTTP(w, r.WithContext(ctx))

		return nil
	})
}
