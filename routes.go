package dashgate

import "github.com/go-playground/errors/v5"

// Requirement declares which deployment mode a route belongs to.
type Requirement string

const (
	// PublicOnly views exist exclusively on the public domain.
	PublicOnly Requirement = "publicOnly"

	// PrivateOnly views exist exclusively on the private domain and require a session.
	PrivateOnly Requirement = "privateOnly"

	// PrivateEntry views exist exclusively on the private domain but render
	// without a session. The login view must be reachable anonymously or the
	// redirect it is the target of would loop.
	PrivateEntry Requirement = "privateEntry"

	// Either views render on both surfaces without a session.
	Either Requirement = "either"
)

// Route is one entry in the declarative route table.
type Route struct {
	ID          string
	Path        string
	Requirement Requirement
}

// Route identifiers for the dashboard views.
const (
	RouteCapital      = "capital"
	RouteDeposit      = "deposit"
	RouteInvest       = "invest"
	RouteLogin        = "login"
	RouteBacktest     = "backtest"
	RouteWithdraw     = "withdraw"
	RouteTransactions = "transactions"
)

// DefaultRoutes is the route table for the capital dashboard.
func DefaultRoutes() []Route {
	return []Route{
		{ID: RouteCapital, Path: "/", Requirement: Either},
		{ID: RouteDeposit, Path: "/deposit", Requirement: Either},
		{ID: RouteInvest, Path: "/invest", Requirement: PublicOnly},
		{ID: RouteLogin, Path: "/login", Requirement: PrivateEntry},
		{ID: RouteBacktest, Path: "/backtest", Requirement: PrivateOnly},
		{ID: RouteWithdraw, Path: "/withdraw", Requirement: PrivateOnly},
		{ID: RouteTransactions, Path: "/transactions", Requirement: PrivateOnly},
	}
}

// RouteTable maps request paths to their declared requirement. It replaces
// per-view string comparisons: the gate consults it once per navigation.
type RouteTable struct {
	byPath      map[string]Route
	defaultPath string
	loginPath   string
}

// NewRouteTable builds a route table. defaultID names the view unauthorized
// navigations are redirected to; loginID names the login view.
func NewRouteTable(routes []Route, defaultID, loginID string) (*RouteTable, error) {
	t := &RouteTable{
		byPath: make(map[string]Route, len(routes)),
	}
	for _, route := range routes {
		if _, ok := t.byPath[route.Path]; ok {
			return nil, errors.Newf("duplicate route path %q", route.Path)
		}
		t.byPath[route.Path] = route

		switch route.ID {
		case defaultID:
			t.defaultPath = route.Path
		case loginID:
			t.loginPath = route.Path
		}
	}
	if t.defaultPath == "" {
		return nil, errors.Newf("default route %q not found in table", defaultID)
	}
	if t.loginPath == "" {
		return nil, errors.Newf("login route %q not found in table", loginID)
	}

	return t, nil
}

// Lookup returns the route declared for a path. Paths not in the table are
// treated as PrivateOnly, matching the classifier's conservative default.
func (t *RouteTable) Lookup(path string) Route {
	route, ok := t.byPath[path]
	if !ok {
		return Route{ID: path, Path: path, Requirement: PrivateOnly}
	}

	return route
}

// DefaultPath is the path of the default view.
func (t *RouteTable) DefaultPath() string {
	return t.defaultPath
}

// LoginPath is the path of the login view.
func (t *RouteTable) LoginPath() string {
	return t.loginPath
}
