package cookie

// Option defines a function signature for setting cookie client options.
type Option func(*Client)

// WithCookieName sets the cookie name for the token slot.
func WithCookieName(name string) Option {
	return func(c *Client) {
		c.cookieName = name
	}
}

// WithCookieDomain sets the domain for the token slot cookie.
func WithCookieDomain(domain string) Option {
	return func(c *Client) {
		c.domain = domain
	}
}
