// Package cookie owns the one persisted slot holding the bearer session
// token. The SessionManager is its only writer.
package cookie

import (
	"net/http"

	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
)

var _ Handler = &Client{}

// Client reads and writes the auth token slot as a secure cookie.
type Client struct {
	secureCookie *securecookie.SecureCookie
	cookieName   string
	domain       string
}

// NewClient creates a cookie client around the given SecureCookie codec.
func NewClient(secureCookie *securecookie.SecureCookie, options ...Option) *Client {
	c := &Client{
		secureCookie: secureCookie,
		cookieName:   string(AuthCookieName),
	}
	for _, opt := range options {
		opt(c)
	}

	return c
}

// ReadToken returns the stored bearer token. Absence or decode failure is a
// normal, non-fatal state and reports found=false.
func (c *Client) ReadToken(r *http.Request) (token string, found bool) {
	cookie, err := r.Cookie(c.cookieName)
	if err != nil {
		return "", false
	}

	cval := make(map[Key]string)
	if err := c.secureCookie.Decode(c.cookieName, cookie.Value, &cval); err != nil {
		logger.Req(r).Error(errors.Wrap(err, "securecookie.Decode()"))

		return "", false
	}

	token, ok := cval[TokenKey]
	if !ok || token == "" {
		return "", false
	}

	return token, true
}

// WriteToken persists the bearer token into the slot.
func (c *Client) WriteToken(w http.ResponseWriter, token string) error {
	cval := map[Key]string{
		TokenKey: token,
	}
	encoded, err := c.secureCookie.Encode(c.cookieName, cval)
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.cookieName,
		Value:    encoded,
		Path:     "/",
		Domain:   c.domain,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return nil
}

// ClearToken empties the slot. Clearing an already-empty slot is a no-op for
// the client.
func (c *Client) ClearToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.cookieName,
		Value:    "",
		Path:     "/",
		Domain:   c.domain,
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
