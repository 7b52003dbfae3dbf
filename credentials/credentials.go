// Package credentials calls the external credential-verification service,
// exchanging username, password, and license key for a signed session token.
package credentials

import (
	"context"
	"net/http"
	"time"

	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// Client is the HTTP client for the credential-verification service.
type Client struct {
	rest *resty.Client
}

// New creates a credential service client for the given base URL.
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		rest: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout),
	}
	for _, opt := range options {
		opt(c)
	}

	return c
}

// VerifyCredentials submits the operator's credentials and returns the signed
// session token. A rejected login reports unauthorized; the caller surfaces
// it as a user-visible message with no retry automation.
func (c *Client) VerifyCredentials(ctx context.Context, username, password, licenseKey string) (string, error) {
	type request struct {
		Username   string `json:"username"`
		Password   string `json:"password"`
		LicenseKey string `json:"licenseKey"`
	}
	type response struct {
		Token string `json:"token"`
	}

	res := &response{}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(request{Username: username, Password: password, LicenseKey: licenseKey}).
		SetResult(res).
		Post("/login")
	if err != nil {
		return "", errors.Wrap(err, "resty.Request.Post()")
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized, resp.StatusCode() == http.StatusForbidden:
		return "", httpio.NewUnauthorizedMessage("credential service rejected the login")
	case resp.IsError():
		return "", errors.Newf("credential service returned %s", resp.Status())
	case res.Token == "":
		return "", errors.New("credential service returned an empty token")
	}

	return res.Token, nil
}

// Option defines a function signature for setting client options.
type Option func(*Client)

// WithTimeout sets the request timeout. (default: 15s)
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.rest.SetTimeout(d)
	}
}

// WithRestClient replaces the underlying resty client.
func WithRestClient(rest *resty.Client) Option {
	return func(c *Client) {
		c.rest = rest
	}
}
