package cookie

const (
	// AuthCookieName is the cookie name of the Secure Cookie
	AuthCookieName Key = "auth"

	// TokenKey is the key the bearer token is stored under in the Secure Cookie
	TokenKey Key = "token"
)

// Key is a type for storing values in the session cookie
type Key string

func (k Key) String() string {
	return string(k)
}
