package dashgate

import (
	"encoding/base64"
	"fmt"

	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
)

// NewSecureCookie builds the codec for the persisted token slot from a
// base64-encoded key of at least 96 bytes (64 for the hash, 32 for the
// block cipher). An empty key generates a random one; sessions then do not
// survive a process restart.
func NewSecureCookie(cookieKey string) (*securecookie.SecureCookie, error) {
	if cookieKey == "" {
		rKey := securecookie.GenerateRandomKey(96)
		if rKey == nil {
			return nil, errors.New("failed to generate random key")
		}
		cookieKey = base64.StdEncoding.EncodeToString(rKey)

		fmt.Printf("Using random CookieKey: %s\n", cookieKey)
	}

	k, err := base64.StdEncoding.DecodeString(cookieKey)
	if err != nil {
		return nil, errors.Wrap(err, "base64.StdEncoding.DecodeString()")
	}
	if len(k) < 96 {
		return nil, errors.New("CookieKey too short. Expect minimum of 96 bytes. (128 bytes when base64 encoded)")
	}

	return securecookie.New(k[:64], k[64:96]), nil
}
