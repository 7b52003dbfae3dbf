package cookie

import "net/http"

// Handler Interface included for testability
type Handler interface {
	ReadToken(r *http.Request) (token string, found bool)
	WriteToken(w http.ResponseWriter, token string) error
	ClearToken(w http.ResponseWriter)
}
