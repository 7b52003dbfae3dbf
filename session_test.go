package dashgate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/securecookie"
	"github.com/stripe-autobot/dashgate/credentials"
	"github.com/stripe-autobot/dashgate/internal/cookie"
	"github.com/stripe-autobot/dashgate/internal/token"
	"github.com/stripe-autobot/dashgate/sessioninfo"
)

var testSigningKey = []byte("0123456789abcdef0123456789abcdef")

func signToken(t *testing.T, key []byte, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("jwt.Token.SignedString() error = %v", err)
	}

	return signed
}

func authCookie(t *testing.T, sc *securecookie.SecureCookie, bearer string) *http.Cookie {
	t.Helper()

	encoded, err := sc.Encode(cookie.AuthCookieName.String(), map[cookie.Key]string{cookie.TokenKey: bearer})
	if err != nil {
		t.Fatalf("securecookie.Encode() error = %v", err)
	}

	return &http.Cookie{Name: cookie.AuthCookieName.String(), Value: encoded}
}

func clearedAuthCookie(resp *http.Response) bool {
	for _, c := range resp.Cookies() {
		if c.Name == cookie.AuthCookieName.String() && c.Value == "" && c.MaxAge < 0 {
			return true
		}
	}

	return false
}

func TestSessionManager_Load(t *testing.T) {
	t.Parallel()

	sc := securecookie.New(securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))

	tests := []struct {
		name        string
		cookie      func(t *testing.T) *http.Cookie
		clock       time.Time
		wantPresent bool
		wantSubject string
		wantRole    sessioninfo.Role
		wantCleared bool
	}{
		{
			name: "no stored token",
		},
		{
			name: "valid token",
			cookie: func(t *testing.T) *http.Cookie {
				t.Helper()

				return authCookie(t, sc, signToken(t, testSigningKey, jwt.MapClaims{
					"sub": "ops@autobot.fr",
					"exp": time.Now().Add(time.Hour).Unix(),
				}))
			},
			wantPresent: true,
			wantSubject: "ops@autobot.fr",
			wantRole:    sessioninfo.RoleUser,
		},
		{
			name: "admin role claim",
			cookie: func(t *testing.T) *http.Cookie {
				t.Helper()

				return authCookie(t, sc, signToken(t, testSigningKey, jwt.MapClaims{
					"sub":  "ops@autobot.fr",
					"exp":  time.Now().Add(time.Hour).Unix(),
					"role": "admin",
				}))
			},
			wantPresent: true,
			wantSubject: "ops@autobot.fr",
			wantRole:    sessioninfo.RoleAdmin,
		},
		{
			name: "expired token degrades to absent and clears the slot",
			cookie: func(t *testing.T) *http.Cookie {
				t.Helper()

				return authCookie(t, sc, signToken(t, testSigningKey, jwt.MapClaims{
					"sub": "ops@autobot.fr",
					"exp": time.Now().Add(-time.Hour).Unix(),
				}))
			},
			wantCleared: true,
		},
		{
			name: "token valid at install but past expiry at evaluation",
			cookie: func(t *testing.T) *http.Cookie {
				t.Helper()

				return authCookie(t, sc, signToken(t, testSigningKey, jwt.MapClaims{
					"sub": "ops@autobot.fr",
					"exp": time.Now().Add(time.Hour).Unix(),
				}))
			},
			clock:       time.Now().Add(2 * time.Hour),
			wantCleared: true,
		},
		{
			name: "token signed with the wrong key",
			cookie: func(t *testing.T) *http.Cookie {
				t.Helper()

				return authCookie(t, sc, signToken(t, []byte("another-signing-key-entirely!!!!"), jwt.MapClaims{
					"sub": "ops@autobot.fr",
					"exp": time.Now().Add(time.Hour).Unix(),
				}))
			},
			wantCleared: true,
		},
		{
			name: "garbage cookie value",
			cookie: func(t *testing.T) *http.Cookie {
				t.Helper()

				return &http.Cookie{Name: cookie.AuthCookieName.String(), Value: "not-a-secure-cookie"}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verifier := token.NewVerifier(testSigningKey, "")
			if !tt.clock.IsZero() {
				clock := tt.clock
				verifier.SetTimeFunc(func() time.Time { return clock })
			}
			s := NewSessionManager(nil, verifier, sc)

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie(t))
			}
			w := httptest.NewRecorder()

			sess, present := s.Load(w, r)
			if present != tt.wantPresent {
				t.Fatalf("SessionManager.Load() present = %v, want %v", present, tt.wantPresent)
			}
			if present {
				if sess.Subject != tt.wantSubject {
					t.Errorf("SessionManager.Load() subject = %q, want %q", sess.Subject, tt.wantSubject)
				}
				if sess.Role != tt.wantRole {
					t.Errorf("SessionManager.Load() role = %q, want %q", sess.Role, tt.wantRole)
				}
			}
			if cleared := clearedAuthCookie(w.Result()); cleared != tt.wantCleared {
				t.Errorf("auth cookie cleared = %v, want %v", cleared, tt.wantCleared)
			}
		})
	}
}

func TestSessionManager_Login(t *testing.T) {
	t.Parallel()

	sc := securecookie.New(securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))
	bearer := signToken(t, testSigningKey, jwt.MapClaims{
		"sub": "ops@autobot.fr",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name         string
		body         string
		credsHandler http.HandlerFunc
		wantStatus   int
		wantInstall  bool
		wantSubject  string
	}{
		{
			name: "successful login installs the session",
			body: `{"username":"ops@autobot.fr","password":"hunter2","licenseKey":"LK-1"}`,
			credsHandler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if err := json.NewEncoder(w).Encode(map[string]string{"token": bearer}); err != nil {
					panic(err)
				}
			},
			wantStatus:  http.StatusOK,
			wantInstall: true,
			wantSubject: "ops@autobot.fr",
		},
		{
			name: "rejected credentials",
			body: `{"username":"ops@autobot.fr","password":"wrong","licenseKey":"LK-1"}`,
			credsHandler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "credential service failure",
			body: `{"username":"ops@autobot.fr","password":"hunter2","licenseKey":"LK-1"}`,
			credsHandler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "malformed issued token is never installed",
			body: `{"username":"ops@autobot.fr","password":"hunter2","licenseKey":"LK-1"}`,
			credsHandler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if err := json.NewEncoder(w).Encode(map[string]string{"token": "garbage"}); err != nil {
					panic(err)
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "invalid request body",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			credsHandler := tt.credsHandler
			if credsHandler == nil {
				credsHandler = func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusTeapot)
				}
			}
			svc := httptest.NewServer(credsHandler)
			t.Cleanup(svc.Close)

			s := NewSessionManager(credentials.New(svc.URL), token.NewVerifier(testSigningKey, ""), sc)

			r := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			s.Login().ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("Login() status = %d, want %d", w.Code, tt.wantStatus)
			}

			installed := false
			for _, c := range w.Result().Cookies() {
				if c.Name == cookie.AuthCookieName.String() && c.Value != "" {
					installed = true
				}
			}
			if installed != tt.wantInstall {
				t.Errorf("auth cookie installed = %v, want %v", installed, tt.wantInstall)
			}

			if gotBearer := s.Outbound().Token; (gotBearer != "") != tt.wantInstall {
				t.Errorf("outbound bearer set = %v, want %v", gotBearer != "", tt.wantInstall)
			}

			if tt.wantInstall {
				var res struct {
					Subject string `json:"subject"`
				}
				if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
					t.Fatalf("decoding response: %v", err)
				}
				if res.Subject != tt.wantSubject {
					t.Errorf("Login() subject = %q, want %q", res.Subject, tt.wantSubject)
				}
			}
		})
	}
}

func TestSessionManager_Logout(t *testing.T) {
	t.Parallel()

	sc := securecookie.New(securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))
	s := NewSessionManager(nil, token.NewVerifier(testSigningKey, ""), sc)

	bearer := signToken(t, testSigningKey, jwt.MapClaims{
		"sub": "ops@autobot.fr",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	if err := s.install(httptest.NewRecorder(), bearer); err != nil {
		t.Fatalf("install() error = %v", err)
	}
	if s.Outbound().Token != bearer {
		t.Fatalf("outbound bearer = %q, want %q", s.Outbound().Token, bearer)
	}

	// Logging out twice must behave identically.
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		s.Logout().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/logout", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Logout() status = %d, want %d", w.Code, http.StatusOK)
		}
		if !clearedAuthCookie(w.Result()) {
			t.Errorf("Logout() did not clear the auth cookie")
		}
		if s.Outbound().Token != "" {
			t.Errorf("outbound bearer = %q, want empty", s.Outbound().Token)
		}
	}
}

func TestSessionManager_Attach(t *testing.T) {
	t.Parallel()

	sc := securecookie.New(securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))

	tests := []struct {
		name        string
		cookie      func(t *testing.T) *http.Cookie
		wantSubject string
	}{
		{
			name: "session subject is visible to the wrapped handler",
			cookie: func(t *testing.T) *http.Cookie {
				t.Helper()

				return authCookie(t, sc, signToken(t, testSigningKey, jwt.MapClaims{
					"sub": "ops@autobot.fr",
					"exp": time.Now().Add(time.Hour).Unix(),
				}))
			},
			wantSubject: "ops@autobot.fr",
		},
		{
			name: "anonymous requests pass through unchanged",
		},
		{
			name: "expired session passes through as anonymous",
			cookie: func(t *testing.T) *http.Cookie {
				t.Helper()

				return authCookie(t, sc, signToken(t, testSigningKey, jwt.MapClaims{
					"sub": "ops@autobot.fr",
					"exp": time.Now().Add(-time.Hour).Unix(),
				}))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewSessionManager(nil, token.NewVerifier(testSigningKey, ""), sc)

			var gotSubject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotSubject = sessioninfo.SubjectFromCtx(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodPost, "/api/withdrawals", nil)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie(t))
			}
			w := httptest.NewRecorder()
			s.Attach(next).ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Fatalf("Attach() status = %d, want %d", w.Code, http.StatusOK)
			}
			if gotSubject != tt.wantSubject {
				t.Errorf("Attach() subject = %q, want %q", gotSubject, tt.wantSubject)
			}
		})
	}
}

func TestSessionManager_Authenticated(t *testing.T) {
	t.Parallel()

	sc := securecookie.New(securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))

	tests := []struct {
		name   string
		cookie func(t *testing.T) *http.Cookie
		want   bool
	}{
		{
			name: "authenticated",
			cookie: func(t *testing.T) *http.Cookie {
				t.Helper()

				return authCookie(t, sc, signToken(t, testSigningKey, jwt.MapClaims{
					"sub": "ops@autobot.fr",
					"exp": time.Now().Add(time.Hour).Unix(),
				}))
			},
			want: true,
		},
		{
			name: "anonymous",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewSessionManager(nil, token.NewVerifier(testSigningKey, ""), sc)

			r := httptest.NewRequest(http.MethodGet, "/api/session", nil)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie(t))
			}
			w := httptest.NewRecorder()
			s.Authenticated().ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Fatalf("Authenticated() status = %d, want %d", w.Code, http.StatusOK)
			}

			var res struct {
				Authenticated bool `json:"authenticated"`
			}
			if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if res.Authenticated != tt.want {
				t.Errorf("Authenticated() = %v, want %v", res.Authenticated, tt.want)
			}
		})
	}
}
