package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/stripe-autobot/dashgate"
	"github.com/stripe-autobot/dashgate/capital"
	"github.com/stripe-autobot/dashgate/credentials"
	"github.com/stripe-autobot/dashgate/internal/token"
	"github.com/stripe-autobot/dashgate/payments"
	"github.com/stripe-autobot/dashgate/paymentstore"
)

type config struct {
	Listen        string `env:"DASHGATE_LISTEN,default=:8080"`
	Origin        string `env:"DASHGATE_ORIGIN,default=localhost"`
	PublicDomain  string `env:"DASHGATE_PUBLIC_DOMAIN,default=stripe-autobot.fr"`
	PrivateDomain string `env:"DASHGATE_PRIVATE_DOMAIN,default=app.autobot.fr"`

	CookieKey   string `env:"DASHGATE_COOKIE_KEY"`
	TokenKey    string `env:"DASHGATE_TOKEN_KEY,required"`
	TokenIssuer string `env:"DASHGATE_TOKEN_ISSUER,default=autobot-credentials"`

	CredentialURL       string `env:"DASHGATE_CREDENTIAL_URL,required"`
	CapitalURL          string `env:"DASHGATE_CAPITAL_URL,required"`
	ProcessorURL        string `env:"DASHGATE_PROCESSOR_URL,required"`
	PayoutURL           string `env:"DASHGATE_PAYOUT_URL,required"`
	FallbackCheckoutURL string `env:"DASHGATE_FALLBACK_CHECKOUT_URL"`

	DBPath string `env:"DASHGATE_DB,default=data/dashgate.db"`
}

func main() {
	// Load .env (best-effort). If missing, fall back to real env vars.
	_ = godotenv.Load()

	var cfg config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		log.Fatalf("decode config failed: %v", err)
	}

	secureCookie, err := dashgate.NewSecureCookie(cfg.CookieKey)
	if err != nil {
		log.Fatalf("init secure cookie failed: %v", err)
	}

	verifier := token.NewVerifier([]byte(cfg.TokenKey), cfg.TokenIssuer)
	creds := credentials.New(cfg.CredentialURL)
	sessions := dashgate.NewSessionManager(creds, verifier, secureCookie)

	// The serving origin is read once per process; classification is a pure
	// function of it.
	mode := dashgate.NewClassifier(cfg.PublicDomain, cfg.PrivateDomain).Classify(cfg.Origin)
	log.Printf("serving origin %q as %s surface", cfg.Origin, mode)

	routes, err := dashgate.NewRouteTable(dashgate.DefaultRoutes(), dashgate.RouteCapital, dashgate.RouteLogin)
	if err != nil {
		log.Fatalf("init route table failed: %v", err)
	}
	gate := dashgate.NewGate(mode, sessions, routes)

	store, err := paymentstore.NewSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("init payment store failed: %v", err)
	}
	defer store.Close()

	orchestrator := payments.NewOrchestrator(
		payments.NewProcessorClient(cfg.ProcessorURL),
		payments.NewPayoutClient(cfg.PayoutURL, sessions.Outbound()),
		store,
		payments.WithFallbackCheckoutURL(cfg.FallbackCheckoutURL),
	)

	capitalClient := capital.NewClient(cfg.CapitalURL, sessions.Outbound())

	httpSrv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           router(gate, sessions, orchestrator, capitalClient),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("dashgate listening on %s", cfg.Listen)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http server error: %v", err)
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	<-stopCh

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctx)

	fmt.Println("server stopped")
}

func router(gate *dashgate.Gate, sessions *dashgate.SessionManager, orchestrator *payments.Orchestrator, capitalClient *capital.Client) http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		// no gate decision here, but withdrawals record the subject when a
		// session exists
		r.Use(sessions.Attach)

		r.Post("/login", sessions.Login())
		r.Post("/logout", sessions.Logout())
		r.Get("/session", sessions.Authenticated())
		r.Get("/capital", capitalClient.Snapshot())

		// payment actions are not gated: the public surface permits deposits
		// without a session
		r.Post("/deposits", orchestrator.Deposit())
		r.Post("/withdrawals", orchestrator.Withdraw())
		r.Get("/payments", orchestrator.History())
	})

	// view navigations pass through the gate; rendering itself is the SPA's
	// concern, the server only answers which view the navigation resolved to
	r.Group(func(r chi.Router) {
		r.Use(gate.Protect)
		for _, route := range dashgate.DefaultRoutes() {
			r.Get(route.Path, viewHandler(route))
		}
	})

	return r
}

func viewHandler(route dashgate.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"view": route.ID})
	}
}
