package capital

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

const snapshotBody = `{
	"initial_capital": "10000.00",
	"current_capital": "12450.75",
	"profit": "2450.75",
	"roi": "24.51",
	"trading_allocation": "8000.00",
	"ecommerce_allocation": "4450.75",
	"transactions": [
		{"date": "2026-08-01", "type": "deposit", "amount": "5000.00", "source": "stripe", "status": "settled"},
		{"date": "2026-08-15", "type": "withdrawal", "amount": "1200.00", "source": "payout", "status": "accepted"}
	]
}`

func wantSnapshot(t *testing.T) *Snapshot {
	t.Helper()

	d := func(s string) decimal.Decimal {
		v, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatalf("decimal.NewFromString(%q) error = %v", s, err)
		}

		return v
	}

	return &Snapshot{
		InitialCapital:      d("10000.00"),
		CurrentCapital:      d("12450.75"),
		Profit:              d("2450.75"),
		ROI:                 d("24.51"),
		TradingAllocation:   d("8000.00"),
		EcommerceAllocation: d("4450.75"),
		Transactions: []Transaction{
			{Date: "2026-08-01", Type: "deposit", Amount: d("5000.00"), Source: "stripe", Status: "settled"},
			{Date: "2026-08-15", Type: "withdrawal", Amount: d("1200.00"), Source: "payout", Status: "accepted"},
		},
	}
}

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr bool
	}{
		{
			name: "successful fetch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/capital" {
					http.NotFound(w, r)

					return
				}
				w.Header().Set("Content-Type", "application/json")
				if _, err := w.Write([]byte(snapshotBody)); err != nil {
					panic(err)
				}
			},
		},
		{
			name: "data endpoint failure",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := httptest.NewServer(tt.handler)
			t.Cleanup(svc.Close)

			c := NewClient(svc.URL, nil)
			got, err := c.Fetch(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Client.Fetch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(wantSnapshot(t), got); diff != "" {
				t.Errorf("Client.Fetch() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClient_Fetch_carriesIdentity(t *testing.T) {
	t.Parallel()

	var gotAuth string
	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(snapshotBody)); err != nil {
			panic(err)
		}
	}))
	t.Cleanup(svc.Close)

	shared := resty.New().SetAuthToken("bearer-token-value")
	c := NewClient(svc.URL, shared)

	if _, err := c.Fetch(context.Background()); err != nil {
		t.Fatalf("Client.Fetch() error = %v", err)
	}
	if gotAuth != "Bearer bearer-token-value" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer bearer-token-value")
	}
	if shared.BaseURL != "" {
		t.Errorf("shared client BaseURL = %q, want empty", shared.BaseURL)
	}
}

func TestClient_Snapshot(t *testing.T) {
	t.Parallel()

	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(snapshotBody)); err != nil {
			panic(err)
		}
	}))
	t.Cleanup(svc.Close)

	c := NewClient(svc.URL, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/capital", nil)
	w := httptest.NewRecorder()
	c.Snapshot().ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Snapshot() status = %d, want %d", w.Code, http.StatusOK)
	}

	got := &Snapshot{}
	if err := json.NewDecoder(w.Body).Decode(got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if diff := cmp.Diff(wantSnapshot(t), got); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
}
