package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProcessorClient_CreateCheckoutSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
		wantErr bool
	}{
		{
			name: "successful creation",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/checkout/sessions" {
					http.NotFound(w, r)

					return
				}
				var req struct {
					Amount   int64  `json:"amount"`
					Currency string `json:"currency"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)

					return
				}
				if req.Amount != 25_000 || req.Currency != "eur" {
					http.Error(w, "unexpected request", http.StatusUnprocessableEntity)

					return
				}
				w.Header().Set("Content-Type", "application/json")
				if err := json.NewEncoder(w).Encode(map[string]string{"url": "https://pay.example.com/cs_123"}); err != nil {
					panic(err)
				}
			},
			want: "https://pay.example.com/cs_123",
		},
		{
			name: "processor error status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: true,
		},
		{
			name: "empty checkout url",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if err := json.NewEncoder(w).Encode(map[string]string{"url": ""}); err != nil {
					panic(err)
				}
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := httptest.NewServer(tt.handler)
			t.Cleanup(svc.Close)

			p := NewProcessorClient(svc.URL)
			got, err := p.CreateCheckoutSession(context.Background(), 25_000, "eur")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ProcessorClient.CreateCheckoutSession() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ProcessorClient.CreateCheckoutSession() = %q, want %q", got, tt.want)
			}
		})
	}
}
