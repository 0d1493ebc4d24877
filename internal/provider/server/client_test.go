package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cartverify/prepay-gateway/internal/domain"
	"github.com/cartverify/prepay-gateway/internal/provider/server"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func sampleItem() domain.CartItem {
	return domain.CartItem{
		Code:     "sku-1",
		Name:     "Blue Shirt",
		Price:    domain.Float(10),
		Quantity: domain.Float(2),
		Options: []domain.ItemOption{
			{Name: "pid", Value: "p-100"},
			{Name: "vid", Value: "v-200"},
		},
	}
}

func TestReady(t *testing.T) {
	complete := server.NewClient(server.Config{Endpoint: "http://x", APIID: "id", APIKey: "key"}, noopLogger{})
	if err := complete.Ready(); err != nil {
		t.Fatalf("want ready, got %v", err)
	}

	incomplete := server.NewClient(server.Config{Endpoint: "http://x", APIID: "id"}, noopLogger{})
	if err := incomplete.Ready(); !errors.Is(err, domain.ErrProviderMisconfigured) {
		t.Fatalf("want ErrProviderMisconfigured, got %v", err)
	}
}

func TestVerifyItem(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("want POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"valid": true})
	}))
	defer srv.Close()

	c := server.NewClient(server.Config{Endpoint: srv.URL, APIID: "id", APIKey: "key"}, noopLogger{})
	ok, err := c.VerifyItem(context.Background(), sampleItem())
	if err != nil || !ok {
		t.Fatalf("want (true, nil), got (%v, %v)", ok, err)
	}

	if got["data_point_id"] != "p-100" || got["data_point_vid"] != "v-200" {
		t.Fatalf("compound identifier wrong: %v", got)
	}
	if got["price"] != float64(10) || got["quantity"] != float64(2) {
		t.Fatalf("price/quantity wrong: %v", got)
	}
}

func TestVerifyItem_RemoteRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"valid": false})
	}))
	defer srv.Close()

	c := server.NewClient(server.Config{Endpoint: srv.URL, APIID: "id", APIKey: "key"}, noopLogger{})
	ok, err := c.VerifyItem(context.Background(), sampleItem())
	if err != nil {
		t.Fatalf("rejection is not a transport error: %v", err)
	}
	if ok {
		t.Fatalf("want rejection")
	}
}

func TestVerifyItem_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := server.NewClient(server.Config{Endpoint: srv.URL, APIID: "id", APIKey: "key"}, noopLogger{})
	_, err := c.VerifyItem(context.Background(), sampleItem())
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("want ErrProviderUnavailable, got %v", err)
	}
}
