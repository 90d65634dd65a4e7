package razorpay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainErrors "github.com/Abhijeetcode911/customgpt-payment/internal/domain/errors"
	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewHTTPClient(srv.URL, "rzp_key", "rzp_secret", time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func assertBasicAuth(t *testing.T, r *http.Request) {
	t.Helper()
	user, pass, ok := r.BasicAuth()
	if !ok || user != "rzp_key" || pass != "rzp_secret" {
		t.Errorf("unexpected basic auth %q/%q ok=%v", user, pass, ok)
	}
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", "k", "s", time.Second, testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", "k", "s", time.Second, testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
	client, err := NewHTTPClient("http://example.com", "k", "s", 0, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.httpClient.Timeout != 10*time.Second {
		t.Fatalf("expected default timeout, got %v", client.httpClient.Timeout)
	}
}

func TestCreateOrderSendsPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assertBasicAuth(t, r)
		if r.Method != http.MethodPost || r.URL.Path != "/v1/orders" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		if payload["amount"] != float64(50000) || payload["currency"] != "INR" {
			t.Errorf("unexpected payload %v", payload)
		}
		if payload["payment_capture"] != float64(1) {
			t.Errorf("expected auto capture, got %v", payload["payment_capture"])
		}
		if payload["receipt"] != "rcpt_1" {
			t.Errorf("expected receipt, got %v", payload["receipt"])
		}
		_, _ = io.WriteString(w, `{"id":"order_1","amount":50000,"currency":"INR","receipt":"rcpt_1","status":"created","notes":{"plan":"pro"},"created_at":1714557600}`)
	})

	order, err := client.CreateOrder(context.Background(), model.CreateOrderRequest{
		Amount:   50000,
		Currency: "INR",
		Receipt:  "rcpt_1",
		Notes:    map[string]string{"plan": "pro"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "order_1" || order.Amount != 50000 || order.Currency != "INR" {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.Receipt != "rcpt_1" || order.Notes["plan"] != "pro" {
		t.Fatalf("unexpected metadata %+v", order)
	}
	if !order.CreatedAt.Equal(time.Unix(1714557600, 0)) {
		t.Fatalf("unexpected created at %v", order.CreatedAt)
	}
}

func TestFetchOrderDecodesOptionalFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders/order_2" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"id":"order_2","amount":100,"currency":"INR","receipt":null,"status":"attempted","notes":[]}`)
	})

	order, err := client.FetchOrder(context.Background(), "order_2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !order.CreatedAt.IsZero() {
		t.Fatalf("expected absent created at, got %v", order.CreatedAt)
	}
	if order.Notes != nil {
		t.Fatalf("expected no notes for empty list, got %v", order.Notes)
	}
	if order.Status != "attempted" {
		t.Fatalf("unexpected status %q", order.Status)
	}
}

func TestFetchOrderEscapesIdentifier(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/v1/orders/order%2F..%2Fpayments" {
			t.Errorf("expected escaped identifier, got %s", r.URL.EscapedPath())
		}
		_, _ = io.WriteString(w, `{"id":"x"}`)
	})

	if _, err := client.FetchOrder(context.Background(), "order/../payments"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetchOrderErrors(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantKind    error
		description string
	}{
		{name: "unknown id", statusCode: http.StatusBadRequest, body: `{"error":{"code":"BAD_REQUEST_ERROR","description":"The id provided does not exist"}}`, wantKind: domainErrors.ErrOrderNotFound, description: "The id provided does not exist"},
		{name: "not found", statusCode: http.StatusNotFound, body: `{}`, wantKind: domainErrors.ErrOrderNotFound},
		{name: "unauthorized", statusCode: http.StatusUnauthorized, body: `{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`, wantKind: domainErrors.ErrUpstreamFailure, description: "Authentication failed"},
		{name: "server error", statusCode: http.StatusInternalServerError, body: `boom`, wantKind: domainErrors.ErrUpstreamFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.FetchOrder(context.Background(), "order_x")
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("expected %v, got %v", tt.wantKind, err)
			}
			if got := domainErrors.StatusCode(err); got != tt.statusCode {
				t.Fatalf("expected status %d, got %d", tt.statusCode, got)
			}
			if got := domainErrors.Describe(err); got != tt.description {
				t.Fatalf("expected description %q, got %q", tt.description, got)
			}
		})
	}
}

func TestFetchPaymentsKeepsListingOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assertBasicAuth(t, r)
		if r.URL.Path != "/v1/orders/order_3/payments" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"entity":"collection","count":2,"items":[
			{"id":"pay_a","order_id":"order_3","status":"failed","amount":100,"currency":"INR","method":"card"},
			{"id":"pay_b","order_id":"order_3","status":"captured","amount":100,"currency":"INR","method":"upi"}
		]}`)
	})

	payments, err := client.FetchPayments(context.Background(), "order_3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("expected two payments, got %d", len(payments))
	}
	if payments[0].ID != "pay_a" || payments[0].Status != model.PaymentStatusFailed {
		t.Fatalf("unexpected first payment %+v", payments[0])
	}
	if payments[1].ID != "pay_b" || !payments[1].Captured() || payments[1].Method != "upi" {
		t.Fatalf("unexpected second payment %+v", payments[1])
	}
}

func TestFetchPaymentsFailureIsUpstream(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"description":"bad"}}`)
	})

	_, err := client.FetchPayments(context.Background(), "order_4")
	if !errors.Is(err, domainErrors.ErrUpstreamFailure) {
		t.Fatalf("expected upstream failure, got %v", err)
	}
	if errors.Is(err, domainErrors.ErrOrderNotFound) {
		t.Fatal("payments failure must not be reported as not found")
	}
}

func TestMalformedResponseIsUpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{not json`)
	})

	if _, err := client.FetchOrder(context.Background(), "order_5"); !errors.Is(err, domainErrors.ErrUpstreamFailure) {
		t.Fatalf("expected upstream failure, got %v", err)
	}
}

func TestUnreachableProcessorIsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := srv.URL
	srv.Close()

	client, err := NewHTTPClient(addr, "k", "s", time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	_, err = client.FetchOrder(context.Background(), "order_6")
	if !errors.Is(err, domainErrors.ErrUpstreamFailure) {
		t.Fatalf("expected upstream failure, got %v", err)
	}
	if domainErrors.StatusCode(err) != 0 {
		t.Fatalf("expected no status for transport failure")
	}
}

func TestFetchLogsRejectedRequests(t *testing.T) {
	called := make(chan struct{}, 1)
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && a.Value.Any() == slog.LevelWarn {
			select {
			case called <- struct{}{}:
			default:
			}
		}
		return a
	}})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "k", "s", time.Second, slog.New(handler))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := client.FetchOrder(context.Background(), "123"); err == nil {
		t.Fatal("expected error from server")
	}

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("expected warning log to be written")
	}
}
