package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/Abhijeetcode911/customgpt-payment/internal/domain/errors"
	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/model"
	testhelpers "github.com/Abhijeetcode911/customgpt-payment/internal/test"
)

func newOrders(authority *testhelpers.AuthorityStub, registry *testhelpers.RegistryStub, now time.Time) *OrderUseCase {
	uc := NewOrderUseCase(authority, registry, "INR", discardLogger())
	uc.now = func() time.Time { return now }
	return uc
}

func TestOrderUseCaseCreateRejectsInvalidAmount(t *testing.T) {
	authority := &testhelpers.AuthorityStub{CreateFn: func(context.Context, model.CreateOrderRequest) (*model.Order, error) {
		t.Fatal("create should not be called for invalid amount")
		return nil, nil
	}}
	uc := newOrders(authority, &testhelpers.RegistryStub{}, orderCreatedAt)

	if _, err := uc.Create(context.Background(), model.CreateOrderRequest{Amount: 0}); !errors.Is(err, domainErrors.ErrInvalidRequest) {
		t.Fatalf("expected invalid request error, got %v", err)
	}
}

func TestOrderUseCaseCreateRecordsAuthorityTimestamp(t *testing.T) {
	authority := &testhelpers.AuthorityStub{CreateFn: func(_ context.Context, req model.CreateOrderRequest) (*model.Order, error) {
		if req.Currency != "INR" {
			t.Fatalf("expected default currency, got %q", req.Currency)
		}
		if req.Receipt != "rcpt_7" || req.Notes["gpt"] != "yes" {
			t.Fatalf("expected metadata passthrough, got %+v", req)
		}
		return &model.Order{ID: "order_7", Amount: req.Amount, Currency: req.Currency, CreatedAt: orderCreatedAt}, nil
	}}
	registry := &testhelpers.RegistryStub{}
	uc := newOrders(authority, registry, orderCreatedAt.Add(time.Minute))

	order, err := uc.Create(context.Background(), model.CreateOrderRequest{
		Amount:  1000,
		Receipt: "rcpt_7",
		Notes:   map[string]string{"gpt": "yes"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != "order_7" {
		t.Fatalf("unexpected order %+v", order)
	}
	ts, ok := registry.Recorded("order_7")
	if !ok || ts != orderCreatedAt.Unix() {
		t.Fatalf("expected authority timestamp to be recorded, got %d ok=%v", ts, ok)
	}
}

func TestOrderUseCaseCreateFallsBackToLocalClock(t *testing.T) {
	registry := &testhelpers.RegistryStub{}
	now := orderCreatedAt.Add(5 * time.Minute)
	uc := newOrders(&testhelpers.AuthorityStub{}, registry, now)

	if _, err := uc.Create(context.Background(), model.CreateOrderRequest{Amount: 10, Currency: "usd"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ts, ok := registry.Recorded("order_stub")
	if !ok || ts != now.Unix() {
		t.Fatalf("expected local clock timestamp, got %d ok=%v", ts, ok)
	}
}

func TestOrderUseCaseCreateToleratesRegistryFailure(t *testing.T) {
	uc := newOrders(&testhelpers.AuthorityStub{}, &testhelpers.RegistryStub{Err: errors.New("db down")}, orderCreatedAt)

	if _, err := uc.Create(context.Background(), model.CreateOrderRequest{Amount: 10}); err != nil {
		t.Fatalf("registry failure must not fail creation: %v", err)
	}
}

func TestOrderUseCaseCreatePropagatesUpstreamError(t *testing.T) {
	authority := &testhelpers.AuthorityStub{CreateFn: func(context.Context, model.CreateOrderRequest) (*model.Order, error) {
		return nil, errors.New("timeout")
	}}
	registry := &testhelpers.RegistryStub{}
	uc := newOrders(authority, registry, orderCreatedAt)

	if _, err := uc.Create(context.Background(), model.CreateOrderRequest{Amount: 10}); !errors.Is(err, domainErrors.ErrUpstreamFailure) {
		t.Fatalf("expected upstream failure, got %v", err)
	}
	if len(registry.Entries) != 0 {
		t.Fatal("failed creation must not be recorded")
	}
}

func TestOrderUseCaseEvictUsesValidityWindow(t *testing.T) {
	registry := &testhelpers.RegistryStub{Evicted: 4}
	now := orderCreatedAt.Add(10 * time.Hour)
	uc := newOrders(&testhelpers.AuthorityStub{}, registry, now)

	removed, err := uc.Evict(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 4 {
		t.Fatalf("expected 4 evictions, got %d", removed)
	}
	if len(registry.Cutoffs) != 1 || registry.Cutoffs[0] != now.Add(-model.ValidityWindow).Unix() {
		t.Fatalf("unexpected cutoffs %v", registry.Cutoffs)
	}
}
