package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainErrors "github.com/Abhijeetcode911/customgpt-payment/internal/domain/errors"
	"github.com/Abhijeetcode911/customgpt-payment/internal/domain/model"
)

// Client exposes the order and payment operations of the payment processor.
type Client interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error)
	FetchOrder(ctx context.Context, orderID string) (*model.Order, error)
	FetchPayments(ctx context.Context, orderID string) ([]model.Payment, error)
}

// HTTPClient implements Client via the processor's REST API using basic auth.
type HTTPClient struct {
	baseURL    *url.URL
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

type orderResponse struct {
	ID        string          `json:"id"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency"`
	Receipt   *string         `json:"receipt"`
	Status    string          `json:"status"`
	Notes     json.RawMessage `json:"notes"`
	CreatedAt int64           `json:"created_at"`
}

type paymentResponse struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Method   string `json:"method"`
}

type collectionResponse struct {
	Count int               `json:"count"`
	Items []paymentResponse `json:"items"`
}

type createOrderPayload struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Receipt        string            `json:"receipt,omitempty"`
	PaymentCapture int               `json:"payment_capture"`
	Notes          map[string]string `json:"notes,omitempty"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// NewHTTPClient creates processor client with the given request timeout.
func NewHTTPClient(baseURL, keyID, keySecret string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse processor url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("processor url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:   parsed,
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// CreateOrder registers a new auto-captured order with the processor.
func (c *HTTPClient) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	payload := createOrderPayload{
		Amount:         req.Amount,
		Currency:       req.Currency,
		Receipt:        req.Receipt,
		PaymentCapture: 1,
		Notes:          req.Notes,
	}
	var data orderResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint("v1", "orders"), payload, &data); err != nil {
		return nil, err
	}
	return data.toModel(), nil
}

// FetchOrder loads an order. Unknown identifiers yield ErrOrderNotFound.
func (c *HTTPClient) FetchOrder(ctx context.Context, orderID string) (*model.Order, error) {
	var data orderResponse
	err := c.do(ctx, http.MethodGet, c.endpoint("v1", "orders", orderID), nil, &data)
	if err != nil {
		var pe *domainErrors.ProcessorError
		if errors.As(err, &pe) && (pe.StatusCode == http.StatusBadRequest || pe.StatusCode == http.StatusNotFound) {
			pe.Kind = domainErrors.ErrOrderNotFound
		}
		return nil, err
	}
	return data.toModel(), nil
}

// FetchPayments lists payment attempts for an order in processor order.
func (c *HTTPClient) FetchPayments(ctx context.Context, orderID string) ([]model.Payment, error) {
	var data collectionResponse
	if err := c.do(ctx, http.MethodGet, c.endpoint("v1", "orders", orderID, "payments"), nil, &data); err != nil {
		return nil, err
	}
	payments := make([]model.Payment, 0, len(data.Items))
	for _, item := range data.Items {
		payments = append(payments, model.Payment{
			ID:       item.ID,
			OrderID:  item.OrderID,
			Status:   model.PaymentStatus(item.Status),
			Amount:   item.Amount,
			Currency: item.Currency,
			Method:   item.Method,
		})
	}
	return payments, nil
}

func (c *HTTPClient) endpoint(segments ...string) string {
	endpoint := *c.baseURL
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	endpoint.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + "/" + strings.Join(escaped, "/")
	endpoint.Path, _ = url.PathUnescape(endpoint.RawPath)
	return endpoint.String()
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return &domainErrors.ProcessorError{Kind: domainErrors.ErrUpstreamFailure, Err: err}
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("processor request failed", slog.String("method", method), slog.String("error", err.Error()))
		return &domainErrors.ProcessorError{Kind: domainErrors.ErrUpstreamFailure, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domainErrors.ProcessorError{Kind: domainErrors.ErrUpstreamFailure, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if err := json.Unmarshal(raw, out); err != nil {
			return &domainErrors.ProcessorError{Kind: domainErrors.ErrUpstreamFailure, Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil
	}

	var envelope errorResponse
	_ = json.Unmarshal(raw, &envelope)
	c.logger.Warn("processor rejected request",
		slog.String("method", method),
		slog.Int("status", resp.StatusCode),
		slog.String("code", envelope.Error.Code),
		slog.String("description", envelope.Error.Description),
	)
	return &domainErrors.ProcessorError{
		Kind:        domainErrors.ErrUpstreamFailure,
		StatusCode:  resp.StatusCode,
		Code:        envelope.Error.Code,
		Description: envelope.Error.Description,
	}
}

func (r orderResponse) toModel() *model.Order {
	order := &model.Order{
		ID:       r.ID,
		Amount:   r.Amount,
		Currency: r.Currency,
		Status:   r.Status,
		Notes:    decodeNotes(r.Notes),
	}
	if r.Receipt != nil {
		order.Receipt = *r.Receipt
	}
	if r.CreatedAt > 0 {
		order.CreatedAt = time.Unix(r.CreatedAt, 0).UTC()
	}
	return order
}

// decodeNotes accepts the processor's notes as an object; an empty list means no notes.
func decodeNotes(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var notes map[string]string
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil
	}
	return notes
}
