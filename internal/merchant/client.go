// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package merchant

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/toeirei/dropindemo/internal/demo"
)

// APIError is a non-2xx answer from the merchant server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("merchant server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Client talks to the demo merchant server.
type Client struct {
	http *resty.Client
}

var _ demo.MerchantAPI = (*Client)(nil)

// NewClient creates a client for baseURL; timeout <= 0 means 10s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := resty.New()
	c.SetBaseURL(strings.TrimRight(baseURL, "/"))
	c.SetTimeout(timeout)
	c.SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// CreateCustomer creates a vaulted customer and returns its id.
func (c *Client) CreateCustomer(ctx context.Context) (string, error) {
	var out CreateCustomerResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&ErrorResponse{}).
		Post("/customers")
	if err := checkResponse(resp, err); err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}
	return out.ID, nil
}

// FetchClientToken returns a client token, scoped to customerID when set.
func (c *Client) FetchClientToken(ctx context.Context, customerID string) (string, error) {
	var out ClientTokenResponse
	req := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&ErrorResponse{})
	if customerID != "" {
		req.SetQueryParam("customer_id", customerID)
	}
	resp, err := req.Get("/client_token")
	if err := checkResponse(resp, err); err != nil {
		return "", fmt.Errorf("fetch client token: %w", err)
	}
	return out.ClientToken, nil
}

// CreateCustomerAndFetchClientToken creates a customer and then fetches a
// client token for it.
func (c *Client) CreateCustomerAndFetchClientToken(ctx context.Context) (string, error) {
	id, err := c.CreateCustomer(ctx)
	if err != nil {
		return "", err
	}
	return c.FetchClientToken(ctx, id)
}

// MakeTransaction creates a sale for nonce. merchantAccountID is omitted from
// the request body when empty.
func (c *Client) MakeTransaction(ctx context.Context, nonce, merchantAccountID string) (string, error) {
	var out TransactionResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(TransactionRequest{PaymentMethodNonce: nonce, MerchantAccountID: merchantAccountID}).
		SetResult(&out).
		SetError(&ErrorResponse{}).
		Post("/nonce/transaction")
	if err := checkResponse(resp, err); err != nil {
		return "", err
	}
	return out.ID, nil
}

// Transaction fetches a recorded transaction.
func (c *Client) Transaction(ctx context.Context, id string) (*Transaction, error) {
	var out Transaction
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&out).
		SetError(&ErrorResponse{}).
		Get("/transactions/{id}")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsError() {
		return nil
	}
	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if e, ok := resp.Error().(*ErrorResponse); ok && e != nil {
		apiErr.Message = e.Message
	}
	return apiErr
}
