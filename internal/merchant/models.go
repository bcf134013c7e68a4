// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package merchant

import (
	"time"

	"github.com/uptrace/bun"
)

// Transaction statuses recorded by the demo server.
const (
	StatusSubmittedForSettlement = "submitted_for_settlement"
	StatusProcessorDeclined      = "processor_declined"
)

// Customer is a vaulted customer created before a client token is issued.
type Customer struct {
	bun.BaseModel `bun:"table:customers"`
	ID            string    `bun:"id,pk" json:"id"`
	CreatedAt     time.Time `bun:"created_at,notnull" json:"created_at"`
}

// Transaction is one sale attempt against a payment method nonce.
type Transaction struct {
	bun.BaseModel     `bun:"table:transactions"`
	ID                string    `bun:"id,pk" json:"id"`
	Nonce             string    `bun:"nonce,notnull" json:"payment_method_nonce"`
	PaymentMethodType string    `bun:"payment_method_type" json:"payment_method_type"`
	MerchantAccountID string    `bun:"merchant_account_id" json:"merchant_account_id,omitempty"`
	Amount            string    `bun:"amount,notnull" json:"amount"`
	Status            string    `bun:"status,notnull" json:"status"`
	CreatedAt         time.Time `bun:"created_at,notnull" json:"created_at"`
}

// CreateCustomerResponse is the body of POST /customers.
type CreateCustomerResponse struct {
	ID string `json:"id"`
}

// ClientTokenResponse is the body of GET /client_token.
type ClientTokenResponse struct {
	ClientToken string `json:"client_token"`
}

// TransactionRequest is the body of POST /nonce/transaction.
type TransactionRequest struct {
	PaymentMethodNonce string `json:"payment_method_nonce"`
	MerchantAccountID  string `json:"merchant_account_id,omitempty"`
}

// TransactionResponse is returned for a created transaction.
type TransactionResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse carries the message shown to the demo user on failure.
type ErrorResponse struct {
	Message string `json:"message"`
}
