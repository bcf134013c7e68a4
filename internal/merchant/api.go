// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package merchant

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/toeirei/dropindemo/internal/cardinfo"
	"github.com/toeirei/dropindemo/internal/demo"
	"github.com/toeirei/dropindemo/internal/logging"
)

// Messages returned to the client; the demo shows them verbatim.
const (
	msgUnknownNonce     = "Unknown or expired payment_method_nonce."
	msgProcessorDecline = "Processor Declined"
	msgUnionPayAccount  = "UnionPay transactions must use merchant account " + demo.UnionPayMerchantAccountID + "."
)

// API serves the demo merchant endpoints.
type API struct {
	store       *Store
	environment string
	amount      string
	newID       func() string
}

// NewAPI returns an API issuing client tokens for environment and charging
// amount per transaction.
func NewAPI(store *Store, environment, amount string) *API {
	if amount == "" {
		amount = DefaultAmount
	}
	return &API{
		store:       store,
		environment: environment,
		amount:      amount,
		newID:       uuid.NewString,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/customers", a.createCustomer)
	r.Get("/client_token", a.clientToken)
	r.Route("/nonce", func(r chi.Router) {
		r.Post("/transaction", a.createTransaction)
	})
	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", a.listTransactions)
		r.Get("/{transactionID}", a.getTransaction)
	})
}

func (a *API) createCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := a.store.AddCustomer(r.Context(), a.newID())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, CreateCustomerResponse{ID: c.ID})
}

func (a *API) clientToken(w http.ResponseWriter, r *http.Request) {
	customerID := r.URL.Query().Get("customer_id")
	if customerID != "" {
		if _, err := a.store.GetCustomer(r.Context(), customerID); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, "customer "+customerID+" not found")
			} else {
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
	}
	token, err := EncodeClientToken(ClientToken{
		Version:                  2,
		AuthorizationFingerprint: a.newID(),
		CustomerID:               customerID,
		Environment:              a.environment,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ClientTokenResponse{ClientToken: token})
}

func (a *API) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.PaymentMethodNonce == "" {
		writeError(w, http.StatusBadRequest, "payment_method_nonce is required")
		return
	}

	brand, declined, ok := cardinfo.ParseFakeNonce(req.PaymentMethodNonce)
	if !ok {
		writeError(w, http.StatusUnprocessableEntity, msgUnknownNonce)
		return
	}
	if brand == cardinfo.BrandUnionPay && req.MerchantAccountID != demo.UnionPayMerchantAccountID {
		writeError(w, http.StatusUnprocessableEntity, msgUnionPayAccount)
		return
	}

	t := &Transaction{
		ID:                a.newID(),
		Nonce:             req.PaymentMethodNonce,
		PaymentMethodType: string(brand),
		MerchantAccountID: req.MerchantAccountID,
		Amount:            a.amount,
		Status:            StatusSubmittedForSettlement,
	}
	if declined {
		t.Status = StatusProcessorDeclined
	}
	if err := a.store.AddTransaction(r.Context(), t); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	logging.Infof("transaction %s %s (%s, account %q)", t.ID, t.Status, t.PaymentMethodType, t.MerchantAccountID)

	if declined {
		writeError(w, http.StatusUnprocessableEntity, msgProcessorDecline)
		return
	}
	writeJSON(w, http.StatusCreated, TransactionResponse{
		ID:      t.ID,
		Status:  t.Status,
		Message: "created " + t.ID + " " + t.Status,
	})
}

func (a *API) getTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "transactionID")
	t, err := a.store.GetTransaction(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction "+id+" not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (a *API) listTransactions(w http.ResponseWriter, r *http.Request) {
	ts, err := a.store.ListTransactions(r.Context(), 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if ts == nil {
		ts = []Transaction{}
	}
	writeJSON(w, http.StatusOK, ts)
}

// ClientToken is the decoded form of a client token.
type ClientToken struct {
	Version                  int    `json:"version"`
	AuthorizationFingerprint string `json:"authorizationFingerprint"`
	CustomerID               string `json:"customerId,omitempty"`
	Environment              string `json:"environment"`
}

// EncodeClientToken serialises t as base64 JSON.
func EncodeClientToken(t ClientToken) (string, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeClientToken reverses EncodeClientToken.
func DecodeClientToken(s string) (ClientToken, error) {
	var t ClientToken
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return t, err
	}
	err = json.Unmarshal(b, &t)
	return t, err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}
