// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package merchant

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (chi.Router, *Store) {
	t.Helper()
	store := newTestStore(t)
	router := chi.NewRouter()
	NewAPI(store, "sandbox", "").AppendRoutes(router)
	return router, store
}

func postTransaction(t *testing.T, router chi.Router, req TransactionRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/nonce/transaction", bytes.NewReader(body)))
	return w
}

func TestAPI_CustomerAndClientToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/customers", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var cust CreateCustomerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cust))
	require.NotEmpty(t, cust.ID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/client_token?customer_id="+cust.ID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var tok ClientTokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
	decoded, err := DecodeClientToken(tok.ClientToken)
	require.NoError(t, err)
	require.Equal(t, cust.ID, decoded.CustomerID)
	require.Equal(t, "sandbox", decoded.Environment)
	require.NotEmpty(t, decoded.AuthorizationFingerprint)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/client_token?customer_id=unknown", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_Transactions(t *testing.T) {
	router, store := newTestRouter(t)

	t.Run("visa without merchant account", func(t *testing.T) {
		w := postTransaction(t, router, TransactionRequest{PaymentMethodNonce: "fake-valid-visa-nonce"})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp TransactionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.ID)
		require.Equal(t, StatusSubmittedForSettlement, resp.Status)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transactions/"+resp.ID, nil))
		require.Equal(t, http.StatusOK, w.Code)
		var stored Transaction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
		require.Equal(t, "Visa", stored.PaymentMethodType)
		require.Equal(t, DefaultAmount, stored.Amount)
	})

	t.Run("unionpay requires fake_switch_usd", func(t *testing.T) {
		w := postTransaction(t, router, TransactionRequest{PaymentMethodNonce: "fake-valid-unionpay-nonce"})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		w = postTransaction(t, router, TransactionRequest{PaymentMethodNonce: "fake-valid-unionpay-nonce", MerchantAccountID: "fake_switch_usd"})
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("declined nonce is recorded and rejected", func(t *testing.T) {
		w := postTransaction(t, router, TransactionRequest{PaymentMethodNonce: "fake-processor-declined-visa-nonce"})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var e ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
		require.Equal(t, "Processor Declined", e.Message)
	})

	t.Run("unknown nonce", func(t *testing.T) {
		w := postTransaction(t, router, TransactionRequest{PaymentMethodNonce: "tokencc_bogus"})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("missing nonce", func(t *testing.T) {
		w := postTransaction(t, router, TransactionRequest{})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	all, err := store.ListTransactions(t.Context(), 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transactions/missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
