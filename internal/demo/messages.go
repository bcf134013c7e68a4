// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

// ClientTokenMsg carries the result of a client token fetch.
type ClientTokenMsg struct {
	Generation uint64
	Token      string
	Err        error
}

// ProgressMsg carries an interim status reported by the active session.
type ProgressMsg struct {
	Generation uint64
	Status     string
}

// PaymentMethodMsg carries the payment method the active session obtained.
type PaymentMethodMsg struct {
	Generation uint64
	Method     PaymentMethod
}

// TransactMsg asks the controller to spend the stored payment method, the
// same as the transaction key on the demo screen.
type TransactMsg struct {
	Generation uint64
}

// TransactionMsg carries the result of a transaction request.
type TransactionMsg struct {
	Generation    uint64
	TransactionID string
	Err           error
}
