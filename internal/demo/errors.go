// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import (
	"errors"
	"fmt"
)

// ErrNoAuthorization is returned when no resolution rule matches.
var ErrNoAuthorization = errors.New("no authorization source matches the current settings")

// ErrFrameworkUnavailable is returned by a SessionFactory that cannot present
// the requested UI framework on this platform.
var ErrFrameworkUnavailable = errors.New("ui framework is not available on this platform")

// FetchError wraps a failed client token fetch.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return "fetch client token: unknown error"
	}
	return fmt.Sprintf("fetch client token: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// TransactionError wraps a failed transaction request.
type TransactionError struct {
	Nonce string
	Err   error
}

func (e *TransactionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("transaction for %s: unknown error", e.Nonce)
	}
	return fmt.Sprintf("transaction for %s: %v", e.Nonce, e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }

// errorText is the human-readable detail of err, or "" when there is none.
// Wrappers of this package are peeled so the collaborator's own message is
// what users see.
func errorText(err error) string {
	for err != nil {
		switch e := err.(type) {
		case *FetchError:
			err = e.Err
		case *TransactionError:
			err = e.Err
		default:
			return err.Error()
		}
	}
	return ""
}
