// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cardinfo validates card input and derives the fake payment method
// nonces the demo flows hand to the merchant server.
package cardinfo

import (
	"fmt"
	"strings"
)

// ValidatePAN checks length (13..19), digits only and the Luhn check digit.
func ValidatePAN(pan string) error {
	if pan == "" {
		return fmt.Errorf("card number is required")
	}
	if !IsDigits(pan) {
		return fmt.Errorf("card number must contain digits only")
	}
	if l := len(pan); l < 13 || l > 19 {
		return fmt.Errorf("card number must be 13..19 digits (got %d)", l)
	}
	body := pan[:len(pan)-1]
	if pan[len(pan)-1] != luhnCheckDigit(body) {
		return fmt.Errorf("invalid card number")
	}
	return nil
}

func luhnCheckDigit(body string) byte {
	sum, dbl := 0, true
	for i := len(body) - 1; i >= 0; i-- {
		d := int(body[i] - '0')
		if dbl {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		dbl = !dbl
	}
	return '0' + byte((10-(sum%10))%10)
}

func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// MaskPAN keeps the first six and last four digits.
func MaskPAN(pan string) string {
	cleaned := NormalizePAN(pan)
	n := len(cleaned)
	if n == 0 {
		return ""
	}
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	if n < 10 {
		return strings.Repeat("*", n-4) + cleaned[n-4:]
	}
	return cleaned[:6] + strings.Repeat("*", n-10) + cleaned[n-4:]
}

// NormalizePAN strips spaces, tabs and dashes.
func NormalizePAN(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-':
			return -1
		default:
			return r
		}
	}, s)
}
