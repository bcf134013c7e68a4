// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package cardinfo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DeclinedTestPAN always tokenises into a processor-declined nonce.
const DeclinedTestPAN = "4000111111111115"

const (
	noncePrefix    = "fake-"
	validMarker    = "valid-"
	declinedMarker = "processor-declined-"
	nonceSuffix    = "-nonce"
)

// FakeNonce builds the nonce a sandbox tokenisation of the given brand yields.
func FakeNonce(brand Brand, declined bool) string {
	marker := validMarker
	if declined {
		marker = declinedMarker
	}
	return noncePrefix + marker + brand.Slug() + nonceSuffix
}

// ParseFakeNonce splits a fake nonce into its brand and outcome. ok is false
// for anything that is not a fake nonce.
func ParseFakeNonce(nonce string) (brand Brand, declined bool, ok bool) {
	if !strings.HasPrefix(nonce, noncePrefix) || !strings.HasSuffix(nonce, nonceSuffix) {
		return BrandUnknown, false, false
	}
	body := strings.TrimSuffix(strings.TrimPrefix(nonce, noncePrefix), nonceSuffix)
	switch {
	case strings.HasPrefix(body, validMarker):
		body = strings.TrimPrefix(body, validMarker)
	case strings.HasPrefix(body, declinedMarker):
		body = strings.TrimPrefix(body, declinedMarker)
		declined = true
	default:
		return BrandUnknown, false, false
	}
	if body == "card" {
		return BrandUnknown, declined, true
	}
	brand = BrandFromSlug(body)
	if brand == BrandUnknown {
		return BrandUnknown, false, false
	}
	return brand, declined, true
}

// Tokenize wraps its failures in one of these.
var (
	ErrInvalidPAN        = errors.New("invalid card number")
	ErrInvalidExpiration = errors.New("invalid expiration date")
	ErrInvalidCVV        = errors.New("invalid cvv")
)

// Card is validated card-form input.
type Card struct {
	PAN   string
	Brand Brand
}

// Tokenize validates the card fields and returns a card plus its fake nonce.
func Tokenize(pan, expiration, cvv string, now time.Time) (Card, string, error) {
	pan = NormalizePAN(pan)
	if err := ValidatePAN(pan); err != nil {
		return Card{}, "", fmt.Errorf("%w: %v", ErrInvalidPAN, err)
	}
	if err := ValidateExpiration(expiration, now); err != nil {
		return Card{}, "", fmt.Errorf("%w: %v", ErrInvalidExpiration, err)
	}
	brand := DetectBrand(pan)
	if err := ValidateCVV(cvv, brand); err != nil {
		return Card{}, "", fmt.Errorf("%w: %v", ErrInvalidCVV, err)
	}
	return Card{PAN: pan, Brand: brand}, FakeNonce(brand, pan == DeclinedTestPAN), nil
}

// ValidateExpiration accepts MM/YY or MM/YYYY not earlier than now's month.
func ValidateExpiration(exp string, now time.Time) error {
	month, year, found := strings.Cut(strings.TrimSpace(exp), "/")
	if !found {
		return fmt.Errorf("expiration must be MM/YY")
	}
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return fmt.Errorf("invalid expiration month")
	}
	year = strings.TrimSpace(year)
	y, err := strconv.Atoi(year)
	if err != nil {
		return fmt.Errorf("invalid expiration year")
	}
	switch len(year) {
	case 2:
		y += 2000
	case 4:
	default:
		return fmt.Errorf("invalid expiration year")
	}
	if y < now.Year() || (y == now.Year() && m < int(now.Month())) {
		return fmt.Errorf("card is expired")
	}
	return nil
}

// ValidateCVV expects four digits for American Express and three otherwise.
func ValidateCVV(cvv string, brand Brand) error {
	want := 3
	if brand == BrandAmex {
		want = 4
	}
	if len(cvv) != want || !IsDigits(cvv) {
		return fmt.Errorf("cvv must be %d digits", want)
	}
	return nil
}
