// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package cardinfo

import "strconv"

// Brand is the card network, spelled the way payment method types are
// reported to the merchant.
type Brand string

const (
	BrandUnknown    Brand = ""
	BrandVisa       Brand = "Visa"
	BrandMasterCard Brand = "MasterCard"
	BrandAmex       Brand = "American Express"
	BrandDiscover   Brand = "Discover"
	BrandJCB        Brand = "JCB"
	BrandUnionPay   Brand = "UnionPay"

	// BrandPayPal has no card range; it only appears in wallet nonces.
	BrandPayPal Brand = "PayPal"
)

type binRange struct {
	lo, hi int
	digits int
	brand  Brand
}

// Checked in order; the first matching prefix range wins.
var binRanges = []binRange{
	{4, 4, 1, BrandVisa},
	{34, 34, 2, BrandAmex},
	{37, 37, 2, BrandAmex},
	{51, 55, 2, BrandMasterCard},
	{2221, 2720, 4, BrandMasterCard},
	{6011, 6011, 4, BrandDiscover},
	{644, 649, 3, BrandDiscover},
	{3528, 3589, 4, BrandJCB},
	{62, 62, 2, BrandUnionPay},
	{65, 65, 2, BrandDiscover},
}

// DetectBrand returns the network for a (normalised) PAN prefix.
func DetectBrand(pan string) Brand {
	pan = NormalizePAN(pan)
	if !IsDigits(pan) {
		return BrandUnknown
	}
	for _, r := range binRanges {
		if len(pan) < r.digits {
			continue
		}
		n, err := strconv.Atoi(pan[:r.digits])
		if err != nil {
			continue
		}
		if n >= r.lo && n <= r.hi {
			return r.brand
		}
	}
	return BrandUnknown
}

// Slug is the lower-case token used inside fake nonces.
func (b Brand) Slug() string {
	switch b {
	case BrandVisa:
		return "visa"
	case BrandMasterCard:
		return "mastercard"
	case BrandAmex:
		return "amex"
	case BrandDiscover:
		return "discover"
	case BrandJCB:
		return "jcb"
	case BrandUnionPay:
		return "unionpay"
	case BrandPayPal:
		return "paypal"
	default:
		return "card"
	}
}

// BrandFromSlug reverses Slug; unknown slugs map to BrandUnknown.
func BrandFromSlug(slug string) Brand {
	for _, b := range []Brand{BrandVisa, BrandMasterCard, BrandAmex, BrandDiscover, BrandJCB, BrandUnionPay, BrandPayPal} {
		if b.Slug() == slug {
			return b
		}
	}
	return BrandUnknown
}
