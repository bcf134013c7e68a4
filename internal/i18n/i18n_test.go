// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"testing"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
	if codes := LocaleCodes(); len(codes) != 2 || codes[0] != "de" || codes[1] != "en" {
		t.Fatalf("unexpected locale codes: %v", codes)
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("status.fetching_client_token"); got != "Fetching Client Token..." {
		t.Fatalf("expected fetching message, got %q", got)
	}

	// fmt-style formatting via non-map arguments
	if got := T("status.presenting", "Drop-in"); got != "Presenting Drop-in" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	defer SetLang("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("status.ready"); got != "Bereit" {
		t.Fatalf("expected German 'Bereit', got %q", got)
	}
}

func TestT_UnknownIDFallsBackToID(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected message id fallback, got %q", got)
	}
}
