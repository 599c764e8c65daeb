package utf16x

import (
	"bytes"
	"testing"
	"unicode/utf16"
)

func TestNative_MatchesManualOnWellFormed(t *testing.T) {
	native := Native()
	corpus := []string{
		"",
		"plain ascii text",
		"héllo wörld",
		"中文文本",
		"emoji 😀😁 run",
		"boundary ߿ࠀ￿\U00010000\U0010ffff",
	}

	for _, s := range corpus {
		units := utf16.Encode([]rune(s))

		got, err := native(units)
		if err != nil {
			t.Fatalf("native(%q) returned error: %v", s, err)
		}
		if want := Encode(units); !bytes.Equal(got, want) {
			t.Errorf("native diverged on %q: % X vs % X", s, got, want)
		}
	}
}

func TestNative_Empty(t *testing.T) {
	native := Native()
	got, err := native(nil)
	if err != nil {
		t.Fatalf("native(nil) returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("native(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestNative_SubstitutesUnpairedSurrogates(t *testing.T) {
	// The delegate contract requires the replacement marker for unpaired
	// surrogates but not bit-for-bit agreement with the manual fallback.
	native := Native()

	for _, units := range [][]uint16{{0xD800}, {0xD800, 'A'}} {
		got, err := native(units)
		if err != nil {
			t.Fatalf("native(%#v) returned error: %v", units, err)
		}
		if !bytes.Contains(got, replacement) {
			t.Errorf("native(%#v) = % X, missing replacement marker", units, got)
		}
	}
}

func TestNative_ThroughEncoder(t *testing.T) {
	enc := NewEncoder(WithNative(Native()))
	units := utf16.Encode([]rune("delegated 😀"))

	got := enc.Encode(units)
	want := Encode(units)
	if !bytes.Equal(got, want) {
		t.Errorf("delegated encode diverged: % X vs % X", got, want)
	}
}
