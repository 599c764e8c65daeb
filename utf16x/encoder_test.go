package utf16x

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf16"
)

func TestEncoder_Default(t *testing.T) {
	enc := NewEncoder()
	units := []uint16{'h', 'i', 0xD83D, 0xDE00}

	got := enc.Encode(units)
	want := Encode(units)
	if !bytes.Equal(got, want) {
		t.Errorf("default Encoder diverged from Encode: % X vs % X", got, want)
	}
}

func TestEncoder_DelegatePreferred(t *testing.T) {
	marker := []byte("delegate-output")
	var calls int
	enc := NewEncoder(WithNative(func(units []uint16) ([]byte, error) {
		calls++
		return marker, nil
	}))

	got := enc.Encode([]uint16{'x'})
	if !bytes.Equal(got, marker) {
		t.Errorf("Encode = %q, want delegate output", got)
	}
	if calls != 1 {
		t.Errorf("delegate called %d times, want 1", calls)
	}
}

func TestEncoder_DelegateErrorFallsBack(t *testing.T) {
	enc := NewEncoder(WithNative(func(units []uint16) ([]byte, error) {
		return nil, errors.New("capability revoked")
	}))

	units := []uint16{'o', 'k', 0xD800}
	got := enc.Encode(units)
	want := Encode(units)
	if !bytes.Equal(got, want) {
		t.Errorf("fallback output % X, want manual % X", got, want)
	}
}

func TestEncoder_DelegateNilResult(t *testing.T) {
	enc := NewEncoder(WithNative(func(units []uint16) ([]byte, error) {
		return nil, nil
	}))

	got := enc.Encode([]uint16{})
	if got == nil {
		t.Error("Encode returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Encode = % X, want empty", got)
	}
}

func TestEncoder_Strict(t *testing.T) {
	enc := NewEncoder(WithStrict())

	tests := []struct {
		name  string
		units []uint16
		want  []byte
	}{
		{"lone low substituted", []uint16{0xDC00}, replacement},
		{"low between ascii", []uint16{'a', 0xDFFF, 'b'},
			append(append([]byte{'a'}, replacement...), 'b')},
		{"dangling high still substituted", []uint16{0xD800}, replacement},
		{"valid pair untouched", []uint16{0xD83D, 0xDE00}, []byte{0xF0, 0x9F, 0x98, 0x80}},
		{"plain text untouched", []uint16{'o', 'k'}, []byte("ok")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enc.Encode(tt.units)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%#v) = % X, want % X", tt.units, got, tt.want)
			}
			if n := enc.EncodedLen(tt.units); n != len(tt.want) {
				t.Errorf("EncodedLen(%#v) = %d, want %d", tt.units, n, len(tt.want))
			}
		})
	}
}

func TestEncoder_StrictMatchesDefaultOnWellFormed(t *testing.T) {
	strict := NewEncoder(WithStrict())
	corpus := []string{"", "ascii", "héllo", "中文", "pair 😀 here"}

	for _, s := range corpus {
		units := utf16.Encode([]rune(s))
		if got, want := strict.Encode(units), Encode(units); !bytes.Equal(got, want) {
			t.Errorf("strict diverged on well-formed %q: % X vs % X", s, got, want)
		}
	}
}

func TestEncoder_AppendEncode(t *testing.T) {
	enc := NewEncoder(WithStrict())
	got := enc.AppendEncode([]byte{'>'}, []uint16{0xDC00})
	want := append([]byte{'>'}, replacement...)
	if !bytes.Equal(got, want) {
		t.Errorf("AppendEncode = % X, want % X", got, want)
	}
}
