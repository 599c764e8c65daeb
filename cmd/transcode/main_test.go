package main

import (
	"errors"
	"reflect"
	"testing"

	codecerrors "github.com/wippyai/textcodec/errors"
)

func TestParseUnits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []uint16
	}{
		{"hex prefixed", "0xD83D,0xDE00", []uint16{0xD83D, 0xDE00}},
		{"bare hex", "D83D DE00", []uint16{0xD83D, 0xDE00}},
		{"decimal", "65,66", []uint16{65, 66}},
		{"mixed separators", "0x41, 0x42\t0x43", []uint16{0x41, 0x42, 0x43}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUnits(tt.input)
			if err != nil {
				t.Fatalf("parseUnits(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseUnits(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseUnits_Invalid(t *testing.T) {
	for _, input := range []string{"", "  ", "zz", "0x10000", "65,nope"} {
		t.Run(input, func(t *testing.T) {
			_, err := parseUnits(input)
			if err == nil {
				t.Fatalf("parseUnits(%q) succeeded, want error", input)
			}
			var structured *codecerrors.Error
			if !errors.As(err, &structured) {
				t.Errorf("parseUnits(%q) returned unstructured error %T", input, err)
			}
		})
	}
}

func TestResolveUnits_PrefersUnits(t *testing.T) {
	got, err := resolveUnits("ignored", "0x41")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 0x41 {
		t.Errorf("resolveUnits = %#v, want [0x41]", got)
	}
}
