package utf16x

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"

	"github.com/wippyai/textcodec/errors"
)

// Native returns a NativeFunc backed by the golang.org/x/text UTF-16
// decoder. It is the stock delegate for hosts that want the ecosystem
// transcoder instead of the manual loop:
//
//	enc := utf16x.NewEncoder(utf16x.WithNative(utf16x.Native()))
//
// The x/text decoder replaces every unpaired surrogate, lone lows
// included, with U+FFFD. That satisfies the delegate contract (identical
// output for all well-formed inputs) but differs from the manual
// algorithm's lone-low pass-through.
func Native() NativeFunc {
	return func(units []uint16) ([]byte, error) {
		if len(units) == 0 {
			return []byte{}, nil
		}

		scratch := getScratch()
		defer putScratch(scratch)

		raw := *scratch
		for _, u := range units {
			raw = binary.LittleEndian.AppendUint16(raw, u)
		}
		*scratch = raw

		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		out, err := dec.Bytes(raw)
		if err != nil {
			return nil, errors.New(errors.PhaseEncode, errors.KindInvalidData).
				Detail("native transcoder failed on %d code units", len(units)).
				Cause(err).
				Build()
		}
		return out, nil
	}
}
