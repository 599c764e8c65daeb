package textcodec

import "github.com/wippyai/textcodec/utf16x"

// Encode converts a sequence of UTF-16 code units into UTF-8 bytes using
// the manual fallback algorithm. See utf16x.Encode.
func Encode(units []uint16) []byte {
	return utf16x.Encode(units)
}

// EncodedLen returns the exact byte length Encode produces for units.
func EncodedLen(units []uint16) int {
	return utf16x.EncodedLen(units)
}

// AppendEncode appends the UTF-8 encoding of units to dst.
func AppendEncode(dst []byte, units []uint16) []byte {
	return utf16x.AppendEncode(dst, units)
}
