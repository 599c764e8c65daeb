package utf16x

// UTF-16 surrogate ranges and the pair offset:
// 0xD800-0xDBFF carries the high 10 bits of a supplementary code point,
// 0xDC00-0xDFFF the low 10 bits, and the combined value is offset by 0x10000.
const (
	surrHigh = 0xD800
	surrLow  = 0xDC00
	surrEnd  = 0xE000

	surrOffset = 0x10000

	// runeError is U+FFFD, substituted for every unpaired surrogate.
	runeError = 0xFFFD

	// UTF-8 length thresholds
	max1B = 0x7F
	max2B = 0x7FF
	max3B = 0xFFFF
)

// scanState tracks the walk over the input. The scan is a two-state
// machine: scanNormal evaluates each code unit on its own; scanPendingHigh
// holds a high surrogate waiting for its low half.
type scanState int

const (
	scanNormal scanState = iota
	scanPendingHigh
)

func isHigh(u uint16) bool { return u >= surrHigh && u < surrLow }
func isLow(u uint16) bool  { return u >= surrLow && u < surrEnd }

// combine merges a high/low surrogate pair into a supplementary code point.
func combine(hi, lo uint16) uint32 {
	return (uint32(hi)-surrHigh)<<10 + (uint32(lo) - surrLow) + surrOffset
}

// scan walks units left to right with one unit of lookahead, resolving each
// step to exactly one code point passed to emit. Unpaired high surrogates
// resolve to U+FFFD; the unit that broke the pair is re-evaluated as a fresh
// candidate, never skipped. Lone low surrogates pass through as ordinary
// code points unless strict is set, in which case they also resolve to
// U+FFFD so the output is always well-formed UTF-8.
func scan(units []uint16, strict bool, emit func(uint32)) {
	state := scanNormal
	var pending uint16

	for _, u := range units {
		if state == scanPendingHigh {
			if isLow(u) {
				emit(combine(pending, u))
				state = scanNormal
				continue
			}
			// Broken pair: substitute for the held high surrogate, then
			// fall through to evaluate u as a new candidate.
			emit(runeError)
			state = scanNormal
		}

		switch {
		case isHigh(u):
			pending = u
			state = scanPendingHigh
		case strict && isLow(u):
			emit(runeError)
		default:
			emit(uint32(u))
		}
	}

	if state == scanPendingHigh {
		// Dangling high surrogate at end of input.
		emit(runeError)
	}
}

// utf8Len returns the encoded byte length of a single code point.
func utf8Len(r uint32) int {
	switch {
	case r <= max1B:
		return 1
	case r <= max2B:
		return 2
	case r <= max3B:
		return 3
	default:
		return 4
	}
}

// appendPoint appends the UTF-8 encoding of r to dst. Bits are packed
// most-significant-first; continuation bytes carry the 10xxxxxx prefix.
func appendPoint(dst []byte, r uint32) []byte {
	switch {
	case r <= max1B:
		return append(dst, byte(r))
	case r <= max2B:
		return append(dst,
			byte(0xC0|r>>6),
			byte(0x80|r&0x3F))
	case r <= max3B:
		return append(dst,
			byte(0xE0|r>>12),
			byte(0x80|r>>6&0x3F),
			byte(0x80|r&0x3F))
	default:
		return append(dst,
			byte(0xF0|r>>18),
			byte(0x80|r>>12&0x3F),
			byte(0x80|r>>6&0x3F),
			byte(0x80|r&0x3F))
	}
}

// EncodedLen returns the exact number of bytes Encode produces for units.
// It runs the same scan as Encode without emitting bytes.
func EncodedLen(units []uint16) int {
	return encodedLen(units, false)
}

func encodedLen(units []uint16, strict bool) int {
	n := 0
	scan(units, strict, func(r uint32) {
		n += utf8Len(r)
	})
	return n
}

// Encode converts a sequence of UTF-16 code units into UTF-8 bytes.
//
// Encode is total: every input produces output. A high surrogate with no
// following low surrogate is replaced by U+FFFD ({0xEF, 0xBF, 0xBD}) and the
// scan resumes at the next unit. A lone low surrogate is encoded as a plain
// 3-byte sequence, matching the historical behavior of host environments
// that expose raw UTF-16; use an Encoder with Strict for well-formed output.
//
// The result is freshly allocated on every call; Encode keeps no state and
// is safe for concurrent use.
func Encode(units []uint16) []byte {
	return encode(units, false)
}

func encode(units []uint16, strict bool) []byte {
	if len(units) == 0 {
		return []byte{}
	}
	// Measuring pre-pass, then a single exact allocation.
	dst := make([]byte, 0, encodedLen(units, strict))
	return appendEncode(dst, units, strict)
}

// AppendEncode appends the UTF-8 encoding of units to dst and returns the
// extended slice, growing it as needed.
func AppendEncode(dst []byte, units []uint16) []byte {
	return appendEncode(dst, units, false)
}

func appendEncode(dst []byte, units []uint16, strict bool) []byte {
	scan(units, strict, func(r uint32) {
		dst = appendPoint(dst, r)
	})
	return dst
}
