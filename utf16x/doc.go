// Package utf16x encodes UTF-16 code-unit sequences as UTF-8 bytes.
//
// Host runtimes whose native string representation is UTF-16 (JS engines,
// Windows APIs, components compiled with string-encoding=utf16) hand over
// text as raw 16-bit code units. This package converts such sequences to
// UTF-8 for transmission or storage, with an explicit policy for malformed
// surrogate sequences instead of an error channel.
//
// # Scan Model
//
// Encoding is a single left-to-right walk with one unit of lookahead,
// expressed as a two-state machine:
//
//	scanNormal       each unit stands on its own
//	scanPendingHigh  a high surrogate is held, awaiting its low half
//
// Resolution per step:
//
//	high + low        one supplementary code point, both units consumed
//	high + non-low    U+FFFD for the high; the follower is re-evaluated
//	high at end       U+FFFD
//	anything else     the unit's value, unchanged
//
// A lone low surrogate therefore passes through as a plain 3-byte sequence.
// That mirrors what permissive hosts emit but is not well-formed UTF-8;
// construct an Encoder with WithStrict to substitute U+FFFD there too.
//
// # Totality
//
// Encode never fails. Malformed input is substituted, not rejected, so
// correctness is a matter of substitution behavior rather than error
// propagation. There is no context, no cancellation, and no shared state;
// every function here is safe for concurrent use.
//
// # Delegation
//
// A native transcoder can be injected once at construction:
//
//	enc := utf16x.NewEncoder(utf16x.WithNative(utf16x.Native()))
//	out := enc.Encode(units)
//
// The delegate is preferred on every call; the manual algorithm is the
// fallback when none is injected or the delegate errors. Delegate and
// fallback agree byte-for-byte on all well-formed inputs.
//
// # Allocation
//
// Encode measures first (EncodedLen) and allocates the result exactly once.
// AppendEncode reuses a caller-provided buffer for zero-allocation loops.
package utf16x
