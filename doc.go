// Package textcodec provides portable text transcoding for host runtimes
// whose native string representation is UTF-16 code units.
//
// The core is a UTF-16 to UTF-8 encoder with an explicit substitution
// policy for malformed surrogate sequences; around it sit the small
// validation and identity helpers a serialization boundary needs.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	textcodec/       Root package with convenience entry points
//	├── utf16x/      UTF-16 → UTF-8 encoding core and native delegation
//	├── guard/       Type-guard predicates and JSON value shape checking
//	├── sanitize/    Application-id sanitizing, URL/header validation
//	├── ident/       UUID v4 generation with entropy fallback
//	├── truncate/    Length capping with diagnostics reporting
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Encode a code-unit sequence:
//
//	units := []uint16{0x48, 0x69, 0xD83D, 0xDE00} // "Hi😀"
//	out := textcodec.Encode(units)                // "Hi\xf0\x9f\x98\x80"
//
// Prefer a native transcoder and require well-formed output:
//
//	enc := utf16x.NewEncoder(
//	    utf16x.WithNative(utf16x.Native()),
//	    utf16x.WithStrict(),
//	)
//	out := enc.Encode(units)
//
// # Substitution, Not Errors
//
// Encoding is total: a high surrogate that cannot be paired becomes the
// three-byte replacement marker 0xEF 0xBF 0xBD (U+FFFD) and the scan
// continues. No input is ever rejected.
//
// # Thread Safety
//
// Every exported function and constructed Encoder is safe for concurrent
// use; calls share no state and allocate their own output.
package textcodec
