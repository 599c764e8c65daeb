// Package errors provides structured error types for the textcodec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes a field path and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidInput).
//		Path("units", "3").
//		Detail("not a 16-bit value").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidInput(errors.PhaseParse, "empty unit list", raw)
//	err := errors.EntropyUnavailable(cause)
//
// The encoder core (utf16x) is a total function and never produces an
// error; this package serves the parsing, validation, and identifier
// surfaces around it. All errors implement the standard error interface
// and support errors.Is/As.
package errors
