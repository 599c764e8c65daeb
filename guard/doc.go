// Package guard provides type-guard predicates over dynamically typed
// values, plus a recursive shape check for decoded JSON values.
//
// The predicates answer the questions a serialization boundary asks before
// handing a value to an encoder: is this a string, a number, an integral
// number, a keyed object, a value that survives a JSON round trip. They
// return booleans only; nothing here produces an error.
package guard
