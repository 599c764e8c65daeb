// Package ident generates the v4 UUIDs used to tag encoded payloads.
//
// Generation is total: the crypto-backed source is preferred, and a
// pseudo-random fill takes over when it is unavailable, so callers always
// receive a well-formed identifier.
package ident
