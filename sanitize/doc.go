// Package sanitize provides regex-based cleanup and format checks for the
// identifiers and transport fields that travel alongside encoded text:
// application ids, endpoint URLs, and HTTP header names/values.
package sanitize
