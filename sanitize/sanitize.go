package sanitize

import "regexp"

var (
	// appIDInvalid matches every character an application id may not carry.
	appIDInvalid = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

	// urlPattern accepts scheme://host with an optional path/query tail and
	// no embedded whitespace. It is a transport-shape check, not a full
	// RFC 3986 parse.
	urlPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://[^\s/?#]+[^\s]*$`)

	// headerNamePattern is the RFC 7230 token grammar.
	headerNamePattern = regexp.MustCompile("^[!#$%&'*+\\-.^_`|~0-9A-Za-z]+$")

	// headerValuePattern allows visible ASCII plus SP and HTAB.
	headerValuePattern = regexp.MustCompile(`^[\t\x20-\x7E]*$`)
)

// AppID strips every character outside [a-zA-Z0-9._-] from s. The empty
// string passes through unchanged.
func AppID(s string) string {
	if s == "" {
		return s
	}
	return appIDInvalid.ReplaceAllString(s, "")
}

// ValidURL reports whether s has the shape of an absolute URL suitable for
// a transport endpoint.
func ValidURL(s string) bool {
	return urlPattern.MatchString(s)
}

// ValidHeaderName reports whether s is a legal HTTP header field name.
func ValidHeaderName(s string) bool {
	return headerNamePattern.MatchString(s)
}

// ValidHeaderValue reports whether s is a legal HTTP header field value.
// The empty value is legal.
func ValidHeaderValue(s string) bool {
	return headerValuePattern.MatchString(s)
}
