package utf16x

// NativeFunc is an injected native transcoder capability. It receives the
// full code-unit sequence and returns the UTF-8 encoding. A NativeFunc must
// agree with the manual algorithm for all well-formed inputs; on malformed
// surrogate sequences it may substitute differently as long as it uses
// U+FFFD. Returning an error makes the encoder fall back to the manual
// algorithm for that call, so the encode itself still never fails.
type NativeFunc func(units []uint16) ([]byte, error)

// Encoder converts UTF-16 code units to UTF-8 bytes. The zero value and
// NewEncoder() both use the manual fallback algorithm; capabilities are
// injected once at construction, not probed per call.
//
// An Encoder is immutable after construction and safe for concurrent use.
type Encoder struct {
	native NativeFunc
	strict bool
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithNative injects a native transcoder delegate. The delegate is
// preferred over the manual algorithm on every call.
func WithNative(fn NativeFunc) Option {
	return func(e *Encoder) { e.native = fn }
}

// WithStrict makes the encoder substitute U+FFFD for lone low surrogates
// as well, so output is always well-formed UTF-8. This deviates from the
// historical pass-through behavior of Encode; see the package documentation.
func WithStrict() Option {
	return func(e *Encoder) { e.strict = true }
}

// NewEncoder returns an Encoder configured by opts.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode converts units to UTF-8 bytes. It prefers the native delegate when
// one was injected and falls back to the manual algorithm otherwise, or when
// the delegate errors. Encode never fails.
func (e *Encoder) Encode(units []uint16) []byte {
	if e.native != nil {
		if b, err := e.native(units); err == nil {
			if b == nil {
				b = []byte{}
			}
			return b
		}
	}
	return encode(units, e.strict)
}

// EncodedLen returns the byte length the manual algorithm produces for
// units under this encoder's substitution policy.
func (e *Encoder) EncodedLen(units []uint16) int {
	return encodedLen(units, e.strict)
}

// AppendEncode appends the manual encoding of units to dst. The native
// delegate is not consulted; use Encode for the delegated path.
func (e *Encoder) AppendEncode(dst []byte, units []uint16) []byte {
	return appendEncode(dst, units, e.strict)
}
