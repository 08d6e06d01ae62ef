package codec

import (
	"strings"

	"github.com/yyyoichi/bintext/internal/bitconv"
	"golang.org/x/text/encoding/charmap"
)

const (
	// TokenWidth is the number of digits an 8-bit character code is padded to,
	// and the longest token Decode accepts.
	TokenWidth = 8
)

var std = &Codec{}

// Encode renders src as space-separated binary groups using the default mapping.
func Encode(src string) string {
	return std.Encode(src)
}

// Decode converts space-separated binary groups back into text using the
// default mapping. It returns a *TokenError on the first invalid token.
func Decode(src string) (string, error) {
	return std.Decode(src)
}

// DecodeOrMarker is Decode with invalid input reported as Marker.
func DecodeOrMarker(src string) string {
	return std.DecodeOrMarker(src)
}

// Codec converts between text and its binary digit representation.
// The zero value uses Unicode code points as character codes.
type Codec struct {
	cm *charmap.Charmap
}

// New returns a Codec configured by opts.
func New(opts ...Option) (*Codec, error) {
	c := new(Codec)
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Encode renders every character of src as its code in base 2, left padded
// with zeros to TokenWidth digits, and joins them with single spaces.
// Codes that need more than TokenWidth digits keep all of them, as do
// characters outside the configured charset.
func (c *Codec) Encode(src string) string {
	if src == "" {
		return ""
	}
	s := bitconv.NewStream()
	for _, r := range src {
		v, width := c.code(r)
		s.WriteValue(v, width)
	}
	return strings.Join(s.Digits(), " ")
}

// Decode splits src on whitespace and converts each token of 1 to
// TokenWidth binary digits into one character.
// Decoding is all or nothing: the first invalid token aborts with a
// *TokenError and an empty result.
func (c *Codec) Decode(src string) (string, error) {
	tokens := strings.Fields(src)
	if len(tokens) == 0 {
		return "", nil
	}
	s := bitconv.NewStream()
	for i, tok := range tokens {
		if !s.WriteDigits(tok, TokenWidth) {
			return "", &TokenError{Token: tok, Index: i}
		}
	}
	var b strings.Builder
	b.Grow(len(tokens))
	for _, v := range s.Values() {
		b.WriteRune(c.char(byte(v)))
	}
	return b.String(), nil
}

// DecodeOrMarker is Decode with invalid input reported as Marker.
func (c *Codec) DecodeOrMarker(src string) string {
	out, err := c.Decode(src)
	if err != nil {
		return Message(err)
	}
	return out
}

// code returns the character code of r and the minimum number of digits to
// render it with. A rune the charmap cannot encode keeps its code point and
// gets more than TokenWidth digits, so Decode rejects it instead of mapping it
// to another character.
func (c *Codec) code(r rune) (uint32, int) {
	if c.cm == nil {
		return uint32(r), TokenWidth
	}
	if b, ok := c.cm.EncodeRune(r); ok {
		return uint32(b), TokenWidth
	}
	return uint32(r), TokenWidth + 1
}

func (c *Codec) char(b byte) rune {
	if c.cm != nil {
		return c.cm.DecodeByte(b)
	}
	return rune(b)
}
