package codec

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// Option configures a Codec.
type Option func(*Codec) error

// WithCharset maps characters through the named single-byte IANA charset,
// for example "windows-1252" or "IBM437".
// Multi-byte charsets such as UTF-8 are rejected with ErrUnsupportedCharset.
func WithCharset(name string) Option {
	return func(c *Codec) error {
		enc, err := ianaindex.IANA.Encoding(name)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrUnsupportedCharset, name, err)
		}
		cm, ok := enc.(*charmap.Charmap)
		if !ok || cm == nil {
			return fmt.Errorf("%w: %q is not a single-byte charset", ErrUnsupportedCharset, name)
		}
		c.cm = cm
		return nil
	}
}

// WithCharmap maps characters through cm. A nil cm restores the default
// mapping where a character's code is its Unicode code point.
func WithCharmap(cm *charmap.Charmap) Option {
	return func(c *Codec) error {
		c.cm = cm
		return nil
	}
}
