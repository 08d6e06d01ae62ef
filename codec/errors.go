package codec

import (
	"errors"
	"fmt"
)

// Marker is the text shown in place of decoded output when a binary input
// cannot be decoded.
const Marker = "Error: Invalid binary input"

var (
	ErrInvalidToken       = errors.New("invalid binary token")
	ErrUnsupportedCharset = errors.New("unsupported charset")
)

// TokenError reports the first whitespace-delimited token that is not
// 1 to 8 binary digits. It unwraps to ErrInvalidToken.
type TokenError struct {
	Token string
	// Index is the zero-based position of Token among all tokens.
	Index int
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%v: %q at token %d", ErrInvalidToken, e.Token, e.Index)
}

func (e *TokenError) Unwrap() error {
	return ErrInvalidToken
}

// Message returns the user-facing text for a decode error: Marker for an
// invalid token, the error text otherwise, and "" for nil.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidToken):
		return Marker
	default:
		return err.Error()
	}
}
