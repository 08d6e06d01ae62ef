package bintext

import (
	"github.com/yyyoichi/bintext/codec"
)

// Codec is the text <-> binary conversion a State switches through.
// *codec.Codec implements it.
type Codec interface {
	Encode(src string) string
	Decode(src string) (string, error)
}

var _ Codec = (*codec.Codec)(nil)

// Encode renders text as space-separated 8-digit binary groups.
// This is a convenience wrapper around codec.Encode.
func Encode(text string) string {
	return codec.Encode(text)
}

// Decode converts space-separated binary groups back into text.
// This is a convenience wrapper around codec.Decode; invalid input returns
// an error wrapping codec.ErrInvalidToken.
func Decode(binary string) (string, error) {
	return codec.Decode(binary)
}
