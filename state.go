package bintext

import (
	"fmt"

	"github.com/yyyoichi/bintext/codec"
)

// Policy decides what a failed binary -> ascii switch does.
type Policy uint8

const (
	// AbortOnError keeps the mode and buffer unchanged and returns the decode error.
	AbortOnError Policy = iota
	// CommitOnError switches to ASCII anyway and leaves codec.Marker in the buffer.
	CommitOnError
)

// State is the mode and the shared buffer. The zero value is the start of a
// session: ASCII with an empty buffer.
type State struct {
	Mode Mode
	Text string
}

// SwitchMode moves the buffer from current into requested, encoding on the way
// to Binary and decoding on the way to ASCII. Requesting the current mode
// changes nothing. On a decode error current and buffer are returned as given.
func SwitchMode(requested, current Mode, buffer string) (Mode, string, error) {
	s, err := State{Mode: current, Text: buffer}.Switch(requested)
	return s.Mode, s.Text, err
}

// EditBuffer returns newText verbatim. Edits are not validated against either
// mode; a buffer that does not decode is only reported by the next switch.
func EditBuffer(newText, buffer string) string {
	return newText
}

// Switch returns the state after a request for mode m, using the default
// codec and AbortOnError.
func (s State) Switch(m Mode) (State, error) {
	return s.transition(m, std, AbortOnError)
}

// Edit returns s with its buffer replaced by text.
func (s State) Edit(text string) State {
	s.Text = EditBuffer(text, s.Text)
	return s
}

var std Codec = new(codec.Codec)

func (s State) transition(m Mode, c Codec, p Policy) (State, error) {
	if !m.valid() {
		return s, fmt.Errorf("%w: %d", ErrUnknownMode, m)
	}
	if m == s.Mode {
		return s, nil
	}
	next := State{Mode: m}
	switch m {
	case Binary:
		next.Text = c.Encode(s.Text)
	case ASCII:
		text, err := c.Decode(s.Text)
		if err != nil {
			if p != CommitOnError {
				return s, err
			}
			text = codec.Message(err)
		}
		next.Text = text
	}
	return next, nil
}
