package bintext

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownMode = errors.New("unknown mode")
)

// Mode selects how the shared buffer is read: as literal text or as
// whitespace-separated binary groups.
type Mode uint8

const (
	// ASCII is the initial mode; the buffer holds literal text.
	ASCII Mode = iota
	// Binary holds one group of binary digits per character.
	Binary
)

// ParseMode returns the mode named s, ignoring case and surrounding spaces.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascii":
		return ASCII, nil
	case "binary":
		return Binary, nil
	}
	return ASCII, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) String() string {
	switch m {
	case ASCII:
		return "ascii"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// DisplayName returns the label shown on the mode selector.
func (m Mode) DisplayName() string {
	switch m {
	case ASCII:
		return "ASCII"
	case Binary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// Placeholder returns the hint shown while the buffer is empty.
func (m Mode) Placeholder() string {
	if m == Binary {
		return "Enter Binary text here (e.g., 01101000 01101001)"
	}
	return "Enter ASCII text here..."
}

// Monospace reports whether the buffer should be rendered in a fixed-width font.
func (m Mode) Monospace() bool {
	return m == Binary
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == Binary {
		return ASCII
	}
	return Binary
}

func (m Mode) valid() bool {
	return m == ASCII || m == Binary
}
