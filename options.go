package bintext

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/bintext/codec"
)

type Option func(*Session) error

// WithCodec replaces the conversion used on mode switches.
func WithCodec(c Codec) Option {
	return func(s *Session) error {
		if c == nil {
			return errors.New("nil codec")
		}
		s.codec = c
		return nil
	}
}

// WithCharset converts through the named single-byte charset instead of raw
// code points. See codec.WithCharset for accepted names.
func WithCharset(name string) Option {
	return func(s *Session) error {
		c, err := codec.New(codec.WithCharset(name))
		if err != nil {
			return err
		}
		s.codec = c
		return nil
	}
}

// WithCommitOnError makes a failed switch to ASCII still change the mode,
// with codec.Marker left in the buffer.
func WithCommitOnError() Option {
	return func(s *Session) error {
		s.policy = CommitOnError
		return nil
	}
}

// WithOnSwitch registers fn to be called after every committed mode change.
// It is not called for no-op or aborted switches, nor for edits.
func WithOnSwitch(fn func(from, to State)) Option {
	return func(s *Session) error {
		if fn != nil {
			s.onSwitch = append(s.onSwitch, fn)
		}
		return nil
	}
}

// WithInitialState starts the session from st instead of an empty ASCII buffer.
func WithInitialState(st State) Option {
	return func(s *Session) error {
		if !st.Mode.valid() {
			return fmt.Errorf("%w: %d", ErrUnknownMode, st.Mode)
		}
		s.state = st
		return nil
	}
}
