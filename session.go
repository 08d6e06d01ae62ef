package bintext

// Session holds the mode and buffer of one converter view and applies the
// host's events to them: mode switch requests and buffer edits.
//
// A Session is driven by a single actor and is not safe for concurrent use.
type Session struct {
	state    State
	codec    Codec
	policy   Policy
	onSwitch []func(from, to State)
}

// New initializes a session in ASCII mode with an empty buffer.
// The codec, failure policy and switch observers can be optionally specified.
func New(opts ...Option) (*Session, error) {
	s := new(Session)
	if err := s.init(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Switch requests mode m.
//
// Process:
//  1. A request for the active mode is a no-op.
//  2. The buffer is encoded (to Binary) or decoded (to ASCII).
//  3. The new mode and buffer are committed together and observers are notified.
//
// With AbortOnError a decode failure returns the error and commits nothing.
func (s *Session) Switch(m Mode) error {
	next, err := s.state.transition(m, s.codec, s.policy)
	if err != nil {
		return err
	}
	if next.Mode == s.state.Mode {
		return nil
	}
	prev := s.state
	s.state = next
	for _, fn := range s.onSwitch {
		fn(prev, next)
	}
	return nil
}

// Toggle switches to the mode that is not active.
func (s *Session) Toggle() error {
	return s.Switch(s.state.Mode.Other())
}

// Edit replaces the buffer verbatim without changing the mode.
func (s *Session) Edit(text string) {
	s.state = s.state.Edit(text)
}

func (s *Session) Mode() Mode {
	return s.state.Mode
}

func (s *Session) Text() string {
	return s.state.Text
}

// State returns a copy of the current mode and buffer.
func (s *Session) State() State {
	return s.state
}

func (s *Session) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	if s.codec == nil {
		s.codec = std
	}
	return nil
}
