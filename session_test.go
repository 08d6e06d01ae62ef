package bintext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/bintext/codec"
)

func TestSession(t *testing.T) {
	t.Run("starts empty in ascii", func(t *testing.T) {
		s, err := New()
		require.NoError(t, err)
		assert.Equal(t, ASCII, s.Mode())
		assert.Equal(t, "", s.Text())
		assert.Equal(t, State{}, s.State())
	})

	t.Run("edit and switch", func(t *testing.T) {
		s, err := New()
		require.NoError(t, err)

		s.Edit("Hi")
		require.NoError(t, s.Switch(Binary))
		assert.Equal(t, State{Mode: Binary, Text: "01001000 01101001"}, s.State())

		// hand-typed binary with short tokens and loose spacing
		s.Edit("  1000001   1101000 ")
		require.NoError(t, s.Switch(ASCII))
		assert.Equal(t, State{Mode: ASCII, Text: "Ah"}, s.State())
	})

	t.Run("toggle twice restores the buffer", func(t *testing.T) {
		s, err := New(WithInitialState(State{Text: "round trip"}))
		require.NoError(t, err)
		require.NoError(t, s.Toggle())
		assert.Equal(t, Binary, s.Mode())
		require.NoError(t, s.Toggle())
		assert.Equal(t, State{Mode: ASCII, Text: "round trip"}, s.State())
	})

	t.Run("same mode is a no-op", func(t *testing.T) {
		var calls int
		s, err := New(WithOnSwitch(func(_, _ State) { calls++ }))
		require.NoError(t, err)
		s.Edit("x")
		for range 3 {
			require.NoError(t, s.Switch(ASCII))
		}
		assert.Equal(t, State{Mode: ASCII, Text: "x"}, s.State())
		assert.Zero(t, calls)
	})

	t.Run("abort on invalid binary", func(t *testing.T) {
		var calls int
		s, err := New(
			WithInitialState(State{Mode: Binary}),
			WithOnSwitch(func(_, _ State) { calls++ }),
		)
		require.NoError(t, err)
		s.Edit("hello")
		err = s.Switch(ASCII)
		assert.True(t, errors.Is(err, codec.ErrInvalidToken))
		assert.Equal(t, State{Mode: Binary, Text: "hello"}, s.State())
		assert.Zero(t, calls)
	})

	t.Run("commit on invalid binary", func(t *testing.T) {
		var got [][2]State
		s, err := New(
			WithInitialState(State{Mode: Binary, Text: "0100100001101001"}),
			WithCommitOnError(),
			WithOnSwitch(func(from, to State) { got = append(got, [2]State{from, to}) }),
		)
		require.NoError(t, err)
		require.NoError(t, s.Switch(ASCII))
		assert.Equal(t, State{Mode: ASCII, Text: codec.Marker}, s.State())
		require.Len(t, got, 1)
		assert.Equal(t, State{Mode: Binary, Text: "0100100001101001"}, got[0][0])
		assert.Equal(t, s.State(), got[0][1])
	})

	t.Run("charset", func(t *testing.T) {
		s, err := New(WithCharset("windows-1252"))
		require.NoError(t, err)
		s.Edit("€")
		require.NoError(t, s.Switch(Binary))
		assert.Equal(t, "10000000", s.Text())
		require.NoError(t, s.Switch(ASCII))
		assert.Equal(t, "€", s.Text())
	})
}

func TestSessionOptions(t *testing.T) {
	test := []struct {
		name string
		opt  Option
		err  error
	}{
		{"bad charset", WithCharset("UTF-8"), codec.ErrUnsupportedCharset},
		{"bad initial mode", WithInitialState(State{Mode: Mode(3)}), ErrUnknownMode},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.opt)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}

	t.Run("nil codec", func(t *testing.T) {
		_, err := New(WithCodec(nil))
		assert.Error(t, err)
	})

	t.Run("custom codec", func(t *testing.T) {
		c, err := codec.New(codec.WithCharset("IBM437"))
		require.NoError(t, err)
		s, err := New(WithCodec(c))
		require.NoError(t, err)
		s.Edit("░")
		require.NoError(t, s.Switch(Binary))
		assert.Equal(t, "10110000", s.Text())
	})
}
