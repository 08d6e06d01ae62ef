package bintext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode(t *testing.T) {
	test := []struct {
		mode        Mode
		name        string
		display     string
		placeholder string
		monospace   bool
		other       Mode
	}{
		{ASCII, "ascii", "ASCII", "Enter ASCII text here...", false, Binary},
		{Binary, "binary", "Binary", "Enter Binary text here (e.g., 01101000 01101001)", true, ASCII},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.mode.String())
			assert.Equal(t, tt.display, tt.mode.DisplayName())
			assert.Equal(t, tt.placeholder, tt.mode.Placeholder())
			assert.Equal(t, tt.monospace, tt.mode.Monospace())
			assert.Equal(t, tt.other, tt.mode.Other())
		})
	}
	assert.Equal(t, "unknown", Mode(7).String())
	assert.Equal(t, ASCII, Mode(0), "zero value is the initial mode")
}

func TestParseMode(t *testing.T) {
	test := []struct {
		in  string
		exp Mode
		err bool
	}{
		{in: "ascii", exp: ASCII},
		{in: "ASCII", exp: ASCII},
		{in: " Binary ", exp: Binary},
		{in: "hex", err: true},
		{in: "", err: true},
	}
	for _, tt := range test {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseMode(tt.in)
			if tt.err {
				assert.True(t, errors.Is(err, ErrUnknownMode))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.exp, m)
		})
	}
}
