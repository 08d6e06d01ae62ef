package bitconv

import (
	"math/bits"

	"github.com/yyyoichi/bitstream-go"
)

// Stream is a sequence of variable-width bit groups.
// Groups are written most significant bit first and keep their exact width,
// so a group wider than a byte is never split or truncated.
type Stream struct {
	w      *bitstream.BitWriter[uint64]
	widths []int
}

func NewStream() *Stream {
	return &Stream{
		w: bitstream.NewBitWriter[uint64](0, 0),
	}
}

// WriteValue appends v as one group of at least minWidth bits.
func (s *Stream) WriteValue(v uint32, minWidth int) {
	n := max(bits.Len32(v), minWidth)
	for i := n - 1; i >= 0; i-- {
		s.w.WriteBool((v>>uint(i))&1 == 1)
	}
	s.widths = append(s.widths, n)
}

// WriteDigits appends tok, a run of '0' and '1' characters, as one group.
// It reports false and writes nothing when tok is empty, longer than
// maxWidth, or holds any other character.
func (s *Stream) WriteDigits(tok string, maxWidth int) bool {
	if !isDigits(tok, maxWidth) {
		return false
	}
	for i := 0; i < len(tok); i++ {
		s.w.WriteBool(tok[i] == '1')
	}
	s.widths = append(s.widths, len(tok))
	return true
}

// isDigits reports whether tok is 1 to maxWidth characters of '0' or '1'.
func isDigits(tok string, maxWidth int) bool {
	if len(tok) == 0 || len(tok) > maxWidth {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] != '0' && tok[i] != '1' {
			return false
		}
	}
	return true
}

// Digits renders each group as a string of '0' and '1'.
func (s *Stream) Digits() []string {
	if len(s.widths) == 0 {
		return nil
	}
	r := s.reader()
	out := make([]string, len(s.widths))
	at := 0
	for i, n := range s.widths {
		buf := make([]byte, n)
		for j := range buf {
			bit, _ := r.ReadBitAt(at + j)
			if bit {
				buf[j] = '1'
			} else {
				buf[j] = '0'
			}
		}
		out[i] = string(buf)
		at += n
	}
	return out
}

// Values returns each group as an unsigned integer.
func (s *Stream) Values() []uint32 {
	if len(s.widths) == 0 {
		return nil
	}
	r := s.reader()
	out := make([]uint32, len(s.widths))
	at := 0
	for i, n := range s.widths {
		var v uint32
		for j := range n {
			bit, _ := r.ReadBitAt(at + j)
			v <<= 1
			if bit {
				v |= 1
			}
		}
		out[i] = v
		at += n
	}
	return out
}

func (s *Stream) reader() *bitstream.BitReader[uint64] {
	r := bitstream.NewBitReader(s.w.Data(), 0, 0)
	r.SetBits(s.w.Bits())
	return r
}
