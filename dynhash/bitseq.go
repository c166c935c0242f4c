package dynhash

import (
	"strings"

	"github.com/hideo55/go-popcount"
)

// Direction selects which end of a bit sequence is consumed first.
type Direction int

const (
	// LeftToRight consumes the most significant bit first.
	LeftToRight Direction = iota
	// RightToLeft consumes the least significant bit first.
	RightToLeft
)

// BitSeq is a read-only window over the bits of a digest, most significant
// bit of each byte first. Consuming a bit narrows the window; the backing
// bytes are shared, never copied.
type BitSeq struct {
	data []byte
	head int // absolute index of the first remaining bit
	tail int // one past the last remaining bit
}

// NewBitSeq returns a window over all bits of data.
func NewBitSeq(data []byte) BitSeq {
	return BitSeq{data: data, tail: len(data) * 8}
}

// Len returns the number of bits left in the window.
func (s BitSeq) Len() int {
	return s.tail - s.head
}

// Bit returns the i-th remaining bit, counted from the front of the window.
func (s BitSeq) Bit(i int) byte {
	i += s.head
	return (s.data[i>>3] >> (7 - uint(i&7))) & 1
}

// Consume removes a single bit from the given end and returns it together
// with the shortened window. It fails with ErrExhausted on an empty window.
func (s BitSeq) Consume(dir Direction) (byte, BitSeq, error) {
	if s.head >= s.tail {
		return 0, s, ErrExhausted
	}
	if dir == RightToLeft {
		return s.Bit(s.Len() - 1), BitSeq{data: s.data, head: s.head, tail: s.tail - 1}, nil
	}
	return s.Bit(0), BitSeq{data: s.data, head: s.head + 1, tail: s.tail}, nil
}

// Equal reports whether both windows hold the same bits.
func (s BitSeq) Equal(other BitSeq) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := 0; i < s.Len(); i++ {
		if s.Bit(i) != other.Bit(i) {
			return false
		}
	}
	return true
}

// Ones counts the set bits left in the window.
func (s BitSeq) Ones() uint64 {
	if s.head >= s.tail {
		return 0
	}

	var total uint64

	for i := s.head >> 3; i <= (s.tail-1)>>3; i++ {
		var (
			b  = uint64(s.data[i])
			lo = i << 3
			hi = lo + 8
		)

		if s.head > lo {
			// mask off bits before the window start
			b &= (1 << uint(8-(s.head-lo))) - 1
		}
		if s.tail < hi {
			// mask off bits past the window end
			b &^= (1 << uint(hi-s.tail)) - 1
		}

		total += popcount.Count(b)
	}

	return total
}

func (s BitSeq) String() string {
	var buf strings.Builder
	for i := 0; i < s.Len(); i++ {
		buf.WriteByte('0' + s.Bit(i))
	}
	return buf.String()
}
