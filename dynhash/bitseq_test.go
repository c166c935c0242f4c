package dynhash

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bitSeqFromString parses "01010101_11001100" into a BitSeq, first bit
// first. The string must describe whole bytes.
func bitSeqFromString(t testing.TB, bitStr string) BitSeq {
	t.Helper()

	bitStr = strings.Replace(bitStr, "_", "", -1)
	require.Zero(t, len(bitStr)%8)

	data := make([]byte, 0, len(bitStr)/8)

	for tail := bitStr; tail != ""; tail = tail[8:] {
		b, err := strconv.ParseUint(tail[:8], 2, 8)
		require.NoError(t, err)

		data = append(data, byte(b))
	}

	return NewBitSeq(data)
}

func TestBitSeq_Consume(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Bits    string
		Dir     Direction
		ExpBit  byte
		ExpRest string
	}{
		{"10000000", LeftToRight, 1, "0000000"},
		{"10000000", RightToLeft, 0, "1000000"},
		{"00000001", LeftToRight, 0, "0000001"},
		{"00000001", RightToLeft, 1, "0000000"},
		{"01010101_11001100", LeftToRight, 0, "101010111001100"},
		{"01010101_11001100", RightToLeft, 0, "010101011100110"},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%v,%v", tcase.Bits, tcase.Dir)
		)

		t.Run(name, func(t *testing.T) {
			seq := bitSeqFromString(t, tcase.Bits)

			bit, rest, err := seq.Consume(tcase.Dir)
			require.NoError(t, err)

			assert.Equal(t, tcase.ExpBit, bit)
			assert.Equal(t, tcase.ExpRest, rest.String())
			assert.Equal(t, seq.Len()-1, rest.Len())
		})
	}
}

func TestBitSeq_ConsumeAll(t *testing.T) {
	t.Parallel()

	for _, dir := range []Direction{LeftToRight, RightToLeft} {
		var (
			dir = dir
			seq = bitSeqFromString(t, "11001010")
		)

		t.Run(fmt.Sprintf("%v", dir), func(t *testing.T) {
			var consumed []byte

			for seq.Len() > 0 {
				bit, rest, err := seq.Consume(dir)
				require.NoError(t, err)

				consumed = append(consumed, '0'+bit)
				seq = rest
			}

			if dir == LeftToRight {
				assert.Equal(t, "11001010", string(consumed))
			} else {
				assert.Equal(t, "01010011", string(consumed))
			}

			_, _, err := seq.Consume(dir)
			assert.ErrorIs(t, err, ErrExhausted)
		})
	}
}

func TestBitSeq_ConsumeEmpty(t *testing.T) {
	t.Parallel()

	seq := NewBitSeq(nil)

	assert.Zero(t, seq.Len())

	_, _, err := seq.Consume(LeftToRight)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestBitSeq_Bit(t *testing.T) {
	t.Parallel()

	seq := bitSeqFromString(t, "10110000")

	assert.Equal(t, byte(1), seq.Bit(0))
	assert.Equal(t, byte(0), seq.Bit(1))
	assert.Equal(t, byte(1), seq.Bit(2))
	assert.Equal(t, byte(1), seq.Bit(3))
	assert.Equal(t, byte(0), seq.Bit(4))

	// indexing is relative to the window start
	_, rest, err := seq.Consume(LeftToRight)
	require.NoError(t, err)

	assert.Equal(t, byte(0), rest.Bit(0))
	assert.Equal(t, byte(1), rest.Bit(1))
}

func TestBitSeq_Equal(t *testing.T) {
	t.Parallel()

	var (
		a = bitSeqFromString(t, "01100000")
		b = bitSeqFromString(t, "11000000")
	)

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))

	// "1100" seen through two differently aligned windows
	_, a, _ = a.Consume(LeftToRight) // 1100000
	_, b, _ = b.Consume(RightToLeft) // 1100000
	assert.True(t, a.Equal(b))

	_, a, _ = a.Consume(LeftToRight)
	assert.False(t, a.Equal(b)) // lengths differ
}

func TestBitSeq_Ones(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Bits    string
		SkipL   int
		SkipR   int
		ExpOnes uint64
	}{
		{"00000000", 0, 0, 0},
		{"11111111", 0, 0, 8},
		{"10101010_01010101", 0, 0, 8},
		{"11110000", 2, 0, 2},
		{"11110000", 0, 5, 3},
		{"11111111_11111111", 3, 4, 9},
		{"10000001", 1, 1, 0},
		{"11111111", 4, 4, 0},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%v,%v,%v", tcase.Bits, tcase.SkipL, tcase.SkipR)
		)

		t.Run(name, func(t *testing.T) {
			seq := bitSeqFromString(t, tcase.Bits)

			for i := 0; i < tcase.SkipL; i++ {
				_, seq, _ = seq.Consume(LeftToRight)
			}
			for i := 0; i < tcase.SkipR; i++ {
				_, seq, _ = seq.Consume(RightToLeft)
			}

			assert.Equal(t, tcase.ExpOnes, seq.Ones())
		})
	}
}

func TestBitSeq_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", NewBitSeq(nil).String())
	assert.Equal(t, "01010101", bitSeqFromString(t, "01010101").String())
}
