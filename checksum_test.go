package edid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	for _, name := range []string{"card0-VGA-1", "card0-eDP-1"} {
		t.Run(name, func(t *testing.T) {
			data := readFixture(t, name)
			assert.Equal(t, data[BlockSize-1], Checksum(data))
			require.NoError(t, Verify(data))

			var sum byte
			for _, b := range data {
				sum += b
			}
			assert.Equal(t, byte(0), sum)
		})
	}
}

func TestVerify_Errors(t *testing.T) {
	block := make([]byte, BlockSize)
	require.NoError(t, Verify(block))

	block[10] = 1
	err := Verify(block)
	assert.ErrorIs(t, err, ErrChecksum)

	err = Verify(block[:64])
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestOpaqueBlocks(t *testing.T) {
	data := readFixture(t, "card0-VGA-1")
	c := newCursor(data[25:])
	chroma, err := decodeChromaticity(c)
	require.NoError(t, err)
	est, err := decodeEstablishedTimings(c)
	require.NoError(t, err)
	std, err := decodeStandardTimings(c)
	require.NoError(t, err)
	assert.Equal(t, 29, c.offset())

	out, err := json.Marshal(struct {
		C Chromaticity
		E EstablishedTimingBlock
		S StandardTimingBlock
	}{chroma, est, std})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"C": "2aee91a3544c99260f50",
		"E": "bdef80",
		"S": "714f8100814081809500a940b3000101"
	}`, string(out))

	_, err = decodeStandardTimings(newCursor(make([]byte, 15)))
	assert.ErrorIs(t, err, ErrIncomplete)
}
