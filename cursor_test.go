package edid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Reads(t *testing.T) {
	c := newCursor([]byte{0x01, 0x34, 0x12, 0x12, 0x34, 0x78, 0x56, 0x34, 0x12, 0xAA})

	b, err := c.u8("u8")
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), b)

	peek, err := c.peekU16LE("peek")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), peek)
	assert.Equal(t, 1, c.offset(), "peek does not advance")

	le, err := c.u16LE("u16le")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), le)

	be, err := c.u16BE("u16be")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), be)

	u32, err := c.u32LE("u32le")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x12345678), u32)

	assert.Equal(t, 9, c.offset())
	assert.Equal(t, 1, c.remaining())
}

func TestCursor_Incomplete(t *testing.T) {
	c := newCursor([]byte{0x01, 0x02, 0x03})
	require.NoError(t, c.skip("skip", 1))

	_, err := c.take("payload", 3)
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "payload", de.Op)
	assert.Equal(t, 1, de.Offset)
	assert.Equal(t, 3, de.Need)
	assert.Equal(t, 2, de.Have)
	assert.Equal(t, "edid: incomplete data: payload at offset 1: need 3 bytes, have 2", err.Error())
	assert.Equal(t, 1, c.offset(), "a failed take does not advance")

	_, err = c.u32LE("serial")
	assert.ErrorIs(t, err, ErrIncomplete)
	_, err = c.u16BE("vendor")
	require.NoError(t, err)
	_, err = c.peekU16LE("descriptor")
	assert.ErrorIs(t, err, ErrIncomplete)
	_, err = c.u8("checksum")
	assert.ErrorIs(t, err, ErrIncomplete)
	_, err = c.take("negative", -1)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestDecodeError_Messages(t *testing.T) {
	err := &DecodeError{Op: "magic", Offset: 3, Err: ErrMagicMismatch}
	assert.Equal(t, "edid: header magic mismatch: magic at offset 3", err.Error())

	ce := &ChecksumError{Expected: 0x7E, Actual: 0x00}
	assert.Equal(t, "edid: checksum mismatch: expected 0x7E, got 0x00", ce.Error())
}
