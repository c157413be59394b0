package edid

import "encoding/binary"

// cursor is a forward-only reader over an EDID buffer. It never copies;
// callers that keep bytes past the decode call copy them out.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) offset() int {
	return c.pos
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

func (c *cursor) incomplete(op string, n int) error {
	return &DecodeError{
		Op:     op,
		Offset: c.pos,
		Need:   n,
		Have:   c.remaining(),
		Err:    ErrIncomplete,
	}
}

// take returns the next n bytes and advances past them.
func (c *cursor) take(op string, n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, c.incomplete(op, n)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// skip advances n bytes without returning them.
func (c *cursor) skip(op string, n int) error {
	_, err := c.take(op, n)
	return err
}

func (c *cursor) peekU16LE(op string) (uint16, error) {
	if c.remaining() < 2 {
		return 0, c.incomplete(op, 2)
	}
	return binary.LittleEndian.Uint16(c.data[c.pos:]), nil
}

func (c *cursor) u8(op string) (byte, error) {
	b, err := c.take(op, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) u16LE(op string) (uint16, error) {
	b, err := c.take(op, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) u16BE(op string) (uint16, error) {
	b, err := c.take(op, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *cursor) u32LE(op string) (uint32, error) {
	b, err := c.take(op, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
