package edid

import "encoding/hex"

// The three blocks between the display parameters and the descriptors
// are captured verbatim. Their sizes are fixed so a later decoder can
// interpret them in place without moving any other field.

// Chromaticity is bytes 25-34: packed red/green/blue/white x,y coordinates.
type Chromaticity [10]byte

// EstablishedTimingBlock is bytes 35-37: the established timing bitmap.
type EstablishedTimingBlock [3]byte

// StandardTimingBlock is bytes 38-53: eight 2-byte standard timings.
type StandardTimingBlock [16]byte

func (b Chromaticity) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(b[:])), nil
}

func (b EstablishedTimingBlock) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(b[:])), nil
}

func (b StandardTimingBlock) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(b[:])), nil
}

func decodeChromaticity(c *cursor) (Chromaticity, error) {
	var out Chromaticity
	b, err := c.take("chromaticity", len(out))
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func decodeEstablishedTimings(c *cursor) (EstablishedTimingBlock, error) {
	var out EstablishedTimingBlock
	b, err := c.take("established timings", len(out))
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func decodeStandardTimings(c *cursor) (StandardTimingBlock, error) {
	var out StandardTimingBlock
	b, err := c.take("standard timings", len(out))
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}
