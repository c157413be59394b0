package edid

// Magic is the fixed 8-byte tag every EDID base block starts with.
var Magic = [8]byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

// Header is bytes 0-19 of the base block.
type Header struct {
	Vendor   ManufacturerID
	Product  uint16
	Serial   uint32
	Week     byte
	Year     byte // years since 1990
	Version  byte
	Revision byte
}

// ManufacturerID is the three letter PNP vendor code.
type ManufacturerID string

func (s ManufacturerID) String() string {
	return string(s)
}

// DecodeFiveBitASCII unpacks the big-endian vendor word: three 5-bit
// letters where 1 is 'A'.
func DecodeFiveBitASCII(v uint16) ManufacturerID {
	const mask = 0x1F
	const base = 'A' - 1
	letters := []byte{
		byte(v>>10)&mask + base,
		byte(v>>5)&mask + base,
		byte(v)&mask + base,
	}
	return ManufacturerID(letters)
}

// ManufactureYear returns the calendar year of manufacture, or of the
// model when Week is 0xFF.
func (h Header) ManufactureYear() int {
	return 1990 + int(h.Year)
}

// ModelYear reports whether Year names a model year rather than the
// year of manufacture.
func (h Header) ModelYear() bool {
	return h.Week == 0xFF
}

func decodeHeader(c *cursor) (Header, error) {
	// A short buffer that already disagrees with the tag is a mismatch,
	// not a truncation.
	start := c.offset()
	prefix := c.data[start:]
	for i := 0; i < len(Magic) && i < len(prefix); i++ {
		if prefix[i] != Magic[i] {
			return Header{}, &DecodeError{Op: "magic", Offset: start + i, Err: ErrMagicMismatch}
		}
	}
	if err := c.skip("magic", len(Magic)); err != nil {
		return Header{}, err
	}

	var h Header
	vendor, err := c.u16BE("vendor")
	if err != nil {
		return Header{}, err
	}
	h.Vendor = DecodeFiveBitASCII(vendor)
	if h.Product, err = c.u16LE("product"); err != nil {
		return Header{}, err
	}
	if h.Serial, err = c.u32LE("serial"); err != nil {
		return Header{}, err
	}
	if h.Week, err = c.u8("week"); err != nil {
		return Header{}, err
	}
	if h.Year, err = c.u8("year"); err != nil {
		return Header{}, err
	}
	if h.Version, err = c.u8("version"); err != nil {
		return Header{}, err
	}
	if h.Revision, err = c.u8("revision"); err != nil {
		return Header{}, err
	}
	return h, nil
}
