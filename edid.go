// Package edid decodes the 128-byte EDID base block broadcast by displays.
//
// Decoding is a single forward pass over the input. Extension blocks are
// not interpreted: Decode reports how many bytes follow the base block and
// package eedid slices them into raw blocks.
package edid

// EDID is a decoded base block.
type EDID struct {
	Header  Header
	Display DisplayParameters

	// Captured raw, not decoded.
	Chromaticity       Chromaticity
	EstablishedTimings EstablishedTimingBlock
	StandardTimings    StandardTimingBlock

	// Slots in block order.
	Descriptors [DescriptorCount]Descriptor

	ExtensionCount byte
	Checksum       byte // not validated unless WithChecksum is given
}

// Decode decodes the base block at the start of data and returns the
// number of bytes that follow it. A nonzero remainder is the start of the
// extension blocks, not an error.
//
// Errors match ErrMagicMismatch or ErrIncomplete with errors.Is and are a
// *DecodeError carrying the offset; no partial EDID is returned.
func Decode(data []byte, opts ...Option) (EDID, int, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := newCursor(data)
	e, err := decodeBase(c, cfg)
	if err != nil {
		return EDID{}, 0, err
	}
	if cfg.checksum {
		if err := Verify(data); err != nil {
			return EDID{}, 0, err
		}
	}
	return e, c.remaining(), nil
}

func decodeBase(c *cursor, cfg config) (EDID, error) {
	var e EDID
	var err error
	if e.Header, err = decodeHeader(c); err != nil {
		return EDID{}, err
	}
	if e.Display, err = decodeDisplayParameters(c); err != nil {
		return EDID{}, err
	}
	if e.Chromaticity, err = decodeChromaticity(c); err != nil {
		return EDID{}, err
	}
	if e.EstablishedTimings, err = decodeEstablishedTimings(c); err != nil {
		return EDID{}, err
	}
	if e.StandardTimings, err = decodeStandardTimings(c); err != nil {
		return EDID{}, err
	}
	if e.Descriptors, err = decodeDescriptors(c, cfg.charMap); err != nil {
		return EDID{}, err
	}
	if e.ExtensionCount, err = c.u8("extension count"); err != nil {
		return EDID{}, err
	}
	if e.Checksum, err = c.u8("checksum"); err != nil {
		return EDID{}, err
	}
	return e, nil
}

// ProductName returns the text of the first product name descriptor.
func (e EDID) ProductName() (string, bool) {
	return e.text(DescriptorProductName)
}

// SerialNumber returns the text of the first serial number descriptor.
// It is independent of Header.Serial.
func (e EDID) SerialNumber() (string, bool) {
	return e.text(DescriptorSerialNumber)
}

func (e EDID) text(kind DescriptorKind) (string, bool) {
	for _, d := range e.Descriptors {
		if d.Kind == kind {
			return d.Text, true
		}
	}
	return "", false
}

// PreferredTiming returns the first detailed timing descriptor.
func (e EDID) PreferredTiming() (DetailedTiming, bool) {
	for _, d := range e.Descriptors {
		if d.Kind == DescriptorDetailedTiming && d.Timing != nil {
			return *d.Timing, true
		}
	}
	return DetailedTiming{}, false
}
