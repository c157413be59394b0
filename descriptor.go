package edid

import (
	"strings"
)

// DescriptorCount is the number of 18-byte descriptor slots in a base block.
const DescriptorCount = 4

const descriptorPayloadSize = 13

// DescriptorKind identifies what a descriptor slot holds.
type DescriptorKind byte

const (
	DescriptorUnknown DescriptorKind = iota
	DescriptorDetailedTiming
	DescriptorSerialNumber
	DescriptorUnspecifiedText
	DescriptorRangeLimits
	DescriptorProductName
	DescriptorWhitePoint
	DescriptorStandardTiming
	DescriptorColorManagement
	DescriptorTimingCodes
	DescriptorEstablishedTimings
	DescriptorDummy
)

var descriptorKindLookup = map[DescriptorKind]string{
	DescriptorUnknown:            "Unknown",
	DescriptorDetailedTiming:     "Detailed Timing",
	DescriptorSerialNumber:       "Display Serial Number",
	DescriptorUnspecifiedText:    "Unspecified Text",
	DescriptorRangeLimits:        "Display Range Limits",
	DescriptorProductName:        "Display Product Name",
	DescriptorWhitePoint:         "Additional White Point",
	DescriptorStandardTiming:     "Additional Standard Timings",
	DescriptorColorManagement:    "Display Color Management",
	DescriptorTimingCodes:        "CVT 3-Byte Timing Codes",
	DescriptorEstablishedTimings: "Established Timings III",
	DescriptorDummy:              "Dummy",
}

func (k DescriptorKind) String() string {
	return descriptorKindLookup[k]
}

func (k DescriptorKind) MarshalJSON() ([]byte, error) {
	return quoted(k.String())
}

func (k DescriptorKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Descriptor is one of the four 18-byte slots. Which fields are set
// depends on Kind:
//
//	DescriptorDetailedTiming     Timing
//	SerialNumber, UnspecifiedText, ProductName   Text
//	RangeLimits, WhitePoint, StandardTiming, ColorManagement,
//	TimingCodes, EstablishedTimings              Data (13 bytes)
//	DescriptorUnknown            Tag and Data (13 raw bytes)
//	DescriptorDummy              nothing
type Descriptor struct {
	Kind   DescriptorKind
	Tag    byte            `json:",omitempty" yaml:",omitempty"`
	Timing *DetailedTiming `json:",omitempty" yaml:",omitempty"`
	Text   string          `json:",omitempty" yaml:",omitempty"`
	Data   Payload         `json:",omitempty" yaml:",omitempty"`
}

type payloadHandling byte

const (
	payloadOpaque payloadHandling = iota
	payloadText
	payloadDiscard
)

type displayDescriptor struct {
	kind    DescriptorKind
	payload payloadHandling
}

// displayDescriptors maps the tag byte of a display descriptor to its
// kind. Tags not listed decode as DescriptorUnknown.
var displayDescriptors = map[byte]displayDescriptor{
	0xFF: {DescriptorSerialNumber, payloadText},
	0xFE: {DescriptorUnspecifiedText, payloadText},
	0xFD: {DescriptorRangeLimits, payloadOpaque},
	0xFC: {DescriptorProductName, payloadText},
	0xFB: {DescriptorWhitePoint, payloadOpaque},
	0xFA: {DescriptorStandardTiming, payloadOpaque},
	0xF9: {DescriptorColorManagement, payloadOpaque},
	0xF8: {DescriptorTimingCodes, payloadOpaque},
	0xF7: {DescriptorEstablishedTimings, payloadOpaque},
	0x10: {DescriptorDummy, payloadDiscard},
}

func decodeDescriptor(c *cursor, charMap CharMap) (Descriptor, error) {
	// if first 2 bytes / pixel clock is 0 then parse as Display Descriptor
	header, err := c.peekU16LE("descriptor")
	if err != nil {
		return Descriptor{}, err
	}
	if header != 0 {
		dtd, err := decodeDetailedTiming(c)
		if err != nil {
			return Descriptor{}, err
		}
		return Descriptor{Kind: DescriptorDetailedTiming, Timing: &dtd}, nil
	}

	if err := c.skip("descriptor header", 3); err != nil {
		return Descriptor{}, err
	}
	tag, err := c.u8("descriptor tag")
	if err != nil {
		return Descriptor{}, err
	}
	if err := c.skip("descriptor reserved", 1); err != nil {
		return Descriptor{}, err
	}
	payload, err := c.take("descriptor payload", descriptorPayloadSize)
	if err != nil {
		return Descriptor{}, err
	}

	dd, ok := displayDescriptors[tag]
	if !ok {
		return Descriptor{Kind: DescriptorUnknown, Tag: tag, Data: copyPayload(payload)}, nil
	}
	d := Descriptor{Kind: dd.kind, Tag: tag}
	switch dd.payload {
	case payloadText:
		d.Text = decodeDescriptorText(payload, charMap)
	case payloadOpaque:
		d.Data = copyPayload(payload)
	}
	return d, nil
}

func copyPayload(b []byte) Payload {
	out := make(Payload, len(b))
	copy(out, b)
	return out
}

// decodeDescriptorText drops line feeds, renders every other byte through
// charMap and trims surrounding white space.
func decodeDescriptorText(b []byte, charMap CharMap) string {
	var sb strings.Builder
	for _, c := range b {
		if c == 0x0A {
			continue
		}
		sb.WriteRune(charMap(c))
	}
	return strings.TrimSpace(sb.String())
}

func decodeDescriptors(c *cursor, charMap CharMap) ([DescriptorCount]Descriptor, error) {
	var out [DescriptorCount]Descriptor
	for i := range out {
		d, err := decodeDescriptor(c, charMap)
		if err != nil {
			return out, err
		}
		out[i] = d
	}
	return out, nil
}
