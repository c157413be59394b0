// Package eedid splits an E-EDID dump into its decoded base block and
// the raw 128-byte extension blocks that follow it.
package eedid

import (
	"bytes"
	"fmt"

	edid "github.com/thyge/edidbase"
)

type EEDID struct {
	Base       edid.EDID
	Extensions []Extension

	// Trailing counts bytes after the last declared extension.
	Trailing int
}

// Extension is an undecoded extension block.
type Extension struct {
	Index int
	Type  ExtensionType
	Data  [edid.BlockSize]byte `json:"-" yaml:"-"`
}

type ExtensionType byte

const (
	TimingExtension                          ExtensionType = 0x00
	EDIDExtension                            ExtensionType = 0x01
	CEAExtension                             ExtensionType = 0x02
	VideoTimingBlockExtension                ExtensionType = 0x10
	EDID2_0Extension                         ExtensionType = 0x20
	DisplayInformationExtension              ExtensionType = 0x40
	LocalizedStringExtension                 ExtensionType = 0x50
	MicrodisplayInterfaceExtension           ExtensionType = 0x60
	DisplayIDExtension                       ExtensionType = 0x70
	DisplayTransferCharacteristicsDataBlock1 ExtensionType = 0xA7
	DisplayTransferCharacteristicsDataBlock2 ExtensionType = 0xAF
	DisplayTransferCharacteristicsDataBlock3 ExtensionType = 0xBF
	BlockMap                                 ExtensionType = 0xF0
	DisplayDeviceDataBlock                   ExtensionType = 0xFF
)

var extensionLookup = map[ExtensionType]string{
	TimingExtension:                          "Timing Extension",
	EDIDExtension:                            "Extended Display Identification Data",
	CEAExtension:                             "Additional Timing Data Block (CEA EDID Timing Extension)",
	VideoTimingBlockExtension:                "Video Timing Block Extension (VTB-EXT)",
	EDID2_0Extension:                         "EDID 2.0 Extension",
	DisplayInformationExtension:              "Display Information Extension (DI-EXT)",
	LocalizedStringExtension:                 "Localized String Extension (LS-EXT)",
	MicrodisplayInterfaceExtension:           "Microdisplay Interface Extension (MI-EXT)",
	DisplayIDExtension:                       "Display ID Extension",
	DisplayTransferCharacteristicsDataBlock1: "Display Transfer Characteristics Data Block (DTCDB)",
	DisplayTransferCharacteristicsDataBlock2: "Display Transfer Characteristics Data Block (DTCDB)",
	DisplayTransferCharacteristicsDataBlock3: "Display Transfer Characteristics Data Block (DTCDB)",
	BlockMap:                                 "Block Map",
	DisplayDeviceDataBlock:                   "Display Device Data Block (DDDB)",
}

func (et ExtensionType) String() string {
	if s, ok := extensionLookup[et]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Extension (0x%02X)", byte(et))
}

func (et ExtensionType) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(et.String())
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

func (et ExtensionType) MarshalYAML() (interface{}, error) {
	return et.String(), nil
}

// DecodeEDID decodes the base block and slices off as many extension
// blocks as the base block declares. The extensions are copied, tagged
// with their first byte and otherwise left alone.
func DecodeEDID(data []byte, opts ...edid.Option) (EEDID, error) {
	base, remaining, err := edid.Decode(data, opts...)
	if err != nil {
		return EEDID{}, fmt.Errorf("base block: %w", err)
	}

	out := EEDID{Base: base}
	rest := data[len(data)-remaining:]
	for i := 0; i < int(base.ExtensionCount); i++ {
		if len(rest) < edid.BlockSize {
			return EEDID{}, &edid.DecodeError{
				Op:     fmt.Sprintf("extension %d", i+1),
				Offset: len(data) - len(rest),
				Need:   edid.BlockSize,
				Have:   len(rest),
				Err:    edid.ErrIncomplete,
			}
		}
		ext := Extension{Index: i + 1, Type: ExtensionType(rest[0])}
		copy(ext.Data[:], rest[:edid.BlockSize])
		out.Extensions = append(out.Extensions, ext)
		rest = rest[edid.BlockSize:]
	}
	out.Trailing = len(rest)
	return out, nil
}

// FormatHex renders data as rows of 16 hex bytes.
func FormatHex(data []byte) string {
	var sb bytes.Buffer
	for i, b := range data {
		if i > 0 {
			if i%16 == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}
