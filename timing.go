package edid

// DetailedTimingSize is the length of a descriptor slot and of a detailed
// timing descriptor.
const DetailedTimingSize = 18

// DetailedTiming is a decoded 18-byte detailed timing descriptor.
type DetailedTiming struct {
	PixelClock           uint32 // kHz
	HorizontalActive     uint16
	HorizontalBlanking   uint16
	VerticalActive       uint16
	VerticalBlanking     uint16
	HorizontalFrontPorch uint16
	HorizontalSyncWidth  uint16
	VerticalFrontPorch   uint16
	VerticalSyncWidth    uint16
	HorizontalSize       uint16 // mm
	VerticalSize         uint16 // mm
	HorizontalBorder     byte   // pixels on each side
	VerticalBorder       byte   // lines on each side
	Features             byte
}

func decodeDetailedTiming(c *cursor) (DetailedTiming, error) {
	b, err := c.take("detailed timing", DetailedTimingSize)
	if err != nil {
		return DetailedTiming{}, err
	}
	return unpackDetailedTiming(b), nil
}

// unpackDetailedTiming reassembles each field as low byte (or nibble)
// OR'd with its high bits shifted left by 8.
func unpackDetailedTiming(b []byte) DetailedTiming {
	var d DetailedTiming
	d.PixelClock = (uint32(b[1])<<8 | uint32(b[0])) * 10

	d.HorizontalActive = uint16(b[2]) | uint16(b[4]>>4)<<8
	d.HorizontalBlanking = uint16(b[3]) | uint16(b[4]&0xF)<<8
	d.VerticalActive = uint16(b[5]) | uint16(b[7]>>4)<<8
	d.VerticalBlanking = uint16(b[6]) | uint16(b[7]&0xF)<<8

	// b[11]: hfp 7-6, hsync 5-4, vfp 3-2, vsync 1-0
	d.HorizontalFrontPorch = uint16(b[8]) | uint16(b[11]>>6&0x3)<<8
	d.HorizontalSyncWidth = uint16(b[9]) | uint16(b[11]>>4&0x3)<<8
	d.VerticalFrontPorch = uint16(b[10]>>4) | uint16(b[11]>>2&0x3)<<8
	d.VerticalSyncWidth = uint16(b[10]&0xF) | uint16(b[11]&0x3)<<8

	d.HorizontalSize = uint16(b[12]) | uint16(b[14]>>4)<<8
	d.VerticalSize = uint16(b[13]) | uint16(b[14]&0xF)<<8

	d.HorizontalBorder = b[15]
	d.VerticalBorder = b[16]
	d.Features = b[17]
	return d
}

func (d DetailedTiming) HorizontalTotal() int {
	return int(d.HorizontalActive) + int(d.HorizontalBlanking)
}

func (d DetailedTiming) VerticalTotal() int {
	return int(d.VerticalActive) + int(d.VerticalBlanking)
}

func (d DetailedTiming) HorizontalBackPorch() int {
	return int(d.HorizontalBlanking) - int(d.HorizontalFrontPorch) - int(d.HorizontalSyncWidth)
}

func (d DetailedTiming) VerticalBackPorch() int {
	return int(d.VerticalBlanking) - int(d.VerticalFrontPorch) - int(d.VerticalSyncWidth)
}

// HorizontalFrequency returns the line rate in kHz.
func (d DetailedTiming) HorizontalFrequency() float64 {
	if d.HorizontalTotal() == 0 {
		return 0
	}
	return float64(d.PixelClock) / float64(d.HorizontalTotal())
}

// RefreshRate returns the field rate in Hz.
func (d DetailedTiming) RefreshRate() float64 {
	total := d.HorizontalTotal() * d.VerticalTotal()
	if total == 0 {
		return 0
	}
	return float64(d.PixelClock) * 1000 / float64(total)
}

func (d DetailedTiming) Interlaced() bool {
	return d.Features&0x80 > 0
}

func (d DetailedTiming) Stereo() StereoMode {
	mode := StereoMode(d.Features & 0x61)
	// bit 0 alone means no stereo
	if mode == 0x01 {
		return Stereo_None
	}
	return mode
}

func (d DetailedTiming) Sync() SyncType {
	return SyncType(d.Features & 0x18 >> 3)
}

// VerticalSyncPositive is only meaningful for digital separate sync.
func (d DetailedTiming) VerticalSyncPositive() bool {
	return d.Features&0x4 > 0
}

// HorizontalSyncPositive is only meaningful for digital sync.
func (d DetailedTiming) HorizontalSyncPositive() bool {
	return d.Features&0x2 > 0
}

type SyncType byte

const (
	SyncAnalogComposite        SyncType = 0
	SyncBipolarAnalogComposite SyncType = 1
	SyncDigitalComposite       SyncType = 2
	SyncDigitalSeparate        SyncType = 3
)

var syncTypeLookup = map[SyncType]string{
	SyncAnalogComposite:        "Analog composite",
	SyncBipolarAnalogComposite: "Bipolar analog composite",
	SyncDigitalComposite:       "Digital composite (on HSync)",
	SyncDigitalSeparate:        "Digital separate",
}

func (s SyncType) String() string {
	return syncTypeLookup[s]
}

func (s SyncType) MarshalJSON() ([]byte, error) {
	return quoted(s.String())
}

func (s SyncType) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

type StereoMode byte

const (
	Stereo_None                   StereoMode = 0x00
	Stereo_Sequential_Right       StereoMode = 0x20
	Stereo_Sequential_Left        StereoMode = 0x40
	Stereo_2way_Interleaved_Right StereoMode = 0x21
	Stereo_2way_Interleaved_Left  StereoMode = 0x41
	Stereo_4way_Interleaved       StereoMode = 0x60
	Stereo_SideBySide_Interleaved StereoMode = 0x61
)

func (sm StereoMode) String() string {
	switch sm {
	case Stereo_None:
		return "No Stereo"
	case Stereo_Sequential_Right:
		return "field sequential, right during stereo sync"
	case Stereo_Sequential_Left:
		return "field sequential, left during stereo sync"
	case Stereo_2way_Interleaved_Right:
		return "2-way interleaved, right image on even lines"
	case Stereo_2way_Interleaved_Left:
		return "2-way interleaved, left image on even lines"
	case Stereo_4way_Interleaved:
		return "4-way interleaved"
	case Stereo_SideBySide_Interleaved:
		return "side-by-side interleaved"
	default:
		return "RESERVED"
	}
}

func (sm StereoMode) MarshalJSON() ([]byte, error) {
	return quoted(sm.String())
}

func (sm StereoMode) MarshalYAML() (interface{}, error) {
	return sm.String(), nil
}
