package edid

// DisplayParameters is bytes 20-24 of the base block, kept raw. The
// accessor methods interpret the bits without altering them.
type DisplayParameters struct {
	VideoInput byte
	WidthCM    byte
	HeightCM   byte
	Gamma      byte // (gamma*100)-100, range 1.00-3.54
	Features   byte
}

func decodeDisplayParameters(c *cursor) (DisplayParameters, error) {
	b, err := c.take("display parameters", 5)
	if err != nil {
		return DisplayParameters{}, err
	}
	return DisplayParameters{
		VideoInput: b[0],
		WidthCM:    b[1],
		HeightCM:   b[2],
		Gamma:      b[3],
		Features:   b[4],
	}, nil
}

// GammaValue returns the transfer characteristic. A raw value of 0xFF
// means gamma is defined elsewhere and 0 is returned.
func (d DisplayParameters) GammaValue() float64 {
	if d.Gamma == 0xFF {
		return 0
	}
	return float64(d.Gamma)/100 + 1
}

func (d DisplayParameters) Digital() bool {
	return d.VideoInput&0x80 > 0
}

// BitDepth is only meaningful for digital inputs.
func (d DisplayParameters) BitDepth() BitDepth {
	if !d.Digital() {
		return BPP_UNDEFINED
	}
	return BitDepth(d.VideoInput & 0x70 >> 4)
}

// Interface is only meaningful for digital inputs.
func (d DisplayParameters) Interface() VideoInterface {
	if !d.Digital() {
		return InterfaceUndefined
	}
	return VideoInterface(d.VideoInput & 0xF)
}

func (d DisplayParameters) StandbySupported() bool {
	return d.Features&0x80 > 0
}

func (d DisplayParameters) SuspendSupported() bool {
	return d.Features&0x40 > 0
}

func (d DisplayParameters) ActiveOffSupported() bool {
	return d.Features&0x20 > 0
}

// DisplayType decodes bits 4-3 of the feature byte for digital inputs.
func (d DisplayParameters) DisplayType() DisplayType {
	return DisplayType(d.Features & 0x18 >> 3)
}

func (d DisplayParameters) SRGB() bool {
	return d.Features&0x4 > 0
}

func (d DisplayParameters) PreferredTimingMode() bool {
	return d.Features&0x2 > 0
}

func (d DisplayParameters) ContinuousFrequency() bool {
	return d.Features&0x1 > 0
}

type DisplayType byte

const (
	RGB444              DisplayType = 0
	RGB444_YCRCB444     DisplayType = 1
	RGB444_YCRCB422     DisplayType = 2
	RGB444_YCRCB444_422 DisplayType = 3
)

var displayTypeLookup = map[DisplayType]string{
	RGB444:              "RGB 4:4:4",
	RGB444_YCRCB444:     "RGB 4:4:4 + YCrCb 4:4:4",
	RGB444_YCRCB422:     "RGB 4:4:4 + YCrCb 4:2:2",
	RGB444_YCRCB444_422: "RGB 4:4:4 + YCrCb 4:4:4 + YCrCb 4:2:2",
}

func (d DisplayType) String() string {
	return displayTypeLookup[d]
}

func (d DisplayType) MarshalJSON() ([]byte, error) {
	return quoted(d.String())
}

func (d DisplayType) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

type BitDepth byte

const (
	BPP_UNDEFINED BitDepth = 0
	BPP6          BitDepth = 1
	BPP8          BitDepth = 2
	BPP10         BitDepth = 3
	BPP12         BitDepth = 4
	BPP14         BitDepth = 5
	BPP16         BitDepth = 6
)

func (d BitDepth) String() string {
	switch d {
	default:
		return "UNDEFINED"
	case BPP6:
		return "6"
	case BPP8:
		return "8"
	case BPP10:
		return "10"
	case BPP12:
		return "12"
	case BPP14:
		return "14"
	case BPP16:
		return "16"
	}
}

func (d BitDepth) MarshalJSON() ([]byte, error) {
	return quoted(d.String())
}

func (d BitDepth) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

type VideoInterface byte

const (
	InterfaceUndefined   VideoInterface = 0
	InterfaceDVI         VideoInterface = 1
	InterfaceHDMIa       VideoInterface = 2
	InterfaceHDMIb       VideoInterface = 3
	InterfaceMDDI        VideoInterface = 4
	InterfaceDisplayPort VideoInterface = 5
)

var videoInterfaceLookup = map[VideoInterface]string{
	InterfaceUndefined:   "undefined",
	InterfaceDVI:         "DVI",
	InterfaceHDMIa:       "HDMIa",
	InterfaceHDMIb:       "HDMIb",
	InterfaceMDDI:        "MDDI",
	InterfaceDisplayPort: "DisplayPort",
}

func (v VideoInterface) String() string {
	if s, ok := videoInterfaceLookup[v]; ok {
		return s
	}
	return "reserved"
}

func (v VideoInterface) MarshalJSON() ([]byte, error) {
	return quoted(v.String())
}

func (v VideoInterface) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}
