package edid

import (
	"bytes"
	"encoding/hex"
)

// quoted renders a display name as a JSON string.
func quoted(s string) ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(s)
	buffer.WriteString(`"`)
	return buffer.Bytes(), nil
}

// Payload holds the 13 data bytes of a display descriptor that is kept
// undecoded.
type Payload []byte

func (p Payload) String() string {
	return hex.EncodeToString(p)
}

func (p Payload) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
