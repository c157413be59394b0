package edid

import (
	"golang.org/x/text/encoding/charmap"
)

// CharMap renders one descriptor text byte. It must be defined for all
// 256 byte values.
type CharMap func(b byte) rune

// CodePage437 is the default CharMap.
var CodePage437 CharMap = charmap.CodePage437.DecodeByte

// Latin1 maps each byte to the code point of the same value.
var Latin1 CharMap = charmap.ISO8859_1.DecodeByte

type config struct {
	charMap  CharMap
	checksum bool
}

func defaultConfig() config {
	return config{
		charMap: CodePage437,
	}
}

// Option configures Decode.
type Option func(*config)

// WithCharMap replaces the table used to render descriptor text.
//
// Example:
//
//	e, _, err := edid.Decode(data, edid.WithCharMap(edid.Latin1))
func WithCharMap(m CharMap) Option {
	return func(c *config) {
		if m != nil {
			c.charMap = m
		}
	}
}

// WithChecksum makes Decode verify the base block checksum and fail with
// a *ChecksumError when it does not match.
func WithChecksum() Option {
	return func(c *config) {
		c.checksum = true
	}
}
