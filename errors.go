package edid

import (
	"errors"
	"fmt"
)

var (
	// ErrMagicMismatch is returned when the block does not start with the
	// fixed 00 FF FF FF FF FF FF 00 header.
	ErrMagicMismatch = errors.New("edid: header magic mismatch")

	// ErrIncomplete is returned when a step needs more bytes than remain.
	ErrIncomplete = errors.New("edid: incomplete data")

	// ErrChecksum is returned by Verify and by Decode when WithChecksum is set.
	ErrChecksum = errors.New("edid: checksum mismatch")
)

// DecodeError carries the byte offset at which decoding stopped.
type DecodeError struct {
	// Op names the field or block being read
	Op string

	// Offset is the position in the input where the failure was detected
	Offset int

	// Need and Have are the byte counts for Incomplete failures
	Need int
	Have int

	Err error
}

func (e *DecodeError) Error() string {
	if errors.Is(e.Err, ErrIncomplete) {
		return fmt.Sprintf("%v: %s at offset %d: need %d bytes, have %d",
			e.Err, e.Op, e.Offset, e.Need, e.Have)
	}
	return fmt.Sprintf("%v: %s at offset %d", e.Err, e.Op, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ChecksumError reports a base block whose bytes do not sum to zero.
type ChecksumError struct {
	Expected byte
	Actual   byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%v: expected 0x%02X, got 0x%02X", ErrChecksum, e.Expected, e.Actual)
}

func (e *ChecksumError) Unwrap() error {
	return ErrChecksum
}

// IsIncomplete reports whether err is an Incomplete decode failure.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// IsMagicMismatch reports whether err is a header magic failure.
func IsMagicMismatch(err error) bool {
	return errors.Is(err, ErrMagicMismatch)
}
