package edid

// BlockSize is the length of the base block and of each extension block.
const BlockSize = 128

// Checksum returns the byte that makes the first BlockSize bytes of
// block sum to zero, ignoring the checksum byte already present.
func Checksum(block []byte) byte {
	var sum byte
	for i := 0; i < BlockSize-1 && i < len(block); i++ {
		sum += block[i]
	}
	return 0xFF - sum + 1
}

// Verify checks the checksum of the 128-byte block at the start of data.
func Verify(data []byte) error {
	if len(data) < BlockSize {
		return &DecodeError{
			Op:     "checksum",
			Offset: 0,
			Need:   BlockSize,
			Have:   len(data),
			Err:    ErrIncomplete,
		}
	}
	want := Checksum(data)
	if got := data[BlockSize-1]; got != want {
		return &ChecksumError{Expected: want, Actual: got}
	}
	return nil
}
