package encoding

import "encoding/binary"

// bitReader reads big-endian bit fields from a byte slice.
type bitReader struct {
	data     []byte
	pos      int    // next byte to load
	bitBuf   uint64 // loaded bits, left-aligned
	bitCount int    // number of valid bits in bitBuf
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

// readBits reads numBits (0-64) bits. It returns false if the data runs out.
func (br *bitReader) readBits(numBits int) (uint64, bool) {
	var val uint64
	for numBits > 0 {
		if br.bitCount == 0 && !br.fill() {
			return 0, false
		}

		take := min(numBits, br.bitCount)
		val = (val << take) | (br.bitBuf >> (64 - take))
		br.bitBuf <<= take
		br.bitCount -= take
		numBits -= take
	}

	return val, true
}

// fill loads up to 8 bytes into the empty bit buffer.
func (br *bitReader) fill() bool {
	remaining := len(br.data) - br.pos
	if remaining <= 0 {
		return false
	}

	if remaining >= 8 {
		br.bitBuf = binary.BigEndian.Uint64(br.data[br.pos:])
		br.pos += 8
		br.bitCount = 64

		return true
	}

	br.bitBuf = 0
	for i := range remaining {
		br.bitBuf |= uint64(br.data[br.pos+i]) << (56 - 8*i)
	}
	br.pos += remaining
	br.bitCount = 8 * remaining

	return true
}
