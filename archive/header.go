package archive

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/montepi/errs"
	"github.com/arloliu/montepi/format"
)

const (
	// HeaderSize is the fixed size of the archive header in bytes.
	HeaderSize = 56
	// Version is the archive format version written by this package.
	Version = 1
)

// Magic identifies a montepi archive.
var Magic = [4]byte{'M', 'C', 'P', 'I'}

// Header flags.
const (
	FlagScatter uint8 = 1 << 0
)

// Header is the fixed-size archive header.
type Header struct {
	Version       uint8
	ValueEncoding format.EncodingType
	Compression   format.CompressionType
	Flags         uint8
	Seed          uint64
	Radius        float64
	Low           float64
	High          float64
	PayloadLength uint32
	TierCount     uint32
	Checksum      uint64
}

// HasScatter reports whether the payload carries a scatter set.
func (h *Header) HasScatter() bool {
	return h.Flags&FlagScatter != 0
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	copy(b[0:4], Magic[:])
	b[4] = h.Version
	b[5] = uint8(h.ValueEncoding)
	b[6] = uint8(h.Compression)
	b[7] = h.Flags
	binary.LittleEndian.PutUint64(b[8:16], h.Seed)
	binary.LittleEndian.PutUint64(b[16:24], math.Float64bits(h.Radius))
	binary.LittleEndian.PutUint64(b[24:32], math.Float64bits(h.Low))
	binary.LittleEndian.PutUint64(b[32:40], math.Float64bits(h.High))
	binary.LittleEndian.PutUint32(b[40:44], h.PayloadLength)
	binary.LittleEndian.PutUint32(b[44:48], h.TierCount)
	binary.LittleEndian.PutUint64(b[48:56], h.Checksum)

	return b
}

// Parse parses the header from exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	if [4]byte(data[0:4]) != Magic {
		return errs.ErrInvalidMagic
	}

	h.Version = data[4]
	h.ValueEncoding = format.EncodingType(data[5])
	h.Compression = format.CompressionType(data[6])
	h.Flags = data[7]
	h.Seed = binary.LittleEndian.Uint64(data[8:16])
	h.Radius = math.Float64frombits(binary.LittleEndian.Uint64(data[16:24]))
	h.Low = math.Float64frombits(binary.LittleEndian.Uint64(data[24:32]))
	h.High = math.Float64frombits(binary.LittleEndian.Uint64(data[32:40]))
	h.PayloadLength = binary.LittleEndian.Uint32(data[40:44])
	h.TierCount = binary.LittleEndian.Uint32(data[44:48])
	h.Checksum = binary.LittleEndian.Uint64(data[48:56])

	return h.Validate()
}

// Validate checks the version and the encoding and compression identifiers.
func (h *Header) Validate() error {
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if !h.ValueEncoding.Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidEncoding, uint8(h.ValueEncoding))
	}
	if !h.Compression.Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(h.Compression))
	}

	return nil
}

// ParseHeader parses the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	var h Header
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
