package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/montepi/errs"
)

// S2Compressor provides S2 compression, a faster Snappy-compatible format.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as an S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block. The block prefix declares the decoded length,
// which is checked against MaxPayloadSize first.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 block header: %w", err)
	}
	if n > MaxPayloadSize {
		return nil, fmt.Errorf("%w: s2 block declares %d bytes, limit is %d", errs.ErrPayloadTooLarge, n, MaxPayloadSize)
	}

	return s2.Decode(make([]byte, n), data)
}
