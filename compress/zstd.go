package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/montepi/errs"
)

// ZstdCompressor provides Zstandard compression for archive payloads.
//
// Estimate series close to convergence repeat long runs of similar bit patterns,
// which zstd picks up well even after Gorilla encoding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// checkFrameSize reads the frame header and rejects a declared content size
// above MaxPayloadSize before any output is allocated.
func checkFrameSize(data []byte) error {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return fmt.Errorf("zstd frame header: %w", err)
	}
	if h.HasFCS && h.FrameContentSize > MaxPayloadSize {
		return fmt.Errorf("%w: zstd frame declares %d bytes, limit is %d",
			errs.ErrPayloadTooLarge, h.FrameContentSize, MaxPayloadSize)
	}

	return nil
}
