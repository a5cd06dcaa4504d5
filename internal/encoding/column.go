package encoding

import (
	"fmt"
	"iter"

	"github.com/arloliu/montepi/errs"
	"github.com/arloliu/montepi/format"
)

// FloatEncoder appends float64 values to an encoded column.
type FloatEncoder interface {
	// Write encodes a single value.
	Write(val float64)
	// WriteSlice encodes values in order.
	WriteSlice(values []float64)
	// Bytes returns a copy of the encoded column including any pending bits.
	Bytes() []byte
	// Len returns the number of encoded values.
	Len() int
	// Finish releases pooled memory. The encoder must not be used afterwards.
	Finish()
}

// FloatDecoder reads a column produced by the matching FloatEncoder.
type FloatDecoder interface {
	// All yields up to count values; it stops early on truncated data.
	All(data []byte, count int) iter.Seq[float64]
	// Decode returns exactly count values or ErrInsufficientData.
	Decode(data []byte, count int) ([]float64, error)
}

// NewFloatEncoder returns an encoder for the given encoding type.
func NewFloatEncoder(enc format.EncodingType) (FloatEncoder, error) {
	switch enc {
	case format.TypeRaw:
		return NewNumericRawEncoder(), nil
	case format.TypeGorilla:
		return NewNumericGorillaEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEncoding, enc)
	}
}

// NewFloatDecoder returns a decoder for the given encoding type.
func NewFloatDecoder(enc format.EncodingType) (FloatDecoder, error) {
	switch enc {
	case format.TypeRaw:
		return NewNumericRawDecoder(), nil
	case format.TypeGorilla:
		return NewNumericGorillaDecoder(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEncoding, enc)
	}
}

// collect drains seq into a slice of exactly count values.
func collect(seq iter.Seq[float64], count int) ([]float64, error) {
	out := make([]float64, 0, count)
	for v := range seq {
		out = append(out, v)
	}

	if len(out) != count {
		return nil, fmt.Errorf("%w: decoded %d of %d values", errs.ErrInsufficientData, len(out), count)
	}

	return out, nil
}
