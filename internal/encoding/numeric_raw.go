package encoding

import (
	"encoding/binary"
	"iter"
	"math"

	"github.com/arloliu/montepi/internal/pool"
)

const rawValueSize = 8

// NumericRawEncoder stores each float64 as 8 little-endian bytes.
type NumericRawEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

var _ FloatEncoder = (*NumericRawEncoder)(nil)

// NewNumericRawEncoder creates a raw float64 encoder backed by a pooled buffer.
func NewNumericRawEncoder() *NumericRawEncoder {
	return &NumericRawEncoder{buf: pool.GetColumnBuffer()}
}

// Write appends a single value.
func (e *NumericRawEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	e.buf.AppendUint64(math.Float64bits(val))
	e.count++
}

// WriteSlice appends values in order.
func (e *NumericRawEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	e.buf.Grow(len(values) * rawValueSize)
	for _, v := range values {
		e.buf.AppendUint64(math.Float64bits(v))
	}
	e.count += len(values)
}

// Bytes returns a copy of the encoded column.
func (e *NumericRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot read bytes after Finish()")
	}

	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())

	return out
}

// Len returns the number of encoded values.
func (e *NumericRawEncoder) Len() int {
	return e.count
}

// Finish returns the buffer to the pool.
func (e *NumericRawEncoder) Finish() {
	pool.PutColumnBuffer(e.buf)
	e.buf = nil
}

// NumericRawDecoder decodes columns written by NumericRawEncoder. It is stateless.
type NumericRawDecoder struct{}

var _ FloatDecoder = NumericRawDecoder{}

// NewNumericRawDecoder creates a raw float64 decoder.
func NewNumericRawDecoder() NumericRawDecoder {
	return NumericRawDecoder{}
}

// All yields up to count values from data.
func (d NumericRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := 0; i < count && (i+1)*rawValueSize <= len(data); i++ {
			bits := binary.LittleEndian.Uint64(data[i*rawValueSize:])
			if !yield(math.Float64frombits(bits)) {
				return
			}
		}
	}
}

// Decode returns exactly count values.
func (d NumericRawDecoder) Decode(data []byte, count int) ([]float64, error) {
	return collect(d.All(data, count), count)
}
