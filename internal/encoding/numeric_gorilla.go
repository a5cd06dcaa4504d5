package encoding

import (
	"encoding/binary"
	"iter"
	"math"
	"math/bits"

	"github.com/arloliu/montepi/internal/pool"
)

// Gorilla block header limits: leading zeros use 5 bits, block size minus one uses 6.
const (
	gorillaMaxLeading = 31
	gorillaValueBits  = 64
)

// NumericGorillaEncoder implements Gorilla XOR compression for float64 columns.
//
// Stream layout, most significant bit first:
//  1. the first value, uncompressed (64 bits)
//  2. per following value, XOR with the previous one:
//     - XOR == 0: '0'
//     - meaningful bits fit the previous block: '10' + meaningful bits
//     - otherwise: '11' + 5-bit leading zeros + 6-bit (block size - 1) + meaningful bits
type NumericGorillaEncoder struct {
	bitBuf        uint64 // pending bits, right-aligned
	bitCount      int    // number of pending bits in bitBuf
	prevValue     uint64
	prevLeading   int
	prevTrailing  int
	prevBlockSize int
	count         int

	buf *pool.ByteBuffer
}

var _ FloatEncoder = (*NumericGorillaEncoder)(nil)

// NewNumericGorillaEncoder creates a Gorilla encoder backed by a pooled buffer.
func NewNumericGorillaEncoder() *NumericGorillaEncoder {
	return &NumericGorillaEncoder{buf: pool.GetColumnBuffer()}
}

// Write encodes a single value.
func (e *NumericGorillaEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	valBits := math.Float64bits(val)
	e.count++

	if e.count == 1 {
		e.prevValue = valBits
		e.writeBits(valBits, gorillaValueBits)

		return
	}

	e.writeValue(valBits)
}

// WriteSlice encodes values in order.
func (e *NumericGorillaEncoder) WriteSlice(values []float64) {
	for _, v := range values {
		e.Write(v)
	}
}

// Bytes returns a copy of the encoded column with pending bits flushed into a
// zero-padded final byte. The encoder stays usable.
func (e *NumericGorillaEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot read bytes after Finish()")
	}

	pending := (e.bitCount + 7) / 8
	out := make([]byte, e.buf.Len(), e.buf.Len()+pending)
	copy(out, e.buf.Bytes())

	if e.bitCount > 0 {
		aligned := e.bitBuf << (gorillaValueBits - e.bitCount)
		for i := range pending {
			out = append(out, byte(aligned>>(56-8*i)))
		}
	}

	return out
}

// Len returns the number of encoded values.
func (e *NumericGorillaEncoder) Len() int {
	return e.count
}

// Finish returns the buffer to the pool.
func (e *NumericGorillaEncoder) Finish() {
	pool.PutColumnBuffer(e.buf)
	e.buf = nil
}

func (e *NumericGorillaEncoder) writeValue(valBits uint64) {
	xor := valBits ^ e.prevValue
	e.prevValue = valBits

	if xor == 0 {
		e.writeBits(0, 1)
		return
	}

	leading := bits.LeadingZeros64(xor)
	trailing := bits.TrailingZeros64(xor)
	if leading > gorillaMaxLeading {
		leading = gorillaMaxLeading
	}

	if e.prevBlockSize > 0 && leading >= e.prevLeading && trailing >= e.prevTrailing {
		e.writeBits(0b10, 2)
		e.writeBits(xor>>e.prevTrailing, e.prevBlockSize)

		return
	}

	blockSize := gorillaValueBits - leading - trailing
	e.writeBits(0b11, 2)
	e.writeBits(uint64(leading), 5)     //nolint:gosec // leading is 0-31
	e.writeBits(uint64(blockSize-1), 6) //nolint:gosec // blockSize is 1-64
	e.writeBits(xor>>trailing, blockSize)

	e.prevLeading = leading
	e.prevTrailing = trailing
	e.prevBlockSize = blockSize
}

// writeBits appends the low numBits (0-64) bits of value.
func (e *NumericGorillaEncoder) writeBits(value uint64, numBits int) {
	if numBits == 0 {
		return
	}
	if numBits < gorillaValueBits {
		value &= (1 << numBits) - 1
	}

	available := gorillaValueBits - e.bitCount
	if numBits <= available {
		e.bitBuf = (e.bitBuf << numBits) | value
		e.bitCount += numBits
		if e.bitCount == gorillaValueBits {
			e.flushWord()
		}

		return
	}

	// split across the word boundary
	overflow := numBits - available
	e.bitBuf = (e.bitBuf << available) | (value >> overflow)
	e.bitCount = gorillaValueBits
	e.flushWord()

	e.bitBuf = value & ((1 << overflow) - 1)
	e.bitCount = overflow
}

func (e *NumericGorillaEncoder) flushWord() {
	e.buf.B = binary.BigEndian.AppendUint64(e.buf.B, e.bitBuf)
	e.bitBuf = 0
	e.bitCount = 0
}

// NumericGorillaDecoder decodes columns written by NumericGorillaEncoder.
// It is stateless and safe for concurrent use.
type NumericGorillaDecoder struct{}

var _ FloatDecoder = NumericGorillaDecoder{}

// NewNumericGorillaDecoder creates a Gorilla decoder.
func NewNumericGorillaDecoder() NumericGorillaDecoder {
	return NumericGorillaDecoder{}
}

// All yields up to count values. Malformed or truncated input ends the sequence early.
func (d NumericGorillaDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if len(data) == 0 || count <= 0 {
			return
		}

		br := newBitReader(data)

		prevValue, ok := br.readBits(gorillaValueBits)
		if !ok || !yield(math.Float64frombits(prevValue)) {
			return
		}

		var trailing, blockSize int
		for produced := 1; produced < count; produced++ {
			changed, ok := br.readBits(1)
			if !ok {
				return
			}

			if changed == 1 {
				newBlock, ok := br.readBits(1)
				if !ok {
					return
				}

				if newBlock == 1 {
					leading, ok1 := br.readBits(5)
					size, ok2 := br.readBits(6)
					if !ok1 || !ok2 {
						return
					}
					blockSize = int(size) + 1                              //nolint:gosec // 6-bit value
					trailing = gorillaValueBits - int(leading) - blockSize //nolint:gosec // 5-bit value
					if trailing < 0 {
						return
					}
				} else if blockSize == 0 {
					// block reuse before any block was defined
					return
				}

				meaningful, ok := br.readBits(blockSize)
				if !ok {
					return
				}
				prevValue ^= meaningful << trailing
			}

			if !yield(math.Float64frombits(prevValue)) {
				return
			}
		}
	}
}

// Decode returns exactly count values.
func (d NumericGorillaDecoder) Decode(data []byte, count int) ([]float64, error) {
	return collect(d.All(data, count), count)
}
