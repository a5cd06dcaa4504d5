package encoding

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/arloliu/montepi/errs"
	"github.com/arloliu/montepi/format"
	"github.com/stretchr/testify/require"
)

// estimateSeries mimics a running π estimate of n samples.
func estimateSeries(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float64, n)
	inside := 0
	for k := 1; k <= n; k++ {
		x, y := rng.Float64(), rng.Float64()
		if x*x+y*y <= 1 {
			inside++
		}
		out[k-1] = 4 * float64(inside) / float64(k)
	}

	return out
}

func testColumns() map[string][]float64 {
	return map[string][]float64{
		"single":   {math.Pi},
		"constant": {4, 4, 4, 4, 4, 4},
		"scenario": {4.0, 2.0, 8.0 / 3.0, 2.0},
		"special":  {0, math.Copysign(0, -1), math.Inf(1), math.Inf(-1), math.MaxFloat64, math.SmallestNonzeroFloat64},
		"series":   estimateSeries(5000, 1),
		"tiny":     {1e-300, 2e-300, 1e-300},
	}
}

func TestColumns_RoundTrip(t *testing.T) {
	for _, enc := range []format.EncodingType{format.TypeRaw, format.TypeGorilla} {
		for name, values := range testColumns() {
			t.Run(enc.String()+"/"+name, func(t *testing.T) {
				encoder, err := NewFloatEncoder(enc)
				require.NoError(t, err)
				defer encoder.Finish()

				encoder.WriteSlice(values)
				require.Equal(t, len(values), encoder.Len())

				decoder, err := NewFloatDecoder(enc)
				require.NoError(t, err)

				got, err := decoder.Decode(encoder.Bytes(), len(values))
				require.NoError(t, err)
				require.Len(t, got, len(values))
				for i := range values {
					require.Equal(t, math.Float64bits(values[i]), math.Float64bits(got[i]), "index %d", i)
				}
			})
		}
	}
}

func TestColumns_NaN(t *testing.T) {
	values := []float64{1, math.NaN(), 1}

	for _, enc := range []format.EncodingType{format.TypeRaw, format.TypeGorilla} {
		encoder, _ := NewFloatEncoder(enc)
		encoder.WriteSlice(values)
		decoder, _ := NewFloatDecoder(enc)

		got, err := decoder.Decode(encoder.Bytes(), len(values))
		encoder.Finish()
		require.NoError(t, err)
		require.Equal(t, 1.0, got[0])
		require.True(t, math.IsNaN(got[1]))
		require.Equal(t, 1.0, got[2])
	}
}

func TestColumns_Empty(t *testing.T) {
	for _, enc := range []format.EncodingType{format.TypeRaw, format.TypeGorilla} {
		encoder, _ := NewFloatEncoder(enc)
		require.Empty(t, encoder.Bytes())
		encoder.Finish()

		decoder, _ := NewFloatDecoder(enc)
		got, err := decoder.Decode(nil, 0)
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

func TestColumns_Truncated(t *testing.T) {
	values := estimateSeries(200, 3)

	for _, enc := range []format.EncodingType{format.TypeRaw, format.TypeGorilla} {
		encoder, _ := NewFloatEncoder(enc)
		encoder.WriteSlice(values)
		data := encoder.Bytes()
		encoder.Finish()

		decoder, _ := NewFloatDecoder(enc)
		_, err := decoder.Decode(data[:len(data)/2], len(values))
		require.ErrorIs(t, err, errs.ErrInsufficientData, enc.String())
	}
}

func TestColumns_EarlyStop(t *testing.T) {
	encoder := NewNumericGorillaEncoder()
	defer encoder.Finish()
	encoder.WriteSlice([]float64{1, 2, 3, 4})

	var seen []float64
	for v := range NewNumericGorillaDecoder().All(encoder.Bytes(), 4) {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}
	require.Equal(t, []float64{1, 2}, seen)
}

func TestGorilla_BytesKeepsEncoderUsable(t *testing.T) {
	encoder := NewNumericGorillaEncoder()
	defer encoder.Finish()

	encoder.Write(1.5)
	first := encoder.Bytes()
	encoder.Write(1.75)
	encoder.Write(1.75)

	got, err := NewNumericGorillaDecoder().Decode(encoder.Bytes(), 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 1.75, 1.75}, got)

	single, err := NewNumericGorillaDecoder().Decode(first, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5}, single)
}

func TestGorilla_CompressesConvergingSeries(t *testing.T) {
	values := estimateSeries(10000, 5)

	gorilla := NewNumericGorillaEncoder()
	defer gorilla.Finish()
	gorilla.WriteSlice(values)

	raw := NewNumericRawEncoder()
	defer raw.Finish()
	raw.WriteSlice(values)

	require.Len(t, raw.Bytes(), len(values)*8)
	require.Less(t, len(gorilla.Bytes()), len(raw.Bytes()))
}

func TestGorilla_ConstantIsOneBitPerValue(t *testing.T) {
	encoder := NewNumericGorillaEncoder()
	defer encoder.Finish()

	for range 65 {
		encoder.Write(2.0)
	}
	// 64 bits for the first value, then one '0' bit per repeat
	require.Len(t, encoder.Bytes(), 8+8)
}

func TestFinish_PanicsOnReuse(t *testing.T) {
	for _, enc := range []format.EncodingType{format.TypeRaw, format.TypeGorilla} {
		encoder, _ := NewFloatEncoder(enc)
		encoder.Finish()
		require.Panics(t, func() { encoder.Write(1) })
	}
}

func TestNewFloatCodec_Unknown(t *testing.T) {
	_, err := NewFloatEncoder(format.EncodingType(0x9))
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)

	_, err = NewFloatDecoder(format.EncodingType(0x9))
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func BenchmarkGorillaEncode(b *testing.B) {
	values := estimateSeries(10000, 9)
	b.ReportAllocs()
	for b.Loop() {
		e := NewNumericGorillaEncoder()
		e.WriteSlice(values)
		_ = e.Bytes()
		e.Finish()
	}
}

func BenchmarkGorillaDecode(b *testing.B) {
	values := estimateSeries(10000, 9)
	e := NewNumericGorillaEncoder()
	e.WriteSlice(values)
	data := e.Bytes()
	e.Finish()

	d := NewNumericGorillaDecoder()
	b.ReportAllocs()
	for b.Loop() {
		_, _ = d.Decode(data, len(values))
	}
}
