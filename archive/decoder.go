package archive

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/montepi/compress"
	"github.com/arloliu/montepi/errs"
	"github.com/arloliu/montepi/internal/encoding"
	"github.com/arloliu/montepi/internal/hash"
	"github.com/arloliu/montepi/montecarlo"
)

// Archive is a decoded archive.
type Archive struct {
	Header  Header
	results *montecarlo.Results
}

// Results returns the decoded run.
func (a *Archive) Results() *montecarlo.Results {
	return a.results
}

// Decode parses and verifies an archive produced by Encoder.Encode.
func Decode(data []byte) (*Archive, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	stored := data[HeaderSize:]
	if len(stored) != int(h.PayloadLength) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header declares %d",
			errs.ErrMalformedPayload, len(stored), h.PayloadLength)
	}
	if sum := hash.Checksum(stored); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got 0x%016x, want 0x%016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("%w: %s decompression failed: %w", errs.ErrMalformedPayload, h.Compression, err)
	}

	dec, err := encoding.NewFloatDecoder(h.ValueEncoding)
	if err != nil {
		return nil, err
	}

	r := payloadReader{data: payload, dec: dec}
	res := &montecarlo.Results{
		Seed:        h.Seed,
		Radius:      h.Radius,
		Bounds:      montecarlo.Bounds{Low: h.Low, High: h.High},
		SampleSizes: make([]int, 0, min(int(h.TierCount), len(payload))),
		Trials:      make(map[int]montecarlo.TrialCollection, min(int(h.TierCount), len(payload))),
	}

	for range h.TierCount {
		tier, err := r.tier()
		if err != nil {
			return nil, err
		}
		if _, dup := res.Trials[tier.SampleSize]; dup {
			return nil, fmt.Errorf("%w: tier %d appears twice", errs.ErrMalformedPayload, tier.SampleSize)
		}
		res.SampleSizes = append(res.SampleSizes, tier.SampleSize)
		res.Trials[tier.SampleSize] = tier
	}

	if h.HasScatter() {
		if res.Scatter, err = r.scatter(); err != nil {
			return nil, err
		}
	}

	if r.off != len(r.data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrMalformedPayload, len(r.data)-r.off)
	}
	if err := res.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrMalformedPayload, err)
	}

	return &Archive{Header: h, results: res}, nil
}

// payloadReader walks a decompressed payload.
type payloadReader struct {
	data []byte
	off  int
	dec  encoding.FloatDecoder
}

func (r *payloadReader) uvarint() (int, error) {
	v, n := binary.Uvarint(r.data[r.off:])
	if n <= 0 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: bad varint at offset %d", errs.ErrMalformedPayload, r.off)
	}
	r.off += n

	return int(v), nil
}

func (r *payloadReader) bytes(n int) ([]byte, error) {
	if n > len(r.data)-r.off {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrMalformedPayload, n, r.off, len(r.data)-r.off)
	}
	b := r.data[r.off : r.off+n]
	r.off += n

	return b, nil
}

// column reads count values encoded in a length-prefixed block.
func (r *payloadReader) column(count int) ([]float64, error) {
	size, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	data, err := r.bytes(size)
	if err != nil {
		return nil, err
	}
	// Every encoding spends at least one bit per value after the first.
	if count > len(data)*8+1 {
		return nil, fmt.Errorf("%w: %d values cannot fit in %d bytes", errs.ErrMalformedPayload, count, len(data))
	}

	values, err := r.dec.Decode(data, count)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrMalformedPayload, err)
	}

	return values, nil
}

func (r *payloadReader) tier() (montecarlo.TrialCollection, error) {
	size, err := r.uvarint()
	if err != nil {
		return montecarlo.TrialCollection{}, err
	}
	attempts, err := r.uvarint()
	if err != nil {
		return montecarlo.TrialCollection{}, err
	}

	c := montecarlo.TrialCollection{SampleSize: size, Series: make([]montecarlo.Series, 0, min(attempts, len(r.data)-r.off))}
	for range attempts {
		count, err := r.uvarint()
		if err != nil {
			return montecarlo.TrialCollection{}, err
		}
		values, err := r.column(count)
		if err != nil {
			return montecarlo.TrialCollection{}, fmt.Errorf("tier %d: %w", size, err)
		}
		c.Series = append(c.Series, montecarlo.Series(values))
	}

	return c, nil
}

func (r *payloadReader) scatter() (montecarlo.ClassifiedSet, error) {
	n, err := r.uvarint()
	if err != nil {
		return nil, err
	}

	xs, err := r.column(n)
	if err != nil {
		return nil, fmt.Errorf("scatter x: %w", err)
	}
	ys, err := r.column(n)
	if err != nil {
		return nil, fmt.Errorf("scatter y: %w", err)
	}
	bitmap, err := r.bytes((n + 7) / 8)
	if err != nil {
		return nil, err
	}

	points := make(montecarlo.ClassifiedSet, n)
	for i := range points {
		points[i] = montecarlo.ClassifiedPoint{
			Point:  montecarlo.Point{X: xs[i], Y: ys[i]},
			Inside: bitmap[i/8]&(1<<(i%8)) != 0,
		}
	}

	return points, nil
}
