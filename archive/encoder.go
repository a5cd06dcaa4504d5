package archive

import (
	"fmt"
	"math"

	"github.com/arloliu/montepi/compress"
	"github.com/arloliu/montepi/errs"
	"github.com/arloliu/montepi/format"
	"github.com/arloliu/montepi/internal/encoding"
	"github.com/arloliu/montepi/internal/hash"
	"github.com/arloliu/montepi/internal/options"
	"github.com/arloliu/montepi/internal/pool"
	"github.com/arloliu/montepi/montecarlo"
)

// EncoderConfig selects how values are encoded and how the payload is compressed.
type EncoderConfig struct {
	ValueEncoding format.EncodingType
	Compression   format.CompressionType
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithValueEncoding sets the float encoding for series and scatter coordinates.
func WithValueEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if !enc.Valid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidEncoding, uint8(enc))
		}
		cfg.ValueEncoding = enc

		return nil
	})
}

// WithCompression sets the payload compression codec.
func WithCompression(c format.CompressionType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if !c.Valid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(c))
		}
		cfg.Compression = c

		return nil
	})
}

// Encoder serializes Results into archives. It holds no per-call state and may
// be reused.
type Encoder struct {
	cfg EncoderConfig
}

// NewEncoder creates an encoder. The defaults are Gorilla values and no compression.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := EncoderConfig{
		ValueEncoding: format.TypeGorilla,
		Compression:   format.CompressionNone,
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg}, nil
}

// Config returns the encoder configuration.
func (e *Encoder) Config() EncoderConfig {
	return e.cfg
}

// Encode serializes res into a new archive.
func (e *Encoder) Encode(res *montecarlo.Results) ([]byte, error) {
	data, _, err := e.EncodeWithStats(res)
	return data, err
}

// EncodeWithStats serializes res and also reports how much compression saved.
// res must pass (*montecarlo.Results).Validate.
func (e *Encoder) EncodeWithStats(res *montecarlo.Results) ([]byte, compress.CompressionStats, error) {
	if res == nil {
		return nil, compress.CompressionStats{}, fmt.Errorf("%w: nil results", errs.ErrInvalidArgument)
	}
	if err := res.Validate(); err != nil {
		return nil, compress.CompressionStats{}, err
	}

	return e.encode(res)
}

// encode writes res without checking it.
func (e *Encoder) encode(res *montecarlo.Results) ([]byte, compress.CompressionStats, error) {
	if len(res.SampleSizes) > math.MaxUint32 {
		return nil, compress.CompressionStats{}, fmt.Errorf("%w: too many tiers", errs.ErrInvalidArgument)
	}

	payload := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(payload)

	tiers := res.Tiers()
	for _, tier := range tiers {
		payload.AppendUvarint(uint64(tier.SampleSize)) //nolint:gosec // sizes are positive
		payload.AppendUvarint(uint64(len(tier.Series)))
		for _, s := range tier.Series {
			if err := e.writeColumn(payload, s); err != nil {
				return nil, compress.CompressionStats{}, err
			}
		}
	}

	var flags uint8
	if len(res.Scatter) > 0 {
		flags |= FlagScatter
		if err := e.writeScatter(payload, res.Scatter); err != nil {
			return nil, compress.CompressionStats{}, err
		}
	}

	if payload.Len() > compress.MaxPayloadSize {
		return nil, compress.CompressionStats{}, fmt.Errorf("%w: payload of %d bytes exceeds %d",
			errs.ErrInvalidArgument, payload.Len(), compress.MaxPayloadSize)
	}

	stored, stats, err := compress.Measure(e.cfg.Compression, payload.Bytes())
	if err != nil {
		return nil, compress.CompressionStats{}, err
	}
	if len(stored) > math.MaxUint32 {
		return nil, compress.CompressionStats{}, fmt.Errorf("%w: payload of %d bytes is too large", errs.ErrInvalidArgument, len(stored))
	}

	h := Header{
		Version:       Version,
		ValueEncoding: e.cfg.ValueEncoding,
		Compression:   e.cfg.Compression,
		Flags:         flags,
		Seed:          res.Seed,
		Radius:        res.Radius,
		Low:           res.Bounds.Low,
		High:          res.Bounds.High,
		PayloadLength: uint32(len(stored)), //nolint:gosec // checked above
		TierCount:     uint32(len(tiers)),  //nolint:gosec // checked above
		Checksum:      hash.Checksum(stored),
	}

	out := make([]byte, 0, HeaderSize+len(stored))
	out = append(out, h.Bytes()...)
	out = append(out, stored...)

	return out, stats, nil
}

// writeColumn appends the value count, byte length and encoded bytes of values.
func (e *Encoder) writeColumn(buf *pool.ByteBuffer, values []float64) error {
	enc, err := encoding.NewFloatEncoder(e.cfg.ValueEncoding)
	if err != nil {
		return err
	}
	defer enc.Finish()

	enc.WriteSlice(values)
	data := enc.Bytes()

	buf.AppendUvarint(uint64(len(values)))
	buf.AppendUvarint(uint64(len(data)))
	_, _ = buf.Write(data)

	return nil
}

func (e *Encoder) writeScatter(buf *pool.ByteBuffer, points montecarlo.ClassifiedSet) error {
	n := len(points)
	xs, releaseX := pool.GetFloat64Slice(n)
	defer releaseX()
	ys, releaseY := pool.GetFloat64Slice(n)
	defer releaseY()

	bitmap := make([]byte, (n+7)/8)
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
		if p.Inside {
			bitmap[i/8] |= 1 << (i % 8)
		}
	}

	buf.AppendUvarint(uint64(n))
	for _, col := range [][]float64{xs, ys} {
		enc, err := encoding.NewFloatEncoder(e.cfg.ValueEncoding)
		if err != nil {
			return err
		}
		enc.WriteSlice(col)
		data := enc.Bytes()
		enc.Finish()

		buf.AppendUvarint(uint64(len(data)))
		_, _ = buf.Write(data)
	}
	_, _ = buf.Write(bitmap)

	return nil
}
