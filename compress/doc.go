// Package compress provides the payload codecs used by the montepi handoff archive.
//
// An archive payload holds every estimate series of a run plus one scatter set,
// already column-encoded (raw or Gorilla). The codecs in this package apply a
// second, general-purpose compression stage on top of that:
//
//   - None: payload is stored as encoded
//   - Zstd: best ratio, used for large tiers that are shipped somewhere
//   - S2:   balanced speed and ratio
//   - LZ4:  fastest decompression for interactive plotting tools
//
// All codecs satisfy the Codec interface:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, _ := codec.Compress(payload)
//	payload, err = codec.Decompress(packed)
//
// Zstd is backed by github.com/klauspost/compress by default. Building with
// `-tags gozstd` on a cgo-enabled toolchain switches to the cgo binding
// github.com/valyala/gozstd; both produce standard zstd frames, so archives are
// readable by either build.
//
// Codecs are stateless values and safe for concurrent use. Encoders and decoders
// that are expensive to create are pooled internally.
package compress
