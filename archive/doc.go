// Package archive packs montecarlo.Results into a single self-describing byte
// slice so a plotting process can pick up a run without re-simulating it.
//
// # Layout
//
// An archive is a fixed 56-byte little-endian header followed by the payload:
//
//	offset  size  field
//	0       4     magic "MCPI"
//	4       1     version
//	5       1     value encoding (format.EncodingType)
//	6       1     compression (format.CompressionType)
//	7       1     flags (bit 0: scatter set present)
//	8       8     run seed
//	16      8     radius (float64 bits)
//	24      8     bounds low (float64 bits)
//	32      8     bounds high (float64 bits)
//	40      4     stored payload length
//	44      4     tier count
//	48      8     xxHash64 of the stored payload
//
// The payload, before compression, holds every tier in run order:
//
//	uvarint sample size
//	uvarint series count
//	per series: uvarint value count, uvarint byte length, encoded values
//
// followed, when the scatter flag is set, by the scatter set:
//
//	uvarint point count
//	uvarint byte length, encoded x coordinates
//	uvarint byte length, encoded y coordinates
//	inside bitmap, one bit per point, LSB first
//
// Values are encoded with the configured float encoding (Gorilla by default)
// and the whole payload is compressed with the configured codec.
//
// Nothing is written to disk; callers decide where the bytes go.
package archive
