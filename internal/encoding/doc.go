// Package encoding implements the float64 column encodings used by the handoff
// archive: raw little-endian values and Gorilla XOR compression.
//
// A running π estimate changes by a small relative amount per sample once the
// series settles, so consecutive values share sign, exponent and most of the
// mantissa. Gorilla stores only the bits that differ from the previous value,
// which typically shrinks a long series to a fraction of its raw size.
//
// See https://www.vldb.org/pvldb/vol8/p1816-teller.pdf for the algorithm.
package encoding
