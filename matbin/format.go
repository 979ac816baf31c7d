// Package matbin implements a decoder for Halo 4's binary material tag
// format.
//
// The easiest way to decode a file is through Decoder.Decode, which reads
// a complete tag from a stream and produces a mattag.Tag. The format is
// consumed read-only; there is no encoder.
package matbin

// Chunk magics observed in material tags, as stored on disk. They are
// recorded for diagnostics only; the format is not self-verifying beyond
// its length bookkeeping, so unknown magics are never rejected.
var (
	SigTgSt = [4]byte{'t', 's', 'g', 't'} // size-tagged chunk
	SigTgRf = [4]byte{'f', 'r', 'g', 't'} // reference chunk
	SigTgIs = [4]byte{'s', 'i', 'g', 't'} // name chunk
	SigTgBl = [4]byte{'l', 'b', 'g', 't'} // block chunk
	SigTgDa = [4]byte{'a', 'd', 'g', 't'} // padded data chunk
	SigBDat = [4]byte{'t', 'a', 'D', 'B'} // material body
)
