package matbin

import (
	"github.com/halotools/mattag"
)

// The padded chunk shape substitutes a fixed pad region when the
// declared size falls below the alignment threshold.
const (
	chunkPadThreshold = 4
	chunkPad          = 4
)

// readChunkHeader reads the generic three-field chunk header. The magic
// is captured as-is; it is never checked against an allow-list.
func readChunkHeader(c *cursor, ch *mattag.Chunk) (failed bool) {
	if c.fixedBytes(ch.Magic[:]) {
		return true
	}
	if c.u32(&ch.Field1) {
		return true
	}
	return c.u32(&ch.Size)
}

// readNameChunk reads a chunk whose payload is Size bytes of name or
// reference content. Size has no lower bound and may be zero.
func readNameChunk(c *cursor, ch *mattag.NameChunk) (failed bool) {
	if readChunkHeader(c, &ch.Chunk) {
		return true
	}
	if int64(ch.Size) > c.remaining() {
		return c.fail(SizeError{Declared: int64(ch.Size), Remaining: c.remaining()})
	}
	b := make([]byte, ch.Size)
	if c.fixedBytes(b) {
		return true
	}
	ch.Name = string(b)
	return false
}

// readPaddedNameChunk reads a name chunk whose content region is padded
// to a minimum width: when the declared size falls below the alignment
// threshold, a fixed pad is consumed instead of the name bytes, so that
// the fields following the chunk stay 4-byte aligned.
func readPaddedNameChunk(c *cursor, ch *mattag.NameChunk) (failed bool) {
	if readChunkHeader(c, &ch.Chunk) {
		return true
	}
	if ch.Size < chunkPadThreshold {
		return c.skip(chunkPad)
	}
	if int64(ch.Size) > c.remaining() {
		return c.fail(SizeError{Declared: int64(ch.Size), Remaining: c.remaining()})
	}
	b := make([]byte, ch.Size)
	if c.fixedBytes(b) {
		return true
	}
	ch.Name = string(b)
	return false
}

// readSizedChunk reads a chunk followed by a raw data region of Size
// bytes.
func readSizedChunk(c *cursor, ch *mattag.SizedChunk) (failed bool) {
	if readChunkHeader(c, &ch.Chunk) {
		return true
	}
	if int64(ch.Size) > c.remaining() {
		return c.fail(SizeError{Declared: int64(ch.Size), Remaining: c.remaining()})
	}
	ch.Data = make([]byte, ch.Size)
	return c.fixedBytes(ch.Data)
}
