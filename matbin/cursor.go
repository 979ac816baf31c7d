package matbin

import (
	"bytes"
	"math"

	"github.com/anaminus/parse"
)

// cursor reads little-endian primitives from a fixed in-memory buffer,
// forward only. Every read checks the remaining byte count first, so no
// read ever advances past the end of the buffer and ErrOutOfBounds is
// the only error this layer raises on its own.
type cursor struct {
	fr   *parse.BinaryReader
	size int64

	// first is the first error recorded through fail, kept unwrapped so
	// callers can match it with errors.Is and errors.As.
	first error
}

func newCursor(b []byte) *cursor {
	return &cursor{
		fr:   parse.NewBinaryReader(bytes.NewReader(b)),
		size: int64(len(b)),
	}
}

// pos returns the number of bytes consumed so far.
func (c *cursor) pos() int64 {
	return c.fr.N()
}

// remaining returns the number of bytes left in the buffer.
func (c *cursor) remaining() int64 {
	return c.size - c.fr.N()
}

// err returns the first error recorded on the cursor.
func (c *cursor) err() error {
	if c.first != nil {
		return c.first
	}
	return c.fr.Err()
}

// fail records err and reports failure.
func (c *cursor) fail(err error) bool {
	if c.first == nil {
		c.first = err
	}
	c.fr.Add(0, err)
	return true
}

// need reports whether fewer than n bytes remain, recording
// ErrOutOfBounds when so.
func (c *cursor) need(n int64) (failed bool) {
	if c.fr.Err() != nil {
		return true
	}
	if n > c.remaining() {
		return c.fail(ErrOutOfBounds)
	}
	return false
}

func (c *cursor) u8(v *uint8) bool {
	return c.need(1) || c.fr.Number(v)
}

func (c *cursor) u16(v *uint16) bool {
	return c.need(2) || c.fr.Number(v)
}

func (c *cursor) u32(v *uint32) bool {
	return c.need(4) || c.fr.Number(v)
}

func (c *cursor) u64(v *uint64) bool {
	return c.need(8) || c.fr.Number(v)
}

func (c *cursor) i8(v *int8) bool {
	return c.need(1) || c.fr.Number(v)
}

func (c *cursor) i16(v *int16) bool {
	return c.need(2) || c.fr.Number(v)
}

func (c *cursor) i32(v *int32) bool {
	return c.need(4) || c.fr.Number(v)
}

func (c *cursor) i64(v *int64) bool {
	return c.need(8) || c.fr.Number(v)
}

func (c *cursor) f32(v *float32) bool {
	var bits uint32
	if c.u32(&bits) {
		return true
	}
	*v = math.Float32frombits(bits)
	return false
}

// fixedBytes fills b from the buffer.
func (c *cursor) fixedBytes(b []byte) bool {
	return c.need(int64(len(b))) || c.fr.Bytes(b)
}

// skip advances over n bytes of padding.
func (c *cursor) skip(n int64) bool {
	if c.need(n) {
		return true
	}
	return c.fr.Bytes(make([]byte, n))
}

// cstring reads bytes into s up to a NUL terminator, consuming no more
// than limit bytes including the terminator. term reports whether the
// terminator was found before the limit.
func (c *cursor) cstring(limit int64, s *string, term *bool) (failed bool) {
	*term = false
	var buf []byte
	for i := int64(0); i < limit; i++ {
		var b uint8
		if c.u8(&b) {
			return true
		}
		if b == 0 {
			*term = true
			*s = string(buf)
			return false
		}
		buf = append(buf, b)
	}
	*s = string(buf)
	return false
}
