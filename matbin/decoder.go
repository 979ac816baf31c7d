package matbin

import (
	"errors"
	"io"

	"github.com/halotools/mattag"
)

// Decoder decodes a stream of bytes into a mattag.Tag.
type Decoder struct{}

// Decode reads all of r and decodes it as one material tag. Decoding is
// fail-fast: on error no tag is returned and err carries the offset and
// cause. warn carries non-fatal diagnostics, currently only the count of
// unconsumed trailing bytes.
func (d Decoder) Decode(r io.Reader) (tag *mattag.Tag, warn, err error) {
	if r == nil {
		return nil, nil, errors.New("nil reader")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return d.DecodeBytes(b)
}

// DecodeBytes decodes one material tag from b. The buffer is accessed
// read-only; decoding the same bytes always yields a structurally equal
// tag, and independent callers may decode concurrently.
func (d Decoder) DecodeBytes(b []byte) (tag *mattag.Tag, warn, err error) {
	c := newCursor(b)
	tag = &mattag.Tag{}

	if readHeader(c, &tag.Header) ||
		readStringTable(c, &tag.Strings) ||
		readBlocks(c, &tag.Blocks) ||
		readMaterial(c, &tag.Material) {
		return nil, nil, DecodeError{Offset: c.pos(), Cause: c.err()}
	}

	var warns Errors
	if len(tag.Strings.Tail) > 0 {
		warns = warns.Append(ErrTruncatedString)
	}
	if n := c.remaining(); n > 0 {
		warns = warns.Append(TrailingDataError{Offset: c.pos(), Count: n})
	}
	return tag, warns.Return(), nil
}

// readHeader reads the fixed run of header words.
func readHeader(c *cursor, h *mattag.Header) (failed bool) {
	for i := range h.Words {
		if c.u32(&h.Words[i]) {
			return true
		}
	}
	return false
}

// readBlocks reads the fixed-count array of opaque blocks, each
// self-delimited by its own size field.
func readBlocks(c *cursor, blocks *[]mattag.Block) (failed bool) {
	*blocks = make([]mattag.Block, mattag.BlockCount)
	for i := range *blocks {
		b := &(*blocks)[i]
		if c.fixedBytes(b.Tag[:]) {
			return true
		}
		if c.u32(&b.Size) {
			return true
		}
		if int64(b.Size) > c.remaining() {
			return c.fail(SizeError{Declared: int64(b.Size), Remaining: c.remaining()})
		}
		b.Data = make([]byte, b.Size)
		if c.fixedBytes(b.Data) {
			return true
		}
	}
	return false
}

// readMaterial reads the material body: body header, inner chunk,
// reserved region, blend mode, shadow policy, size and shader chunks,
// then the parameter table. The file stores the parameters and their
// data chains as two parallel runs of the same length; they are read in
// disk order and paired into slots.
func readMaterial(c *cursor, m *mattag.Material) (failed bool) {
	if c.fixedBytes(m.Magic[:]) {
		return true
	}
	if c.u32(&m.Unused) {
		return true
	}
	if c.u32(&m.Size) {
		return true
	}
	if readChunkHeader(c, &m.Inner) {
		return true
	}
	if c.fixedBytes(m.Reserved[:]) {
		return true
	}

	var blend uint8
	if c.u8(&blend) {
		return true
	}
	m.BlendMode = mattag.BlendMode(blend)
	if c.skip(3) {
		return true
	}
	var shadow uint32
	if c.u32(&shadow) {
		return true
	}
	m.ShadowPolicy = mattag.ShadowPolicy(shadow)

	if readChunkHeader(c, &m.SizeChunk) {
		return true
	}
	if readPaddedNameChunk(c, &m.Shader) {
		return true
	}

	if c.fixedBytes(m.TableMagic[:]) {
		return true
	}
	if c.u32(&m.TableUnk0) {
		return true
	}
	if c.u32(&m.TableSize) {
		return true
	}
	var count uint32
	if c.u32(&count) {
		return true
	}
	if c.u32(&m.TableUnk2) {
		return true
	}
	if int64(count)*paramStride > c.remaining() {
		return c.fail(SizeError{Declared: int64(count) * paramStride, Remaining: c.remaining()})
	}

	m.Parameters = make([]mattag.ParameterSlot, count)
	for i := range m.Parameters {
		p, failed := readParameter(c)
		if failed {
			return true
		}
		m.Parameters[i].Parameter = p
	}
	for i := range m.Parameters {
		if readParameterData(c, &m.Parameters[i].Data) {
			return true
		}
	}
	return false
}
