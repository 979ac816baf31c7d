package matbin

import (
	"github.com/halotools/mattag"
)

// Total record widths per parameter variant, counting the 4 leading pad
// bytes and the discriminant word. The int variant occupies a larger
// slot than every other variant.
const (
	paramStride    = 168
	paramIntStride = 708
)

// readParameter reads one tagged parameter record: 4 bytes of pad, the
// discriminant, then the variant's fixed layout. Each variant reader
// consumes its own hard-coded interior padding so that the record width
// is constant per variant. An unmapped discriminant aborts the decode;
// without a known width there is no way to locate the next record.
func readParameter(c *cursor) (p mattag.Parameter, failed bool) {
	if c.skip(4) {
		return nil, true
	}
	var disc uint32
	if c.u32(&disc) {
		return nil, true
	}
	switch mattag.ParameterType(disc) {
	case mattag.TypeBitmap:
		return readBitmapParameter(c)
	case mattag.TypeReal:
		return readRealParameter(c)
	case mattag.TypeInt:
		return readIntParameter(c)
	case mattag.TypeBoolean:
		return readBoolParameter(c)
	case mattag.TypeColor:
		return readColorParameter(c)
	}
	return nil, c.fail(UnknownTypeError(disc))
}

func readBitmapParameter(c *cursor) (p mattag.Parameter, failed bool) {
	var v mattag.BitmapParameter
	if c.skip(40) {
		return nil, true
	}
	if c.f32(&v.ScaleU) || c.f32(&v.ScaleV) {
		return nil, true
	}
	if c.f32(&v.OffsetU) || c.f32(&v.OffsetV) {
		return nil, true
	}
	if c.skip(6) {
		return nil, true
	}
	var modes [6]uint16
	for i := range modes {
		if c.u16(&modes[i]) {
			return nil, true
		}
	}
	v.FilterMode = mattag.FilterMode(modes[0])
	v.WrapMode = mattag.WrapMode(modes[1])
	v.WrapModeU = mattag.WrapMode(modes[2])
	v.WrapModeV = mattag.WrapMode(modes[3])
	v.SharpenMode = mattag.SharpenMode(modes[4])
	v.ExternMode = mattag.ExternMode(modes[5])
	if c.skip(86) {
		return nil, true
	}
	return v, false
}

func readRealParameter(c *cursor) (p mattag.Parameter, failed bool) {
	var v mattag.RealParameter
	if c.skip(40) {
		return nil, true
	}
	if c.f32(&v.Value) {
		return nil, true
	}
	if c.skip(116) {
		return nil, true
	}
	return v, false
}

func readIntParameter(c *cursor) (p mattag.Parameter, failed bool) {
	var v mattag.IntParameter
	if c.skip(64) {
		return nil, true
	}
	if c.u32(&v.ParameterIndex) {
		return nil, true
	}
	if c.u32(&v.Value) {
		return nil, true
	}
	for i := range v.Aux {
		if c.f32(&v.Aux[i]) {
			return nil, true
		}
	}
	if c.skip(604) {
		return nil, true
	}
	return v, false
}

func readBoolParameter(c *cursor) (p mattag.Parameter, failed bool) {
	var v mattag.BoolParameter
	if c.skip(56) {
		return nil, true
	}
	var raw uint32
	if c.u32(&raw) {
		return nil, true
	}
	v.Value = raw != 0
	if c.skip(100) {
		return nil, true
	}
	return v, false
}

func readColorParameter(c *cursor) (p mattag.Parameter, failed bool) {
	var v mattag.ColorParameter
	if c.skip(24) {
		return nil, true
	}
	if c.f32(&v.A) || c.f32(&v.R) || c.f32(&v.G) || c.f32(&v.B) {
		return nil, true
	}
	if c.skip(120) {
		return nil, true
	}
	return v, false
}

// readParameterData reads the auxiliary chunk chain stored for a
// parameter slot. The chain is present for every slot regardless of the
// parameter's type; parsing it unconditionally keeps the array stride
// correct.
func readParameterData(c *cursor, d *mattag.ParameterData) (failed bool) {
	if readSizedChunk(c, &d.Sized) {
		return true
	}
	if c.skip(12) {
		return true
	}
	if readNameChunk(c, &d.Name1) {
		return true
	}
	if readNameChunk(c, &d.Ref) {
		return true
	}
	if readNameChunk(c, &d.Name2) {
		return true
	}
	if c.skip(8) {
		return true
	}
	var count uint32
	if c.u32(&count) {
		return true
	}
	if c.skip(36) {
		return true
	}
	if int64(count) > c.remaining() {
		return c.fail(SizeError{Declared: int64(count), Remaining: c.remaining()})
	}
	d.Trailing = make([]byte, count)
	return c.fixedBytes(d.Trailing)
}
