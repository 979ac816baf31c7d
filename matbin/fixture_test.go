package matbin

import (
	"encoding/binary"
	"math"

	"github.com/halotools/mattag"
)

// buf builds little-endian byte fixtures for tests.
type buf []byte

func (b buf) u8(v uint8) buf   { return append(b, v) }
func (b buf) u16(v uint16) buf { return binary.LittleEndian.AppendUint16(b, v) }
func (b buf) u32(v uint32) buf { return binary.LittleEndian.AppendUint32(b, v) }
func (b buf) u64(v uint64) buf { return binary.LittleEndian.AppendUint64(b, v) }
func (b buf) f32(v float32) buf {
	return b.u32(math.Float32bits(v))
}
func (b buf) raw(p []byte) buf  { return append(b, p...) }
func (b buf) str(s string) buf  { return append(b, s...) }
func (b buf) pad(n int) buf     { return append(b, make([]byte, n)...) }
func (b buf) chunk(magic string, field1, size uint32) buf {
	return b.str(magic).u32(field1).u32(size)
}

// realParam builds a real parameter record with the given value.
func realParam(v float32) buf {
	return buf{}.pad(4).u32(uint32(mattag.TypeReal)).pad(40).f32(v).pad(116)
}

// boolParam builds a boolean parameter record.
func boolParam(v uint32) buf {
	return buf{}.pad(4).u32(uint32(mattag.TypeBoolean)).pad(56).u32(v).pad(100)
}

// colorParam builds a color parameter record.
func colorParam(a, r, g, bl float32) buf {
	return buf{}.pad(4).u32(uint32(mattag.TypeColor)).pad(24).f32(a).f32(r).f32(g).f32(bl).pad(120)
}

// bitmapParam builds a bitmap parameter record.
func bitmapParam(scaleU, scaleV, offU, offV float32, modes [6]uint16) buf {
	b := buf{}.pad(4).u32(uint32(mattag.TypeBitmap)).pad(40).
		f32(scaleU).f32(scaleV).f32(offU).f32(offV).pad(6)
	for _, m := range modes {
		b = b.u16(m)
	}
	return b.pad(86)
}

// intParam builds an int parameter record.
func intParam(index, value uint32, aux [6]float32) buf {
	b := buf{}.pad(4).u32(uint32(mattag.TypeInt)).pad(64).u32(index).u32(value)
	for _, f := range aux {
		b = b.f32(f)
	}
	return b.pad(604)
}

// paramData builds a parameter data chain.
func paramData(name, ref, def string, trailing []byte) buf {
	return buf{}.
		chunk("tsgt", 0, 0).
		pad(12).
		chunk("sigt", 0, uint32(len(name))).str(name).
		chunk("frgt", 0, uint32(len(ref))).str(ref).
		chunk("sigt", 0, uint32(len(def))).str(def).
		pad(8).
		u32(uint32(len(trailing))).
		pad(36).
		raw(trailing)
}

// tagFile builds a complete minimal material tag around the given
// parameter records and data chains. shader must be at least 4 bytes or
// empty.
func tagFile(shader string, params, data []buf) buf {
	b := buf{}

	// Header: zero words except the three offset cross-references.
	for i := 0; i < mattag.HeaderWords; i++ {
		switch i {
		case mattag.HeaderWordPhysicsMaterial:
			b = b.u32(0x100)
		case mattag.HeaderWordSizeChunk:
			b = b.u32(0x200)
		case mattag.HeaderWordBody:
			b = b.u32(0x300)
		default:
			b = b.u32(0)
		}
	}

	// String table with a budget of 4 holding four empty strings.
	b = b.str("sgtb").u32(0).u32(4).pad(4)

	// Fixed run of empty blocks.
	for i := 0; i < mattag.BlockCount; i++ {
		b = b.str("blktag0\x00").u32(0)
	}

	// Material body.
	b = b.str("taDB").u32(0).u32(0)
	b = b.chunk("lbgt", 0, 0)
	b = b.pad(64)
	b = b.u8(uint8(mattag.BlendAlphaBlend)).pad(3)
	b = b.u32(uint32(mattag.ShadowRenderAsDecal))
	b = b.chunk("tsgt", 0, 0)
	b = b.chunk("frgt", 0, uint32(len(shader)))
	if len(shader) < chunkPadThreshold {
		b = b.pad(chunkPad)
	} else {
		b = b.str(shader)
	}

	// Parameter table.
	b = b.str("mrpt").u32(0).u32(0).u32(uint32(len(params))).u32(0)
	for _, p := range params {
		b = b.raw(p)
	}
	for _, d := range data {
		b = b.raw(d)
	}
	return b
}
