package matbin

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/halotools/mattag"
)

func TestDecodeMinimalFile(t *testing.T) {
	file := tagFile("shaders\\srf_blinn",
		[]buf{realParam(3.5)},
		[]buf{paramData("roughness", "", "", nil)},
	)

	tag, warn, err := Decoder{}.DecodeBytes(file)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if warn != nil {
		t.Fatalf("warn: %v", warn)
	}

	if got := tag.Header.PhysicsMaterialOffset(); got != 0x100 {
		t.Fatalf("physics material offset = %#x, want 0x100", got)
	}
	if got := tag.Header.SizeChunkOffset(); got != 0x200 {
		t.Fatalf("size chunk offset = %#x, want 0x200", got)
	}
	if got := tag.Header.BodyOffset(); got != 0x300 {
		t.Fatalf("body offset = %#x, want 0x300", got)
	}

	if want := []string{"", "", "", ""}; !reflect.DeepEqual(tag.Strings.Strings, want) {
		t.Fatalf("strings = %q, want %q", tag.Strings.Strings, want)
	}

	if len(tag.Blocks) != mattag.BlockCount {
		t.Fatalf("blocks = %d, want %d", len(tag.Blocks), mattag.BlockCount)
	}
	for i, b := range tag.Blocks {
		if b.Size != 0 || len(b.Data) != 0 {
			t.Fatalf("block %d not empty: %+v", i, b)
		}
	}

	m := &tag.Material
	if m.BlendMode != mattag.BlendAlphaBlend {
		t.Fatalf("blend mode = %v", m.BlendMode)
	}
	if m.ShadowPolicy != mattag.ShadowRenderAsDecal {
		t.Fatalf("shadow policy = %v", m.ShadowPolicy)
	}
	if m.Shader.Name != "shaders\\srf_blinn" {
		t.Fatalf("shader = %q", m.Shader.Name)
	}
	if got := m.ShaderName(); got != "srf_blinn" {
		t.Fatalf("ShaderName = %q, want %q", got, "srf_blinn")
	}

	if len(m.Parameters) != 1 {
		t.Fatalf("parameters = %d, want 1", len(m.Parameters))
	}
	slot := m.Parameters[0]
	if slot.Parameter.Type() != mattag.TypeReal {
		t.Fatalf("type = %v, want Real", slot.Parameter.Type())
	}
	if v := slot.Parameter.(mattag.RealParameter); v.Value != 3.5 {
		t.Fatalf("value = %v, want 3.5", v.Value)
	}
	if slot.Data.Name1.Name != "roughness" {
		t.Fatalf("name = %q", slot.Data.Name1.Name)
	}
}

func TestDecodeDeterministic(t *testing.T) {
	file := tagFile("shaders\\srf_layered",
		[]buf{
			bitmapParam(1, 1, 0, 0, [6]uint16{0, 0, 0, 0, 8, 0}),
			colorParam(1, 0.1, 0.2, 0.3),
			intParam(0, 4, [6]float32{}),
			boolParam(1),
		},
		[]buf{
			paramData("base_map", "datalevels\\brick", "levels\\default", []byte{1, 2}),
			paramData("tint", "", "", nil),
			paramData("layers", "", "", nil),
			paramData("decal_enabled", "", "", nil),
		},
	)

	a, _, err := Decoder{}.DecodeBytes(file)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b, _, err := Decoder{}.DecodeBytes(file)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("decoding the same bytes twice produced different models")
	}
}

// The parameter and data runs always have the same length, so each slot
// pairs one parameter with one data chain.
func TestDecodeParallelSlots(t *testing.T) {
	file := tagFile("shaders\\srf_two",
		[]buf{realParam(1), boolParam(0)},
		[]buf{paramData("a", "", "", nil), paramData("b", "", "", nil)},
	)

	tag, _, err := Decoder{}.DecodeBytes(file)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	slots := tag.Material.Parameters
	if len(slots) != 2 {
		t.Fatalf("slots = %d, want 2", len(slots))
	}
	if slots[0].Data.Name1.Name != "a" || slots[1].Data.Name1.Name != "b" {
		t.Fatalf("data order got mixed up: %q, %q",
			slots[0].Data.Name1.Name, slots[1].Data.Name1.Name)
	}
}

func TestDecodeTrailingBytesWarn(t *testing.T) {
	file := tagFile("shaders\\srf_pad", nil, nil).pad(17)

	tag, warn, err := Decoder{}.DecodeBytes(file)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tag == nil {
		t.Fatal("no tag returned")
	}
	var terr TrailingDataError
	if !errors.As(warn, &terr) {
		t.Fatalf("warn = %v, want TrailingDataError", warn)
	}
	if terr.Count != 17 {
		t.Fatalf("trailing count = %d, want 17", terr.Count)
	}
	if terr.Offset != int64(len(file))-17 {
		t.Fatalf("trailing offset = %d, want %d", terr.Offset, len(file)-17)
	}
}

func TestDecodeUnknownParameterTypeFails(t *testing.T) {
	bad := buf{}.pad(4).u32(99).pad(700)
	file := tagFile("shaders\\srf_bad", []buf{bad}, nil)

	tag, _, err := Decoder{}.DecodeBytes(file)
	if tag != nil {
		t.Fatal("a model was returned for an unknown parameter type")
	}
	var derr DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("err = %T, want DecodeError", err)
	}
	var uerr UnknownTypeError
	if !errors.As(err, &uerr) {
		t.Fatalf("err = %v, want UnknownTypeError cause", err)
	}
}

func TestDecodeTruncatedFileFails(t *testing.T) {
	file := tagFile("shaders\\srf_cut",
		[]buf{realParam(2)},
		[]buf{paramData("x", "", "", nil)},
	)
	for _, n := range []int{10, 170, 300, len(file) - 1} {
		tag, _, err := Decoder{}.DecodeBytes(file[:n])
		if err == nil {
			t.Fatalf("cut at %d: no error", n)
		}
		if tag != nil {
			t.Fatalf("cut at %d: partial model returned", n)
		}
		var derr DecodeError
		if !errors.As(err, &derr) {
			t.Fatalf("cut at %d: err = %T, want DecodeError", n, err)
		}
	}
}

func TestDecodeReader(t *testing.T) {
	file := tagFile("shaders\\srf_rd", nil, nil)
	tag, warn, err := Decoder{}.Decode(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if warn != nil {
		t.Fatalf("warn: %v", warn)
	}
	if tag.Material.Shader.Name != "shaders\\srf_rd" {
		t.Fatalf("shader = %q", tag.Material.Shader.Name)
	}
}

func TestDecodeShortShaderPadded(t *testing.T) {
	// A shader reference shorter than the threshold stores a pad region
	// instead of name bytes.
	file := tagFile("", nil, nil)
	tag, _, err := Decoder{}.DecodeBytes(file)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tag.Material.Shader.Name != "" {
		t.Fatalf("shader = %q, want empty", tag.Material.Shader.Name)
	}
}

func TestDump(t *testing.T) {
	file := tagFile("shaders\\srf_dump",
		[]buf{realParam(0.5)},
		[]buf{paramData("gloss", "", "", nil)},
	)
	var out strings.Builder
	warn, err := Decoder{}.Dump(&out, bytes.NewReader(file))
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if warn != nil {
		t.Fatalf("warn: %v", warn)
	}
	for _, want := range []string{"BlendMode", "srf_dump", "gloss", "Value: 0.5", "Alpha_Blend"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("dump output missing %q:\n%s", want, out.String())
		}
	}
}
