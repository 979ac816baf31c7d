// The mattag package holds the decoded representation of Halo 4 engine
// material tag files.
//
// A material tag begins with a fixed header of 32-bit words, followed by a
// byte-budgeted string table, a fixed run of opaque length-delimited
// blocks, and the material body: blend mode, shadow policy, a shader
// reference, and an ordered list of type-tagged parameters, each paired
// with an auxiliary chunk chain. The Tag struct and everything hanging off
// it is immutable once a decode completes; the "matbin" sub-package
// produces it from raw bytes.
package mattag

import "strings"

// BlockCount is the number of opaque blocks in every material tag.
const BlockCount = 11

// HeaderWords is the number of 32-bit words in the fixed file header.
const HeaderWords = 42

// Indices of the header words that hold relative offsets. The offsets are
// informational cross-references; the decoder locates everything by
// sequential consumption and never dereferences them.
const (
	HeaderWordPhysicsMaterial = 36 // offset of the physics material type string
	HeaderWordSizeChunk       = 37 // offset of the size-tagged chunk
	HeaderWordBody            = 38 // offset of the material body
)

// Tag is the decoded form of one material tag file.
type Tag struct {
	// Header contains the fixed file header.
	Header Header

	// Strings contains the string table that follows the header.
	Strings StringTable

	// Blocks contains the BlockCount opaque blocks, in file order.
	Blocks []Block

	// Material contains the material body.
	Material Material
}

// Header is the fixed sequence of 32-bit words at the start of a tag.
type Header struct {
	Words [HeaderWords]uint32
}

// PhysicsMaterialOffset returns the recorded offset of the physics
// material type string.
func (h *Header) PhysicsMaterialOffset() uint32 {
	return h.Words[HeaderWordPhysicsMaterial]
}

// SizeChunkOffset returns the recorded offset of the size-tagged chunk.
func (h *Header) SizeChunkOffset() uint32 {
	return h.Words[HeaderWordSizeChunk]
}

// BodyOffset returns the recorded offset of the material body.
func (h *Header) BodyOffset() uint32 {
	return h.Words[HeaderWordBody]
}

// StringTable is an ordered sequence of NUL-terminated strings delimited
// by a declared byte budget.
type StringTable struct {
	// Magic is the table's magic, recorded for diagnostics.
	Magic [4]byte

	Unused uint32

	// ByteBudget is the declared total length of the string region,
	// terminators included.
	ByteBudget uint32

	// Strings contains the table entries in file order, without their
	// terminators.
	Strings []string

	// Tail holds any bytes inside the budget after the last terminated
	// string. They are preserved for diagnostics and are not part of
	// Strings.
	Tail []byte
}

// Block is one opaque length-delimited block.
type Block struct {
	// Tag identifies the block.
	Tag [8]byte

	// Size is the declared payload length.
	Size uint32

	// Data is the raw payload.
	Data []byte
}

// Chunk is the generic three-field chunk header that recurs throughout
// the format. Magics are captured for diagnostics but never validated;
// an unknown magic is not an error.
type Chunk struct {
	Magic  [4]byte
	Field1 uint32

	// Size is the declared payload length. Metadata-only chunks carry no
	// payload of their own; the caller decides whether one follows.
	Size uint32
}

// NameChunk is a chunk whose payload is a name or reference string.
type NameChunk struct {
	Chunk

	// Name is the payload. It may be empty.
	Name string
}

// SizedChunk is a chunk followed by a raw data region of Size bytes.
type SizedChunk struct {
	Chunk

	Data []byte
}

// Material is the decoded material body.
type Material struct {
	// Magic is the body's magic, recorded for diagnostics.
	Magic  [4]byte
	Unused uint32
	Size   uint32

	// Inner is the metadata-only chunk nested at the top of the body.
	Inner Chunk

	Reserved [64]byte

	// BlendMode selects how the material composites.
	BlendMode BlendMode

	// ShadowPolicy selects how transparent surfaces shadow.
	ShadowPolicy ShadowPolicy

	// SizeChunk is the metadata-only size chunk preceding the shader
	// reference.
	SizeChunk Chunk

	// Shader names the material shader. The name region is padded to a
	// minimum width of four bytes.
	Shader NameChunk

	// Parameter table header fields.
	TableMagic [4]byte
	TableUnk0  uint32
	TableSize  uint32
	TableUnk2  uint32

	// Parameters holds the parameter slots in file order. On disk the
	// parameters and their data chains are stored as two parallel runs;
	// they are paired here.
	Parameters []ParameterSlot
}

// ShaderName returns the last path segment of the material's shader
// reference.
func (m *Material) ShaderName() string {
	i := strings.LastIndexByte(m.Shader.Name, '\\')
	return m.Shader.Name[i+1:]
}

// ParameterSlot pairs a parameter with its auxiliary data chain. The
// chain is present for every slot regardless of the parameter's type; it
// only carries meaningful content for bitmap parameters.
type ParameterSlot struct {
	Parameter Parameter
	Data      ParameterData
}

// Parameter is one typed material parameter. It is implemented by
// BitmapParameter, RealParameter, IntParameter, BoolParameter, and
// ColorParameter.
type Parameter interface {
	// Type returns the parameter's discriminant.
	Type() ParameterType
}

// BitmapParameter is a texture reference with sampling state.
type BitmapParameter struct {
	ScaleU, ScaleV   float32
	OffsetU, OffsetV float32

	FilterMode  FilterMode
	WrapMode    WrapMode
	WrapModeU   WrapMode
	WrapModeV   WrapMode
	SharpenMode SharpenMode
	ExternMode  ExternMode
}

func (BitmapParameter) Type() ParameterType { return TypeBitmap }

// RealParameter is a single scalar.
type RealParameter struct {
	Value float32
}

func (RealParameter) Type() ParameterType { return TypeReal }

// IntParameter is an integer with auxiliary data. Its on-disk record is
// larger than every other variant's.
type IntParameter struct {
	ParameterIndex uint32
	Value          uint32
	Aux            [6]float32
}

func (IntParameter) Type() ParameterType { return TypeInt }

// BoolParameter is a single flag.
type BoolParameter struct {
	Value bool
}

func (BoolParameter) Type() ParameterType { return TypeBoolean }

// ColorParameter is an ARGB color.
type ColorParameter struct {
	A, R, G, B float32
}

func (ColorParameter) Type() ParameterType { return TypeColor }

// ParameterData is the chunk chain stored alongside each parameter slot.
type ParameterData struct {
	// Sized is the size-tagged chunk opening the chain, with its raw data
	// region.
	Sized SizedChunk

	// Name1 is the parameter's name.
	Name1 NameChunk

	// Ref is the referenced bitmap tag path. Empty for non-bitmap slots.
	Ref NameChunk

	// Name2 is the default bitmap tag path. Empty for non-bitmap slots.
	Name2 NameChunk

	// Trailing is the variable-length blob closing the chain.
	Trailing []byte
}

// BitmapPath returns the referenced bitmap tag path with the four-byte
// prefix the engine stores ahead of it removed.
func (d *ParameterData) BitmapPath() string {
	if len(d.Ref.Name) <= 4 {
		return d.Ref.Name
	}
	return d.Ref.Name[4:]
}
