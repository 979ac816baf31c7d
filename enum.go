package mattag

import "strconv"

// ParameterType is the discriminant selecting a parameter variant.
type ParameterType uint32

const (
	TypeBitmap  ParameterType = 0
	TypeReal    ParameterType = 1
	TypeInt     ParameterType = 2
	TypeBoolean ParameterType = 3
	TypeColor   ParameterType = 4
)

// Valid returns whether the value maps to a known parameter variant.
func (t ParameterType) Valid() bool {
	return t <= TypeColor
}

func (t ParameterType) String() string {
	switch t {
	case TypeBitmap:
		return "Bitmap"
	case TypeReal:
		return "Real"
	case TypeInt:
		return "Int"
	case TypeBoolean:
		return "Boolean"
	case TypeColor:
		return "Color"
	}
	return "ParameterType(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// BlendMode selects how a material composites with what is behind it.
type BlendMode uint8

const (
	BlendOpaque BlendMode = iota
	BlendAdditive
	BlendMultiply
	BlendAlphaBlend
	BlendDoubleMultiply
	BlendPreMultipliedAlpha
	BlendMaximum
	BlendMultiplyAdd
	BlendAddSrcTimesDstAlpha
	BlendAddSrcTimesSrcAlpha
	BlendInvAlphaBlend
	BlendMotionBlurStatic
	BlendMotionBlurInhibit
	BlendApplyShadowIntoShadowMask
	BlendAlphaBlendConstant
	BlendOverdrawApply
	BlendWetScreenEffect
	BlendMinimum
	BlendReverseSubtract
	BlendForgeLightmap
	BlendForgeLightmapInv
	BlendReplaceAllChannels
	BlendAlphaBlendMax
	BlendOpaqueAlphaBlend
	BlendAlphaBlendAdditiveTransparent
)

var blendModeNames = []string{
	"Opaque", "Additive", "Multiply", "Alpha_Blend", "Double_Multiply",
	"Pre_Multiplied_Alpha", "Maximum", "Multiply_Add",
	"Add_Source_Times_Destination_Alpha", "Add_Source_Times_Source_Alpha",
	"Inv_Alpha_Blend", "Motion_Blur_Static", "Motion_Blur_Inhibit",
	"Apply_Shadow_Into_Shadow_Mask", "Alpha_Blend_Constant",
	"Overdraw_Apply", "Wet_Screen_Effect", "Minimum", "Reverse_Subtract",
	"Forge_Lightmap", "Forge_Lightmap_Inv", "Replace_All_Channels",
	"Alpha_Blend_Max", "Opaque_Alpha_Blend",
	"Alpha_Blend_Additive_Transparent",
}

func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "BlendMode(" + strconv.FormatUint(uint64(m), 10) + ")"
}

// ShadowPolicy selects how transparent surfaces interact with shadows.
type ShadowPolicy uint32

const (
	ShadowNone ShadowPolicy = iota
	ShadowRenderAsDecal
	ShadowRenderWithMaterial
)

var shadowPolicyNames = []string{
	"None", "Render_as_decal", "Render_with_material",
}

func (p ShadowPolicy) String() string {
	if int(p) < len(shadowPolicyNames) {
		return shadowPolicyNames[p]
	}
	return "ShadowPolicy(" + strconv.FormatUint(uint64(p), 10) + ")"
}

// WrapMode selects texture addressing outside the unit square.
type WrapMode uint16

var wrapModeNames = []string{
	"wrap", "clamp", "mirror", "black_border", "mirror_once",
	"mirror_once_border",
}

func (m WrapMode) String() string {
	if int(m) < len(wrapModeNames) {
		return wrapModeNames[m]
	}
	return "WrapMode(" + strconv.FormatUint(uint64(m), 10) + ")"
}

// FilterMode selects texture filtering.
type FilterMode uint16

var filterModeNames = []string{
	"trilinear", "point", "bilinear", "UNUSED_0",
	"anisotropic_two_expensive", "UNUSED_1", "anisotropic_four_EXPENSIVE",
	"lightprobe_texture_array", "texture_array_quadlinear",
	"texture_array_quadanisotropic_two",
}

func (m FilterMode) String() string {
	if int(m) < len(filterModeNames) {
		return filterModeNames[m]
	}
	return "FilterMode(" + strconv.FormatUint(uint64(m), 10) + ")"
}

// SharpenMode selects the mip sharpen/blur bias.
type SharpenMode uint16

var sharpenModeNames = []string{
	"blur2.00", "blur1.75", "blur1.50", "blur1.25", "blur1.00",
	"blur0.75", "blur0.50", "blur0.25", "0.0", "sharpen0.25",
	"sharpen0.50", "sharpen0.75", "sharpen1.00",
}

func (m SharpenMode) String() string {
	if int(m) < len(sharpenModeNames) {
		return sharpenModeNames[m]
	}
	return "SharpenMode(" + strconv.FormatUint(uint64(m), 10) + ")"
}

// ExternMode selects an engine-provided texture source.
type ExternMode uint16

var externModeNames = []string{
	"use_bitmap_as_normal", "albedo_buffer", "normal_buffer",
	"dynamic_UI", "depth_camera",
}

func (m ExternMode) String() string {
	if int(m) < len(externModeNames) {
		return externModeNames[m]
	}
	return "ExternMode(" + strconv.FormatUint(uint64(m), 10) + ")"
}
