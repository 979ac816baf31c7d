package mattag

import "testing"

func TestEnumStrings(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{TypeBitmap.String(), "Bitmap"},
		{TypeColor.String(), "Color"},
		{ParameterType(99).String(), "ParameterType(99)"},
		{BlendOpaque.String(), "Opaque"},
		{BlendAlphaBlend.String(), "Alpha_Blend"},
		{BlendAlphaBlendAdditiveTransparent.String(), "Alpha_Blend_Additive_Transparent"},
		{BlendMode(200).String(), "BlendMode(200)"},
		{ShadowNone.String(), "None"},
		{ShadowRenderWithMaterial.String(), "Render_with_material"},
		{WrapMode(1).String(), "clamp"},
		{WrapMode(5).String(), "mirror_once_border"},
		{WrapMode(6).String(), "WrapMode(6)"},
		{FilterMode(0).String(), "trilinear"},
		{FilterMode(9).String(), "texture_array_quadanisotropic_two"},
		{SharpenMode(8).String(), "0.0"},
		{SharpenMode(12).String(), "sharpen1.00"},
		{ExternMode(4).String(), "depth_camera"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}

func TestEnumTableSizes(t *testing.T) {
	if len(blendModeNames) != 25 {
		t.Errorf("blend modes = %d, want 25", len(blendModeNames))
	}
	if len(shadowPolicyNames) != 3 {
		t.Errorf("shadow policies = %d, want 3", len(shadowPolicyNames))
	}
	if len(wrapModeNames) != 6 {
		t.Errorf("wrap modes = %d, want 6", len(wrapModeNames))
	}
	if len(filterModeNames) != 10 {
		t.Errorf("filter modes = %d, want 10", len(filterModeNames))
	}
	if len(sharpenModeNames) != 13 {
		t.Errorf("sharpen modes = %d, want 13", len(sharpenModeNames))
	}
	if len(externModeNames) != 5 {
		t.Errorf("extern modes = %d, want 5", len(externModeNames))
	}
}

func TestParameterTypeValid(t *testing.T) {
	for p := TypeBitmap; p <= TypeColor; p++ {
		if !p.Valid() {
			t.Errorf("%v reported invalid", p)
		}
	}
	if ParameterType(5).Valid() {
		t.Error("ParameterType(5) reported valid")
	}
}
