package mattag

import (
	json "github.com/goccy/go-json"
)

// SigString renders a four-byte magic for display, substituting '.' for
// bytes outside the printable ASCII range.
func SigString(sig [4]byte) string {
	var s [4]byte
	for i, c := range sig {
		if 32 <= c && c <= 126 {
			s[i] = c
		} else {
			s[i] = '.'
		}
	}
	return string(s[:])
}

func (t ParameterType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }
func (m BlendMode) MarshalJSON() ([]byte, error)     { return json.Marshal(m.String()) }
func (p ShadowPolicy) MarshalJSON() ([]byte, error)  { return json.Marshal(p.String()) }
func (m WrapMode) MarshalJSON() ([]byte, error)      { return json.Marshal(m.String()) }
func (m FilterMode) MarshalJSON() ([]byte, error)    { return json.Marshal(m.String()) }
func (m SharpenMode) MarshalJSON() ([]byte, error)   { return json.Marshal(m.String()) }
func (m ExternMode) MarshalJSON() ([]byte, error)    { return json.Marshal(m.String()) }

// MarshalJSON flattens a slot into its parameter type, name, variant
// fields, and the bitmap paths when present.
func (s ParameterSlot) MarshalJSON() ([]byte, error) {
	out := struct {
		Type        ParameterType `json:"type"`
		Name        string        `json:"name,omitempty"`
		Parameter   Parameter     `json:"parameter"`
		Path        string        `json:"path,omitempty"`
		DefaultPath string        `json:"defaultPath,omitempty"`
	}{
		Type:      s.Parameter.Type(),
		Name:      s.Data.Name1.Name,
		Parameter: s.Parameter,
	}
	if s.Parameter.Type() == TypeBitmap {
		out.Path = s.Data.BitmapPath()
		out.DefaultPath = s.Data.Name2.Name
	}
	return json.Marshal(out)
}
