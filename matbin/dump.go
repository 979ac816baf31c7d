package matbin

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/halotools/mattag"
)

// Dump writes to w a readable representation of the material tag decoded
// from r.
func (d Decoder) Dump(w io.Writer, r io.Reader) (warn, err error) {
	tag, warn, err := d.Decode(r)
	if err != nil {
		return warn, err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "Header: {")
	for i, word := range tag.Header.Words {
		dumpNewline(bw, 1)
		fmt.Fprintf(bw, "%d: 0x%08X", i, word)
		switch i {
		case mattag.HeaderWordPhysicsMaterial:
			bw.WriteString(" (physics material offset)")
		case mattag.HeaderWordSizeChunk:
			bw.WriteString(" (size chunk offset)")
		case mattag.HeaderWordBody:
			bw.WriteString(" (body offset)")
		}
	}
	fmt.Fprint(bw, "\n}")

	fmt.Fprintf(bw, "\nStrings: %s (budget:%d) {", mattag.SigString(tag.Strings.Magic), tag.Strings.ByteBudget)
	for i, s := range tag.Strings.Strings {
		dumpNewline(bw, 1)
		fmt.Fprintf(bw, "%d: ", i)
		dumpString(bw, 1, s)
	}
	fmt.Fprint(bw, "\n}")

	fmt.Fprint(bw, "\nBlocks: {")
	for i, b := range tag.Blocks {
		dumpNewline(bw, 1)
		fmt.Fprintf(bw, "#%d: ", i)
		dumpTag8(bw, b.Tag)
		bw.WriteString(" ")
		dumpBytes(bw, 1, b.Data)
	}
	fmt.Fprint(bw, "\n}")

	dumpMaterial(bw, &tag.Material)

	bw.Flush()
	return warn, nil
}

func dumpMaterial(w *bufio.Writer, m *mattag.Material) {
	fmt.Fprintf(w, "\nMaterial: %s (size:%d) {", mattag.SigString(m.Magic), m.Size)
	dumpNewline(w, 1)
	fmt.Fprintf(w, "Inner: ")
	dumpChunk(w, &m.Inner)
	dumpNewline(w, 1)
	fmt.Fprintf(w, "BlendMode: %d (%s)", uint8(m.BlendMode), m.BlendMode)
	dumpNewline(w, 1)
	fmt.Fprintf(w, "ShadowPolicy: %d (%s)", uint32(m.ShadowPolicy), m.ShadowPolicy)
	dumpNewline(w, 1)
	fmt.Fprintf(w, "SizeChunk: ")
	dumpChunk(w, &m.SizeChunk)
	dumpNewline(w, 1)
	fmt.Fprintf(w, "Shader: ")
	dumpString(w, 1, m.Shader.Name)
	dumpNewline(w, 1)
	fmt.Fprintf(w, "Parameters: (count:%d) {", len(m.Parameters))
	for i := range m.Parameters {
		dumpSlot(w, 2, i, &m.Parameters[i])
	}
	dumpNewline(w, 1)
	w.WriteByte('}')
	fmt.Fprint(w, "\n}")
}

func dumpSlot(w *bufio.Writer, indent, i int, s *mattag.ParameterSlot) {
	dumpNewline(w, indent)
	fmt.Fprintf(w, "#%d: %s {", i, s.Parameter.Type())
	dumpNewline(w, indent+1)
	w.WriteString("Name: ")
	dumpString(w, indent+1, s.Data.Name1.Name)
	switch p := s.Parameter.(type) {
	case mattag.BitmapParameter:
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Scale: (%g, %g)", p.ScaleU, p.ScaleV)
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Offset: (%g, %g)", p.OffsetU, p.OffsetV)
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Filter: %s", p.FilterMode)
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Wrap: %s %s %s", p.WrapMode, p.WrapModeU, p.WrapModeV)
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Sharpen: %s", p.SharpenMode)
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Extern: %s", p.ExternMode)
		dumpNewline(w, indent+1)
		w.WriteString("Path: ")
		dumpString(w, indent+1, s.Data.BitmapPath())
		dumpNewline(w, indent+1)
		w.WriteString("DefaultPath: ")
		dumpString(w, indent+1, s.Data.Name2.Name)
	case mattag.RealParameter:
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Value: %g", p.Value)
	case mattag.IntParameter:
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Index: %d", p.ParameterIndex)
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Value: %d", p.Value)
	case mattag.BoolParameter:
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "Value: %t", p.Value)
	case mattag.ColorParameter:
		dumpNewline(w, indent+1)
		fmt.Fprintf(w, "ARGB: (%g, %g, %g, %g)", p.A, p.R, p.G, p.B)
	}
	if len(s.Data.Trailing) > 0 {
		dumpNewline(w, indent+1)
		w.WriteString("Trailing: ")
		dumpBytes(w, indent+1, s.Data.Trailing)
	}
	dumpNewline(w, indent)
	w.WriteByte('}')
}

func dumpChunk(w *bufio.Writer, ch *mattag.Chunk) {
	fmt.Fprintf(w, "%s (field1:%d) (size:%d)", mattag.SigString(ch.Magic), ch.Field1, ch.Size)
}

func dumpTag8(w *bufio.Writer, tag [8]byte) {
	for _, c := range tag {
		if 32 <= c && c <= 126 {
			w.WriteByte(c)
		} else {
			w.WriteByte('.')
		}
	}
	fmt.Fprintf(w, " (% 02X)", tag)
}

func dumpNewline(w *bufio.Writer, indent int) {
	w.WriteByte('\n')
	for i := 0; i < indent; i++ {
		w.WriteByte('\t')
	}
}

func dumpString(w *bufio.Writer, indent int, s string) {
	for _, r := range s {
		if !unicode.IsGraphic(r) {
			dumpBytes(w, indent, []byte(s))
			return
		}
	}
	fmt.Fprintf(w, "(len:%d) ", len(s))
	w.WriteString(strconv.Quote(s))
}

func dumpBytes(w *bufio.Writer, indent int, b []byte) {
	fmt.Fprintf(w, "(len:%d)", len(b))
	const width = 16
	for j := 0; j < len(b); j += width {
		dumpNewline(w, indent+1)
		w.WriteString("| ")
		for i := j; i < j+width; {
			if i < len(b) {
				s := strconv.FormatUint(uint64(b[i]), 16)
				if len(s) == 1 {
					w.WriteString("0")
				}
				w.WriteString(s)
			} else if len(b) < width {
				break
			} else {
				w.WriteString("  ")
			}
			i++
			if i%8 == 0 && i < j+width {
				w.WriteString("  ")
			} else {
				w.WriteString(" ")
			}
		}
		w.WriteString("|")
		n := len(b)
		if j+width < n {
			n = j + width
		}
		for i := j; i < n; i++ {
			if 32 <= b[i] && b[i] <= 126 {
				w.WriteRune(rune(b[i]))
			} else {
				w.WriteByte('.')
			}
		}
		w.WriteByte('|')
	}
}
