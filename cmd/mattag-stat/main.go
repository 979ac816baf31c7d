// The mattag-stat command displays stats for a material tag file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/halotools/mattag"
	"github.com/halotools/mattag/matbin"
)

const usage = `usage: mattag-stat [INPUT] [OUTPUT]

Reads a .material tag file from INPUT, and writes to OUTPUT statistics for the
file as JSON.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then stdin
is used. If OUTPUT is "-" or unspecified, then stdout is used. Warnings and
errors are written to stderr.
`

type Stats struct {
	// Shader is the material's shader reference.
	Shader string

	// ShaderName is the last segment of the shader reference.
	ShaderName string

	BlendMode    mattag.BlendMode
	ShadowPolicy mattag.ShadowPolicy

	// Number of string table entries.
	StringCount int

	// Total bytes across the opaque blocks.
	BlockBytes int

	// Number of parameter slots overall.
	ParameterCount int

	// Number of parameters per type.
	TypeCount map[string]int

	// The decoded parameter slots.
	Parameters []mattag.ParameterSlot
}

func fill(tag *mattag.Tag) Stats {
	s := Stats{
		Shader:       tag.Material.Shader.Name,
		ShaderName:   tag.Material.ShaderName(),
		BlendMode:    tag.Material.BlendMode,
		ShadowPolicy: tag.Material.ShadowPolicy,
		StringCount:  len(tag.Strings.Strings),
		TypeCount:    map[string]int{},
		Parameters:   tag.Material.Parameters,
	}
	for _, b := range tag.Blocks {
		s.BlockBytes += len(b.Data)
	}
	s.ParameterCount = len(tag.Material.Parameters)
	for _, slot := range tag.Material.Parameters {
		s.TypeCount[slot.Parameter.Type().String()]++
	}
	return s
}

func main() {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout

	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	flag.Parse()
	args := flag.Args()
	if len(args) >= 1 && args[0] != "-" {
		in, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("open input: %w", err))
			return
		}
		input = in
		defer in.Close()
	}
	if len(args) >= 2 && args[1] != "-" {
		out, err := os.Create(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("create output: %w", err))
			return
		}
		defer out.Close()
		defer func() {
			err := out.Sync()
			if err != nil {
				fmt.Fprintln(os.Stderr, fmt.Errorf("sync output: %w", err))
				return
			}
		}()
		output = out
	}

	tag, warn, err := matbin.Decoder{}.Decode(input)
	if warn != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("decode warning: %w", warn))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("decode error: %w", err))
		return
	}

	je := json.NewEncoder(output)
	je.SetEscapeHTML(false)
	je.SetIndent("", "\t")
	if err := je.Encode(fill(tag)); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("write error: %w", err))
	}
}
