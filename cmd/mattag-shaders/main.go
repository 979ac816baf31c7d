// The mattag-shaders command walks a tag tree and tallies how often each
// material shader is referenced.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Luzifer/go_helpers/v2/str"
	"github.com/Luzifer/rconfig/v2"
	"github.com/sirupsen/logrus"

	"github.com/halotools/mattag/matbin"
	"github.com/halotools/mattag/tagdb"
)

var (
	cfg = struct {
		LogLevel       string `flag:"log-level" default:"info" description:"Log level (debug, info, warn, error, fatal)"`
		Output         string `flag:"output,o" default:"-" description:"File to write the shader list to (- for stdout)"`
		VersionAndExit bool   `flag:"version" default:"false" description:"Prints current version and exits"`
	}{}

	version = "dev"
)

func initApp() (err error) {
	if err = rconfig.ParseAndValidate(&cfg); err != nil {
		return fmt.Errorf("parsing CLI options: %w", err)
	}

	l, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log-level: %w", err)
	}
	logrus.SetLevel(l)

	return nil
}

func main() {
	var err error
	if err = initApp(); err != nil {
		logrus.WithError(err).Fatal("initializing app")
	}

	if cfg.VersionAndExit {
		fmt.Printf("mattag-shaders %s\n", version) //nolint:forbidigo
		os.Exit(0)
	}

	var (
		root string
		only []string
	)

	switch len(rconfig.Args()) {
	case 1:
		logrus.Fatal("no tag directory given")

	case 2: //nolint:mnd
		root = rconfig.Args()[1]

	default:
		root = rconfig.Args()[1]
		only = rconfig.Args()[2:]
	}

	counts := map[string]int{}
	seen := map[[16]byte]bool{}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".material") {
			return nil
		}

		raw, err := os.ReadFile(path) //#nosec:G304 // Intended to read arbitrary files
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		hash := tagdb.Fingerprint(raw)
		if seen[hash] {
			logrus.WithField("path", path).Debug("skipping duplicate file")
			return nil
		}
		seen[hash] = true

		tag, warn, err := matbin.Decoder{}.DecodeBytes(raw)
		if warn != nil {
			logrus.WithField("path", path).WithError(warn).Debug("decode warning")
		}
		if err != nil {
			// A malformed tag should not kill the whole walk.
			logrus.WithField("path", path).WithError(err).Warn("skipping undecodable tag")
			return nil
		}

		name := tag.Material.ShaderName()
		if len(only) > 0 && !str.StringInSlice(name, only) {
			return nil
		}
		counts[name]++
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("walking tag directory")
	}

	logrus.WithField("no_shaders", len(counts)).Debug("scan complete")

	out := os.Stdout
	if cfg.Output != "-" {
		if out, err = os.Create(cfg.Output); err != nil {
			logrus.WithError(err).Fatal("creating output file")
		}
		defer out.Close() //nolint:errcheck // will be closed by program exit
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		fmt.Fprintf(out, "%-50s %d\n", name, counts[name])
	}
}
