// The mattag-bitmapdb command walks a tag tree and builds the bitmap
// database consumed by material importers: one entry per .bitmap file,
// holding its tag-relative path and the format byte near the end of the
// tag.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Luzifer/rconfig/v2"
	"github.com/sirupsen/logrus"

	"github.com/halotools/mattag/tagdb"
)

var (
	cfg = struct {
		LogLevel       string `flag:"log-level" default:"info" description:"Log level (debug, info, warn, error, fatal)"`
		Output         string `flag:"output,o" default:"bitmap.db" description:"File to write the database to"`
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

// formatByte reads the bitmap format byte stored FormatTailOffset bytes
// before the end of a .bitmap tag.
func formatByte(path string) (byte, error) {
	f, err := os.Open(path) //#nosec:G304 // Intended to read arbitrary files
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if info.Size() < tagdb.FormatTailOffset {
		return 0, fmt.Errorf("file too small (%d bytes)", info.Size())
	}

	var b [1]byte
	if _, err = f.ReadAt(b[:], info.Size()-tagdb.FormatTailOffset); err != nil {
		return 0, err
	}
	return b[0], nil
}

func main() {
	var err error
	if err = initApp(); err != nil {
		logrus.WithError(err).Fatal("initializing app")
	}

	if cfg.VersionAndExit {
		fmt.Printf("mattag-bitmapdb %s\n", version) //nolint:forbidigo
		os.Exit(0)
	}

	if len(rconfig.Args()) < 2 { //nolint:mnd
		logrus.Fatal("no tag directory given")
	}
	root := rconfig.Args()[1]

	var entries []tagdb.Entry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".bitmap") {
			return nil
		}

		format, err := formatByte(path)
		if err != nil {
			logrus.WithField("path", path).WithError(err).Warn("skipping bitmap")
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		entries = append(entries, tagdb.Entry{Path: rel, Format: format})
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("walking tag directory")
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		logrus.WithError(err).Fatal("creating database file")
	}
	defer out.Close() //nolint:errcheck // will be closed by program exit

	if err = tagdb.Write(out, entries); err != nil {
		logrus.WithError(err).Fatal("writing database")
	}

	logrus.WithField("no_entries", len(entries)).Info("database written")
}
