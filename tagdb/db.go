// Package tagdb reads and writes the bitmap database: a flat index
// mapping bitmap tag paths to their format byte, built by scanning a tag
// tree once so that material importers do not have to reopen every
// .bitmap file.
package tagdb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/anaminus/parse"
	"github.com/bkaradzic/go-lz4"
	"golang.org/x/crypto/blake2b"
)

// dbSig is the database file magic.
const dbSig = "btdb"

// FormatTailOffset is the distance of the format byte from the end of a
// .bitmap tag.
const FormatTailOffset = 123

// Entry associates a bitmap tag path with its format byte.
type Entry struct {
	// Path is the tag-relative path of the .bitmap file.
	Path string

	// Format is the bitmap format byte read from the tag's tail.
	Format byte
}

var (
	errBadSig  = errors.New("not a bitmap database")
	errNulPath = errors.New("path contains a NUL byte")
)

// Write serializes entries to w. The entry payload is lz4-compressed
// when that makes it smaller; a compressed length of zero marks a stored
// payload.
func Write(w io.Writer, entries []Entry) error {
	var payload []byte
	for _, e := range entries {
		for i := 0; i < len(e.Path); i++ {
			if e.Path[i] == 0 {
				return fmt.Errorf("entry %q: %w", e.Path, errNulPath)
			}
		}
		payload = append(payload, e.Path...)
		payload = append(payload, 0, e.Format)
	}

	fw := parse.NewBinaryWriter(w)
	if fw.Bytes([]byte(dbSig)) {
		_, err := fw.End()
		return err
	}
	if fw.Number(uint32(len(entries))) {
		_, err := fw.End()
		return err
	}

	compressed, err := lz4.Encode(nil, payload)
	if fw.Add(0, err) {
		_, err := fw.End()
		return err
	}
	// lz4 prepends the uncompressed length; it is carried separately
	// here, so strip it.
	if len(compressed) >= 4 {
		if binary.LittleEndian.Uint32(compressed[:4]) != uint32(len(payload)) {
			panic("lz4 uncompressed length does not match payload length")
		}
		compressed = compressed[4:]
	}

	if len(compressed) < len(payload) {
		fw.Number(uint32(len(compressed)))
		fw.Number(uint32(len(payload)))
		fw.Bytes(compressed)
	} else {
		fw.Number(uint32(0))
		fw.Number(uint32(len(payload)))
		fw.Bytes(payload)
	}
	_, err = fw.End()
	return err
}

// Read deserializes a database from r.
func Read(r io.Reader) ([]Entry, error) {
	fr := parse.NewBinaryReader(r)

	sig := make([]byte, len(dbSig))
	if fr.Bytes(sig) {
		_, err := fr.End()
		return nil, err
	}
	if string(sig) != dbSig {
		return nil, errBadSig
	}

	var count uint32
	var compressedLength uint32
	var payloadLength uint32
	if fr.Number(&count) || fr.Number(&compressedLength) || fr.Number(&payloadLength) {
		_, err := fr.End()
		return nil, err
	}

	payload := make([]byte, payloadLength)
	if compressedLength == 0 {
		if fr.Bytes(payload) {
			_, err := fr.End()
			return nil, err
		}
	} else {
		compressed := make([]byte, compressedLength+4)
		binary.LittleEndian.PutUint32(compressed, payloadLength)
		if fr.Bytes(compressed[4:]) {
			_, err := fr.End()
			return nil, err
		}
		if _, err := lz4.Decode(payload, compressed); err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
	}

	if _, err := fr.End(); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, count)
	for i := uint32(0); i < count; i++ {
		nul := -1
		for j, b := range payload {
			if b == 0 {
				nul = j
				break
			}
		}
		if nul < 0 || nul+1 >= len(payload) {
			return nil, fmt.Errorf("entry %d: truncated payload", i)
		}
		entries = append(entries, Entry{
			Path:   string(payload[:nul]),
			Format: payload[nul+1],
		})
		payload = payload[nul+2:]
	}
	if len(payload) != 0 {
		return nil, fmt.Errorf("%d bytes left over after %d entries", len(payload), count)
	}
	return entries, nil
}

// Fingerprint returns a 16-byte content hash, used to spot identical
// files across a tag tree.
func Fingerprint(b []byte) [16]byte {
	sum := blake2b.Sum256(b)
	var hash [16]byte
	copy(hash[:], sum[:])
	return hash
}
