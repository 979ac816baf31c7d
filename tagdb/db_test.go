package tagdb

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	entries := []Entry{
		{Path: "levels\\dlc\\bitmaps\\brick_diff.bitmap", Format: 3},
		{Path: "levels\\dlc\\bitmaps\\brick_norm.bitmap", Format: 17},
		{Path: "objects\\weap\\scope.bitmap", Format: 0},
	}

	var b bytes.Buffer
	if err := Write(&b, entries); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Read(&b)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Fatalf("entries = %+v, want %+v", got, entries)
	}
}

func TestRoundTripCompressible(t *testing.T) {
	// Long repetitive paths take the compressed branch.
	var entries []Entry
	for i := 0; i < 64; i++ {
		entries = append(entries, Entry{
			Path:   strings.Repeat("levels\\shared\\", 8) + "a.bitmap",
			Format: byte(i),
		})
	}

	var b bytes.Buffer
	if err := Write(&b, entries); err != nil {
		t.Fatalf("write: %v", err)
	}
	payload := 0
	for _, e := range entries {
		payload += len(e.Path) + 2
	}
	if b.Len() >= payload {
		t.Fatalf("db is %d bytes for a %d byte payload; not compressed", b.Len(), payload)
	}
	got, err := Read(&b)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Fatal("round trip lost entries")
	}
}

func TestRoundTripEmpty(t *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Read(&b)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("entries = %+v, want none", got)
	}
}

func TestWriteRejectsNulPath(t *testing.T) {
	var b bytes.Buffer
	if err := Write(&b, []Entry{{Path: "bad\x00path", Format: 1}}); err == nil {
		t.Fatal("NUL in path accepted")
	}
}

func TestReadRejectsBadSig(t *testing.T) {
	if _, err := Read(bytes.NewReader([]byte("nope"))); err == nil {
		t.Fatal("bad magic accepted")
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("same bytes"))
	b := Fingerprint([]byte("same bytes"))
	c := Fingerprint([]byte("other bytes"))
	if a != b {
		t.Fatal("fingerprint is not deterministic")
	}
	if a == c {
		t.Fatal("different content produced the same fingerprint")
	}
}
