package store

import (
	"os"
	"strings"
	"testing"
)

func TestWriteAndRead(t *testing.T) {
	s := NewJSONStore(t.TempDir())

	if err := s.Write("league/7/details.json", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !s.Exists("league/7/details.json") {
		t.Error("written file should exist")
	}

	b, err := s.Read("league/7/details.json")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if !strings.Contains(string(b), `"a"`) {
		t.Errorf("read back %q", b)
	}
}

func TestWrite_PrettyIndentsValidJSON(t *testing.T) {
	s := NewJSONStore(t.TempDir())

	if err := s.Write("x.json", []byte(`{"a":{"b":1}}`)); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	b, _ := s.Read("x.json")
	if !strings.Contains(string(b), "\n  ") {
		t.Error("pretty mode should indent the stored payload")
	}
}

func TestWrite_KeepsInvalidBodyVerbatim(t *testing.T) {
	// Archiving must never corrupt what the upstream actually sent.
	s := NewJSONStore(t.TempDir())

	if err := s.Write("x.json", []byte("not json")); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	b, _ := s.Read("x.json")
	if string(b) != "not json" {
		t.Errorf("stored %q, want the body verbatim", b)
	}
}

func TestRead_MissingFile(t *testing.T) {
	s := NewJSONStore(t.TempDir())

	if _, err := s.Read("nope.json"); !os.IsNotExist(err) {
		t.Errorf("err = %v, want a not-exist error", err)
	}
}
