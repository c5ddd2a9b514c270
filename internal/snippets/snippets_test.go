package snippets

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCatalogBodies(t *testing.T) {
	for _, s := range List() {
		body, err := s.Body()
		if err != nil {
			t.Errorf("%s: %v", s.Name, err)
			continue
		}
		if strings.TrimSpace(body) == "" {
			t.Errorf("%s: empty body", s.Name)
		}
	}
}

func TestLookup(t *testing.T) {
	s, err := Lookup("java")
	if err != nil {
		t.Fatal(err)
	}
	if s.File != "Snake.java" {
		t.Errorf("File = %q", s.File)
	}

	if _, err := Lookup("cobol"); !errors.Is(err, ErrUnknownSnippet) {
		t.Errorf("err = %v, want ErrUnknownSnippet", err)
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")
	s, _ := Lookup("python")

	path, err := Save(s, dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "hangman.py" {
		t.Errorf("path = %q", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := s.Body()
	if string(got) != want {
		t.Error("saved file does not match the snippet")
	}
}

func TestCopyWritesOSC52(t *testing.T) {
	s, _ := Lookup("unity")
	body, _ := s.Body()

	var buf bytes.Buffer
	if err := Copy(&buf, s, "xterm-256color"); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]52;") {
		t.Errorf("missing OSC 52 prefix: %q", out[:min(len(out), 10)])
	}
	if !strings.HasSuffix(out, "\a") {
		t.Error("sequence should end with BEL")
	}
	if !strings.Contains(out, base64.StdEncoding.EncodeToString([]byte(body))) {
		t.Error("sequence does not carry the base64 snippet")
	}
}

func TestCopyWrapsForTmux(t *testing.T) {
	s, _ := Lookup("python")
	var buf bytes.Buffer
	if err := Copy(&buf, s, "tmux-256color"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "\x1bPtmux;") {
		t.Errorf("expected tmux passthrough, got %q", buf.String()[:min(buf.Len(), 12)])
	}
}
