// Package snippets holds the "Pro Projects" code samples shipped with the
// hub and the two ways of taking them home: saving to a file and copying
// to the terminal clipboard.
package snippets

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

//go:embed files/*
var files embed.FS

// ErrUnknownSnippet is returned for a name not in the catalog.
var ErrUnknownSnippet = errors.New("unknown snippet")

// Snippet is one downloadable sample.
type Snippet struct {
	Name        string // lookup key: unity, java, python
	Title       string
	Description string
	File        string // file name inside the embedded set and on download
}

var catalog = []Snippet{
	{
		Name:        "unity",
		Title:       "Unity (C#)",
		Description: "First-person PlayerController for a CharacterController, Unity 2021+.",
		File:        "PlayerController.cs",
	},
	{
		Name:        "java",
		Title:       "Java (Swing)",
		Description: "Wrap-around Snake in a single Swing panel. javac Snake.java && java Snake",
		File:        "Snake.java",
	},
	{
		Name:        "python",
		Title:       "Python",
		Description: "Console hangman with the standard library only. python3 hangman.py",
		File:        "hangman.py",
	},
}

// List returns the catalog in display order.
func List() []Snippet {
	out := make([]Snippet, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a snippet by name.
func Lookup(name string) (Snippet, error) {
	for _, s := range catalog {
		if s.Name == name {
			return s, nil
		}
	}
	return Snippet{}, fmt.Errorf("%w: %q", ErrUnknownSnippet, name)
}

// Body returns the source text of s.
func (s Snippet) Body() (string, error) {
	data, err := files.ReadFile("files/" + s.File)
	if err != nil {
		return "", fmt.Errorf("read snippet %s: %w", s.Name, err)
	}
	return string(data), nil
}

// Save writes s into dir under its file name and returns the path.
func Save(s Snippet, dir string) (string, error) {
	body, err := s.Body()
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, s.File)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Copy emits an OSC 52 sequence that asks the terminal on w to place the
// snippet on the system clipboard. term is the TERM of that terminal; under
// tmux or screen the sequence is wrapped so it reaches the outer terminal.
// The sequence goes out in one Write.
func Copy(w io.Writer, s Snippet, term string) error {
	body, err := s.Body()
	if err != nil {
		return err
	}
	seq := osc52.New(body)
	switch {
	case strings.HasPrefix(term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	if _, err := io.WriteString(w, seq.String()); err != nil {
		return fmt.Errorf("copy snippet %s: %w", s.Name, err)
	}
	return nil
}
