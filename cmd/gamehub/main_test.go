package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		flagDifficulty, flagSnippetOut, flagSnippetCopy = "", "", false
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"shooter", "snake", "slots", "tictactoe", "runner"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestSnippetCommand(t *testing.T) {
	out, err := execute(t, "snippet")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "unity") || !strings.Contains(out, "Java (Swing)") {
		t.Errorf("unexpected listing:\n%s", out)
	}

	out, err = execute(t, "snippet", "python")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "import random") {
		t.Errorf("expected the python source:\n%s", out)
	}

	dir := t.TempDir()
	if _, err := execute(t, "snippet", "unity", "--out", dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "PlayerController.cs")); err != nil {
		t.Errorf("snippet not saved: %v", err)
	}
}

func TestUnknownSnippet(t *testing.T) {
	if _, err := execute(t, "snippet", "cobol"); err == nil {
		t.Error("expected an error for an unknown snippet")
	}
}

func TestBadDifficulty(t *testing.T) {
	_, err := execute(t, "list", "--difficulty", "insane")
	if err == nil || !strings.Contains(err.Error(), "unknown difficulty") {
		t.Errorf("err = %v, want unknown difficulty", err)
	}
}

func TestPlayUnknownGame(t *testing.T) {
	_, err := execute(t, "play", "pinball")
	if err == nil || !strings.Contains(err.Error(), "gamehub list") {
		t.Errorf("err = %v, want a hint to run list", err)
	}
}
