package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamehub/internal/snippets"
)

var (
	flagSnippetOut  string
	flagSnippetCopy bool
)

var snippetCmd = &cobra.Command{
	Use:   "snippet [name]",
	Short: "List, print, save or copy the Pro Projects snippets",
	Long: `Without a name, lists the snippets. With a name, prints the
snippet to stdout, saves it into --out, or copies it to the terminal
clipboard with --copy (OSC 52).

Examples:
  gamehub snippet
  gamehub snippet python
  gamehub snippet unity --out ./downloads
  gamehub snippet java --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSnippet,
}

func init() {
	snippetCmd.Flags().StringVar(&flagSnippetOut, "out", "", "Directory to save the snippet into")
	snippetCmd.Flags().BoolVar(&flagSnippetCopy, "copy", false, "Copy to the terminal clipboard")
}

func runSnippet(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, s := range snippets.List() {
			fmt.Fprintf(out, "  %-7s %-14s %s\n", s.Name, s.Title, s.Description)
		}
		return nil
	}

	s, err := snippets.Lookup(args[0])
	if err != nil {
		return err
	}

	switch {
	case flagSnippetOut != "":
		path, err := snippets.Save(s, flagSnippetOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved %s\n", path)
	case flagSnippetCopy:
		if err := snippets.Copy(os.Stdout, s, outputTerm()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Copied %s to the clipboard\n", s.File)
	default:
		body, err := s.Body()
		if err != nil {
			return err
		}
		fmt.Fprint(out, body)
	}
	return nil
}
