package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gamehub/internal/core"
)

// palette maps core colors to terminal colors (ANSI 16 plus a few 256).
var palette = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
	core.ColorIndigo:       "63",
}

// Theme holds the lipgloss styles for one output. SSH sessions get their
// own renderer so color detection follows the client's terminal.
type Theme struct {
	cells map[core.Color]lipgloss.Style

	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	TabBar    lipgloss.Style
	Status    lipgloss.Style
	Title     lipgloss.Style
	Selected  lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style
}

// NewTheme builds the styles on r. A nil renderer uses the default one.
func NewTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	t := Theme{cells: make(map[core.Color]lipgloss.Style, len(palette)+1)}
	t.cells[core.ColorDefault] = r.NewStyle()
	for c, code := range palette {
		t.cells[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}

	t.Tab = r.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("250"))
	t.ActiveTab = t.Tab.
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.TabBar = r.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("240"))
	t.Status = r.NewStyle().Foreground(lipgloss.Color("245"))
	t.Title = r.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	t.Selected = r.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	t.Dim = r.NewStyle().Foreground(lipgloss.Color("240"))
	t.Error = r.NewStyle().Foreground(lipgloss.Color("9"))
	return t
}

// cell returns the style for c, falling back to the default.
func (t Theme) cell(c core.Color) lipgloss.Style {
	if s, ok := t.cells[c]; ok {
		return s
	}
	return t.cells[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string. Runs of cells
// with the same color share one escape sequence.
func (t Theme) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(t.cell(color).Render(run.String()))
		}
	}
	return sb.String()
}
