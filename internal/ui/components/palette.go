package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chorely/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

// Hints must stay in sync with the switch in app/model.go executePalette.
var Hints = []string{
	"add <chore>",
	"remove <chore>",
	"log <minutes>",
	"buy <item>",
	"theme <id>",
	"bg <id>",
	"rebirth",
	"week <yyyy-mm-dd>",
}

// Palette is a command-palette overlay backed by bubbles/textinput.
type Palette struct {
	input   textinput.Model
	styles  theme.Styles
	visible bool
	width   int
}

func NewPalette(styles theme.Styles) Palette {
	ti := textinput.New()
	ti.Placeholder = "type a command…"
	ti.CharLimit = 128
	return Palette{input: ti, styles: styles}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette prefilled with value and returns the focus command.
func (p *Palette) Open(value string) tea.Cmd {
	p.visible = true
	p.input.SetValue(value)
	p.input.CursorEnd()
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p *Palette) SetStyles(s theme.Styles) { p.styles = s }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// Matching returns up to five hints whose command word starts with the
// typed prefix.
func Matching(typed string) []string {
	word := strings.ToLower(strings.TrimSpace(typed))
	if i := strings.IndexByte(word, ' '); i >= 0 {
		word = word[:i]
	}
	var out []string
	for _, h := range Hints {
		if word == "" || strings.HasPrefix(h, word) {
			out = append(out, h)
			if len(out) == 5 {
				break
			}
		}
	}
	return out
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render("Command") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if hints := Matching(p.input.Value()); len(hints) > 0 {
		sb.WriteString("\n")
		for _, h := range hints {
			sb.WriteString(p.styles.Muted.Render("  "+h) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.styles.Palette.Warm).
		Background(p.styles.Palette.Mantle).
		Foreground(p.styles.Palette.Text).
		Padding(0, 1)
	return box.Width(w - 2).Render(sb.String())
}
