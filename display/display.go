package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"hex/game"
)

// Handler shows game progress to whoever is watching.
type Handler interface {
	Message(msg string)
	Error(msg string)
	Board(b *game.Board)
	Result(msg string)
}

// Console writes to a terminal, with colors when the writer is one.
type Console struct {
	out    io.Writer
	term   *termenv.Output
	blue   termenv.Color
	red    termenv.Color
	banner lipgloss.Style
}

func NewConsole(w io.Writer) *Console {
	profile := termenv.Ascii
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		profile = termenv.EnvColorProfile()
	}
	return newConsole(w, profile)
}

func newConsole(w io.Writer, profile termenv.Profile) *Console {
	term := termenv.NewOutput(w, termenv.WithProfile(profile))
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(profile)

	return &Console{
		out:  w,
		term: term,
		blue: term.Color("12"),
		red:  term.Color("9"),
		banner: renderer.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Bold(true).
			Padding(0, 1),
	}
}

func (c *Console) Message(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out, c.term.String("error: "+msg).Foreground(c.red).String())
}

// Board prints the board with row and column labels. Blue stones are drawn in
// blue and red stones in red.
func (c *Console) Board(b *game.Board) {
	var sb strings.Builder
	n := b.Size()
	for x := 0; x < n; x++ {
		sb.WriteString(strings.Repeat(" ", x))
		fmt.Fprintf(&sb, "%2d ", x)
		for y := x; y < n+x; y++ {
			switch b.MustCell(game.Position{X: x, Y: y}) {
			case game.Blue:
				sb.WriteString(c.term.String("B").Foreground(c.blue).Bold().String())
			case game.Red:
				sb.WriteString(c.term.String("R").Foreground(c.red).Bold().String())
			default:
				sb.WriteString(".")
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(c.out, sb.String())
}

func (c *Console) Result(msg string) {
	fmt.Fprintln(c.out, c.banner.Render(msg))
}

// Quiet drops everything. Experiments use it.
type Quiet struct{}

func (Quiet) Message(string)    {}
func (Quiet) Error(string)      {}
func (Quiet) Board(*game.Board) {}
func (Quiet) Result(string)     {}
