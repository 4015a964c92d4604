package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/graphtrace/trace"
)

// Palette
var (
	ColorAccent  = lipgloss.Color("#2CD7C7")
	ColorPrimary = lipgloss.Color("#20B9B4")
	ColorMuted   = lipgloss.Color("#2C4A54")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
)

// consoleStyles holds the styles of one Console, bound to its renderer so
// color output follows the destination writer rather than os.Stdout.
type consoleStyles struct {
	Tag       lipgloss.Style
	Title     lipgloss.Style
	Highlight lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
}

func newConsoleStyles(r *lipgloss.Renderer) consoleStyles {
	return consoleStyles{
		Tag:       r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Title:     r.NewStyle().Bold(true).Foreground(ColorAccent),
		Highlight: r.NewStyle().Bold(true).Foreground(ColorAccent),
		Muted:     r.NewStyle().Foreground(ColorMuted),
		Success:   r.NewStyle().Foreground(ColorAccent),
		Error:     r.NewStyle().Foreground(ColorError),
	}
}

// Console renders documents as styled text, one line block per step.
type Console struct {
	w      io.Writer
	styles consoleStyles

	// Verbose adds visited, path and candidate listings to every step.
	Verbose bool
}

// NewConsole returns a Console writing to w. Colors are enabled only when
// w is a terminal.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, styles: newConsoleStyles(lipgloss.NewRenderer(w))}
}

// Info prints an "[Info]" tagged line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintf(c.w, "%s %s\n", c.styles.Tag.Render("[Info]"), fmt.Sprintf(format, args...))
}

// Error prints an "[Error]" tagged line.
func (c *Console) Error(format string, args ...any) {
	fmt.Fprintf(c.w, "%s %s\n", c.styles.Error.Render("[Error]"), fmt.Sprintf(format, args...))
}

// Highlight styles a node or city name.
func (c *Console) Highlight(s string) string { return c.styles.Highlight.Render(s) }

// Write renders every step of doc.
func (c *Console) Write(doc *Document) error {
	if doc == nil || len(doc.Steps) == 0 {
		return ErrEmptyTrace
	}

	header := fmt.Sprintf("[%s] %d steps from %s", doc.Algorithm, len(doc.Steps), doc.Name(doc.Start))
	if _, err := fmt.Fprintln(c.w, c.styles.Title.Render(header)); err != nil {
		return fmt.Errorf("export: console: %w", err)
	}

	for i, s := range doc.Steps {
		if _, err := fmt.Fprintln(c.w, c.renderStep(doc, i, s)); err != nil {
			return fmt.Errorf("export: console: %w", err)
		}
	}

	return nil
}

func (c *Console) renderStep(doc *Document, i int, s trace.Step) string {
	var b strings.Builder

	marker := c.styles.Muted.Render(fmt.Sprintf("%3d", i))
	if s.Terminal() {
		fmt.Fprintf(&b, "%s %s", marker, c.styles.Success.Render(s.Explanation))
	} else {
		cur, _ := s.Current()
		fmt.Fprintf(&b, "%s %s %s", marker, c.Highlight(doc.Name(cur)), s.Explanation)
	}

	if !c.Verbose {
		return b.String()
	}

	fmt.Fprintf(&b, "\n    visited:    %s", c.nodeList(doc, s.VisitedNodes))
	fmt.Fprintf(&b, "\n    path:       %s", c.edgeList(doc, s.EdgesInPath))
	fmt.Fprintf(&b, "\n    candidates: %s", c.edgeList(doc, s.CandidateEdges))

	return b.String()
}

func (c *Console) nodeList(doc *Document, nodes []int) string {
	if len(nodes) == 0 {
		return c.styles.Muted.Render("-")
	}
	names := make([]string, len(nodes))
	for i, u := range nodes {
		names[i] = doc.Name(u)
	}

	return strings.Join(names, ", ")
}

func (c *Console) edgeList(doc *Document, edges []trace.EdgePair) string {
	if len(edges) == 0 {
		return c.styles.Muted.Render("-")
	}
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = doc.Name(e.From()) + "→" + doc.Name(e.To())
	}

	return strings.Join(parts, ", ")
}
