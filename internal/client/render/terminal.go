package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const DefaultWidth = 72

// Width returns the terminal width of f, or DefaultWidth when f is not a
// terminal.
func Width(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

type styles struct {
	box     lipgloss.Style
	heading lipgloss.Style
	index   lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
	notice  lipgloss.Style
	status  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#16858E")).
			Padding(0, 1),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		index:   r.NewStyle().Foreground(lipgloss.Color("#1D9EA3")),
		title:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#2C4A54")),
		notice:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4D03F")),
		status:  r.NewStyle().Italic(true).Foreground(lipgloss.Color("#20B9B4")),
	}
}

// Terminal draws views and notices to a writer. It is safe for concurrent
// use by the subscription and command goroutines.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	width  int
	styles styles
}

func NewTerminal(w io.Writer, width int) *Terminal {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Terminal{w: w, width: width, styles: newStyles(lipgloss.NewRenderer(w))}
}

func (t *Terminal) write(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, s)
}

// Format returns the full list block for v.
func (t *Terminal) Format(v View) string {
	s := t.styles

	var b strings.Builder
	b.WriteString(s.heading.Render(fmt.Sprintf("Pending letters (%d)", len(v.Items))))

	if v.Empty {
		b.WriteString("\n")
		b.WriteString(s.muted.Render(EmptyMessage))
	}
	for _, it := range v.Items {
		b.WriteString("\n")
		b.WriteString(s.index.Render(fmt.Sprintf("%2d.", it.Index)))
		b.WriteString(" ")
		b.WriteString(s.title.Render(it.Title))
		b.WriteString("\n    ")
		b.WriteString(s.muted.Render("to " + it.Recipient + " on " + it.DeliveryAt))
	}

	return s.box.Width(t.width - 2).Render(b.String())
}

// Render redraws the whole list.
func (t *Terminal) Render(v View) {
	t.write(t.Format(v))
}

// Notice prints a titled message.
func (t *Terminal) Notice(title, body string) {
	t.write(t.styles.notice.Render(title) + "\n" + body)
}

func (t *Terminal) Status(s string) {
	t.write(t.styles.status.Render("[" + s + "]"))
}

// Println writes plain text.
func (t *Terminal) Println(s string) {
	t.write(s)
}
