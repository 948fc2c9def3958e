package tui

import (
	"fmt"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-demandwizard/pkg/submission"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// plainText strips any markup a server may have put into a message before it
// reaches the terminal. The policy escapes entities, so they are decoded again.
func plainText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(raw)))
}

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	styleFailure = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
	styleDetail  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Notifier prints submission notifications to a writer.
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewNotifier writes notifications to out.
func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

// Notify implements submission.Notifier.
func (n *Notifier) Notify(note submission.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var style lipgloss.Style
	marker := "!"
	switch note.Kind {
	case submission.KindSuccess:
		style, marker = styleSuccess, "✔"
	case submission.KindFailure:
		style = styleFailure
	default:
		style, marker = styleError, "✖"
	}

	line := style.Render(marker + " " + plainText(note.Title))
	if detail := plainText(note.Detail); detail != "" {
		line += " " + styleDetail.Render(detail)
	}
	_, _ = fmt.Fprintln(n.out, line)
}

// Navigator records where the wizard was sent after a successful submission
// and prints it.
type Navigator struct {
	mu   sync.Mutex
	out  io.Writer
	last string
}

// NewNavigator writes the destination to out.
func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

// Navigate implements submission.Navigator.
func (n *Navigator) Navigate(destination string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last = destination
	if n.out != nil {
		_, _ = fmt.Fprintf(n.out, "→ %s\n", destination)
	}
}

// Destination returns the last destination, or "".
func (n *Navigator) Destination() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last
}

var (
	_ submission.Notifier  = (*Notifier)(nil)
	_ submission.Navigator = (*Navigator)(nil)
)
