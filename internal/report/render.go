package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/five82/saslstat/internal/freq"
)

const timeLayout = "2006-01-02 15:04:05"

// Renderer writes a Summary to an output stream.
type Renderer interface {
	Render(s Summary) error
}

// ---------------------------------------------------------------------------
// Text Renderer
// ---------------------------------------------------------------------------

// TextRenderer prints the human-readable report. Colors are dropped when w is
// not a terminal or when color is disabled.
type TextRenderer struct {
	w       io.Writer
	styles  Styles
	printer *message.Printer
}

// NewTextRenderer returns a TextRenderer writing to w with DefaultTheme.
func NewTextRenderer(w io.Writer, color bool) *TextRenderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &TextRenderer{
		w:       w,
		styles:  DefaultTheme.Styles(r),
		printer: message.NewPrinter(language.English),
	}
}

// Render writes the report for s.
func (r *TextRenderer) Render(s Summary) error {
	_, err := io.WriteString(r.w, r.Format(s))
	return err
}

// Format returns the report for s as a string.
func (r *TextRenderer) Format(s Summary) string {
	st := r.styles
	var b strings.Builder

	r.countLine(&b, "Total Failed Authentication Attempts:", s.TotalAttempts)
	r.countLine(&b, "Unique IP Addresses:", s.UniqueIPs)
	r.countLine(&b, "Unique Usernames:", s.UniqueUsernames)
	if s.Missing.Any() {
		b.WriteString(st.Muted.Render(fmt.Sprintf("Lines without IP/username/timestamp: %d/%d/%d",
			s.Missing.IPs, s.Missing.Usernames, s.Missing.Timestamps)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(st.Heading.Render("Time Range:") + "\n")
	if s.Range != nil {
		b.WriteString(st.Value.Render(fmt.Sprintf("%s to %s",
			s.Range.Earliest.Format(timeLayout), s.Range.Latest.Format(timeLayout))))
	} else {
		b.WriteString(st.Muted.Render("no data"))
	}
	b.WriteString("\n\n")

	b.WriteString(st.Heading.Render("Time Window:") + "\n")
	if s.Range != nil {
		b.WriteString(st.Value.Render("(" + s.Range.Window.String() + ")"))
	} else {
		b.WriteString(st.Muted.Render("no data"))
	}
	b.WriteString("\n\n")

	r.table(&b, "Top Offending IPs:", s.TopIPs, st.IP)
	b.WriteString("\n")
	r.table(&b, "Top Used Usernames:", s.TopUsernames, st.Username)

	return b.String()
}

func (r *TextRenderer) countLine(b *strings.Builder, label string, n int) {
	fmt.Fprintf(b, "%s %s\n", r.styles.Label.Render(label), r.styles.Count.Render(r.printer.Sprintf("%d", n)))
}

func (r *TextRenderer) table(b *strings.Builder, title string, entries []freq.Entry, keyStyle lipgloss.Style) {
	b.WriteString(r.styles.Heading.Render(title) + "\n")
	if len(entries) == 0 {
		b.WriteString(r.styles.Muted.Render("none") + "\n")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(b, "%s: %s attempts\n", keyStyle.Render(e.Key), r.printer.Sprintf("%d", e.Count))
	}
}

// ---------------------------------------------------------------------------
// JSON Renderer
// ---------------------------------------------------------------------------

// JSONRenderer prints the Summary as one indented JSON document.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONRenderer{enc: enc}
}

// Render encodes s.
func (r *JSONRenderer) Render(s Summary) error {
	if s.TopIPs == nil {
		s.TopIPs = []freq.Entry{}
	}
	if s.TopUsernames == nil {
		s.TopUsernames = []freq.Entry{}
	}
	if err := r.enc.Encode(s); err != nil {
		return fmt.Errorf("json report: %w", err)
	}
	return nil
}
