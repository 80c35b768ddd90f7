package diagnostic

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// maxExcerptLines bounds the excerpt printed for span-less diagnostics.
const maxExcerptLines = 8

// Span is a byte range into a Diagnostic's Source.
type Span struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

// End returns the exclusive end offset.
func (s Span) End() int { return s.Offset + s.Length }

// Diagnostic describes a problem located in a text file.
type Diagnostic struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Path    string `json:"path"`
	Source  string `json:"-"`
	Span    *Span  `json:"span,omitempty"`
	// Label annotates the underlined span.
	Label string `json:"label,omitempty"`
	Help  string `json:"help,omitempty"`
}

// Snippet returns the text covered by the span, or "" when there is none or
// it falls outside Source.
func (d Diagnostic) Snippet() string {
	if d.Span == nil || d.Span.Offset < 0 || d.Span.End() > len(d.Source) || d.Span.Length < 0 {
		return ""
	}
	return d.Source[d.Span.Offset:d.Span.End()]
}

// Location returns the 1-based line and column of the span start. Columns
// count runes. ok is false when there is no usable span.
func (d Diagnostic) Location() (line, col int, ok bool) {
	if d.Span == nil || d.Span.Offset < 0 || d.Span.Offset > len(d.Source) {
		return 0, 0, false
	}
	prefix := d.Source[:d.Span.Offset]
	line = strings.Count(prefix, "\n") + 1
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	col = utf8.RuneCountInString(prefix[lineStart:]) + 1
	return line, col, true
}

type paint func(string) string

type styles struct {
	title  paint
	gutter paint
	caret  paint
	help   paint
}

func newStyles(w io.Writer, colorize bool) styles {
	if !colorize {
		plain := func(s string) string { return s }
		return styles{title: plain, gutter: plain, caret: plain, help: plain}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		title:  styled(r.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))),
		gutter: styled(r.NewStyle().Foreground(lipgloss.Color("12"))),
		caret:  styled(r.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))),
		help:   styled(r.NewStyle().Foreground(lipgloss.Color("14"))),
	}
}

func styled(style lipgloss.Style) paint {
	return func(s string) string { return style.Render(s) }
}

// Render writes a human-readable report of d to w.
func Render(w io.Writer, d Diagnostic, colorize bool) error {
	st := newStyles(w, colorize)
	var b strings.Builder

	title := "error"
	if d.Code != "" {
		title += "[" + d.Code + "]"
	}
	b.WriteString(st.title(title+":") + " " + d.Message + "\n")

	line, col, hasSpan := d.Location()
	if d.Path != "" {
		loc := d.Path
		if hasSpan {
			loc += ":" + strconv.Itoa(line) + ":" + strconv.Itoa(col)
		}
		b.WriteString(st.gutter("  --> ") + loc + "\n")
	}

	switch {
	case hasSpan:
		writeSpan(&b, st, d, line)
	case d.Source != "":
		writeExcerpt(&b, st, d.Source)
	}

	if d.Help != "" {
		b.WriteString(st.help("  help: ") + d.Help + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSpan(b *strings.Builder, st styles, d Diagnostic, line int) {
	lineStart := strings.LastIndexByte(d.Source[:d.Span.Offset], '\n') + 1
	lineEnd := len(d.Source)
	if i := strings.IndexByte(d.Source[lineStart:], '\n'); i >= 0 {
		lineEnd = lineStart + i
	}
	text := strings.TrimSuffix(d.Source[lineStart:lineEnd], "\r")

	num := strconv.Itoa(line)
	pad := strings.Repeat(" ", len(num)+1)
	b.WriteString(st.gutter(pad+" |") + "\n")
	b.WriteString(st.gutter(" "+num+" |") + " " + text + "\n")

	var indent strings.Builder
	for _, r := range d.Source[lineStart:d.Span.Offset] {
		if r == '\t' {
			indent.WriteByte('\t')
		} else {
			indent.WriteByte(' ')
		}
	}
	end := min(d.Span.End(), lineStart+len(text))
	width := 1
	if end > d.Span.Offset {
		width = max(1, utf8.RuneCountInString(d.Source[d.Span.Offset:end]))
	}
	marker := strings.Repeat("^", width)
	if d.Label != "" {
		marker += " " + d.Label
	}
	b.WriteString(st.gutter(pad+" |") + " " + indent.String() + st.caret(marker) + "\n")
}

func writeExcerpt(b *strings.Builder, st styles, source string) {
	lines := strings.Split(strings.TrimRight(source, "\n"), "\n")
	shown := lines
	if len(shown) > maxExcerptLines {
		shown = shown[:maxExcerptLines]
	}
	width := len(strconv.Itoa(len(shown)))
	b.WriteString(st.gutter(strings.Repeat(" ", width+1)+" |") + "\n")
	for i, text := range shown {
		num := fmt.Sprintf("%*d", width, i+1)
		b.WriteString(st.gutter(" "+num+" |") + " " + strings.TrimSuffix(text, "\r") + "\n")
	}
	if hidden := len(lines) - len(shown); hidden > 0 {
		b.WriteString(st.gutter(strings.Repeat(" ", width+1)+" |") + fmt.Sprintf(" ... %d more line(s)\n", hidden))
	}
}
