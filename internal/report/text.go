package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vvka-141/fir/internal/matcher"
	"github.com/vvka-141/fir/internal/tui"
	"github.com/vvka-141/fir/pkg/fir"
)

const (
	indent        = "  "
	lineNumberPad = 4
)

type styler func(...string) string

func plain(s ...string) string { return strings.Join(s, " ") }

type palette struct {
	path      styler
	line      styler
	highlight styler
	unused    styler
	summary   styler
}

func newPalette(color bool) palette {
	if !color {
		return palette{plain, plain, plain, plain, plain}
	}
	return palette{
		path:      tui.PathStyle.Render,
		line:      tui.LineNumberStyle.Render,
		highlight: tui.HighlightStyle.Render,
		unused:    tui.UnusedStyle.Render,
		summary:   tui.SummaryStyle.Render,
	}
}

func renderText(w io.Writer, result *fir.ScanResult, opts Options) error {
	p := newPalette(opts.Color)
	var b strings.Builder

	for _, file := range result.Files {
		b.WriteString("\n")
		if len(file.Matches) == 1 {
			b.WriteString(p.path(file.Location(file.Matches[0])))
		} else {
			b.WriteString(p.path(file.Path + ":"))
		}
		b.WriteString("\n")

		for _, m := range file.Matches {
			writeMatch(&b, p, m, result.Target.Name, result.Mode)
		}
	}

	if opts.Summary {
		b.WriteString("\n")
		b.WriteString(p.summary(Summary(result)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMatch(b *strings.Builder, p palette, m fir.MatchRecord, name string, mode fir.MatchMode) {
	num := strconv.Itoa(m.LineNumber)
	pad := lineNumberPad - len(num)
	if pad < 0 {
		pad = 0
	}

	b.WriteString(indent)
	b.WriteString(p.line(num + ":"))
	b.WriteString(strings.Repeat(" ", pad+len(indent)))
	b.WriteString(highlight(m.Content, name, mode, p.highlight))
	if m.Unused {
		b.WriteString(indent)
		b.WriteString(p.unused(fmt.Sprintf("(unused: %s)", m.ImportedName)))
	}
	b.WriteString("\n")
}

// highlight styles each occurrence of name in content. Word mode also
// highlights occurrences that are not path segments.
func highlight(content, name string, mode fir.MatchMode, style styler) string {
	spans := matcher.FindTarget(content, name, mode)
	if len(spans) == 0 {
		return content
	}

	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(content[last:sp.Start])
		b.WriteString(style(content[sp.Start:sp.End]))
		last = sp.End
	}
	b.WriteString(content[last:])
	return b.String()
}
