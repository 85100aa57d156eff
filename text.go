package flywheel

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultLineGap is added to the measured text height to get the line
	// height when no explicit line spacing is set.
	DefaultLineGap = 5.0
	// DefaultTextPadding is subtracted from the item width for line breaking
	// and added to the item height for the overflow test.
	DefaultTextPadding = 30.0
	// DefaultTextSize is the item text size in density-independent pixels.
	DefaultTextSize = 15.0
	// Ellipsis marks a truncated last line.
	Ellipsis = "..."
	// minTruncate is the minimum number of runes dropped from a truncated line.
	minTruncate = 3
)

// TextLine is one laid-out line of item text.
type TextLine struct {
	Text string
	// Baseline is the y offset of the line's baseline inside the text rect.
	Baseline float64
}

// TextLayoutOptions controls LayoutText.
type TextLayoutOptions struct {
	Padding float64
	// LineSpacing overrides the derived line height; 0 = derive from the
	// text bounds plus LineGap.
	LineSpacing float64
	// LineGap is added to the text bounds height; 0 = DefaultLineGap.
	LineGap float64
}

// lineHeight returns the effective line height for text under opts.
func (o TextLayoutOptions) lineHeight(text string, m GlyphMetrics) float64 {
	if o.LineSpacing > 0 {
		return o.LineSpacing
	}
	gap := o.LineGap
	if gap == 0 {
		gap = DefaultLineGap
	}
	return m.BoundString(text).Height + gap
}

// LayoutText breaks text into lines that fit rect, truncating with Ellipsis
// when the rect cannot hold the rest, and centers the block vertically.
func LayoutText(text string, rect Rect, m GlyphMetrics, opts TextLayoutOptions) []TextLine {
	if strings.TrimSpace(text) == "" || m == nil {
		return nil
	}

	lh := opts.lineHeight(text, m)
	maxW := rect.Width - opts.Padding
	limit := rect.Height + opts.Padding

	var lines []TextLine
	start := 0
	for start < len(text) {
		breakAt := start + m.BreakText(text[start:], maxW)
		if breakAt == start {
			// Not even one rune fits; take it anyway so layout progresses.
			_, size := utf8.DecodeRuneInString(text[start:])
			breakAt = start + size
		}

		next := breakAt
		if breakAt < len(text) {
			if ws := lastSpace(text, start, breakAt); ws > start {
				breakAt = ws
				next = ws
			}
		}
		slice := strings.TrimRightFunc(text[start:breakAt], unicode.IsSpace)
		next = skipSpace(text, next)

		last := false
		if next < len(text) && float64(len(lines)+2)*lh > limit {
			slice = truncate(slice, maxW, m)
			last = true
		}

		lines = append(lines, TextLine{Text: slice, Baseline: float64(len(lines)+1) * lh})
		start = next
		if last {
			break
		}
	}

	offset := (rect.Height - lh*float64(len(lines))) / 2
	for i := range lines {
		lines[i].Baseline += offset
	}
	return lines
}

// lastSpace returns the byte index of the last whitespace in text[start:] at
// or before breakAt, or -1.
func lastSpace(text string, start, breakAt int) int {
	end := breakAt
	if r, size := utf8.DecodeRuneInString(text[breakAt:]); unicode.IsSpace(r) {
		end += size
	}
	i := strings.LastIndexFunc(text[start:end], unicode.IsSpace)
	if i < 0 {
		return -1
	}
	return start + i
}

// skipSpace advances i past whitespace.
func skipSpace(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

// truncate drops at least minTruncate runes from the tail of s and appends
// Ellipsis, dropping more while the result is wider than maxW.
func truncate(s string, maxW float64, m GlyphMetrics) string {
	runes := []rune(s)
	n := len(runes) - minTruncate
	if n < 0 {
		n = 0
	}
	for n > 0 && m.MeasureString(string(runes[:n])+Ellipsis) > maxW {
		n--
	}
	return strings.TrimRightFunc(string(runes[:n]), unicode.IsSpace) + Ellipsis
}
