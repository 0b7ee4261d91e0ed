package quiz

import (
	"strings"

	"studyhub/internal/view"
)

// MathClass marks elements produced by MathTypesetter
const MathClass = "math"

// NopTypesetter leaves containers untouched
type NopTypesetter struct{}

func (NopTypesetter) Typeset(*view.Element) {}

// MathTypesetter wraps \( \), \[ \] and $$ $$ segments of text nodes in
// math spans carrying the TeX source. The browser finishes rendering them.
// Already typeset spans are skipped, so running it twice is harmless.
type MathTypesetter struct{}

type delimiter struct {
	open, close string
	display     bool
}

var delimiters = []delimiter{
	{open: `\(`, close: `\)`},
	{open: `\[`, close: `\]`, display: true},
	{open: "$$", close: "$$", display: true},
}

type segment struct {
	text  string
	delim *delimiter
}

func (MathTypesetter) Typeset(container *view.Element) {
	typeset(container)
}

func typeset(e *view.Element) {
	if e == nil || e.HasClass(MathClass) {
		return
	}

	if !e.IsText() && e.Text != "" {
		if segs := splitMath(e.Text); hasMath(segs) {
			e.Text = ""
			e.Children = append(toElements(segs), e.Children...)
		}
	}

	out := make([]*view.Element, 0, len(e.Children))
	for _, c := range e.Children {
		if c.IsText() {
			if segs := splitMath(c.Text); hasMath(segs) {
				out = append(out, toElements(segs)...)
				continue
			}
			out = append(out, c)
			continue
		}
		typeset(c)
		out = append(out, c)
	}
	e.Children = out
}

func splitMath(s string) []segment {
	var segs []segment
	for s != "" {
		at, d := nextOpening(s)
		if d == nil {
			segs = append(segs, segment{text: s})
			break
		}

		body := s[at+len(d.open):]
		end := strings.Index(body, d.close)
		if end < 0 {
			// unterminated: keep the rest verbatim
			segs = append(segs, segment{text: s})
			break
		}

		if at > 0 {
			segs = append(segs, segment{text: s[:at]})
		}
		segs = append(segs, segment{text: body[:end], delim: d})
		s = body[end+len(d.close):]
	}
	return segs
}

func nextOpening(s string) (int, *delimiter) {
	best, idx := -1, -1
	for i := range delimiters {
		if at := strings.Index(s, delimiters[i].open); at >= 0 && (best < 0 || at < best) {
			best, idx = at, i
		}
	}
	if idx < 0 {
		return -1, nil
	}
	return best, &delimiters[idx]
}

func hasMath(segs []segment) bool {
	for _, s := range segs {
		if s.delim != nil {
			return true
		}
	}
	return false
}

func toElements(segs []segment) []*view.Element {
	out := make([]*view.Element, 0, len(segs))
	for _, s := range segs {
		if s.delim == nil {
			out = append(out, view.TextNode(s.text))
			continue
		}

		mode := "math-inline"
		if s.delim.display {
			mode = "math-display"
		}
		span := view.NewElement("span", "", MathClass, mode).
			SetAttr("data-tex", s.text).
			Append(view.TextNode(s.delim.open + s.text + s.delim.close))
		out = append(out, span)
	}
	return out
}
