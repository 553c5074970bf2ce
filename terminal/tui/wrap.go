package tui

import "strings"

// styledRune is one rune with its resolved span style
type styledRune struct {
	r  rune
	st Style
	w  int
}

// SplitLines breaks spans at every '\n', keeping styles across the break
func SplitLines(spans []Span) []Line {
	lines := []Line{nil}
	for _, sp := range spans {
		parts := strings.Split(sp.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], Span{Text: part, Style: sp.Style})
			}
		}
	}
	return lines
}

// WrapLine re-flows one line greedily to width columns.
// Words move to the next row whole; a word wider than the row is hard-broken
// with every fragment on its own row. Leading spaces of the line survive on the
// first row, spaces at a wrap point are dropped. An empty line yields one empty row.
func WrapLine(line Line, width int) []Line {
	if width <= 0 {
		return nil
	}

	var rows []Line
	var cur []styledRune
	curW := 0

	flush := func() {
		rows = append(rows, joinRunes(trimTrailingSpaces(cur)))
		cur = nil
		curW = 0
	}

	for _, tok := range tokenize(line) {
		tokW := runesWidth(tok)

		if tok[0].r == ' ' {
			switch {
			case curW == 0 && len(rows) > 0:
				// Continuation rows start at a word
			case curW+tokW <= width:
				cur = append(cur, tok...)
				curW += tokW
			case curW > 0:
				flush()
			}
			continue
		}

		if curW+tokW <= width {
			cur = append(cur, tok...)
			curW += tokW
			continue
		}
		if tokW <= width {
			flush()
			cur = append(cur, tok...)
			curW = tokW
			continue
		}

		if curW > 0 {
			flush()
		}
		for _, frag := range hardBreak(tok, width) {
			cur = frag
			flush()
		}
	}

	if len(cur) > 0 || len(rows) == 0 {
		flush()
	}
	return rows
}

// WrapText flows plain text, without markup, and returns the row strings
func WrapText(s string, width int) []string {
	var out []string
	for _, line := range SplitLines([]Span{{Text: s}}) {
		for _, row := range WrapLine(line, width) {
			out = append(out, row.String())
		}
	}
	return out
}

// tokenize splits a line into alternating runs of spaces and non-spaces
func tokenize(line Line) [][]styledRune {
	var toks [][]styledRune
	var cur []styledRune
	for _, sp := range line {
		for _, r := range sp.Text {
			w := RuneWidth(r)
			if w == 0 {
				continue
			}
			sr := styledRune{r: r, st: sp.Style, w: w}
			if len(cur) > 0 && (cur[0].r == ' ') != (r == ' ') {
				toks = append(toks, cur)
				cur = nil
			}
			cur = append(cur, sr)
		}
	}
	if len(cur) > 0 {
		toks = append(toks, cur)
	}
	return toks
}

// hardBreak cuts a word into fragments of at most width columns; a rune wider
// than width gets a fragment of its own
func hardBreak(word []styledRune, width int) [][]styledRune {
	var frags [][]styledRune
	var cur []styledRune
	curW := 0
	for _, sr := range word {
		if curW+sr.w > width && len(cur) > 0 {
			frags = append(frags, cur)
			cur = nil
			curW = 0
		}
		cur = append(cur, sr)
		curW += sr.w
	}
	if len(cur) > 0 {
		frags = append(frags, cur)
	}
	return frags
}

func runesWidth(rs []styledRune) int {
	w := 0
	for _, sr := range rs {
		w += sr.w
	}
	return w
}

func trimTrailingSpaces(rs []styledRune) []styledRune {
	n := len(rs)
	for n > 0 && rs[n-1].r == ' ' {
		n--
	}
	return rs[:n]
}

// joinRunes regroups runes into spans, merging neighbours with equal style
func joinRunes(rs []styledRune) Line {
	var line Line
	var b strings.Builder
	for i, sr := range rs {
		if i > 0 && sr.st != rs[i-1].st {
			line = append(line, Span{Text: b.String(), Style: rs[i-1].st})
			b.Reset()
		}
		b.WriteRune(sr.r)
	}
	if len(rs) > 0 {
		line = append(line, Span{Text: b.String(), Style: rs[len(rs)-1].st})
	}
	return line
}
