package trace

import "strings"

// layout carries the depths that position one traced line.
type layout struct {
	trace int // index of the leaf frame
	match int // leading frames shared with the previous line, at most trace
	crate int // index of the outermost frame in the caller's package, 0 if none
}

// render prefixes text with indentation markers and updates *basis when the line
// starts a new root.
func render(l layout, basis *int, text string, p palette) string {
	var b strings.Builder

	if l.match == 0 || l.match < *basis {
		if l.crate != 0 {
			*basis = l.crate
		} else {
			*basis = l.trace
		}

		if l.trace > *basis {
			b.WriteString(paint(p.basis, tokenRoot, 1))
			b.WriteString(paint(p.diverge, tokenDiverge, l.trace-*basis-1))
			b.WriteString(paint(p.here, tokenHere, 1))
		} else {
			b.WriteString(paint(p.basis, tokenBasis, 1))
		}
	} else {
		b.WriteString(strings.Repeat(tokenMatch, l.match-*basis))
		b.WriteString(paint(p.diverge, tokenDiverge, l.trace-l.match))
		b.WriteString(paint(p.here, tokenHere, 1))
	}

	if strings.Contains(text, "\n") {
		cont := "\n" + strings.Repeat(tokenMatch, l.trace-*basis) + paint(p.here, tokenHere, 1)
		text = strings.ReplaceAll(text, "\n", cont)
	}
	b.WriteString(text)

	return b.String()
}
