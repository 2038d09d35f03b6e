package trace

import (
	"strings"

	"github.com/fatih/color"
)

// Marker tokens. Every token is four columns wide.
const (
	tokenMatch   = "    "
	tokenDiverge = ">---"
	tokenBasis   = "@   "
	tokenRoot    = "@---"
	tokenHere    = "|   "
)

// palette paints marker tokens. The zero palette leaves them plain.
type palette struct {
	basis   *color.Color
	diverge *color.Color
	here    *color.Color
}

func newPalette(on bool) palette {
	if !on {
		return palette{}
	}

	p := palette{
		basis:   color.New(color.FgCyan, color.Bold),
		diverge: color.New(color.FgYellow),
		here:    color.New(color.Faint),
	}

	// the tracer, not the color package, decides whether output is a terminal
	p.basis.EnableColor()
	p.diverge.EnableColor()
	p.here.EnableColor()
	return p
}

// paint returns n repetitions of token, colored by c.
func paint(c *color.Color, token string, n int) string {
	if n <= 0 {
		return ""
	}
	s := strings.Repeat(token, n)
	if c == nil {
		return s
	}
	return c.Sprint(s)
}
