// Package wildcard contains the core implementation of the anchor compiler,
// the backtracking matcher and the regex translator.
// It is intended for internal use by the parent globanchor package.
package wildcard

import (
	"strconv"
	"strings"
)

// Mode says how an anchor's chunk is positioned relative to the scan cursor.
type Mode uint8

const (
	Fixed Mode = iota // chunk starts exactly Skip characters after the cursor
	Free              // chunk may start anywhere at or after the cursor (a *)
)

func (m Mode) String() string {
	if m == Free {
		return "free"
	}
	return "fixed"
}

// Anchor is a single positional constraint of a compiled pattern.
// Anchors are never modified once Compile returns.
type Anchor struct {
	Chunk       string
	Mode        Mode
	Skip        int // characters consumed by ? before Chunk, Fixed only
	AtBeginning bool
	AtEnd       bool
}

func (a Anchor) String() string {
	var sb strings.Builder
	sb.WriteString(a.Mode.String())
	if a.Skip > 0 {
		sb.WriteString("+")
		sb.WriteString(strconv.Itoa(a.Skip))
	}
	sb.WriteString(strconv.Quote(a.Chunk))
	if a.AtBeginning {
		sb.WriteString("^")
	}
	if a.AtEnd {
		sb.WriteString("$")
	}
	return sb.String()
}

// Pattern is a compiled wildcard pattern. It is either a literal (no
// unescaped wildcard anywhere) compared by equality, or a sequence of anchors.
//
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	source  string
	literal string
	anchors []Anchor
}

// Compile turns pattern into a Pattern. Compile never fails.
func Compile(pattern string) *Pattern {
	p := &Pattern{source: pattern}

	// Fast path for patterns without any wildcards.
	if !HasWildcard(pattern) {
		p.literal = Unescape(pattern)
		return p
	}

	p.anchors = compileAnchors(tokenize(pattern))
	return p
}

// compileAnchors builds the minimal anchor sequence for toks.
func compileAnchors(toks []token) []Anchor {
	anchors := make([]Anchor, 1, len(toks)+1)
	anchors[0] = Anchor{Mode: Fixed, AtBeginning: true}

	for _, tok := range toks {
		cur := &anchors[len(anchors)-1]

		switch tok.kind {
		case tokenLiteral:
			cur.Chunk = tok.text
			anchors = append(anchors, Anchor{Mode: Fixed})

		case tokenQuestion:
			// A ? after a * can't narrow the *, so it gets its own anchor.
			if cur.Mode == Fixed {
				cur.Skip++
			} else {
				anchors = append(anchors, Anchor{Mode: Fixed, Skip: 1})
			}

		case tokenStar:
			switch {
			case cur.Mode == Free:
				// Consecutive stars collapse.
			case cur.Skip > 0:
				anchors = append(anchors, Anchor{Mode: Free})
			default:
				cur.Mode = Free
			}
		}
	}

	if last := &anchors[len(anchors)-1]; last.Mode == Fixed {
		last.AtEnd = true
	}
	return anchors
}

// String returns the source text of the pattern.
func (p *Pattern) String() string {
	return p.source
}

// IsLiteral reports whether the pattern is matched by plain string equality.
func (p *Pattern) IsLiteral() bool {
	return p.anchors == nil
}

// Literal returns the escape-resolved text of a literal pattern.
func (p *Pattern) Literal() (string, bool) {
	return p.literal, p.anchors == nil
}

// Anchors returns a copy of the compiled anchor sequence, nil for a literal pattern.
func (p *Pattern) Anchors() []Anchor {
	if p.anchors == nil {
		return nil
	}
	out := make([]Anchor, len(p.anchors))
	copy(out, p.anchors)
	return out
}
