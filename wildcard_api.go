// Package globanchor compiles shell-style wildcard patterns into reusable
// matchers that test whole strings without a regular-expression engine, and
// translates the same patterns into equivalent regular expressions.
//
// # Supported Wildcards:
//
//   - `*`: Matches any sequence of characters (including zero characters).
//   - `?`: Matches exactly one character.
//   - `\*`, `\?`, `\\`: Match a literal `*`, `?` or `\`. A backslash before
//     any other character is itself a literal backslash, so Windows style
//     paths need no extra escaping.
//
// A character is a UTF-8 encoded code point; an invalid byte counts as one
// character.
//
// A compiled Pattern is immutable and may be shared by any number of
// goroutines.
package globanchor

import (
	"github.com/twinfer/globanchor/internal/wildcard"
)

// ErrRegexTranslation is returned, wrapped, by ToRegex when the regex engine
// rejects a translated pattern. Patterns that are not valid UTF-8 can't be
// expressed in Go regex syntax; for any other pattern this is a bug.
var ErrRegexTranslation = wildcard.ErrRegexTranslation

// TranslationError carries the pattern, the translated expression and the
// regex engine's error.
type TranslationError = wildcard.TranslationError

// Pattern is a compiled wildcard pattern.
type Pattern struct {
	p *wildcard.Pattern
}

// Compile parses pattern into a Pattern. Every string is a valid pattern, so
// Compile never fails.
//
// A pattern without unescaped wildcards is matched by plain string equality.
// Any other pattern is reduced to a short sequence of anchors: literal chunks
// at fixed distances, set by counted `?`, or free to slide, introduced by `*`.
func Compile(pattern string) *Pattern {
	return &Pattern{p: wildcard.Compile(pattern)}
}

// Match reports whether the whole of s matches the pattern.
//
// Matching runs in time bounded by the number of anchors times len(s) and
// never recurses.
func (p *Pattern) Match(s string) bool {
	return p.p.Match(s)
}

// MatchBytes is equivalent to Match but takes a byte slice.
func (p *Pattern) MatchBytes(s []byte) bool {
	return p.p.MatchBytes(s)
}

// IsLiteral reports whether the pattern has no unescaped wildcards and is
// matched by string equality.
func (p *Pattern) IsLiteral() bool {
	return p.p.IsLiteral()
}

// String returns the source text of the pattern.
func (p *Pattern) String() string {
	return p.p.String()
}

// Match compiles pattern and matches s against it. Callers matching the same
// pattern repeatedly should Compile it once instead.
func Match(pattern, s string) bool {
	return wildcard.Compile(pattern).Match(s)
}

// QuoteMeta returns a pattern that matches exactly s, escaping `*`, `?` and `\`.
func QuoteMeta(s string) string {
	return wildcard.QuoteMeta(s)
}

// ToRegexString translates pattern into a regular expression string.
// `*` becomes `.*`, `?` becomes `.`, and literal text containing anything but
// letters, digits and `_=!@#%;:-` is quoted between `\Q` and `\E`:
//
//	ToRegexString("file.txt") // `\Qfile.txt\E`
//	ToRegexString("a?bcd")    // `a.bcd`
//
// The string is neither anchored nor in dot-all mode. Use ToRegex for a
// compiled regex that matches exactly what Compile(pattern).Match does.
func ToRegexString(pattern string) string {
	return wildcard.ToRegexString(pattern)
}

// Regex is a pattern translated into a compiled regular expression. It is
// safe for concurrent use.
//
// ASCII texts, and every text when the pattern has no `?`, run on coregex.
// coregex reads `.` as a single byte, so a pattern with `?` matches other
// texts with the standard library engine, which reads it as one character.
type Regex struct {
	r *wildcard.Regex
}

// MatchString reports whether the whole of s matches.
func (r *Regex) MatchString(s string) bool {
	return r.r.MatchString(s)
}

// Match reports whether the whole of b matches.
func (r *Regex) Match(b []byte) bool {
	return r.r.Match(b)
}

// String returns the compiled expression, `^(?s:` + ToRegexString(pattern) + `)$`.
func (r *Regex) String() string {
	return r.r.String()
}

// ToRegex translates pattern and compiles it. The regex is anchored at both
// ends and lets `.` match a newline, so for every valid UTF-8 s
//
//	re.MatchString(s) == Compile(pattern).Match(s)
//
// A failure is a *TranslationError, matching ErrRegexTranslation with
// errors.Is and unwrapping to the regex engine's error.
func ToRegex(pattern string) (*Regex, error) {
	r, err := wildcard.ToRegex(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{r: r}, nil
}

// MustToRegex is like ToRegex but panics if the translation is rejected.
func MustToRegex(pattern string) *Regex {
	re, err := ToRegex(pattern)
	if err != nil {
		panic(err)
	}
	return re
}
