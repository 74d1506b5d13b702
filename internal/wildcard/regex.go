package wildcard

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/coregx/coregex"
	"github.com/pkg/errors"
)

// ErrRegexTranslation means a regex engine rejected a translated pattern.
// Apart from patterns that are not valid UTF-8 this indicates a bug in the
// translator.
var ErrRegexTranslation = errors.New("wildcard: regex engine rejected translated pattern")

// Characters that never need quoting in a regex. $ is left out: unquoted it
// would be an end of text assertion.
var isUnreservedTable = func() (t [256]bool) {
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = true
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	for _, c := range "_=!@#%;:-" {
		t[c] = true
	}
	return t
}()

// ToRegexString translates pattern into an equivalent regex string: * becomes
// .*, ? becomes . and literal runs holding anything outside
// [A-Za-z0-9_=!@#%;:-] are quoted with \Q...\E.
//
// The result is not anchored and leaves . at its default of not matching a
// newline; see ToRegex for a whole-string matcher.
func ToRegexString(pattern string) string {
	return toRegexString(tokenize(pattern))
}

func toRegexString(toks []token) string {
	var sb strings.Builder

	for _, tok := range toks {
		switch tok.kind {
		case tokenStar:
			sb.WriteString(".*")
		case tokenQuestion:
			sb.WriteByte('.')
		default:
			writeRegexLiteral(&sb, tok.text)
		}
	}
	return sb.String()
}

func writeRegexLiteral(sb *strings.Builder, run string) {
	plain := true
	for i := 0; i < len(run); i++ {
		if !isUnreservedTable[run[i]] {
			plain = false
			break
		}
	}
	if plain {
		sb.WriteString(run)
		return
	}

	// \E would end the quote early: close it, emit an escaped backslash and
	// the E, then reopen.
	sb.WriteString(`\Q`)
	sb.WriteString(strings.ReplaceAll(run, `\E`, `\E\\E\Q`))
	sb.WriteString(`\E`)
}

// WholeStringRegex wraps a translated expression so that it only matches an
// entire text and . also matches newlines, the way ? does in a pattern.
func WholeStringRegex(expr string) string {
	return `^(?s:` + expr + `)$`
}

// TranslationError reports a translated pattern the regex engines rejected.
// It matches ErrRegexTranslation with errors.Is and unwraps to the engine error.
type TranslationError struct {
	Pattern string
	Expr    string
	Err     error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("%v: pattern %q as %q: %v", ErrRegexTranslation, e.Pattern, e.Expr, e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }

func (e *TranslationError) Is(target error) bool { return target == ErrRegexTranslation }

// Regex is a translated pattern compiled into a whole-string matcher.
//
// coregex runs . one byte at a time, while ? consumes one character. The
// two only disagree when a ? meets a multi-byte character, so texts that
// are not pure ASCII go to the standard library engine when the pattern
// has a ?. A * gap between literal chunks always spans whole characters in
// valid UTF-8, so patterns without ? stay on coregex.
type Regex struct {
	expr     string
	fast     *coregex.Regex
	std      *regexp.Regexp
	charWise bool // pattern has a ?
}

// ToRegex translates pattern and compiles it into a whole-string matcher
// equivalent to Compile(pattern).Match.
func ToRegex(pattern string) (*Regex, error) {
	toks := tokenize(pattern)
	expr := WholeStringRegex(toRegexString(toks))

	std, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.WithStack(&TranslationError{Pattern: pattern, Expr: expr, Err: err})
	}
	fast, err := coregex.Compile(expr)
	if err != nil {
		return nil, errors.WithStack(&TranslationError{Pattern: pattern, Expr: expr, Err: err})
	}

	charWise := slices.ContainsFunc(toks, func(tok token) bool { return tok.kind == tokenQuestion })
	return &Regex{expr: expr, fast: fast, std: std, charWise: charWise}, nil
}

// MatchString reports whether the whole of s matches.
func (r *Regex) MatchString(s string) bool {
	if r.charWise && !isASCII(s) {
		return r.std.MatchString(s)
	}
	return r.fast.MatchString(s)
}

// Match is MatchString for a byte slice.
func (r *Regex) Match(b []byte) bool {
	if r.charWise && !isASCII(b) {
		return r.std.Match(b)
	}
	return r.fast.Match(b)
}

// String returns the compiled regular expression.
func (r *Regex) String() string {
	return r.expr
}

func isASCII[T ~string | ~[]byte](s T) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
