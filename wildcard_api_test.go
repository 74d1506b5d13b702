package globanchor

import (
	"regexp"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileScenarios(t *testing.T) {
	cases := []struct {
		pattern string
		s       string
		result  bool
	}{
		{"one*throne", "onethrone", true},
		{"one*throne", "onezabaeidkeithrone", true},
		{"one*throne", "onetwo", false},
		{"*yabba???", "blabbayabbatwo", true},
		{"*yabba???", "yabbathree", false},
		{"\\?\\?\\?\\?yabba\\*", "????yabba*", true},
		{"\\?\\?\\?\\?yabba\\*", "??yabba*", false},
		{"*", "", true},
		{"", "", true},
		{"", "x", false},
	}

	for _, tc := range cases {
		p := Compile(tc.pattern)
		assert.Equal(t, tc.result, p.Match(tc.s), "Compile(%q).Match(%q)", tc.pattern, tc.s)
		assert.Equal(t, tc.result, p.MatchBytes([]byte(tc.s)), "Compile(%q).MatchBytes(%q)", tc.pattern, tc.s)
		assert.Equal(t, tc.result, Match(tc.pattern, tc.s), "Match(%q, %q)", tc.pattern, tc.s)
	}
}

func TestPatternAccessors(t *testing.T) {
	p := Compile("\\*.log")
	assert.True(t, p.IsLiteral())
	assert.Equal(t, "\\*.log", p.String())
	assert.True(t, p.Match("*.log"))

	q := Compile("*.log")
	assert.False(t, q.IsLiteral())
	assert.Equal(t, "*.log", q.String())
}

func TestQuoteMetaRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", "*?\\", "what?", "C:\\Program Files\\*"} {
		p := Compile(QuoteMeta(s))
		assert.True(t, p.IsLiteral(), "QuoteMeta(%q)", s)
		assert.True(t, p.Match(s), "QuoteMeta(%q)", s)
		assert.False(t, p.Match(s+"x"), "QuoteMeta(%q)", s)
	}
}

func TestToRegexStringScenarios(t *testing.T) {
	assert.Equal(t, `\Qfile.txt\E`, ToRegexString("file.txt"))
	assert.Equal(t, "a.bcd", ToRegexString("a?bcd"))
}

func TestToRegexAgreesWithMatch(t *testing.T) {
	patterns := []string{"one*throne", "*yabba???", "\\?\\?\\?\\?yabba\\*", "file.*", "a\\b*", "*", "h?llo", "???", "??", "*?語", "🤷*"}
	texts := []string{
		"", "onethrone", "onezabaeidkeithrone", "blabbayabbatwo", "????yabba*", "file.txt", "a\\bc", "multi\nline",
		"héllo", "hello", "日本語", "本語", "🤷🏾", "🤷🏾‍♂️", "yabba日本語", "file.日本",
	}

	for _, pattern := range patterns {
		re := MustToRegex(pattern)
		std := regexp.MustCompile(`^(?s:` + ToRegexString(pattern) + `)$`)
		p := Compile(pattern)
		for _, s := range texts {
			assert.Equal(t, p.Match(s), re.MatchString(s), "ToRegex: pattern %q text %q", pattern, s)
			assert.Equal(t, p.Match(s), re.Match([]byte(s)), "ToRegex bytes: pattern %q text %q", pattern, s)
			assert.Equal(t, p.Match(s), std.MatchString(s), "regexp: pattern %q text %q", pattern, s)
		}
	}
}

func TestToRegexError(t *testing.T) {
	_, err := ToRegex("bad\xfe*")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRegexTranslation))

	var te *TranslationError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "bad\xfe*", te.Pattern)
	assert.Error(t, errors.Unwrap(te))

	assert.Panics(t, func() { MustToRegex("bad\xfe*") })
}

func TestConcurrentMatch(t *testing.T) {
	p := Compile("*a?c*d")
	texts := []string{"abcd", "abd", "xxabcxxd", "aacd", "", "acd", "abcabcabcd", "abxd"}

	want := make([]bool, len(texts))
	for i, s := range texts {
		want[i] = p.Match(s)
	}

	const goroutines = 32
	got := make([][]bool, goroutines)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			res := make([]bool, len(texts))
			for round := 0; round < 100; round++ {
				for i := range texts {
					j := (i + g) % len(texts)
					res[j] = p.Match(texts[j])
				}
			}
			got[g] = res
		}(g)
	}
	wg.Wait()

	for g := range got {
		assert.Equal(t, want, got[g], "goroutine %d", g)
	}
}
