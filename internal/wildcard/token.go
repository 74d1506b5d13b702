/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package wildcard

import "strings"

const (
	// All characters with a meaning in a pattern
	WildcardChars = "*?\\"
	// Individual wildcard constants
	wildcardStar     = '*'
	wildcardQuestion = '?'
	wildcardEscape   = '\\'
)

// Lookup table for the characters a backslash can escape.
var isEscapableTable = [256]bool{
	'*':  true,
	'?':  true,
	'\\': true,
}

// IsEscapable reports whether a backslash in front of b is consumed as an escape.
// A backslash before any other byte stays a literal backslash.
func IsEscapable(b byte) bool {
	return isEscapableTable[b]
}

type tokenKind uint8

const (
	tokenLiteral  tokenKind = iota
	tokenStar               // *
	tokenQuestion           // ?
)

// token is one lexical unit of a pattern. Literal tokens carry their text with
// escapes already resolved and are maximal: two literals are never adjacent.
type token struct {
	kind tokenKind
	text string
}

// tokenize splits pattern into literal runs and wildcard tokens.
// Every string is a valid pattern; a trailing lone backslash is literal.
func tokenize(pattern string) []token {
	var (
		toks []token
		run  strings.Builder
	)

	flush := func() {
		if run.Len() > 0 {
			toks = append(toks, token{kind: tokenLiteral, text: run.String()})
			run.Reset()
		}
	}

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case wildcardStar:
			flush()
			toks = append(toks, token{kind: tokenStar})
		case wildcardQuestion:
			flush()
			toks = append(toks, token{kind: tokenQuestion})
		case wildcardEscape:
			if i+1 < len(pattern) && IsEscapable(pattern[i+1]) {
				i++
				run.WriteByte(pattern[i])
				continue
			}
			run.WriteByte(c)
		default:
			run.WriteByte(c)
		}
	}
	flush()

	return toks
}

// HasWildcard reports whether pattern contains an unescaped * or ?.
func HasWildcard(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case wildcardStar, wildcardQuestion:
			return true
		case wildcardEscape:
			if i+1 < len(pattern) && IsEscapable(pattern[i+1]) {
				i++
			}
		}
	}
	return false
}

// Unescape resolves \*, \? and \\ in pattern and leaves everything else as is.
// Unescaped wildcards are copied through unchanged.
func Unescape(pattern string) string {
	if strings.IndexByte(pattern, wildcardEscape) < 0 {
		return pattern
	}

	var sb strings.Builder
	sb.Grow(len(pattern))
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == wildcardEscape && i+1 < len(pattern) && IsEscapable(pattern[i+1]) {
			i++
			c = pattern[i]
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// QuoteMeta escapes every character with a meaning in a pattern, so the result
// compiles to a pattern matching exactly s.
func QuoteMeta(s string) string {
	if !strings.ContainsAny(s, WildcardChars) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if IsEscapable(s[i]) {
			sb.WriteByte(wildcardEscape)
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
