/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package wildcard contains the anchor based wildcard matching engine.
// This file provides the matcher: it walks the compiled anchors over a text,
// sliding free anchors forward on mismatch, with no recursion and no regex.
package wildcard

import (
	"strings"
	"unicode/utf8"
)

// probe is the per-call backtracking state of one anchor.
type probe struct {
	from int // scan cursor when the anchor was entered
	next int // earliest position a free chunk may be found at
	at   int // where the chunk last matched
}

// Match reports whether the whole text matches the whole pattern.
//
// All backtracking state lives in a slice local to the call, so a single
// Pattern may be matched from any number of goroutines at once.
func (p *Pattern) Match(text string) bool {
	if p.anchors == nil {
		return p.literal == text
	}
	return matchAnchors(p.anchors, text)
}

// MatchBytes is Match for a byte slice.
func (p *Pattern) MatchBytes(text []byte) bool {
	return p.Match(string(text))
}

// matchAnchors is the backtracking engine.
//
// Anchors are placed left to right. A fixed anchor has exactly one legal
// place; a free anchor takes the leftmost occurrence of its chunk at or after
// its probe position. When a later anchor can't be placed, the most recent
// free anchor slides one character past its previous occurrence and
// everything after it is placed again from scratch.
//
// Only the most recent free anchor is ever retried. Sliding an earlier one
// can only push every later cursor further right, and the most recent free
// anchor already tried every position from its cursor onward. The same
// argument makes a free anchor that finds no occurrence a final failure.
// Each free anchor's probe position only grows, so the total work is
// bounded by len(anchors) * len(text).
func matchAnchors(anchors []Anchor, text string) bool {
	n, tLen := len(anchors), len(text)

	probes := make([]probe, n)
	lastFree := -1 // index of the most recent free anchor placed
	i, pp := 0, 0  // current anchor and scan cursor

	for {
		a := &anchors[i]
		pr := &probes[i]

		// Case 1: place the anchor.
		placed := false
		switch {
		case a.AtBeginning && pp != 0:
			// The first anchor only ever starts at the beginning.

		case a.Mode == Fixed:
			if start, ok := skipChars(text, pp, a.Skip); ok && strings.HasPrefix(text[start:], a.Chunk) {
				pr.at = start
				placed = true
			}

		default:
			idx := strings.Index(text[pr.next:], a.Chunk)
			if idx < 0 {
				return false
			}
			pr.at = pr.next + idx
			lastFree = i
			placed = true
		}

		if placed {
			pp = pr.at + len(a.Chunk)

			// Case 2: last anchor, check the end of the text.
			if i == n-1 {
				if a.AtEnd && pp == tLen {
					return true
				}
				// A trailing free anchor is always chunkless (compileAnchors
				// closes every literal run with a new anchor) and accepts any suffix.
				if a.Mode == Free {
					return true
				}
			} else {
				// Case 3: enter the next anchor with a fresh probe.
				i++
				probes[i] = probe{from: pp, next: pp}
				continue
			}
		}

		// Case 4: mismatch. Slide the most recent free anchor.
		if lastFree < 0 {
			return false
		}
		back := &probes[lastFree]
		if back.at >= tLen {
			return false
		}
		_, w := utf8.DecodeRuneInString(text[back.at:])
		back.next = back.at + w
		pp = back.from
		i = lastFree
	}
}

// skipChars advances pos by n characters of text. It reports false when the
// text ends first.
func skipChars(text string, pos, n int) (int, bool) {
	for ; n > 0; n-- {
		if pos >= len(text) {
			return pos, false
		}
		if text[pos] < utf8.RuneSelf {
			pos++
			continue
		}
		_, w := utf8.DecodeRuneInString(text[pos:])
		pos += w
	}
	return pos, true
}
