// Package textnorm normalizes transaction descriptions and provides the
// string comparisons the tagging stages are built on.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	nonLetterRe  = regexp.MustCompile(`[^a-z ]+`)
	multiSpaceRe = regexp.MustCompile(` +`)
)

// Clean lowercases s, deletes every character that is not a letter or a
// space, and collapses runs of spaces. This is the "clean" description
// variant used by keyword matching.
func Clean(s string) string {
	lowered := strings.ToLower(s)
	stripped := nonLetterRe.ReplaceAllString(lowered, "")
	return multiSpaceRe.ReplaceAllString(stripped, " ")
}

// CollapseSpaces squeezes runs of spaces into one.
func CollapseSpaces(s string) string {
	return multiSpaceRe.ReplaceAllString(s, " ")
}

// Tokens splits s on whitespace.
func Tokens(s string) []string {
	return strings.Fields(s)
}

// FirstWords returns at most n leading whitespace-separated words of s.
func FirstWords(s string, n int) []string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return words
}

// ContainsDigit reports whether s carries at least one decimal digit. Digit
// keywords are matched against the raw lowercase description because the
// clean variant has its digits stripped.
func ContainsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// HasToken reports whether word equals one of the whitespace-separated
// tokens of s.
func HasToken(s, word string) bool {
	for _, tok := range strings.Fields(s) {
		if tok == word {
			return true
		}
	}
	return false
}

// OverlapCount counts how many words of ref appear in other. Duplicates in
// ref are counted once each, mirroring element-wise membership.
func OverlapCount(ref, other []string) int {
	if len(ref) == 0 || len(other) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(other))
	for _, w := range other {
		set[w] = struct{}{}
	}
	count := 0
	for _, w := range ref {
		if _, ok := set[w]; ok {
			count++
		}
	}
	return count
}

// JaccardDistance returns the Jaccard distance between the k=1 character
// shingle sets of a and b: 1 − |A∩B| / |A∪B|. Identical strings have
// distance 0; an empty string against a non-empty one has distance 1.
func JaccardDistance(a, b string) float64 {
	if a == b {
		return 0
	}
	setA := shingles(a)
	setB := shingles(b)
	union := make(map[rune]struct{}, len(setA)+len(setB))
	inter := 0
	for r := range setA {
		union[r] = struct{}{}
	}
	for r := range setB {
		if _, ok := setA[r]; ok {
			inter++
		}
		union[r] = struct{}{}
	}
	if len(union) == 0 {
		return 0
	}
	return 1 - float64(inter)/float64(len(union))
}

func shingles(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
