// Package textutil measures and slices user text by what a writer sees as
// characters.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// CharCount returns the number of grapheme clusters in s.
func CharCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Tail returns the last n grapheme clusters of s, or s when it is shorter.
func Tail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	total := uniseg.GraphemeClusterCount(s)
	if total <= n {
		return s
	}

	g := uniseg.NewGraphemes(s)
	for i := 0; i < total-n; i++ {
		g.Next()
	}
	_, end := g.Positions()
	return s[end:]
}

// WordCount returns the number of whitespace-delimited tokens in s. A byte
// order mark counts as whitespace, as it does for browser text fields.
func WordCount(s string) int {
	return len(strings.FieldsFunc(s, isSpace))
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// EndsWithSpace reports whether the last rune of s is whitespace.
func EndsWithSpace(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}
