// Package wordmatch counts keyword occurrences in free text for the
// scoring tables. Matching is case-insensitive. Keywords of three
// characters or fewer are matched on word boundaries only, so "ai" does
// not fire inside "mountain".
package wordmatch

import (
	"strings"
	"unicode"
)

const shortKeywordLen = 3

// Count returns the number of occurrences of keyword in text.
func Count(text, keyword string) int {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return 0
	}
	text = strings.ToLower(text)

	if len(keyword) <= shortKeywordLen {
		return countBounded(text, keyword)
	}
	return strings.Count(text, keyword)
}

// Total sums Count over a keyword list.
func Total(text string, keywords []string) int {
	total := 0
	for _, kw := range keywords {
		total += Count(text, kw)
	}
	return total
}

// Contains reports whether any keyword occurs in text at least once.
func Contains(text string, keywords []string) bool {
	for _, kw := range keywords {
		if Count(text, kw) > 0 {
			return true
		}
	}
	return false
}

func countBounded(text, keyword string) int {
	count := 0
	offset := 0
	for {
		idx := strings.Index(text[offset:], keyword)
		if idx < 0 {
			return count
		}
		start := offset + idx
		end := start + len(keyword)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			count++
		}
		offset = end
	}
}

func boundaryBefore(text string, pos int) bool {
	if pos == 0 {
		return true
	}
	return !isWordRune(rune(text[pos-1]))
}

func boundaryAfter(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	return !isWordRune(rune(text[pos]))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
