// internal/analysis/matcher.go
package analysis

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// patternCache holds a compiled whole-word pattern per configured keyword.
// Built once at init from the fixed tables; read-only afterwards.
var patternCache = map[string]*regexp.Regexp{}

func init() {
	for _, list := range [][]string{positiveWords, negativeWords, improvementKeywords} {
		cachePatterns(list)
	}
	for _, list := range categoryKeywords {
		cachePatterns(list)
	}
	for _, list := range severityKeywords {
		cachePatterns(list)
	}
}

func cachePatterns(keywords []string) {
	for _, kw := range keywords {
		k := strings.ToLower(kw)
		if _, ok := patternCache[k]; !ok {
			patternCache[k] = compileWordPattern(k)
		}
	}
}

func compileWordPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
}

// CountMatches counts whole-word occurrences of the keywords in text,
// case-insensitively. A multi-word keyword matches only as a standalone
// phrase. Each keyword contributes all of its occurrences to the sum, so
// lists sharing a word double-count by design.
func CountMatches(text string, keywords []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range keywords {
		count += len(wordPattern(kw).FindAllStringIndex(lower, -1))
	}
	return count
}

func wordPattern(keyword string) *regexp.Regexp {
	k := strings.ToLower(keyword)
	if p, ok := patternCache[k]; ok {
		return p
	}
	// Keyword outside the fixed tables, compile ad hoc
	return compileWordPattern(k)
}

var sentenceSplit = regexp.MustCompile(`[.!?]\s+`)

// splitSentences splits on a terminator followed by whitespace. The
// terminator itself is consumed; a trailing terminator with nothing after it
// stays attached to the last sentence.
func splitSentences(text string) []string {
	return sentenceSplit.Split(text, -1)
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
