package matcher

import "strings"

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func isPathSeparator(b byte) bool {
	return b == '/' || b == '\\'
}

// boundaryFunc decides whether the occurrence s[start:end] counts.
type boundaryFunc func(s string, start, end int) bool

func wordBounded(s string, start, end int) bool {
	if start > 0 && isWordByte(s[start-1]) {
		return false
	}
	if end < len(s) && isWordByte(s[end]) {
		return false
	}
	return true
}

func pathBounded(s string, start, end int) bool {
	if start == 0 || !isPathSeparator(s[start-1]) {
		return false
	}
	return end == len(s) || !isWordByte(s[end])
}

// Span is a half-open byte range [Start, End) within a string.
type Span struct {
	Start int
	End   int
}

// eachBounded calls fn for every non-overlapping occurrence of token in s
// accepted by ok, stopping when fn returns false.
func eachBounded(s, token string, ok boundaryFunc, fn func(Span) bool) {
	if token == "" {
		return
	}

	offset := 0
	for offset <= len(s)-len(token) {
		idx := strings.Index(s[offset:], token)
		if idx < 0 {
			return
		}
		start := offset + idx
		end := start + len(token)
		if !ok(s, start, end) {
			offset = start + 1
			continue
		}
		if !fn(Span{Start: start, End: end}) {
			return
		}
		offset = end
	}
}

// countBounded counts occurrences accepted by ok.
// limit stops counting early; pass -1 for no limit.
func countBounded(s, token string, ok boundaryFunc, limit int) int {
	n := 0
	eachBounded(s, token, ok, func(Span) bool {
		n++
		return limit <= 0 || n < limit
	})
	return n
}

func findBounded(s, token string, ok boundaryFunc) []Span {
	var spans []Span
	eachBounded(s, token, ok, func(sp Span) bool {
		spans = append(spans, sp)
		return true
	})
	return spans
}

// ContainsWord reports whether token appears in s as a whole word.
func ContainsWord(s, token string) bool {
	return countBounded(s, token, wordBounded, 1) > 0
}

// CountWord counts the whole-word occurrences of token in s.
func CountWord(s, token string) int {
	return countBounded(s, token, wordBounded, -1)
}

// ContainsPathSegment reports whether token appears in s right after a path
// separator and is not followed by a word character.
func ContainsPathSegment(s, token string) bool {
	return countBounded(s, token, pathBounded, 1) > 0
}

// FindWord returns the spans of every whole-word occurrence of token in s.
func FindWord(s, token string) []Span {
	return findBounded(s, token, wordBounded)
}

// FindPathSegment returns the spans of every path-segment occurrence of token in s.
func FindPathSegment(s, token string) []Span {
	return findBounded(s, token, pathBounded)
}
