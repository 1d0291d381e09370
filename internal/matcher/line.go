package matcher

import (
	"strings"

	"github.com/vvka-141/fir/pkg/fir"
)

// importWords qualify a line as an import statement when present as whole words.
var importWords = []string{"import", "from", "require"}

// relativePathCues qualify a line when present as plain substrings.
var relativePathCues = []string{"./", "../"}

// IsCommentLine reports whether the line, ignoring leading whitespace,
// starts with a single-line comment marker.
func IsCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), fir.CommentMarker)
}

// HasImportCue reports whether the line looks like an import: it carries one of
// the words import, from, require, or a relative path prefix.
func HasImportCue(line string) bool {
	for _, w := range importWords {
		if ContainsWord(line, w) {
			return true
		}
	}
	for _, cue := range relativePathCues {
		if strings.Contains(line, cue) {
			return true
		}
	}
	return false
}

// ContainsTarget is the file-level pre-filter: it reports whether content holds
// at least one occurrence of name under the given mode.
func ContainsTarget(content, name string, mode fir.MatchMode) bool {
	if mode == fir.ModeWord {
		return ContainsWord(content, name)
	}
	return ContainsPathSegment(content, name)
}

// FindTarget returns the spans of name in line under the given mode.
func FindTarget(line, name string, mode fir.MatchMode) []Span {
	if mode == fir.ModeWord {
		return FindWord(line, name)
	}
	return FindPathSegment(line, name)
}

// IsReference reports whether a single line references name.
//
// Path-segment mode requires a non-comment line with a path-segment match and an
// import cue. Word mode requires a whole-word match together with the word
// import or require.
func IsReference(line, name string, mode fir.MatchMode) bool {
	if mode == fir.ModeWord {
		return ContainsWord(line, name) &&
			(ContainsWord(line, "import") || ContainsWord(line, "require"))
	}

	if IsCommentLine(line) {
		return false
	}
	if !ContainsPathSegment(line, name) {
		return false
	}
	return HasImportCue(line)
}
