package matcher

import (
	"regexp"
	"strings"
)

const (
	identifierPattern = `[A-Za-z_$][\w$]*`
	bracePattern      = `\{[^}]*\}`
)

var (
	// import <binding> from ..., optionally "import a, { b } from" or "import a, * as ns from"
	reImportBinding = regexp.MustCompile(
		`^\s*import\s+(` + bracePattern + `|` + identifierPattern + `)` +
			`(?:\s*,\s*(?:` + bracePattern + `|\*\s*as\s+` + identifierPattern + `))?` +
			`\s+from\b`)

	reIdentifier = regexp.MustCompile(`^` + identifierPattern + `$`)
)

// ExtractImportedName returns the identifier bound by an
// "import <binding> from ..." statement on the line.
//
// A bare binding is returned as is. For a brace list the first entry is used;
// "a as b" yields the local name b. Any other shape reports false.
func ExtractImportedName(line string) (string, bool) {
	m := reImportBinding.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	binding := m[1]
	if !strings.HasPrefix(binding, "{") {
		return binding, true
	}

	inner := strings.Trim(binding, "{} \t")
	first := strings.TrimSpace(strings.SplitN(inner, ",", 2)[0])
	first = strings.Trim(first, "{} \t")

	fields := strings.Fields(first)
	if len(fields) == 3 && fields[1] == "as" {
		first = fields[2]
	}

	if !reIdentifier.MatchString(first) {
		return "", false
	}
	return first, true
}

// Usage is the outcome of counting an imported identifier.
type Usage struct {
	OnLine int
	InFile int
	Unused bool
}

// ClassifyUsage counts name on the import line and in the whole file content.
// The name is unused when it never appears in the file, or when every
// occurrence is accounted for by the import line itself.
func ClassifyUsage(name, line, content string) Usage {
	if name == "" {
		return Usage{}
	}

	onLine := CountWord(line, name)
	inFile := CountWord(content, name)

	return Usage{
		OnLine: onLine,
		InFile: inFile,
		Unused: inFile == 0 || inFile <= onLine,
	}
}
