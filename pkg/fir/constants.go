package fir

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Search completed (matches or not)
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration file or flag values
	ExitRootNotFound = 20 // Search root does not exist
	ExitEmptyTarget  = 21 // Search target is empty
)

const (
	// DefaultSearchRoot is the directory searched when none is given.
	// It is resolved against the current working directory.
	DefaultSearchRoot = "./src"

	// DefaultIgnoreFile is the project ignore file read from the working directory.
	DefaultIgnoreFile = ".gitignore"

	// CommentMarker is the single-line comment prefix that disqualifies a line.
	CommentMarker = "//"

	// IgnoreCommentMarker disqualifies an ignore-file line wherever it appears.
	IgnoreCommentMarker = "#"

	// LocationSeparator joins a file path and a line number ("src/a.js#12"),
	// a form most editors accept for jump-to-line.
	LocationSeparator = "#"
)

// BuiltinIgnore lists the names that are always excluded from traversal:
// version-control metadata and build output.
var BuiltinIgnore = []string{".git", "dist", "node_modules"}
