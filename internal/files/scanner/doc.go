// Package scanner detects references to a search target inside one file.
//
// The scanner package is responsible for:
//   - Short-circuiting files whose content never mentions the target
//   - Testing every line against the reference rules of the active match mode
//   - Extracting the identifier bound by "import <binding> from" statements
//   - Classifying each extracted identifier as used or unused in the file
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
