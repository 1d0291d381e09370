// Package report renders search results for the terminal (text) and for
// machines (JSON, YAML).
//
// Text output groups matches by file. A file with one match is headed by a
// jumpable "path#line" location; a file with several matches is headed by
// "path:" and lists each line number. A closing summary reads
// "N files - M results".
package report
