// Package report assembles the textual report of a run and persists it.
//
// The rendered text is the single artifact of a run: it is printed once to
// standard output and, when persistence applies, written byte for byte to a
// file.
package report
