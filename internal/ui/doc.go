// Package ui provides theme and color support for the command's messages.
// It defines color schemes and ANSI escape code accessors so that the
// confirmation lines printed around the report are styled consistently.
//
// The report itself is never colored: its bytes must match the persisted file.
package ui
