// Package logging provides a unified logging interface for binomcalc.
// It abstracts the underlying zerolog implementation so that the driver and
// its helpers log diagnostics consistently without depending on a backend.
package logging
