// Package logging provides the logging interface shared by the digit list
// tools. Components depend on Logger rather than a concrete backend, so the
// same code can log through zerolog in the binary, through a standard
// library logger in tests, or not at all.
package logging
