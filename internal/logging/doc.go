// Package logging provides a unified logging interface for the array-sum
// benchmark. It abstracts the underlying zerolog backend so that components
// log through a small Logger interface and tests can capture output.
package logging
