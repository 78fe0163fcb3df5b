// Package ui provides theme and color support for the command-line output.
// It defines color schemes and ANSI helpers so that presentation code can
// color text without deciding whether colors are enabled.
package ui
