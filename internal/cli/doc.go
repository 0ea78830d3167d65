// Package cli resolves command-line tokens into an app.Config. Flags are
// matched by a small alias-based commander; any of the start, column and
// month-num values missing from the command line is asked for on the
// injected input stream.
package cli
