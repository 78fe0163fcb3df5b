package apperrors

import (
	"fmt"
	"io"
)

// HandleError prints a user-facing description of err and returns the
// matching exit code. A nil error prints nothing and returns ExitSuccess.
func HandleError(err error, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}
	code := ExitCode(err)
	switch code {
	case ExitErrorCanceled:
		fmt.Fprintln(out, "Status: Canceled by user.")
	case ExitErrorConfig:
		fmt.Fprintf(out, "Configuration error: %v\n", err)
	default:
		fmt.Fprintf(out, "Status: Failure. %v\n", err)
	}
	return code
}
