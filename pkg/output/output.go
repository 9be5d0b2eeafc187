package output

import (
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"

	errRed   = "\033[31m"
	errReset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, reset = "", "", ""
	}
	if !supportscolor.Stderr().SupportsColor {
		errRed, errReset = "", ""
	}
}

// Progressf writes a progress line.
func Progressf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

// Errorf writes an error line, in red when the terminal supports it.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s%s%s\n", errRed, fmt.Sprintf(format, args...), errReset)
}

// PrintStatus reports how a child process terminated. exitCode is only
// meaningful when exited is true.
func PrintStatus(w io.Writer, exited bool, exitCode int) {
	switch {
	case exited && exitCode == 0:
		fmt.Fprintf(w, "\n%sChild process exited with code %d%s\n", green, exitCode, reset)
	case exited:
		fmt.Fprintf(w, "\n%sChild process exited with code %d%s\n", red, exitCode, reset)
	default:
		fmt.Fprintf(w, "\n%sChild process exited with error%s\n", red, reset)
	}
}
