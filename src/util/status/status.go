// Package status prints operation feedback as "[label] message" lines on a
// side writer, keeping payload streams on stdout byte-clean.
package status

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var labelColor = color.New(color.FgCyan)

// Stepf writes one status line to out. A nil out discards the line, so
// callers can thread the writer through unconditionally.
func Stepf(out io.Writer, label, format string, args ...any) {
	if out == nil {
		return
	}
	fmt.Fprintf(out, "[%s] %s\n", labelColor.Sprint(label), fmt.Sprintf(format, args...))
}
