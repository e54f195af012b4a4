package safety

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Options carries the global destructive-action flags.
type Options struct {
	DryRun bool
	Yes    bool
}

// Confirm prompts before a destructive action.
// - If opts.DryRun is true, it returns false with no error; the caller
//   prints the plan and takes no action.
// - If opts.Yes is true, it returns true without prompting.
// The caller decides what to do with the result.
func Confirm(opts Options, in io.Reader, out io.Writer, question string) (bool, error) {
	if opts.DryRun {
		return false, nil
	}
	if opts.Yes {
		return true, nil
	}
	if out != nil {
		fmt.Fprintf(out, "%s [y/N]: ", strings.TrimSpace(question))
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	ans := strings.TrimSpace(strings.ToLower(line))
	return ans == "y" || ans == "yes", nil
}
