package executor

import (
	"fmt"
	"strings"
)

// disallowed options collide with the flags Args sets for every transfer.
var disallowed = []string{
	"-w", "--write-out",
	"-D", "--dump-header",
	"-o", "--output",
	"-s", "--silent",
}

type DisallowedOptionError struct {
	Option string
}

func (e *DisallowedOptionError) Error() string {
	return fmt.Sprintf("%s is not allowed in extra curl args", e.Option)
}

// ValidateArgs rejects passthrough curl arguments that would break output
// capture.
func ValidateArgs(args []string) error {
	for _, arg := range args {
		name := arg
		if strings.HasPrefix(arg, "--") {
			name, _, _ = strings.Cut(arg, "=")
		}
		for _, opt := range disallowed {
			if name == opt {
				return &DisallowedOptionError{Option: opt}
			}
		}
	}
	return nil
}
