// SPDX-License-Identifier: MIT

package fileio

import (
	"errors"
	"fmt"
)

// ErrParse indicates malformed matrix or vector text.
var ErrParse = errors.New("fileio: parse error")

// parseErrorf wraps ErrParse with a line number and detail.
func parseErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", line, ErrParse, fmt.Sprintf(format, args...))
}
