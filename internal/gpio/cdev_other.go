//go:build !linux

package gpio

import (
	"errors"
	"fmt"
)

// OpenLine is only available on Linux.
func OpenLine(chip string, offset int, dir Direction) (Pin, error) {
	return nil, fmt.Errorf("%s:%d: %w", chip, offset, errors.ErrUnsupported)
}
