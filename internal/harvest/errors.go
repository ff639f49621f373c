package harvest

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDestinationExists reports a harvest destination that is already
	// occupied; nothing under it is modified.
	ErrDestinationExists = errors.New("destination already exists")
	// ErrOutputCollision reports an extraction or rename target blocked by
	// a pre-existing file.
	ErrOutputCollision = errors.New("output collision")
	// ErrPermission reports a destination the process may not write into.
	ErrPermission = errors.New("permission denied")
	// ErrLocked reports that another conversion holds the conversion lock.
	ErrLocked = errors.New("another conversion is already running")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above or a wacz sentinel.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "conversion failure"
	}
	return strings.Join(parts, ": ")
}
