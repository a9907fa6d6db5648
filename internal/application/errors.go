package application

import (
	"errors"
	"fmt"
)

// ErrLaunchFailed matches every LaunchError via errors.Is
var ErrLaunchFailed = errors.New("launch failed")

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LaunchError reports that the editor could not be started in Dir.
// Err carries the underlying cause (missing executable, permission
// denied, invalid directory, ...).
type LaunchError struct {
	Editor string
	Dir    string
	Err    error
}

func (e *LaunchError) Error() string {
	if e.Dir == "" {
		return fmt.Sprintf("could not invoke editor %q: %v", e.Editor, e.Err)
	}
	return fmt.Sprintf("could not invoke editor %q in %s: %v", e.Editor, e.Dir, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunchFailed
}
