package logger

import (
	"errors"
	"fmt"
)

// ErrAlreadyInitialized is returned by the Init functions when a
// dispatcher has already been installed in this process. The install
// is permanent; there is no runtime reconfiguration.
var ErrAlreadyInitialized = errors.New("logger already initialized")

// FileOpenError reports that the log file supplied to an Init function
// or constructor could not be opened in append mode.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("open log file %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}
