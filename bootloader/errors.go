package bootloader

import (
	"errors"
	"fmt"
)

// What went wrong while padding an image. There are only two cases the user needs
// to tell apart.
type PadErrorKind int

const (
	FileNotFound PadErrorKind = iota
	IOFailure
)

func (k PadErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "file not found"
	case IOFailure:
		return "io failure"
	}
	return fmt.Sprintf("PadErrorKind(%d)", int(k))
}

var (
	ErrFileNotFound = errors.New("file not found")
	ErrIOFailure    = errors.New("io failure")
)

// PadError is returned by PadFile for any failure. The original os error is kept
// and reachable through errors.As / errors.Unwrap.
type PadError struct {
	Kind PadErrorKind
	Path string
	Err  error
}

func (e *PadError) Error() string {
	if e.Kind == FileNotFound {
		return fmt.Sprintf("file not found at '%s'", e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *PadError) Unwrap() error {
	return e.Err
}

// Lets errors.Is match against the kind sentinels as well as the wrapped error
func (e *PadError) Is(target error) bool {
	switch target {
	case ErrFileNotFound:
		return e.Kind == FileNotFound
	case ErrIOFailure:
		return e.Kind == IOFailure
	}
	return false
}
