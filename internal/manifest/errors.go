package manifest

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a manifest could not be loaded.
type ErrorKind int

const (
	// FileUnavailable means the file could not be opened or read.
	FileUnavailable ErrorKind = iota + 1
	// SyntaxInvalid means the bytes are not valid TOML.
	SyntaxInvalid
	// ShapeInvalid means the document parsed but a required key is missing
	// or a value has the wrong kind.
	ShapeInvalid
)

func (k ErrorKind) String() string {
	switch k {
	case FileUnavailable:
		return "file unavailable"
	case SyntaxInvalid:
		return "syntax invalid"
	case ShapeInvalid:
		return "shape invalid"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// LoadError is returned by Load and Decode. Err is the low-level cause.
type LoadError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	var prefix string
	switch e.Kind {
	case FileUnavailable:
		prefix = "Failed to read " + e.Path
	case SyntaxInvalid:
		prefix = "Failed to parse " + e.Path
	default:
		prefix = "Failed to decode " + e.Path
	}
	if e.Err == nil {
		return prefix
	}
	return prefix + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsKind reports whether err wraps a LoadError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Kind == kind
}
