package resolve

import (
	"errors"

	"csv-serializer/typedecl"
)

// ErrMappingFailed is matched by every MappingFailedError.
var ErrMappingFailed = errors.New("mapping failed")

// MappingFailedError is returned when a destination member carries no type declaration.
type MappingFailedError struct {
	Target typedecl.Target
	Name   string
}

func (e *MappingFailedError) Error() string {
	if e.Target == typedecl.TargetParameter {
		return "The setter method argument `" + e.Name + "` must be typed."
	}

	return "The property `" + e.Name + "` must be typed."
}

func (e *MappingFailedError) Is(target error) bool {
	return target == ErrMappingFailed
}

func missingDeclaration(m typedecl.Member) error {
	return &MappingFailedError{Target: m.Target, Name: m.Name}
}
