// Package registry answers the questions the classifier cannot answer from the declared name alone:
// does a name denote an enumeration type, and does it denote the date-time capability or an
// implementation of it.
//
// Implementations must be safe for concurrent use and must never report a name as
// unknown once they have reported it as known.
package registry

import (
	"reflect"
	"time"
)

// DateTimeInterface is the default name under which the date-time capability itself is declared.
const DateTimeInterface = "DateTimeInterface"

// TypeRegistry is the read-only view of declared types queried during classification.
type TypeRegistry interface {
	// IsEnum reports whether name denotes an existing enumeration type.
	IsEnum(name string) bool
	// IsDate reports whether name denotes the date-time capability or a type implementing it.
	IsDate(name string) bool
}

// DateTime is the date-time capability: a value representing a point in time.
// time.Time and any type embedding it satisfy it.
type DateTime interface {
	Format(layout string) string
	Unix() int64
}

var (
	_ DateTime = time.Time{}

	dateTimeType = reflect.TypeFor[DateTime]()
)

// ImplementsDateTime reports whether rtype, or a pointer to it, implements DateTime.
func ImplementsDateTime(rtype reflect.Type) bool {
	if rtype == nil {
		return false
	}

	if rtype.Implements(dateTimeType) {
		return true
	}

	return rtype.Kind() != reflect.Interface && reflect.PointerTo(rtype).Implements(dateTimeType)
}

// Chain combines registries: a name is known if any of them knows it.
type Chain []TypeRegistry

func (c Chain) IsEnum(name string) bool {
	for _, r := range c {
		if r != nil && r.IsEnum(name) {
			return true
		}
	}

	return false
}

func (c Chain) IsDate(name string) bool {
	for _, r := range c {
		if r != nil && r.IsDate(name) {
			return true
		}
	}

	return false
}
