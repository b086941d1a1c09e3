package typedecl

import (
	"strings"
)

// Declaration is the declared type of a destination member as written in source.
// It is one of Single, Union or Intersection; a nil Declaration means the member carries no type at all.
type Declaration interface {
	String() string
	declaration()
}

// Single is a declaration with exactly one named type, e.g. "int".
type Single struct {
	Name string
}

// Union is an ordered list of named types, e.g. "int|null". Order is the order written in source.
type Union struct {
	Names []string
}

// Intersection is an "A&B" declaration. It never resolves to a semantic type.
type Intersection struct {
	Names []string
}

func (Single) declaration()       {}
func (Union) declaration()        {}
func (Intersection) declaration() {}

func (s Single) String() string       { return s.Name }
func (u Union) String() string        { return strings.Join(u.Names, "|") }
func (i Intersection) String() string { return strings.Join(i.Names, "&") }

// Names returns the declared names of d in source order, or nil for a nil declaration.
func Names(d Declaration) []string {
	switch d := d.(type) {
	case Single:
		return []string{d.Name}
	case Union:
		return append([]string(nil), d.Names...)
	case Intersection:
		return append([]string(nil), d.Names...)
	default:
		return nil
	}
}

// Nullable returns d extended with a trailing "null" member, unless it already allows null.
func Nullable(d Declaration) Declaration {
	names := Names(d)
	if len(names) == 0 {
		return nil
	}

	if _, ok := d.(Intersection); ok {
		// DNF form: the intersection becomes a single opaque union member
		return Union{Names: []string{"(" + d.String() + ")", "null"}}
	}

	for _, name := range names {
		if name == "null" || name == "mixed" {
			return d
		}
	}

	return Union{Names: append(names, "null")}
}
