// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to find the named types
// a classifier must know about, and the members of the structs records are mapped into.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (enum/date/struct) and, for structs, the mapped members
//   - TypeGraph: all analyzed types; Registry() turns it into a registry.Static
//
// A type is an enum when its underlying type is an integer or a string and its package
// declares at least one constant of that type. A type is a date when it, or a pointer
// to it, implements the date-time capability (Format(string) string and Unix() int64).
// Named types referenced by struct fields are analyzed too, wherever they are declared.
package analyze
