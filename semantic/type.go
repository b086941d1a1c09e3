package semantic

import "slices"

//go:generate go tool stringer -type=Type -output=type_string.go

// Type is the closed set of semantic types a declared member type can be cast to.
type Type int

const (
	_ Type = iota // skip zero value, use it as a default (invalid) value for Type

	TypeBool
	TypeTrue
	TypeFalse
	TypeNull
	TypeInt
	TypeFloat
	TypeString
	TypeMixed
	TypeArray
	TypeIterable
	TypeEnum
	TypeDate

	// TypeTotal is a constant that represents the total number of types defined
	TypeTotal = int(iota)
)

// names are the lowercase tag values, indexed by Type.
var names = [TypeTotal]string{
	TypeBool:     "bool",
	TypeTrue:     "true",
	TypeFalse:    "false",
	TypeNull:     "null",
	TypeInt:      "int",
	TypeFloat:    "float",
	TypeString:   "string",
	TypeMixed:    "mixed",
	TypeArray:    "array",
	TypeIterable: "iterable",
	TypeEnum:     "enum",
	TypeDate:     "date",
}

// keywords maps the canonical declared keywords to their type.
// "enum" and "date" are not keywords: they are only reached through the registry.
var keywords = map[string]Type{
	"bool":     TypeBool,
	"true":     TypeTrue,
	"false":    TypeFalse,
	"null":     TypeNull,
	"int":      TypeInt,
	"float":    TypeFloat,
	"string":   TypeString,
	"mixed":    TypeMixed,
	"array":    TypeArray,
	"iterable": TypeIterable,
}

// FromKeyword returns the type denoted by a canonical keyword. The match is exact and case-sensitive.
func FromKeyword(name string) (Type, bool) {
	t, ok := keywords[name]
	return t, ok
}

// Keywords returns the canonical keywords in taxonomy order.
func Keywords() []string {
	res := make([]string, 0, len(keywords))
	for _, t := range All() {
		if _, ok := keywords[t.Name()]; ok {
			res = append(res, t.Name())
		}
	}

	return res
}

// All returns every valid type in declaration order.
func All() []Type {
	res := make([]Type, 0, TypeTotal-1)
	for t := Type(1); int(t) < TypeTotal; t++ {
		res = append(res, t)
	}

	return res
}

func (t Type) IsValid() bool {
	return t > 0 && int(t) < TypeTotal
}

// Name returns the lowercase tag value, e.g. "int" or "date".
func (t Type) Name() string {
	if !t.IsValid() {
		return ""
	}

	return names[t]
}

func (t Type) Equals(other Type) bool {
	return t.IsValid() && t == other
}

func (t Type) IsOneOf(candidates ...Type) bool {
	return t.IsValid() && slices.Contains(candidates, t)
}

func (t Type) IsScalar() bool {
	switch t {
	default:
		return false
	case TypeBool, TypeTrue, TypeFalse, TypeInt, TypeFloat, TypeString:
		return true
	}
}

// FilterFlag returns the validation directive a caster must apply for this type.
func (t Type) FilterFlag() Filter {
	switch t {
	default:
		return FilterUnsafeRaw
	case TypeBool, TypeTrue, TypeFalse:
		return FilterValidateBool
	case TypeInt:
		return FilterValidateInt
	case TypeFloat:
		return FilterValidateFloat
	}
}
