package typedecl

import (
	"fmt"
	"reflect"
	"strings"

	"csv-serializer/internal/common"
)

// TagKey is the struct tag inspected by StructMembers.
const TagKey = "csv"

// Target tells whether a member is a property or a setter/constructor parameter.
type Target int

const (
	TargetProperty Target = iota
	TargetParameter
)

// String returns a human-readable representation of the Target.
func (t Target) String() string {
	switch t {
	case TargetProperty:
		return "property"
	case TargetParameter:
		return "parameter"
	default:
		return common.UnknownStr
	}
}

// ParseTarget parses "property" or "parameter". An empty string defaults to property.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "property":
		return TargetProperty, nil
	case "parameter", "argument":
		return TargetParameter, nil
	default:
		return 0, fmt.Errorf("unknown member target %q (expected 'property' or 'parameter')", s)
	}
}

// Member is a destination member of a mapped record: its name, what it is, and its declared type.
type Member struct {
	Target Target
	Name   string
	Type   Declaration // nil when the member carries no type
}

// Property returns a property member.
func Property(name string, decl Declaration) Member {
	return Member{Target: TargetProperty, Name: name, Type: decl}
}

// Parameter returns a parameter member.
func Parameter(name string, decl Declaration) Member {
	return Member{Target: TargetParameter, Name: name, Type: decl}
}

// IsTyped returns true if the member carries a type declaration.
func (m Member) IsTyped() bool {
	return m.Type != nil
}

func (m Member) String() string {
	if m.Type == nil {
		return m.Target.String() + " " + m.Name
	}

	return m.Target.String() + " " + m.Name + " " + m.Type.String()
}

// FieldTag is the parsed form of a `csv:"name,type=int|null"` struct tag.
type FieldTag struct {
	Name    string // column name, empty to use the field name
	Type    string // declaration override, "-" to mark the field untyped
	HasType bool
	Skip    bool // tag is "-"
}

// ParseFieldTag parses the value of the csv struct tag.
func ParseFieldTag(tag string) FieldTag {
	if tag == "-" {
		return FieldTag{Skip: true}
	}

	name, rest, _ := strings.Cut(tag, ",")
	res := FieldTag{Name: strings.TrimSpace(name)}

	for _, opt := range strings.Split(rest, ",") {
		if value, ok := strings.CutPrefix(strings.TrimSpace(opt), "type="); ok {
			res.Type = strings.TrimSpace(value)
			res.HasType = true
		}
	}

	return res
}

// Declaration returns the declaration the tag imposes, or fallback when the tag has no type option.
func (f FieldTag) Declaration(fallback Declaration) Declaration {
	switch {
	case !f.HasType:
		return fallback
	case f.Type == "-":
		return nil
	default:
		return Parse(f.Type)
	}
}

// StructMembers lists the exported fields of a struct type (or pointer to struct) as property members.
// Fields tagged `csv:"-"` are skipped.
func StructMembers(rtype reflect.Type) []Member {
	for rtype != nil && rtype.Kind() == reflect.Pointer {
		rtype = rtype.Elem()
	}

	if rtype == nil || rtype.Kind() != reflect.Struct {
		return nil
	}

	var res []Member
	for i := range rtype.NumField() {
		field := rtype.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := ParseFieldTag(field.Tag.Get(TagKey))
		if tag.Skip {
			continue
		}

		name := field.Name
		if tag.Name != "" {
			name = tag.Name
		}

		res = append(res, Property(name, tag.Declaration(FromGoType(field.Type))))
	}

	return res
}
