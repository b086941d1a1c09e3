package config

import (
	"csv-serializer/registry"
	"csv-serializer/typedecl"
)

// File represents the root of a YAML type-check definition file.
type File struct {
	// Version of the schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Registry lists enum and date type names known without source analysis.
	Registry registry.StaticConfig `yaml:"registry,omitempty"`

	// Packages are Go package patterns to analyze for enums, dates and structs.
	Packages []string `yaml:"packages,omitempty"`

	// Types restricts the analyzed structs that are checked (e.g. "records.Order"); empty checks all of them.
	Types []string `yaml:"types,omitempty"`

	// Members are destination members declared by hand.
	Members []MemberSpec `yaml:"members,omitempty"`
}

// MemberSpec declares one destination member.
type MemberSpec struct {
	// Owner is a free-form label of the record or class the member belongs to.
	Owner string `yaml:"owner,omitempty"`

	// Name of the property or parameter.
	Name string `yaml:"name"`

	// Target is "property" (default) or "parameter".
	Target string `yaml:"target,omitempty"`

	// Type is the declared type: "int|null", [int, null], or omitted when the member is untyped.
	Type Declaration `yaml:"type,omitempty"`
}

// Member converts the entry into a typedecl.Member.
// The target is assumed valid, which Parse guarantees.
func (m MemberSpec) Member() typedecl.Member {
	target, _ := typedecl.ParseTarget(m.Target)

	return typedecl.Member{Target: target, Name: m.Name, Type: m.Type.Declaration}
}

// MemberSpecOf is the inverse of MemberSpec.Member.
func MemberSpecOf(owner string, m typedecl.Member) MemberSpec {
	return MemberSpec{
		Owner:  owner,
		Name:   m.Name,
		Target: m.Target.String(),
		Type:   Declaration{m.Type},
	}
}

// Declaration wraps a typedecl.Declaration for YAML.
// YAML formats supported:
//   - String: "int|null"
//   - Array: [int, null] (one element is a single declaration)
//   - Omitted or null: no declaration
type Declaration struct {
	typedecl.Declaration
}

// IsZero reports whether no declaration is set, so that omitempty drops it.
func (d Declaration) IsZero() bool {
	return d.Declaration == nil
}
