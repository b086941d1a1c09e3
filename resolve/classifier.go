// Package resolve decides which semantic type governs the casting of a destination member.
//
// Classification of a single declared name runs in a fixed order:
//  1. the canonical keywords (bool, true, false, null, int, float, string, mixed, array, iterable);
//  2. enumeration types known to the registry;
//  3. the date-time capability and its implementations known to the registry.
//
// Anything else is not supported and yields no result. Union declarations are resolved
// member by member in source order, keeping only the recognized members; Pick stops
// at the first recognized member.
package resolve

import (
	"log/slog"

	"csv-serializer/registry"
	"csv-serializer/semantic"
	"csv-serializer/typedecl"
)

// Classification pairs a semantic type with the declared name it was derived from,
// so a caster can later tell which enum or date type to instantiate.
type Classification struct {
	Type     semantic.Type
	Declared string
}

// Classifier resolves declarations against a type registry.
// It is immutable and safe for concurrent use.
type Classifier struct {
	registry registry.TypeRegistry
	logger   *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets the logger used for debug traces of dropped members.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Classifier. A nil registry knows no enum or date types.
func New(reg registry.TypeRegistry, opts ...Option) *Classifier {
	if reg == nil {
		reg = registry.Chain{}
	}

	c := &Classifier{
		registry: reg,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.With("component", "resolve")

	return c
}

// Classify maps one declared name to its semantic type.
func (c *Classifier) Classify(name string) (semantic.Type, bool) {
	if t, ok := semantic.FromKeyword(name); ok {
		return t, true
	}

	// enum detection must run before date detection
	if c.registry.IsEnum(name) {
		return semantic.TypeEnum, true
	}

	if c.registry.IsDate(name) {
		return semantic.TypeDate, true
	}

	return 0, false
}

// Resolve classifies every member of decl in declaration order, dropping unrecognized ones.
func (c *Classifier) Resolve(decl typedecl.Declaration) []Classification {
	switch decl := decl.(type) {
	case typedecl.Single:
		if t, ok := c.Classify(decl.Name); ok {
			return []Classification{{Type: t, Declared: decl.Name}}
		}

		return []Classification{}

	case typedecl.Union:
		res := make([]Classification, 0, len(decl.Names))
		for _, name := range decl.Names {
			t, ok := c.Classify(name)
			if !ok {
				c.logger.Debug("dropping unrecognized union member", "member", name, "declaration", decl.String())
				continue
			}

			res = append(res, Classification{Type: t, Declared: name})
		}

		return res

	default:
		return []Classification{}
	}
}

// Pick returns the semantic type of the first recognized member of decl.
// Members after it are never classified.
func (c *Classifier) Pick(decl typedecl.Declaration) (semantic.Type, bool) {
	switch decl := decl.(type) {
	case typedecl.Single:
		return c.Classify(decl.Name)

	case typedecl.Union:
		for _, name := range decl.Names {
			if t, ok := c.Classify(name); ok {
				return t, true
			}
		}

		return 0, false

	default:
		return 0, false
	}
}

// List is the member-level entry point of Resolve.
// It fails with a *MappingFailedError when the member carries no type.
func (c *Classifier) List(member typedecl.Member) ([]Classification, error) {
	if !member.IsTyped() {
		c.logger.Debug("member has no type declaration", "target", member.Target.String(), "member", member.Name)
		return nil, missingDeclaration(member)
	}

	return c.Resolve(member.Type), nil
}

// PickMember is the member-level entry point of Pick.
func (c *Classifier) PickMember(member typedecl.Member) (semantic.Type, bool, error) {
	if !member.IsTyped() {
		c.logger.Debug("member has no type declaration", "target", member.Target.String(), "member", member.Name)
		return 0, false, missingDeclaration(member)
	}

	t, ok := c.Pick(member.Type)

	return t, ok, nil
}
