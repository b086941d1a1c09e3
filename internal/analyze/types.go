package analyze

import (
	"go/types"
	"slices"
	"strings"

	"csv-serializer/internal/common"
	"csv-serializer/registry"
	"csv-serializer/typedecl"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "example.com/app/records"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	return typedecl.QualifiedName(t.PkgPath, t.Name)
}

// TypeKind represents what the classifier can make of a named type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindEnum             // integer or string type with declared constants
	TypeKindDate             // implements the date-time capability
	TypeKindStruct           // struct type whose fields are mapping members
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindEnum:
		return "enum"
	case TypeKindDate:
		return "date"
	case TypeKindStruct:
		return "struct"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a named Go type in the type graph.
type TypeInfo struct {
	ID       TypeID            // Unique identifier
	Kind     TypeKind          // Kind of type
	Members  []typedecl.Member // For structs, the mapped fields
	GoType   types.Type        // The original go/types.Type
	External bool              // True if the type was only referenced, not declared in a loaded package
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// OfKind returns all types of the given kind sorted by their qualified name.
func (g *TypeGraph) OfKind(kind TypeKind) []*TypeInfo {
	var res []*TypeInfo
	for _, t := range g.Types {
		if t.Kind == kind {
			res = append(res, t)
		}
	}

	slices.SortFunc(res, func(a, b *TypeInfo) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return res
}

// Registry builds a static type registry from the enums and dates of the graph.
func (g *TypeGraph) Registry(dateInterface string) *registry.Static {
	cfg := registry.StaticConfig{DateInterface: dateInterface}
	for _, t := range g.OfKind(TypeKindEnum) {
		cfg.Enums = append(cfg.Enums, t.ID.String())
	}

	for _, t := range g.OfKind(TypeKindDate) {
		cfg.Dates = append(cfg.Dates, t.ID.String())
	}

	return registry.NewStatic(cfg)
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
