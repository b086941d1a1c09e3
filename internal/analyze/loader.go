package analyze

import (
	"fmt"
	"go/token"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"

	"csv-serializer/typedecl"
)

// LoadMode specifies what information to load from packages.
// Dependencies are loaded in full: enum detection scans the declaring package's scope
// for typed constants, which shallow export data of an imported package leaves out.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports |
	packages.NeedDeps

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph    *TypeGraph
	dateTime *types.Interface
	dir      string
}

// NewAnalyzer creates a new Analyzer. Relative patterns are resolved against dir; empty means the working directory.
func NewAnalyzer(dir string) *Analyzer {
	return &Analyzer{
		graph:    NewTypeGraph(),
		dateTime: dateTimeInterface(),
		dir:      dir,
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./records", "example.com/app/...").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Register packages first so that references between them are not treated as external
	for _, pkg := range pkgs {
		a.graph.Packages[pkg.PkgPath] = &PackageInfo{Path: pkg.PkgPath, Name: pkg.Name}
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg.Types)
	}

	return a.graph, nil
}

// processPackage extracts the exported named types of a loaded package.
func (a *Analyzer) processPackage(pkg *types.Package) {
	pkgInfo := a.graph.Packages[pkg.Path()]

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		info := a.analyzeNamed(typeName)
		if info == nil {
			continue
		}

		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}
}

// analyzeNamed classifies a named type once and caches it in the graph.
func (a *Analyzer) analyzeNamed(obj *types.TypeName) *TypeInfo {
	if obj.Pkg() == nil {
		return nil // universe types (error, comparable)
	}

	id := TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
	if cached, ok := a.graph.Types[id]; ok {
		return cached
	}

	_, declared := a.graph.Packages[id.PkgPath]
	info := &TypeInfo{
		ID:       id,
		GoType:   obj.Type(),
		External: !declared,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.graph.Types[id] = info

	switch {
	case a.isEnum(obj):
		info.Kind = TypeKindEnum
	case a.isDate(obj.Type()):
		info.Kind = TypeKindDate
	default:
		if st, ok := obj.Type().Underlying().(*types.Struct); ok && declared {
			info.Kind = TypeKindStruct
			info.Members = a.structMembers(st)
		}
	}

	if info.Kind == TypeKindUnknown && info.External {
		// referenced types that mean nothing to the classifier are not kept
		delete(a.graph.Types, id)
		return nil
	}

	return info
}

// isEnum reports whether obj is an integer or string type with at least one constant of that type in its package.
func (a *Analyzer) isEnum(obj *types.TypeName) bool {
	basic, ok := obj.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&(types.IsInteger|types.IsString) == 0 {
		return false
	}

	scope := obj.Pkg().Scope()
	for _, name := range scope.Names() {
		if c, ok := scope.Lookup(name).(*types.Const); ok && types.Identical(c.Type(), obj.Type()) {
			return true
		}
	}

	return false
}

func (a *Analyzer) isDate(t types.Type) bool {
	if types.Implements(t, a.dateTime) {
		return true
	}

	if types.IsInterface(t) {
		return false
	}

	return types.Implements(types.NewPointer(t), a.dateTime)
}

// structMembers extracts the exported fields of a struct as property members.
func (a *Analyzer) structMembers(st *types.Struct) []typedecl.Member {
	var res []typedecl.Member

	for i := range st.NumFields() {
		field := st.Field(i)

		// Only process exported fields
		if !field.Exported() {
			continue
		}

		tag := typedecl.ParseFieldTag(reflect.StructTag(st.Tag(i)).Get(typedecl.TagKey))
		if tag.Skip {
			continue
		}

		name := field.Name()
		if tag.Name != "" {
			name = tag.Name
		}

		res = append(res, typedecl.Property(name, tag.Declaration(a.declarationOf(field.Type()))))
	}

	return res
}

// declarationOf mirrors typedecl.FromGoType for go/types types.
// Named types met on the way are analyzed so that referenced enums and dates end up in the graph.
func (a *Analyzer) declarationOf(t types.Type) typedecl.Declaration {
	t = types.Unalias(t)

	if ptr, ok := t.(*types.Pointer); ok {
		return typedecl.Nullable(a.declarationOf(ptr.Elem()))
	}

	if sig, ok := t.Underlying().(*types.Signature); ok && isIterSignature(sig) {
		return typedecl.Single{Name: "iterable"}
	}

	if named, ok := t.(*types.Named); ok && named.Obj().Pkg() != nil {
		a.analyzeNamed(named.Obj())
		return typedecl.Single{Name: typedecl.QualifiedName(named.Obj().Pkg().Path(), named.Obj().Name())}
	}

	switch tt := t.Underlying().(type) {
	case *types.Basic:
		switch info := tt.Info(); {
		case info&types.IsBoolean != 0:
			return typedecl.Single{Name: "bool"}
		case info&types.IsInteger != 0:
			return typedecl.Single{Name: "int"}
		case info&types.IsFloat != 0:
			return typedecl.Single{Name: "float"}
		case info&types.IsString != 0:
			return typedecl.Single{Name: "string"}
		}
	case *types.Slice, *types.Array, *types.Map:
		return typedecl.Single{Name: "array"}
	case *types.Chan:
		return typedecl.Single{Name: "iterable"}
	case *types.Interface:
		if tt.Empty() {
			return typedecl.Single{Name: "mixed"}
		}
	}

	return typedecl.Single{Name: types.TypeString(t, nil)}
}

// isIterSignature reports whether sig has the shape of iter.Seq or iter.Seq2.
func isIterSignature(sig *types.Signature) bool {
	if sig.Params().Len() != 1 || sig.Results().Len() != 0 {
		return false
	}

	yield, ok := sig.Params().At(0).Type().Underlying().(*types.Signature)
	if !ok || yield.Results().Len() != 1 {
		return false
	}

	result, ok := yield.Results().At(0).Type().Underlying().(*types.Basic)

	return ok && result.Kind() == types.Bool && yield.Params().Len() >= 1 && yield.Params().Len() <= 2
}

// dateTimeInterface builds the go/types equivalent of registry.DateTime.
func dateTimeInterface() *types.Interface {
	str := types.Typ[types.String]
	i64 := types.Typ[types.Int64]

	format := types.NewFunc(token.NoPos, nil, "Format", types.NewSignatureType(nil, nil, nil,
		types.NewTuple(types.NewVar(token.NoPos, nil, "layout", str)),
		types.NewTuple(types.NewVar(token.NoPos, nil, "", str)),
		false))
	unix := types.NewFunc(token.NoPos, nil, "Unix", types.NewSignatureType(nil, nil, nil,
		nil,
		types.NewTuple(types.NewVar(token.NoPos, nil, "", i64)),
		false))

	iface := types.NewInterfaceType([]*types.Func{format, unix}, nil)
	iface.Complete()

	return iface
}
