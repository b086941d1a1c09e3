package typedecl

import (
	"reflect"
)

// QualifiedName returns "pkgpath.Name" for a defined type, or the bare name for predeclared ones.
func QualifiedName(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}

	return pkgPath + "." + name
}

// FromGoType derives the declaration a caster sees for a Go type.
// Defined types declared in a package keep their qualified name so the registry can
// tell enums and dates apart; builtin kinds map to the canonical keywords.
func FromGoType(rtype reflect.Type) Declaration {
	if rtype == nil {
		return nil
	}

	if rtype.Kind() == reflect.Pointer {
		return Nullable(FromGoType(rtype.Elem()))
	}

	if rtype.Kind() == reflect.Func && isIterSeq(rtype) {
		return Single{Name: "iterable"}
	}

	if rtype.Name() != "" && rtype.PkgPath() != "" {
		return Single{Name: QualifiedName(rtype.PkgPath(), rtype.Name())}
	}

	switch rtype.Kind() {
	case reflect.Bool:
		return Single{Name: "bool"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Single{Name: "int"}
	case reflect.Float32, reflect.Float64:
		return Single{Name: "float"}
	case reflect.String:
		return Single{Name: "string"}
	case reflect.Slice, reflect.Array, reflect.Map:
		return Single{Name: "array"}
	case reflect.Chan:
		return Single{Name: "iterable"}
	case reflect.Interface:
		if rtype.NumMethod() == 0 {
			return Single{Name: "mixed"}
		}
	}

	return Single{Name: rtype.String()}
}

// isIterSeq reports whether rtype has the shape of iter.Seq or iter.Seq2.
func isIterSeq(rtype reflect.Type) bool {
	if rtype.NumIn() != 1 || rtype.NumOut() != 0 {
		return false
	}

	yield := rtype.In(0)

	return yield.Kind() == reflect.Func &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool &&
		yield.NumIn() >= 1 && yield.NumIn() <= 2
}
