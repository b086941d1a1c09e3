package analyze

import (
	"strings"
)

// FindType resolves a type ID string like:
// - "records.Order" (short)
// - "example.com/app/records.Order" (full)
// - "Order" (name only).
func FindType(typeIDStr string, graph *TypeGraph) *TypeInfo {
	if graph == nil {
		return nil
	}

	// Name-only: best-effort match by type name, declared types first.
	if !strings.Contains(typeIDStr, ".") {
		name := typeIDStr
		if name == "" {
			return nil
		}

		var external *TypeInfo
		for id, t := range graph.Types {
			if id.Name != name {
				continue
			}
			if !t.External {
				return t
			}
			external = t
		}

		return external
	}

	lastDot := strings.LastIndex(typeIDStr, ".")

	pkgStr := typeIDStr[:lastDot]

	name := typeIDStr[lastDot+1:]
	if pkgStr == "" || name == "" {
		return nil
	}

	// 1) exact match (for fully qualified import path)
	if t := graph.GetType(TypeID{PkgPath: pkgStr, Name: name}); t != nil {
		return t
	}

	// 2) suffix match (for short forms like "records.Order" vs "example.com/app/records.Order")
	for id, t := range graph.Types {
		if id.Name != name {
			continue
		}

		if strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			return t
		}
	}

	return nil
}
