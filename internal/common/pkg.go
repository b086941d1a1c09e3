package common

import (
	"path"
	"strings"
)

// UnknownStr is the String() value of enum values outside their defined range.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SplitQualified splits "pkg/path.Name" into its package path and type name.
// Names without a dot are returned with an empty package path.
func SplitQualified(qualified string) (pkgPath, name string) {
	lastDot := strings.LastIndex(qualified, ".")
	if lastDot < 0 {
		return "", qualified
	}

	return qualified[:lastDot], qualified[lastDot+1:]
}

// ShortName returns "alias.Name" for "pkg/path/alias.Name", or the input when it has no package.
func ShortName(qualified string) string {
	pkgPath, name := SplitQualified(qualified)
	if pkgPath == "" {
		return name
	}

	return PkgAlias(pkgPath) + "." + name
}
