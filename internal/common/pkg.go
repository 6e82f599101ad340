package common

import "path"

// PkgAlias returns the default package alias (last element of the import
// path) for a given package path. Injected qualified references use this
// alias, matching how the compiler names an unaliased import.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
