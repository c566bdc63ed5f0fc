package version

import "runtime/debug"

// String returns the module version stamped into the binary, or "(devel)"
// for source builds.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	return "(devel)"
}
