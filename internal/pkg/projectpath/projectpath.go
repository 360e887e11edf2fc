package projectpath

import (
	"path/filepath"
	"runtime"
)

var (
	_, b, _, _ = runtime.Caller(0)

	// Root is the repository root, resolved from this file's location so it
	// is stable regardless of the process working directory.
	Root = filepath.Join(filepath.Dir(b), "../../..")
)
