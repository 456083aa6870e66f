package bundle

import (
	"embed"
	"io/fs"
)

// Default string tables shipped with the tool. Loaded at compile time via
// go:embed.
//
//go:embed data
var dataFS embed.FS

// Embedded returns the bundle compiled into the binary. It is used when no
// --bundle path is given.
func Embedded() Bundle {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		// The data directory is part of the binary; this cannot fail at
		// runtime for a correctly built release.
		panic(err)
	}
	b, err := New(sub)
	if err != nil {
		panic(err)
	}
	return b
}
