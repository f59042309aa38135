package school

import (
	"embed"
	"io/fs"
)

//go:embed schools/*
var embeddedSchools embed.FS

// EmbeddedFS returns the bundled school configurations.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedSchools, "schools")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadEmbedded loads the bundled school configurations.
func LoadEmbedded(opts ...LoadOption) (*Store, error) {
	return LoadFS(EmbeddedFS(), opts...)
}
