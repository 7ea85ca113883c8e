package ies

import (
	"embed"
	"io/fs"
	"path/filepath"
)

//go:embed default/*.ies
var contents embed.FS

// List returns the embedded sample .ies file names, e.g. "default/minimal.ies"
func List() []string {
	result := make([]string, 0)
	_ = fs.WalkDir(contents, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".ies" {
			result = append(result, path)
		}
		return nil
	})
	return result
}

// Open opens an embedded sample by a name returned from List
func Open(name string) (fs.File, error) {
	return contents.Open(name)
}
