// Package pkgroot locates the enclosing Go module for a directory, so the
// generate command can report which Go module a generated .d.ts tree is
// written into.
package pkgroot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ModulePath returns the Go module path and any subdirectory path for dir,
// by walking up from dir looking for a go.mod file. Returns an error if dir
// or its parent directories do not contain one.
func ModulePath(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", dir)
	}

	var file string
	var subdirs string
	for {
		file = filepath.Join(dir, "go.mod")
		info, err := os.Stat(file)
		if err != nil {
			var rest string
			dir, rest = filepath.Split(dir)
			if dir == "" || rest == "" {
				return "", errors.New("unable to locate a go.mod file")
			}
			dir = filepath.Clean(dir)
			subdirs = path.Join(rest, subdirs)
			continue
		}
		if info.IsDir() {
			return "", fmt.Errorf("unexpected directory: %s", file)
		}
		break
	}

	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("unable to open %s", file)
	}
	mod, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return "", err
	}

	modpath := modfile.ModulePath(mod)
	if modpath == "" {
		return "", fmt.Errorf("no module path in %s", file)
	}
	return path.Join(modpath, subdirs), nil
}
