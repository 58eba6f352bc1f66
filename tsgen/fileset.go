package tsgen

import (
	"bytes"
	"fmt"

	"github.com/wasmcomponents/wit-ts-stub/wit/ordered"
)

// OutputFile is a single emitted TypeScript declaration file: a logical,
// forward-slash path and its UTF-8 content.
type OutputFile struct {
	Path string
	buf  bytes.Buffer
}

// Bytes returns the accumulated content of f.
func (f *OutputFile) Bytes() []byte {
	return f.buf.Bytes()
}

func (f *OutputFile) printf(format string, args ...any) {
	fmt.Fprintf(&f.buf, format, args...)
}

func (f *OutputFile) writeString(s string) {
	f.buf.WriteString(s)
}

// FileSet is an ordered mapping from logical file path to [OutputFile]. It
// is the only mutable shared state the core accumulates during a run; paths
// are unique and iteration order matches insertion order.
type FileSet struct {
	files ordered.Map[string, *OutputFile]
}

// File returns the [OutputFile] for path, creating it if necessary. Newly
// created files are appended to the set in first-request order.
func (fs *FileSet) File(path string) *OutputFile {
	if f, ok := fs.files.GetOK(path); ok {
		return f
	}
	f := &OutputFile{Path: path}
	fs.files.Set(path, f)
	return f
}

// Len returns the number of files in fs.
func (fs *FileSet) Len() int {
	return fs.files.Len()
}

// All returns the files in fs in insertion order.
func (fs *FileSet) All() []*OutputFile {
	files := make([]*OutputFile, 0, fs.files.Len())
	fs.files.All()(func(_ string, f *OutputFile) bool {
		files = append(files, f)
		return true
	})
	return files
}
