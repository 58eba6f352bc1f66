package witcli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/wasmcomponents/wit-ts-stub/internal/oci"
	"github.com/wasmcomponents/wit-ts-stub/wit"
)

// LoadWIT loads a single [wit.Resolve] from path.
// If path is an OCI reference, it pulls the artifact from the registry and
// processes the resulting buffer through wasm-tools (see
// [wit.LoadWITFromBuffer]), since an OCI-distributed artifact is the raw WIT
// package, not its resolved JSON form.
// Otherwise, if forceWIT is set or path doesn't end in ".json", path is
// processed through wasm-tools (see [wit.LoadWITFromPath]); this requires
// wasm-tools on $PATH. Otherwise path is read as a resolved WIT JSON document
// (see [wit.LoadJSON]). If path == "" or "-", it reads from stdin.
func LoadWIT(ctx context.Context, forceWIT bool, path string) (*wit.Resolve, error) {
	if oci.IsOCIPath(path) {
		fmt.Fprintf(os.Stderr, "Fetching OCI artifact %s\n", path)
		buf, err := oci.PullWIT(ctx, path)
		if err != nil {
			return nil, err
		}
		return wit.LoadWITFromBuffer(buf.Bytes())
	}
	if forceWIT || !strings.HasSuffix(path, ".json") {
		return wit.LoadWITFromPath(path)
	}
	return wit.LoadJSON(path)
}

// LoadPath parses paths and returns the first path.
// If paths is empty, returns "-".
// If paths has more than one element, returns an error.
func LoadPath(paths ...string) (string, error) {
	var path string
	switch len(paths) {
	case 0:
		path = "-"
	case 1:
		path = paths[0]
	default:
		return "", fmt.Errorf("found %d path arguments, expecting 0 or 1", len(paths))
	}
	return path, nil
}
