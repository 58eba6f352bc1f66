package tsgen

import (
	"flag"
	"os"
	"path"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/tools/txtar"
)

// update rewrites testdata/*.txtar fixtures from the generator's actual
// output instead of comparing against them, the same escape hatch the
// teacher's own golden tests provide.
var update = flag.Bool("update", false, "update golden .txtar fixtures")

// TestGoldenTwoInterfaceWorld runs the driver end to end over the
// buildScenario fixture and diffs its full [FileSet] against a bundled
// testdata/*.txtar archive, one archive file per generated path.
func TestGoldenTwoInterfaceWorld(t *testing.T) {
	res, _ := buildScenario()
	fs, err := Generate(res, "test")
	if err != nil {
		t.Fatal(err)
	}
	compareFileSetGolden(t, "testdata/two_interface_world.txtar", fs)
}

func compareFileSetGolden(t *testing.T, archivePath string, fs *FileSet) {
	t.Helper()

	if *update {
		ar := &txtar.Archive{Comment: []byte("Generated by -update; see golden_test.go.\n")}
		for _, f := range fs.All() {
			ar.Files = append(ar.Files, txtar.File{Name: f.Path, Data: f.Bytes()})
		}
		if err := os.WriteFile(archivePath, txtar.Format(ar), 0o644); err != nil {
			t.Fatal(err)
		}
		return
	}

	ar, err := txtar.ParseFile(archivePath)
	if err != nil {
		t.Fatalf("reading golden archive %s: %v", archivePath, err)
	}
	want := make(map[string][]byte, len(ar.Files))
	for _, f := range ar.Files {
		want[f.Name] = f.Data
	}

	got := make(map[string][]byte, fs.Len())
	for _, f := range fs.All() {
		got[f.Path] = f.Bytes()
	}

	for name, wantData := range want {
		gotData, ok := got[name]
		if !ok {
			t.Errorf("golden archive expects file %q but Generate did not produce it", name)
			continue
		}
		if string(gotData) != string(wantData) {
			dmp := diffmatchpatch.New()
			dmp.PatchMargin = 3
			diffs := dmp.DiffMain(string(wantData), string(gotData), false)
			t.Errorf("file %s did not match golden %s:\n%s", name, path.Join(archivePath, name), dmp.DiffPrettyText(diffs))
		}
	}
	for name := range got {
		if _, ok := want[name]; !ok {
			t.Errorf("Generate produced file %q with no entry in golden archive %s", name, archivePath)
		}
	}
}
