// Package generate implements the "generate" subcommand of wit-ts-stub:
// it loads a resolved WIT graph, runs [tsgen.Generate] against the
// selected world, and writes the resulting [tsgen.FileSet] to disk.
package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/wasmcomponents/wit-ts-stub/internal/pkgroot"
	"github.com/wasmcomponents/wit-ts-stub/internal/witcli"
	"github.com/wasmcomponents/wit-ts-stub/tsgen"
)

// Command is the CLI command for generate.
var Command = &cli.Command{
	Name:  "generate",
	Usage: "generate TypeScript .d.ts stubs from a resolved WIT world",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "world",
			Aliases:  []string{"w"},
			Value:    "",
			OnlyOnce: true,
			Config:   cli.StringConfig{TrimSpace: true},
			Usage:    "WIT world to generate; if omitted, the graph's sole world is used",
		},
		&cli.StringFlag{
			Name:      "out",
			Aliases:   []string{"o"},
			Value:     ".",
			TakesFile: true,
			OnlyOnce:  true,
			Config:    cli.StringConfig{TrimSpace: true},
			Usage:     "output directory",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "do not write files; print to stdout",
		},
		&cli.BoolFlag{
			Name:  "force-wit",
			Usage: "force loading input via wasm-tools, even if it has a .json extension",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log the selected world (use --debug for per-file emission progress)",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "log at debug level",
		},
	},
	Action: action,
}

func action(ctx context.Context, cmd *cli.Command) error {
	path, err := witcli.LoadPath(cmd.Args().Slice()...)
	if err != nil {
		return err
	}
	res, err := witcli.LoadWIT(ctx, cmd.Bool("force-wit"), path)
	if err != nil {
		return err
	}

	out := cmd.String("out")
	info, err := os.Stat(out)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", out)
	}
	outPerm := info.Mode().Perm()

	if modPath, err := pkgroot.ModulePath(out); err == nil {
		fmt.Fprintf(os.Stderr, "Output module: %s\n", modPath)
	}

	logger := witcli.Logger(cmd.Bool("verbose"), cmd.Bool("debug"))
	fs, err := tsgen.Generate(res, cmd.String("world"), tsgen.WithLogger(logger))
	if err != nil {
		return err
	}

	dryRun := cmd.Bool("dry-run")
	for _, f := range fs.All() {
		if dryRun {
			fmt.Printf("// %s\n%s\n", f.Path, f.Bytes())
			continue
		}
		dest := filepath.Join(out, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dest), outPerm); err != nil {
			return err
		}
		if err := os.WriteFile(dest, f.Bytes(), outPerm); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Generated file: %s\n", dest)
	}
	return nil
}
