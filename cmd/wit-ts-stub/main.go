package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wasmcomponents/wit-ts-stub/cmd/wit-ts-stub/cmd/generate"
	"github.com/wasmcomponents/wit-ts-stub/internal/witcli"
)

func main() {
	cmd := &cli.Command{
		Name:  "wit-ts-stub",
		Usage: "generate TypeScript declaration stubs for a WebAssembly Component Model world",
		Commands: []*cli.Command{
			generate.Command,
		},
		Version: witcli.Version(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
