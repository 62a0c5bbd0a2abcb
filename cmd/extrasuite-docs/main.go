// Command extrasuite-docs is the CLI surface over the reconciliation core:
// pull/diff/push/create subcommands, each a thin I/O shim around
// internal/serde, internal/reconcile, internal/mock, and internal/verify
// (spec.md §5 — the core itself performs no I/O).
package main

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/extrasuite/docsrecon/internal/cmd"
)

var cli struct {
	cmd.RootFlags

	Pull   cmd.DocsPullCmd   `cmd:"" help:"Fetch a document and write its tab to a folder."`
	Diff   cmd.DocsDiffCmd   `cmd:"" help:"Compute the request script between two tab folders."`
	Push   cmd.DocsPushCmd   `cmd:"" help:"Reconcile and dispatch a tab folder's desired state."`
	Create cmd.DocsCreateCmd `cmd:"" help:"Scaffold a fresh, empty tab folder."`
}

func main() {
	kctx := kong.Parse(&cli, kong.Name("extrasuite-docs"), kong.UsageOnError())
	ctx := context.Background()

	err := kctx.Run(ctx, &cli.RootFlags)
	kctx.FatalIfErrorf(err)
}
