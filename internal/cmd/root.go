// Package cmd implements the extrasuite-docs CLI surface: pull/diff/push/
// create subcommands wired to internal/serde, internal/reconcile,
// internal/mock, and internal/verify. The core (those four packages) has no
// I/O of its own (spec.md §5); this package is where account resolution,
// tab-folder I/O, and output formatting live, following gogcli's own
// kong-based command-struct pattern (one struct per subcommand, a
// Run(ctx, *RootFlags) error method, RootFlags carrying global flags).
package cmd

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/verify"
)

// RootFlags carries flags shared by every subcommand (gogcli's own
// RootFlags shape: --json, --dry-run, --account).
type RootFlags struct {
	JSON    bool   `name:"json" help:"Emit machine-readable JSON output instead of tab-separated lines."`
	DryRun  bool   `name:"dry-run" help:"Build the request script but do not dispatch it."`
	Account string `name:"account" env:"EXTRASUITE_ACCOUNT" help:"Google account email to act as."`
}

// usageError reports a malformed invocation — distinct from a runtime
// failure so the CLI entry point can map it to a non-zero exit without a
// stack of wrapped context (gogcli's own usage() helper serves the same
// purpose across docs_sed.go/docs_edit.go).
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usage(msg string) error { return &usageError{msg: msg} }

// requireAccount resolves which Google account to act as, failing fast with
// a usage error when the CLI was not told (gogcli requires the same: every
// docs_* subcommand calls requireAccount before touching the network).
func requireAccount(flags *RootFlags) (string, error) {
	if flags == nil || flags.Account == "" {
		return "", usage("no account specified: pass --account or set EXTRASUITE_ACCOUNT")
	}
	return flags.Account, nil
}

// newTransport builds the real Composite Verifier transport for the given
// account, using Application Default Credentials scoped to the Docs API —
// the core's one sanctioned point of contact with the live service; the
// core's pure functions never make API calls. It always talks to the default
// Docs API endpoint and does not read EXTRASUITE_SERVER_URL or any other
// environment variable.
func newTransport(ctx context.Context, account string) (*verify.RealTransport, error) {
	ts, err := google.DefaultTokenSource(ctx, docs.DocumentsScope, docs.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("resolve credentials for %s: %w", account, err)
	}
	return verify.NewRealTransport(ctx, ts)
}

// outline is this module's minimal stand-in for gogcli's external ui/outfmt
// collaborators (referenced but not retrieved into the example pack):
// tab-separated key/value lines by default, or a single JSON object when
// RootFlags.JSON is set — the same two-mode contract those packages provide.
func outline(flags *RootFlags, fields map[string]any, order []string) error {
	if flags != nil && flags.JSON {
		return writeJSON(os.Stdout, fields)
	}
	for _, k := range order {
		fmt.Printf("%s\t%v\n", k, fields[k])
	}
	return nil
}
