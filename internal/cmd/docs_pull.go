package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/extrasuite/docsrecon/internal/serde"
	"github.com/extrasuite/docsrecon/internal/verify"
)

// DocsPullCmd fetches the live document and writes its single implicit tab
// to a tab folder on disk (spec.md §4.A decode direction, starting from the
// live API rather than a tab folder someone hand-edited).
type DocsPullCmd struct {
	DocID string `arg:"" name:"docId" help:"Doc ID"`
	Dir   string `arg:"" name:"dir" help:"Destination tab folder" default:"."`
}

func (c *DocsPullCmd) Run(ctx context.Context, flags *RootFlags) error {
	account, err := requireAccount(flags)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.DocID)
	if id == "" {
		return usage("empty docId")
	}

	transport, err := newTransport(ctx, account)
	if err != nil {
		return fmt.Errorf("create transport: %w", err)
	}
	wireDoc, err := transport.GetDocument(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch document %s: %w", id, err)
	}

	tab := verify.ConvertTab(wireDoc)
	files, err := serde.EncodeTab(tab)
	if err != nil {
		return fmt.Errorf("encode tab %s: %w", tab.TabID, err)
	}

	if flags != nil && flags.DryRun {
		return outline(flags, map[string]any{"status": "ok", "docId": id, "dir": c.Dir}, []string{"status", "docId", "dir"})
	}
	if err := writeTabFolder(c.Dir, files); err != nil {
		return err
	}
	return outline(flags, map[string]any{"status": "ok", "docId": id, "dir": c.Dir}, []string{"status", "docId", "dir"})
}
