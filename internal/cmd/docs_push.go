package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/extrasuite/docsrecon/internal/docmodel"
	"github.com/extrasuite/docsrecon/internal/reconcile"
	"github.com/extrasuite/docsrecon/internal/serde"
	"github.com/extrasuite/docsrecon/internal/verify"
)

// DocsPushCmd reconciles baseDir against desiredDir and dispatches the
// resulting script against the live document, verifying the outcome
// against a parallel mock run before trusting it (spec.md §4.F Composite
// Verifier — the one path by which a script actually reaches the network).
// The comment/reply sibling script (spec.md §4.B) is computed and reported
// but not dispatched: the Drive API client is out of scope for this CLI
// (see DESIGN.md).
type DocsPushCmd struct {
	DocID      string `arg:"" name:"docId" help:"Doc ID"`
	TabID      string `arg:"" name:"tabId" help:"Tab ID shared by both folders"`
	BaseDir    string `arg:"" name:"baseDir" help:"Tab folder reflecting the document's current state"`
	DesiredDir string `arg:"" name:"desiredDir" help:"Tab folder reflecting the desired state"`
}

func (c *DocsPushCmd) Run(ctx context.Context, flags *RootFlags) error {
	account, err := requireAccount(flags)
	if err != nil {
		return err
	}
	id := strings.TrimSpace(c.DocID)
	if id == "" {
		return usage("empty docId")
	}

	baseTab, desiredTab, err := decodeTabPair(c.BaseDir, c.DesiredDir, c.TabID)
	if err != nil {
		return err
	}
	base := &docmodel.Document{Tabs: []*docmodel.Tab{baseTab}}
	desired := &docmodel.Document{Tabs: []*docmodel.Tab{desiredTab}}

	if err := serde.ValidatePair(base, desired); err != nil {
		return fmt.Errorf("validate %s -> %s: %w", c.BaseDir, c.DesiredDir, err)
	}

	scripts, err := reconcile.Reconcile(base, desired)
	if err != nil {
		return fmt.Errorf("reconcile %s -> %s: %w", c.BaseDir, c.DesiredDir, err)
	}
	comments := reconcile.DiffComments(baseTab, desiredTab)

	var script *reconcile.Script
	for _, s := range scripts {
		if s.TabID == c.TabID {
			script = s
			break
		}
	}
	requestCount := 0
	if script != nil {
		requestCount = len(script.Requests)
	}

	if flags != nil && flags.DryRun {
		return outline(flags, map[string]any{
			"status":       "dry-run",
			"docId":        id,
			"tabId":        c.TabID,
			"requestCount": requestCount,
			"replyCount":   len(comments.Requests),
		}, []string{"status", "docId", "tabId", "requestCount", "replyCount"})
	}
	if script == nil || requestCount == 0 {
		return outline(flags, map[string]any{"status": "noop", "docId": id, "tabId": c.TabID}, []string{"status", "docId", "tabId"})
	}

	transport, err := newTransport(ctx, account)
	if err != nil {
		return fmt.Errorf("create transport: %w", err)
	}
	result, err := verify.Composite(ctx, base, c.TabID, script.Requests, id, transport, os.Stderr)
	if err != nil {
		return fmt.Errorf("push %s tab %s: %w", id, c.TabID, err)
	}
	if !result.Agree {
		return fmt.Errorf("push %s tab %s: mock and live document disagree after applying the script (see mismatch log on stderr)", id, c.TabID)
	}

	return outline(flags, map[string]any{
		"status":       "ok",
		"docId":        id,
		"tabId":        c.TabID,
		"requestCount": requestCount,
		"replyCount":   len(comments.Requests),
	}, []string{"status", "docId", "tabId", "requestCount", "replyCount"})
}
