package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/extrasuite/docsrecon/internal/docmodel"
	"github.com/extrasuite/docsrecon/internal/reconcile"
	"github.com/extrasuite/docsrecon/internal/serde"
)

// DocsDiffCmd computes the request script that would turn baseDir's tab
// into desiredDir's tab, without dispatching anything — spec.md §4.B's
// reconciler run standalone, for inspection before a push.
type DocsDiffCmd struct {
	TabID     string `arg:"" name:"tabId" help:"Tab ID shared by both folders"`
	BaseDir   string `arg:"" name:"baseDir" help:"Tab folder reflecting the document's current state"`
	DesiredDir string `arg:"" name:"desiredDir" help:"Tab folder reflecting the desired state"`
}

func (c *DocsDiffCmd) Run(ctx context.Context, flags *RootFlags) error {
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

	requestCount := 0
	for _, s := range scripts {
		requestCount += len(s.Requests)
	}

	if flags != nil && flags.JSON {
		return writeJSON(os.Stdout, map[string]any{
			"tabId":        c.TabID,
			"requestCount": requestCount,
			"scripts":      scripts,
			"comments":     comments,
		})
	}
	return outline(flags, map[string]any{
		"status":       "ok",
		"tabId":        c.TabID,
		"requestCount": requestCount,
		"replyCount":   len(comments.Requests),
	}, []string{"status", "tabId", "requestCount", "replyCount"})
}

// decodeTabPair loads and decodes the same tab id from two folders, the
// shape both diff and push need before reconciling.
func decodeTabPair(baseDir, desiredDir, tabID string) (base, desired *docmodel.Tab, err error) {
	baseFiles, err := readTabFolder(baseDir, tabID)
	if err != nil {
		return nil, nil, err
	}
	desiredFiles, err := readTabFolder(desiredDir, tabID)
	if err != nil {
		return nil, nil, err
	}
	if base, err = serde.DecodeTab(baseFiles); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", baseDir, err)
	}
	if desired, err = serde.DecodeTab(desiredFiles); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", desiredDir, err)
	}
	return base, desired, nil
}
