package cmd

import (
	"fmt"

	"github.com/extrasuite/docsrecon/internal/docmodel"
	"github.com/extrasuite/docsrecon/internal/serde"
)

// DocsCreateCmd scaffolds a fresh, empty tab folder on disk: a single
// paragraph body, no sidecars. It touches nothing on the network — the
// Docs API's document-creation endpoint is a Drive-level operation, out of
// scope for this CLI the same way the comment/reply Drive client is (see
// DESIGN.md) — so the workflow is create locally, edit, then push once a
// live docId/tabId pair exists to reconcile against.
type DocsCreateCmd struct {
	TabID string `arg:"" name:"tabId" help:"Tab ID for the new tab folder"`
	Dir   string `arg:"" name:"dir" help:"Destination tab folder" default:"."`
}

func (c *DocsCreateCmd) Run(flags *RootFlags) error {
	tab := &docmodel.Tab{
		TabID: c.TabID,
		Body: &docmodel.Segment{
			Kind: docmodel.SegmentBody,
			Content: []*docmodel.StructuralElement{
				{
					Paragraph: &docmodel.Paragraph{
						Elements: []*docmodel.ParagraphElement{
							{TextRun: &docmodel.TextRun{Content: "\n", Style: &docmodel.TextStyle{}}},
						},
					},
				},
			},
		},
	}

	files, err := serde.EncodeTab(tab)
	if err != nil {
		return fmt.Errorf("encode tab %s: %w", c.TabID, err)
	}
	if flags != nil && flags.DryRun {
		return outline(flags, map[string]any{"status": "dry-run", "tabId": c.TabID, "dir": c.Dir}, []string{"status", "tabId", "dir"})
	}
	if err := writeTabFolder(c.Dir, files); err != nil {
		return err
	}
	return outline(flags, map[string]any{"status": "ok", "tabId": c.TabID, "dir": c.Dir}, []string{"status", "tabId", "dir"})
}
