package serde

import "github.com/extrasuite/docsrecon/internal/docmodel"

// ValidatePair checks the cross-document invariant that only a full decode
// of both the pristine and the desired tree can see: the count of elements
// the Docs API itself will never let a push add or remove (horizontal
// rules, inline images, auto-text, column breaks — spec.md §1 Non-goals,
// §4.A) must match between the two. Per-document structural checks
// (content newlines, table shape, unresolved classes) are already raised
// during DecodeTab itself.
func ValidatePair(pristine, desired *docmodel.Document) error {
	pc := countImmutableKinds(pristine)
	dc := countImmutableKinds(desired)
	for kind, want := range pc {
		if dc[kind] != want {
			return &ImmutableElementCountChangedError{Kind: kind, PristineCount: want, DesiredCount: dc[kind]}
		}
	}
	for kind, got := range dc {
		if _, ok := pc[kind]; !ok && got != 0 {
			return &ImmutableElementCountChangedError{Kind: kind, PristineCount: 0, DesiredCount: got}
		}
	}
	return nil
}

func countImmutableKinds(doc *docmodel.Document) map[string]int {
	counts := map[string]int{"horizontalRule": 0, "inlineObject": 0, "autoText": 0, "columnBreak": 0}
	if doc == nil {
		return counts
	}
	for _, tab := range doc.Tabs {
		for _, seg := range tab.AllSegments() {
			countImmutableInContent(seg.Content, counts)
		}
	}
	return counts
}

func countImmutableInContent(content []*docmodel.StructuralElement, counts map[string]int) {
	for _, se := range content {
		switch {
		case se.Paragraph != nil:
			for _, el := range se.Paragraph.Elements {
				if el.Immutable() {
					counts[el.Kind()]++
				}
			}
		case se.Table != nil:
			for _, row := range se.Table.Rows {
				for _, cell := range row.Cells {
					countImmutableInContent(cell.Content, counts)
				}
			}
		}
	}
}
