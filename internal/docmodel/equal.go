package docmodel

import "fmt"

// Equal implements the structural half of the equality relation from
// spec.md §8: two Documents are equal iff they agree on structure and
// content modulo the Explicit provenance set (which is stripped before
// comparison here, per spec.md §3: "The set is stripped before exposing the
// document to callers"). Server-assigned-id normalization and the B/I/U and
// run-boundary tolerances of §4.F are layered on top by internal/verify,
// which is the only caller that needs them — the reconciler and mock's own
// tests (round-trip consistency, idempotence, mock fidelity) compare
// documents that were never touched by a real API response, so no id
// renaming is needed there.
//
// Equal returns ok=true, or ok=false with a human-readable description of
// the first disagreement found (for test failure messages and the
// composite verifier's mismatch log, spec.md §7).
func Equal(a, b *Document) (ok bool, reason string) {
	if a == nil || b == nil {
		if a == b {
			return true, ""
		}
		return false, "one document is nil"
	}
	if len(a.Tabs) != len(b.Tabs) {
		return false, fmt.Sprintf("tab count %d != %d", len(a.Tabs), len(b.Tabs))
	}
	for i := range a.Tabs {
		if ok, reason := tabsEqual(a.Tabs[i], b.Tabs[i]); !ok {
			return false, fmt.Sprintf("tab[%d] (%s): %s", i, a.Tabs[i].TabID, reason)
		}
	}
	return true, ""
}

func tabsEqual(a, b *Tab) (bool, string) {
	if ok, reason := segmentsEqual(a.Body, b.Body); !ok {
		return false, "body: " + reason
	}
	if ok, reason := segmentMapEqual(a.Headers, b.Headers); !ok {
		return false, "headers: " + reason
	}
	if ok, reason := segmentMapEqual(a.Footers, b.Footers); !ok {
		return false, "footers: " + reason
	}
	if ok, reason := segmentMapEqual(a.Footnotes, b.Footnotes); !ok {
		return false, "footnotes: " + reason
	}
	return true, ""
}

func segmentMapEqual(a, b map[string]*Segment) (bool, string) {
	if len(a) != len(b) {
		return false, fmt.Sprintf("segment count %d != %d", len(a), len(b))
	}
	for id, segA := range a {
		segB, found := b[id]
		if !found {
			return false, fmt.Sprintf("segment %q missing", id)
		}
		if ok, reason := segmentsEqual(segA, segB); !ok {
			return false, fmt.Sprintf("segment %q: %s", id, reason)
		}
	}
	return true, ""
}

func segmentsEqual(a, b *Segment) (bool, string) {
	if len(a.Content) != len(b.Content) {
		return false, fmt.Sprintf("content count %d != %d", len(a.Content), len(b.Content))
	}
	for i := range a.Content {
		if ok, reason := structuralElementsEqual(a.Content[i], b.Content[i]); !ok {
			return false, fmt.Sprintf("content[%d]: %s", i, reason)
		}
	}
	return true, ""
}

func structuralElementsEqual(a, b *StructuralElement) (bool, string) {
	if a.Kind() != b.Kind() {
		return false, fmt.Sprintf("kind %s != %s", a.Kind(), b.Kind())
	}
	switch {
	case a.Paragraph != nil:
		return paragraphsEqual(a.Paragraph, b.Paragraph)
	case a.Table != nil:
		return tablesEqual(a.Table, b.Table)
	case a.SectionBreak != nil:
		return true, "" // opaque; section break identity doesn't carry agent-editable content
	case a.TableOfContents != nil:
		return true, "" // TOC content is non-goal (spec.md §1)
	}
	return true, ""
}

func paragraphsEqual(a, b *Paragraph) (bool, string) {
	if a.HeadingID() != b.HeadingID() {
		return false, fmt.Sprintf("heading %q != %q", a.HeadingID(), b.HeadingID())
	}
	if (a.Bullet == nil) != (b.Bullet == nil) {
		return false, "bullet presence differs"
	}
	if a.Bullet != nil {
		if a.Bullet.NestingLevel != b.Bullet.NestingLevel {
			return false, "bullet nesting differs"
		}
		if !a.Bullet.TextStyle.EqualIgnoringExplicit(b.Bullet.TextStyle) {
			return false, "bullet text style differs"
		}
	}
	if len(a.Elements) != len(b.Elements) {
		return false, fmt.Sprintf("element count %d != %d (%q vs %q)", len(a.Elements), len(b.Elements), a.Text(), b.Text())
	}
	for i := range a.Elements {
		if ok, reason := elementsEqual(a.Elements[i], b.Elements[i]); !ok {
			return false, fmt.Sprintf("element[%d]: %s", i, reason)
		}
	}
	return true, ""
}

func elementsEqual(a, b *ParagraphElement) (bool, string) {
	if a.Kind() != b.Kind() {
		return false, fmt.Sprintf("kind %s != %s", a.Kind(), b.Kind())
	}
	switch {
	case a.TextRun != nil:
		if a.TextRun.Content != b.TextRun.Content {
			return false, fmt.Sprintf("text %q != %q", a.TextRun.Content, b.TextRun.Content)
		}
		if !a.TextRun.Style.EqualIgnoringExplicit(b.TextRun.Style) {
			return false, "run style differs"
		}
	case a.InlineObjectElement != nil:
		// object id is server-assigned; identity is not compared here.
	case a.Person != nil:
		if a.Person.Email != b.Person.Email {
			return false, "person email differs"
		}
	case a.RichLink != nil:
		// rich-link id is server-assigned.
	case a.Equation != nil:
		if a.Equation.Length != b.Equation.Length {
			return false, "equation length differs"
		}
	case a.Date != nil:
		if a.Date.TimestampUnixSec != b.Date.TimestampUnixSec || a.Date.DateFormat != b.Date.DateFormat ||
			a.Date.TimeFormat != b.Date.TimeFormat || a.Date.TimeZoneID != b.Date.TimeZoneID || a.Date.Locale != b.Date.Locale {
			return false, "date chip differs"
		}
	case a.FootnoteReference != nil:
		// footnote id is server-assigned; its target segment is compared
		// independently as part of the tab's Footnotes map.
	}
	return true, ""
}

func tablesEqual(a, b *Table) (bool, string) {
	if len(a.Rows) != len(b.Rows) {
		return false, fmt.Sprintf("row count %d != %d", len(a.Rows), len(b.Rows))
	}
	for i := range a.Rows {
		if len(a.Rows[i].Cells) != len(b.Rows[i].Cells) {
			return false, fmt.Sprintf("row[%d] cell count %d != %d", i, len(a.Rows[i].Cells), len(b.Rows[i].Cells))
		}
		for j := range a.Rows[i].Cells {
			ca, cb := a.Rows[i].Cells[j], b.Rows[i].Cells[j]
			if ca.Placeholder != cb.Placeholder {
				return false, fmt.Sprintf("row[%d] cell[%d] placeholder differs", i, j)
			}
			if ca.Placeholder {
				continue
			}
			if ca.ColumnSpan != cb.ColumnSpan || ca.RowSpan != cb.RowSpan {
				return false, fmt.Sprintf("row[%d] cell[%d] span differs", i, j)
			}
			if len(ca.Content) != len(cb.Content) {
				return false, fmt.Sprintf("row[%d] cell[%d] content count differs", i, j)
			}
			for k := range ca.Content {
				if ok, reason := structuralElementsEqual(ca.Content[k], cb.Content[k]); !ok {
					return false, fmt.Sprintf("row[%d] cell[%d] content[%d]: %s", i, j, k, reason)
				}
			}
		}
	}
	return true, ""
}
