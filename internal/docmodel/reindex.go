package docmodel

// Reindex recomputes startIndex/endIndex for every segment of a tab from
// actual content length, the centralized pass spec.md §4.D requires after
// every mock mutation. It is also the first thing run on a freshly
// deserialized tab (serde.DecodeTab), since on-disk XML carries no indices
// at all — they are derived, never authored (spec.md §3).
//
// It does not itself perform the run-splitting/run-merging normalization of
// §4.D items 2-3 (NormalizeRuns does that); callers mutating content call
// NormalizeRuns first, then Reindex.
func Reindex(tab *Tab) {
	reindexSegment(tab.Body)
	for _, seg := range tab.Headers {
		reindexSegment(seg)
	}
	for _, seg := range tab.Footers {
		reindexSegment(seg)
	}
	for _, seg := range tab.Footnotes {
		reindexSegment(seg)
	}
}

func reindexSegment(seg *Segment) {
	cursor := seg.BaseIndex()
	for _, se := range seg.Content {
		cursor = reindexStructuralElement(se, cursor)
	}
}

func reindexStructuralElement(se *StructuralElement, start int64) int64 {
	se.StartIndex = start
	cursor := start
	switch {
	case se.Paragraph != nil:
		cursor = reindexParagraph(se.Paragraph, start)
	case se.Table != nil:
		cursor = reindexTable(se.Table, start)
	case se.TableOfContents != nil:
		cursor = start + 1 // opaque placeholder; content never agent-edited
	case se.SectionBreak != nil:
		cursor = start + 1
	}
	se.EndIndex = cursor
	return cursor
}

func reindexParagraph(p *Paragraph, start int64) int64 {
	p.StartIndex = start
	cursor := start
	for _, el := range p.Elements {
		el.StartIndex = cursor
		cursor += int64(el.ElementLen())
		el.EndIndex = cursor
	}
	p.EndIndex = cursor
	return cursor
}

// reindexTable walks a table's cells left to right, top to bottom; each
// cell's content shares the segment's index space contiguously, the same
// way the real API lays out table content (spec.md §3).
func reindexTable(t *Table, start int64) int64 {
	t.StartIndex = start
	cursor := start
	for _, row := range t.Rows {
		row.StartIndex = cursor
		for _, cell := range row.Cells {
			cell.StartIndex = cursor
			if !cell.Placeholder {
				for _, se := range cell.Content {
					cursor = reindexStructuralElement(se, cursor)
				}
			}
			cell.EndIndex = cursor
		}
		row.EndIndex = cursor
	}
	t.EndIndex = cursor
	return cursor
}
