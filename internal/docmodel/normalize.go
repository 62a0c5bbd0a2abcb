package docmodel

import "strings"

// NormalizeRuns implements §4.D items 2-3 of the mock's centralized
// reindex-and-normalize pass: split any run with an interior '\n' into one
// run per line plus a tail, then merge adjacent runs whose styles are equal
// ignoring Explicit, unioning their Explicit sets on merge. Call this
// before Reindex after any content mutation.
func NormalizeRuns(tab *Tab) {
	for _, seg := range tab.AllSegments() {
		normalizeSegmentRuns(seg)
	}
}

func normalizeSegmentRuns(seg *Segment) {
	for _, se := range seg.Content {
		normalizeStructuralElementRuns(se)
	}
}

func normalizeStructuralElementRuns(se *StructuralElement) {
	switch {
	case se.Paragraph != nil:
		se.Paragraph.Elements = splitRunsAtNewline(se.Paragraph.Elements)
		se.Paragraph.Elements = mergeAdjacentEqualRuns(se.Paragraph.Elements)
	case se.Table != nil:
		for _, row := range se.Table.Rows {
			for _, cell := range row.Cells {
				for _, inner := range cell.Content {
					normalizeStructuralElementRuns(inner)
				}
			}
		}
	}
}

// splitRunsAtNewline splits a run whose content has an interior '\n' into a
// run ending at each '\n' (inclusive) and a trailing run for the remainder,
// every split run keeping the original run's style (spec.md invariant 4).
func splitRunsAtNewline(elements []*ParagraphElement) []*ParagraphElement {
	var out []*ParagraphElement
	for _, el := range elements {
		if el.TextRun == nil {
			out = append(out, el)
			continue
		}
		content := el.TextRun.Content
		if !strings.Contains(content[:max(0, len(content)-1)], "\n") {
			out = append(out, el)
			continue
		}
		start := 0
		for i, r := range content {
			if r == '\n' && i < len(content)-1 {
				out = append(out, &ParagraphElement{TextRun: &TextRun{Content: content[start : i+1], Style: el.TextRun.Style.Clone()}})
				start = i + 1
			}
		}
		if start < len(content) {
			out = append(out, &ParagraphElement{TextRun: &TextRun{Content: content[start:], Style: el.TextRun.Style.Clone()}})
		}
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// mergeAdjacentEqualRuns merges consecutive TextRun elements whose styles
// are equal ignoring Explicit, unioning their Explicit sets (spec.md
// invariant 5).
func mergeAdjacentEqualRuns(elements []*ParagraphElement) []*ParagraphElement {
	var out []*ParagraphElement
	for _, el := range elements {
		if el.TextRun == nil {
			out = append(out, el)
			continue
		}
		if n := len(out); n > 0 && out[n-1].TextRun != nil &&
			out[n-1].TextRun.Style.EqualIgnoringExplicit(el.TextRun.Style) &&
			!endsWithNewlineNotLast(out[n-1].TextRun.Content) {
			out[n-1].TextRun.Content += el.TextRun.Content
			out[n-1].TextRun.Style.Explicit = out[n-1].TextRun.Style.Explicit.Union(el.TextRun.Style.Explicit)
			continue
		}
		out = append(out, el)
	}
	return out
}

// endsWithNewlineNotLast reports whether content ends in '\n' — such a run
// is a completed line and must not absorb a following run (that would
// merge text across a paragraph-internal line break introduced by a prior
// split).
func endsWithNewlineNotLast(content string) bool {
	return strings.HasSuffix(content, "\n")
}
