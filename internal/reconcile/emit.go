package reconcile

import (
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// diffSegment implements spec.md §4.B's per-segment emission: the block
// list from the sequence-level diff is processed strictly in order (never
// globally re-sorted), each block fully emitted — descending deletes then
// ascending inserts, rule 1 — before the next block begins, with a running
// net_shift carried across blocks (rule 2) so later blocks' positions
// account for earlier blocks' net length change.
// diffSegment returns, along with the request script, the index (into the
// returned slice) where each independently-coordinate-computed block ends —
// the Index Planner (planner.go) resets its descending-delete/ascending-
// insert check at each of these boundaries rather than across the whole
// script (spec.md §4.C; a later block's indices are computed against the
// document state *after* earlier blocks applied, so they legitimately don't
// continue any prior block's ordering).
func diffSegment(base, desired *docmodel.Segment) ([]*docs.Request, []int, error) {
	return diffElements(base.Content, desired.Content)
}

// diffElements is diffSegment's element-sequence-level logic, factored out
// so diffTableEqual can reuse it for a single table cell's content (a
// cell's content is its own contiguous block-sequential run, same as a
// segment's).
func diffElements(base, desired []*docmodel.StructuralElement) ([]*docs.Request, []int, error) {
	ops := blockList(base, desired)
	var requests []*docs.Request
	var blockEnds []int
	var netShift int64

	mark := func(reqs []*docs.Request) {
		requests = append(requests, reqs...)
		blockEnds = append(blockEnds, len(requests))
	}

	for _, op := range ops {
		switch op.Tag {
		case 'e':
			for k := 0; k < op.I2-op.I1; k++ {
				reqs, err := diffEqualElement(base[op.I1+k], desired[op.J1+k], netShift)
				if err != nil {
					return nil, nil, err
				}
				mark(reqs)
			}
		case 'r':
			reqs, shift, subEnds, err := diffReplaceBlock(base[op.I1:op.I2], desired[op.J1:op.J2], netShift, anchorFor(base, op.I1))
			if err != nil {
				return nil, nil, err
			}
			offset := len(requests)
			requests = append(requests, reqs...)
			for _, e := range subEnds {
				blockEnds = append(blockEnds, offset+e)
			}
			netShift += shift
		case 'd':
			reqs, shift := deleteElements(base[op.I1:op.I2], netShift)
			mark(reqs)
			netShift += shift
		case 'i':
			reqs, shift := insertElements(desired[op.J1:op.J2], netShift, anchorFor(base, op.I1))
			mark(reqs)
			netShift += shift
		}
	}
	return requests, blockEnds, nil
}

// anchorFor returns the position, in the base document's original indexing,
// immediately after the last base element before index i — the point new
// content is inserted at, or the start of a deleted/replaced run.
func anchorFor(base []*docmodel.StructuralElement, i int) int64 {
	if i == 0 {
		return base[0].StartIndex // a leading insert/replace anchors at the first element's own start; base is never empty (invariant 1)
	}
	return base[i-1].EndIndex
}

func diffEqualElement(base, desired *docmodel.StructuralElement, netShift int64) ([]*docs.Request, error) {
	switch {
	case base.Paragraph != nil && desired.Paragraph != nil:
		start := base.Paragraph.StartIndex + netShift
		var requests []*docs.Request
		requests = append(requests, diffParagraphStyleOnly(base.Paragraph, desired.Paragraph, start)...)
		requests = append(requests, diffBullet(base.Paragraph, desired.Paragraph, start)...)
		// Text is identical within an 'equal' block (fingerprint is keyed on
		// text); only style can differ, diffed over the full paragraph span.
		n := len([]rune(desired.Paragraph.Text()))
		requests = append(requests, styleDiffRunes(base.Paragraph, desired.Paragraph, 0, 0, n, start)...)
		return requests, nil
	case base.Table != nil && desired.Table != nil:
		return diffTableEqual(base.Table, desired.Table, netShift)
	default:
		return nil, nil
	}
}

// diffReplaceBlock handles a difflib 'replace' opcode. When both sides have
// the same number of elements, each position is treated as "the same
// paragraph, edited" (a 1:1 replace is the common single/multi-paragraph
// text-edit shape, spec.md §8 S1/S5) and diffed with diffParagraphText;
// otherwise the whole base range is deleted and the whole desired range
// inserted.
// diffReplaceBlock also reports block boundaries: in the 1:1 branch, each
// paragraph's edit is computed against its own cursor snapshot independent
// of its siblings (a shrinking paragraph followed by another shrinking
// paragraph legitimately produces ascending delete-starts, one per
// paragraph), so each paragraph iteration is its own block for the Index
// Planner's purposes, same reasoning as diffElements' per-op blocks.
func diffReplaceBlock(base, desired []*docmodel.StructuralElement, netShift, anchor int64) ([]*docs.Request, int64, []int, error) {
	if len(base) == len(desired) && allParagraphs(base) && allParagraphs(desired) {
		var requests []*docs.Request
		var blockEnds []int
		var shift int64
		cursor := netShift
		for i := range base {
			bp, dp := base[i].Paragraph, desired[i].Paragraph
			if !paragraphIsTextOnly(bp) || !paragraphIsTextOnly(dp) {
				return nil, 0, nil, &CannotReconcileError{Reason: "paragraph containing a non-text element changed content; not reconcilable by the text-run diff"}
			}
			start := bp.StartIndex + cursor
			reqs, s := diffParagraphText(bp, dp, start)
			// start, not start+s: this paragraph's own text edit doesn't move
			// its own start index, only the ones after it (cursor += s below)
			// — style/bullet ranges reference the paragraph's post-mutation
			// span (spec.md §4.B rule 3), which still begins at start. The
			// text mutations go first, then paragraph style and bullet, then
			// the run-level updateTextStyle requests.
			var textReqs, runStyleReqs []*docs.Request
			for _, r := range reqs {
				if r.UpdateTextStyle != nil {
					runStyleReqs = append(runStyleReqs, r)
				} else {
					textReqs = append(textReqs, r)
				}
			}
			requests = append(requests, textReqs...)
			requests = append(requests, diffParagraphStyleOnly(bp, dp, start)...)
			requests = append(requests, diffBullet(bp, dp, start)...)
			requests = append(requests, runStyleReqs...)
			blockEnds = append(blockEnds, len(requests))
			shift += s
			cursor += s
		}
		return requests, shift, blockEnds, nil
	}
	delReqs, delShift := deleteElements(base, netShift)
	insReqs, insShift := insertElements(desired, netShift+delShift, anchor)
	requests := append(delReqs, insReqs...)
	return requests, delShift + insShift, []int{len(requests)}, nil
}

func allParagraphs(elements []*docmodel.StructuralElement) bool {
	for _, e := range elements {
		if e.Paragraph == nil {
			return false
		}
	}
	return true
}

func paragraphIsTextOnly(p *docmodel.Paragraph) bool {
	for _, el := range p.Elements {
		if el.TextRun == nil {
			return false
		}
	}
	return true
}

// deleteElements emits a single deleteContentRange covering a contiguous
// run of base elements, and returns the resulting net_shift (always
// negative or zero).
func deleteElements(elements []*docmodel.StructuralElement, netShift int64) ([]*docs.Request, int64) {
	if len(elements) == 0 {
		return nil, 0
	}
	start := elements[0].StartIndex + netShift
	end := elements[len(elements)-1].EndIndex + netShift
	requests := []*docs.Request{{
		DeleteContentRange: &docs.DeleteContentRangeRequest{
			Range: &docs.Range{StartIndex: start, EndIndex: end},
		},
	}}
	return requests, start - end
}

// insertElements emits one insertText per new paragraph, in ascending order
// (rule 1), starting at the position following the last surviving base
// element. Tables get insertTableRequests' insertTable/insertText sequence;
// other non-paragraph elements emit nothing.
func insertElements(elements []*docmodel.StructuralElement, netShift, anchor int64) ([]*docs.Request, int64) {
	var requests []*docs.Request
	pos := anchor + netShift
	var shift int64
	for _, e := range elements {
		switch {
		case e.Paragraph != nil:
			text := e.Paragraph.Text()
			requests = append(requests, &docs.Request{
				InsertText: &docs.InsertTextRequest{
					Location: &docs.Location{Index: pos},
					Text:     text,
				},
			})
			n := int64(docmodel.UTF16Len(text))
			pos += n
			shift += n
		case e.Table != nil:
			reqs, n := insertTableRequests(e.Table, pos)
			requests = append(requests, reqs...)
			pos += n
			shift += n
		}
	}
	return requests, shift
}
