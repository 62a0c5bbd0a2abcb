// Package reconcile implements the structural diff between a base and a
// desired Document and emits the docs.Request script that transforms one
// into the other (spec.md §4.B-§4.C): a block-level sequence diff over each
// segment's structural elements, recursing into per-paragraph text/style
// diffing and per-cell table diffing, followed by the Index Planner's
// self-check before a script is returned to the caller.
package reconcile

import (
	"sort"

	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// Reconcile computes, for every tab present in both base and desired, the
// script of requests that turns base into desired. Tabs present in only
// one of the two documents are not reconciled (addDocumentTab/deleteTab are
// mock/verify-layer operations, not expressible as a content diff) and are
// skipped; callers that need tab-level creation/deletion detect that by
// comparing tab ids themselves before calling Reconcile.
func Reconcile(base, desired *docmodel.Document) ([]*Script, error) {
	var scripts []*Script
	for _, desiredTab := range desired.Tabs {
		baseTab := base.Tab(desiredTab.TabID)
		if baseTab == nil {
			continue
		}
		script, err := reconcileTab(baseTab, desiredTab)
		if err != nil {
			return nil, err
		}
		if len(script.Requests) > 0 {
			if err := checkIndexPlan(script); err != nil {
				return nil, err
			}
			scripts = append(scripts, script)
		}
	}
	return scripts, nil
}

func reconcileTab(base, desired *docmodel.Tab) (*Script, error) {
	script := &Script{TabID: desired.TabID}

	bodyReqs, bodyEnds, err := diffSegment(base.Body, desired.Body)
	if err != nil {
		return nil, err
	}
	lo, hi := segmentExtent(base.Body, desired.Body)
	script.appendBlock("", bodyReqs, bodyEnds, lo, hi)

	for _, kind := range []struct {
		base, desired map[string]*docmodel.Segment
	}{
		{base.Headers, desired.Headers},
		{base.Footers, desired.Footers},
		{base.Footnotes, desired.Footnotes},
	} {
		for _, segmentID := range sortedKeys(kind.desired) {
			baseSeg, ok := kind.base[segmentID]
			if !ok {
				continue // new header/footer/footnote: createHeader/createFooter/createFootnote, not a content diff
			}
			desiredSeg := kind.desired[segmentID]
			reqs, ends, err := diffSegment(baseSeg, desiredSeg)
			if err != nil {
				return nil, err
			}
			setSegmentID(reqs, segmentID)
			lo, hi := segmentExtent(baseSeg, desiredSeg)
			script.appendBlock(segmentID, reqs, ends, lo, hi)
		}
	}

	return script, nil
}

// segmentExtent bounds the valid index range for requests diffed against
// this segment, used by the Index Planner's bounds check (spec.md §4.C item
// c): the segment's own base index through the farther of its pre- and
// post-mutation lengths, since the document's length at any point during
// the script's sequential application lies between the two.
func segmentExtent(base, desired *docmodel.Segment) (int64, int64) {
	hi := segmentEnd(base)
	if d := segmentEnd(desired); d > hi {
		hi = d
	}
	return base.BaseIndex(), hi
}

func segmentEnd(seg *docmodel.Segment) int64 {
	if len(seg.Content) == 0 {
		return seg.BaseIndex()
	}
	return seg.Content[len(seg.Content)-1].EndIndex
}

func sortedKeys(m map[string]*docmodel.Segment) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// setSegmentID stamps every range/location in reqs with segmentID, since a
// header/footer/footnote segment's own index space must be disambiguated
// from the body's when a request targets it (spec.md §3 "Index invariant").
func setSegmentID(reqs []*docs.Request, segmentID string) {
	for _, req := range reqs {
		switch {
		case req.InsertText != nil:
			req.InsertText.Location.SegmentId = segmentID
		case req.DeleteContentRange != nil:
			req.DeleteContentRange.Range.SegmentId = segmentID
		case req.UpdateTextStyle != nil:
			req.UpdateTextStyle.Range.SegmentId = segmentID
		case req.UpdateParagraphStyle != nil:
			req.UpdateParagraphStyle.Range.SegmentId = segmentID
		case req.CreateParagraphBullets != nil:
			req.CreateParagraphBullets.Range.SegmentId = segmentID
		case req.DeleteParagraphBullets != nil:
			req.DeleteParagraphBullets.Range.SegmentId = segmentID
		case req.InsertTable != nil:
			req.InsertTable.Location.SegmentId = segmentID
		}
	}
}
