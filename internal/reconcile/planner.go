package reconcile

import "google.golang.org/api/docs/v1"

// segmentBound records one diffed segment's valid index range, used by the
// bounds self-check (spec.md §4.C item c).
type segmentBound struct {
	segmentID string
	lo, hi    int64
}

// checkIndexPlan runs the Index Planner self-checks spec.md §4.C requires
// before a script is handed to the mock or the real API: within each
// sequentially-processed block (script.blockEnds, populated by appendBlock
// as the reconciler assembles the script one segment/paragraph-edit at a
// time) a delete's range must be non-empty, a style range must not be
// inverted, insert indices must not decrease and delete starts must not
// increase relative to the previous request of the same kind and block —
// resetting at every block boundary, since a later block's indices
// are computed against the document state after earlier blocks have
// already applied, and legitimately don't continue any prior block's
// ordering — plus every request's index must fall within some diffed
// segment's bounds (item c). Catches an emission bug before it reaches an
// API call that would otherwise corrupt the document irrecoverably.
func checkIndexPlan(script *Script) error {
	start := 0
	for _, end := range script.blockEnds {
		if err := checkBlockOrder(script, script.Requests[start:end]); err != nil {
			return err
		}
		start = end
	}
	if start < len(script.Requests) {
		if err := checkBlockOrder(script, script.Requests[start:]); err != nil {
			return err
		}
	}
	return checkIndexBounds(script)
}

func checkBlockOrder(script *Script, reqs []*docs.Request) error {
	var lastDeleteStart int64 = -1
	haveLastDelete := false
	var lastInsertIndex int64 = -1
	haveLastInsert := false

	for _, req := range reqs {
		switch {
		case req.InsertText != nil:
			idx := req.InsertText.Location.Index
			if haveLastInsert && idx < lastInsertIndex {
				return &IndexError{Reason: "insertText index decreased within a block; inserts must be ascending", Script: script}
			}
			lastInsertIndex = idx
			haveLastInsert = true
		case req.DeleteContentRange != nil:
			r := req.DeleteContentRange.Range
			if r.EndIndex <= r.StartIndex {
				return &IndexError{Reason: "deleteContentRange has an empty or inverted range", Script: script}
			}
			if haveLastDelete && r.StartIndex > lastDeleteStart {
				return &IndexError{Reason: "deleteContentRange start increased; deletes within a block must be descending", Script: script}
			}
			lastDeleteStart = r.StartIndex
			haveLastDelete = true
		case req.UpdateTextStyle != nil:
			r := req.UpdateTextStyle.Range
			if r != nil && r.EndIndex < r.StartIndex {
				return &IndexError{Reason: "updateTextStyle has an inverted range", Script: script}
			}
		case req.UpdateParagraphStyle != nil:
			r := req.UpdateParagraphStyle.Range
			if r != nil && r.EndIndex < r.StartIndex {
				return &IndexError{Reason: "updateParagraphStyle has an inverted range", Script: script}
			}
		}
	}
	return nil
}

// checkIndexBounds implements spec.md §4.C item (c): every request's range
// or location index must lie within the bounds of some segment the
// reconciler actually diffed (segmentBound, recorded by appendBlock).
func checkIndexBounds(script *Script) error {
	if len(script.segmentBounds) == 0 {
		return nil // script wasn't assembled via appendBlock (e.g. a hand-built test script); nothing to check against
	}
	for _, req := range script.Requests {
		switch {
		case req.InsertText != nil:
			loc := req.InsertText.Location
			if !indexWithinSegment(script.segmentBounds, loc.SegmentId, loc.Index, loc.Index) {
				return &IndexError{Reason: "insertText location falls outside every diffed segment's bounds", Script: script}
			}
		case req.InsertTable != nil:
			loc := req.InsertTable.Location
			if !indexWithinSegment(script.segmentBounds, loc.SegmentId, loc.Index, loc.Index) {
				return &IndexError{Reason: "insertTable location falls outside every diffed segment's bounds", Script: script}
			}
		default:
			if r := requestRange(req); r != nil {
				if !indexWithinSegment(script.segmentBounds, r.SegmentId, r.StartIndex, r.EndIndex) {
					return &IndexError{Reason: "request range falls outside every diffed segment's bounds", Script: script}
				}
			}
		}
	}
	return nil
}

func indexWithinSegment(bounds []segmentBound, segmentID string, lo, hi int64) bool {
	for _, b := range bounds {
		if b.segmentID == segmentID {
			return lo >= b.lo && hi <= b.hi
		}
	}
	return false
}

// requestRange extracts the range a request targets, used by
// checkIndexBounds for every request kind that carries a Range. Returns nil
// for any other request (insertText and insertTable use a Location instead).
func requestRange(req *docs.Request) *docs.Range {
	switch {
	case req.DeleteContentRange != nil:
		return req.DeleteContentRange.Range
	case req.UpdateTextStyle != nil:
		return req.UpdateTextStyle.Range
	case req.UpdateParagraphStyle != nil:
		return req.UpdateParagraphStyle.Range
	case req.CreateParagraphBullets != nil:
		return req.CreateParagraphBullets.Range
	case req.DeleteParagraphBullets != nil:
		return req.DeleteParagraphBullets.Range
	default:
		return nil
	}
}
