// Package reconcile diffs a pair of docmodel.Document values and emits the
// ordered batchUpdate request script that transforms one into the other
// (spec.md §4.B).
package reconcile

import "google.golang.org/api/docs/v1"

// Script is the ordered list of Docs API requests the reconciler produces.
// Applying it to base, in order, yields a document equal to desired under
// docmodel.Equal (spec.md §4.B).
//
// blockEnds and segmentBounds are bookkeeping the Index Planner
// (planner.go) uses for its self-checks; they are populated by appendBlock
// as reconcileTab assembles Requests segment by segment and are not part
// of the script's public meaning.
type Script struct {
	TabID    string
	Requests []*docs.Request

	blockEnds     []int
	segmentBounds []segmentBound
}

// appendBlock appends reqs (already diffed against one segment) to the
// script, translating that segment's own block boundaries and index bounds
// into the whole-script coordinate space the planner checks against.
func (s *Script) appendBlock(segmentID string, reqs []*docs.Request, blockEnds []int, lo, hi int64) {
	offset := len(s.Requests)
	s.Requests = append(s.Requests, reqs...)
	for _, e := range blockEnds {
		s.blockEnds = append(s.blockEnds, offset+e)
	}
	s.segmentBounds = append(s.segmentBounds, segmentBound{segmentID: segmentID, lo: lo, hi: hi})
}

// CommentScript is the sibling script for the Drive API comment thread
// (spec.md §4.B "Comments and replies are emitted to a sibling script").
// New top-level anchored comments are unsupported — only replies and
// resolutions on existing threads are reconcilable.
type CommentScript struct {
	Requests []CommentRequest
}

// CommentRequest is a tagged variant over the two comment operations the
// reconciler can express.
type CommentRequest struct {
	AddReply *AddReplyRequest
	Resolve  *ResolveRequest
}

type AddReplyRequest struct {
	CommentID string
	Content   string
}

type ResolveRequest struct {
	CommentID string
}
