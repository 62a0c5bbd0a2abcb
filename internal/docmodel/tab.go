package docmodel

import (
	"sort"

	"google.golang.org/api/docs/v1"
)

// Tab owns a body segment and the optional header/footer/footnote segments
// referenced from within it, plus per-tab style tables (spec.md §3).
// Cross-segment references (a footnote-reference element pointing at a
// footnote segment; a comment anchor pointing at a comment id) are by
// stable string id, resolved through the maps below — never by pointer
// (spec.md "Ownership and lifecycle").
type Tab struct {
	TabID string
	Title string
	Index int

	Body      *Segment
	Headers   map[string]*Segment // segment id -> header segment
	Footers   map[string]*Segment // segment id -> footer segment
	Footnotes map[string]*Segment // segment id -> footnote segment

	DocumentStyle     *docs.DocumentStyle
	NamedStyles       *docs.NamedStyles
	InlineObjects     map[string]*docs.InlineObject
	PositionedObjects map[string]*docs.PositionedObject
	NamedRanges       map[string]*docs.NamedRanges
	Lists             map[string]*docs.List

	// Comments and Replies are not part of the Document's structural
	// content — they are anchored by range but out-of-band from the
	// reconciler's structural diff (spec.md §4.B "Comments and replies").
	Comments map[string]*Comment
}

// Comment is the minimal shape the reconciler needs to detect new replies
// and resolutions (spec.md §4.B); full comment content lives in Drive, not
// Docs, and is out of this core's scope.
type Comment struct {
	CommentID string
	Resolved  bool
	Replies   []Reply
}

type Reply struct {
	ReplyID string
	Content string
}

func cloneSegmentMap(m map[string]*Segment) map[string]*Segment {
	if m == nil {
		return nil
	}
	out := make(map[string]*Segment, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}

// Clone deep-copies a tab's segments. Style tables (DocumentStyle,
// NamedStyles, InlineObjects, ...) are treated as immutable snapshots within
// a mock session and shallow-copied, so the clone shares them.
func (t *Tab) Clone() *Tab {
	if t == nil {
		return nil
	}
	out := &Tab{
		TabID:             t.TabID,
		Title:             t.Title,
		Index:             t.Index,
		Body:              t.Body.Clone(),
		Headers:           cloneSegmentMap(t.Headers),
		Footers:           cloneSegmentMap(t.Footers),
		Footnotes:         cloneSegmentMap(t.Footnotes),
		DocumentStyle:     t.DocumentStyle,
		NamedStyles:       t.NamedStyles,
		InlineObjects:     t.InlineObjects,
		PositionedObjects: t.PositionedObjects,
		NamedRanges:       t.NamedRanges,
		Lists:             t.Lists,
	}
	if t.Comments != nil {
		out.Comments = make(map[string]*Comment, len(t.Comments))
		for k, v := range t.Comments {
			cv := *v
			cv.Replies = append([]Reply(nil), v.Replies...)
			out.Comments[k] = &cv
		}
	}
	return out
}

// Segment resolves a segment by kind and id, used to follow footnote and
// header/footer references during indexing and diffing.
func (t *Tab) Segment(kind SegmentKind, segmentID string) *Segment {
	switch kind {
	case SegmentBody:
		return t.Body
	case SegmentHeader:
		return t.Headers[segmentID]
	case SegmentFooter:
		return t.Footers[segmentID]
	case SegmentFootnote:
		return t.Footnotes[segmentID]
	}
	return nil
}

// AllSegments returns every segment owned by the tab, body first, in a
// stable order (sorted by segment id within each kind) — used by the
// mock's centralized reindex-and-normalize pass (spec.md §4.D) which must
// walk every segment of every tab after each request.
func (t *Tab) AllSegments() []*Segment {
	segs := make([]*Segment, 0, 1+len(t.Headers)+len(t.Footers)+len(t.Footnotes))
	if t.Body != nil {
		segs = append(segs, t.Body)
	}
	segs = append(segs, sortedSegmentValues(t.Headers)...)
	segs = append(segs, sortedSegmentValues(t.Footers)...)
	segs = append(segs, sortedSegmentValues(t.Footnotes)...)
	return segs
}

func sortedSegmentValues(m map[string]*Segment) []*Segment {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*Segment, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}
