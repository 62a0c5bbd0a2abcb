// Package mock is the pure-function oracle for the Google Docs REST API
// (spec.md §4.D): it applies a []*docs.Request script to a docmodel.Document
// and returns the resulting document plus the per-request replies, with no
// I/O and no shared mutable state. Its job is to be indistinguishable from
// the real API under the equality relation of spec.md §8, so the reconciler
// and the composite verifier can both be checked against it offline.
package mock

import (
	"fmt"

	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// Engine applies request scripts to a cloned document, one request at a
// time, each followed by the centralized reindex-and-normalize pass
// (spec.md §4.D). A batch either fully succeeds — document, reply per
// request — or fails and leaves the caller's original document untouched:
// Apply mutates only the clone it returns, never doc itself.
type Engine struct{}

// New returns a ready Engine. The mock carries no state between calls.
func New() *Engine { return &Engine{} }

// Apply executes requests against tabID within doc and returns the
// resulting document and one reply per request, in order. On error, the
// returned document is nil — the whole batch is rejected atomically,
// matching the real API (spec.md §4.D "a batch either fully succeeds or is
// rejected atomically").
func (e *Engine) Apply(doc *docmodel.Document, tabID string, requests []*docs.Request) (*docmodel.Document, []*docs.Reply, error) {
	next := doc.Clone()
	tab := next.Tab(tabID)
	if tab == nil {
		return nil, nil, fmt.Errorf("mock: unknown tab %q", tabID)
	}

	replies := make([]*docs.Reply, 0, len(requests))
	for i, req := range requests {
		var reply *docs.Reply
		var err error
		switch {
		case req.AddDocumentTab != nil:
			reply, tab = handleAddDocumentTab(next, req.AddDocumentTab)
		case req.DeleteTab != nil:
			reply = handleDeleteTab(next, req.DeleteTab.TabId)
		default:
			reply, err = dispatch(tab, req)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("mock: request %d: %w", i, err)
		}
		if tab != nil {
			docmodel.NormalizeRuns(tab)
			docmodel.Reindex(tab)
			if err := validateTab(tab); err != nil {
				return nil, nil, fmt.Errorf("mock: request %d left the document invalid: %w", i, err)
			}
		}
		replies = append(replies, reply)
	}
	return next, replies, nil
}

// resolveSegment looks up the segment a request targets by its segmentId —
// "" means the body (spec.md §3 Index invariant).
func resolveSegment(tab *docmodel.Tab, segmentID string) (*docmodel.Segment, error) {
	if segmentID == "" {
		return tab.Body, nil
	}
	if seg, ok := tab.Headers[segmentID]; ok {
		return seg, nil
	}
	if seg, ok := tab.Footers[segmentID]; ok {
		return seg, nil
	}
	if seg, ok := tab.Footnotes[segmentID]; ok {
		return seg, nil
	}
	return nil, fmt.Errorf("unknown segment %q", segmentID)
}
