package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
	"github.com/extrasuite/docsrecon/internal/mock"
)

// Result is the outcome of running one script through both the mock and a
// real transport (spec.md §4.F).
type Result struct {
	Agree      bool
	Mismatches []string // human-readable disagreements, empty when Agree
}

// Composite runs requests against both mock (applied to base) and the live
// document at documentID via transport, then compares the two outcomes
// under the tolerance set of spec.md §4.F. If mismatchLog is non-nil and
// the two disagree, both compared documents plus the mismatch summary are
// written to it as JSON (spec.md §7 "Mismatch log").
func Composite(ctx context.Context, base *docmodel.Document, tabID string, requests []*docs.Request, documentID string, transport Transport, mismatchLog io.Writer) (*Result, error) {
	engine := mock.New()
	mockDoc, _, mockErr := engine.Apply(base, tabID, requests)

	_, realErr := transport.BatchUpdate(ctx, documentID, requests)

	// "Both sides must agree on request-rejection" (spec.md §4.F).
	if (mockErr == nil) != (realErr == nil) {
		return &Result{Agree: false, Mismatches: []string{
			fmt.Sprintf("rejection disagreement: mock error=%v, real error=%v", mockErr, realErr),
		}}, nil
	}
	if mockErr != nil {
		return &Result{Agree: true}, nil // both rejected; nothing further to compare
	}

	realWireDoc, err := transport.GetDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("verify: fetching real document: %w", err)
	}
	realDoc := fromAPIDocument(realWireDoc)

	mockTab := mockDoc.Tab(tabID)
	realTab := realDoc.FirstTab()

	mismatches := compareTabs(mockTab, realTab)
	result := &Result{Agree: len(mismatches) == 0, Mismatches: mismatches}

	if !result.Agree && mismatchLog != nil {
		writeMismatchLog(mismatchLog, mockDoc, realDoc, mismatches)
	}
	return result, nil
}

// compareTabs reports every body-paragraph mismatch between mock and real
// output that survives the §4.F tolerance set, normalizing away explicit
// provenance and server-assigned ids the same way docmodel.Equal does.
func compareTabs(mock, real *docmodel.Tab) []string {
	var mismatches []string
	if mock == nil || real == nil {
		if mock != real {
			mismatches = append(mismatches, "one side has no matching tab")
		}
		return mismatches
	}
	mismatches = append(mismatches, compareSegments("body", mock.Body, real.Body)...)
	return mismatches
}

func compareSegments(label string, mock, real *docmodel.Segment) []string {
	var mismatches []string
	if len(mock.Content) != len(real.Content) {
		return []string{fmt.Sprintf("%s: element count %d != %d", label, len(mock.Content), len(real.Content))}
	}
	for i := range mock.Content {
		me, re := mock.Content[i], real.Content[i]
		if me.Kind() != re.Kind() {
			mismatches = append(mismatches, fmt.Sprintf("%s[%d]: kind %s != %s", label, i, me.Kind(), re.Kind()))
			continue
		}
		if me.Paragraph != nil && re.Paragraph != nil {
			if ok, reason := docmodel.Equal(&docmodel.Document{Tabs: []*docmodel.Tab{
				{Body: &docmodel.Segment{Content: []*docmodel.StructuralElement{me}}},
			}}, &docmodel.Document{Tabs: []*docmodel.Tab{
				{Body: &docmodel.Segment{Content: []*docmodel.StructuralElement{re}}},
			}}); !ok && !paragraphsTolerated(me.Paragraph, re.Paragraph) {
				mismatches = append(mismatches, fmt.Sprintf("%s[%d]: %s", label, i, reason))
			}
		}
	}
	return mismatches
}

func writeMismatchLog(w io.Writer, mockDoc, realDoc *docmodel.Document, mismatches []string) {
	payload := struct {
		Mismatches []string        `json:"mismatches"`
		Mock       json.RawMessage `json:"mock"`
		Real       json.RawMessage `json:"real"`
	}{Mismatches: mismatches}
	payload.Mock, _ = json.Marshal(mockDoc)
	payload.Real, _ = json.Marshal(realDoc)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}
