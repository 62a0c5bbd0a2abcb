package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
	"github.com/extrasuite/docsrecon/internal/mock"
	"github.com/extrasuite/docsrecon/internal/reconcile"
)

func docOf(texts ...string) *docmodel.Document {
	content := make([]*docmodel.StructuralElement, len(texts))
	for i, text := range texts {
		content[i] = &docmodel.StructuralElement{Paragraph: &docmodel.Paragraph{
			Style:    &docs.ParagraphStyle{},
			Elements: []*docmodel.ParagraphElement{{TextRun: &docmodel.TextRun{Content: text, Style: &docmodel.TextStyle{}}}},
		}}
	}
	tab := &docmodel.Tab{TabID: "t1", Body: &docmodel.Segment{Kind: docmodel.SegmentBody, Content: content}}
	docmodel.Reindex(tab)
	return &docmodel.Document{Tabs: []*docmodel.Tab{tab}}
}

// reconcileAndApply runs the full pipeline: diff base->desired, apply the
// resulting script through the mock, and return the mock's resulting
// document for comparison against desired (spec.md §4.B "applying the
// script to base yields a document equal to desired").
func reconcileAndApply(t *testing.T, base, desired *docmodel.Document) *docmodel.Document {
	t.Helper()
	scripts, err := reconcile.Reconcile(base, desired)
	require.NoError(t, err)
	if len(scripts) == 0 {
		return base.Clone()
	}
	engine := mock.New()
	result := base
	for _, script := range scripts {
		var applyErr error
		result, _, applyErr = engine.Apply(result, script.TabID, script.Requests)
		require.NoError(t, applyErr)
	}
	return result
}

func TestScenarioS1SingleParagraphTextEdit(t *testing.T) {
	base := docOf("hello world\n")
	desired := docOf("hello there\n")
	result := reconcileAndApply(t, base, desired)
	ok, reason := docmodel.Equal(result, desired)
	assert.True(t, ok, reason)
}

func TestScenarioS2HeadingPromotionTextUnchanged(t *testing.T) {
	base := docOf("Title\n")
	desired := docOf("Title\n")
	desired.Tabs[0].Body.Content[0].Paragraph.Style = &docs.ParagraphStyle{NamedStyleType: "HEADING_1", HeadingId: "h1"}

	result := reconcileAndApply(t, base, desired)
	ok, reason := docmodel.Equal(result, desired)
	assert.True(t, ok, reason)
}

func TestScenarioS3BulletAdded(t *testing.T) {
	base := docOf("item\n")
	desired := docOf("item\n")
	desired.Tabs[0].Body.Content[0].Paragraph.Bullet = &docmodel.Bullet{TextStyle: &docmodel.TextStyle{}}

	result := reconcileAndApply(t, base, desired)
	require.NotNil(t, result.Tabs[0].Body.Content[0].Paragraph.Bullet)
	ok, reason := docmodel.Equal(result, desired)
	assert.True(t, ok, reason)
}

func TestScenarioMultiParagraphInsert(t *testing.T) {
	base := docOf("first\n")
	desired := docOf("first\n", "second\n", "third\n")
	result := reconcileAndApply(t, base, desired)
	ok, reason := docmodel.Equal(result, desired)
	assert.True(t, ok, reason)
}

func TestScenarioParagraphDeletedMergesNeighbors(t *testing.T) {
	base := docOf("keep\n", "remove\n", "also keep\n")
	desired := docOf("keep\n", "also keep\n")
	result := reconcileAndApply(t, base, desired)
	ok, reason := docmodel.Equal(result, desired)
	assert.True(t, ok, reason)
}

func TestIdempotenceNoChangeProducesEmptyScript(t *testing.T) {
	doc := docOf("unchanged\n")
	scripts, err := reconcile.Reconcile(doc, doc)
	require.NoError(t, err)
	assert.Empty(t, scripts)
}

func TestReconcileSkipsTabsMissingFromBase(t *testing.T) {
	base := &docmodel.Document{Tabs: []*docmodel.Tab{}}
	desired := docOf("x\n")
	scripts, err := reconcile.Reconcile(base, desired)
	require.NoError(t, err)
	assert.Empty(t, scripts)
}

// Three edited blocks separated by unchanged paragraphs: each block's
// delete-start index is computed against the document state after the
// earlier blocks already shifted it, so later blocks legitimately have a
// *larger* delete-start than earlier ones. The Index Planner must not
// reject this as a global ordering violation (it used to, before its
// descending-delete check was scoped per block).
func TestScenarioThreeBlockEditDoesNotTripIndexPlanner(t *testing.T) {
	base := docOf("AAAA\n", "unchanged one\n", "unchanged two\n", "BBBB\n")
	desired := docOf("XX\n", "unchanged one\n", "unchanged two\n", "YY\n")
	scripts, err := reconcile.Reconcile(base, desired)
	require.NoError(t, err)
	require.Len(t, scripts, 1)

	result := reconcileAndApply(t, base, desired)
	ok, reason := docmodel.Equal(result, desired)
	assert.True(t, ok, reason)
}
