package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

func docWithText(text string) *docmodel.Document {
	tab := &docmodel.Tab{TabID: "t1", Body: &docmodel.Segment{Kind: docmodel.SegmentBody, Content: []*docmodel.StructuralElement{
		{Paragraph: &docmodel.Paragraph{
			Style:    &docs.ParagraphStyle{},
			Elements: []*docmodel.ParagraphElement{{TextRun: &docmodel.TextRun{Content: text, Style: &docmodel.TextStyle{}}}},
		}},
	}}}
	docmodel.Reindex(tab)
	return &docmodel.Document{Tabs: []*docmodel.Tab{tab}}
}

func TestApplyInsertTextAtStart(t *testing.T) {
	doc := docWithText("world\n")
	engine := New()
	result, replies, err := engine.Apply(doc, "t1", []*docs.Request{
		{InsertText: &docs.InsertTextRequest{Location: &docs.Location{Index: 1}, Text: "hello "}},
	})
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "hello world\n", result.Tab("t1").Body.Content[0].Paragraph.Text())
}

func TestApplyLeavesOriginalDocumentUntouched(t *testing.T) {
	doc := docWithText("world\n")
	engine := New()
	_, _, err := engine.Apply(doc, "t1", []*docs.Request{
		{InsertText: &docs.InsertTextRequest{Location: &docs.Location{Index: 1}, Text: "hello "}},
	})
	require.NoError(t, err)
	assert.Equal(t, "world\n", doc.Tab("t1").Body.Content[0].Paragraph.Text())
}

func TestApplyRejectsBatchAtomically(t *testing.T) {
	doc := docWithText("world\n")
	engine := New()
	result, replies, err := engine.Apply(doc, "t1", []*docs.Request{
		{InsertText: &docs.InsertTextRequest{Location: &docs.Location{Index: 1}, Text: "hello "}},
		{InsertText: &docs.InsertTextRequest{Location: &docs.Location{Index: 9999}, Text: "oops"}},
	})
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Nil(t, replies)
}

func TestApplyUnknownTabErrors(t *testing.T) {
	doc := docWithText("x\n")
	engine := New()
	_, _, err := engine.Apply(doc, "missing", nil)
	assert.Error(t, err)
}

func TestApplyInsertTextSplitsAtNewline(t *testing.T) {
	doc := docWithText("ac\n")
	engine := New()
	result, _, err := engine.Apply(doc, "t1", []*docs.Request{
		{InsertText: &docs.InsertTextRequest{Location: &docs.Location{Index: 2}, Text: "b\n"}},
	})
	require.NoError(t, err)
	body := result.Tab("t1").Body
	require.Len(t, body.Content, 2)
	assert.Equal(t, "ab\n", body.Content[0].Paragraph.Text())
	assert.Equal(t, "c\n", body.Content[1].Paragraph.Text())
}

func TestApplyDeleteEntireParagraphMergesCleanly(t *testing.T) {
	tab := &docmodel.Tab{TabID: "t1", Body: &docmodel.Segment{Kind: docmodel.SegmentBody, Content: []*docmodel.StructuralElement{
		{Paragraph: &docmodel.Paragraph{Style: &docs.ParagraphStyle{}, Elements: []*docmodel.ParagraphElement{{TextRun: &docmodel.TextRun{Content: "keep\n", Style: &docmodel.TextStyle{}}}}}},
		{Paragraph: &docmodel.Paragraph{Style: &docs.ParagraphStyle{}, Elements: []*docmodel.ParagraphElement{{TextRun: &docmodel.TextRun{Content: "remove\n", Style: &docmodel.TextStyle{}}}}}},
		{Paragraph: &docmodel.Paragraph{Style: &docs.ParagraphStyle{}, Elements: []*docmodel.ParagraphElement{{TextRun: &docmodel.TextRun{Content: "also keep\n", Style: &docmodel.TextStyle{}}}}}},
	}}}
	docmodel.Reindex(tab)
	doc := &docmodel.Document{Tabs: []*docmodel.Tab{tab}}

	middle := tab.Body.Content[1]
	engine := New()
	result, _, err := engine.Apply(doc, "t1", []*docs.Request{
		{DeleteContentRange: &docs.DeleteContentRangeRequest{Range: &docs.Range{StartIndex: middle.StartIndex, EndIndex: middle.EndIndex}}},
	})
	require.NoError(t, err)
	body := result.Tab("t1").Body
	require.Len(t, body.Content, 2, "deleting a whole paragraph must not leave a spurious empty one behind")
	assert.Equal(t, "keep\n", body.Content[0].Paragraph.Text())
	assert.Equal(t, "also keep\n", body.Content[1].Paragraph.Text())
}

func TestApplyUpdateTextStyleSplitsRun(t *testing.T) {
	doc := docWithText("hello\n")
	engine := New()
	result, _, err := engine.Apply(doc, "t1", []*docs.Request{
		{UpdateTextStyle: &docs.UpdateTextStyleRequest{
			Range:     &docs.Range{StartIndex: 1, EndIndex: 3},
			TextStyle: &docs.TextStyle{Bold: true},
			Fields:    "bold",
		}},
	})
	require.NoError(t, err)
	p := result.Tab("t1").Body.Content[0].Paragraph
	assert.Equal(t, "hello\n", p.Text())
	require.Len(t, p.Elements, 2)
	assert.True(t, p.Elements[0].TextRun.Style.Bold)
	assert.True(t, p.Elements[0].TextRun.Style.Explicit.Has(docmodel.FieldBold))
	assert.False(t, p.Elements[1].TextRun.Style.Bold)
}

func TestApplyCreateParagraphBulletsAssignsListID(t *testing.T) {
	doc := docWithText("item\n")
	engine := New()
	result, replies, err := engine.Apply(doc, "t1", []*docs.Request{
		{CreateParagraphBullets: &docs.CreateParagraphBulletsRequest{Range: &docs.Range{StartIndex: 1, EndIndex: 5}}},
	})
	require.NoError(t, err)
	require.Len(t, replies, 1)
	p := result.Tab("t1").Body.Content[0].Paragraph
	require.NotNil(t, p.Bullet)
	assert.NotEmpty(t, p.Bullet.ListID)
}

func TestApplyCreateHeaderAssignsID(t *testing.T) {
	doc := docWithText("x\n")
	engine := New()
	result, replies, err := engine.Apply(doc, "t1", []*docs.Request{
		{CreateHeader: &docs.CreateHeaderRequest{Type: "DEFAULT"}},
	})
	require.NoError(t, err)
	require.Len(t, replies, 1)
	require.NotNil(t, replies[0].CreateHeader)
	id := replies[0].CreateHeader.HeaderId
	assert.NotEmpty(t, id)
	assert.Contains(t, result.Tab("t1").Headers, id)
}

func TestApplyAddDocumentTabThenDeleteTab(t *testing.T) {
	doc := docWithText("x\n")
	engine := New()
	result, _, err := engine.Apply(doc, "t1", []*docs.Request{
		{AddDocumentTab: &docs.AddDocumentTabRequest{}},
	})
	require.NoError(t, err)
	require.Len(t, result.Tabs, 2)
	newTabID := result.Tabs[1].TabID

	result2, _, err := engine.Apply(result, newTabID, []*docs.Request{
		{DeleteTab: &docs.DeleteTabRequest{TabId: newTabID}},
	})
	require.NoError(t, err)
	assert.Len(t, result2.Tabs, 1)
}
