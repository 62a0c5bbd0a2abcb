package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

func TestClearInheritedRunStyleForHeadingClearsBoldUnconditionally(t *testing.T) {
	p := &docmodel.Paragraph{Elements: []*docmodel.ParagraphElement{
		{TextRun: &docmodel.TextRun{Content: "x\n", Style: &docmodel.TextStyle{Bold: true, Explicit: docmodel.FieldSet{docmodel.FieldBold: true}}}},
	}}
	clearInheritedRunStyleForHeading(p)
	assert.False(t, p.Elements[0].TextRun.Style.Bold)
}

func TestClearInheritedRunStyleForHeadingPreservesExplicitItalic(t *testing.T) {
	p := &docmodel.Paragraph{Elements: []*docmodel.ParagraphElement{
		{TextRun: &docmodel.TextRun{Content: "x\n", Style: &docmodel.TextStyle{Italic: true, Explicit: docmodel.FieldSet{docmodel.FieldItalic: true}}}},
	}}
	clearInheritedRunStyleForHeading(p)
	assert.True(t, p.Elements[0].TextRun.Style.Italic, "explicitly-set italic survives a heading promotion")
}

func TestClearInheritedRunStyleForHeadingClearsInheritedItalic(t *testing.T) {
	p := &docmodel.Paragraph{Elements: []*docmodel.ParagraphElement{
		{TextRun: &docmodel.TextRun{Content: "x\n", Style: &docmodel.TextStyle{Italic: true}}},
	}}
	clearInheritedRunStyleForHeading(p)
	assert.False(t, p.Elements[0].TextRun.Style.Italic, "non-explicit (inherited) italic is cleared by a heading promotion")
}

func TestHandleUpdateParagraphStyleAppliesHeadingRule(t *testing.T) {
	tab := &docmodel.Tab{Body: &docmodel.Segment{Kind: docmodel.SegmentBody, Content: []*docmodel.StructuralElement{
		{Paragraph: &docmodel.Paragraph{
			Style: &docs.ParagraphStyle{},
			Elements: []*docmodel.ParagraphElement{
				{TextRun: &docmodel.TextRun{Content: "x\n", Style: &docmodel.TextStyle{Bold: true}}},
			},
		}},
	}}}
	docmodel.Reindex(tab)

	_, err := handleUpdateParagraphStyle(tab, &docs.UpdateParagraphStyleRequest{
		Range:          &docs.Range{StartIndex: 1, EndIndex: 3},
		ParagraphStyle: &docs.ParagraphStyle{NamedStyleType: "HEADING_1", HeadingId: "h1"},
		Fields:         "*",
	})
	require.NoError(t, err)

	p := tab.Body.Content[0].Paragraph
	assert.Equal(t, "HEADING_1", p.Style.NamedStyleType)
	assert.False(t, p.Elements[0].TextRun.Style.Bold)
}

func TestHandleInsertTextStripsLinkStyleOnNonExplicitLink(t *testing.T) {
	tab := &docmodel.Tab{Body: &docmodel.Segment{Kind: docmodel.SegmentBody, Content: []*docmodel.StructuralElement{
		{Paragraph: &docmodel.Paragraph{
			Style: &docs.ParagraphStyle{},
			Elements: []*docmodel.ParagraphElement{
				{TextRun: &docmodel.TextRun{Content: "link\n", Style: &docmodel.TextStyle{Link: &docs.Link{Url: "https://example.com"}}}},
			},
		}},
	}}}
	docmodel.Reindex(tab)

	_, err := handleInsertText(tab, &docs.InsertTextRequest{Location: &docs.Location{Index: 3}, Text: "X"})
	require.NoError(t, err)

	p := tab.Body.Content[0].Paragraph
	for _, el := range p.Elements {
		if el.TextRun != nil && el.TextRun.Content == "X" {
			assert.Nil(t, el.TextRun.Style.Link, "inserting into a link-styled run strips the link unless it was explicit")
		}
	}
}

func TestHandleInsertTextPreservesExplicitLinkStyle(t *testing.T) {
	style := &docmodel.TextStyle{Link: &docs.Link{Url: "https://example.com"}, Explicit: docmodel.FieldSet{docmodel.FieldLink: true}}
	tab := &docmodel.Tab{Body: &docmodel.Segment{Kind: docmodel.SegmentBody, Content: []*docmodel.StructuralElement{
		{Paragraph: &docmodel.Paragraph{
			Style:    &docs.ParagraphStyle{},
			Elements: []*docmodel.ParagraphElement{{TextRun: &docmodel.TextRun{Content: "link\n", Style: style}}},
		}},
	}}}
	docmodel.Reindex(tab)

	_, err := handleInsertText(tab, &docs.InsertTextRequest{Location: &docs.Location{Index: 3}, Text: "X"})
	require.NoError(t, err)

	found := false
	for _, el := range tab.Body.Content[0].Paragraph.Elements {
		if el.TextRun != nil && el.TextRun.Content == "X" {
			found = true
			assert.NotNil(t, el.TextRun.Style.Link)
		}
	}
	assert.True(t, found)
}
