package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

func paragraphWithRuns(runs ...*docmodel.TextRun) *docmodel.Paragraph {
	p := &docmodel.Paragraph{}
	for _, r := range runs {
		p.Elements = append(p.Elements, &docmodel.ParagraphElement{TextRun: r})
	}
	return p
}

func TestParagraphsToleratedIdenticalStyle(t *testing.T) {
	a := paragraphWithRuns(&docmodel.TextRun{Content: "hi\n", Style: &docmodel.TextStyle{FontFamily: "Arial"}})
	b := paragraphWithRuns(&docmodel.TextRun{Content: "hi\n", Style: &docmodel.TextStyle{FontFamily: "Arial"}})
	assert.True(t, paragraphsTolerated(a, b))
}

func TestParagraphsToleratedToleratesBoldOnlyDifference(t *testing.T) {
	a := paragraphWithRuns(&docmodel.TextRun{Content: "hi\n", Style: &docmodel.TextStyle{Bold: true}})
	b := paragraphWithRuns(&docmodel.TextRun{Content: "hi\n", Style: &docmodel.TextStyle{Bold: false}})
	assert.True(t, paragraphsTolerated(a, b))
}

func TestParagraphsToleratedToleratesRunBoundarySplit(t *testing.T) {
	a := paragraphWithRuns(&docmodel.TextRun{Content: "hello\n", Style: &docmodel.TextStyle{FontFamily: "Arial"}})
	b := paragraphWithRuns(
		&docmodel.TextRun{Content: "hel", Style: &docmodel.TextStyle{FontFamily: "Arial"}},
		&docmodel.TextRun{Content: "lo\n", Style: &docmodel.TextStyle{FontFamily: "Arial"}},
	)
	assert.True(t, paragraphsTolerated(a, b), "same text and same resolved style per rune tolerates a differing run split")
}

func TestParagraphsToleratedRejectsTextDifference(t *testing.T) {
	a := paragraphWithRuns(&docmodel.TextRun{Content: "hi\n", Style: &docmodel.TextStyle{}})
	b := paragraphWithRuns(&docmodel.TextRun{Content: "bye\n", Style: &docmodel.TextStyle{}})
	assert.False(t, paragraphsTolerated(a, b))
}

func TestParagraphsToleratedRejectsFontFamilyDifference(t *testing.T) {
	a := paragraphWithRuns(&docmodel.TextRun{Content: "hi\n", Style: &docmodel.TextStyle{FontFamily: "Arial"}})
	b := paragraphWithRuns(&docmodel.TextRun{Content: "hi\n", Style: &docmodel.TextStyle{FontFamily: "Times"}})
	assert.False(t, paragraphsTolerated(a, b))
}

func TestParagraphsToleratedRejectsForegroundColorDifference(t *testing.T) {
	a := paragraphWithRuns(&docmodel.TextRun{Content: "hi\n", Style: &docmodel.TextStyle{ForegroundColor: &docmodel.RGB{Red: 1}}})
	b := paragraphWithRuns(&docmodel.TextRun{Content: "hi\n", Style: &docmodel.TextStyle{ForegroundColor: &docmodel.RGB{Red: 0}}})
	assert.False(t, paragraphsTolerated(a, b))
}

func TestStyleEqualIgnoringBIUIgnoresBoldItalicUnderline(t *testing.T) {
	a := &docmodel.TextStyle{Bold: true, Italic: true, Underline: true}
	b := &docmodel.TextStyle{Bold: false, Italic: false, Underline: false}
	assert.True(t, styleEqualIgnoringBIU(a, b))
}

func TestStyleEqualIgnoringBIUHandlesNil(t *testing.T) {
	assert.True(t, styleEqualIgnoringBIU(nil, nil))
	assert.False(t, styleEqualIgnoringBIU(nil, &docmodel.TextStyle{}))
}

func TestRGBEqual(t *testing.T) {
	assert.True(t, rgbEqual(nil, nil))
	assert.False(t, rgbEqual(nil, &docmodel.RGB{Red: 1}))
	assert.True(t, rgbEqual(&docmodel.RGB{Red: 0.5}, &docmodel.RGB{Red: 0.5}))
	assert.False(t, rgbEqual(&docmodel.RGB{Red: 0.5}, &docmodel.RGB{Red: 0.6}))
}

func TestLinkEqual(t *testing.T) {
	assert.True(t, linkEqual(nil, nil))
	assert.False(t, linkEqual(nil, &docs.Link{Url: "x"}))
	assert.True(t, linkEqual(&docs.Link{Url: "x"}, &docs.Link{Url: "x"}))
	assert.False(t, linkEqual(&docs.Link{Url: "x"}, &docs.Link{Url: "y"}))
}
