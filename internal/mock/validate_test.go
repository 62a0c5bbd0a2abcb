package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

func validParagraph(text string) *docmodel.Paragraph {
	return &docmodel.Paragraph{
		Style:    &docs.ParagraphStyle{},
		Elements: []*docmodel.ParagraphElement{{TextRun: &docmodel.TextRun{Content: text, Style: &docmodel.TextStyle{}}}},
	}
}

func TestValidateParagraphAcceptsTrailingNewline(t *testing.T) {
	assert.NoError(t, validateParagraph(validParagraph("hi\n")))
}

func TestValidateParagraphRejectsMissingTrailingNewline(t *testing.T) {
	assert.Error(t, validateParagraph(validParagraph("hi")))
}

func TestValidateParagraphRejectsInteriorNewline(t *testing.T) {
	p := &docmodel.Paragraph{Elements: []*docmodel.ParagraphElement{
		{TextRun: &docmodel.TextRun{Content: "broken\nrun", Style: &docmodel.TextStyle{}}},
		{TextRun: &docmodel.TextRun{Content: "tail\n", Style: &docmodel.TextStyle{}}},
	}}
	assert.Error(t, validateParagraph(p))
}

func TestValidateSegmentRejectsEmptyContent(t *testing.T) {
	assert.Error(t, validateSegment(&docmodel.Segment{}))
}

func TestValidateTableRejectsUnevenRowWidth(t *testing.T) {
	table := &docmodel.Table{Rows: []*docmodel.TableRow{
		{Cells: []*docmodel.TableCell{{Content: []*docmodel.StructuralElement{{Paragraph: validParagraph("a\n")}}}}},
		{Cells: []*docmodel.TableCell{
			{Content: []*docmodel.StructuralElement{{Paragraph: validParagraph("b\n")}}},
			{Content: []*docmodel.StructuralElement{{Paragraph: validParagraph("c\n")}}},
		}},
	}}
	assert.Error(t, validateTable(table))
}

func TestValidateTableSkipsPlaceholderCells(t *testing.T) {
	table := &docmodel.Table{Rows: []*docmodel.TableRow{
		{Cells: []*docmodel.TableCell{{Content: []*docmodel.StructuralElement{{Paragraph: validParagraph("a\n")}}}, {Placeholder: true}}},
	}}
	assert.NoError(t, validateTable(table))
}
