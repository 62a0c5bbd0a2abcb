package serde

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

func docWithElements(elems ...*docmodel.ParagraphElement) *docmodel.Document {
	tab := &docmodel.Tab{Body: &docmodel.Segment{Kind: docmodel.SegmentBody, Content: []*docmodel.StructuralElement{
		{Paragraph: &docmodel.Paragraph{Style: &docs.ParagraphStyle{}, Elements: elems}},
	}}}
	return &docmodel.Document{Tabs: []*docmodel.Tab{tab}}
}

func TestValidatePairAcceptsMatchingImmutableCounts(t *testing.T) {
	pristine := docWithElements(&docmodel.ParagraphElement{HorizontalRule: &docmodel.HorizontalRule{}})
	desired := docWithElements(&docmodel.ParagraphElement{HorizontalRule: &docmodel.HorizontalRule{}})
	assert.NoError(t, ValidatePair(pristine, desired))
}

func TestValidatePairRejectsChangedHorizontalRuleCount(t *testing.T) {
	pristine := docWithElements(&docmodel.ParagraphElement{HorizontalRule: &docmodel.HorizontalRule{}})
	desired := docWithElements()
	err := ValidatePair(pristine, desired)
	var iecErr *ImmutableElementCountChangedError
	assert.ErrorAs(t, err, &iecErr)
}

func TestValidatePairRejectsIntroducedImmutableKind(t *testing.T) {
	pristine := docWithElements()
	desired := docWithElements(&docmodel.ParagraphElement{InlineObjectElement: &docmodel.InlineObjectElement{ObjectID: "o1"}})
	err := ValidatePair(pristine, desired)
	var iecErr *ImmutableElementCountChangedError
	assert.ErrorAs(t, err, &iecErr)
}

func TestValidatePairIgnoresTextRunChanges(t *testing.T) {
	pristine := docWithElements(&docmodel.ParagraphElement{TextRun: &docmodel.TextRun{Content: "a\n", Style: &docmodel.TextStyle{}}})
	desired := docWithElements(&docmodel.ParagraphElement{TextRun: &docmodel.TextRun{Content: "completely different\n", Style: &docmodel.TextStyle{}}})
	assert.NoError(t, ValidatePair(pristine, desired))
}
