package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

func segmentOf(paragraphs ...string) *docmodel.Segment {
	seg := &docmodel.Segment{Kind: docmodel.SegmentBody}
	for _, p := range paragraphs {
		seg.Content = append(seg.Content, paragraphElement(p))
	}
	tab := &docmodel.Tab{Body: seg}
	docmodel.Reindex(tab)
	return seg
}

func TestDiffSegmentNoChangeEmitsNothing(t *testing.T) {
	base := segmentOf("same\n")
	desired := segmentOf("same\n")
	reqs, _, err := diffSegment(base, desired)
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestDiffSegmentPureInsertEmitsInsertText(t *testing.T) {
	base := segmentOf("first\n")
	desired := segmentOf("first\n", "second\n")
	reqs, _, err := diffSegment(base, desired)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.NotNil(t, reqs[0].InsertText)
	assert.Equal(t, "second\n", reqs[0].InsertText.Text)
}

func TestDiffSegmentPureDeleteEmitsDeleteContentRange(t *testing.T) {
	base := segmentOf("first\n", "second\n")
	desired := segmentOf("first\n")
	reqs, _, err := diffSegment(base, desired)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	require.NotNil(t, reqs[0].DeleteContentRange)
}

func TestDiffSegmentSingleParagraphTextEditUsesPrefixSuffixDiff(t *testing.T) {
	base := segmentOf("hello world\n")
	desired := segmentOf("hello there\n")
	reqs, _, err := diffSegment(base, desired)
	require.NoError(t, err)
	// common prefix "hello " and suffix "\n" survive; only "world"->"there" is touched
	var hasDelete, hasInsert bool
	for _, r := range reqs {
		if r.DeleteContentRange != nil {
			hasDelete = true
		}
		if r.InsertText != nil {
			hasInsert = true
			assert.Equal(t, "there", r.InsertText.Text)
		}
	}
	assert.True(t, hasDelete)
	assert.True(t, hasInsert)
}

func TestAnchorForFirstElementUsesItsOwnStart(t *testing.T) {
	base := segmentOf("only\n").Content
	assert.Equal(t, base[0].StartIndex, anchorFor(base, 0))
}

func bulletedParagraphElement(text, listID string) *docmodel.StructuralElement {
	el := paragraphElement(text)
	el.Paragraph.Bullet = &docmodel.Bullet{ListID: listID}
	return el
}

// A 1:1 paragraph replace that both shortens the text and adds a bullet
// must anchor the style/bullet request at the paragraph's own pre-edit
// start index, not shifted by its own text-length delta — only later
// paragraphs move by that delta.
func TestDiffReplaceBlockBulletRangeIgnoresOwnTextShift(t *testing.T) {
	base := &docmodel.Segment{Kind: docmodel.SegmentBody, Content: []*docmodel.StructuralElement{
		paragraphElement("aaaa\n"), paragraphElement("second\n"),
	}}
	desired := &docmodel.Segment{Kind: docmodel.SegmentBody, Content: []*docmodel.StructuralElement{
		bulletedParagraphElement("aa\n", "list1"), paragraphElement("second\n"),
	}}
	tab := &docmodel.Tab{Body: base}
	docmodel.Reindex(tab)
	desiredTab := &docmodel.Tab{Body: desired}
	docmodel.Reindex(desiredTab)

	reqs, _, err := diffSegment(base, desired)
	require.NoError(t, err)

	var bulletReq *docs.Request
	for _, r := range reqs {
		if r.CreateParagraphBullets != nil {
			bulletReq = r
		}
	}
	require.NotNil(t, bulletReq, "expected a createParagraphBullets request")
	rng := bulletReq.CreateParagraphBullets.Range
	assert.Equal(t, base.Content[0].StartIndex, rng.StartIndex, "bullet range must start at the paragraph's own pre-edit start, not shifted by its own text-length delta")
	assert.GreaterOrEqual(t, rng.StartIndex, int64(0))
}
