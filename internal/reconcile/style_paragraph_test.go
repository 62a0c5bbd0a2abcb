package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

func paragraphWithStyle(text string, style *docs.ParagraphStyle) *docmodel.Paragraph {
	return &docmodel.Paragraph{
		Style:    style,
		Elements: []*docmodel.ParagraphElement{{TextRun: &docmodel.TextRun{Content: text, Style: &docmodel.TextStyle{}}}},
	}
}

func TestDiffParagraphStyleOnlyNoChange(t *testing.T) {
	style := &docs.ParagraphStyle{NamedStyleType: "NORMAL_TEXT"}
	a := paragraphWithStyle("x\n", style)
	b := paragraphWithStyle("x\n", &docs.ParagraphStyle{NamedStyleType: "NORMAL_TEXT"})
	assert.Empty(t, diffParagraphStyleOnly(a, b, 1))
}

func TestDiffParagraphStyleOnlyHeadingPromotion(t *testing.T) {
	a := paragraphWithStyle("x\n", &docs.ParagraphStyle{NamedStyleType: "NORMAL_TEXT"})
	b := paragraphWithStyle("x\n", &docs.ParagraphStyle{NamedStyleType: "HEADING_1", HeadingId: "h1"})
	reqs := diffParagraphStyleOnly(a, b, 1)
	require.Len(t, reqs, 1)
	require.NotNil(t, reqs[0].UpdateParagraphStyle)
	assert.Equal(t, "*", reqs[0].UpdateParagraphStyle.Fields)
	assert.Equal(t, "HEADING_1", reqs[0].UpdateParagraphStyle.ParagraphStyle.NamedStyleType)
}

func TestDiffBulletCreate(t *testing.T) {
	a := paragraphWithStyle("x\n", &docs.ParagraphStyle{})
	b := paragraphWithStyle("x\n", &docs.ParagraphStyle{})
	b.Bullet = &docmodel.Bullet{ListID: "kix.abc"}
	reqs := diffBullet(a, b, 1)
	require.Len(t, reqs, 1)
	assert.NotNil(t, reqs[0].CreateParagraphBullets)
}

func TestDiffBulletDelete(t *testing.T) {
	a := paragraphWithStyle("x\n", &docs.ParagraphStyle{})
	a.Bullet = &docmodel.Bullet{ListID: "kix.abc"}
	b := paragraphWithStyle("x\n", &docs.ParagraphStyle{})
	reqs := diffBullet(a, b, 1)
	require.Len(t, reqs, 1)
	assert.NotNil(t, reqs[0].DeleteParagraphBullets)
}

func TestDiffBulletMoveBetweenListsIsDeleteThenCreate(t *testing.T) {
	a := paragraphWithStyle("x\n", &docs.ParagraphStyle{})
	a.Bullet = &docmodel.Bullet{ListID: "kix.one"}
	b := paragraphWithStyle("x\n", &docs.ParagraphStyle{})
	b.Bullet = &docmodel.Bullet{ListID: "kix.two"}
	reqs := diffBullet(a, b, 1)
	require.Len(t, reqs, 2)
	assert.NotNil(t, reqs[0].DeleteParagraphBullets)
	assert.NotNil(t, reqs[1].CreateParagraphBullets)
}

func TestDiffBulletNoChange(t *testing.T) {
	a := paragraphWithStyle("x\n", &docs.ParagraphStyle{})
	a.Bullet = &docmodel.Bullet{ListID: "kix.one", NestingLevel: 2}
	b := paragraphWithStyle("x\n", &docs.ParagraphStyle{})
	b.Bullet = &docmodel.Bullet{ListID: "kix.one", NestingLevel: 2}
	assert.Empty(t, diffBullet(a, b, 1))
}
