package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

func paragraphElement(text string) *docmodel.StructuralElement {
	return &docmodel.StructuralElement{Paragraph: &docmodel.Paragraph{
		Style:    &docs.ParagraphStyle{},
		Elements: []*docmodel.ParagraphElement{{TextRun: &docmodel.TextRun{Content: text, Style: &docmodel.TextStyle{}}}},
	}}
}

func TestFingerprintSameTextSamePrint(t *testing.T) {
	a := paragraphElement("hello\n")
	b := paragraphElement("hello\n")
	assert.Equal(t, fingerprint(a), fingerprint(b))
}

func TestFingerprintIgnoresParagraphStyle(t *testing.T) {
	a := paragraphElement("hello\n")
	b := paragraphElement("hello\n")
	b.Paragraph.Style = &docs.ParagraphStyle{NamedStyleType: "HEADING_1", HeadingId: "h1"}
	assert.Equal(t, fingerprint(a), fingerprint(b), "heading promotion must fingerprint as the same paragraph (spec.md S2)")
}

func TestFingerprintDiffersOnText(t *testing.T) {
	a := paragraphElement("hello\n")
	b := paragraphElement("goodbye\n")
	assert.NotEqual(t, fingerprint(a), fingerprint(b))
}

func TestFingerprintDistinguishesKinds(t *testing.T) {
	p := paragraphElement("x\n")
	table := &docmodel.StructuralElement{Table: &docmodel.Table{Rows: []*docmodel.TableRow{{Cells: []*docmodel.TableCell{{}}}}}}
	assert.NotEqual(t, fingerprint(p), fingerprint(table))
}
