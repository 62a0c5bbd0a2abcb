package mock

import (
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

func handleCreateParagraphBullets(tab *docmodel.Tab, req *docs.CreateParagraphBulletsRequest) (*docs.Reply, error) {
	seg, err := resolveSegment(tab, req.Range.SegmentId)
	if err != nil {
		return nil, err
	}
	listID := newKixID()
	forEachOverlappingParagraph(&seg.Content, req.Range.StartIndex, req.Range.EndIndex, func(p *docmodel.Paragraph) {
		bulletStyle := &docmodel.TextStyle{}
		// Mirror italic into the bullet's own text style only when it was
		// explicitly set on the paragraph's runs (spec.md §4.D
		// createParagraphBullets contract).
		for _, el := range p.Elements {
			if el.TextRun != nil && el.TextRun.Style.Explicit.Has(docmodel.FieldItalic) {
				bulletStyle.Italic = el.TextRun.Style.Italic
				bulletStyle.Explicit.Add(docmodel.FieldItalic)
				break
			}
		}
		p.Bullet = &docmodel.Bullet{ListID: listID, NestingLevel: 0, TextStyle: bulletStyle}
	})
	return &docs.Reply{CreateParagraphBullets: &docs.CreateParagraphBulletsResponse{}}, nil
}

func handleDeleteParagraphBullets(tab *docmodel.Tab, req *docs.DeleteParagraphBulletsRequest) (*docs.Reply, error) {
	seg, err := resolveSegment(tab, req.Range.SegmentId)
	if err != nil {
		return nil, err
	}
	forEachOverlappingParagraph(&seg.Content, req.Range.StartIndex, req.Range.EndIndex, func(p *docmodel.Paragraph) {
		p.Bullet = nil
	})
	return &docs.Reply{}, nil
}
