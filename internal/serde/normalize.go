package serde

import "github.com/extrasuite/docsrecon/internal/docmodel"

// normalizeAddTrailingParagraphs restores the synthetic trailing empty
// paragraph every real Docs segment carries (spec.md §3, §4.A): a body,
// header, footer, or footnote segment always ends in an empty paragraph
// whose sole content is the final newline run. It is never written to disk
// (stripping it is normalizeStripTrailingParagraph's job, used by Encode),
// so Decode adds it back here to keep docmodel.Document shaped the way the
// mock and the real API always return it.
func normalizeAddTrailingParagraphs(tab *docmodel.Tab) {
	addTrailingParagraph(tab.Body)
	for _, seg := range tab.Headers {
		addTrailingParagraph(seg)
	}
	for _, seg := range tab.Footers {
		addTrailingParagraph(seg)
	}
	for _, seg := range tab.Footnotes {
		addTrailingParagraph(seg)
	}
}

func addTrailingParagraph(seg *docmodel.Segment) {
	if seg == nil {
		return
	}
	if last := seg.LastParagraph(); last != nil && isSyntheticTrailingParagraph(last) {
		return // already present, e.g. a fixture built directly in docmodel
	}
	seg.Content = append(seg.Content, &docmodel.StructuralElement{
		Paragraph: &docmodel.Paragraph{
			Elements: []*docmodel.ParagraphElement{
				{TextRun: &docmodel.TextRun{Content: "\n", Style: &docmodel.TextStyle{}}},
			},
		},
	})
}

func isSyntheticTrailingParagraph(p *docmodel.Paragraph) bool {
	return len(p.Elements) == 1 && p.Elements[0].TextRun != nil && p.Elements[0].TextRun.Content == "\n"
}

// normalizeStripTrailingParagraph removes the synthetic trailing empty
// paragraph from a cloned segment before encoding it to disk, the inverse of
// addTrailingParagraph. It never strips the segment's only paragraph (an
// empty body is still one empty paragraph, not zero).
func normalizeStripTrailingParagraph(seg *docmodel.Segment) {
	if seg == nil || len(seg.Content) < 2 {
		return
	}
	last := seg.Content[len(seg.Content)-1]
	if last.Paragraph != nil && isSyntheticTrailingParagraph(last.Paragraph) {
		seg.Content = seg.Content[:len(seg.Content)-1]
	}
}
