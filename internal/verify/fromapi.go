package verify

import (
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// fromAPIDocument projects a wire docs.Document onto the subset of
// docmodel.Document the composite verifier needs to compare against the
// mock's output: body/header/footer/footnote text content, paragraph and
// run style, tables, and bullets, plus DocumentStyle/NamedStyles passed
// through as-is (singular pointer fields docmodel.Tab already stores in the
// same shape). Smart chips and inline objects are compared by kind and core
// identity only (spec.md §1 Non-goals already excludes exact chip/object
// fidelity from the reconciler's scope); the style *cascade* (named-style
// inheritance) is not re-derived here either way — the verifier's job is
// confirming the mock tracked the *content* mutation correctly, and serde
// already owns producing the cascade on decode. ConvertTab is exported so
// internal/cmd's pull command can reuse this wire->docmodel conversion.
// InlineObjects/PositionedObjects/NamedRanges are not converted, so a
// pulled tab folder gets no sidecar files for them (see DESIGN.md).
func fromAPIDocument(doc *docs.Document) *docmodel.Document {
	tab := ConvertTab(doc)
	return &docmodel.Document{Tabs: []*docmodel.Tab{tab}}
}

// ConvertTab converts a single-tab wire docs.Document into a docmodel.Tab,
// exported for internal/cmd's pull command (spec.md §4.A decode direction
// starts here when the source is the live API rather than a tab folder).
// Multi-tab documents (doc.Tabs) are out of scope for this pass — pull
// operates on the document's single implicit tab, the same scope the
// Composite Verifier itself needs (see DESIGN.md).
func ConvertTab(doc *docs.Document) *docmodel.Tab {
	tab := &docmodel.Tab{
		TabID:         doc.DocumentId,
		Body:          fromAPIBody(doc.Body),
		DocumentStyle: doc.DocumentStyle,
		NamedStyles:   doc.NamedStyles,
	}
	if doc.Headers != nil {
		tab.Headers = map[string]*docmodel.Segment{}
		for id, h := range doc.Headers {
			tab.Headers[id] = fromAPIElements(h.Content)
		}
	}
	if doc.Footers != nil {
		tab.Footers = map[string]*docmodel.Segment{}
		for id, f := range doc.Footers {
			tab.Footers[id] = fromAPIElements(f.Content)
		}
	}
	if doc.Footnotes != nil {
		tab.Footnotes = map[string]*docmodel.Segment{}
		for id, f := range doc.Footnotes {
			tab.Footnotes[id] = fromAPIElements(f.Content)
		}
	}
	return tab
}

func fromAPIBody(b *docs.Body) *docmodel.Segment {
	if b == nil {
		return &docmodel.Segment{Kind: docmodel.SegmentBody}
	}
	return fromAPIElements(b.Content)
}

func fromAPIElements(content []*docs.StructuralElement) *docmodel.Segment {
	seg := &docmodel.Segment{Kind: docmodel.SegmentBody}
	for _, se := range content {
		if conv := fromAPIStructuralElement(se); conv != nil {
			seg.Content = append(seg.Content, conv)
		}
	}
	return seg
}

func fromAPIStructuralElement(se *docs.StructuralElement) *docmodel.StructuralElement {
	switch {
	case se.Paragraph != nil:
		return &docmodel.StructuralElement{
			StartIndex: se.StartIndex,
			EndIndex:   se.EndIndex,
			Paragraph:  fromAPIParagraph(se.Paragraph, se.StartIndex, se.EndIndex),
		}
	case se.Table != nil:
		return &docmodel.StructuralElement{
			StartIndex: se.StartIndex,
			EndIndex:   se.EndIndex,
			Table:      fromAPITable(se.Table),
		}
	case se.SectionBreak != nil:
		return &docmodel.StructuralElement{StartIndex: se.StartIndex, EndIndex: se.EndIndex, SectionBreak: se.SectionBreak}
	case se.TableOfContents != nil:
		return &docmodel.StructuralElement{StartIndex: se.StartIndex, EndIndex: se.EndIndex, TableOfContents: &docmodel.TableOfContents{}}
	default:
		return nil
	}
}

func fromAPIParagraph(p *docs.Paragraph, start, end int64) *docmodel.Paragraph {
	out := &docmodel.Paragraph{StartIndex: start, EndIndex: end, Style: p.ParagraphStyle}
	if p.Bullet != nil {
		out.Bullet = &docmodel.Bullet{
			ListID:       p.Bullet.ListId,
			NestingLevel: p.Bullet.NestingLevel,
			TextStyle:    fromAPITextStyle(p.Bullet.TextStyle),
		}
	}
	for _, el := range p.Elements {
		if conv := fromAPIParagraphElement(el); conv != nil {
			out.Elements = append(out.Elements, conv)
		}
	}
	return out
}

func fromAPIParagraphElement(el *docs.ParagraphElement) *docmodel.ParagraphElement {
	out := &docmodel.ParagraphElement{StartIndex: el.StartIndex, EndIndex: el.EndIndex}
	switch {
	case el.TextRun != nil:
		out.TextRun = &docmodel.TextRun{Content: el.TextRun.Content, Style: fromAPITextStyle(el.TextRun.TextStyle)}
	case el.InlineObjectElement != nil:
		out.InlineObjectElement = &docmodel.InlineObjectElement{ObjectID: el.InlineObjectElement.InlineObjectId}
	case el.Person != nil:
		out.Person = &docmodel.Person{Email: el.Person.PersonProperties.Email, Style: fromAPITextStyle(el.Person.TextStyle)}
	case el.RichLink != nil:
		out.RichLink = &docmodel.RichLink{RichLinkID: el.RichLink.RichLinkId, Style: fromAPITextStyle(el.RichLink.TextStyle)}
	case el.Equation != nil:
		out.Equation = &docmodel.Equation{}
	case el.FootnoteReference != nil:
		out.FootnoteReference = &docmodel.FootnoteReference{
			FootnoteID:     el.FootnoteReference.FootnoteId,
			FootnoteNumber: el.FootnoteReference.FootnoteNumber,
			Style:          fromAPITextStyle(el.FootnoteReference.TextStyle),
		}
	case el.PageBreak != nil:
		out.PageBreak = &docmodel.PageBreak{Style: fromAPITextStyle(el.PageBreak.TextStyle)}
	case el.ColumnBreak != nil:
		out.ColumnBreak = &docmodel.ColumnBreak{Style: fromAPITextStyle(el.ColumnBreak.TextStyle)}
	case el.HorizontalRule != nil:
		out.HorizontalRule = &docmodel.HorizontalRule{Style: fromAPITextStyle(el.HorizontalRule.TextStyle)}
	case el.AutoText != nil:
		out.AutoText = &docmodel.AutoText{Type: el.AutoText.Type, Style: fromAPITextStyle(el.AutoText.TextStyle)}
	default:
		return nil
	}
	return out
}

func fromAPITextStyle(s *docs.TextStyle) *docmodel.TextStyle {
	if s == nil {
		return &docmodel.TextStyle{}
	}
	out := &docmodel.TextStyle{
		Bold:           s.Bold,
		Italic:         s.Italic,
		Underline:      s.Underline,
		Strikethrough:  s.Strikethrough,
		SmallCaps:      s.SmallCaps,
		BaselineOffset: s.BaselineOffset,
		Link:           s.Link,
	}
	if s.WeightedFontFamily != nil {
		out.FontFamily = s.WeightedFontFamily.FontFamily
	}
	if s.FontSize != nil {
		out.FontSizePt = s.FontSize.Magnitude
	}
	if s.ForegroundColor != nil && s.ForegroundColor.Color != nil && s.ForegroundColor.Color.RgbColor != nil {
		rgb := s.ForegroundColor.Color.RgbColor
		out.ForegroundColor = &docmodel.RGB{Red: rgb.Red, Green: rgb.Green, Blue: rgb.Blue}
	}
	if s.BackgroundColor != nil && s.BackgroundColor.Color != nil && s.BackgroundColor.Color.RgbColor != nil {
		rgb := s.BackgroundColor.Color.RgbColor
		out.BackgroundColor = &docmodel.RGB{Red: rgb.Red, Green: rgb.Green, Blue: rgb.Blue}
	}
	return out
}

func fromAPITable(t *docs.Table) *docmodel.Table {
	out := &docmodel.Table{}
	for _, row := range t.TableRows {
		r := &docmodel.TableRow{}
		for _, cell := range row.TableCells {
			c := &docmodel.TableCell{ColumnSpan: 1, RowSpan: 1}
			if cell.TableCellStyle != nil {
				if cell.TableCellStyle.ColumnSpan != 0 {
					c.ColumnSpan = cell.TableCellStyle.ColumnSpan
				}
				if cell.TableCellStyle.RowSpan != 0 {
					c.RowSpan = cell.TableCellStyle.RowSpan
				}
			}
			for _, se := range cell.Content {
				if conv := fromAPIStructuralElement(se); conv != nil {
					c.Content = append(c.Content, conv)
				}
			}
			r.Cells = append(r.Cells, c)
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}
