package mock

import (
	"strings"
	"unicode/utf16"

	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// forEachOverlappingParagraph calls fn for every paragraph in *elements (or
// nested table cells) whose range intersects [start, end).
func forEachOverlappingParagraph(elements *[]*docmodel.StructuralElement, start, end int64, fn func(p *docmodel.Paragraph)) {
	for _, se := range *elements {
		if se.EndIndex <= start || se.StartIndex >= end {
			continue
		}
		switch {
		case se.Paragraph != nil:
			fn(se.Paragraph)
		case se.Table != nil:
			for _, row := range se.Table.Rows {
				for _, cell := range row.Cells {
					if cell.Placeholder {
						continue
					}
					forEachOverlappingParagraph(&cell.Content, start, end, fn)
				}
			}
		}
	}
}

func parseFields(mask string) docmodel.FieldSet {
	out := docmodel.FieldSet{}
	if mask == "*" {
		for _, f := range docmodel.AllStyleFields {
			out.Add(f)
		}
		return out
	}
	for _, f := range strings.Split(mask, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			out.Add(f)
		}
	}
	return out
}

func handleUpdateTextStyle(tab *docmodel.Tab, req *docs.UpdateTextStyleRequest) (*docs.Reply, error) {
	seg, err := resolveSegment(tab, req.Range.SegmentId)
	if err != nil {
		return nil, err
	}
	fields := parseFields(req.Fields)
	newStyle := fromAPITextStyle(req.TextStyle)
	start, end := req.Range.StartIndex, req.Range.EndIndex

	forEachOverlappingParagraph(&seg.Content, start, end, func(p *docmodel.Paragraph) {
		p.Elements = restyleRuns(p.Elements, start, end, fields, newStyle)
	})
	return &docs.Reply{}, nil
}

// restyleRuns splits runs at [start, end) boundaries and applies fields
// from newStyle to every run's overlapping portion, adding fields to that
// run's Explicit set (spec.md §4.D "Add fields to each touched run's
// explicit").
func restyleRuns(elements []*docmodel.ParagraphElement, start, end int64, fields docmodel.FieldSet, newStyle *docmodel.TextStyle) []*docmodel.ParagraphElement {
	var out []*docmodel.ParagraphElement
	for _, el := range elements {
		if el.TextRun == nil || el.EndIndex <= start || el.StartIndex >= end {
			out = append(out, el)
			continue
		}
		units := utf16.Encode([]rune(el.TextRun.Content))
		overlapStart := maxInt64(0, start-el.StartIndex)
		overlapEnd := minInt64(int64(len(units)), end-el.StartIndex)

		if overlapStart > 0 {
			out = append(out, &docmodel.ParagraphElement{
				TextRun: &docmodel.TextRun{Content: string(utf16.Decode(units[:overlapStart])), Style: el.TextRun.Style.Clone()},
			})
		}
		if overlapEnd > overlapStart {
			restyled := el.TextRun.Style.Clone()
			for f := range fields {
				restyled.ApplyField(f, newStyle)
				restyled.Explicit.Add(f)
			}
			out = append(out, &docmodel.ParagraphElement{
				TextRun: &docmodel.TextRun{Content: string(utf16.Decode(units[overlapStart:overlapEnd])), Style: restyled},
			})
		}
		if int(overlapEnd) < len(units) {
			out = append(out, &docmodel.ParagraphElement{
				TextRun: &docmodel.TextRun{Content: string(utf16.Decode(units[overlapEnd:])), Style: el.TextRun.Style.Clone()},
			})
		}
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

func handleUpdateParagraphStyle(tab *docmodel.Tab, req *docs.UpdateParagraphStyleRequest) (*docs.Reply, error) {
	seg, err := resolveSegment(tab, req.Range.SegmentId)
	if err != nil {
		return nil, err
	}
	start, end := req.Range.StartIndex, req.Range.EndIndex
	isHeading := req.ParagraphStyle != nil && strings.HasPrefix(req.ParagraphStyle.NamedStyleType, "HEADING_")

	forEachOverlappingParagraph(&seg.Content, start, end, func(p *docmodel.Paragraph) {
		p.Style = cloneParagraphStyle(req.ParagraphStyle)
		if isHeading {
			clearInheritedRunStyleForHeading(p)
		}
	})
	return &docs.Reply{}, nil
}

// clearInheritedRunStyleForHeading implements spec.md §4.D's heading rule:
// a heading clears bold unconditionally, and clears italic/underline only
// where the run does not have them in its explicit set.
func clearInheritedRunStyleForHeading(p *docmodel.Paragraph) {
	for _, el := range p.Elements {
		if el.TextRun == nil {
			continue
		}
		style := el.TextRun.Style
		style.Bold = false
		if !style.Explicit.Has(docmodel.FieldItalic) {
			style.Italic = false
		}
		if !style.Explicit.Has(docmodel.FieldUnderline) {
			style.Underline = false
		}
	}
}
