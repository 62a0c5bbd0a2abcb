package mock

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// location pinpoints a paragraph by the slice that owns its
// StructuralElement and the index into that slice, so a handler can splice
// new paragraphs in or merge paragraphs out in place.
type location struct {
	elements *[]*docmodel.StructuralElement
	idx      int
}

// locateParagraph finds the paragraph (descending into table cells as
// needed) whose UTF-16 range contains index.
func locateParagraph(elements *[]*docmodel.StructuralElement, index int64) (*location, error) {
	for i, se := range *elements {
		if se.StartIndex > index || se.EndIndex < index {
			continue
		}
		switch {
		case se.Paragraph != nil:
			return &location{elements: elements, idx: i}, nil
		case se.Table != nil:
			for _, row := range se.Table.Rows {
				for _, cell := range row.Cells {
					if cell.Placeholder || index < cell.StartIndex || index > cell.EndIndex {
						continue
					}
					return locateParagraph(&cell.Content, index)
				}
			}
		}
	}
	return nil, fmt.Errorf("index %d not found in segment", index)
}

func handleInsertText(tab *docmodel.Tab, req *docs.InsertTextRequest) (*docs.Reply, error) {
	seg, err := resolveSegment(tab, req.Location.SegmentId)
	if err != nil {
		return nil, err
	}
	loc, err := locateParagraph(&seg.Content, req.Location.Index)
	if err != nil {
		return nil, err
	}
	p := (*loc.elements)[loc.idx].Paragraph
	if p == nil {
		return nil, fmt.Errorf("insertText index %d targets a non-paragraph element", req.Location.Index)
	}

	elemIdx, offset, err := locateRunOffset(p, req.Location.Index)
	if err != nil {
		return nil, err
	}

	donor := p.Elements[elemIdx].TextRun
	style := donor.Style.Clone() // explicit propagates by deep copy (spec.md §4.E)
	if style.Link != nil {
		style = style.StripLinkStyle()
	}

	units := utf16.Encode([]rune(donor.Content))
	left := string(utf16.Decode(units[:offset]))
	right := string(utf16.Decode(units[offset:]))

	var spliced []*docmodel.ParagraphElement
	spliced = append(spliced, p.Elements[:elemIdx]...)
	if left != "" {
		spliced = append(spliced, &docmodel.ParagraphElement{TextRun: &docmodel.TextRun{Content: left, Style: style.Clone()}})
	}
	spliced = append(spliced, &docmodel.ParagraphElement{TextRun: &docmodel.TextRun{Content: req.Text, Style: style.Clone()}})
	if right != "" {
		spliced = append(spliced, &docmodel.ParagraphElement{TextRun: &docmodel.TextRun{Content: right, Style: style.Clone()}})
	}
	spliced = append(spliced, p.Elements[elemIdx+1:]...)

	newParagraphs := splitParagraphAtNewlines(p.Style, p.Bullet, spliced)

	out := append(append([]*docmodel.StructuralElement{}, (*loc.elements)[:loc.idx]...), newParagraphs...)
	out = append(out, (*loc.elements)[loc.idx+1:]...)
	*loc.elements = out

	return &docs.Reply{InsertText: &docs.InsertTextResponse{}}, nil
}

// locateRunOffset finds the TextRun element covering index and returns its
// position in p.Elements plus the UTF-16 offset within its content to
// splice at.
func locateRunOffset(p *docmodel.Paragraph, index int64) (int, int, error) {
	for i, el := range p.Elements {
		if el.TextRun == nil {
			continue
		}
		if index >= el.StartIndex && index <= el.EndIndex {
			return i, int(index - el.StartIndex), nil
		}
	}
	return 0, 0, fmt.Errorf("insertText index %d does not land on a text run", index)
}

// splitParagraphAtNewlines splits a flat element list at every '\n'
// terminating a text run into one StructuralElement{Paragraph} per line,
// all sharing the original paragraph's style and bullet (spec.md §4.D
// insertText contract: the real API's paragraph-split inherits the split
// paragraph's formatting for every resulting paragraph).
func splitParagraphAtNewlines(style *docs.ParagraphStyle, bullet *docmodel.Bullet, elements []*docmodel.ParagraphElement) []*docmodel.StructuralElement {
	var groups [][]*docmodel.ParagraphElement
	var current []*docmodel.ParagraphElement
	for _, el := range elements {
		if el.TextRun == nil {
			current = append(current, el)
			continue
		}
		content := el.TextRun.Content
		if !strings.Contains(content, "\n") {
			current = append(current, el)
			continue
		}
		start := 0
		for i, r := range content {
			if r == '\n' {
				current = append(current, &docmodel.ParagraphElement{
					TextRun: &docmodel.TextRun{Content: content[start : i+1], Style: el.TextRun.Style.Clone()},
				})
				groups = append(groups, current)
				current = nil
				start = i + 1
			}
		}
		if start < len(content) {
			current = append(current, &docmodel.ParagraphElement{
				TextRun: &docmodel.TextRun{Content: content[start:], Style: el.TextRun.Style.Clone()},
			})
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	out := make([]*docmodel.StructuralElement, len(groups))
	for i, g := range groups {
		out[i] = &docmodel.StructuralElement{Paragraph: &docmodel.Paragraph{
			Style:    cloneParagraphStyle(style),
			Bullet:   bullet.Clone(),
			Elements: g,
		}}
	}
	return out
}

func cloneParagraphStyle(s *docs.ParagraphStyle) *docs.ParagraphStyle {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func handleDeleteContentRange(tab *docmodel.Tab, req *docs.DeleteContentRangeRequest) (*docs.Reply, error) {
	seg, err := resolveSegment(tab, req.Range.SegmentId)
	if err != nil {
		return nil, err
	}
	loc, err := locateParagraph(&seg.Content, req.Range.StartIndex)
	if err != nil {
		return nil, err
	}
	if err := applyDeleteContentRange(loc.elements, req.Range.StartIndex, req.Range.EndIndex); err != nil {
		return nil, err
	}
	return &docs.Reply{}, nil
}

// applyDeleteContentRange removes [start, end) from the elements owned by
// *container, merging every spanned paragraph into one that keeps the
// first paragraph's style and bullet (spec.md §4.D "the two paragraphs
// surrounding it merge, inheriting the earlier paragraph's style").
func applyDeleteContentRange(container *[]*docmodel.StructuralElement, start, end int64) error {
	elems := *container
	firstIdx, lastIdx := -1, -1
	for i, se := range elems {
		if se.EndIndex > start && se.StartIndex < end {
			if firstIdx == -1 {
				firstIdx = i
			}
			lastIdx = i
		}
	}
	if firstIdx == -1 {
		return fmt.Errorf("delete range [%d,%d) matches no content", start, end)
	}

	var flat []*docmodel.ParagraphElement
	var style *docs.ParagraphStyle
	var bullet *docmodel.Bullet
	for i := firstIdx; i <= lastIdx; i++ {
		se := elems[i]
		if se.Paragraph == nil {
			return fmt.Errorf("delete range spans a non-paragraph element (tables are not reconciled across a structural delete)")
		}
		if i == firstIdx {
			style, bullet = se.Paragraph.Style, se.Paragraph.Bullet
		}
		flat = append(flat, se.Paragraph.Elements...)
	}

	newElements, err := deleteRuneRange(flat, start, end)
	if err != nil {
		return err
	}

	var out []*docmodel.StructuralElement
	if len(newElements) == 0 {
		// The whole spanned range consumed entirely, with no partial overlap
		// surviving on either neighbor: the spanned paragraphs vanish rather
		// than leave a spurious empty one behind, unless this container would
		// otherwise end up with no content at all (invariant 1: every
		// segment/cell must end in a paragraph).
		if firstIdx == 0 && lastIdx == len(elems)-1 {
			newElements = []*docmodel.ParagraphElement{{TextRun: &docmodel.TextRun{Content: "\n", Style: &docmodel.TextStyle{}}}}
			out = append(append(out, elems[:firstIdx]...), &docmodel.StructuralElement{Paragraph: &docmodel.Paragraph{Style: style, Bullet: bullet, Elements: newElements}})
		} else {
			out = append(out, elems[:firstIdx]...)
		}
	} else {
		merged := &docmodel.StructuralElement{Paragraph: &docmodel.Paragraph{Style: style, Bullet: bullet, Elements: newElements}}
		out = append(append(out, elems[:firstIdx]...), merged)
	}
	out = append(out, elems[lastIdx+1:]...)
	*container = out
	return nil
}

// deleteRuneRange removes [start, end) from a flattened element list whose
// elements still carry their pre-deletion absolute StartIndex/EndIndex —
// valid because the elements span contiguous, already-reindexed paragraphs.
func deleteRuneRange(elements []*docmodel.ParagraphElement, start, end int64) ([]*docmodel.ParagraphElement, error) {
	var out []*docmodel.ParagraphElement
	for _, el := range elements {
		switch {
		case el.EndIndex <= start || el.StartIndex >= end:
			out = append(out, el)
		case el.StartIndex >= start && el.EndIndex <= end:
			if el.Immutable() {
				return nil, fmt.Errorf("delete range removes an immutable element (spec.md invariant on %s)", el.Kind())
			}
			// fully removed
		default:
			if el.TextRun == nil {
				return nil, fmt.Errorf("delete range partially overlaps a non-text element (%s)", el.Kind())
			}
			units := utf16.Encode([]rune(el.TextRun.Content))
			delStart := maxInt64(0, start-el.StartIndex)
			delEnd := minInt64(int64(len(units)), end-el.StartIndex)
			newUnits := append(append([]uint16{}, units[:delStart]...), units[delEnd:]...)
			content := string(utf16.Decode(newUnits))
			if content != "" {
				out = append(out, &docmodel.ParagraphElement{TextRun: &docmodel.TextRun{Content: content, Style: el.TextRun.Style.Clone()}})
			}
		}
	}
	return out, nil
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
