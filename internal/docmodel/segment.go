package docmodel

import "google.golang.org/api/docs/v1"

// StructuralElement is a tagged union of the four structural-element kinds
// a Segment's content is built from (spec.md §3).
type StructuralElement struct {
	StartIndex int64
	EndIndex   int64

	Paragraph       *Paragraph
	Table           *Table
	SectionBreak    *docs.SectionBreak
	TableOfContents *TableOfContents
}

// TableOfContents content is never agent-editable (spec.md Non-goals: "Exact
// reproduction of ... TOC content" is out of scope) — it is preserved
// opaquely across serialize/deserialize.
type TableOfContents struct {
	Content []*StructuralElement
}

func (se *StructuralElement) Kind() string {
	switch {
	case se.Paragraph != nil:
		return "paragraph"
	case se.Table != nil:
		return "table"
	case se.SectionBreak != nil:
		return "sectionBreak"
	case se.TableOfContents != nil:
		return "toc"
	default:
		return "empty"
	}
}

func (se *StructuralElement) Clone() *StructuralElement {
	if se == nil {
		return nil
	}
	out := &StructuralElement{StartIndex: se.StartIndex, EndIndex: se.EndIndex}
	switch {
	case se.Paragraph != nil:
		out.Paragraph = se.Paragraph.Clone()
	case se.Table != nil:
		out.Table = se.Table.Clone()
	case se.SectionBreak != nil:
		v := *se.SectionBreak
		out.SectionBreak = &v
	case se.TableOfContents != nil:
		toc := &TableOfContents{Content: make([]*StructuralElement, len(se.TableOfContents.Content))}
		for i, e := range se.TableOfContents.Content {
			toc.Content[i] = e.Clone()
		}
		out.TableOfContents = toc
	}
	return out
}

// SegmentKind distinguishes the four independent index spaces a Document
// defines (spec.md §3, GLOSSARY "Segment").
type SegmentKind int

const (
	SegmentBody SegmentKind = iota
	SegmentHeader
	SegmentFooter
	SegmentFootnote
)

// Segment is an ordered sequence of structural elements with its own
// UTF-16 index space. The body segment owns indices starting at 1; every
// header/footer/footnote segment has its own segment id and starts at 0
// (spec.md §3 Index invariant). Every segment must end in a paragraph
// (spec.md invariant 1); the serializer strips/re-adds the synthetic
// trailing paragraph.
type Segment struct {
	Kind      SegmentKind
	SegmentID string // "" for the body
	Content   []*StructuralElement
}

func (s *Segment) Clone() *Segment {
	if s == nil {
		return nil
	}
	out := &Segment{Kind: s.Kind, SegmentID: s.SegmentID}
	out.Content = make([]*StructuralElement, len(s.Content))
	for i, e := range s.Content {
		out.Content[i] = e.Clone()
	}
	return out
}

// LastParagraph returns the final paragraph in the segment, walking into a
// trailing table if the segment (unusually, mid-mutation) does not end in
// one directly. Returns nil if the segment has no paragraph at all.
func (s *Segment) LastParagraph() *Paragraph {
	for i := len(s.Content) - 1; i >= 0; i-- {
		if p := s.Content[i].Paragraph; p != nil {
			return p
		}
		if t := s.Content[i].Table; t != nil && len(t.Rows) > 0 {
			row := t.Rows[len(t.Rows)-1]
			if len(row.Cells) > 0 {
				cell := row.Cells[len(row.Cells)-1]
				for j := len(cell.Content) - 1; j >= 0; j-- {
					if p := cell.Content[j].Paragraph; p != nil {
						return p
					}
				}
			}
		}
	}
	return nil
}

// BaseIndex is the first valid index of the segment's own space (spec.md §3).
func (s *Segment) BaseIndex() int64 {
	if s.Kind == SegmentBody {
		return 1
	}
	return 0
}
