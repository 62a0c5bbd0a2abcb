package docmodel

// ParagraphElement is a tagged union mirroring docs.ParagraphElement's
// shape: exactly one of the pointer fields is non-nil. Index bookkeeping is
// derived, never authored (spec.md §3 Index invariant) — callers must treat
// StartIndex/EndIndex as read-only outside the mock's reindex pass.
type ParagraphElement struct {
	StartIndex int64
	EndIndex   int64

	TextRun             *TextRun
	InlineObjectElement *InlineObjectElement
	Person              *Person
	RichLink            *RichLink
	Equation            *Equation
	Date                *DateChip
	FootnoteReference   *FootnoteReference
	PageBreak           *PageBreak
	ColumnBreak         *ColumnBreak
	HorizontalRule      *HorizontalRule
	AutoText            *AutoText
}

// Kind returns a short tag identifying which union member is populated, used
// by the reconciler's fingerprinting and the mock's immutability checks.
func (pe *ParagraphElement) Kind() string {
	switch {
	case pe.TextRun != nil:
		return "textRun"
	case pe.InlineObjectElement != nil:
		return "inlineObject"
	case pe.Person != nil:
		return "person"
	case pe.RichLink != nil:
		return "richLink"
	case pe.Equation != nil:
		return "equation"
	case pe.Date != nil:
		return "date"
	case pe.FootnoteReference != nil:
		return "footnoteReference"
	case pe.PageBreak != nil:
		return "pageBreak"
	case pe.ColumnBreak != nil:
		return "columnBreak"
	case pe.HorizontalRule != nil:
		return "horizontalRule"
	case pe.AutoText != nil:
		return "autoText"
	default:
		return "empty"
	}
}

// Immutable reports whether this element kind cannot be created or removed
// by a reconciled script — the Docs API itself forbids it (spec.md §1
// Non-goals, §4.B rule 6): horizontal rules, inline images, auto-text, and
// column breaks.
func (pe *ParagraphElement) Immutable() bool {
	switch pe.Kind() {
	case "horizontalRule", "inlineObject", "autoText", "columnBreak":
		return true
	default:
		return false
	}
}

// Clone deep-copies a paragraph element, including its nested style.
func (pe *ParagraphElement) Clone() *ParagraphElement {
	if pe == nil {
		return nil
	}
	out := &ParagraphElement{StartIndex: pe.StartIndex, EndIndex: pe.EndIndex}
	switch {
	case pe.TextRun != nil:
		out.TextRun = pe.TextRun.Clone()
	case pe.InlineObjectElement != nil:
		v := *pe.InlineObjectElement
		out.InlineObjectElement = &v
	case pe.Person != nil:
		v := *pe.Person
		v.Style = pe.Person.Style.Clone()
		out.Person = &v
	case pe.RichLink != nil:
		v := *pe.RichLink
		v.Style = pe.RichLink.Style.Clone()
		out.RichLink = &v
	case pe.Equation != nil:
		v := *pe.Equation
		out.Equation = &v
	case pe.Date != nil:
		v := *pe.Date
		v.Style = pe.Date.Style.Clone()
		out.Date = &v
	case pe.FootnoteReference != nil:
		v := *pe.FootnoteReference
		v.Style = pe.FootnoteReference.Style.Clone()
		out.FootnoteReference = &v
	case pe.PageBreak != nil:
		v := *pe.PageBreak
		v.Style = pe.PageBreak.Style.Clone()
		out.PageBreak = &v
	case pe.ColumnBreak != nil:
		v := *pe.ColumnBreak
		v.Style = pe.ColumnBreak.Style.Clone()
		out.ColumnBreak = &v
	case pe.HorizontalRule != nil:
		v := *pe.HorizontalRule
		v.Style = pe.HorizontalRule.Style.Clone()
		out.HorizontalRule = &v
	case pe.AutoText != nil:
		v := *pe.AutoText
		v.Style = pe.AutoText.Style.Clone()
		out.AutoText = &v
	}
	return out
}

// TextRun is a run of text carrying a provenance-aware TextStyle. Content
// never contains an embedded '\n' except as its final character — runs are
// split at '\n' boundaries by the mock's normalization pass (spec.md
// invariant 4).
type TextRun struct {
	Content string
	Style   *TextStyle
}

func (r *TextRun) Clone() *TextRun {
	if r == nil {
		return nil
	}
	return &TextRun{Content: r.Content, Style: r.Style.Clone()}
}

// InlineObjectElement references an inline image/drawing by stable id into
// the owning tab's InlineObjects table (spec.md: cross-container references
// are by id, never by pointer). Immutable per spec.md §1 Non-goals.
type InlineObjectElement struct {
	ObjectID string
}

// Person is a smart-chip reference to a person by email.
type Person struct {
	Email string
	Style *TextStyle
}

// RichLink is a smart-chip reference to an external resource.
type RichLink struct {
	RichLinkID string
	Style      *TextStyle
}

// Equation is an opaque inline equation; the source XML records only its
// textual length so round-trip serialization stays consistent without
// modeling the equation's internal structure (spec.md §4.A <equation>).
type Equation struct {
	Length int
	Style  *TextStyle
}

// DateChip is a date/time smart chip.
type DateChip struct {
	TimestampUnixSec int64
	DateFormat       string
	TimeFormat       string
	TimeZoneID       string
	Locale           string
	Style            *TextStyle
}

// FootnoteReference points by stable id at a Tab's Footnotes segment table.
type FootnoteReference struct {
	FootnoteID     string
	FootnoteNumber string
	Style          *TextStyle
}

// ColumnBreak, HorizontalRule and AutoText are immutable-count structural
// markers (spec.md §4.A "Special-and-opaque"); Immutable reports true for
// them and for inline objects. PageBreak is not counted as immutable.
type PageBreak struct{ Style *TextStyle }
type ColumnBreak struct{ Style *TextStyle }
type HorizontalRule struct{ Style *TextStyle }
type AutoText struct {
	Type  string // e.g. "PAGE_NUMBER", "PAGE_COUNT"
	Style *TextStyle
}

// NewlineTerminatedTextRun reports whether content ends in exactly one '\n'
// and contains no interior '\n' — the shape every paragraph's trailing run
// must have after normalization (spec.md invariant 1, 4).
func NewlineTerminatedTextRun(content string) bool {
	if content == "" || content[len(content)-1] != '\n' {
		return false
	}
	for i := 0; i < len(content)-1; i++ {
		if content[i] == '\n' {
			return false
		}
	}
	return true
}

// apiTextStyleFields lists the canonical docs.v1 field-mask names in the
// same order as AllStyleFields. Nothing in the module reads it at present.
var apiTextStyleFields = AllStyleFields
