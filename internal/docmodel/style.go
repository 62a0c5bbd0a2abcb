// Package docmodel is the in-memory Document tree shared by the serializer,
// the reconciler, and the mock engine. It mirrors the shape of the Google
// Docs REST Document resource (google.golang.org/api/docs/v1) but adds the
// per-run style provenance ("explicit") the real API never returns, per the
// design note in spec.md §9: the explicit set lives inside each TextStyle
// value itself, not in a side table, so it survives clone/split/merge.
package docmodel

import "google.golang.org/api/docs/v1"

// Style field names, matching the wire field-mask names the Docs API uses
// for UpdateTextStyleRequest.Fields. These are the keys a FieldSet holds.
const (
	FieldBold            = "bold"
	FieldItalic          = "italic"
	FieldUnderline       = "underline"
	FieldStrikethrough   = "strikethrough"
	FieldSmallCaps       = "smallCaps"
	FieldBaselineOffset  = "baselineOffset"
	FieldFontFamily      = "weightedFontFamily"
	FieldFontSize        = "fontSize"
	FieldForegroundColor = "foregroundColor"
	FieldBackgroundColor = "backgroundColor"
	FieldLink            = "link"
)

// AllStyleFields enumerates every field FieldSet can track, in a stable
// order used for deterministic "fields" mask construction.
var AllStyleFields = []string{
	FieldBold, FieldItalic, FieldUnderline, FieldStrikethrough, FieldSmallCaps,
	FieldBaselineOffset, FieldFontFamily, FieldFontSize,
	FieldForegroundColor, FieldBackgroundColor, FieldLink,
}

// FieldSet records which TextStyle fields were set by an explicit
// updateTextStyle during the current mock session, as opposed to inherited
// by text insertion into a styled run or present in the initial document.
// A systems port of the source's ad-hoc provenance set becomes this set
// keyed by style-field name (spec.md §9).
type FieldSet map[string]bool

// Clone returns an independent copy of the set.
func (s FieldSet) Clone() FieldSet {
	if s == nil {
		return nil
	}
	out := make(FieldSet, len(s))
	for k, v := range s {
		if v {
			out[k] = true
		}
	}
	return out
}

// Union returns a new set containing fields present in either s or other.
func (s FieldSet) Union(other FieldSet) FieldSet {
	out := s.Clone()
	if out == nil {
		out = FieldSet{}
	}
	for k, v := range other {
		if v {
			out[k] = true
		}
	}
	return out
}

// Has reports whether field is explicitly set.
func (s FieldSet) Has(field string) bool {
	return s != nil && s[field]
}

// Add marks field as explicitly set, allocating the map if needed.
func (s *FieldSet) Add(field string) {
	if *s == nil {
		*s = FieldSet{}
	}
	(*s)[field] = true
}

// RGB is a 0.0-1.0 normalized color, matching docs.RgbColor's representation.
type RGB struct {
	Red, Green, Blue float64
}

func (c *RGB) equal(o *RGB) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Red == o.Red && c.Green == o.Green && c.Blue == o.Blue
}

// TextStyle is the run/element-level style record. Unlike docs.TextStyle it
// is a plain-value struct (no wire-format wrapper types for colors) to keep
// style comparisons and merges cheap, with Explicit carrying provenance
// per spec.md §3/§4.E.
type TextStyle struct {
	Bold, Italic, Underline, Strikethrough, SmallCaps bool
	BaselineOffset                                    string // "", "SUPERSCRIPT", "SUBSCRIPT"
	FontFamily                                         string
	FontSizePt                                        float64 // 0 means unset
	ForegroundColor, BackgroundColor                  *RGB
	Link                                               *docs.Link

	// Explicit names the fields set by an explicit updateTextStyle within
	// the current mock session. Stripped before exposing the document to
	// callers outside the mock (spec.md §3).
	Explicit FieldSet
}

// Clone deep-copies the style, including Explicit, so mutating the copy
// never aliases the original run's style (spec.md §3 ownership rule).
func (t *TextStyle) Clone() *TextStyle {
	if t == nil {
		return nil
	}
	out := *t
	if t.ForegroundColor != nil {
		fg := *t.ForegroundColor
		out.ForegroundColor = &fg
	}
	if t.BackgroundColor != nil {
		bg := *t.BackgroundColor
		out.BackgroundColor = &bg
	}
	if t.Link != nil {
		link := *t.Link
		out.Link = &link
	}
	out.Explicit = t.Explicit.Clone()
	return &out
}

// EqualIgnoringExplicit reports whether two styles have the same resolved
// values, ignoring the Explicit provenance set. Used by the adjacent-run
// merge pass (spec.md invariant 5) and by the equality relation (spec.md §8).
func (t *TextStyle) EqualIgnoringExplicit(o *TextStyle) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Bold == o.Bold &&
		t.Italic == o.Italic &&
		t.Underline == o.Underline &&
		t.Strikethrough == o.Strikethrough &&
		t.SmallCaps == o.SmallCaps &&
		t.BaselineOffset == o.BaselineOffset &&
		t.FontFamily == o.FontFamily &&
		t.FontSizePt == o.FontSizePt &&
		t.ForegroundColor.equal(o.ForegroundColor) &&
		t.BackgroundColor.equal(o.BackgroundColor) &&
		linkEqual(t.Link, o.Link)
}

func linkEqual(a, b *docs.Link) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Url == b.Url && a.BookmarkId == b.BookmarkId && a.HeadingId == b.HeadingId
}

// ApplyField sets one named field on t from src, mirroring the semantics of
// the real API's UpdateTextStyleRequest.Fields mask: a field present in the
// mask is copied verbatim (including zero values, which clear the field).
func (t *TextStyle) ApplyField(field string, src *TextStyle) {
	switch field {
	case FieldBold:
		t.Bold = src.Bold
	case FieldItalic:
		t.Italic = src.Italic
	case FieldUnderline:
		t.Underline = src.Underline
	case FieldStrikethrough:
		t.Strikethrough = src.Strikethrough
	case FieldSmallCaps:
		t.SmallCaps = src.SmallCaps
	case FieldBaselineOffset:
		t.BaselineOffset = src.BaselineOffset
	case FieldFontFamily:
		t.FontFamily = src.FontFamily
	case FieldFontSize:
		t.FontSizePt = src.FontSizePt
	case FieldForegroundColor:
		t.ForegroundColor = src.ForegroundColor
	case FieldBackgroundColor:
		t.BackgroundColor = src.BackgroundColor
	case FieldLink:
		t.Link = src.Link
	}
}

// StripLinkStyle removes the link and its "auto" foreground color from a
// clone of t, unless those properties are in Explicit — the mock's
// strip_link_style behavior invoked when insertText splices into a
// link-styled run (spec.md §4.D).
func (t *TextStyle) StripLinkStyle() *TextStyle {
	out := t.Clone()
	if !out.Explicit.Has(FieldLink) {
		out.Link = nil
	}
	if !out.Explicit.Has(FieldForegroundColor) {
		out.ForegroundColor = nil
	}
	return out
}
