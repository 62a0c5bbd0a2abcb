package reconcile

import (
	"sort"
	"strings"

	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// changedFields returns the set of style fields whose values differ between
// a and b, regardless of provenance — the "fields" mask a generated
// updateTextStyle request must enumerate exactly (spec.md §4.B "a `fields`
// mask enumerating exactly the properties being set").
func changedFields(a, b *docmodel.TextStyle) docmodel.FieldSet {
	out := docmodel.FieldSet{}
	if a.Bold != b.Bold {
		out.Add(docmodel.FieldBold)
	}
	if a.Italic != b.Italic {
		out.Add(docmodel.FieldItalic)
	}
	if a.Underline != b.Underline {
		out.Add(docmodel.FieldUnderline)
	}
	if a.Strikethrough != b.Strikethrough {
		out.Add(docmodel.FieldStrikethrough)
	}
	if a.SmallCaps != b.SmallCaps {
		out.Add(docmodel.FieldSmallCaps)
	}
	if a.BaselineOffset != b.BaselineOffset {
		out.Add(docmodel.FieldBaselineOffset)
	}
	if a.FontFamily != b.FontFamily {
		out.Add(docmodel.FieldFontFamily)
	}
	if a.FontSizePt != b.FontSizePt {
		out.Add(docmodel.FieldFontSize)
	}
	if !rgbEqual(a.ForegroundColor, b.ForegroundColor) {
		out.Add(docmodel.FieldForegroundColor)
	}
	if !rgbEqual(a.BackgroundColor, b.BackgroundColor) {
		out.Add(docmodel.FieldBackgroundColor)
	}
	if !linkURLEqual(a.Link, b.Link) {
		out.Add(docmodel.FieldLink)
	}
	return out
}

func rgbEqual(a, b *docmodel.RGB) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func linkURLEqual(a, b *docs.Link) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Url == b.Url
}

func fieldSetsEqual(a, b docmodel.FieldSet) bool {
	if len(a) != len(b) {
		return false
	}
	for f := range a {
		if !b[f] {
			return false
		}
	}
	return true
}

func joinFields(fields docmodel.FieldSet) string {
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// toAPITextStyle projects a docmodel.TextStyle onto the wire docs.TextStyle
// shape the request payload needs. Only fields the caller's mask names are
// meaningful; toAPITextStyle sets all of them and the mask tells the mock
// (and the real API) which to apply.
func toAPITextStyle(s *docmodel.TextStyle) *docs.TextStyle {
	out := &docs.TextStyle{
		Bold:          s.Bold,
		Italic:        s.Italic,
		Underline:     s.Underline,
		Strikethrough: s.Strikethrough,
		SmallCaps:     s.SmallCaps,
	}
	if s.BaselineOffset != "" {
		out.BaselineOffset = s.BaselineOffset
	}
	if s.FontFamily != "" {
		out.WeightedFontFamily = &docs.WeightedFontFamily{FontFamily: s.FontFamily}
	}
	if s.FontSizePt != 0 {
		out.FontSize = &docs.Dimension{Magnitude: s.FontSizePt, Unit: "PT"}
	}
	if s.ForegroundColor != nil {
		out.ForegroundColor = rgbToAPIColor(s.ForegroundColor)
	}
	if s.BackgroundColor != nil {
		out.BackgroundColor = rgbToAPIColor(s.BackgroundColor)
	}
	if s.Link != nil {
		out.Link = s.Link
	}
	return out
}

func rgbToAPIColor(c *docmodel.RGB) *docs.OptionalColor {
	return &docs.OptionalColor{
		Color: &docs.Color{
			RgbColor: &docs.RgbColor{Red: c.Red, Green: c.Green, Blue: c.Blue},
		},
	}
}
