// Package verify implements the Composite Verifier (spec.md §4.F): it runs
// the same request script through both the in-memory mock and a real Docs
// API transport and compares the two resulting documents, tolerating a
// narrow, explicitly enumerated set of divergences that stem from the
// mock's session-scoped style provenance (spec.md §9 "Open question: style
// provenance beyond the session").
package verify

import (
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// paragraphsTolerated reports whether two paragraphs that docmodel.Equal
// considers unequal are nonetheless within spec.md §4.F's tolerance set:
// their text agrees, and for every rune the two sides' resolved style
// agrees on everything except bold/italic/underline — which covers both
// named tolerances (a B/I/U-only style difference, and a run-boundary
// split/merge where the text and every other style field still line up,
// since StyleAtRune is blind to where run boundaries actually fall).
func paragraphsTolerated(a, b *docmodel.Paragraph) bool {
	aText, bText := a.Text(), b.Text()
	if aText != bText {
		return false
	}
	runes := []rune(aText)
	for i := range runes {
		if !styleEqualIgnoringBIU(a.StyleAtRune(i), b.StyleAtRune(i)) {
			return false
		}
	}
	return true
}

// styleEqualIgnoringBIU compares every TextStyle field except
// bold/italic/underline, which spec.md §4.F explicitly tolerates.
func styleEqualIgnoringBIU(a, b *docmodel.TextStyle) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Strikethrough == b.Strikethrough &&
		a.SmallCaps == b.SmallCaps &&
		a.BaselineOffset == b.BaselineOffset &&
		a.FontFamily == b.FontFamily &&
		a.FontSizePt == b.FontSizePt &&
		rgbEqual(a.ForegroundColor, b.ForegroundColor) &&
		rgbEqual(a.BackgroundColor, b.BackgroundColor) &&
		linkEqual(a.Link, b.Link)
}

func rgbEqual(a, b *docmodel.RGB) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func linkEqual(a, b *docs.Link) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Url == b.Url
}
