package reconcile

import (
	"hash/fnv"
	"strconv"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// fingerprint identifies a structural element for the sequence-level LCS
// (spec.md §4.B "keyed by a stable fingerprint (element kind + stable id
// when present + content hash)"). Two elements with the same fingerprint
// are treated as "the same element, possibly edited" by the diff; anything
// else is an insert or a delete.
//
// A paragraph's fingerprint is keyed on its text content only, deliberately
// excluding paragraph style (heading, alignment) and bullet state: a pure
// style promotion (S2: paragraph -> HEADING_1) must still match as the same
// paragraph so the reconciler recurses into a style-only update instead of
// a delete+insert replace.
func fingerprint(se *docmodel.StructuralElement) string {
	h := fnv.New64a()
	switch {
	case se.Paragraph != nil:
		h.Write([]byte("p:"))
		h.Write([]byte(se.Paragraph.Text()))
	case se.Table != nil:
		h.Write([]byte("t:"))
		h.Write([]byte(strconv.Itoa(len(se.Table.Rows))))
		h.Write([]byte(","))
		h.Write([]byte(strconv.Itoa(se.Table.NumColumns())))
	case se.TableOfContents != nil:
		h.Write([]byte("toc"))
	case se.SectionBreak != nil:
		h.Write([]byte("sb"))
	}
	return se.Kind() + ":" + strconv.FormatUint(h.Sum64(), 36)
}
