package mock

import (
	"fmt"
	"strings"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// validateTab enforces spec.md §3's structural invariants after every
// handler + reindex pass (spec.md §4.D step 4): a violated invariant
// rejects the whole batch rather than returning a silently malformed
// document.
func validateTab(tab *docmodel.Tab) error {
	for _, seg := range tab.AllSegments() {
		if err := validateSegment(seg); err != nil {
			return err
		}
	}
	return nil
}

func validateSegment(seg *docmodel.Segment) error {
	if len(seg.Content) == 0 {
		return fmt.Errorf("segment has no content (invariant: every segment ends in a paragraph)")
	}
	last := seg.Content[len(seg.Content)-1]
	if last.Paragraph == nil {
		return fmt.Errorf("segment does not end in a paragraph (invariant 1)")
	}
	for _, se := range seg.Content {
		if err := validateElement(se); err != nil {
			return err
		}
	}
	return nil
}

func validateElement(se *docmodel.StructuralElement) error {
	switch {
	case se.Paragraph != nil:
		return validateParagraph(se.Paragraph)
	case se.Table != nil:
		return validateTable(se.Table)
	}
	return nil
}

func validateParagraph(p *docmodel.Paragraph) error {
	if len(p.Elements) == 0 {
		return fmt.Errorf("paragraph has no elements")
	}
	last := p.Elements[len(p.Elements)-1]
	if last.TextRun == nil || !docmodel.NewlineTerminatedTextRun(last.TextRun.Content) {
		return fmt.Errorf("paragraph does not end in a single trailing newline run (invariant 1)")
	}
	for _, el := range p.Elements[:len(p.Elements)-1] {
		if el.TextRun != nil && strings.Contains(el.TextRun.Content, "\n") {
			return fmt.Errorf("interior run contains a newline that was not split into its own paragraph")
		}
	}
	return nil
}

func validateTable(t *docmodel.Table) error {
	if len(t.Rows) == 0 {
		return nil
	}
	width := len(t.Rows[0].Cells)
	for i, row := range t.Rows {
		if len(row.Cells) != width {
			return fmt.Errorf("row %d has %d cell slots, expected %d (invariant 7)", i, len(row.Cells), width)
		}
		for _, cell := range row.Cells {
			if cell.Placeholder {
				continue
			}
			if len(cell.Content) == 0 {
				return fmt.Errorf("non-placeholder cell has no content (invariant 6)")
			}
			last := cell.Content[len(cell.Content)-1]
			if last.Paragraph == nil {
				return fmt.Errorf("table cell does not end in a paragraph (invariant 6)")
			}
			for _, se := range cell.Content {
				if err := validateElement(se); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
