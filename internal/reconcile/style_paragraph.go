package reconcile

import (
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// diffParagraphStyleOnly compares paragraph-level style (named style type,
// heading id, alignment, indents, spacing, direction) and emits a single
// updateParagraphStyle covering the whole paragraph when any of it differs
// (spec.md §8 S2: a paragraph promoted to a heading with unchanged text).
// Paragraph style has no field-by-field provenance in docmodel (§9 limits
// provenance tracking to TextStyle), so a difference always produces a
// fields="*" request — the mock and the real API both accept that mask.
func diffParagraphStyleOnly(base, desired *docmodel.Paragraph, startIndex int64) []*docs.Request {
	end := startIndex + int64(docmodel.UTF16Len(desired.Text()))
	if paragraphStyleEqual(base.Style, desired.Style) {
		return nil
	}
	return []*docs.Request{{
		UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
			Range:          &docs.Range{StartIndex: startIndex, EndIndex: end},
			ParagraphStyle: desired.Style,
			Fields:         "*",
		},
	}}
}

func paragraphStyleEqual(a, b *docs.ParagraphStyle) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.NamedStyleType == b.NamedStyleType &&
		a.HeadingId == b.HeadingId &&
		a.Alignment == b.Alignment &&
		a.Direction == b.Direction &&
		dimensionEqual(a.IndentStart, b.IndentStart) &&
		dimensionEqual(a.IndentFirstLine, b.IndentFirstLine) &&
		dimensionEqual(a.SpaceAbove, b.SpaceAbove) &&
		dimensionEqual(a.SpaceBelow, b.SpaceBelow)
}

func dimensionEqual(a, b *docs.Dimension) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Magnitude == b.Magnitude && a.Unit == b.Unit
}

// diffBullet emits createParagraphBullets or deleteParagraphBullets when a
// paragraph's list membership changed (spec.md §8 S3). A change of list id
// alone (moving a paragraph between two existing lists) is expressed as a
// delete followed by a create, since the API has no "move between lists"
// primitive.
func diffBullet(base, desired *docmodel.Paragraph, startIndex int64) []*docs.Request {
	end := startIndex + int64(docmodel.UTF16Len(desired.Text()))
	rng := &docs.Range{StartIndex: startIndex, EndIndex: end}

	switch {
	case base.Bullet == nil && desired.Bullet == nil:
		return nil
	case base.Bullet == nil && desired.Bullet != nil:
		return []*docs.Request{{
			CreateParagraphBullets: &docs.CreateParagraphBulletsRequest{Range: rng},
		}}
	case base.Bullet != nil && desired.Bullet == nil:
		return []*docs.Request{{
			DeleteParagraphBullets: &docs.DeleteParagraphBulletsRequest{Range: rng},
		}}
	case base.Bullet.ListID != desired.Bullet.ListID || base.Bullet.NestingLevel != desired.Bullet.NestingLevel:
		return []*docs.Request{
			{DeleteParagraphBullets: &docs.DeleteParagraphBulletsRequest{Range: rng}},
			{CreateParagraphBullets: &docs.CreateParagraphBulletsRequest{Range: rng}},
		}
	default:
		return nil
	}
}
