package docmodel

import "google.golang.org/api/docs/v1"

// Paragraph carries a paragraph style (reusing docs.ParagraphStyle verbatim
// — spec.md does not require provenance tracking on paragraph-level style,
// only on TextStyle), an optional Bullet, and an ordered list of elements.
// Every paragraph's content ends with a '\n' TextRun (spec.md invariant 1);
// the serializer strips and re-adds it transparently (spec.md §4.A).
type Paragraph struct {
	StartIndex int64
	EndIndex   int64
	Style      *docs.ParagraphStyle
	Bullet     *Bullet
	Elements   []*ParagraphElement
}

// Bullet records a paragraph's list membership. TextStyle carries
// provenance so createParagraphBullets can mirror italic into it only when
// the paragraph's italic was explicitly set (spec.md §4.D).
type Bullet struct {
	ListID       string
	NestingLevel int64
	TextStyle    *TextStyle
}

func (b *Bullet) Clone() *Bullet {
	if b == nil {
		return nil
	}
	return &Bullet{ListID: b.ListID, NestingLevel: b.NestingLevel, TextStyle: b.TextStyle.Clone()}
}

// Clone deep-copies a paragraph and every element it owns.
func (p *Paragraph) Clone() *Paragraph {
	if p == nil {
		return nil
	}
	out := &Paragraph{
		StartIndex: p.StartIndex,
		EndIndex:   p.EndIndex,
		Bullet:     p.Bullet.Clone(),
	}
	if p.Style != nil {
		style := *p.Style
		out.Style = &style
	}
	out.Elements = make([]*ParagraphElement, len(p.Elements))
	for i, e := range p.Elements {
		out.Elements[i] = e.Clone()
	}
	return out
}

// Text concatenates the content of every TextRun element, for diffing and
// for the "fingerprint" content hash used by the sequence-level diff.
func (p *Paragraph) Text() string {
	var out []byte
	for _, e := range p.Elements {
		if e.TextRun != nil {
			out = append(out, e.TextRun.Content...)
		}
	}
	return string(out)
}

// StyleAtRune returns the style of the TextRun covering the given rune
// offset into Text() — used by the reconciler's intra-paragraph style diff,
// which walks text-only paragraphs rune by rune (spec.md §4.B).
func (p *Paragraph) StyleAtRune(runeOffset int) *TextStyle {
	count := 0
	var lastStyle *TextStyle
	for _, e := range p.Elements {
		if e.TextRun == nil {
			continue
		}
		n := len([]rune(e.TextRun.Content))
		lastStyle = e.TextRun.Style
		if runeOffset < count+n {
			return e.TextRun.Style
		}
		count += n
	}
	if lastStyle != nil {
		return lastStyle
	}
	return &TextStyle{}
}

// HeadingID returns the paragraph style's heading id, or "" if unset.
func (p *Paragraph) HeadingID() string {
	if p.Style == nil {
		return ""
	}
	return p.Style.HeadingId
}
