package serde

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// EncodeTab converts a docmodel.Tab back into a tab folder's on-disk files.
// Encode does not attempt to reconstruct styles.xml classes — a class is a
// hand-authoring convenience on the way in, and "consistency not fidelity"
// (spec.md §4.A) means the resolved style, not the class reference, is what
// has to round-trip. Every run is written out with direct inline tags.
func EncodeTab(tab *docmodel.Tab) (TabFiles, error) {
	files, err := encodeSidecars(tab)
	if err != nil {
		return files, err
	}
	files.TabID = tab.TabID

	body := tab.Body.Clone()
	normalizeStripTrailingParagraph(body)

	var b strings.Builder
	b.WriteString("<document>\n  <body>\n")
	enc := &encoder{tab: tab}
	if err := enc.segmentContent(&b, body.Content, "    "); err != nil {
		return files, err
	}
	b.WriteString("  </body>\n")

	for _, id := range sortedSegmentKeys(tab.Headers) {
		seg := tab.Headers[id].Clone()
		normalizeStripTrailingParagraph(seg)
		fmt.Fprintf(&b, "  <header id=%q>\n", id)
		if err := enc.segmentContent(&b, seg.Content, "    "); err != nil {
			return files, err
		}
		b.WriteString("  </header>\n")
	}
	for _, id := range sortedSegmentKeys(tab.Footers) {
		seg := tab.Footers[id].Clone()
		normalizeStripTrailingParagraph(seg)
		fmt.Fprintf(&b, "  <footer id=%q>\n", id)
		if err := enc.segmentContent(&b, seg.Content, "    "); err != nil {
			return files, err
		}
		b.WriteString("  </footer>\n")
	}
	b.WriteString("</document>\n")

	files.DocumentXML = []byte(b.String())
	return files, nil
}

func sortedSegmentKeys(m map[string]*docmodel.Segment) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// encoder carries the tab being serialized so footnote references can pull
// their content (stored in its own segment, spec.md §3) back inline.
type encoder struct {
	tab *docmodel.Tab
}

func (enc *encoder) segmentContent(b *strings.Builder, content []*docmodel.StructuralElement, indent string) error {
	for _, se := range content {
		if err := enc.block(b, se, indent); err != nil {
			return err
		}
	}
	return nil
}

func (enc *encoder) block(b *strings.Builder, se *docmodel.StructuralElement, indent string) error {
	switch {
	case se.Paragraph != nil:
		return enc.paragraph(b, se.Paragraph, indent)
	case se.Table != nil:
		return enc.table(b, se.Table, indent)
	case se.TableOfContents != nil:
		fmt.Fprintf(b, "%s<toc/>\n", indent)
		return nil
	}
	return nil
}

var headingTagByStyle = map[string]string{
	"HEADING_1": "h1", "HEADING_2": "h2", "HEADING_3": "h3",
	"HEADING_4": "h4", "HEADING_5": "h5", "HEADING_6": "h6",
	"TITLE": "title", "SUBTITLE": "subtitle",
}

func (enc *encoder) paragraph(b *strings.Builder, p *docmodel.Paragraph, indent string) error {
	tag := "p"
	if p.Style != nil {
		if t, ok := headingTagByStyle[p.Style.NamedStyleType]; ok {
			tag = t
		}
	}
	var attrs strings.Builder
	if p.Bullet != nil {
		tag = "li"
		fmt.Fprintf(&attrs, " list=%q", p.Bullet.ListID)
		if p.Bullet.NestingLevel != 0 {
			fmt.Fprintf(&attrs, " level=%q", strconv.FormatInt(p.Bullet.NestingLevel, 10))
		}
	}
	if p.Style != nil {
		if p.Style.HeadingId != "" {
			fmt.Fprintf(&attrs, " id=%q", p.Style.HeadingId)
		}
		if p.Style.Alignment != "" {
			fmt.Fprintf(&attrs, " align=%q", strings.ToLower(p.Style.Alignment))
		}
	}

	elements := p.Elements
	if n := len(elements); n > 0 && elements[n-1].TextRun != nil && elements[n-1].TextRun.Content == "\n" {
		elements = elements[:n-1]
	}

	fmt.Fprintf(b, "%s<%s%s>", indent, tag, attrs.String())
	if err := enc.inline(b, elements); err != nil {
		return err
	}
	fmt.Fprintf(b, "</%s>\n", tag)
	return nil
}

// inline writes each element's run or special tag directly, wrapping text
// runs in nested style tags in a fixed, deterministic order
// (a > span > b > i > u > s > sup/sub) so equivalent styles always
// serialize identically.
func (enc *encoder) inline(b *strings.Builder, elements []*docmodel.ParagraphElement) error {
	for _, e := range elements {
		switch {
		case e.TextRun != nil:
			encodeTextRun(b, e.TextRun)
		case e.HorizontalRule != nil:
			b.WriteString("<hr/>")
		case e.InlineObjectElement != nil:
			fmt.Fprintf(b, "<image id=%q/>", e.InlineObjectElement.ObjectID)
		case e.AutoText != nil:
			fmt.Fprintf(b, "<autotext type=%q/>", e.AutoText.Type)
		case e.ColumnBreak != nil:
			b.WriteString("<columnbreak/>")
		case e.PageBreak != nil:
			b.WriteString("<pagebreak/>")
		case e.RichLink != nil:
			fmt.Fprintf(b, "<richlink id=%q/>", e.RichLink.RichLinkID)
		case e.Equation != nil:
			fmt.Fprintf(b, "<equation length=%q/>", strconv.Itoa(e.Equation.Length))
		case e.Date != nil:
			d := e.Date
			fmt.Fprintf(b, "<date timestamp=%q dateFormat=%q timeFormat=%q timeZoneId=%q locale=%q/>",
				strconv.FormatInt(d.TimestampUnixSec, 10), d.DateFormat, d.TimeFormat, d.TimeZoneID, d.Locale)
		case e.Person != nil:
			fmt.Fprintf(b, "<person email=%q/>", e.Person.Email)
		case e.FootnoteReference != nil:
			id := e.FootnoteReference.FootnoteID
			fmt.Fprintf(b, "<footnote id=%q>", id)
			if seg := enc.tab.Footnotes[id]; seg != nil {
				content := seg.Clone()
				normalizeStripTrailingParagraph(content)
				if err := enc.segmentContent(b, content.Content, ""); err != nil {
					return err
				}
			}
			b.WriteString("</footnote>")
		}
	}
	return nil
}

func encodeTextRun(b *strings.Builder, run *docmodel.TextRun) {
	content := run.Content
	if content == "\n" {
		return // the trailing newline run is implicit, re-added by Decode
	}
	content = strings.TrimSuffix(content, "\n")

	var open, close []string
	style := run.Style
	if style != nil {
		if style.Link != nil {
			open = append(open, fmt.Sprintf("<a href=%q>", xmlAttrEscape(style.Link.Url)))
			close = append([]string{"</a>"}, close...)
		}
		if attrs := spanAttrs(style); attrs != "" {
			open = append(open, fmt.Sprintf("<span%s>", attrs))
			close = append([]string{"</span>"}, close...)
		}
		if style.Bold {
			open = append(open, "<b>")
			close = append([]string{"</b>"}, close...)
		}
		if style.Italic {
			open = append(open, "<i>")
			close = append([]string{"</i>"}, close...)
		}
		if style.Underline {
			open = append(open, "<u>")
			close = append([]string{"</u>"}, close...)
		}
		if style.Strikethrough {
			open = append(open, "<s>")
			close = append([]string{"</s>"}, close...)
		}
		switch style.BaselineOffset {
		case "SUPERSCRIPT":
			open = append(open, "<sup>")
			close = append([]string{"</sup>"}, close...)
		case "SUBSCRIPT":
			open = append(open, "<sub>")
			close = append([]string{"</sub>"}, close...)
		}
	}
	for _, tag := range open {
		b.WriteString(tag)
	}
	xml.EscapeText(b2w{b}, []byte(content))
	for _, tag := range close {
		b.WriteString(tag)
	}
}

// spanAttrs renders the subset of TextStyle that has no dedicated tag of its
// own (color, background, font, size, small caps) as a <span> attribute
// string, or "" if none of them are set. Without this, a run carrying only
// these fields round-trips as plain text and silently loses them on encode
// (spec.md §8 testable property 1).
func spanAttrs(style *docmodel.TextStyle) string {
	var b strings.Builder
	if style.SmallCaps {
		b.WriteString(` smallcaps="1"`)
	}
	if style.FontFamily != "" {
		fmt.Fprintf(&b, " font=%q", xmlAttrEscape(style.FontFamily))
	}
	if style.FontSizePt != 0 {
		fmt.Fprintf(&b, " size=%q", strconv.FormatFloat(style.FontSizePt, 'g', -1, 64))
	}
	if style.ForegroundColor != nil {
		fmt.Fprintf(&b, " color=%q", formatHexColor(style.ForegroundColor))
	}
	if style.BackgroundColor != nil {
		fmt.Fprintf(&b, " bg=%q", formatHexColor(style.BackgroundColor))
	}
	return b.String()
}

// b2w adapts *strings.Builder to io.Writer for xml.EscapeText.
type b2w struct{ b *strings.Builder }

func (w b2w) Write(p []byte) (int, error) { return w.b.Write(p) }

func xmlAttrEscape(s string) string {
	var b strings.Builder
	xml.EscapeText(b2w{&b}, []byte(s))
	return b.String()
}

func (enc *encoder) table(b *strings.Builder, t *docmodel.Table, indent string) error {
	fmt.Fprintf(b, "%s<table>\n", indent)
	for _, row := range t.Rows {
		fmt.Fprintf(b, "%s  <tr>\n", indent)
		for _, cell := range row.Cells {
			if cell.Placeholder {
				fmt.Fprintf(b, "%s    <td placeholder=\"1\"/>\n", indent)
				continue
			}
			var attrs strings.Builder
			if cell.ColumnSpan != 1 {
				fmt.Fprintf(&attrs, " colspan=%q", strconv.FormatInt(cell.ColumnSpan, 10))
			}
			if cell.RowSpan != 1 {
				fmt.Fprintf(&attrs, " rowspan=%q", strconv.FormatInt(cell.RowSpan, 10))
			}
			fmt.Fprintf(b, "%s    <td%s>\n", indent, attrs.String())
			if err := enc.segmentContent(b, cell.Content, indent+"      "); err != nil {
				return err
			}
			fmt.Fprintf(b, "%s    </td>\n", indent)
		}
		fmt.Fprintf(b, "%s  </tr>\n", indent)
	}
	fmt.Fprintf(b, "%s</table>\n", indent)
	return nil
}
