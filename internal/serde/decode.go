package serde

import (
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// TabFiles is the raw contents of one tab's on-disk folder (spec.md §4.A).
// Sidecars are nil/absent when not present on disk (written only when
// non-empty).
type TabFiles struct {
	TabID             string
	DocumentXML       []byte
	StylesXML         []byte
	DocStyleJSON      []byte
	NamedStylesJSON   []byte
	ObjectsJSON       []byte
	PositionedObjects []byte
	NamedRangesJSON   []byte
}

// DecodeTab converts one tab's folder contents into a docmodel.Tab. It
// enforces the content-newline and table-shape rules of spec.md §4.A as it
// walks the tree; immutable-element-count comparison against a sibling tab
// is the caller's job (ValidatePair), since it needs both documents.
func DecodeTab(files TabFiles) (*docmodel.Tab, error) {
	sheet := newStyleSheet()
	if len(files.StylesXML) > 0 {
		parsed, err := parseStylesXML(files.StylesXML)
		if err != nil {
			return nil, fmt.Errorf("tab %s styles.xml: %w", files.TabID, err)
		}
		sheet = parsed
	}

	root, err := parseXML(strings.NewReader(string(files.DocumentXML)))
	if err != nil {
		return nil, fmt.Errorf("tab %s document.xml: %w", files.TabID, err)
	}

	d := &decoder{file: "document.xml", sheet: sheet, tab: &docmodel.Tab{
		TabID:     files.TabID,
		Headers:   map[string]*docmodel.Segment{},
		Footers:   map[string]*docmodel.Segment{},
		Footnotes: map[string]*docmodel.Segment{},
	}}

	bodyNode := root.child("body")
	if bodyNode == nil {
		bodyNode = root // allow a bare <body>-less root for small fixtures/tests
	}
	body, err := d.decodeSegment(bodyNode, docmodel.SegmentBody, "", "body")
	if err != nil {
		return nil, err
	}
	d.tab.Body = body

	for _, h := range root.childrenTag("header") {
		id := h.attr("id")
		seg, err := d.decodeSegment(h, docmodel.SegmentHeader, id, fmt.Sprintf("header[%s]", id))
		if err != nil {
			return nil, err
		}
		d.tab.Headers[id] = seg
	}
	for _, f := range root.childrenTag("footer") {
		id := f.attr("id")
		seg, err := d.decodeSegment(f, docmodel.SegmentFooter, id, fmt.Sprintf("footer[%s]", id))
		if err != nil {
			return nil, err
		}
		d.tab.Footers[id] = seg
	}

	if err := decodeSidecars(d.tab, files); err != nil {
		return nil, err
	}

	normalizeAddTrailingParagraphs(d.tab)
	docmodel.NormalizeRuns(d.tab)
	docmodel.Reindex(d.tab)
	return d.tab, nil
}

type decoder struct {
	file  string
	sheet *styleSheet
	tab   *docmodel.Tab
}

// decodeSegment converts a <body>/<header>/<footer> node's children into a
// Segment. The synthetic trailing empty paragraph the real API always
// appends is not expected on disk — normalizeAddTrailingParagraphs restores
// it after decode (spec.md §4.A).
func (d *decoder) decodeSegment(n *node, kind docmodel.SegmentKind, segmentID, path string) (*docmodel.Segment, error) {
	seg := &docmodel.Segment{Kind: kind, SegmentID: segmentID}
	for i, child := range n.Children {
		elPath := fmt.Sprintf("%s/%s[%d]", path, child.Tag, i)
		se, err := d.decodeBlock(child, elPath)
		if err != nil {
			return nil, err
		}
		if se != nil {
			seg.Content = append(seg.Content, se)
		}
	}
	return seg, nil
}

var headingTags = map[string]string{
	"h1": "HEADING_1", "h2": "HEADING_2", "h3": "HEADING_3",
	"h4": "HEADING_4", "h5": "HEADING_5", "h6": "HEADING_6",
	"title": "TITLE", "subtitle": "SUBTITLE",
}

// decodeBlock converts one block-level child into a StructuralElement, or
// nil for block types that don't map to one directly (e.g. a <style>
// wrapper is transparent — it folds into its child's style).
func (d *decoder) decodeBlock(n *node, path string) (*docmodel.StructuralElement, error) {
	switch n.Tag {
	case "p", "h1", "h2", "h3", "h4", "h5", "h6", "title", "subtitle", "li":
		p, err := d.decodeParagraph(n, path, nil)
		if err != nil {
			return nil, err
		}
		return &docmodel.StructuralElement{Paragraph: p}, nil
	case "table":
		t, err := d.decodeTable(n, path)
		if err != nil {
			return nil, err
		}
		return &docmodel.StructuralElement{Table: t}, nil
	case "toc":
		return &docmodel.StructuralElement{TableOfContents: &docmodel.TableOfContents{}}, nil
	case "style":
		// A block-level <style class="…"> wrapper (the "segment class"
		// cascade level, spec.md §4.A) is decoded only when it wraps exactly
		// one block child: the class is folded into that child if it is a
		// paragraph-like element, and ignored for any other child (e.g. a
		// table). A wrapper with zero or several children is rejected with
		// an UnresolvedClassError.
		cls := n.attr("class")
		if len(n.Children) == 1 {
			return d.decodeBlockWithClass(n.Children[0], path, cls)
		}
		return nil, &UnresolvedClassError{File: d.file, Line: n.Line, Class: cls}
	default:
		return nil, nil // unknown block tags are ignored rather than fatal
	}
}

func (d *decoder) decodeBlockWithClass(n *node, path, cls string) (*docmodel.StructuralElement, error) {
	switch n.Tag {
	case "p", "h1", "h2", "h3", "h4", "h5", "h6", "title", "subtitle", "li":
		p, err := d.decodeParagraph(n, path, []string{cls})
		if err != nil {
			return nil, err
		}
		return &docmodel.StructuralElement{Paragraph: p}, nil
	default:
		return d.decodeBlock(n, path)
	}
}

// decodeParagraph converts a content element into a Paragraph, enforcing
// the no-embedded-newline rule (spec.md §4.A) and building the paragraph's
// run list via decodeInline. extraClasses carries the "segment class"
// cascade level from an enclosing <style> wrapper, if any.
func (d *decoder) decodeParagraph(n *node, path string, extraClasses []string) (*docmodel.Paragraph, error) {
	if strings.ContainsRune(n.fullText(), '\n') {
		return nil, &ContentNewlineError{File: d.file, Line: n.Line, Path: path}
	}

	classes := append([]string{}, extraClasses...)
	if cls := n.attr("class"); cls != "" {
		classes = append(classes, cls)
	}
	base, err := d.resolveClasses(classes)
	if err != nil {
		return nil, err
	}

	elements, err := d.decodeInline(n, base, path)
	if err != nil {
		return nil, err
	}
	// invariant 1: every paragraph ends with a '\n' run (re-added
	// transparently; stripped on encode).
	elements = append(elements, &docmodel.ParagraphElement{TextRun: &docmodel.TextRun{Content: "\n", Style: base.Clone()}})

	p := &docmodel.Paragraph{Style: &docs.ParagraphStyle{}, Elements: elements}
	if namedStyle, ok := headingTags[n.Tag]; ok {
		p.Style.NamedStyleType = namedStyle
		if id := n.attr("id"); id != "" {
			p.Style.HeadingId = id
		}
	}
	if align := n.attr("align"); align != "" {
		p.Style.Alignment = strings.ToUpper(align)
	}
	if n.Tag == "li" {
		level := int64(0)
		if lvl := n.attr("level"); lvl != "" {
			if v, err := strconv.Atoi(lvl); err == nil {
				level = int64(v)
			}
		}
		p.Bullet = &docmodel.Bullet{
			ListID:       n.attr("list"),
			NestingLevel: level,
			TextStyle:    base.Clone(),
		}
	}
	return p, nil
}

func (d *decoder) resolveClasses(classes []string) (*docmodel.TextStyle, error) {
	style := &docmodel.TextStyle{}
	if base, ok := d.sheet.resolve("_base"); ok {
		style = base
	}
	for _, cls := range classes {
		resolved, ok := d.sheet.resolve(cls)
		if !ok {
			return nil, &UnresolvedClassError{File: d.file, Class: cls}
		}
		style = resolved
	}
	return style, nil
}

// decodeInline walks mixed text/inline content, producing one ParagraphElement
// per text run or special inline element, with style accumulated from the
// nesting of b/i/u/s/sup/sub/a/span.
func (d *decoder) decodeInline(n *node, inherited *docmodel.TextStyle, path string) ([]*docmodel.ParagraphElement, error) {
	var out []*docmodel.ParagraphElement
	for _, item := range n.order {
		if item.isText {
			if item.text == "" {
				continue
			}
			out = append(out, &docmodel.ParagraphElement{TextRun: &docmodel.TextRun{Content: item.text, Style: inherited.Clone()}})
			continue
		}
		child := item.child
		elems, err := d.decodeInlineChild(child, inherited, path)
		if err != nil {
			return nil, err
		}
		out = append(out, elems...)
	}
	return mergeAdjacentRuns(out), nil
}

func (d *decoder) decodeInlineChild(n *node, inherited *docmodel.TextStyle, path string) ([]*docmodel.ParagraphElement, error) {
	switch n.Tag {
	case "b", "i", "u", "s", "sup", "sub":
		style := inherited.Clone()
		switch n.Tag {
		case "b":
			style.Bold = true
		case "i":
			style.Italic = true
		case "u":
			style.Underline = true
		case "s":
			style.Strikethrough = true
		case "sup":
			style.BaselineOffset = "SUPERSCRIPT"
		case "sub":
			style.BaselineOffset = "SUBSCRIPT"
		}
		return d.decodeInline(n, style, path)
	case "a":
		style := inherited.Clone()
		style.Link = &docs.Link{Url: n.attr("href")}
		return d.decodeInline(n, style, path)
	case "span":
		cls := n.attr("class")
		style := inherited.Clone()
		if cls != "" {
			resolved, ok := d.sheet.resolve(cls)
			if !ok {
				return nil, &UnresolvedClassError{File: d.file, Line: n.Line, Class: cls}
			}
			style = resolved
		}
		// Direct attributes (color/bg/font/size/smallcaps) are the encode
		// side's round-trip path for fields with no dedicated tag; they
		// layer on top of any class, same precedence as the element-class
		// cascade level (spec.md §4.A).
		applyFieldsToStyle(style, n.Attrs)
		return d.decodeInline(n, style, path)
	case "hr":
		return []*docmodel.ParagraphElement{{HorizontalRule: &docmodel.HorizontalRule{Style: inherited.Clone()}}}, nil
	case "image":
		return []*docmodel.ParagraphElement{{InlineObjectElement: &docmodel.InlineObjectElement{ObjectID: n.attr("id")}}}, nil
	case "autotext":
		return []*docmodel.ParagraphElement{{AutoText: &docmodel.AutoText{Type: n.attr("type"), Style: inherited.Clone()}}}, nil
	case "columnbreak":
		return []*docmodel.ParagraphElement{{ColumnBreak: &docmodel.ColumnBreak{Style: inherited.Clone()}}}, nil
	case "pagebreak":
		return []*docmodel.ParagraphElement{{PageBreak: &docmodel.PageBreak{Style: inherited.Clone()}}}, nil
	case "richlink":
		return []*docmodel.ParagraphElement{{RichLink: &docmodel.RichLink{RichLinkID: n.attr("id"), Style: inherited.Clone()}}}, nil
	case "equation":
		length := 0
		if v := n.attr("length"); v != "" {
			length, _ = strconv.Atoi(v)
		}
		return []*docmodel.ParagraphElement{{Equation: &docmodel.Equation{Length: length, Style: inherited.Clone()}}}, nil
	case "date":
		ts, _ := strconv.ParseInt(n.attr("timestamp"), 10, 64)
		return []*docmodel.ParagraphElement{{Date: &docmodel.DateChip{
			TimestampUnixSec: ts,
			DateFormat:       n.attr("dateFormat"),
			TimeFormat:       n.attr("timeFormat"),
			TimeZoneID:       n.attr("timeZoneId"),
			Locale:           n.attr("locale"),
			Style:            inherited.Clone(),
		}}}, nil
	case "person":
		return []*docmodel.ParagraphElement{{Person: &docmodel.Person{Email: n.attr("email"), Style: inherited.Clone()}}}, nil
	case "footnote":
		return d.decodeFootnote(n, inherited, path)
	default:
		return nil, nil
	}
}

// decodeFootnote extracts the footnote's own paragraph content into its own
// segment (its own independent index space, spec.md §3) and returns a
// FootnoteReference element at the point it was anchored in the body.
func (d *decoder) decodeFootnote(n *node, inherited *docmodel.TextStyle, path string) ([]*docmodel.ParagraphElement, error) {
	id := n.attr("id")
	if id == "" {
		id = fmt.Sprintf("fn%d", len(d.tab.Footnotes)+1)
	}
	seg, err := d.decodeSegment(n, docmodel.SegmentFootnote, id, path+"/footnote")
	if err != nil {
		return nil, err
	}
	d.tab.Footnotes[id] = seg
	return []*docmodel.ParagraphElement{{FootnoteReference: &docmodel.FootnoteReference{FootnoteID: id, Style: inherited.Clone()}}}, nil
}

// decodeTable converts a <table>/<tr>/<td> node into a Table, enforcing
// spec.md §4.A's "every row has the same <td> count" and "every <td>
// contains at least one <p>" rules.
func (d *decoder) decodeTable(n *node, path string) (*docmodel.Table, error) {
	rows := n.childrenTag("tr")
	t := &docmodel.Table{}
	expectedCols := -1
	for ri, rowNode := range rows {
		cells := rowNode.childrenTag("td")
		if expectedCols == -1 {
			expectedCols = len(cells)
		} else if len(cells) != expectedCols {
			return nil, &TableShapeError{
				File: d.file, Line: rowNode.Line,
				Path:   fmt.Sprintf("%s/tr[%d]", path, ri),
				Reason: fmt.Sprintf("row has %d cells, expected %d", len(cells), expectedCols),
			}
		}
		row := &docmodel.TableRow{}
		for ci, cellNode := range cells {
			cellPath := fmt.Sprintf("%s/tr[%d]/td[%d]", path, ri, ci)
			cell := &docmodel.TableCell{ColumnSpan: 1, RowSpan: 1}
			if v := cellNode.attr("colspan"); v != "" {
				if n, err := strconv.Atoi(v); err == nil {
					cell.ColumnSpan = int64(n)
				}
			}
			if v := cellNode.attr("rowspan"); v != "" {
				if n, err := strconv.Atoi(v); err == nil {
					cell.RowSpan = int64(n)
				}
			}
			if cellNode.attr("placeholder") == "1" {
				cell.Placeholder = true
				row.Cells = append(row.Cells, cell)
				continue
			}
			hasParagraph := false
			for i, child := range cellNode.Children {
				se, err := d.decodeBlock(child, fmt.Sprintf("%s/%s[%d]", cellPath, child.Tag, i))
				if err != nil {
					return nil, err
				}
				if se != nil {
					cell.Content = append(cell.Content, se)
					if se.Paragraph != nil {
						hasParagraph = true
					}
				}
			}
			if !hasParagraph {
				return nil, &TableShapeError{File: d.file, Line: cellNode.Line, Path: cellPath, Reason: "cell has no <p>"}
			}
			row.Cells = append(row.Cells, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// mergeAdjacentRuns merges consecutive TextRun elements with identical
// resolved style, the same normalization the mock applies after mutation
// (spec.md invariant 5), kept consistent here so decode output matches
// mock output byte-for-byte.
func mergeAdjacentRuns(elems []*docmodel.ParagraphElement) []*docmodel.ParagraphElement {
	var out []*docmodel.ParagraphElement
	for _, e := range elems {
		if e.TextRun == nil {
			out = append(out, e)
			continue
		}
		if len(out) > 0 && out[len(out)-1].TextRun != nil &&
			out[len(out)-1].TextRun.Style.EqualIgnoringExplicit(e.TextRun.Style) {
			out[len(out)-1].TextRun.Content += e.TextRun.Content
			continue
		}
		out = append(out, e)
	}
	return out
}
