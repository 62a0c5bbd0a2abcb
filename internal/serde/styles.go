package serde

import (
	"strconv"
	"strings"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// styleClass is one <style class="name" .../> entry from styles.xml. It
// only declares the fields that deviate from its parent (spec.md §4.A
// "A style entry in styles.xml only declares fields that deviate from its
// parent"); Fields holds the raw declared attribute values, keyed by the
// same attribute names the XML grammar uses.
type styleClass struct {
	Name    string
	Extends string
	Fields  map[string]string
}

// styleSheet is the parsed styles.xml: a map of named classes plus the
// reserved "_base" default (spec.md §4.A).
type styleSheet struct {
	Classes map[string]*styleClass
}

func newStyleSheet() *styleSheet {
	return &styleSheet{Classes: map[string]*styleClass{
		"_base": {Name: "_base", Fields: map[string]string{}},
	}}
}

// parseStylesXML parses a styles.xml document into a styleSheet.
func parseStylesXML(r []byte) (*styleSheet, error) {
	root, err := parseXML(strings.NewReader(string(r)))
	if err != nil {
		return nil, err
	}
	sheet := newStyleSheet()
	for _, n := range root.childrenTag("style") {
		name := n.attr("class")
		if name == "" {
			continue
		}
		fields := map[string]string{}
		for k, v := range n.Attrs {
			if k == "class" || k == "extends" {
				continue
			}
			fields[k] = v
		}
		sheet.Classes[name] = &styleClass{Name: name, Extends: n.attr("extends"), Fields: fields}
	}
	return sheet, nil
}

// resolve builds the full TextStyle for a class by walking its Extends
// chain from "_base" down to name, applying each level's declared fields in
// turn — the cascade of spec.md §4.A. A missing class is an
// UnresolvedClassError (returned by the caller, which has file/line
// context); resolve itself just reports ok=false.
func (s *styleSheet) resolve(name string) (*docmodel.TextStyle, bool) {
	chain, ok := s.chain(name)
	if !ok {
		return nil, false
	}
	style := &docmodel.TextStyle{}
	for _, c := range chain {
		applyFieldsToStyle(style, c.Fields)
	}
	return style, true
}

// chain returns the classes from "_base" to name, inclusive, in
// application order.
func (s *styleSheet) chain(name string) ([]*styleClass, bool) {
	var chain []*styleClass
	seen := map[string]bool{}
	cur := name
	for {
		c, ok := s.Classes[cur]
		if !ok {
			return nil, false
		}
		chain = append([]*styleClass{c}, chain...)
		if seen[cur] {
			break // defensive: cyclic extends, stop rather than loop forever
		}
		seen[cur] = true
		if cur == "_base" || c.Extends == "" {
			if cur != "_base" {
				base, ok := s.Classes["_base"]
				if ok {
					chain = append([]*styleClass{base}, chain...)
				}
			}
			break
		}
		cur = c.Extends
	}
	return chain, true
}

// applyFieldsToStyle mutates style in place, applying each attribute found
// in fields. Unrecognized attribute names are ignored rather than fatal,
// since styles.xml's schema may gain fields the serializer doesn't yet
// model without invalidating older tab folders.
func applyFieldsToStyle(style *docmodel.TextStyle, fields map[string]string) {
	for k, v := range fields {
		switch k {
		case "bold":
			style.Bold = parseBoolAttr(v)
		case "italic":
			style.Italic = parseBoolAttr(v)
		case "underline":
			style.Underline = parseBoolAttr(v)
		case "strike":
			style.Strikethrough = parseBoolAttr(v)
		case "smallcaps":
			style.SmallCaps = parseBoolAttr(v)
		case "sup":
			if parseBoolAttr(v) {
				style.BaselineOffset = "SUPERSCRIPT"
			}
		case "sub":
			if parseBoolAttr(v) {
				style.BaselineOffset = "SUBSCRIPT"
			}
		case "font":
			style.FontFamily = v
		case "size":
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				style.FontSizePt = f
			}
		case "color":
			if rgb, ok := parseHexColor(v); ok {
				style.ForegroundColor = rgb
			}
		case "bg":
			if rgb, ok := parseHexColor(v); ok {
				style.BackgroundColor = rgb
			}
		}
	}
}

func parseBoolAttr(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func parseHexColor(hex string) (*docmodel.RGB, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, false
	}
	rgb, err := strconv.ParseUint(hex, 16, 24)
	if err != nil {
		return nil, false
	}
	return &docmodel.RGB{
		Red:   float64((rgb>>16)&0xFF) / 255.0,
		Green: float64((rgb>>8)&0xFF) / 255.0,
		Blue:  float64(rgb&0xFF) / 255.0,
	}, true
}

func formatHexColor(c *docmodel.RGB) string {
	r := clamp255(c.Red)
	g := clamp255(c.Green)
	b := clamp255(c.Blue)
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func clamp255(f float64) int {
	v := int(f*255.0 + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func hexByte(v int) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[(v>>4)&0xF], digits[v&0xF]})
}
