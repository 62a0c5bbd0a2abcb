package docmodel

import "unicode/utf16"

// UTF16Len returns the length of s in UTF-16 code units — the unit Google
// Docs indices are expressed in (spec.md §3, GLOSSARY). A supplementary-
// plane rune (e.g. most emoji) costs two code units; everything in the
// Basic Multilingual Plane costs one.
func UTF16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// ElementLen returns a paragraph element's length in UTF-16 code units.
// Every non-text element occupies exactly one code unit — the Docs API
// represents an inline object, chip, or break as a single placeholder
// character in the run of text.
func (pe *ParagraphElement) ElementLen() int {
	if pe.TextRun != nil {
		return UTF16Len(pe.TextRun.Content)
	}
	return 1
}
