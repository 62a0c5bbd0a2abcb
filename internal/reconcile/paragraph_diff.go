package reconcile

import (
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// diffParagraphText implements spec.md §4.B's intra-paragraph diff for the
// common case of a paragraph whose elements are plain text runs: text
// content is diffed by common-prefix/common-suffix (the middle differing
// span becomes one deleteContentRange + one insertText, with the new text's
// style inherited from the surrounding context, per §4.D's insertText
// contract); the unchanged prefix and suffix are then diffed for style-only
// changes, producing updateTextStyle requests with a precise fields mask.
//
// Paragraphs containing any non-text element (chip, inline object, break)
// are not diffed here: diffReplaceBlock returns a CannotReconcileError for a
// 1:1 replace involving one, since aligning a chip's identity across an edit
// needs more context than a text diff gives.
func diffParagraphText(base, desired *docmodel.Paragraph, startIndex int64) ([]*docs.Request, int64) {
	baseRunes := []rune(base.Text())
	desiredRunes := []rune(desired.Text())

	prefix := commonPrefixLen(baseRunes, desiredRunes)
	suffix := commonSuffixLen(baseRunes[prefix:], desiredRunes[prefix:])
	baseMidEnd := len(baseRunes) - suffix
	desiredMidEnd := len(desiredRunes) - suffix

	var requests []*docs.Request
	var netShift int64

	deleteStartUTF16 := int64(docmodel.UTF16Len(string(baseRunes[:prefix])))
	deleteEndUTF16 := int64(docmodel.UTF16Len(string(baseRunes[:baseMidEnd])))
	insertContent := string(desiredRunes[prefix:desiredMidEnd])

	if deleteEndUTF16 > deleteStartUTF16 {
		requests = append(requests, &docs.Request{
			DeleteContentRange: &docs.DeleteContentRangeRequest{
				Range: &docs.Range{StartIndex: startIndex + deleteStartUTF16, EndIndex: startIndex + deleteEndUTF16},
			},
		})
		netShift -= deleteEndUTF16 - deleteStartUTF16
	}
	if insertContent != "" {
		requests = append(requests, &docs.Request{
			InsertText: &docs.InsertTextRequest{
				Location: &docs.Location{Index: startIndex + deleteStartUTF16},
				Text:     insertContent,
			},
		})
		netShift += int64(docmodel.UTF16Len(insertContent))
	}

	// Style-only diff over the unchanged prefix, then the unchanged suffix
	// (shifted to its position after the text edit, in the final document).
	requests = append(requests, styleDiffRunes(base, desired, 0, 0, prefix, startIndex)...)
	suffixStartAbsolute := startIndex + deleteStartUTF16 + int64(docmodel.UTF16Len(insertContent))
	requests = append(requests, styleDiffRunes(base, desired, baseMidEnd, desiredMidEnd, suffix, suffixStartAbsolute)...)

	return requests, netShift
}

func commonPrefixLen(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func commonSuffixLen(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}

// styleDiffRunes compares style over a span of `length` runes that reads
// identically on both sides — base runes [baseStart, baseStart+length)
// against desired runes [desiredStart, desiredStart+length) — and emits one
// updateTextStyle request per maximal contiguous run of runes whose
// changed-field set is identical and non-empty. absoluteStart is the
// document index the span's first rune maps to in the final document.
func styleDiffRunes(base, desired *docmodel.Paragraph, baseStart, desiredStart, length int, absoluteStart int64) []*docs.Request {
	if length <= 0 {
		return nil
	}
	desiredRunes := []rune(desired.Text())

	var requests []*docs.Request
	var spanStartOffset int
	var spanUTF16Start int64
	var spanFields docmodel.FieldSet
	cursorUTF16 := absoluteStart

	flush := func(endUTF16 int64) {
		if len(spanFields) == 0 {
			return
		}
		style := &docmodel.TextStyle{}
		desiredStyle := desired.StyleAtRune(spanStartOffset)
		for f := range spanFields {
			style.ApplyField(f, desiredStyle)
		}
		requests = append(requests, &docs.Request{
			UpdateTextStyle: &docs.UpdateTextStyleRequest{
				Range:     &docs.Range{StartIndex: spanUTF16Start, EndIndex: endUTF16},
				TextStyle: toAPITextStyle(style),
				Fields:    joinFields(spanFields),
			},
		})
	}

	for i := 0; i < length; i++ {
		bStyle := base.StyleAtRune(baseStart + i)
		dStyle := desired.StyleAtRune(desiredStart + i)
		changed := changedFields(bStyle, dStyle)
		runeLen := int64(1)
		if desiredRunes[desiredStart+i] >= 0x10000 {
			runeLen = 2
		}
		if !fieldSetsEqual(changed, spanFields) {
			flush(cursorUTF16)
			spanFields = changed
			spanStartOffset = desiredStart + i
			spanUTF16Start = cursorUTF16
		}
		cursorUTF16 += runeLen
	}
	flush(cursorUTF16)
	return requests
}
