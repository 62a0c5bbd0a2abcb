package serde

import "fmt"

// Error kinds mirror spec.md §7's Validation taxonomy: XmlMalformed,
// ContentNewline, TableShape, ImmutableElementCountChanged, UnresolvedClass.
// Each is a distinct Go type rather than a single sentinel so callers can
// carry file/line/XPath detail and the client can surface it (spec.md
// §4.A "All are fatal for the push; the client surfaces the XPath or line
// number.").

// MalformedXMLError reports XML that encoding/xml could not tokenize.
type MalformedXMLError struct {
	File  string
	Line  int
	Cause error
}

func (e *MalformedXMLError) Error() string {
	return fmt.Sprintf("%s:%d: malformed xml: %v", e.File, e.Line, e.Cause)
}

func (e *MalformedXMLError) Unwrap() error { return e.Cause }

// ContentNewlineError reports a literal newline inside a content element
// (<p>, <h1>..<h6>, <li>, or an inline tag) — spec.md §4.A: "the single
// largest source of API corruption."
type ContentNewlineError struct {
	File string
	Line int
	Path string // e.g. "body/p[3]"
}

func (e *ContentNewlineError) Error() string {
	return fmt.Sprintf("%s:%d: newline inside content element at %s (newlines are only permitted between container children)", e.File, e.Line, e.Path)
}

// TableShapeError reports a table row whose cell count disagrees with its
// siblings, or a <td> with no <p> child.
type TableShapeError struct {
	File   string
	Line   int
	Path   string
	Reason string
}

func (e *TableShapeError) Error() string {
	return fmt.Sprintf("%s:%d: table shape error at %s: %s", e.File, e.Line, e.Path, e.Reason)
}

// ImmutableElementCountChangedError reports a change in the count of
// horizontal rules, inline images, auto-text, or column breaks between the
// pristine and the edited document — operations the Docs API itself
// forbids (spec.md §1 Non-goals).
type ImmutableElementCountChangedError struct {
	Kind            string
	PristineCount   int
	DesiredCount    int
}

func (e *ImmutableElementCountChangedError) Error() string {
	return fmt.Sprintf("%s count changed: pristine has %d, desired has %d (the Docs API cannot add or remove %s)", e.Kind, e.PristineCount, e.DesiredCount, e.Kind)
}

// UnresolvedClassError reports a <span class="…">, <style class="…">
// wrapper, or block element referencing a style class absent from the
// cascade in styles.xml.
type UnresolvedClassError struct {
	File  string
	Line  int
	Class string
}

func (e *UnresolvedClassError) Error() string {
	return fmt.Sprintf("%s:%d: unresolved style class %q", e.File, e.Line, e.Class)
}
