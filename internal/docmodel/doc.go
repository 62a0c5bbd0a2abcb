package docmodel

// Document is an ordered collection of tabs (spec.md §3). A Document value
// is owned exclusively by its holder; it is never shared mutably (spec.md
// "Ownership and lifecycle") — callers that need to retain a prior state
// (e.g. the mock's atomic-batch rule, spec.md §4.D) must Clone first.
type Document struct {
	Tabs []*Tab
}

// Clone deep-copies the document and everything it owns.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{Tabs: make([]*Tab, len(d.Tabs))}
	for i, t := range d.Tabs {
		out.Tabs[i] = t.Clone()
	}
	return out
}

// Tab looks up a tab by id, returning nil if not found.
func (d *Document) Tab(tabID string) *Tab {
	for _, t := range d.Tabs {
		if t.TabID == tabID {
			return t
		}
	}
	return nil
}

// FirstTab returns the first tab, or nil for an empty document. Most
// single-tab documents (the overwhelming common case) address operations
// against this tab implicitly.
func (d *Document) FirstTab() *Tab {
	if len(d.Tabs) == 0 {
		return nil
	}
	return d.Tabs[0]
}
