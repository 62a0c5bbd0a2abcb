package mock

import (
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

func newEmptySegment(kind docmodel.SegmentKind) *docmodel.Segment {
	return &docmodel.Segment{
		Kind: kind,
		Content: []*docmodel.StructuralElement{{
			Paragraph: &docmodel.Paragraph{
				Style:    &docs.ParagraphStyle{},
				Elements: []*docmodel.ParagraphElement{{TextRun: &docmodel.TextRun{Content: "\n", Style: &docmodel.TextStyle{}}}},
			},
		}},
	}
}

func handleCreateHeader(tab *docmodel.Tab, req *docs.CreateHeaderRequest) (*docs.Reply, error) {
	id := newSegmentID()
	if tab.Headers == nil {
		tab.Headers = map[string]*docmodel.Segment{}
	}
	tab.Headers[id] = newEmptySegment(docmodel.SegmentHeader)
	return &docs.Reply{CreateHeader: &docs.CreateHeaderResponse{HeaderId: id}}, nil
}

func handleCreateFooter(tab *docmodel.Tab, req *docs.CreateFooterRequest) (*docs.Reply, error) {
	id := newSegmentID()
	if tab.Footers == nil {
		tab.Footers = map[string]*docmodel.Segment{}
	}
	tab.Footers[id] = newEmptySegment(docmodel.SegmentFooter)
	return &docs.Reply{CreateFooter: &docs.CreateFooterResponse{FooterId: id}}, nil
}

func handleCreateFootnote(tab *docmodel.Tab, req *docs.CreateFootnoteRequest) (*docs.Reply, error) {
	id := newSegmentID()
	if tab.Footnotes == nil {
		tab.Footnotes = map[string]*docmodel.Segment{}
	}
	tab.Footnotes[id] = newEmptySegment(docmodel.SegmentFootnote)

	if req.Location != nil {
		seg, err := resolveSegment(tab, req.Location.SegmentId)
		if err != nil {
			return nil, err
		}
		loc, err := locateParagraph(&seg.Content, req.Location.Index)
		if err != nil {
			return nil, err
		}
		p := (*loc.elements)[loc.idx].Paragraph
		elemIdx, _, err := locateRunOffset(p, req.Location.Index)
		if err == nil {
			ref := &docmodel.ParagraphElement{FootnoteReference: &docmodel.FootnoteReference{FootnoteID: id, Style: &docmodel.TextStyle{}}}
			elements := append([]*docmodel.ParagraphElement{}, p.Elements[:elemIdx+1]...)
			elements = append(elements, ref)
			elements = append(elements, p.Elements[elemIdx+1:]...)
			p.Elements = elements
		}
	}

	return &docs.Reply{CreateFootnote: &docs.CreateFootnoteResponse{FootnoteId: id}}, nil
}

// addDocumentTab and deleteTab operate at the Document level, above a
// single tab's content — Engine.Apply (engine.go) routes them itself rather
// than through the per-tab dispatch table.
func handleAddDocumentTab(doc *docmodel.Document, req *docs.AddDocumentTabRequest) (*docs.Reply, *docmodel.Tab) {
	tab := &docmodel.Tab{
		TabID: newSegmentID(),
		Index: len(doc.Tabs),
		Body:  newEmptySegment(docmodel.SegmentBody),
	}
	doc.Tabs = append(doc.Tabs, tab)
	return &docs.Reply{}, tab
}

func handleDeleteTab(doc *docmodel.Document, tabID string) *docs.Reply {
	for i, t := range doc.Tabs {
		if t.TabID == tabID {
			doc.Tabs = append(doc.Tabs[:i], doc.Tabs[i+1:]...)
			break
		}
	}
	return &docs.Reply{}
}
