package serde

import (
	"encoding/json"
	"fmt"

	"github.com/yosuke-furukawa/json5/encoding/json5"
	"google.golang.org/api/docs/v1"

	"github.com/extrasuite/docsrecon/internal/docmodel"
)

// decodeSidecars parses the JSON-in-XML-extension sidecar files (spec.md
// §4.A: docstyle.xml, namedstyles.xml, objects.xml, positionedObjects.xml,
// namedranges.xml carry JSON, not XML — the ".xml" suffix only keeps naming
// consistent across the tab folder) using json5 for lenience (trailing
// commas, comments) since these files are meant to be hand-editable.
func decodeSidecars(tab *docmodel.Tab, files TabFiles) error {
	if len(files.DocStyleJSON) > 0 {
		var ds docs.DocumentStyle
		if err := json5.Unmarshal(files.DocStyleJSON, &ds); err != nil {
			return fmt.Errorf("tab %s docstyle.xml: %w", tab.TabID, err)
		}
		tab.DocumentStyle = &ds
	}
	if len(files.NamedStylesJSON) > 0 {
		var ns docs.NamedStyles
		if err := json5.Unmarshal(files.NamedStylesJSON, &ns); err != nil {
			return fmt.Errorf("tab %s namedstyles.xml: %w", tab.TabID, err)
		}
		tab.NamedStyles = &ns
	}
	if len(files.ObjectsJSON) > 0 {
		objs := map[string]*docs.InlineObject{}
		if err := json5.Unmarshal(files.ObjectsJSON, &objs); err != nil {
			return fmt.Errorf("tab %s objects.xml: %w", tab.TabID, err)
		}
		tab.InlineObjects = objs
	}
	if len(files.PositionedObjects) > 0 {
		objs := map[string]*docs.PositionedObject{}
		if err := json5.Unmarshal(files.PositionedObjects, &objs); err != nil {
			return fmt.Errorf("tab %s positionedObjects.xml: %w", tab.TabID, err)
		}
		tab.PositionedObjects = objs
	}
	if len(files.NamedRangesJSON) > 0 {
		ranges := map[string]*docs.NamedRanges{}
		if err := json5.Unmarshal(files.NamedRangesJSON, &ranges); err != nil {
			return fmt.Errorf("tab %s namedranges.xml: %w", tab.TabID, err)
		}
		tab.NamedRanges = ranges
	}
	return nil
}

// encodeSidecars is the inverse of decodeSidecars, used by EncodeTab. It
// omits a file entirely when its content is empty (spec.md §4.A "omit
// defaults" — an empty sidecar is noise in the tab folder and in diffs).
func encodeSidecars(tab *docmodel.Tab) (files TabFiles, err error) {
	files.TabID = tab.TabID
	if tab.DocumentStyle != nil {
		if files.DocStyleJSON, err = marshalJSON5(tab.DocumentStyle); err != nil {
			return files, err
		}
	}
	if tab.NamedStyles != nil {
		if files.NamedStylesJSON, err = marshalJSON5(tab.NamedStyles); err != nil {
			return files, err
		}
	}
	if len(tab.InlineObjects) > 0 {
		if files.ObjectsJSON, err = marshalJSON5(tab.InlineObjects); err != nil {
			return files, err
		}
	}
	if len(tab.PositionedObjects) > 0 {
		if files.PositionedObjects, err = marshalJSON5(tab.PositionedObjects); err != nil {
			return files, err
		}
	}
	if len(tab.NamedRanges) > 0 {
		if files.NamedRangesJSON, err = marshalJSON5(tab.NamedRanges); err != nil {
			return files, err
		}
	}
	return files, nil
}

func marshalJSON5(v interface{}) ([]byte, error) {
	// json5 is a read-side leniency layer (comments, trailing commas,
	// unquoted keys); writing plain, strict JSON back out keeps
	// round-tripped sidecars diff-friendly and still parses fine as json5
	// on the next read.
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sidecar: %w", err)
	}
	return b, nil
}
