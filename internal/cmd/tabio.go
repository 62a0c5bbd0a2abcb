package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/extrasuite/docsrecon/internal/serde"
)

// readTabFolder loads one tab folder's files into a serde.TabFiles, leaving
// any file that does not exist on disk as nil — sidecars are written only
// when non-empty (spec.md §4.A), so their absence is expected, not an error.
func readTabFolder(dir, tabID string) (serde.TabFiles, error) {
	files := serde.TabFiles{TabID: tabID}
	read := func(name string) ([]byte, error) {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if os.IsNotExist(err) {
			return nil, nil
		}
		return b, err
	}

	var err error
	if files.DocumentXML, err = read("document.xml"); err != nil {
		return files, fmt.Errorf("read %s/document.xml: %w", dir, err)
	}
	if files.StylesXML, err = read("styles.xml"); err != nil {
		return files, fmt.Errorf("read %s/styles.xml: %w", dir, err)
	}
	if files.DocStyleJSON, err = read("docstyle.xml"); err != nil {
		return files, fmt.Errorf("read %s/docstyle.xml: %w", dir, err)
	}
	if files.NamedStylesJSON, err = read("namedstyles.xml"); err != nil {
		return files, fmt.Errorf("read %s/namedstyles.xml: %w", dir, err)
	}
	if files.ObjectsJSON, err = read("objects.xml"); err != nil {
		return files, fmt.Errorf("read %s/objects.xml: %w", dir, err)
	}
	if files.PositionedObjects, err = read("positionedObjects.xml"); err != nil {
		return files, fmt.Errorf("read %s/positionedObjects.xml: %w", dir, err)
	}
	if files.NamedRangesJSON, err = read("namedranges.xml"); err != nil {
		return files, fmt.Errorf("read %s/namedranges.xml: %w", dir, err)
	}
	return files, nil
}

// writeTabFolder writes a serde.TabFiles back to dir, creating it if
// necessary and omitting any sidecar serde left empty (spec.md §4.A "omit
// defaults").
func writeTabFolder(dir string, files serde.TabFiles) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create tab folder %s: %w", dir, err)
	}
	write := func(name string, content []byte) error {
		if len(content) == 0 {
			_ = os.Remove(filepath.Join(dir, name)) // stale sidecar from a prior pull, now empty
			return nil
		}
		return os.WriteFile(filepath.Join(dir, name), content, 0o644)
	}

	for _, f := range []struct {
		name    string
		content []byte
	}{
		{"document.xml", files.DocumentXML},
		{"styles.xml", files.StylesXML},
		{"docstyle.xml", files.DocStyleJSON},
		{"namedstyles.xml", files.NamedStylesJSON},
		{"objects.xml", files.ObjectsJSON},
		{"positionedObjects.xml", files.PositionedObjects},
		{"namedranges.xml", files.NamedRangesJSON},
	} {
		if err := write(f.name, f.content); err != nil {
			return fmt.Errorf("write %s/%s: %w", dir, f.name, err)
		}
	}
	return nil
}
