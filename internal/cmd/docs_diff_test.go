package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/extrasuite/docsrecon/internal/docmodel"
	"github.com/extrasuite/docsrecon/internal/serde"
)

func writeTab(t *testing.T, dir, tabID, text string) {
	t.Helper()
	tab := &docmodel.Tab{
		TabID: tabID,
		Body: &docmodel.Segment{
			Kind: docmodel.SegmentBody,
			Content: []*docmodel.StructuralElement{
				{
					Paragraph: &docmodel.Paragraph{
						Elements: []*docmodel.ParagraphElement{
							{TextRun: &docmodel.TextRun{Content: text, Style: &docmodel.TextStyle{}}},
						},
					},
				},
			},
		},
	}
	files, err := serde.EncodeTab(tab)
	require.NoError(t, err)
	require.NoError(t, writeTabFolder(dir, files))
}

func TestDecodeTabPairReadsBothFolders(t *testing.T) {
	baseDir, desiredDir := t.TempDir(), t.TempDir()
	writeTab(t, baseDir, "tab1", "hello\n")
	writeTab(t, desiredDir, "tab1", "goodbye\n")

	base, desired, err := decodeTabPair(baseDir, desiredDir, "tab1")
	require.NoError(t, err)
	require.NotNil(t, base)
	require.NotNil(t, desired)
}

func TestDocsDiffCmdReportsRequestCount(t *testing.T) {
	baseDir, desiredDir := t.TempDir(), t.TempDir()
	writeTab(t, baseDir, "tab1", "hello\n")
	writeTab(t, desiredDir, "tab1", "goodbye\n")

	cmd := &DocsDiffCmd{TabID: "tab1", BaseDir: baseDir, DesiredDir: desiredDir}
	require.NoError(t, cmd.Run(nil, &RootFlags{}))
}

func TestDocsDiffCmdNoopWhenFoldersMatch(t *testing.T) {
	baseDir, desiredDir := t.TempDir(), t.TempDir()
	writeTab(t, baseDir, "tab1", "same\n")
	writeTab(t, desiredDir, "tab1", "same\n")

	cmd := &DocsDiffCmd{TabID: "tab1", BaseDir: baseDir, DesiredDir: desiredDir}
	require.NoError(t, cmd.Run(nil, &RootFlags{}))
}
