package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCreateCmdWritesEmptyTabFolder(t *testing.T) {
	dir := t.TempDir()
	cmd := &DocsCreateCmd{TabID: "tab1", Dir: dir}
	require.NoError(t, cmd.Run(&RootFlags{}))

	require.FileExists(t, filepath.Join(dir, "document.xml"))
	got, err := readTabFolder(dir, "tab1")
	require.NoError(t, err)
	assert.NotEmpty(t, got.DocumentXML)
	assert.Nil(t, got.DocStyleJSON)
}

func TestDocsCreateCmdDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cmd := &DocsCreateCmd{TabID: "tab1", Dir: dir}
	require.NoError(t, cmd.Run(&RootFlags{DryRun: true}))

	_, err := readTabFolder(dir, "tab1")
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "document.xml"))
	assert.True(t, os.IsNotExist(statErr))
}
