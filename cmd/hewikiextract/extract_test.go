package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temporal-IPA/hewiktparse/internal/lexicon"
)

const sampleDumpXML = `<mediawiki>
<page>
  <title>שלום</title>
  <ns>0</ns>
  <id>1</id>
  <revision>
    <id>10</id>
    <sha1>aaa</sha1>
    <text>== שלום ==
{{ניתוח דקדוקי|שלום|מין=זכר}}
# ברכה.
</text>
  </revision>
</page>
</mediawiki>`

func TestExtractCommandWritesJSON(t *testing.T) {
	dir := t.TempDir()
	dumpPath := filepath.Join(dir, "dump.xml")
	outPath := filepath.Join(dir, "pages.json")
	require.NoError(t, os.WriteFile(dumpPath, []byte(sampleDumpXML), 0o644))

	cmd := newExtractCmd()
	cmd.SetArgs([]string{dumpPath, "--out", outPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var pages []lexicon.Page
	require.NoError(t, json.Unmarshal(data, &pages))
	require.Len(t, pages, 1)
	require.Equal(t, "שלום", pages[0].Title)
}

func TestExtractCommandRequiresSourceOrURL(t *testing.T) {
	cmd := newExtractCmd()
	cmd.SetArgs([]string{})
	require.Error(t, cmd.Execute())
}
