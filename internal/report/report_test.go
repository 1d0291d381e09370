package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fir/pkg/fir"
)

func sampleResult() *fir.ScanResult {
	return &fir.ScanResult{
		SessionID: "3f0c2a8e-0000-4000-8000-000000000000",
		Target:    fir.SearchTarget{Name: "utils", Extension: "js"},
		Root:      "src",
		Mode:      fir.ModePathSegment,
		Files: []fir.FileRecord{
			{
				Path: "src/a.js",
				Matches: []fir.MatchRecord{
					{LineNumber: 1, Content: "import utils from './utils.js'", ImportedName: "utils", NameCountOnLine: 2, NameCountInFile: 2, Unused: true},
				},
			},
			{
				Path: "src/b.js",
				Matches: []fir.MatchRecord{
					{LineNumber: 3, Content: "import { x } from '../utils'", ImportedName: "x", NameCountOnLine: 1, NameCountInFile: 4},
					{LineNumber: 12, Content: "const u = require('../utils')"},
				},
			},
		},
		VisitedFiles:          []string{"src/a.js", "src/b.js", "src/c.js"},
		TotalFilesVisited:     3,
		TotalDirsVisited:      1,
		TotalMatches:          3,
		TotalFilesWithMatches: 2,
		TotalUnused:           1,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.True(t, errors.Is(err, fir.ErrInvalidConfig), "ParseFormat(%q)", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "2 files - 3 results", Summary(sampleResult()))
	assert.Equal(t, "0 files - 0 results", Summary(&fir.ScanResult{}))
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleResult(), Options{Format: FormatText, Summary: true})
	require.NoError(t, err)

	want := "\n" +
		"src/a.js#1\n" +
		"  1:     import utils from './utils.js'  (unused: utils)\n" +
		"\n" +
		"src/b.js:\n" +
		"  3:     import { x } from '../utils'\n" +
		"  12:    const u = require('../utils')\n" +
		"\n" +
		"2 files - 3 results\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_TextWithoutSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), Options{}))
	assert.NotContains(t, buf.String(), "results")
}

func TestRender_TextColorKeepsContent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), Options{Color: true, Summary: true}))

	out := buf.String()
	for _, s := range []string{"src/a.js#1", "src/b.js:", "require(", "2 files - 3 results"} {
		assert.Contains(t, out, s)
	}
}

func TestRender_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, &fir.ScanResult{}, Options{Summary: true}))
	assert.Equal(t, "\n0 files - 0 results\n", buf.String())
}

func TestRender_UnusedOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), Options{UnusedOnly: true, Summary: true}))

	out := buf.String()
	assert.Contains(t, out, "src/a.js#1")
	assert.NotContains(t, out, "src/b.js")
	assert.Contains(t, out, "1 files - 1 results")
}

func TestUnusedOnly_DoesNotModifyInput(t *testing.T) {
	in := sampleResult()
	out := UnusedOnly(in)

	assert.Len(t, in.Files, 2)
	assert.Equal(t, 3, in.TotalMatches)
	require.Len(t, out.Files, 1)
	assert.Equal(t, 1, out.TotalMatches)
	assert.Equal(t, 1, out.TotalUnused)
	assert.Equal(t, in.TotalFilesVisited, out.TotalFilesVisited)
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), Options{Format: FormatJSON}))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "3f0c2a8e-0000-4000-8000-000000000000", decoded["sessionId"])
	assert.Equal(t, "path", decoded["mode"])
	assert.EqualValues(t, 3, decoded["totalMatches"])
	assert.NotContains(t, decoded, "VisitedFiles")
	assert.NotContains(t, decoded, "skipped")

	files := decoded["files"].([]interface{})
	first := files[0].(map[string]interface{})["matches"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, true, first["isUnused"])
	assert.Equal(t, "utils", first["importedName"])
}

func TestRender_JSONEmptyFilesIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, &fir.ScanResult{}, Options{Format: FormatJSON}))
	assert.Contains(t, buf.String(), `"files": []`)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(), Options{Format: FormatYAML}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "session_id: "))
	assert.Contains(t, out, "is_unused: true")

	var decoded fir.ScanResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleResult().Files, decoded.Files)
	assert.Nil(t, decoded.VisitedFiles)
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, sampleResult(), Options{Format: "xml"})
	assert.True(t, errors.Is(err, fir.ErrInvalidConfig))
}

func TestHighlight(t *testing.T) {
	mark := func(s ...string) string { return "[" + strings.Join(s, "") + "]" }

	assert.Equal(t, "import utils from './[utils].js'",
		highlight("import utils from './utils.js'", "utils", fir.ModePathSegment, mark))
	assert.Equal(t, "import [utils] from './[utils].js'",
		highlight("import utils from './utils.js'", "utils", fir.ModeWord, mark))
	assert.Equal(t, "no match here", highlight("no match here", "utils", fir.ModeWord, mark))
}
