package dump

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/riverfjs/mmd-go/internal/parser"
	"github.com/riverfjs/mmd-go/internal/types"
)

const sample = `Notes
---
# Intro
  some *bold* text

  - first
  - second

#> Careful
` + "```go\nx := 1\n```\n"

func parse(t *testing.T, src string) *types.Document {
	t.Helper()
	doc, err := parser.Parse("sample.mmd", src)
	require.NoError(t, err)
	return doc
}

func TestBuild(t *testing.T) {
	root := Build(parse(t, sample))

	require.Equal(t, KindDocument, root.Kind)
	require.NotEmpty(t, root.Children)
	assert.Equal(t, KindTitle, root.Children[0].Kind)

	section := root.Children[1]
	assert.Equal(t, KindSection, section.Kind)
	assert.Equal(t, 1, section.Level)
	assert.Equal(t, "Intro", section.Title)
	assert.Equal(t, ".../sample.mmd:3", section.Pos)

	body := section.Children[0]
	assert.Equal(t, KindDocument, body.Kind)
	assert.Equal(t, 2, body.Indent)

	line := body.Children[0].Children[0]
	require.Equal(t, KindLine, line.Kind)
	src := line.Children[0]
	assert.Equal(t, "some bold text", src.Text)
	assert.Equal(t, []Word{
		{Value: "some"},
		{Value: "bold", Modifier: "BOLD"},
		{Value: "text"},
	}, src.Words)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, parse(t, "a\n"), FormatJSON))

	var got Node
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, KindDocument, got.Kind)
	assert.Equal(t, "a", got.Children[0].Children[0].Children[0].Text)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, parse(t, "> quoted\n"), FormatYAML))

	var got Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	aside := got.Children[0].Children[0]
	assert.Equal(t, KindAside, aside.Kind)
	assert.Equal(t, "plain", aside.Aside)
	assert.Contains(t, buf.String(), "kind: aside")
}

func TestText(t *testing.T) {
	out := Text(Build(parse(t, sample)), false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "document", lines[0])
	assert.Equal(t, "  title", lines[1])
	assert.Contains(t, out, `  section level=1 title="Intro" .../sample.mmd:3`)
	assert.Contains(t, out, `"some" "bold"[BOLD] "text"`)
	assert.Contains(t, out, `list marker="- "`)
	assert.Contains(t, out, "aside kind=emphasis")
	assert.Contains(t, out, "block language=go")
	assert.Contains(t, out, `"x := 1"`)
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "YAML", "json"} {
		_, err := ParseFormat(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestCollect(t *testing.T) {
	stats := Collect(parse(t, sample))
	assert.Equal(t, Stats{
		Sections:   1,
		Paragraphs: 7,
		Lines:      5,
		Asides:     1,
		Lists:      2,
		Blocks:     1,
		Words:      8,
	}, stats)
}
