package redblack

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainConsole(width int) *ConsoleConfig {
	return &ConsoleConfig{
		LineWidth: width,
		Indent:    4,
		Context:   uax11.LatinContext,
	}
}

func TestStringSnapshot(t *testing.T) {
	assert.Equal(t, "-", New[int]().String())
	var nilTree *Tree[int]
	assert.Equal(t, "-", nilTree.String())
	assert.Equal(t, "7B", buildIntTree(7).String())
	assert.Equal(t, "20B(10(R),30(R))", buildIntTree(10, 20, 30).String())
	assert.Equal(t, "4B(2B(1B,3B),6B(5B,8(R)(7B,9B(-,10(R)))))",
		buildIntTree(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).String())
}

func TestConsoleOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "redblack")
	defer teardown()
	//
	var buf bytes.Buffer
	err := buildIntTree(10, 20, 30).Fprint(&buf, plainConsole(80))
	require.NoError(t, err)
	assert.Equal(t, "┌── 30(R)\n20B\n└── 10(R)\n", buf.String())
}

func TestConsoleOutputNested(t *testing.T) {
	var buf bytes.Buffer
	err := buildIntTree(8, 4, 12, 2, 6, 10, 14, 1).Fprint(&buf, plainConsole(80))
	require.NoError(t, err)
	t.Logf("\n%s", buf.String())
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "    ┌── 14(R)", lines[0])
	assert.Equal(t, "┌── 12B", lines[1])
	assert.Equal(t, "8B", lines[3])
	assert.Equal(t, "└── 4(R)", lines[5])
	assert.Equal(t, "        └── 1(R)", lines[7])
}

func TestConsoleSingleNode(t *testing.T) {
	tree := New[int]()
	tree.Insert(1)
	var buf bytes.Buffer
	require.NotPanics(t, func() {
		require.NoError(t, tree.Fprint(&buf, &ConsoleConfig{LineWidth: 80, Indent: 4}))
	})
	assert.Equal(t, "1B\n", buf.String())
}

func TestTextWidth(t *testing.T) {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	assert.Equal(t, 0, textWidth("", uax11.LatinContext))
	assert.Equal(t, 4, textWidth("┌── ", uax11.LatinContext))
	assert.Equal(t, 5, textWidth("20(R)", uax11.LatinContext))
}

func TestConsoleEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New[string]().Fprint(&buf, plainConsole(80)))
	assert.Equal(t, "-\n", buf.String())
}

func TestConsoleElidesWideLabels(t *testing.T) {
	tree := New[string]()
	tree.Insert("a-rather-long-key")
	tree.Insert("b")
	var buf bytes.Buffer
	require.NoError(t, tree.Fprint(&buf, plainConsole(10)))
	assert.Equal(t, "┌── b(R)\n…\n", buf.String())
}

func TestConsoleColored(t *testing.T) {
	cfg := plainConsole(80)
	cfg.Colored = true
	var buf bytes.Buffer
	require.NoError(t, buildIntTree(10, 20, 30).Fprint(&buf, cfg))
	assert.Contains(t, buf.String(), "\x1b[", "expected ANSI escape sequences")
	assert.Contains(t, buf.String(), "30(R)")
}

func TestDotOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, buildIntTree(10, 20, 30).Dot(&buf))
	dot := buf.String()
	t.Logf("\n%s", dot)
	assert.True(t, strings.HasPrefix(dot, "strict digraph {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `"1" [label="20" ,style=filled,shape=circle,fontcolor=white,color=black,fillcolor=black];`)
	assert.Contains(t, dot, `"2" [label="10" ,style=filled,shape=circle,fontcolor=white,color="#cc0000",fillcolor="#ff3333"];`)
	assert.Contains(t, dot, `"1" -> "2";`)
	assert.Contains(t, dot, `"1" -> "3";`)
	assert.Equal(t, 4, strings.Count(dot, "shape=box"), "expected one box per nil leaf")
}

func TestDotEscapesQuotes(t *testing.T) {
	tree := New[string]()
	tree.Insert(`say "hi"`)
	var buf bytes.Buffer
	require.NoError(t, tree.Dot(&buf))
	assert.Contains(t, buf.String(), `label="say \"hi\""`)
}

func TestHTMLOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, buildIntTree(5, 5).RenderHTML(&buf))
	assert.Equal(t,
		`<ul class="rbtree"><li class="black"><span class="key">5</span>`+
			`<ul><li class="nil"></li><li class="red"><span class="key">5</span></li></ul></li></ul>`,
		buf.String())
}

func TestHTMLEscapesKeys(t *testing.T) {
	tree := New[string]()
	tree.Insert("<b>")
	var buf bytes.Buffer
	require.NoError(t, tree.RenderHTML(&buf))
	assert.Contains(t, buf.String(), "&lt;b&gt;")
	assert.Equal(t, `<ul class="rbtree"></ul>`, renderHTML(t, New[int]()))
}

func renderHTML[K any](t *testing.T, tree *Tree[K]) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tree.RenderHTML(&buf))
	return buf.String()
}
