package markdown

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uitree/convert"
	"github.com/npillmayer/uitree/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toHTML(t *testing.T, md *Markdown) string {
	n, err := md.Render()
	require.NoError(t, err)
	x, err := convert.ToXML(n)
	require.NoError(t, err)
	return x
}

func TestInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.markdown")
	defer teardown()
	//
	md, err := New("# Title\n\nSome *em* and **strong** `code`.\n", ui.Params{"style": []string{"doc"}})
	require.NoError(t, err)
	n, err := md.Render()
	require.NoError(t, err)
	assert.Equal(t,
		`<block style="doc" name=""><heading level="1">Title</heading><paragraph>Some <text-tag type="italic">em</text-tag> and <text-tag type="bold">strong</text-tag> <code-text>code</code-text>.</paragraph></block>`,
		n.ToXML())
	assert.Equal(t,
		`<div class="doc"><h1>Title</h1><p>Some <i>em</i> and <b>strong</b> <code>code</code>.</p></div>`,
		toHTML(t, md))
}

func TestBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.markdown")
	defer teardown()
	//
	for _, tc := range []struct{ src, html string }{
		{"- a\n- b\n", `<div><ul><li>a</li><li>b</li></ul></div>`},
		{"1. x\n", `<div><ol><li>x</li></ol></div>`},
		{"```go\nx := 1\n```\n", `<div><pre><code class="language-go">x := 1` + "\n" + `</code></pre></div>`},
		{"    indented\n", `<div><pre><code>indented` + "\n" + `</code></pre></div>`},
		{"[home](/h)\n", `<div><p><a href="/h">home</a></p></div>`},
		{`![Logo](logo.png "The logo")` + "\n", `<div><p><img width="" height="" alt="Logo" title="The logo" src="logo.png"/></p></div>`},
		{"a\n\n---\n", `<div><p>a</p><hr/></div>`},
		{"> q\n", `<div><blockquote><p>q</p></blockquote></div>`},
		{"a  \nb\n", `<div><p>a<br/>b</p></div>`},
		{"a\nb\n", "<div><p>a\nb</p></div>"},
		{"<div>\nraw\n</div>\n\nok\n", `<div><p>ok</p></div>`},
	} {
		md, err := New(tc.src, nil)
		require.NoError(t, err)
		if x := toHTML(t, md); x != tc.html {
			t.Errorf("expected %q to render as %s, have %s", tc.src, tc.html, x)
		}
	}
}

func TestGFM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.markdown")
	defer teardown()
	//
	md, err := New("~~old~~ https://x.org", ui.Params{"gfm": true})
	require.NoError(t, err)
	assert.Equal(t, `<div><p><s>old</s> <a href="https://x.org">https://x.org</a></p></div>`, toHTML(t, md))
	md, err = New("~~old~~", nil)
	require.NoError(t, err)
	assert.Equal(t, `<div><p>~~old~~</p></div>`, toHTML(t, md))
}

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.markdown")
	defer teardown()
	//
	reg := ui.NewRegistry()
	ui.RegisterStandardKinds(reg)
	Register(reg)
	doc := "kind: container\nitems:\n  - kind: markdown\n    source: \"## Hi\"\n"
	e, err := ui.Decode(strings.NewReader(doc), reg)
	require.NoError(t, err)
	n, err := e.Render()
	require.NoError(t, err)
	x, err := convert.ToXML(n)
	require.NoError(t, err)
	assert.Equal(t, `<div><div><h2>Hi</h2></div></div>`, x)
	_, err = reg.New(Kind, ui.Params{"src": "typo"})
	assert.ErrorIs(t, err, ui.ErrUnknownParameter)
	md, _ := New("x", nil)
	assert.Equal(t, "x", md.Source())
}
