package convert

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uitree/node"
	"github.com/npillmayer/uitree/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, e ui.Element) *node.Node {
	n, err := e.Render()
	require.NoError(t, err)
	return n
}

func html(t *testing.T, e ui.Element) string {
	x, err := ToXML(render(t, e))
	require.NoError(t, err)
	return x
}

func TestButton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	b, _ := ui.NewButton(ui.Params{"type": "button", "label": "OK"})
	if x := html(t, b); x != `<button type="button">OK</button>` {
		t.Errorf("expected native button, have %s", x)
	}
	b, _ = ui.NewButton(ui.Params{"type": "link", "href": "#x"})
	if x := html(t, b); x != `<a href="#x"/>` {
		t.Errorf("expected hyperlink for link button, have %s", x)
	}
	b, _ = ui.NewButton(ui.Params{"type": "submit", "label": "Go", "name": "go"})
	if x := html(t, b); x != `<button type="submit" id="go">Go</button>` {
		t.Errorf("expected submit button with id, have %s", x)
	}
}

func TestLabelContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	l, _ := ui.NewLabel(ui.Params{"label": "User"})
	n := render(t, l)
	x, err := ToXML(n)
	if err != nil || x != `<span>User</span>` {
		t.Errorf("expected span outside of form, have %s (%v)", x, err)
	}
	f := node.Must(node.New("form", node.Attrs{{Key: "act", Value: "/x"}}, n))
	x, err = ToXML(f)
	if err != nil || x != `<form action="/x" method="#"><label>User</label></form>` {
		t.Errorf("expected label inside of form, have %s (%v)", x, err)
	}
}

func TestFormContextDoesNotLeak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	a, _ := ui.NewLabel(ui.Params{"label": "a"})
	b, _ := ui.NewLabel(ui.Params{"label": "b"})
	f, _ := ui.NewForm(ui.Params{"act": "/login", "method": "POST"}, a)
	c, _ := ui.NewContainer(nil, f, b)
	assert.Equal(t,
		`<div><form action="/login" method="POST"><label>a</label></form><span>b</span></div>`,
		html(t, c))
}

func TestContainers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	c, _ := ui.NewContainer(nil)
	if x := html(t, c); x != `<div/>` {
		t.Errorf("expected empty container to be a self-closing box, have %s", x)
	}
	c, _ = ui.NewContainer(ui.Params{"style": []string{"a", "b"}})
	if x := html(t, c); x != `<div class="a b"/>` {
		t.Errorf("expected classes a and b, have %s", x)
	}
	c, _ = ui.NewContainer(ui.Params{"style": []string{}})
	if x := html(t, c); x != `<div/>` {
		t.Errorf("expected no class attribute for empty style, have %s", x)
	}
	sep, _ := ui.NewSeparator(nil)
	r, _ := ui.NewRow(ui.Params{"name": "r1"}, sep)
	if x := html(t, r); x != `<div id="r1"><hr/></div>` {
		t.Errorf("expected row with id and rule, have %s", x)
	}
}

func TestProvenance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	l, _ := ui.NewLabel(ui.Params{"label": "x", "name": "n", "css": "Color: RED", "style": []string{"c"}})
	assert.Equal(t, `<span class="c" id="n" style="color: red">x</span>`, html(t, l))
	n := node.Must(node.New("container", node.Attrs{
		{Key: "style", Value: "   "},
		{Key: "name", Value: " "},
		{Key: "css", Value: ""},
	}))
	x, err := ToXML(n)
	require.NoError(t, err)
	assert.Equal(t, `<div/>`, x, "blank provenance attributes must not be mapped")
}

func TestFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	lbl, _ := ui.NewLabel(ui.Params{"label": "User"})
	fr, _ := ui.NewFrame(ui.Params{"title": "Account"}, lbl)
	assert.Equal(t, `<div><div align="center">Account</div><span>User</span></div>`, html(t, fr))
	lbl, _ = ui.NewLabel(ui.Params{"label": "User"})
	fr, _ = ui.NewFrame(ui.Params{"title": "Account"}, lbl)
	f, _ := ui.NewForm(ui.Params{"act": "/x"}, fr)
	assert.Equal(t,
		`<form action="/x" method="GET"><fieldset><legend>Account</legend><label>User</label></fieldset></form>`,
		html(t, f))
}

func TestTextTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	bold, _ := ui.NewTextTag(ui.Params{"type": ui.TextTagBold, "text": "bold"})
	italic, _ := ui.NewTextTag(ui.Params{"type": ui.TextTagItalic})
	require.NoError(t, italic.Mix(bold))
	assert.Equal(t, `<i><b>bold</b></i>`, html(t, italic))
	lnk, _ := ui.NewTextTag(ui.Params{"type": "link", "text": "here", "href": "/h"})
	assert.Equal(t, `<a href="/h">here</a>`, html(t, lnk))
	plain, _ := ui.NewTextTag(ui.Params{"text": "p"})
	assert.Equal(t, `<span>p</span>`, html(t, plain))
	sup, _ := ui.NewTextTag(ui.Params{"type": "superscript", "text": "2"})
	assert.Equal(t, `<sup>2</sup>`, html(t, sup))
}

func TestTextView(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	tv, _ := ui.NewTextView(nil)
	require.NoError(t, tv.AddText("T", ui.TextTitle))
	require.NoError(t, tv.AddText("S", ui.TextSecTitle))
	require.NoError(t, tv.AddText("p", ui.TextNormal))
	require.NoError(t, tv.AddText("x", ui.TextRaw))
	assert.Equal(t, `<div><h1>T</h1><h3>S</h3><p>p</p><pre>x</pre></div>`, html(t, tv))
	h, _ := ui.NewHeading(ui.Params{"text": "Intro", "level": 2})
	assert.Equal(t, `<h2>Intro</h2>`, html(t, h))
	x, err := ToXML(node.Must(node.New("heading", nil, node.Text("one"))))
	require.NoError(t, err)
	assert.Equal(t, `<h1>one</h1>`, x)
}

func TestEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	e, _ := ui.NewLineEntry(ui.Params{"form_name": "user", "required": true, "placeholder": "name"})
	assert.Equal(t, `<input type="text" name="user" required="true" placeholder="name"/>`, html(t, e))
	e, _ = ui.NewRadioButton(ui.Params{"group": "g", "name": "r1"})
	assert.Equal(t, `<input type="radio" name="g" id="r1"/>`, html(t, e))
	e, _ = ui.NewCheckButton(ui.Params{"group": "g", "form_name": "c"})
	assert.Equal(t, `<input type="checkbox" name="c"/>`, html(t, e))
	e, _ = ui.NewEntry(nil)
	assert.Equal(t, `<input/>`, html(t, e))
	e, _ = ui.NewTextEntry(ui.Params{"form_name": "msg"})
	assert.Equal(t, `<textarea name="msg"/>`, html(t, e))
	e, _ = ui.NewPasswordEntry(nil)
	assert.Equal(t, `<input type="password"/>`, html(t, e))
}

func TestImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	img, _ := ui.NewImage(ui.Params{"data": "logo.png", "alt": "Logo", "width": 120})
	assert.Equal(t, `<img width="120px" height="expand" alt="Logo" title="" src="logo.png"/>`, html(t, img))
	x, err := ToXML(node.Must(node.New("image", nil, node.Text("x.png"))))
	require.NoError(t, err)
	assert.Equal(t, `<img width="" height="" alt="" title="" src="x.png"/>`, x,
		"absent image attributes are copied as null")
	_, err = ToXML(node.Must(node.New("image", nil)))
	assert.ErrorIs(t, err, ErrImageSource)
	inner := node.Must(node.New("gizmo", nil))
	_, err = ToXML(node.Must(node.New("image", nil, inner)))
	assert.ErrorIs(t, err, ErrImageSource)
}

func TestLinkAndForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	lk, _ := ui.NewLink(ui.Params{"label": "Home"})
	assert.Equal(t, `<a href="#">Home</a>`, html(t, lk))
	x, err := ToXML(node.Must(node.New("form", nil)))
	require.NoError(t, err)
	assert.Equal(t, `<form action="#" method="#"/>`, x)
}

func TestUnsupportedTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	gizmo := node.Must(node.New("gizmo", nil, node.Text("?")))
	f := node.Must(node.New("form", nil, node.Must(node.New("frame", nil, gizmo))))
	x, err := ToXML(f)
	if !errors.Is(err, ErrUnsupportedTag) {
		t.Fatalf("expected unsupported tag fault, is %v", err)
	}
	if x != "" {
		t.Errorf("expected no partial output, have %q", x)
	}
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Path != "form/frame/gizmo" || cerr.Tag != "gizmo" {
		t.Errorf("expected fault to carry path form/frame/gizmo, is %v", err)
	}
	if _, err = Convert(node.Null()); !errors.Is(err, ErrUnsupportedTag) {
		t.Errorf("expected null node not to be convertible, is %v", err)
	}
}

func TestPassthrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	e := NewEngine(HTML(), WithPassthrough())
	lbl := node.Must(node.New("label", nil, node.Text("x")))
	gizmo := node.Must(node.New("gizmo", node.Attrs{
		{Key: "style", Value: "a"},
		{Key: "k", Value: "v"},
		{Key: "class", Value: "dropped"},
	}, lbl))
	x, err := e.ToXML(gizmo)
	require.NoError(t, err)
	assert.Equal(t, `<gizmo k="v" class="a"><span>x</span></gizmo>`, x)
	_, err = e.Convert(node.Null())
	assert.ErrorIs(t, err, ErrUnsupportedTag)
}

func TestCustomRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	e := NewEngine(HTML())
	var seen []Context
	e.Handle("gizmo", func(src *node.Node, ctx Context, children node.Children) (Result, error) {
		seen = append(seen, ctx)
		return Result{Tag: "output", Children: children}, nil
	})
	inner := node.Must(node.New("gizmo", nil, node.Text("g")))
	f := node.Must(node.New("form", nil, node.Must(node.New("container", nil, inner))))
	x, err := e.ToXML(f)
	require.NoError(t, err)
	assert.Equal(t, `<form action="#" method="#"><div><output>g</output></div></form>`, x)
	require.Len(t, seen, 1)
	assert.True(t, seen[0].InsideForm)
	assert.Equal(t, 2, seen[0].Depth)
	assert.Equal(t, "form/container/gizmo", seen[0].Path())
	//
	e.Handle("gizmo", func(*node.Node, Context, node.Children) (Result, error) {
		return Result{Tag: "output", Attrs: node.Attrs{{Key: "id", Value: "x"}}}, nil
	})
	_, err = e.Convert(inner)
	assert.ErrorIs(t, err, ErrReservedAttribute)
	_, err = Convert(inner)
	assert.ErrorIs(t, err, ErrUnsupportedTag, "custom rules must not leak into the HTML engine")
}

func TestHTMLEngineIsPrivate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	e := HTMLEngine()
	if e == HTMLEngine() {
		t.Errorf("expected HTMLEngine to return a new engine on every call")
	}
	e.Handle("gizmo", rename("output"))
	gizmo := node.Must(node.New("gizmo", nil))
	x, err := e.ToXML(gizmo)
	require.NoError(t, err)
	assert.Equal(t, "<output/>", x)
	_, err = ToXML(gizmo)
	assert.ErrorIs(t, err, ErrUnsupportedTag, "handlers of HTMLEngine() must not reach ToXML")
	_, err = HTMLEngine().ToXML(gizmo)
	assert.ErrorIs(t, err, ErrUnsupportedTag)
}

func TestSourceUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.convert")
	defer teardown()
	//
	lbl, _ := ui.NewLabel(ui.Params{"label": "User", "style": []string{"s"}})
	fr, _ := ui.NewFrame(ui.Params{"title": "T"}, lbl)
	f, _ := ui.NewForm(nil, fr)
	src := render(t, f)
	before := render(t, f)
	r1, err1 := Convert(src)
	r2, err2 := Convert(src)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, node.Equal(src, before), "source tree must be left untouched")
	assert.True(t, node.Equal(r1, r2), "conversion must be deterministic")
}
