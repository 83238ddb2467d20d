package node

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNodeConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.node")
	defer teardown()
	//
	n, err := New("button", Attrs{{"type", "button"}}, Text("OK"))
	if err != nil {
		t.Fatalf("expected button to be constructed, failed: %v", err)
	}
	if n.Tag() != "button" || n.ChildCount() != 1 {
		t.Errorf("expected <button> with 1 child, is %s", n)
	}
	if _, err = New("", nil); !errors.Is(err, ErrValidation) {
		t.Errorf("expected empty tag to be a validation error, is %v", err)
	}
	if _, err = New("1abc", nil); !errors.Is(err, ErrValidation) {
		t.Errorf("expected tag '1abc' to be a validation error, is %v", err)
	}
	if _, err = New("x", Attrs{{"a", []string{"no"}}}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected non-scalar attribute to be a validation error, is %v", err)
	}
	if _, err = New("x", Attrs{{"a", 1}, {"a", 2}}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected duplicate key to be a validation error, is %v", err)
	}
	var nilnode *Node
	if _, err = New("x", nil, nilnode); !errors.Is(err, ErrValidation) {
		t.Errorf("expected nil child to be a validation error, is %v", err)
	}
	if _, err = New("x", nil, n, n); !errors.Is(err, ErrValidation) {
		t.Errorf("expected shared child to be a validation error, is %v", err)
	}
	leaf := Must(New("x", nil))
	if _, err = New("b", nil, leaf, Must(New("a", nil, leaf))); !errors.Is(err, ErrValidation) {
		t.Errorf("expected child shared with a nephew to be a validation error, is %v", err)
	}
	if _, err = New("b", nil, Must(New("a", nil, leaf)), Must(New("c", nil, Must(New("d", nil, leaf))))); !errors.Is(err, ErrValidation) {
		t.Errorf("expected node shared between cousins to be a validation error, is %v", err)
	}
	if _, err = New("b", nil, Must(New("a", nil, Text("t"))), Must(New("c", nil, Text("t")))); err != nil {
		t.Errorf("expected equal text children to be allowed, have %v", err)
	}
}

func TestNodeImmutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.node")
	defer teardown()
	//
	attrs := Attrs{{"a", "1"}}
	children := Children{Text("x")}
	n := Must(New("p", attrs, children...))
	attrs[0].Value = "2"
	children[0] = Text("y")
	if n.ToXML() != `<p a="1">x</p>` {
		t.Errorf("expected node to be unaffected by changes to its inputs, is %s", n.ToXML())
	}
	a := n.Attrs()
	a.Set("a", "3")
	if v, _ := n.Attr("a"); v != "1" {
		t.Errorf("expected attribute a to remain 1, is %v", v)
	}
}

func TestNodeToXML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.node")
	defer teardown()
	//
	empty := Must(New("div", Attrs{{"class", "a b"}, {"id", "x"}}))
	if x := empty.ToXML(); x != `<div class="a b" id="x"/>` {
		t.Errorf("expected self-closing div, is %s", x)
	}
	if strings.Contains(empty.ToXML(), "</div>") {
		t.Errorf("expected no closing tag for empty node")
	}
	bare := Must(New("hr", nil))
	if x := bare.ToXML(); x != `<hr/>` {
		t.Errorf("expected <hr/>, is %s", x)
	}
	inner := Must(New("b", nil, Text("bold")))
	p := Must(New("p", Attrs{{"n", 3}, {"ok", true}, {"x", nil}, {"f", 1.5}},
		Text("a "), inner, Text(" <c>")))
	expected := `<p n="3" ok="true" x="" f="1.5">a <b>bold</b> <c></p>`
	if x := p.ToXML(); x != expected {
		t.Errorf("expected %s, is %s", expected, x)
	}
}

func TestNodeAttributeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.node")
	defer teardown()
	//
	var attrs Attrs
	attrs = attrs.Set("z", 1).Set("a", 2).Set("m", 3).Set("z", 4)
	n := Must(New("x", attrs))
	if x := n.ToXML(); x != `<x z="4" a="2" m="3"/>` {
		t.Errorf("expected insertion order z, a, m, is %s", x)
	}
	attrs = attrs.Delete("a")
	if strings.Join(attrs.Keys(), ",") != "z,m" {
		t.Errorf("expected keys z,m after delete, are %v", attrs.Keys())
	}
}

func TestNodeDebugString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.node")
	defer teardown()
	//
	leaf := Must(New("img", Attrs{{"src", "a.png"}}))
	if s := leaf.String(); s != `<img src="a.png"/>` {
		t.Errorf("expected self-closing debug string, is %s", s)
	}
	n := Must(New("p", Attrs{{"class", "x"}}, Text("hello"), leaf))
	if s := n.String(); s != `<p class="x"><...></p>` {
		t.Errorf("expected collapsed children, is %s", s)
	}
}

func TestNodeTreeString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.node")
	defer teardown()
	//
	b := Must(New("b", nil, Text("x")))
	p := Must(New("p", Attrs{{"a", "1"}}, Text("t"), b))
	expected := "p (a=\"1\"):\n  \"t\"\n  b ():\n    \"x\""
	if s := p.TreeString("  "); s != expected {
		t.Errorf("expected tree string\n%s\nis\n%s", expected, s)
	}
	tracer().SetTraceLevel(tracing.LevelDebug)
	tracer().Debugf("\n%s", Print(p))
}

func TestNodeEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.node")
	defer teardown()
	//
	mk := func() *Node {
		return Must(New("div", Attrs{{"k", "v"}}, Text("x"), Must(New("span", nil))))
	}
	if !Equal(mk(), mk()) {
		t.Errorf("expected structurally equal trees to be Equal")
	}
	other := Must(New("div", Attrs{{"k", "w"}}, Text("x"), Must(New("span", nil))))
	if Equal(mk(), other) {
		t.Errorf("expected trees with different attributes not to be Equal")
	}
}

func TestNullNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.node")
	defer teardown()
	//
	n := Null()
	if !n.IsNull() || n.Tag() != "#null" || n.ChildCount() != 0 || len(n.Attrs()) != 0 {
		t.Errorf("expected null node to be empty #null, is %s", n)
	}
	if Null() == Null() {
		t.Errorf("expected every null node to be a fresh value")
	}
	if _, err := New("div", nil, Null(), Null()); err != nil {
		t.Errorf("expected two null children to be acceptable, is %v", err)
	}
}
