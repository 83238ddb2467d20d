package ui

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uitree/node"
)

func TestRegisterParameter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.ui")
	defer teardown()
	//
	b := &Base{}
	b.Configure(Params{"y": "why"})
	if b.IsParameterDeclared("x") {
		t.Errorf("expected x not to be declared before registration")
	}
	v1 := b.RegisterParameter("x", 5)
	v2 := b.RegisterParameter("x", 5)
	if v1 != 5 || v2 != 5 {
		t.Errorf("expected x to default to 5 twice, is %v and %v", v1, v2)
	}
	if !b.IsParameterDeclared("x") {
		t.Errorf("expected x to be declared")
	}
	if v := b.RegisterParameter("y", "default"); v != "why" {
		t.Errorf("expected supplied value for y, is %v", v)
	}
	if err := b.Finish(); err != nil {
		t.Errorf("expected configuration to be complete, is %v", err)
	}
}

func TestUnknownParameter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.ui")
	defer teardown()
	//
	_, err := NewButton(Params{"label": "OK", "lable": "typo"})
	if !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("expected typo to be rejected as unknown parameter, is %v", err)
	}
}

func TestParameterTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.ui")
	defer teardown()
	//
	if _, err := NewButton(Params{"label": 42}); !errors.Is(err, ErrType) {
		t.Errorf("expected numeric label to be a type fault, is %v", err)
	}
	if _, err := NewSeparator(Params{"mode": 2.0}); err != nil {
		t.Errorf("expected float 2.0 to be accepted as integer mode, is %v", err)
	}
	if _, err := NewSeparator(Params{"mode": 2.5}); !errors.Is(err, ErrType) {
		t.Errorf("expected mode 2.5 to be a type fault, is %v", err)
	}
	if _, err := NewSeparator(Params{"mode": 3}); !errors.Is(err, ErrType) {
		t.Errorf("expected mode 3 to be a type fault, is %v", err)
	}
	if _, err := NewLabel(Params{"style": "not-a-list"}); !errors.Is(err, ErrType) {
		t.Errorf("expected string style to be a type fault, is %v", err)
	}
	if _, err := NewLabel(Params{"css": "color red"}); !errors.Is(err, ErrType) {
		t.Errorf("expected malformed css to be a type fault, is %v", err)
	}
}

func TestClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.ui")
	defer teardown()
	//
	l, err := NewLabel(Params{"style": []any{"a", "b"}})
	if err != nil {
		t.Fatal(err)
	}
	l.AddClass("a")
	if len(l.Classes()) != 3 || !l.HasClass("b") {
		t.Errorf("expected classes [a b a], are %v", l.Classes())
	}
	if !l.RemoveClass("a") || len(l.Classes()) != 2 || l.Classes()[0] != "b" {
		t.Errorf("expected first a to be removed, classes are %v", l.Classes())
	}
	if l.RemoveClass("z") {
		t.Errorf("expected removal of absent class to report false")
	}
	if err := l.SetClasses(42); !errors.Is(err, ErrType) {
		t.Errorf("expected SetClasses(42) to be a type fault, is %v", err)
	}
	if err := l.SetClasses([]string{"x"}); err != nil || l.Classes()[0] != "x" {
		t.Errorf("expected classes to be replaced by [x], are %v", l.Classes())
	}
}

func TestFreshClassListPerInstance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.ui")
	defer teardown()
	//
	a, _ := NewLabel(nil)
	b, _ := NewLabel(nil)
	a.AddClass("only-a")
	if b.HasClass("only-a") || len(b.Classes()) != 0 {
		t.Errorf("expected instances not to share their class list, b has %v", b.Classes())
	}
	style := []string{"s"}
	c, _ := NewLabel(Params{"style": style})
	style[0] = "changed"
	if !c.HasClass("s") {
		t.Errorf("expected descriptor to copy the supplied class list")
	}
}

func TestExtendAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.ui")
	defer teardown()
	//
	b, _ := NewButton(Params{"style": []string{"a", "b"}, "name": "ok", "css": "Color: RED"})
	base := node.Attrs{{Key: "type", Value: "overwritten"}, {Key: "extra", Value: 1}}
	attrs := b.ExtendAttributes(base)
	if x := node.Must(node.New("x", attrs)).ToXML(); x !=
		`<x type="button" extra="1" style="a b" name="ok" css="color: red" href="#"/>` {
		t.Errorf("unexpected attributes %s", x)
	}
	if v, _ := base.Get("type"); v != "overwritten" {
		t.Errorf("expected base attributes to be left untouched")
	}
}

func TestBaseRendersNull(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.ui")
	defer teardown()
	//
	b := &Base{}
	b.Configure(nil)
	n, err := b.Render()
	if err != nil || !n.IsNull() {
		t.Errorf("expected base descriptor to render null node, is %v / %v", n, err)
	}
}

func TestEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.ui")
	defer teardown()
	//
	b, _ := NewButton(nil)
	if b.HasEvent(EventClick) {
		t.Errorf("expected button without handler to have no click event")
	}
	if r := b.Emit(EventClick); r != nil {
		t.Errorf("expected emit without handler to do nothing, returned %v", r)
	}
	clicked := 0
	b, _ = NewButton(Params{"onclick": Handler(func(args ...any) any {
		clicked += len(args)
		return "done"
	})})
	if !b.HasEvent(EventClick) || b.HasEvent(EventSubmit) {
		t.Errorf("expected button to have click event only")
	}
	if r := b.Emit(EventClick, 1, 2); r != "done" || clicked != 2 {
		t.Errorf("expected handler to be called with 2 args, result %v, count %d", r, clicked)
	}
	f, _ := NewForm(nil)
	if f.HasEvent(EventSubmit) {
		t.Errorf("expected form without handler to have no submit event")
	}
	if err := f.On(EventSubmit, func(...any) any { return nil }); err != nil || !f.HasEvent(EventSubmit) {
		t.Errorf("expected submit handler to be attached, error is %v", err)
	}
	if err := f.On(EventClick, func(...any) any { return nil }); !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("expected click handler on form to be rejected, is %v", err)
	}
	e, _ := NewLineEntry(Params{"onvaluechanged": func() { clicked = -1 }})
	if !e.HasEvent(EventValueChanged) {
		t.Errorf("expected entry to have value-changed event")
	}
	e.Emit(EventValueChanged)
	if clicked != -1 {
		t.Errorf("expected value-changed handler to be called")
	}
	l, _ := NewLabel(nil)
	if l.HasEvent(EventClick) || l.Emit(EventClick) != nil {
		t.Errorf("expected label to have no events")
	}
}

func TestContainerOwnership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.ui")
	defer teardown()
	//
	lbl, _ := NewLabel(Params{"label": "x"})
	c1, err := NewContainer(nil, lbl)
	if err != nil {
		t.Fatal(err)
	}
	c2, _ := NewContainer(nil)
	if err := c2.Add(lbl); !errors.Is(err, ErrOwnership) {
		t.Errorf("expected label owned by c1 not to be added to c2, is %v", err)
	}
	if err := c1.Add(c1); !errors.Is(err, ErrOwnership) {
		t.Errorf("expected container not to contain itself, is %v", err)
	}
	if err := c2.Add(c1); err != nil {
		t.Fatal(err)
	}
	if err := c1.Add(c2); !errors.Is(err, ErrOwnership) {
		t.Errorf("expected cycle to be rejected, is %v", err)
	}
	sep, _ := NewSeparator(nil)
	if err := c2.Add(sep, sep); !errors.Is(err, ErrOwnership) {
		t.Errorf("expected double add to be rejected, is %v", err)
	}
	if len(c2.Items()) != 1 {
		t.Errorf("expected failed Add to leave items unchanged, have %d", len(c2.Items()))
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree.ui")
	defer teardown()
	//
	lbl, _ := NewLabel(Params{"label": "Name"})
	e, _ := NewLineEntry(Params{"form_name": "n"})
	f, _ := NewForm(Params{"act": "/x"}, lbl, e)
	n1, err1 := f.Render()
	n2, err2 := f.Render()
	if err1 != nil || err2 != nil || !node.Equal(n1, n2) {
		t.Errorf("expected two renderings to be equal:\n%s\n%s", n1.ToXML(), n2.ToXML())
	}
	if n1 == n2 {
		t.Errorf("expected every rendering to produce a new tree")
	}
}
