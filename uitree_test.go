package uitree

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uitree/convert"
	"github.com/npillmayer/uitree/ui"
)

func TestLoginForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree")
	defer teardown()
	//
	lbl, _ := ui.NewLabel(ui.Params{"label": "User", "form": true})
	user, _ := ui.NewLineEntry(ui.Params{"form_name": "user", "required": true})
	form, err := ui.NewForm(ui.Params{"act": "/login", "method": "POST", "style": []string{"login"}}, lbl, user)
	if err != nil {
		t.Fatal(err)
	}
	html, err := ToHTML(form)
	if err != nil {
		t.Fatal(err)
	}
	expected := `<form action="/login" method="POST" class="login"><label>User</label><input type="text" name="user" required="true"/></form>`
	if html != expected {
		t.Errorf("expected\n%s\nis\n%s", expected, html)
	}
	x, err := ToXML(form)
	if err != nil || !strings.HasPrefix(x, "<form ") {
		t.Errorf("expected abstract XML of form, is %q (%v)", x, err)
	}
}

func TestNotRenderable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree")
	defer teardown()
	//
	b := &ui.Base{}
	b.Configure(nil)
	if _, err := ToHTML(b); !errors.Is(err, ErrNotRenderable) {
		t.Errorf("expected base descriptor not to be renderable, is %v", err)
	}
	if _, err := ToXML(nil); !errors.Is(err, ErrNotRenderable) {
		t.Errorf("expected nil descriptor not to be renderable, is %v", err)
	}
}

func TestPassthroughEngine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uitree")
	defer teardown()
	//
	c, _ := ui.NewContainer(ui.Params{"name": "main"})
	x, err := Convert(c, convert.NewEngine(convert.HTML(), convert.WithPassthrough()))
	if err != nil || x != `<div id="main"/>` {
		t.Errorf("expected container as box with id, is %q (%v)", x, err)
	}
}
