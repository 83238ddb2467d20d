package uitree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/uitree/convert"
	"github.com/npillmayer/uitree/node"
	"github.com/npillmayer/uitree/ui"
)

// ErrNotRenderable is flagged for descriptors rendering a null node.
var ErrNotRenderable = errors.New("descriptor is not renderable")

// Render renders a descriptor into a tree of abstract nodes.
func Render(e ui.Element) (*node.Node, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil descriptor", ErrNotRenderable)
	}
	n, err := e.Render()
	if err != nil {
		return nil, err
	}
	if n.IsNull() {
		return nil, ErrNotRenderable
	}
	return n, nil
}

// ToXML renders a descriptor and serializes the abstract node tree.
func ToXML(e ui.Element) (string, error) {
	n, err := Render(e)
	if err != nil {
		return "", err
	}
	return n.ToXML(), nil
}

// ToHTML renders a descriptor, converts it to HTML and serializes the result.
func ToHTML(e ui.Element) (string, error) {
	return Convert(e, nil)
}

// Convert renders a descriptor and converts it using engine, defaulting to
// the HTML engine, and serializes the result.
func Convert(e ui.Element, engine *convert.Engine) (string, error) {
	n, err := Render(e)
	if err != nil {
		return "", err
	}
	var x string
	if engine == nil {
		x, err = convert.ToXML(n)
	} else {
		x, err = engine.ToXML(n)
	}
	if err != nil {
		return "", err
	}
	tracer().Debugf("converted <%s> into %d bytes of markup", n.Tag(), len(x))
	return x, nil
}
