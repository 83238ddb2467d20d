package ui

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/uitree/css"
	"github.com/npillmayer/uitree/node"
)

// Image is a descriptor for images. The image data is opaque to the
// descriptor: usually a URL, but a conversion engine may interpret it
// according to the "fmt" parameter.
//
// Parameters:
//
//    data     image source, default ""
//    fmt      format of data, default "href.auto"
//    alt      alternative text, default ""
//    title    tooltip, default ""
//    width    dimension (see package css), default "expand"
//    height   dimension (see package css), default "expand"
type Image struct {
	Base
	data   string
	format string
	alt    string
	title  string
	width  css.DimenT
	height css.DimenT
}

// NewImage creates an image descriptor.
func NewImage(p Params) (*Image, error) {
	img := &Image{}
	img.Configure(p)
	img.alt = Param(&img.Base, "alt", "")
	img.title = Param(&img.Base, "title", "")
	img.data = Param(&img.Base, "data", "")
	img.format = Param(&img.Base, "fmt", "href.auto")
	img.width = img.dimenParam("width")
	img.height = img.dimenParam("height")
	if err := img.Finish(); err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	return img, nil
}

func (img *Image) dimenParam(name string) css.DimenT {
	var s string
	switch v := img.RegisterParameter(name, "expand").(type) {
	case string:
		s = v
	case int:
		s = strconv.Itoa(v)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		img.fail(fmt.Errorf("%w: parameter %q: %T is not a dimension", ErrType, name, v))
		return css.Expand()
	}
	d, err := css.ParseDimen(s)
	if err != nil {
		img.fail(fmt.Errorf("%w: parameter %q: %s", ErrType, name, err.Error()))
		return css.Expand()
	}
	return d
}

// Data returns the image source.
func (img *Image) Data() string { return img.data }

// Width returns the width of the image.
func (img *Image) Width() css.DimenT { return img.width }

// Height returns the height of the image.
func (img *Image) Height() css.DimenT { return img.height }

// ExtendAttributes adds "alt", "title", "fmt", "width" and "height".
func (img *Image) ExtendAttributes(base node.Attrs) node.Attrs {
	return img.Base.ExtendAttributes(base).
		Set("alt", img.alt).
		Set("title", img.title).
		Set("fmt", img.format).
		Set("width", img.width.Canonical()).
		Set("height", img.height.Canonical())
}

// Render renders a node with tag "image". Its single child is the image data.
func (img *Image) Render() (*node.Node, error) {
	return node.New("image", img.ExtendAttributes(nil), node.Text(img.data))
}
