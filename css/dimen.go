/*
Package css provides CSS-like dimensions for widget geometry.

Widgets such as images accept sizes in a small CSS-inspired notation:

   expand       // fit to content; the default for images
   auto         // let the concrete vocabulary decide
   120, 120px   // pixels (1px = 0.75pt)
   10pt         // printer's points
   2em          // relative to the font size
   80%          // relative to the enclosing box

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// ErrDimen is flagged for malformed dimension strings.
var ErrDimen = errors.New("malformed dimension")

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	kindMask      uint32 = 0x000f

	// DimenContentFit flags dimensions sized to their content ("expand").
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS-like dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	factor  float64 // for font-relative dimensions
	flags   uint32
	src     string
}

/*
type DimenT
	= Auto
	| Expand
	| JustDimen dimen
	| Percentage Percent
	| FontRel factor
*/

// Auto creates a dimension left to the concrete vocabulary.
func Auto() DimenT {
	return DimenT{flags: dimenAuto, src: "auto"}
}

// Expand creates a dimension fitting its content.
func Expand() DimenT {
	return DimenT{flags: DimenContentFit, src: "expand"}
}

// JustDimen creates a dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// FontRelative creates a dimension as a multiple of the font size.
func FontRelative(f float64) DimenT {
	return DimenT{factor: f, flags: dimenEM}
}

// IsNone is true for the zero value, i.e. for an unset dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsExpand is true for content-fitting dimensions.
func (d DimenT) IsExpand() bool {
	return d.flags&contentMask == DimenContentFit
}

// String returns the notation the dimension has been parsed from, if any.
func (d DimenT) String() string {
	if d.src != "" {
		return d.src
	}
	switch {
	case d.flags&kindMask == dimenAbsolute:
		return strconv.FormatFloat(float64(d.d)/float64(dimen.PT), 'f', -1, 64) + "pt"
	case d.flags&relativeMask == dimenEM:
		return strconv.FormatFloat(d.factor, 'f', -1, 64) + "em"
	case d.flags&relativeMask == dimenPercent:
		return d.percent.String()
	}
	return ""
}

// pxUnit is the size of a CSS pixel, i.e. 3/4 of a printer's point.
const pxUnit = 0.75 * float64(dimen.PT)

// Canonical returns the dimension in a unit-normalized notation: fixed
// dimensions in pixels (rounded to 1/100 px), font-relative ones in em,
// percentages, or one of the keywords "expand" and "auto". Unset dimensions
// return "".
//
//    ParseDimen("10pt")   // 13.33px
//    ParseDimen(" 2EM ")  // 2em
func (d DimenT) Canonical() string {
	var du dimen.DU
	var p percent.Percent
	var f float64
	switch m := d.Match(); m {
	case m.Just(&du):
		px := math.Round(float64(du)/pxUnit*100) / 100
		return strconv.FormatFloat(px, 'f', -1, 64) + "px"
	case m.FontRelative(&f):
		return strconv.FormatFloat(f, 'f', -1, 64) + "em"
	case m.Percentage(&p):
		return p.String()
	case m.IsKind(Expand()):
		return "expand"
	case m.IsKind(Auto()):
		return "auto"
	}
	return ""
}

// ParseDimen parses a dimension in CSS-like notation. Leading and trailing
// whitespace is ignored, unit suffixes are case-insensitive.
func ParseDimen(s string) (DimenT, error) {
	src := strings.TrimSpace(s)
	str := strings.ToLower(src)
	switch str {
	case "expand":
		return Expand(), nil
	case "auto":
		return Auto(), nil
	case "":
		return DimenT{}, fmt.Errorf("%w: empty string", ErrDimen)
	}
	var unit string
	for _, u := range []string{"px", "pt", "em", "%"} {
		if strings.HasSuffix(str, u) {
			unit = u
			str = strings.TrimSpace(strings.TrimSuffix(str, u))
			break
		}
	}
	x, err := strconv.ParseFloat(str, 64)
	if err != nil || x < 0 {
		return DimenT{}, fmt.Errorf("%w: %q", ErrDimen, s)
	}
	var d DimenT
	switch unit {
	case "", "px":
		d = JustDimen(dimen.DU(math.Round(x * pxUnit)))
	case "pt":
		d = JustDimen(dimen.DU(math.Round(x * float64(dimen.PT))))
	case "em":
		d = FontRelative(x)
	case "%":
		if x != float64(int(x)) {
			return DimenT{}, fmt.Errorf("%w: fractional percentage %q", ErrDimen, s)
		}
		if x > 100 {
			return DimenT{}, fmt.Errorf("%w: percentage %q exceeds 100%%", ErrDimen, s)
		}
		d = Percentage(percent.FromInt(int(x)))
	}
	d.src = src
	return d, nil
}

// ---------------------------------------------------------------------------

// Match starts a match on the kind of a dimension.
//
//    switch m := d.Match(); m {
//    case m.Just(&du):
//        …
//    case m.IsKind(css.Expand()):
//        …
//    }
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper type for matching dimensions in switch statements.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case m.dimen.flags&kindMask != 0 && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags & relativeMask) != (d.flags & relativeMask) {
			return nil
		}
		return m
	case (m.dimen.flags&contentMask > 0) && (d.flags&contentMask > 0):
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts the value into du, if du is non-nil.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches %-relative dimensions and extracts the value into p, if p is non-nil.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// FontRelative matches font-relative dimensions and extracts the factor into f,
// if f is non-nil.
func (m *Matcher) FontRelative(f *float64) *Matcher {
	if m.dimen.flags&relativeMask == dimenEM {
		if f != nil {
			*f = m.dimen.factor
		}
		return m
	}
	return nil
}
