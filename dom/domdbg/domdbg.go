/*
Package domdbg implements helpers to debug converted node trees.

The DOM of a node tree is drawn as a GraphViz (DOT) digraph. Elements are
labeled with their tag, id and classes; text nodes show a shortened excerpt.
Inline styles of elements are drawn as tables of style property groups.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/uitree/dom"
	"github.com/npillmayer/uitree/dom/w3cdom"
	"github.com/npillmayer/uitree/node"
	"github.com/npillmayer/uitree/style"
	"golang.org/x/net/html"
)

// DefaultGroups are the style property groups drawn if the client does not
// select any.
var DefaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDimension,
	style.PGDisplay,
	style.PGColor,
}

var (
	headTmpl  = template.Must(template.New("head").Parse(graphHeadTmpl))
	nodeTmpl  = template.Must(template.New("domnode").Funcs(template.FuncMap{"shortstring": shortText}).Parse(domNodeTmpl))
	edgeTmpl  = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	groupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	pgTmpl    = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
)

// ToGraphViz writes a diagram of the DOM of a node tree in GraphViz (DOT)
// format. The diagram includes all inline styles belonging to one of
// styleGroups; if styleGroups is nil, DefaultGroups are used.
func ToGraphViz(n *node.Node, w io.Writer, styleGroups []string) error {
	doc, err := dom.NewW3C(n)
	if err != nil {
		return err
	}
	return W3CToGraphViz(doc, w, styleGroups)
}

// W3CToGraphViz writes a diagram for a DOM given by its root.
func W3CToGraphViz(doc *dom.W3CNode, w io.Writer, styleGroups []string) error {
	if styleGroups == nil {
		styleGroups = DefaultGroups
	}
	dw := &dotWriter{
		w:      w,
		groups: styleGroups,
		names:  make(map[*html.Node]string, 64),
	}
	dw.exec(headTmpl, struct{ Fontname string }{"Helvetica"})
	dw.nodes(doc)
	dw.write("}\n")
	return dw.err
}

// Dotty is a helper for testing. Given a node tree and a testing.T, it will
// create a GraphViz image of the DOM of the tree and write it to a file in the
// current folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(n *node.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(n, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// dotWriter keeps the first error; later writes are no-ops.
type dotWriter struct {
	w      io.Writer
	groups []string
	names  map[*html.Node]string
	err    error
}

func (dw *dotWriter) write(s string) {
	if dw.err == nil {
		_, dw.err = io.WriteString(dw.w, s)
	}
}

func (dw *dotWriter) exec(tmpl *template.Template, data any) {
	if dw.err == nil {
		dw.err = tmpl.Execute(dw.w, data)
	}
}

func (dw *dotWriter) name(n *dom.W3CNode) string {
	name := dw.names[n.HTMLNode()]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dw.names)+1)
		dw.names[n.HTMLNode()] = name
	}
	return name
}

type dotNode struct {
	N    *dom.W3CNode
	Name string
}

// Label is used by the node template.
func (d dotNode) Label() string {
	label := d.N.NodeName()
	attrs := d.N.Attributes()
	if id := attrs.GetNamedItem("id"); id != nil {
		label += "#" + id.Value()
	}
	if cl := attrs.GetNamedItem("class"); cl != nil {
		for _, c := range strings.Fields(cl.Value()) {
			label += "." + c
		}
	}
	return label
}

func (dw *dotWriter) nodes(n *dom.W3CNode) {
	dw.exec(nodeTmpl, dotNode{n, dw.name(n)})
	if n.NodeType() == html.ElementNode {
		dw.styles(n)
	}
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		c := ch.(*dom.W3CNode)
		dw.nodes(c)
		dw.exec(edgeTmpl, struct{ From, To string }{dw.name(n), dw.name(c)})
	}
}

// styles draws a chain of property group tables, starting at the node.
func (dw *dotWriter) styles(n *dom.W3CNode) {
	var styles w3cdom.ComputedStyles = n.ComputedStyles()
	prev := dw.name(n)
	for _, s := range dw.groups {
		pg := styles.Styles().Group(s)
		if pg == nil {
			continue
		}
		name := dw.name(n) + "_" + s
		dw.exec(groupTmpl, struct {
			Name  string
			Group *style.PropertyGroup
		}{name, pg})
		dw.exec(pgTmpl, struct{ From, To string }{prev, name})
		prev = name
	}
}

func shortText(n *dom.W3CNode) string {
	s := n.NodeValue()
	if len(s) > 10 {
		s = s[:10] + "..."
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	s = strings.Replace(s, `"`, `\"`, -1)
	return `"\"` + s + `\""`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Group.Name }}</font></td></tr>
      {{ range .Group.Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .From }} -> {{ .To }} [dir=none weight=1 style="dashed"] ;
`
