/*
Package uitree describes user interfaces as trees of widget descriptors and
converts them into concrete markup.

Applications build descriptors (package ui), optionally from YAML documents.
Rendering a descriptor yields an immutable tree of abstract nodes
(package node), which a conversion engine (package convert) rewrites into a
concrete vocabulary, HTML by default:

    lbl, _ := ui.NewLabel(ui.Params{"label": "User", "form": true})
    user, _ := ui.NewLineEntry(ui.Params{"form_name": "user", "required": true})
    form, _ := ui.NewForm(ui.Params{"act": "/login", "method": "POST"}, lbl, user)
    html, err := uitree.ToHTML(form)
    // <form action="/login" method="POST"><label>User</label>
    //     <input type="text" name="user" required="true"/></form>

Package dom bridges converted trees to golang.org/x/net/html for escaped
output, package page wraps them into HTML5 pages, and package markdown offers
a descriptor for Markdown text.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package uitree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'uitree'
func tracer() tracing.Trace {
	return tracing.Select("uitree")
}
