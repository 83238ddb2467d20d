/*
Package markdown provides a descriptor rendering Markdown text.

Markdown is parsed with goldmark. Rendering maps the Markdown AST onto the
abstract tags of package ui, so a Markdown descriptor may be mixed freely with
other descriptors and is converted like any of them:

    # Title          heading (level=1)
    text             paragraph
    *em* **strong**  text-tag (type=italic / type=bold)
    `code`           code-text
    ```go …```       raw-text holding code-text (style=language-go)
    [a](/x)          link (href=/x)
    ![alt](i.png)    image (alt=alt) holding "i.png"
    ---              separator
    - item           list (ordered=false) holding list-item
    > quote          quote-block

Raw HTML within Markdown is dropped.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'uitree.markdown'
func tracer() tracing.Trace {
	return tracing.Select("uitree.markdown")
}
