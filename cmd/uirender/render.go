package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uitree"
	"github.com/npillmayer/uitree/convert"
	"github.com/npillmayer/uitree/dom"
	"github.com/npillmayer/uitree/dom/domdbg"
	"github.com/npillmayer/uitree/markdown"
	"github.com/npillmayer/uitree/node"
	"github.com/npillmayer/uitree/page"
	"github.com/npillmayer/uitree/ui"
)

// ErrFormat is flagged for unknown output formats.
var ErrFormat = errors.New("unknown output format")

// formats are the supported output formats.
var formats = []string{"html", "page", "xml", "tree", "debug", "ascii", "dot"}

func tracer() tracing.Trace {
	return tracing.Select("uitree")
}

// options control a rendering run.
type options struct {
	in          string
	format      string
	vocab       string
	title       string
	stylesheets []string
	passthrough bool
}

func (opts options) validate() error {
	if opts.in == "" {
		return errors.New("no input document given")
	}
	for _, f := range formats {
		if f == opts.format {
			return nil
		}
	}
	return fmt.Errorf("%w %q, expected one of %s", ErrFormat, opts.format, strings.Join(formats, "|"))
}

// registry knows the standard kinds plus Markdown.
func registry() *ui.Registry {
	reg := ui.NewRegistry()
	ui.RegisterStandardKinds(reg)
	markdown.Register(reg)
	return reg
}

func (opts options) engine() (*convert.Engine, error) {
	var eopts []convert.Option
	if opts.passthrough {
		eopts = append(eopts, convert.WithPassthrough())
	}
	if opts.vocab == "" {
		return convert.NewEngine(convert.HTML(), eopts...), nil
	}
	f, err := os.Open(opts.vocab)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	v, err := convert.LoadVocabulary(f)
	if err != nil {
		return nil, err
	}
	return convert.NewEngine(v, eopts...), nil
}

// renderFile reads the UI document named by opts.in and writes it to w.
func renderFile(opts options, w io.Writer) error {
	f, err := os.Open(opts.in)
	if err != nil {
		return err
	}
	defer f.Close()
	return render(f, opts, w)
}

// render decodes a UI document from r and writes it to w in the format
// selected by opts.
func render(r io.Reader, opts options, w io.Writer) error {
	e, err := ui.Decode(r, registry())
	if err != nil {
		return err
	}
	abstract, err := uitree.Render(e)
	if err != nil {
		return err
	}
	tracer().Debugf("rendered document <%s>", abstract.Tag())
	switch opts.format {
	case "xml":
		return writeString(w, abstract.ToXML())
	case "tree":
		return writeString(w, abstract.TreeString("  "))
	case "debug":
		return writeString(w, abstract.String())
	case "ascii":
		return writeString(w, node.Print(abstract))
	}
	engine, err := opts.engine()
	if err != nil {
		return err
	}
	concrete, err := engine.Convert(abstract)
	if err != nil {
		return err
	}
	switch opts.format {
	case "html":
		return dom.Render(w, concrete)
	case "page":
		title := opts.title
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(opts.in), filepath.Ext(opts.in))
		}
		return page.Render(w, title, concrete, opts.stylesheets...)
	case "dot":
		return domdbg.ToGraphViz(concrete, w, nil)
	}
	return fmt.Errorf("%w %q", ErrFormat, opts.format)
}

func writeString(w io.Writer, s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}
