/*
Command uirender renders YAML UI documents into markup.

Usage:

    uirender -in login.yaml [-format html] [-vocab dialect.yaml] [-passthrough]
             [-css site.css]... [-title Login] [-watch] [-config uirender.yaml] [-trace Debug]

A UI document describes a tree of widget descriptors:

    kind: form
    act: /login
    items:
      - kind: label
        label: User
        form: true
      - kind: line-entry
        form_name: user

Formats are html (converted markup), page (a complete HTML5 page), xml (the
abstract tree), tree and debug (indented dumps), ascii (a tree drawing) and
dot (a GraphViz diagram of the converted DOM). With -watch, the document and
vocabulary are rendered again whenever they change.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
)

// stringList collects repeated flag values.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(s string) error {
	*l = append(*l, s)
	return nil
}

func main() {
	var opts options
	var stylesheets stringList
	flag.StringVar(&opts.in, "in", "", "UI document (YAML)")
	flag.StringVar(&opts.format, "format", "html", "output format: "+strings.Join(formats, "|"))
	flag.StringVar(&opts.vocab, "vocab", "", "target vocabulary (YAML), default is HTML")
	flag.StringVar(&opts.title, "title", "", "page title, default is the document's base name")
	flag.BoolVar(&opts.passthrough, "passthrough", false, "copy tags without a conversion rule")
	flag.Var(&stylesheets, "css", "stylesheet to link from a page (repeatable)")
	watchFlag := flag.Bool("watch", false, "render again whenever the input changes")
	confFlag := flag.String("config", "", "configuration file (YAML)")
	traceFlag := flag.String("trace", "", "trace level for all uitree tracers")
	flag.Parse()
	opts.stylesheets = stylesheets
	if opts.in == "" && flag.NArg() == 1 {
		opts.in = flag.Arg(0)
	}

	conf, err := loadConfigFile(*confFlag)
	if err != nil {
		fatal(err)
	}
	if *traceFlag != "" {
		conf.setTraceLevel(*traceFlag)
	}
	if err := setupTracing(conf); err != nil {
		fatal(err)
	}
	if err := opts.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	if err := renderFile(opts, os.Stdout); err != nil {
		if !*watchFlag {
			fatal(err)
		}
		fmt.Fprintln(os.Stderr, err)
	}
	if !*watchFlag {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	files := []string{opts.in}
	if opts.vocab != "" {
		files = append(files, opts.vocab)
	}
	fmt.Fprintf(os.Stderr, "watching %s\n", strings.Join(files, ", "))
	err = watch(ctx, files, func(string) {
		if err := renderFile(opts, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}, func(err error) {
		fmt.Fprintf(os.Stderr, "watcher: %v\n", err)
	})
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
