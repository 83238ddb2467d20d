package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"gopkg.in/yaml.v3"
)

// tracePrefix is the configuration prefix for trace levels, e.g.
//
//    trace:
//      root: Error
//      uitree.convert: Debug
const tracePrefix = "trace"

// traceKeys are the tracers of the uitree packages.
var traceKeys = []string{
	"uitree",
	"uitree.node",
	"uitree.ui",
	"uitree.convert",
	"uitree.dom",
	"uitree.markdown",
	"uitree.page",
}

// config is a schuko.Configuration read from YAML. Nested mappings are
// flattened into dotted keys.
type config struct {
	values map[string]string
}

var _ schuko.Configuration = (*config)(nil)

func newConfig() *config {
	c := &config{values: make(map[string]string)}
	c.InitDefaults()
	return c
}

// loadConfig reads a YAML configuration. An empty document is valid.
func loadConfig(r io.Reader) (*config, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	c := &config{values: make(map[string]string)}
	c.flatten("", doc)
	c.InitDefaults()
	return c, nil
}

func loadConfigFile(path string) (*config, error) {
	if path == "" {
		return newConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadConfig(f)
}

func (c *config) flatten(prefix string, m map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch x := v.(type) {
		case map[string]any:
			c.flatten(key, x)
		case nil:
			c.values[key] = ""
		case []any:
			parts := make([]string, len(x))
			for i, p := range x {
				parts[i] = fmt.Sprint(p)
			}
			c.values[key] = strings.Join(parts, ",")
		default:
			c.values[key] = fmt.Sprint(x)
		}
	}
}

// InitDefaults is part of interface schuko.Configuration. Tracing defaults to
// the Go log adapter, reporting errors only.
func (c *config) InitDefaults() {
	c.setDefault("tracing.adapter", "go")
	c.setDefault(tracePrefix+".root", "Error")
	for _, k := range traceKeys {
		c.setDefault(tracePrefix+"."+k, "Error")
	}
}

func (c *config) setDefault(key, value string) {
	if !c.IsSet(key) {
		c.values[key] = value
	}
}

// Set overrides a configuration value.
func (c *config) Set(key, value string) {
	c.values[key] = value
}

// IsSet is part of interface schuko.Configuration.
func (c *config) IsSet(key string) bool {
	_, ok := c.values[key]
	return ok
}

// GetString is part of interface schuko.Configuration.
func (c *config) GetString(key string) string {
	return c.values[key]
}

// GetInt is part of interface schuko.Configuration.
func (c *config) GetInt(key string) int {
	i, err := strconv.Atoi(c.values[key])
	if err != nil {
		return 0
	}
	return i
}

// GetBool is part of interface schuko.Configuration.
func (c *config) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c.values[key])
	return b
}

// IsInteractive is part of interface schuko.Configuration.
func (c *config) IsInteractive() bool {
	return false
}

// setTraceLevel sets the trace level of all uitree tracers.
func (c *config) setTraceLevel(level string) {
	for _, k := range traceKeys {
		c.Set(tracePrefix+"."+k, level)
	}
}

// setupTracing installs the global trace selector, configured from c.
func setupTracing(c *config) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(c, tracePrefix, trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
