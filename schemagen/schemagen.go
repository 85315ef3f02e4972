// Package schemagen exports built models as JSON Schema documents.
//
// Generate renders a single model with its nested models under $defs;
// Combine renders several models into one document of shared definitions.
// Both strip title and default from every node below the document root and
// produce byte-identical output for identical declarations.
package schemagen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	j "github.com/goccy/go-json"
	"github.com/reoring/assetskema/dsl"
	js "github.com/reoring/assetskema/jsonschema"
)

// ErrDefinitionConflict is returned when two different models share a name.
var ErrDefinitionConflict = js.ErrDefinitionConflict

// DefaultDir is where WriteFile puts documents when no path is given.
const DefaultDir = ".temp"

// stripped keywords of nested nodes.
var stripped = []string{"title", "default"}

type options struct {
	id          string
	title       string
	description string
}

// Option configures Generate and Combine.
type Option func(*options)

// WithID sets $id. Generate derives it from the model name otherwise.
func WithID(id string) Option { return func(o *options) { o.id = id } }

// WithTitle sets the document title.
func WithTitle(title string) Option { return func(o *options) { o.title = title } }

// WithDescription sets the document description.
func WithDescription(text string) Option { return func(o *options) { o.description = text } }

func apply(opts []Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// Generate renders model as a standalone document: $schema, $id, the model
// body inline and nested models under $defs.
func Generate(model *dsl.ObjectSchema, opts ...Option) (*js.Schema, error) {
	if model == nil {
		return nil, fmt.Errorf("schemagen: nil model")
	}
	o := apply(opts)
	defs := js.NewDefinitions()
	doc, err := model.Definition(defs)
	if err != nil {
		return nil, fmt.Errorf("schemagen: %s: %w", model.Name(), err)
	}
	doc.SchemaURI = js.Dialect
	doc.ID = o.id
	if doc.ID == "" {
		doc.ID = js.SchemaID(model.Name())
	}
	if o.title != "" {
		doc.Title = o.title
	}
	if o.description != "" {
		doc.Description = o.description
	}
	doc.Defs = defs.Map()
	js.StripKeywords(doc, stripped...)
	return doc, nil
}

// Combine renders models, and the models they nest, as definitions of one
// document. The document has no body of its own; $id, title and description
// are written only when given.
func Combine(models []*dsl.ObjectSchema, opts ...Option) (*js.Schema, error) {
	o := apply(opts)
	defs := js.NewDefinitions()
	for _, m := range models {
		if m == nil {
			return nil, fmt.Errorf("schemagen: nil model")
		}
		if m.Name() == "" {
			return nil, fmt.Errorf("schemagen: combined models must be named")
		}
		if _, err := defs.Add(m.Name(), m, m.Definition); err != nil {
			return nil, fmt.Errorf("schemagen: %s: %w", m.Name(), err)
		}
	}
	doc := &js.Schema{
		SchemaURI:   js.Dialect,
		ID:          o.id,
		Title:       o.title,
		Description: o.description,
		Defs:        defs.Map(),
	}
	js.StripKeywords(doc, stripped...)
	return doc, nil
}

// Marshal encodes doc as indented JSON with a trailing newline. The
// document is encoded compactly first and indented afterwards.
func Marshal(doc *js.Schema) ([]byte, error) {
	raw, err := j.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("schemagen: marshal: %w", err)
	}
	var buf bytes.Buffer
	if err := j.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("schemagen: indent: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteFile writes doc to path. An empty path means DefaultDir/<$id>, and the
// directory is created when missing. It returns the path written.
func WriteFile(doc *js.Schema, path string) (string, error) {
	if path == "" {
		if doc.ID == "" {
			return "", fmt.Errorf("schemagen: no path and no $id")
		}
		path = filepath.Join(DefaultDir, filepath.Base(doc.ID))
	}
	b, err := Marshal(doc)
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("schemagen: %w", err)
		}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("schemagen: %w", err)
	}
	return path, nil
}
