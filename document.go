package validjson

import (
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/goccy/go-json"
)

// DefaultLabel is provenance label of documents without known origin.
const DefaultLabel = "JSON data"

// Document is a parsed JSON value tree and its provenance label.
//
// Label is included in every diagnostic produced while decoding the document.
type Document struct {
	root  *Node
	label string
}

// NewDocument creates Document from already parsed tree.
//
// If label is empty, DefaultLabel is used.
func NewDocument(root *Node, label string) *Document {
	if label == "" {
		label = DefaultLabel
	}
	return &Document{
		root:  root,
		label: label,
	}
}

// Root returns root value.
func (d *Document) Root() *Node {
	return d.root
}

// Label returns provenance label.
func (d *Document) Label() string {
	return d.label
}

// Binder returns Binder over the document root.
func (d *Document) Binder() *Binder {
	return &Binder{
		node:  d.root,
		label: d.label,
	}
}

// Lookup resolves JSON Pointer against the document root.
func (d *Document) Lookup(ptr string) (*Node, error) {
	return d.root.Lookup(ptr)
}

type options struct {
	label string
}

// Option configures document parsing.
type Option func(*options)

// WithLabel sets provenance label of the document.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

func buildOptions(label string, opts []Option) options {
	o := options{
		label: label,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ResolveLabel returns label set by opts, or def if none is set.
//
// Document sources outside this package use it to honor WithLabel.
func ResolveLabel(def string, opts ...Option) string {
	return buildOptions(def, opts).label
}

func parse(data []byte, o options) (*Document, error) {
	d := jx.GetDecoder()
	defer jx.PutDecoder(d)
	d.ResetBytes(data)

	root, err := parseNode(d)
	if err != nil {
		return nil, &ParseError{Format: "JSON", Err: err}
	}
	return NewDocument(root, o.label), nil
}

// Parse parses JSON text.
func Parse(data []byte, opts ...Option) (*Document, error) {
	return parse(data, buildOptions(DefaultLabel, opts))
}

// ParseString parses JSON text from string.
func ParseString(s string, opts ...Option) (*Document, error) {
	return Parse([]byte(s), opts...)
}

// Read reads and parses JSON text from r.
func Read(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Format: "JSON", Err: err}
	}
	return Parse(data, opts...)
}

// ReadFile reads and parses JSON file.
//
// Document label is `JSON file "<path>"`.
func ReadFile(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Format: "JSON", Path: path, Err: err}
	}
	return parse(data, buildOptions(FileLabel("JSON", path), opts))
}

// FileLabel returns provenance label for file of given format.
func FileLabel(format, path string) string {
	return fmt.Sprintf("%s file \"%s\"", format, path)
}

// FromValue creates Document from in-memory Go value.
//
// Value is converted using its JSON encoding.
func FromValue(v any, opts ...Option) (*Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal")
	}
	return Parse(data, opts...)
}
