package validjson

import (
	"github.com/go-faster/jx"
)

// Schema is a type that populates itself from a Binder.
//
// BindJSON should request fields in declaration order and return
// the first error as is.
type Schema interface {
	BindJSON(b *Binder) error
}

// Binder is a view over JSON object used to extract schema fields.
//
// Binder borrows the node and must not outlive the Document it came from.
type Binder struct {
	node  *Node
	label string
	// path is JSON Pointer to node.
	path string
}

// Label returns provenance label of the document.
func (b *Binder) Label() string {
	return b.label
}

// Path returns JSON Pointer to the bound object.
func (b *Binder) Path() string {
	return b.path
}

// Node returns the bound value.
func (b *Binder) Node() *Node {
	return b.node
}

// Has reports whether the object has given key.
func (b *Binder) Has(key string) bool {
	_, ok := b.node.Find(key)
	return ok
}

// Keys returns object keys in source order.
func (b *Binder) Keys() []string {
	members := b.node.Members()
	keys := make([]string, 0, len(members))
	for _, m := range members {
		keys = append(keys, m.Key)
	}
	return keys
}

// site describes where a value is being extracted.
type site struct {
	label string
	key   string
	path  string
}

func (b *Binder) site(key string) site {
	return site{
		label: b.label,
		key:   key,
		path:  joinPointer(b.path, key),
	}
}

func (s site) typeError(expected string) error {
	return &TypeError{
		Label:    s.label,
		Path:     s.path,
		Key:      s.key,
		Expected: expected,
	}
}

func (s site) validationError(err error) error {
	return &ValidationError{
		Label: s.label,
		Path:  s.path,
		Key:   s.key,
		Err:   err,
	}
}

// Required extracts value of required key.
//
// Missing key is reported as *PresenceError.
func Required[T any](b *Binder, key string, typ Type[T]) Field[T] {
	s := b.site(key)
	n, ok := b.node.Find(key)
	if !ok {
		return Field[T]{
			site: s,
			err: &PresenceError{
				Label: b.label,
				Path:  b.path,
				Key:   key,
			},
		}
	}
	v, err := typ.decode(s, n)
	return Field[T]{
		site:  s,
		value: v,
		err:   err,
	}
}

// Optional extracts value of optional key, returning def if key is missing.
//
// Default value is not checked by rules attached to the returned Field.
func Optional[T any](b *Binder, key string, typ Type[T], def T) Field[T] {
	if !b.Has(key) {
		return Field[T]{
			site:      b.site(key),
			value:     def,
			defaulted: true,
		}
	}
	return Required(b, key, typ)
}

// OptionalString is Optional for string keys with textual default.
func OptionalString(b *Binder, key, def string) Field[string] {
	return Optional(b, key, String, def)
}

// Decode decodes document root into T.
//
// On error, zero value of T is returned.
func Decode[T any, P interface {
	*T
	Schema
}](doc *Document) (T, error) {
	var zero T
	if doc.root.Type() != jx.Object {
		return zero, &TypeError{
			Label:    doc.label,
			Expected: "a JSON object",
		}
	}
	var v T
	if err := P(&v).BindJSON(doc.Binder()); err != nil {
		return zero, err
	}
	return v, nil
}

// Unmarshal parses JSON text and decodes it into T.
func Unmarshal[T any, P interface {
	*T
	Schema
}](data []byte, opts ...Option) (T, error) {
	doc, err := Parse(data, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T, P](doc)
}

// Load reads JSON file and decodes it into T.
func Load[T any, P interface {
	*T
	Schema
}](path string, opts ...Option) (T, error) {
	doc, err := ReadFile(path, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T, P](doc)
}
