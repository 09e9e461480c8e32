package validjson

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Type describes how to extract Go value of type T from a Node.
//
// Use predefined types and constructors: String, Int, Int64, Float, Bool,
// Object, SliceOf, FixedArray, MapOf, Nullable and Raw.
type Type[T any] struct {
	decode func(s site, n *Node) (T, error)
}

func scalar[T any](expected string, get func(n *Node) (T, bool)) Type[T] {
	return Type[T]{
		decode: func(s site, n *Node) (T, error) {
			v, ok := get(n)
			if !ok {
				var zero T
				return zero, s.typeError(expected)
			}
			return v, nil
		},
	}
}

var (
	// String expects JSON string.
	String = scalar("a string value", (*Node).Str)
	// Int expects integer-valued JSON number that fits into int.
	Int = scalar("an integer value", func(n *Node) (int, bool) {
		v, ok := n.Int64()
		if !ok || v < math.MinInt || v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	})
	// Int64 expects integer-valued JSON number that fits into int64.
	Int64 = scalar("an integer value", (*Node).Int64)
	// Float expects JSON number.
	Float = scalar("a double value", (*Node).Float64)
	// Bool expects JSON boolean.
	Bool = scalar("a boolean value", (*Node).Bool)
	// Raw accepts any JSON value as is.
	Raw = Type[*Node]{
		decode: func(s site, n *Node) (*Node, error) {
			return n, nil
		},
	}
)

// Object expects JSON object and decodes it into nested schema T.
//
// Nested Binder shares provenance label with the parent.
func Object[T any, P interface {
	*T
	Schema
}]() Type[T] {
	return Type[T]{
		decode: func(s site, n *Node) (T, error) {
			var zero T
			if n.Type() != jx.Object {
				return zero, s.typeError("a JSON object")
			}
			var v T
			if err := P(&v).BindJSON(&Binder{
				node:  n,
				label: s.label,
				path:  s.path,
			}); err != nil {
				return zero, err
			}
			return v, nil
		},
	}
}

func decodeItems[E any](s site, n *Node, elem Type[E], cb func(i int, v E)) error {
	for i, item := range n.Items() {
		// Element errors are reported for the outer key.
		v, err := elem.decode(site{
			label: s.label,
			key:   s.key,
			path:  joinIndex(s.path, i),
		}, item)
		if err != nil {
			return err
		}
		cb(i, v)
	}
	return nil
}

// SliceOf expects JSON array and decodes every element using elem.
//
// Order of elements is preserved.
func SliceOf[E any](elem Type[E]) Type[[]E] {
	return Type[[]E]{
		decode: func(s site, n *Node) ([]E, error) {
			if n.Type() != jx.Array {
				return nil, s.typeError("a JSON array")
			}
			r := make([]E, 0, n.Len())
			if err := decodeItems(s, n, elem, func(_ int, v E) {
				r = append(r, v)
			}); err != nil {
				return nil, err
			}
			return r, nil
		},
	}
}

// FixedArray expects JSON array with at most len(A) elements and decodes
// it into array type A, leaving missing trailing elements zero.
//
// FixedArray panics if A is not an array of E.
func FixedArray[A any, E any](elem Type[E]) Type[A] {
	typ := reflect.TypeOf((*A)(nil)).Elem()
	if typ.Kind() != reflect.Array || typ.Elem() != reflect.TypeOf((*E)(nil)).Elem() {
		panic(fmt.Sprintf("validjson: FixedArray type %s is not an array of %s",
			typ, reflect.TypeOf((*E)(nil)).Elem(),
		))
	}
	capacity := typ.Len()

	return Type[A]{
		decode: func(s site, n *Node) (A, error) {
			var zero A
			if n.Type() != jx.Array {
				return zero, s.typeError("a JSON array")
			}
			if l := n.Len(); l > capacity {
				return zero, s.validationError(
					errors.Errorf("value for key %q exceeds capacity of %d", s.key, capacity),
				)
			}

			var r A
			rv := reflect.ValueOf(&r).Elem()
			if err := decodeItems(s, n, elem, func(i int, v E) {
				rv.Index(i).Set(reflect.ValueOf(&v).Elem())
			}); err != nil {
				return zero, err
			}
			return r, nil
		},
	}
}

// MapOf expects JSON object and decodes every member value using elem.
func MapOf[E any](elem Type[E]) Type[map[string]E] {
	return Type[map[string]E]{
		decode: func(s site, n *Node) (map[string]E, error) {
			if n.Type() != jx.Object {
				return nil, s.typeError("a JSON object")
			}
			members := n.Members()
			r := make(map[string]E, len(members))
			for _, m := range members {
				v, err := elem.decode(site{
					label: s.label,
					key:   s.key,
					path:  joinPointer(s.path, m.Key),
				}, m.Value)
				if err != nil {
					return nil, err
				}
				r[m.Key] = v
			}
			return r, nil
		},
	}
}

// Nullable accepts JSON null as nil, other values are decoded using elem.
func Nullable[E any](elem Type[E]) Type[*E] {
	return Type[*E]{
		decode: func(s site, n *Node) (*E, error) {
			if n.Type() == jx.Null {
				return nil, nil
			}
			v, err := elem.decode(s, n)
			if err != nil {
				return nil, err
			}
			return &v, nil
		},
	}
}
