package validjson

import (
	"io"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// parseNode parses single JSON value and ensures there is no trailing data.
func parseNode(d *jx.Decoder) (*Node, error) {
	if d.Next() == jx.Invalid {
		if err := d.Skip(); err != nil {
			return nil, err
		}
		return nil, errors.New("unexpected end of input")
	}

	n, err := decodeNode(d)
	if err != nil {
		return nil, err
	}

	if tt := d.Next(); tt != jx.Invalid {
		return nil, errors.Errorf("unexpected trailing %s value", tt)
	}
	// Invalid is also reported for bytes that cannot start a value.
	switch err := d.Skip(); {
	case errors.Is(err, io.EOF):
		return n, nil
	case err != nil:
		return nil, errors.Wrap(err, "trailing data")
	default:
		return nil, errors.New("unexpected trailing data")
	}
}

func decodeNode(d *jx.Decoder) (*Node, error) {
	switch tt := d.Next(); tt {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return nil, err
		}
		if !utf8.ValidString(s) {
			return nil, errors.New("invalid UTF-8 in string")
		}
		return NewString(s), nil
	case jx.Number:
		num, err := d.Num()
		if err != nil {
			return nil, err
		}
		// Num may reference decoder buffer, string conversion copies it.
		return NewNumber(string(num)), nil
	case jx.Null:
		if err := d.Null(); err != nil {
			return nil, err
		}
		return NewNull(), nil
	case jx.Bool:
		v, err := d.Bool()
		if err != nil {
			return nil, err
		}
		return NewBool(v), nil
	case jx.Array:
		n := &Node{typ: jx.Array, items: []*Node{}}
		i := 0
		if err := d.Arr(func(d *jx.Decoder) error {
			item, err := decodeNode(d)
			if err != nil {
				return errors.Wrapf(err, "[%d]", i)
			}
			n.items = append(n.items, item)
			i++
			return nil
		}); err != nil {
			return nil, err
		}
		return n, nil
	case jx.Object:
		b := newObjectBuilder(0)
		if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			if !utf8.Valid(key) {
				return errors.New("invalid UTF-8 in key")
			}
			value, err := decodeNode(d)
			if err != nil {
				return errors.Wrapf(err, "%q", key)
			}
			b.set(string(key), value)
			return nil
		}); err != nil {
			return nil, err
		}
		return b.node, nil
	default:
		// Let decoder report the offending input.
		if err := d.Skip(); err != nil {
			return nil, err
		}
		return nil, errors.Errorf("unexpected %s", tt)
	}
}
