// Package yamldoc provides YAML document source for validjson.
//
// YAML is converted to the same value tree as JSON, so schema types decode
// YAML and JSON documents alike.
package yamldoc

import (
	"math"
	"math/big"
	"os"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/yaml"

	"github.com/tdakkota/validjson"
)

// DefaultLabel is provenance label of YAML documents without known origin.
const DefaultLabel = "YAML data"

func resolveNode(n *yaml.Node) (_ *yaml.Node, reason string) {
	if n == nil {
		return nil, "node is nil"
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, "document node content is empty"
		}
		return resolveNode(n.Content[0])
	case yaml.AliasNode:
		return resolveNode(n.Alias)
	case yaml.MappingNode:
		if len(n.Content)%2 != 0 {
			return nil, "mapping node content length is not even"
		}
		fallthrough
	default:
		return n, ""
	}
}

func convertInt(n *yaml.Node) (*validjson.Node, error) {
	var v int64
	if err := n.Decode(&v); err == nil {
		return validjson.NewInt(v), nil
	}
	// Out of int64 range.
	i, ok := new(big.Int).SetString(n.Value, 0)
	if !ok {
		return nil, errors.Errorf("cannot parse integer %q", n.Value)
	}
	return validjson.NewNumber(i.String()), nil
}

func convertFloat(n *yaml.Node) (*validjson.Node, error) {
	var v float64
	if err := n.Decode(&v); err != nil {
		return nil, errors.Wrapf(err, "parse float %q", n.Value)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, errors.Errorf("%q cannot be represented as JSON number", n.Value)
	}
	return validjson.NewNumber(strconv.FormatFloat(v, 'g', -1, 64)), nil
}

// Convert converts YAML node to validjson.Node.
func Convert(n *yaml.Node) (*validjson.Node, error) {
	n, reason := resolveNode(n)
	if n == nil {
		return nil, errors.Errorf("node is invalid: %s", reason)
	}

	switch n.Kind {
	case yaml.MappingNode:
		content := n.Content
		members := make([]validjson.Member, 0, len(content)/2)
		for i := 0; i < len(content); i += 2 {
			key, value := content[i], content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, errors.Errorf("line %d: key is not scalar", key.Line)
			}
			v, err := Convert(value)
			if err != nil {
				return nil, errors.Wrapf(err, "%q", key.Value)
			}
			members = append(members, validjson.Member{Key: key.Value, Value: v})
		}
		return validjson.NewObject(members...), nil
	case yaml.SequenceNode:
		items := make([]*validjson.Node, 0, len(n.Content))
		for i, item := range n.Content {
			v, err := Convert(item)
			if err != nil {
				return nil, errors.Wrapf(err, "[%d]", i)
			}
			items = append(items, v)
		}
		return validjson.NewArray(items...), nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return validjson.NewNull(), nil
		case "!!bool":
			var v bool
			if err := n.Decode(&v); err != nil {
				return nil, errors.Wrapf(err, "parse bool %q", n.Value)
			}
			return validjson.NewBool(v), nil
		case "!!int":
			return convertInt(n)
		case "!!float":
			return convertFloat(n)
		default:
			// Strings, timestamps and other scalars are kept as text.
			return validjson.NewString(n.Value), nil
		}
	default:
		return nil, errors.Errorf("unexpected node kind: %v", n.Kind)
	}
}

func parse(data []byte, label string) (*validjson.Document, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, &validjson.ParseError{Format: "YAML", Err: err}
	}
	root, err := Convert(&n)
	if err != nil {
		return nil, &validjson.ParseError{Format: "YAML", Err: err}
	}
	return validjson.NewDocument(root, label), nil
}

// Parse parses YAML text.
func Parse(data []byte, opts ...validjson.Option) (*validjson.Document, error) {
	return parse(data, validjson.ResolveLabel(DefaultLabel, opts...))
}

// ReadFile reads and parses YAML file.
//
// Document label is `YAML file "<path>"`.
func ReadFile(path string, opts ...validjson.Option) (*validjson.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &validjson.IOError{Format: "YAML", Path: path, Err: err}
	}
	return parse(data, validjson.ResolveLabel(validjson.FileLabel("YAML", path), opts...))
}
