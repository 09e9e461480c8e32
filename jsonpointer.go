package validjson

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func splitFunc(s string, sep byte, cb func(s string) error) error {
	for {
		idx := strings.IndexByte(s, sep)
		if idx < 0 {
			break
		}
		if err := cb(s[:idx]); err != nil {
			return err
		}
		s = s[idx+1:]
	}
	return cb(s)
}

// Lookup resolves JSON Pointer (RFC 6901) relative to n.
//
// Empty pointer refers to n itself.
func (n *Node) Lookup(ptr string) (*Node, error) {
	if ptr == "" {
		return n, nil
	}
	if ptr[0] != '/' {
		return nil, errors.Errorf("invalid pointer %q: pointer must start with '/'", ptr)
	}

	cur := n
	err := splitFunc(ptr[1:], '/', func(part string) error {
		part = unescape(part)
		switch tt := cur.Type(); tt {
		case jx.Object:
			next, ok := cur.Find(part)
			if !ok {
				return errors.Errorf("key %q not found", part)
			}
			cur = next
		case jx.Array:
			next, err := findIdx(cur, part)
			if err != nil {
				return errors.Wrapf(err, "find index %q", part)
			}
			cur = next
		default:
			return errors.Errorf("unexpected type %q", tt)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %q", ptr)
	}
	return cur, nil
}

func findIdx(n *Node, part string) (*Node, error) {
	// Leading zeros are not allowed, see RFC 6901 section 4.
	if len(part) > 1 && part[0] == '0' {
		return nil, errors.New("index has leading zero")
	}
	index, err := strconv.ParseUint(part, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "index")
	}
	items := n.Items()
	if index >= uint64(len(items)) {
		return nil, errors.Errorf("index %d out of range [0, %d)", index, len(items))
	}
	return items[index], nil
}

var (
	unescapeReplacer = strings.NewReplacer(
		"~1", "/",
		"~0", "~",
	)
	escapeReplacer = strings.NewReplacer(
		"~", "~0",
		"/", "~1",
	)
)

func unescape(part string) string {
	// Replacer always creates new string, check that unescape is really necessary.
	if !strings.Contains(part, "~1") && !strings.Contains(part, "~0") {
		return part
	}
	return unescapeReplacer.Replace(part)
}

func escape(part string) string {
	if !strings.ContainsAny(part, "~/") {
		return part
	}
	return escapeReplacer.Replace(part)
}

func joinPointer(base, part string) string {
	return base + "/" + escape(part)
}

func joinIndex(base string, idx int) string {
	return base + "/" + strconv.Itoa(idx)
}
