package validjson

import (
	"cmp"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-faster/errors"
)

// Rule checks extracted value of given key.
//
// Returned error becomes the message of *ValidationError, so it should
// describe the violation, like `value for key "port" is below minimum of 1`.
type Rule[T any] func(key string, value T) error

// Min requires value to be greater than or equal to min.
func Min[T cmp.Ordered](min T) Rule[T] {
	return func(key string, value T) error {
		if value < min {
			return errors.Errorf("value for key %q is below minimum of %v", key, min)
		}
		return nil
	}
}

// AboveMin is an alias for Min.
func AboveMin[T cmp.Ordered](min T) Rule[T] {
	return Min(min)
}

// Max requires value to be less than or equal to max.
func Max[T cmp.Ordered](max T) Rule[T] {
	return func(key string, value T) error {
		if value > max {
			return errors.Errorf("value for key %q is above maximum of %v", key, max)
		}
		return nil
	}
}

// BelowMax is an alias for Max.
func BelowMax[T cmp.Ordered](max T) Rule[T] {
	return Max(max)
}

// Range requires value to be within [min, max].
func Range[T cmp.Ordered](min, max T) Rule[T] {
	return func(key string, value T) error {
		if value < min || value > max {
			return errors.Errorf("value for key %q is outside range %v to %v", key, min, max)
		}
		return nil
	}
}

// WithinRange is an alias for Range.
func WithinRange[T cmp.Ordered](min, max T) Rule[T] {
	return Range(min, max)
}

// MemberOf requires value to be equal to one of allowed values.
func MemberOf[T comparable](allowed ...T) Rule[T] {
	return func(key string, value T) error {
		for _, v := range allowed {
			if v == value {
				return nil
			}
		}
		var b strings.Builder
		for i, v := range allowed {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(fmt.Sprint(v))
		}
		return errors.Errorf("value for key %q must be one of: %s", key, b.String())
	}
}

// File requires value to be a path of existing file or directory.
//
// Path is prefix joined with value. File probes the file system.
func File(prefix string) Rule[string] {
	return func(key, value string) error {
		p := filepath.Join(prefix, value)
		if _, err := os.Stat(p); err != nil {
			return errors.Errorf("filename value for key %q does not exist: %s", key, p)
		}
		return nil
	}
}

// FileFS is like File, but probes given fs.FS.
//
// Path is prefix joined with value using slash-separated path rules.
func FileFS(fsys fs.FS, prefix string) Rule[string] {
	return func(key, value string) error {
		p := path.Join(prefix, value)
		if _, err := fs.Stat(fsys, p); err != nil {
			return errors.Errorf("filename value for key %q does not exist: %s", key, p)
		}
		return nil
	}
}

// Pattern requires value to match regular expression.
func Pattern(re *regexp.Regexp) Rule[string] {
	return func(key, value string) error {
		if !re.MatchString(value) {
			return errors.Errorf("value for key %q does not match pattern %s", key, re)
		}
		return nil
	}
}

// MinLength requires value to have at least n characters.
func MinLength(n int) Rule[string] {
	return func(key, value string) error {
		if utf8.RuneCountInString(value) < n {
			return errors.Errorf("value for key %q is shorter than %d", key, n)
		}
		return nil
	}
}

// MaxLength requires value to have at most n characters.
func MaxLength(n int) Rule[string] {
	return func(key, value string) error {
		if utf8.RuneCountInString(value) > n {
			return errors.Errorf("value for key %q is longer than %d", key, n)
		}
		return nil
	}
}
