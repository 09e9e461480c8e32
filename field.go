package validjson

// Field is an extracted value of a single key.
//
// Field is created by Required or Optional, checked with Check and
// committed with Value or Into. Once a Field holds an error, following
// checks are skipped and the error is returned on commit.
type Field[T any] struct {
	site
	value     T
	defaulted bool
	err       error
}

// Key returns field key.
func (f Field[T]) Key() string {
	return f.key
}

// Err returns extraction or validation error, if any.
func (f Field[T]) Err() error {
	return f.err
}

// Defaulted reports whether key was missing and default value is used.
func (f Field[T]) Defaulted() bool {
	return f.defaulted
}

// Check applies rules in order, stopping at first violation.
//
// Rules are not applied to default values.
func (f Field[T]) Check(rules ...Rule[T]) Field[T] {
	if f.err != nil || f.defaulted {
		return f
	}
	for _, rule := range rules {
		if err := rule(f.key, f.value); err != nil {
			f.err = f.validationError(err)
			var zero T
			f.value = zero
			return f
		}
	}
	return f
}

// Value returns extracted value or error.
func (f Field[T]) Value() (T, error) {
	if f.err != nil {
		var zero T
		return zero, f.err
	}
	return f.value, nil
}

// Into stores extracted value to dst. If field has error, dst is untouched.
func (f Field[T]) Into(dst *T) error {
	if f.err != nil {
		return f.err
	}
	*dst = f.value
	return nil
}
