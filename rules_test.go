package validjson

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func checkInt(data string, rules ...Rule[int]) (int, error) {
	doc, err := ParseString(data)
	if err != nil {
		return 0, err
	}
	return Required(doc.Binder(), "testInt", Int).Check(rules...).Value()
}

func TestRules(t *testing.T) {
	tests := []struct {
		data    string
		rules   []Rule[int]
		wantErr string
	}{
		{`{"testInt": 9}`, []Rule[int]{AboveMin(10)}, `In JSON data, value for key "testInt" is below minimum of 10`},
		{`{"testInt": 11}`, []Rule[int]{AboveMin(10)}, ``},
		{`{"testInt": 10}`, []Rule[int]{Min(10)}, ``},
		{`{"testInt": 11}`, []Rule[int]{BelowMax(10)}, `In JSON data, value for key "testInt" is above maximum of 10`},
		{`{"testInt": 9}`, []Rule[int]{BelowMax(10)}, ``},
		{`{"testInt": 10}`, []Rule[int]{Max(10)}, ``},
		{`{"testInt": 11}`, []Rule[int]{WithinRange(10, 20)}, ``},
		{`{"testInt": 9}`, []Rule[int]{WithinRange(10, 20)}, `In JSON data, value for key "testInt" is outside range 10 to 20`},
		{`{"testInt": 21}`, []Rule[int]{WithinRange(10, 20)}, `In JSON data, value for key "testInt" is outside range 10 to 20`},
		{`{"testInt": 20}`, []Rule[int]{Range(10, 20)}, ``},
		{`{"testInt": 2}`, []Rule[int]{MemberOf(1, 2, 3)}, ``},
		{`{"testInt": 4}`, []Rule[int]{MemberOf(1, 2, 3)}, `In JSON data, value for key "testInt" must be one of: 1 2 3`},
		// Rules are applied in order.
		{`{"testInt": 4}`, []Rule[int]{Min(5), MemberOf(1)}, `In JSON data, value for key "testInt" is below minimum of 5`},
		{`{"testInt": 6}`, []Rule[int]{Min(5), MemberOf(1)}, `In JSON data, value for key "testInt" must be one of: 1`},
		// Type errors are not overwritten by rules.
		{`{"testInt": "x"}`, []Rule[int]{Min(5)}, `In JSON data, expected an integer value for key "testInt"`},
		{`{}`, []Rule[int]{Min(5)}, `In JSON data, required key "testInt" not found`},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			a := require.New(t)
			_, err := checkInt(tt.data, tt.rules...)
			if tt.wantErr == "" {
				a.NoError(err)
				return
			}
			a.EqualError(err, tt.wantErr)
		})
	}
}

func TestRulesFloat(t *testing.T) {
	a := require.New(t)
	doc, err := ParseString(`{"ratio": 0.25}`)
	a.NoError(err)

	v, err := Required(doc.Binder(), "ratio", Float).Check(Range(0.0, 1.0)).Value()
	a.NoError(err)
	a.Equal(0.25, v)

	_, err = Required(doc.Binder(), "ratio", Float).Check(Min(0.5)).Value()
	a.EqualError(err, `In JSON data, value for key "ratio" is below minimum of 0.5`)
}

func TestRulesString(t *testing.T) {
	tests := []struct {
		value   string
		rule    Rule[string]
		wantErr string
	}{
		{"debug", MemberOf("debug", "info"), ``},
		{"warn", MemberOf("debug", "info"), `In JSON data, value for key "s" must be one of: debug info`},
		{"abc", Pattern(regexp.MustCompile(`^[a-z]+$`)), ``},
		{"ab1", Pattern(regexp.MustCompile(`^[a-z]+$`)), `In JSON data, value for key "s" does not match pattern ^[a-z]+$`},
		{"🤡🤡", MaxLength(2), ``},
		{"🤡🤡🤡", MaxLength(2), `In JSON data, value for key "s" is longer than 2`},
		{"🤡", MinLength(2), `In JSON data, value for key "s" is shorter than 2`},
		{"", MinLength(0), ``},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			a := require.New(t)
			doc := NewDocument(NewObject(Member{Key: "s", Value: NewString(tt.value)}), "")

			v, err := Required(doc.Binder(), "s", String).Check(tt.rule).Value()
			if tt.wantErr == "" {
				a.NoError(err)
				a.Equal(tt.value, v)
				return
			}
			a.EqualError(err, tt.wantErr)
			a.Zero(v)
		})
	}
}

func TestFile(t *testing.T) {
	a := require.New(t)
	dir := t.TempDir()
	a.NoError(os.WriteFile(filepath.Join(dir, "exists.txt"), nil, 0o600))

	check := func(filename string, rule Rule[string]) error {
		doc := NewDocument(NewObject(Member{Key: "path", Value: NewString(filename)}), "")
		return Required(doc.Binder(), "path", String).Check(rule).Err()
	}

	a.NoError(check(filepath.Join(dir, "exists.txt"), File("")))
	a.NoError(check("exists.txt", File(dir)))
	a.NoError(check(".", File(dir)))

	missing := filepath.Join(dir, "missing.txt")
	a.EqualError(check("missing.txt", File(dir)),
		fmt.Sprintf(`In JSON data, filename value for key "path" does not exist: %s`, missing),
	)
}

func TestFileFS(t *testing.T) {
	a := require.New(t)
	fsys := fstest.MapFS{
		"conf/app.json": &fstest.MapFile{Data: []byte(`{}`)},
	}

	check := func(filename, prefix string) error {
		doc := NewDocument(NewObject(Member{Key: "path", Value: NewString(filename)}), "")
		return Required(doc.Binder(), "path", String).Check(FileFS(fsys, prefix)).Err()
	}

	a.NoError(check("app.json", "conf"))
	a.NoError(check("conf/app.json", ""))
	a.EqualError(check("other.json", "conf"),
		`In JSON data, filename value for key "path" does not exist: conf/other.json`,
	)
}
