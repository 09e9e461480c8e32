package validjson_test

import (
	"fmt"

	"github.com/tdakkota/validjson"
)

type Limits struct {
	Workers int
	Ratio   float64
}

func (l *Limits) BindJSON(b *validjson.Binder) error {
	if err := validjson.Optional(b, "workers", validjson.Int, 4).
		Check(validjson.Range(1, 64)).
		Into(&l.Workers); err != nil {
		return err
	}
	return validjson.Required(b, "ratio", validjson.Float).
		Check(validjson.Range(0.0, 1.0)).
		Into(&l.Ratio)
}

type Config struct {
	Name   string
	Level  string
	Limits Limits
	Hosts  []string
}

func (c *Config) BindJSON(b *validjson.Binder) error {
	if err := validjson.OptionalString(b, "name", "No name provided").Into(&c.Name); err != nil {
		return err
	}
	if err := validjson.Required(b, "level", validjson.String).
		Check(validjson.MemberOf("debug", "info", "warn")).
		Into(&c.Level); err != nil {
		return err
	}
	if err := validjson.Required(b, "limits", validjson.Object[Limits]()).Into(&c.Limits); err != nil {
		return err
	}
	return validjson.Required(b, "hosts", validjson.SliceOf(validjson.String)).Into(&c.Hosts)
}

func ExampleUnmarshal() {
	cfg, err := validjson.Unmarshal[Config]([]byte(`{
  "level": "info",
  "limits": {"ratio": 0.5},
  "hosts": ["a.example", "b.example"]
}`))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%+v\n", cfg)

	_, err = validjson.Unmarshal[Config]([]byte(`{
  "level": "info",
  "limits": {"ratio": 1.5},
  "hosts": []
}`))
	fmt.Println(err)

	_, err = validjson.Unmarshal[Config]([]byte(`{"level": "trace"}`))
	fmt.Println(err)
	// Output:
	// {Name:No name provided Level:info Limits:{Workers:4 Ratio:0.5} Hosts:[a.example b.example]}
	// In JSON data, value for key "ratio" is outside range 0 to 1
	// In JSON data, value for key "level" must be one of: debug info warn
}
