// Package validjson decodes JSON documents into typed Go values,
// checking presence, JSON types and value constraints on the way.
//
// A schema type implements Schema and pulls its fields from a Binder:
//
//	func (c *Config) BindJSON(b *validjson.Binder) error {
//		if err := validjson.Required(b, "port", validjson.Int).
//			Check(validjson.Range(1, 65535)).
//			Into(&c.Port); err != nil {
//			return err
//		}
//		return validjson.OptionalString(b, "host", "localhost").Into(&c.Host)
//	}
//
// Decoding stops at the first error. Every diagnostic names the document
// it came from, like `In JSON file "config.json", value for key "port" is
// outside range 1 to 65535`.
package validjson
