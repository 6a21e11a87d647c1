// Package ucdf implements [UCDF] parsing and serializing.
//
// UCDF (Unified Compact Data Format) describes a data source in a single
// line: its type, connection parameters, schema hints, access mode, and
// metadata, as a semicolon-delimited sequence of prefixed key=value sections.
//
//	t=db.postgresql;c.host=db.prod;c.user=readonly;s.fields=id:int,amount:float;a=r
//
// Section prefixes are fixed: t is the source type (category plus optional
// subtype), c. holds connection parameters, s. structure descriptors, a the
// access mode (r, w or rw), and m. free-form metadata. Literal ';', '=' and
// '\' inside a key or value are written as \;, \= and \\.
//
// [Parse] converts text into a [Doc]; the Doc's String method renders the
// canonical form back. Parsing accepts sections in any order, but the
// canonical rendering is always type, connection, structure, access,
// metadata, with c./s./m. keys in insertion order, so that
// Parse(d.String()) reproduces d exactly.
//
// Docs are immutable values. Build one with [New] and the chainable With
// methods:
//
//	doc := ucdf.New(ucdf.SourceType{Category: "file", Subtype: "csv"}).
//		WithConnection("path", "/data/users.csv").
//		WithFields([]ucdf.Field{{Name: "id", Type: "int"}, {Name: "name", Type: "str"}}).
//		WithAccessMode(ucdf.AccessRead)
//
// Like the builtin json package, ucdf can also convert between Go structs
// and documents. Struct fields are bound to sections with a `ucdf` tag:
//
//	type Source struct {
//		Type   ucdf.SourceType `ucdf:"t"`
//		Host   string          `ucdf:"c.host"`
//		Port   int             `ucdf:"c.port"`
//		Access ucdf.AccessMode `ucdf:"a"`
//		Owner  string          `ucdf:"m.owner,omitempty"`
//	}
//
// See [Marshal] and [Unmarshal].
//
// [UCDF]: https://github.com/bysensa/ucdf
package ucdf
