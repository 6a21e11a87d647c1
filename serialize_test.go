package ucdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bysensa/ucdf"
)

func TestStringCanonicalOrder(t *testing.T) {
	// Input order is metadata, access, connection, type; the canonical
	// rendering is always type, connection, structure, access, metadata.
	doc, err := ucdf.Parse("m.owner=ops;a=rw;s.format=json;c.host=db;t=db.postgresql")
	require.NoError(t, err)

	assert.Equal(t, "t=db.postgresql;c.host=db;s.format=json;a=rw;m.owner=ops", doc.String())
}

func TestStringInsertionOrderWithinSections(t *testing.T) {
	doc := ucdf.New(ucdf.SourceType{Category: "db"}).
		WithConnection("zz", "1").
		WithConnection("aa", "2").
		WithMetadata("later", "x").
		WithMetadata("earlier", "y")

	assert.Equal(t, "t=db;c.zz=1;c.aa=2;m.later=x;m.earlier=y", doc.String())
}

func TestStringEscapes(t *testing.T) {
	doc := ucdf.New(ucdf.SourceType{Category: "file"}).
		WithConnection("path", "/a;b").
		WithConnection("expr", "x=y").
		WithConnection("dir", `C:\data`)

	assert.Equal(t, `t=file;c.path=/a\;b;c.expr=x\=y;c.dir=C:\\data`, doc.String())
}

func roundTripDocs() []ucdf.Doc {
	return []ucdf.Doc{
		ucdf.New(ucdf.SourceType{Category: "file", Subtype: "csv"}).
			WithConnection("path", "/data/users.csv").
			WithFields([]ucdf.Field{{Name: "id", Type: "int"}, {Name: "name", Type: "str"}}).
			WithAccessMode(ucdf.AccessRead),
		ucdf.New(ucdf.SourceType{Category: "db", Subtype: "postgresql"}).
			WithConnection("host", "db.prod").
			WithConnection("user", "readonly").
			WithConnection("db", "sales").
			WithAccessMode(ucdf.AccessReadWrite).
			WithMetadata("desc", "Sales database"),
		ucdf.New(ucdf.SourceType{Category: "api", Subtype: "rest"}).
			WithConnection("url", "https://api.example.com").
			WithConnection("params", "limit=100").
			WithEndpoints([]ucdf.Endpoint{{Path: "/users", Method: "GET"}}),
		// No subtype, no access mode, awkward characters.
		ucdf.New(ucdf.SourceType{Category: "queue"}).
			WithConnection("path", "/a;b").
			WithMetadata("note", `semi;colon=and\backslash`),
		// Source type only.
		ucdf.New(ucdf.SourceType{Category: "file"}),
	}
}

func TestRoundTrip(t *testing.T) {
	for _, doc := range roundTripDocs() {
		parsed, err := ucdf.Parse(doc.String())
		require.NoError(t, err, "input %q", doc.String())
		assert.True(t, doc.Equal(parsed), "round trip of %q gave %q", doc.String(), parsed.String())
	}
}

func TestSerializeIdempotent(t *testing.T) {
	for _, doc := range roundTripDocs() {
		first := doc.String()
		parsed, err := ucdf.Parse(first)
		require.NoError(t, err)
		assert.Equal(t, first, parsed.String())
	}
}

func TestEscapingRoundTrip(t *testing.T) {
	doc := ucdf.New(ucdf.SourceType{Category: "file"}).
		WithConnection("path", "/a;b")

	parsed, err := ucdf.Parse(doc.String())
	require.NoError(t, err)

	path, ok := parsed.Connection().Get("path")
	require.True(t, ok)
	assert.Equal(t, "/a;b", path)
}

func TestTextMarshalerRoundTrip(t *testing.T) {
	doc := ucdf.New(ucdf.SourceType{Category: "db", Subtype: "mysql"}).
		WithConnection("host", "localhost")

	text, err := doc.MarshalText()
	require.NoError(t, err)

	var decoded ucdf.Doc
	require.NoError(t, decoded.UnmarshalText(text))
	assert.True(t, doc.Equal(decoded))

	var bad ucdf.Doc
	assert.Error(t, bad.UnmarshalText([]byte("a=rw")))
}
