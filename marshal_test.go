package ucdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bysensa/ucdf"
)

type pgSource struct {
	Type     ucdf.SourceType `ucdf:"t"`
	Host     string          `ucdf:"c.host"`
	Port     int             `ucdf:"c.port"`
	Database string          `ucdf:"c.db,omitempty"`
	Format   string          `ucdf:"s.format,omitempty"`
	Access   ucdf.AccessMode `ucdf:"a"`
	Owner    string          `ucdf:"m.owner,omitempty"`
}

func TestMarshal(t *testing.T) {
	src := pgSource{
		Type:     ucdf.SourceType{Category: "db", Subtype: "postgresql"},
		Host:     "localhost",
		Port:     5432,
		Database: "sales",
		Access:   ucdf.AccessReadWrite,
		Owner:    "ops",
	}

	text, err := ucdf.Marshal(src)
	require.NoError(t, err)
	assert.Equal(t, "t=db.postgresql;c.host=localhost;c.port=5432;c.db=sales;a=rw;m.owner=ops", text)
}

func TestMarshalOmitEmpty(t *testing.T) {
	src := pgSource{
		Type: ucdf.SourceType{Category: "db", Subtype: "postgresql"},
		Host: "localhost",
	}

	text, err := ucdf.Marshal(src)
	require.NoError(t, err)
	// Database, Format and Owner are zero and omitted; Port is not tagged
	// omitempty so it serializes as 0; the zero AccessMode means no 'a'
	// section at all.
	assert.Equal(t, "t=db.postgresql;c.host=localhost;c.port=0", text)
}

func TestMarshalTagFallbacks(t *testing.T) {
	src := struct {
		Type      string `ucdf:"t"`
		Note      string `json:"note"`
		CreatedBy string
		Hidden    string `ucdf:"-"`
		hidden    string
	}{
		Type:      "file.csv",
		Note:      "hello",
		CreatedBy: "alice",
		Hidden:    "nope",
		hidden:    "nope",
	}

	text, err := ucdf.Marshal(src)
	require.NoError(t, err)
	// Untagged fields land in metadata: the json tag name, then the
	// snake_case field name.
	assert.Equal(t, "t=file.csv;m.note=hello;m.created_by=alice", text)
}

func TestMarshalErrors(t *testing.T) {
	// No field bound to "t".
	_, err := ucdf.Marshal(struct {
		Host string `ucdf:"c.host"`
	}{Host: "x"})
	assert.ErrorContains(t, err, "no source type")

	// Nested structs have no single-line representation.
	_, err = ucdf.Marshal(struct {
		Type string `ucdf:"t"`
		Sub  struct{ A string } `ucdf:"c.sub"`
	}{Type: "x"})
	assert.ErrorContains(t, err, "unsupported type")

	// Not a struct at all.
	_, err = ucdf.Marshal("t=x")
	assert.ErrorContains(t, err, "need a struct")

	// Invalid source type in a string-typed t field.
	_, err = ucdf.Marshal(struct {
		Type string `ucdf:"t"`
	}{Type: ".csv"})
	assert.ErrorIs(t, err, ucdf.ErrInvalidSourceType)
}

func TestUnmarshal(t *testing.T) {
	var src pgSource
	err := ucdf.Unmarshal("t=db.postgresql;c.host=db.prod;c.port=6432;c.db=sales;a=r;m.owner=ops", &src)
	require.NoError(t, err)

	assert.Equal(t, ucdf.SourceType{Category: "db", Subtype: "postgresql"}, src.Type)
	assert.Equal(t, "db.prod", src.Host)
	assert.Equal(t, 6432, src.Port)
	assert.Equal(t, "sales", src.Database)
	assert.Equal(t, ucdf.AccessRead, src.Access)
	assert.Equal(t, "ops", src.Owner)
}

func TestUnmarshalPartial(t *testing.T) {
	src := pgSource{Port: 5432, Owner: "unchanged"}
	err := ucdf.Unmarshal("t=db;c.host=x", &src)
	require.NoError(t, err)

	// Sections missing from the document leave the field as it was.
	assert.Equal(t, "x", src.Host)
	assert.Equal(t, 5432, src.Port)
	assert.Equal(t, "unchanged", src.Owner)
	assert.Equal(t, ucdf.AccessUnspecified, src.Access)
}

func TestUnmarshalErrors(t *testing.T) {
	var src pgSource
	assert.Error(t, ucdf.Unmarshal("a=rw", &src))

	err := ucdf.Unmarshal("t=db;c.port=notanumber", &src)
	assert.ErrorContains(t, err, "Port")

	assert.Error(t, ucdf.Unmarshal("t=db", src))
	assert.Error(t, ucdf.Unmarshal("t=db", nil))
}

func TestMarshalRoundTrip(t *testing.T) {
	src := pgSource{
		Type:     ucdf.SourceType{Category: "db", Subtype: "postgresql"},
		Host:     "localhost",
		Port:     5432,
		Database: "app",
		Format:   "rows",
		Access:   ucdf.AccessWrite,
		Owner:    "data-eng",
	}

	text, err := ucdf.Marshal(src)
	require.NoError(t, err)

	var decoded pgSource
	require.NoError(t, ucdf.Unmarshal(text, &decoded))
	assert.Equal(t, src, decoded)
}

func TestMarshalDoc(t *testing.T) {
	doc, err := ucdf.MarshalDoc(pgSource{
		Type: ucdf.SourceType{Category: "db", Subtype: "postgresql"},
		Host: "localhost",
	})
	require.NoError(t, err)

	host, ok := doc.Connection().Get("host")
	require.True(t, ok)
	assert.Equal(t, "localhost", host)

	// The produced document is canonical: it parses back unchanged.
	parsed, err := ucdf.Parse(doc.String())
	require.NoError(t, err)
	assert.True(t, doc.Equal(parsed))
}
