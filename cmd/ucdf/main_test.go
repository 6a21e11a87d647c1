package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "parse", "-o", "text", "t=file.csv;c.path=/data/users.csv;s.fields=id:int,name:str;a=r")
	require.NoError(t, err)

	assert.Contains(t, out, "Category: file")
	assert.Contains(t, out, "Subtype: csv")
	assert.Contains(t, out, "path: /data/users.csv")
	assert.Contains(t, out, "id: int")
	assert.Contains(t, out, "read-only (r)")
}

func TestParseCommandMasksSecrets(t *testing.T) {
	out, err := run(t, "parse", "-o", "text", "t=db;c.user=root;c.password=hunter2")
	require.NoError(t, err)

	assert.Contains(t, out, "user: root")
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "password: *******")
}

func TestParseCommandJSON(t *testing.T) {
	out, err := run(t, "parse", "-o", "json", "t=file.csv;c.path=/x;a=r")
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "file.csv", view["type"])
	assert.Equal(t, "r", view["access"])
}

func TestParseCommandYAML(t *testing.T) {
	out, err := run(t, "parse", "-o", "yaml", "t=file.csv;m.desc=users")
	require.NoError(t, err)

	assert.Contains(t, out, "type: file.csv")
	assert.Contains(t, out, "desc: users")
}

func TestParseCommandInvalid(t *testing.T) {
	_, err := run(t, "parse", "-o", "text", "a=rw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required type section")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "t=db.postgresql;c.host=localhost;a=rw")
	require.NoError(t, err)
	assert.Contains(t, out, "valid")

	_, err = run(t, "validate", "t=x;a=z")
	assert.Error(t, err)
}

func TestCanonCommand(t *testing.T) {
	out, err := run(t, "canon", "a=r;m.x=1;t=file.csv;c.path=/x")
	require.NoError(t, err)
	assert.Equal(t, "t=file.csv;c.path=/x;a=r;m.x=1", strings.TrimSpace(out))
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "convert", "jdbc", "ucdf", "jdbc:postgresql://localhost:5432/mydb?user=postgres")
	require.NoError(t, err)
	assert.Contains(t, out, "t=db.postgresql")
	assert.Contains(t, out, "c.host=localhost")

	out, err = run(t, "convert", "ucdf", "jdbc", "t=db.mysql;c.host=db.internal;c.db=app")
	require.NoError(t, err)
	assert.Equal(t, "jdbc:mysql://db.internal/app", strings.TrimSpace(out))

	_, err = run(t, "convert", "csv", "xml", "whatever")
	assert.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	for _, kind := range []string{"csv", "postgresql", "rest", "kafka", "mongodb"} {
		out, err := run(t, "generate", kind)
		require.NoError(t, err, "kind %s", kind)

		// Every sample must itself be a valid descriptor.
		_, err = run(t, "validate", strings.TrimSpace(out))
		assert.NoError(t, err, "kind %s", kind)
	}

	_, err := run(t, "generate", "carrier-pigeon")
	assert.Error(t, err)
}
