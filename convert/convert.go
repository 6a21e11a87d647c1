// Package convert maps UCDF documents to and from other connection
// notations: JDBC URLs, generic URLs, and MongoDB URIs.
//
// Conversions are lossy by nature; they translate the connection surface of
// a document, not its structure or metadata. The ucdf→x directions require
// a matching source category and report [ErrNotDatabase] or [ErrNotAPI]
// otherwise.
package convert

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bysensa/ucdf"
)

var (
	// ErrNotDatabase reports a ucdf→JDBC conversion of a document whose
	// source category is not "db".
	ErrNotDatabase = errors.New("source type is not a database")
	// ErrNotAPI reports a ucdf→URL conversion of a document whose source
	// category is not "api".
	ErrNotAPI = errors.New("source type is not an api")
)

// FromJDBC converts a jdbc:<engine>://host:port/db?k=v URL into a db.<engine>
// document. The user and password query parameters become connection keys of
// the same name; any other query parameter is kept under params.<key>.
// Database connections are assumed read-write.
func FromJDBC(jdbcURL string) (ucdf.Doc, error) {
	rest, found := strings.CutPrefix(jdbcURL, "jdbc:")
	if !found {
		return ucdf.Doc{}, fmt.Errorf("invalid JDBC URL %q: missing jdbc: prefix", jdbcURL)
	}
	u, err := url.Parse(rest)
	if err != nil {
		return ucdf.Doc{}, fmt.Errorf("invalid JDBC URL %q: %w", jdbcURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return ucdf.Doc{}, fmt.Errorf("invalid JDBC URL %q: missing engine or host", jdbcURL)
	}

	doc := ucdf.New(ucdf.SourceType{Category: "db", Subtype: u.Scheme}).
		WithConnection("host", u.Hostname())
	if port := u.Port(); port != "" {
		doc = doc.WithConnection("port", port)
	}
	if db := strings.TrimPrefix(u.Path, "/"); db != "" {
		doc = doc.WithConnection("db", db)
	}
	for _, param := range strings.Split(u.RawQuery, "&") {
		if param == "" {
			continue
		}
		key, value, found := strings.Cut(param, "=")
		if !found {
			continue
		}
		switch key {
		case "user", "password":
			doc = doc.WithConnection(key, value)
		default:
			doc = doc.WithConnection("params."+key, value)
		}
	}
	return doc.WithAccessMode(ucdf.AccessReadWrite), nil
}

// ToJDBC renders a db.* document as a JDBC URL. User and password
// connection parameters become query parameters.
func ToJDBC(doc ucdf.Doc) (string, error) {
	if doc.SourceType().Category != "db" {
		return "", fmt.Errorf("%w: %s", ErrNotDatabase, doc.SourceType())
	}

	conn := doc.Connection()
	host, _ := conn.Get("host")
	if host == "" {
		host = "localhost"
	}

	var b strings.Builder
	b.WriteString("jdbc:")
	b.WriteString(doc.SourceType().Subtype)
	b.WriteString("://")
	b.WriteString(host)
	if port, ok := conn.Get("port"); ok {
		b.WriteString(":" + port)
	}
	if db, ok := conn.Get("db"); ok {
		b.WriteString("/" + db)
	}

	var query []string
	if user, ok := conn.Get("user"); ok {
		query = append(query, "user="+user)
	}
	if password, ok := conn.Get("password"); ok {
		query = append(query, "password="+password)
	}
	for key, value := range conn.All() {
		if param, found := strings.CutPrefix(key, "params."); found {
			query = append(query, param+"="+value)
		}
	}
	if len(query) > 0 {
		b.WriteString("?" + strings.Join(query, "&"))
	}
	return b.String(), nil
}

// FromURL converts a generic URL into an api.rest document: the scheme and
// host become c.url, the path c.path, and the query c.params with '&'
// replaced by ','. APIs are assumed read-only.
func FromURL(rawURL string) (ucdf.Doc, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ucdf.Doc{}, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return ucdf.Doc{}, fmt.Errorf("invalid URL %q: missing scheme or host", rawURL)
	}

	doc := ucdf.New(ucdf.SourceType{Category: "api", Subtype: "rest"}).
		WithConnection("url", u.Scheme+"://"+u.Host)
	if u.Path != "" {
		doc = doc.WithConnection("path", u.Path)
	}
	if u.RawQuery != "" {
		doc = doc.WithConnection("params", strings.ReplaceAll(u.RawQuery, "&", ","))
	}
	return doc.WithAccessMode(ucdf.AccessRead), nil
}

// ToURL renders an api.* document back into a URL from its url, path and
// params connection parameters.
func ToURL(doc ucdf.Doc) (string, error) {
	if doc.SourceType().Category != "api" {
		return "", fmt.Errorf("%w: %s", ErrNotAPI, doc.SourceType())
	}

	conn := doc.Connection()
	base, _ := conn.Get("url")
	path, _ := conn.Get("path")
	params, _ := conn.Get("params")
	if params == "" {
		return base + path, nil
	}
	return base + path + "?" + strings.ReplaceAll(params, ",", "&"), nil
}

// FromMongoURI converts a mongodb:// URI into a db.mongodb document. The
// full URI is kept under c.uri; the database name, when present, is also
// extracted into c.db.
func FromMongoURI(uri string) (ucdf.Doc, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return ucdf.Doc{}, fmt.Errorf("invalid MongoDB URI %q: %w", uri, err)
	}
	if u.Scheme != "mongodb" && u.Scheme != "mongodb+srv" {
		return ucdf.Doc{}, fmt.Errorf("invalid MongoDB URI %q: scheme is not mongodb", uri)
	}

	doc := ucdf.New(ucdf.SourceType{Category: "db", Subtype: "mongodb"}).
		WithConnection("uri", uri)
	if db := strings.TrimPrefix(u.Path, "/"); db != "" {
		doc = doc.WithConnection("db", db)
	}
	return doc.
		WithAccessMode(ucdf.AccessReadWrite).
		WithMetadata("source", "mongodb_uri"), nil
}
