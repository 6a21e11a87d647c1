package ucdf

import (
	"iter"
	"strings"
)

// A SourceType categorizes the data source a document describes, e.g.
// file.csv or db.postgresql. Subtype may be empty.
type SourceType struct {
	Category string
	Subtype  string
}

// ParseSourceType splits a type value on its first '.' into category and
// subtype. An empty category is an error.
func ParseSourceType(s string) (SourceType, error) {
	category, subtype, _ := strings.Cut(s, ".")
	if category == "" {
		return SourceType{}, parseErr(ErrInvalidSourceType, s)
	}
	return SourceType{Category: category, Subtype: subtype}, nil
}

func (t SourceType) String() string {
	if t.Subtype == "" {
		return t.Category
	}
	return t.Category + "." + t.Subtype
}

// MarshalText implements [encoding.TextMarshaler].
func (t SourceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *SourceType) UnmarshalText(data []byte) error {
	parsed, err := ParseSourceType(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// AccessMode is the read/write capability tag of a source. The zero value
// means the document carries no 'a' section, which is distinct from any
// explicit mode.
type AccessMode int8

const (
	AccessUnspecified = AccessMode(iota)
	AccessRead
	AccessWrite
	AccessReadWrite
)

// ParseAccessMode decodes the fixed r/w/rw vocabulary. Anything else,
// including the empty string, is an error.
func ParseAccessMode(s string) (AccessMode, error) {
	switch s {
	case "r":
		return AccessRead, nil
	case "w":
		return AccessWrite, nil
	case "rw":
		return AccessReadWrite, nil
	default:
		return AccessUnspecified, parseErr(ErrInvalidAccessMode, s)
	}
}

func (m AccessMode) String() string {
	switch m {
	case AccessRead:
		return "r"
	case AccessWrite:
		return "w"
	case AccessReadWrite:
		return "rw"
	default:
		return ""
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (m AccessMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *AccessMode) UnmarshalText(data []byte) error {
	parsed, err := ParseAccessMode(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

type pair struct {
	key, value string
}

// Params is an immutable string mapping that preserves insertion order.
// Keys are unique; the ordered snapshot is what makes serialization
// deterministic.
type Params struct {
	pairs []pair
}

// Get returns the value for key and whether it is present.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p.pairs {
		if kv.key == key {
			return kv.value, true
		}
	}
	return "", false
}

// Len returns the number of entries.
func (p Params) Len() int {
	return len(p.pairs)
}

// Keys returns the keys in insertion order.
func (p Params) Keys() []string {
	keys := make([]string, len(p.pairs))
	for i, kv := range p.pairs {
		keys[i] = kv.key
	}
	return keys
}

// All iterates over entries in insertion order.
func (p Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, kv := range p.pairs {
			if !yield(kv.key, kv.value) {
				return
			}
		}
	}
}

// set returns a copy of p with key set to value. An existing key keeps its
// position (last write wins); a new key is appended. The receiver is never
// mutated so Doc values can be branched freely.
func (p Params) set(key, value string) Params {
	next := make([]pair, len(p.pairs), len(p.pairs)+1)
	copy(next, p.pairs)
	for i, kv := range next {
		if kv.key == key {
			next[i].value = value
			return Params{pairs: next}
		}
	}
	return Params{pairs: append(next, pair{key: key, value: value})}
}

// A Doc is a parsed or built UCDF document. The zero value is not valid; a
// Doc obtained from [Parse] or [New] always carries a source type. Docs are
// immutable: the With methods return updated copies.
type Doc struct {
	sourceType SourceType
	connection Params
	structure  Params
	access     AccessMode
	metadata   Params
}

// New returns a document of the given source type with no other sections.
func New(sourceType SourceType) Doc {
	return Doc{sourceType: sourceType}
}

// SourceType returns the document's source type.
func (d Doc) SourceType() SourceType {
	return d.sourceType
}

// AccessMode returns the document's access mode, or [AccessUnspecified] if
// the document has no 'a' section.
func (d Doc) AccessMode() AccessMode {
	return d.access
}

// Connection returns the ordered connection parameters.
func (d Doc) Connection() Params {
	return d.connection
}

// Structure returns the ordered structure descriptors as raw strings.
// Use [Doc.Fields], [Doc.Endpoints] or [Doc.Format] for the decoded forms.
func (d Doc) Structure() Params {
	return d.structure
}

// Metadata returns the ordered metadata entries.
func (d Doc) Metadata() Params {
	return d.metadata
}

// WithSourceType returns a copy of d with the source type replaced.
func (d Doc) WithSourceType(t SourceType) Doc {
	d.sourceType = t
	return d
}

// WithConnection returns a copy of d with the connection parameter set.
func (d Doc) WithConnection(key, value string) Doc {
	d.connection = d.connection.set(key, value)
	return d
}

// WithStructure returns a copy of d with the structure descriptor set.
func (d Doc) WithStructure(key, value string) Doc {
	d.structure = d.structure.set(key, value)
	return d
}

// WithAccessMode returns a copy of d with the access mode set.
func (d Doc) WithAccessMode(mode AccessMode) Doc {
	d.access = mode
	return d
}

// WithMetadata returns a copy of d with the metadata entry set.
func (d Doc) WithMetadata(key, value string) Doc {
	d.metadata = d.metadata.set(key, value)
	return d
}

// Equal reports whether two documents are structurally equal, including
// the insertion order of their sections.
func (d Doc) Equal(other Doc) bool {
	return d.sourceType == other.sourceType &&
		d.access == other.access &&
		paramsEqual(d.connection, other.connection) &&
		paramsEqual(d.structure, other.structure) &&
		paramsEqual(d.metadata, other.metadata)
}

func paramsEqual(a, b Params) bool {
	if len(a.pairs) != len(b.pairs) {
		return false
	}
	for i := range a.pairs {
		if a.pairs[i] != b.pairs[i] {
			return false
		}
	}
	return true
}
