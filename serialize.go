package ucdf

import "strings"

// String renders the canonical single-line form of the document: the type
// section, connection keys in insertion order, structure keys, the access
// mode if set, and metadata keys. Keys and values are escaped, so
// Parse(d.String()) reproduces d for any document built through [New] or
// [Parse]. String is total; a document whose source type was zeroed by
// direct field access renders, but will not parse back.
func (d Doc) String() string {
	parts := make([]string, 0, 2+d.connection.Len()+d.structure.Len()+d.metadata.Len())
	parts = append(parts, "t="+escapeText(d.sourceType.String()))
	for key, value := range d.connection.All() {
		parts = append(parts, "c."+escapeText(key)+"="+escapeText(value))
	}
	for key, value := range d.structure.All() {
		parts = append(parts, "s."+escapeText(key)+"="+escapeText(value))
	}
	if d.access != AccessUnspecified {
		parts = append(parts, "a="+d.access.String())
	}
	for key, value := range d.metadata.All() {
		parts = append(parts, "m."+escapeText(key)+"="+escapeText(value))
	}
	return strings.Join(parts, ";")
}

// MarshalText implements [encoding.TextMarshaler].
func (d Doc) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Doc) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
