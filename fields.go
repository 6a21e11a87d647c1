package ucdf

import (
	"fmt"
	"strconv"
	"strings"
)

// A Field is one named, typed element of a source's schema, as found in the
// s.fields structure value. Type is a free-form tag such as int, str or
// json; Extra is an optional descriptor such as a length or format.
type Field struct {
	Name  string
	Type  string
	Extra string
}

// ParseField decodes a single name:type or name:type:extra entry.
func ParseField(s string) (Field, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Field{}, fmt.Errorf("%w: %q", ErrInvalidField, s)
	}
	field := Field{Name: parts[0], Type: parts[1]}
	if len(parts) == 3 {
		field.Extra = parts[2]
	}
	return field, nil
}

func (f Field) String() string {
	if f.Extra != "" {
		return f.Name + ":" + f.Type + ":" + f.Extra
	}
	return f.Name + ":" + f.Type
}

// MarshalText implements [encoding.TextMarshaler].
func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Field) UnmarshalText(data []byte) error {
	parsed, err := ParseField(string(data))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFields decodes a comma-joined field list, the value grammar of
// s.fields.
func ParseFields(s string) ([]Field, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	fields := make([]Field, 0, len(parts))
	for _, part := range parts {
		field, err := ParseField(part)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// FormatFields renders a field list in the comma-joined s.fields grammar.
func FormatFields(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, ",")
}

// An Endpoint is one path:method entry of the s.endpoints structure value,
// used by documents describing API sources.
type Endpoint struct {
	Path   string
	Method string
}

// ParseEndpoint decodes a single path:method entry.
func ParseEndpoint(s string) (Endpoint, error) {
	path, method, found := strings.Cut(s, ":")
	if !found || path == "" || method == "" {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrInvalidEndpoint, s)
	}
	return Endpoint{Path: path, Method: method}, nil
}

func (e Endpoint) String() string {
	return e.Path + ":" + e.Method
}

// ParseEndpoints decodes a comma-joined endpoint list.
func ParseEndpoints(s string) ([]Endpoint, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	endpoints := make([]Endpoint, 0, len(parts))
	for _, part := range parts {
		endpoint, err := ParseEndpoint(part)
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, endpoint)
	}
	return endpoints, nil
}

// FormatEndpoints renders an endpoint list in the comma-joined s.endpoints
// grammar.
func FormatEndpoints(endpoints []Endpoint) string {
	parts := make([]string, len(endpoints))
	for i, e := range endpoints {
		parts[i] = e.String()
	}
	return strings.Join(parts, ",")
}

// Fields parses the document's s.fields value, if present. A document with
// no fields entry yields nil and no error.
func (d Doc) Fields() ([]Field, error) {
	raw, ok := d.structure.Get("fields")
	if !ok {
		return nil, nil
	}
	return ParseFields(raw)
}

// Endpoints parses the document's s.endpoints value, if present.
func (d Doc) Endpoints() ([]Endpoint, error) {
	raw, ok := d.structure.Get("endpoints")
	if !ok {
		return nil, nil
	}
	return ParseEndpoints(raw)
}

// Format returns the document's s.format value, if present.
func (d Doc) Format() (string, bool) {
	return d.structure.Get("format")
}

// WithFields returns a copy of d with the field list serialized into the
// s.fields structure entry.
func (d Doc) WithFields(fields []Field) Doc {
	return d.WithStructure("fields", FormatFields(fields))
}

// WithEndpoints returns a copy of d with the endpoint list serialized into
// the s.endpoints structure entry.
func (d Doc) WithEndpoints(endpoints []Endpoint) Doc {
	return d.WithStructure("endpoints", FormatEndpoints(endpoints))
}

// WithFormat returns a copy of d with the s.format structure entry set.
func (d Doc) WithFormat(format string) Doc {
	return d.WithStructure("format", format)
}

// ValueKind tags a [Value] decoded against a field's type tag.
type ValueKind int8

const (
	StringValue = ValueKind(iota)
	IntValue
	FloatValue
	BoolValue
	JSONValue
	DateValue
	DateTimeValue
	CustomValue
)

func (k ValueKind) String() string {
	switch k {
	case StringValue:
		return "str"
	case IntValue:
		return "int"
	case FloatValue:
		return "float"
	case BoolValue:
		return "bool"
	case JSONValue:
		return "json"
	case DateValue:
		return "date"
	case DateTimeValue:
		return "datetime"
	case CustomValue:
		return "custom"
	default:
		panic("unknown ValueKind")
	}
}

// A Value is a raw string decoded against a field's type tag. Raw always
// holds the original text; Int, Float and Bool are populated for the
// numeric and boolean kinds. Date, datetime and json values are tagged but
// kept textual.
type Value struct {
	Kind  ValueKind
	Raw   string
	Int   int64
	Float float64
	Bool  bool
}

// ParseValue decodes raw against a field's type tag. Unrecognized tags
// yield a [CustomValue] rather than an error; only int, float and bool
// values can fail to decode.
func ParseValue(raw, typeTag string) (Value, error) {
	switch typeTag {
	case "str":
		return Value{Kind: StringValue, Raw: raw}, nil
	case "int":
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse %q as int: %w", raw, err)
		}
		return Value{Kind: IntValue, Raw: raw, Int: i}, nil
	case "float":
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse %q as float: %w", raw, err)
		}
		return Value{Kind: FloatValue, Raw: raw, Float: f}, nil
	case "bool":
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, fmt.Errorf("parse %q as bool: %w", raw, err)
		}
		return Value{Kind: BoolValue, Raw: raw, Bool: b}, nil
	case "json":
		return Value{Kind: JSONValue, Raw: raw}, nil
	case "date":
		return Value{Kind: DateValue, Raw: raw}, nil
	case "datetime":
		return Value{Kind: DateTimeValue, Raw: raw}, nil
	default:
		return Value{Kind: CustomValue, Raw: raw}, nil
	}
}

func (v Value) String() string {
	return v.Raw
}
