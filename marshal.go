package ucdf

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// Marshal converts a Go struct to a canonical UCDF line.
//
// Struct fields are bound to sections with a `ucdf` tag naming the section:
// "t" for the source type, "a" for the access mode, and "c.<key>",
// "s.<key>" or "m.<key>" for connection, structure and metadata entries.
// Fields without a `ucdf` tag fall back to the `json` tag name, and finally
// to the snake_case field name, both as metadata keys. A tag of "-" skips
// the field, and the ",omitempty" option skips zero values.
//
// Exactly one field must be bound to "t". Field values may be strings,
// numbers, booleans, or any type implementing [encoding.TextMarshaler];
// the notation is a single line, so nested structs, maps and slices are
// not supported and return an error.
func Marshal(v any) (string, error) {
	doc, err := MarshalDoc(v)
	if err != nil {
		return "", err
	}
	return doc.String(), nil
}

// MarshalDoc is like [Marshal] but returns the [Doc] instead of its
// canonical rendering.
func MarshalDoc(v any) (Doc, error) {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return Doc{}, fmt.Errorf("ucdf: cannot marshal nil %s", val.Type())
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return Doc{}, fmt.Errorf("ucdf: cannot marshal %s, need a struct", val.Kind())
	}

	var doc Doc
	seenType := false
	for i := range val.Type().NumField() {
		field := val.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		target, omitempty := fieldTarget(field)
		if target == "-" {
			continue
		}
		fv := val.Field(i)
		if omitempty && fv.IsZero() {
			continue
		}

		switch {
		case target == "t":
			sourceType, err := sourceTypeOf(fv)
			if err != nil {
				return Doc{}, fmt.Errorf("ucdf: field %s: %w", field.Name, err)
			}
			doc.sourceType = sourceType
			seenType = true
		case target == "a":
			mode, err := accessModeOf(fv)
			if err != nil {
				return Doc{}, fmt.Errorf("ucdf: field %s: %w", field.Name, err)
			}
			doc.access = mode
		default:
			text, err := marshalScalar(fv)
			if err != nil {
				return Doc{}, fmt.Errorf("ucdf: field %s: %w", field.Name, err)
			}
			prefix, key, _ := strings.Cut(target, ".")
			switch prefix {
			case "c":
				doc.connection = doc.connection.set(key, text)
			case "s":
				doc.structure = doc.structure.set(key, text)
			case "m":
				doc.metadata = doc.metadata.set(key, text)
			default:
				return Doc{}, fmt.Errorf("ucdf: field %s: invalid section tag %q", field.Name, target)
			}
		}
	}

	if !seenType || doc.sourceType.Category == "" {
		return Doc{}, fmt.Errorf("ucdf: no source type: tag a field `ucdf:\"t\"`")
	}
	return doc, nil
}

// Unmarshal parses a UCDF line and assigns its sections into the tagged
// fields of v, which must be a non-nil pointer to a struct. Fields are
// bound the same way as in [Marshal]. Sections with no matching field are
// ignored; fields with no matching section keep their current value.
func Unmarshal(text string, v any) error {
	doc, err := Parse(text)
	if err != nil {
		return err
	}
	return UnmarshalDoc(doc, v)
}

// UnmarshalDoc is like [Unmarshal] but starts from an already parsed [Doc].
func UnmarshalDoc(doc Doc, v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return fmt.Errorf("ucdf: invalid target, must be a non-nil pointer")
	}
	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("ucdf: cannot unmarshal into %s, need a struct", val.Kind())
	}

	for i := range val.Type().NumField() {
		field := val.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		target, _ := fieldTarget(field)
		if target == "-" {
			continue
		}
		fv := val.Field(i)

		switch {
		case target == "t":
			if err := assignSourceType(fv, doc.sourceType); err != nil {
				return fmt.Errorf("ucdf: field %s: %w", field.Name, err)
			}
		case target == "a":
			if doc.access == AccessUnspecified {
				continue
			}
			if err := assignAccessMode(fv, doc.access); err != nil {
				return fmt.Errorf("ucdf: field %s: %w", field.Name, err)
			}
		default:
			prefix, key, _ := strings.Cut(target, ".")
			var params Params
			switch prefix {
			case "c":
				params = doc.connection
			case "s":
				params = doc.structure
			case "m":
				params = doc.metadata
			default:
				return fmt.Errorf("ucdf: field %s: invalid section tag %q", field.Name, target)
			}
			text, ok := params.Get(key)
			if !ok {
				continue
			}
			if err := setScalar(fv, text); err != nil {
				return fmt.Errorf("ucdf: field %s: %w", field.Name, err)
			}
		}
	}
	return nil
}

// fieldTarget resolves the section a struct field is bound to: the `ucdf`
// tag, then the `json` tag name as a metadata key, then the snake_case
// field name as a metadata key.
func fieldTarget(field reflect.StructField) (target string, omitempty bool) {
	if tag, ok := field.Tag.Lookup("ucdf"); ok {
		name, options, _ := strings.Cut(tag, ",")
		if name == "" {
			name = "m." + toSnakeCase(field.Name)
		}
		return name, strings.Contains(options, "omitempty")
	}
	if tag, ok := field.Tag.Lookup("json"); ok {
		name, options, _ := strings.Cut(tag, ",")
		if name == "-" {
			return "-", false
		}
		if name != "" {
			return "m." + name, strings.Contains(options, "omitempty")
		}
	}
	return "m." + toSnakeCase(field.Name), false
}

func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			result.WriteRune('_')
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

func sourceTypeOf(fv reflect.Value) (SourceType, error) {
	if t, ok := fv.Interface().(SourceType); ok {
		return t, nil
	}
	text, err := marshalScalar(fv)
	if err != nil {
		return SourceType{}, err
	}
	return ParseSourceType(text)
}

func accessModeOf(fv reflect.Value) (AccessMode, error) {
	if m, ok := fv.Interface().(AccessMode); ok {
		return m, nil
	}
	text, err := marshalScalar(fv)
	if err != nil {
		return AccessUnspecified, err
	}
	if text == "" {
		return AccessUnspecified, nil
	}
	return ParseAccessMode(text)
}

func assignSourceType(fv reflect.Value, t SourceType) error {
	if fv.Type() == reflect.TypeOf(SourceType{}) {
		fv.Set(reflect.ValueOf(t))
		return nil
	}
	return setScalar(fv, t.String())
}

func assignAccessMode(fv reflect.Value, m AccessMode) error {
	if fv.Type() == reflect.TypeOf(AccessUnspecified) {
		fv.Set(reflect.ValueOf(m))
		return nil
	}
	return setScalar(fv, m.String())
}

func marshalScalar(fv reflect.Value) (string, error) {
	if m, ok := fv.Interface().(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return "", err
		}
		return string(text), nil
	}

	switch fv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if fv.IsNil() {
			return "", nil
		}
		return marshalScalar(fv.Elem())
	case reflect.String:
		return fv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(fv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(fv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(fv.Float(), 'g', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(fv.Bool()), nil
	default:
		return "", fmt.Errorf("unsupported type %s", fv.Type())
	}
}

func setScalar(fv reflect.Value, s string) error {
	if !fv.CanSet() {
		return fmt.Errorf("cannot set value of type %s", fv.Type())
	}

	if fv.CanAddr() {
		if tu, ok := fv.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(s))
		}
	}

	switch fv.Kind() {
	case reflect.Pointer:
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		return setScalar(fv.Elem(), s)
	case reflect.String:
		fv.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		if fv.OverflowInt(i) {
			return fmt.Errorf("invalid %s: %v", fv.Type(), i)
		}
		fv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		if fv.OverflowUint(u) {
			return fmt.Errorf("invalid %s: %v", fv.Type(), u)
		}
		fv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		if fv.OverflowFloat(f) {
			return fmt.Errorf("invalid %s: %v", fv.Type(), f)
		}
		fv.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", fv.Type())
	}
	return nil
}
