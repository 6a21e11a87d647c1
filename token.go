package ucdf

import "strings"

// The escape character and the two delimiters it can hide. Any other
// character after a backslash is kept verbatim, backslash included, so that
// unescape is total and serialization stays reversible.
const escape = '\\'

type sectionKind int8

const (
	kindType = sectionKind(iota)
	kindConnection
	kindStructure
	kindAccess
	kindMeta
)

func (k sectionKind) String() string {
	switch k {
	case kindType:
		return "t"
	case kindConnection:
		return "c"
	case kindStructure:
		return "s"
	case kindAccess:
		return "a"
	case kindMeta:
		return "m"
	default:
		panic("unknown sectionKind")
	}
}

// rawSection is one key=value unit after tokenizing, before classification.
type rawSection struct {
	key, value string
}

// splitEscaped splits input on every unescaped occurrence of sep.
func splitEscaped(input string, sep byte) []string {
	var parts []string
	start := 0
	escaped := false
	for i := 0; i < len(input); i++ {
		switch {
		case escaped:
			escaped = false
		case input[i] == escape:
			escaped = true
		case input[i] == sep:
			parts = append(parts, input[start:i])
			start = i + 1
		}
	}
	return append(parts, input[start:])
}

// cutEscaped splits input at the first unescaped occurrence of sep.
func cutEscaped(input string, sep byte) (before, after string, found bool) {
	escaped := false
	for i := 0; i < len(input); i++ {
		switch {
		case escaped:
			escaped = false
		case input[i] == escape:
			escaped = true
		case input[i] == sep:
			return input[:i], input[i+1:], true
		}
	}
	return input, "", false
}

// unescape resolves \;, \= and \\ to their literal characters. A backslash
// before any other character is preserved as written.
func unescape(input string) string {
	if !strings.ContainsRune(input, escape) {
		return input
	}
	var b strings.Builder
	b.Grow(len(input))
	escaped := false
	for i := 0; i < len(input); i++ {
		c := input[i]
		if escaped {
			if c != ';' && c != '=' && c != escape {
				b.WriteByte(escape)
			}
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == escape {
			escaped = true
			continue
		}
		b.WriteByte(c)
	}
	if escaped {
		b.WriteByte(escape)
	}
	return b.String()
}

// escapeText makes a key or value safe to embed in a document by escaping
// the delimiters and the escape character itself.
func escapeText(input string) string {
	if !strings.ContainsAny(input, ";=\\") {
		return input
	}
	var b strings.Builder
	b.Grow(len(input) + 2)
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == ';' || c == '=' || c == escape {
			b.WriteByte(escape)
		}
		b.WriteByte(c)
	}
	return b.String()
}

// tokenize splits a UCDF line into ordered raw key/value sections.
// Leading and trailing whitespace around the whole line is ignored;
// whitespace inside sections is significant. Empty sections (consecutive or
// trailing ';') produce nothing. A section without an unescaped '=' is a
// malformed-section error.
func tokenize(input string) ([]rawSection, error) {
	input = strings.TrimSpace(input)
	var sections []rawSection
	for _, raw := range splitEscaped(input, ';') {
		if raw == "" {
			continue
		}
		key, value, found := cutEscaped(raw, '=')
		if !found {
			return nil, parseErr(ErrMalformedSection, raw)
		}
		sections = append(sections, rawSection{key: unescape(key), value: unescape(value)})
	}
	return sections, nil
}

// classify maps a section key to its kind and residual key. The residual is
// empty for t and a, and the part after the prefix dot for c., s. and m.
func classify(key string) (sectionKind, string, error) {
	switch key {
	case "t":
		return kindType, "", nil
	case "a":
		return kindAccess, "", nil
	}
	prefix, rest, found := strings.Cut(key, ".")
	if !found || rest == "" {
		return 0, "", parseErr(ErrUnknownSection, key)
	}
	switch prefix {
	case "c":
		return kindConnection, rest, nil
	case "s":
		return kindStructure, rest, nil
	case "m":
		return kindMeta, rest, nil
	default:
		return 0, "", parseErr(ErrUnknownSection, key)
	}
}
