package ucdf

// Parse converts a UCDF line into a [Doc].
//
// Sections may appear in any order. Repeated c., s. or m. keys overwrite
// the previous value (last write wins); a repeated 't' or 'a' section is a
// [ErrDuplicateSection] error. The 't' section is required. Parsing stops at
// the first violation in left-to-right order and returns a [*ParseError];
// no partial document is returned.
func Parse(input string) (Doc, error) {
	sections, err := tokenize(input)
	if err != nil {
		return Doc{}, err
	}

	var doc Doc
	seenType := false
	seenAccess := false
	for _, section := range sections {
		kind, key, err := classify(section.key)
		if err != nil {
			return Doc{}, err
		}
		switch kind {
		case kindType:
			if seenType {
				return Doc{}, parseErr(ErrDuplicateSection, kind.String())
			}
			sourceType, err := ParseSourceType(section.value)
			if err != nil {
				return Doc{}, err
			}
			doc.sourceType = sourceType
			seenType = true
		case kindAccess:
			if seenAccess {
				return Doc{}, parseErr(ErrDuplicateSection, kind.String())
			}
			mode, err := ParseAccessMode(section.value)
			if err != nil {
				return Doc{}, err
			}
			doc.access = mode
			seenAccess = true
		case kindConnection:
			doc.connection = doc.connection.set(key, section.value)
		case kindStructure:
			doc.structure = doc.structure.set(key, section.value)
		case kindMeta:
			doc.metadata = doc.metadata.set(key, section.value)
		}
	}

	if !seenType {
		return Doc{}, parseErr(ErrMissingSourceType, "")
	}
	return doc, nil
}
