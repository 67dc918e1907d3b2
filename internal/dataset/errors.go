package dataset

import "errors"

// Parse failures are fatal for the whole load. Callers classify them with
// errors.Is; every wrapped message carries the record position and the
// offending token.
var (
	// ErrMalformedRecord reports text that breaks the dataset grammar:
	// missing delimiters, a truncated record, or a record that never
	// received its mandatory attributes.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnrecognizedAttribute reports an attribute title outside the fixed
	// vocabulary (id_str, name, location, pic_url, follows).
	ErrUnrecognizedAttribute = errors.New("unrecognized attribute")

	// ErrEmptyAttributeValue reports an empty raw value for any attribute
	// except follows, whose list may legitimately be empty.
	ErrEmptyAttributeValue = errors.New("empty attribute value")

	// ErrInvalidIdentifier reports a token that should be an unsigned
	// integer identifier but is not.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)
