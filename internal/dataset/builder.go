package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/socialgridgo/internal/model"
)

// Recognized attribute titles. The vocabulary is closed: any other title in
// a dataset fails the load rather than being skipped.
const (
	attrID       = "id_str"
	attrName     = "name"
	attrLocation = "location"
	attrPicURL   = "pic_url"
	attrFollows  = "follows"
)

// recordBuilder accumulates attribute values for one record. A title that
// repeats simply overwrites its earlier value.
type recordBuilder struct {
	id       int
	name     string
	location string
	picURL   string
	follows  []int
}

// setAttribute validates and stores one title/value pair. follows is handled
// before the empty-value check because an empty list is legitimate there and
// nowhere else.
func (b *recordBuilder) setAttribute(title, raw string) error {
	if title == attrFollows {
		follows, err := parseIdentifierList(raw)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", title, err)
		}
		b.follows = follows
		return nil
	}

	if raw == "" {
		return fmt.Errorf("%w: attribute %q", ErrEmptyAttributeValue, title)
	}

	switch title {
	case attrID:
		id, err := parseIdentifier(raw)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", title, err)
		}
		b.id = id
	case attrName:
		b.name = raw
	case attrLocation:
		b.location = raw
	case attrPicURL:
		b.picURL = raw
	default:
		return fmt.Errorf("%w: %q", ErrUnrecognizedAttribute, title)
	}
	return nil
}

// build finalizes the accumulated attributes into a user record. Validity is
// the caller's check; the builder only assembles.
func (b *recordBuilder) build() model.User {
	return model.NewUser(b.id, b.name, b.location, b.picURL, b.follows)
}

// buildRecord consumes one record's attribute pairs from tok, positioned
// just past the record's opening '{', and assembles the resulting record.
// The record-ending tab sentinel is left unconsumed.
func buildRecord(tok *Tokenizer) (model.User, error) {
	var b recordBuilder
	for {
		end, err := tok.AtRecordEnd()
		if err != nil {
			return model.User{}, err
		}
		if end {
			break
		}

		title, err := tok.NextTitle()
		if err != nil {
			return model.User{}, err
		}
		raw, err := tok.NextValue()
		if err != nil {
			return model.User{}, err
		}
		if err := b.setAttribute(title, raw); err != nil {
			return model.User{}, err
		}
		if err := tok.SkipSeparator(); err != nil {
			return model.User{}, err
		}
	}
	return b.build(), nil
}

// parseIdentifier converts one numeric token into a user identifier.
func parseIdentifier(raw string) (int, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrInvalidIdentifier, raw)
	}
	return int(id), nil
}

// parseIdentifierList converts the raw text of a follows array, for example
// "1","4", into identifiers, preserving order and duplicates. Scanning stops
// at the first byte that opens neither a separator nor a quoted token, so
// zero tokens is a legitimate empty list.
func parseIdentifierList(raw string) ([]int, error) {
	var ids []int
	rest := raw
	for rest != "" && (rest[0] == ',' || rest[0] == '"') {
		open := strings.IndexByte(rest, '"')
		if open < 0 {
			return nil, fmt.Errorf("%w: unterminated token in follows list", ErrInvalidIdentifier)
		}
		length := strings.IndexByte(rest[open+1:], '"')
		if length < 0 {
			return nil, fmt.Errorf("%w: unterminated token in follows list", ErrInvalidIdentifier)
		}
		id, err := parseIdentifier(rest[open+1 : open+1+length])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		rest = rest[open+1+length+1:]
	}
	return ids, nil
}
