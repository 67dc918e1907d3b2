package dataset

import (
	"bufio"
	"fmt"
	"io"
)

// Tokenizer walks the raw bytes of a network dataset. It understands
// delimiters and sentinels only; attribute meaning belongs to the builder.
type Tokenizer struct {
	r *bufio.Reader
}

// NewTokenizer wraps r for dataset tokenization.
func NewTokenizer(r io.Reader) *Tokenizer {
	return &Tokenizer{r: bufio.NewReader(r)}
}

// NextTitle consumes input through the next quoted token and returns the
// token, which the caller interprets as an attribute title.
func (t *Tokenizer) NextTitle() (string, error) {
	if err := t.skipThrough('"'); err != nil {
		return "", fmt.Errorf("%w: attribute title missing opening quote", ErrMalformedRecord)
	}
	title, err := t.readUntil('"')
	if err != nil {
		return "", fmt.Errorf("%w: attribute title missing closing quote", ErrMalformedRecord)
	}
	return title, nil
}

// NextValue consumes the ':' pair separator, the single byte after it, and
// the delimited raw value that follows: quote-delimited for scalars,
// bracket-delimited for arrays. Array contents are returned verbatim,
// quotes included.
func (t *Tokenizer) NextValue() (string, error) {
	if err := t.skipThrough(':'); err != nil {
		return "", fmt.Errorf("%w: attribute pair missing ':' separator", ErrMalformedRecord)
	}
	if _, err := t.r.Discard(1); err != nil {
		return "", fmt.Errorf("%w: attribute value truncated", ErrMalformedRecord)
	}

	marker, err := t.r.ReadByte()
	if err != nil {
		return "", fmt.Errorf("%w: attribute value truncated", ErrMalformedRecord)
	}
	switch marker {
	case '"':
		raw, err := t.readUntil('"')
		if err != nil {
			return "", fmt.Errorf("%w: scalar value missing closing quote", ErrMalformedRecord)
		}
		return raw, nil
	case '[':
		raw, err := t.readUntil(']')
		if err != nil {
			return "", fmt.Errorf("%w: array value missing closing bracket", ErrMalformedRecord)
		}
		return raw, nil
	default:
		return "", fmt.Errorf("%w: attribute value must open with '\"' or '[', found %q", ErrMalformedRecord, marker)
	}
}

// AtRecordEnd reports whether the record-ending sentinel (a tab) is next.
// Nothing is consumed either way.
func (t *Tokenizer) AtRecordEnd() (bool, error) {
	b, err := t.peek()
	if err != nil {
		return false, fmt.Errorf("%w: record not terminated", ErrMalformedRecord)
	}
	return b == '\t', nil
}

// SkipSeparator consumes the single byte that follows every attribute pair.
func (t *Tokenizer) SkipSeparator() error {
	if _, err := t.r.Discard(1); err != nil {
		return fmt.Errorf("%w: record not terminated", ErrMalformedRecord)
	}
	return nil
}

// AtCollectionEnd skips whitespace between records and reports whether the
// collection's closing ']' is next, consuming it when found.
func (t *Tokenizer) AtCollectionEnd() (bool, error) {
	for {
		b, err := t.peek()
		if err != nil {
			return false, fmt.Errorf("%w: collection not terminated with ']'", ErrMalformedRecord)
		}
		if b == ']' {
			_, _ = t.r.Discard(1)
			return true, nil
		}
		if !isSpace(b) {
			return false, nil
		}
		_, _ = t.r.Discard(1)
	}
}

// skipThrough discards input up to and including the first occurrence of
// delim. An EOF before the delimiter is reported as-is for the caller to
// classify.
func (t *Tokenizer) skipThrough(delim byte) error {
	_, err := t.r.ReadString(delim)
	return err
}

// readUntil returns the text before the next occurrence of delim, consuming
// the delimiter itself.
func (t *Tokenizer) readUntil(delim byte) (string, error) {
	s, err := t.r.ReadString(delim)
	if err != nil {
		return "", err
	}
	return s[:len(s)-1], nil
}

func (t *Tokenizer) peek() (byte, error) {
	b, err := t.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
