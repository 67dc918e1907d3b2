package dataset

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/socialgridgo/internal/ctxlog"
	"github.com/vk/socialgridgo/internal/model"
)

// Load parses one complete network dataset from r into an ordered
// collection. Parsing runs in a single sequential pass; the first error
// aborts the load with nothing retained.
func Load(ctx context.Context, r io.Reader) (*model.Collection, error) {
	logger := ctxlog.FromContext(ctx)

	tok := NewTokenizer(r)
	if err := tok.skipThrough('['); err != nil {
		return nil, fmt.Errorf("%w: dataset does not open a collection with '['", ErrMalformedRecord)
	}

	var records []model.User
	for {
		done, err := tok.AtCollectionEnd()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		if err := tok.skipThrough('{'); err != nil {
			return nil, fmt.Errorf("%w: record %d does not open with '{'", ErrMalformedRecord, len(records)+1)
		}
		rec, err := buildRecord(tok)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(records)+1, err)
		}
		if !rec.IsValid() {
			return nil, fmt.Errorf("%w: record %d is missing its id_str or name attribute", ErrMalformedRecord, len(records)+1)
		}
		if err := tok.skipThrough('}'); err != nil {
			return nil, fmt.Errorf("%w: record %d does not close with '}'", ErrMalformedRecord, len(records)+1)
		}

		logger.Debug("Parsed user record.", "position", len(records)+1, "id", rec.ID())
		records = append(records, rec)
	}
	logger.Debug("Dataset tokenized.", "records", len(records))

	return model.NewCollection(records)
}

// LoadFile opens, parses, and closes the dataset at path. The file handle is
// released on every path out, success or failure.
func LoadFile(ctx context.Context, path string) (*model.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	col, err := Load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return col, nil
}
