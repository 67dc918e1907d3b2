package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/socialgridgo/internal/ctxlog"
	"github.com/vk/socialgridgo/internal/model"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

// record renders one record in the canonical dataset layout from ordered
// title/value pairs. Values arrive pre-delimited, e.g. `"Brandon"` or `["2"]`.
func record(pairs ...[2]string) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, kv := range pairs {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "%q : %s\n", kv[0], kv[1])
	}
	sb.WriteString("\t}")
	return sb.String()
}

func datasetOf(records ...string) string {
	return "[\n" + strings.Join(records, "\n,\n") + "\n]\n"
}

func TestLoad(t *testing.T) {
	t.Run("parses a well formed dataset", func(t *testing.T) {
		input := datasetOf(
			record(
				[2]string{"id_str", `"1"`},
				[2]string{"name", `"Brandon"`},
				[2]string{"location", `"Rohnert Park"`},
				[2]string{"pic_url", `"https://example.com/b.jpg"`},
				[2]string{"follows", `["2","3"]`},
			),
			record(
				[2]string{"id_str", `"2"`},
				[2]string{"name", `"Rachel"`},
				[2]string{"follows", `["1"]`},
			),
			record(
				[2]string{"id_str", `"3"`},
				[2]string{"name", `"Leo"`},
				[2]string{"follows", `[]`},
			),
		)

		col, err := Load(testContext(), strings.NewReader(input))

		require.NoError(t, err)
		require.Equal(t, 3, col.Len())

		brandon := col.ByID(1)
		assert.Equal(t, "Brandon", brandon.Name())
		assert.Equal(t, "Rohnert Park", brandon.Location())
		assert.Equal(t, "https://example.com/b.jpg", brandon.PictureURL())
		assert.Equal(t, []int{2, 3}, brandon.Follows())

		rachel := col.ByID(2)
		assert.Equal(t, "Rachel", rachel.Name())
		assert.Empty(t, rachel.Location())
		assert.Equal(t, model.DefaultPictureURL, rachel.PictureURL())
		assert.Equal(t, []int{1}, rachel.Follows())

		leo := col.ByID(3)
		assert.Equal(t, "Leo", leo.Name())
		assert.Empty(t, leo.Follows())
	})

	t.Run("sorts records that arrive out of order", func(t *testing.T) {
		input := datasetOf(
			record([2]string{"id_str", `"3"`}, [2]string{"name", `"Leo"`}),
			record([2]string{"id_str", `"1"`}, [2]string{"name", `"Brandon"`}),
			record([2]string{"id_str", `"2"`}, [2]string{"name", `"Rachel"`}),
		)

		col, err := Load(testContext(), strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []string{"Brandon", "Rachel", "Leo"}, col.Names())
	})

	t.Run("accepts a single record", func(t *testing.T) {
		input := datasetOf(
			record([2]string{"id_str", `"1"`}, [2]string{"name", `"Solo"`}, [2]string{"follows", `[]`}),
		)

		col, err := Load(testContext(), strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, 1, col.Len())
	})

	t.Run("keeps a self follow for later validation", func(t *testing.T) {
		input := datasetOf(
			record([2]string{"id_str", `"1"`}, [2]string{"name", `"Narcissus"`}, [2]string{"follows", `["1"]`}),
		)

		col, err := Load(testContext(), strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []int{1}, col.ByID(1).Follows())
	})
}

func TestLoadFailures(t *testing.T) {
	valid := record([2]string{"id_str", `"1"`}, [2]string{"name", `"Brandon"`})

	cases := []struct {
		name        string
		input       string
		errIs       error
		errContains string
	}{
		{
			name: "unrecognized attribute",
			input: datasetOf(valid, record(
				[2]string{"id_str", `"2"`},
				[2]string{"email", `"r@example.com"`},
			)),
			errIs:       ErrUnrecognizedAttribute,
			errContains: "record 2",
		},
		{
			name: "empty attribute value",
			input: datasetOf(record(
				[2]string{"id_str", `"1"`},
				[2]string{"name", `""`},
			)),
			errIs:       ErrEmptyAttributeValue,
			errContains: `"name"`,
		},
		{
			name: "non-numeric identifier",
			input: datasetOf(record(
				[2]string{"id_str", `"abc"`},
				[2]string{"name", `"Brandon"`},
			)),
			errIs:       ErrInvalidIdentifier,
			errContains: `"abc"`,
		},
		{
			name: "non-numeric follows token",
			input: datasetOf(record(
				[2]string{"id_str", `"1"`},
				[2]string{"name", `"Brandon"`},
				[2]string{"follows", `["2","x"]`},
			)),
			errIs:       ErrInvalidIdentifier,
			errContains: `"x"`,
		},
		{
			name:        "record without mandatory attributes",
			input:       datasetOf(record([2]string{"location", `"Nowhere"`})),
			errIs:       ErrMalformedRecord,
			errContains: "id_str or name",
		},
		{
			name:        "empty record body",
			input:       "[\n{\t}\n]",
			errIs:       ErrMalformedRecord,
			errContains: "id_str or name",
		},
		{
			name:        "zero records",
			input:       "[\n]",
			errIs:       model.ErrEmptyCollection,
			errContains: "no user records",
		},
		{
			name: "duplicate identifiers",
			input: datasetOf(
				record([2]string{"id_str", `"1"`}, [2]string{"name", `"A"`}),
				record([2]string{"id_str", `"1"`}, [2]string{"name", `"B"`}),
			),
			errIs:       model.ErrSparseIdentifiers,
			errContains: "appears more than once",
		},
		{
			name: "gapped identifiers",
			input: datasetOf(
				record([2]string{"id_str", `"1"`}, [2]string{"name", `"A"`}),
				record([2]string{"id_str", `"3"`}, [2]string{"name", `"C"`}),
			),
			errIs:       model.ErrSparseIdentifiers,
			errContains: "expected identifier 2",
		},
		{
			name:        "missing opening bracket",
			input:       "{\n\"id_str\" : \"1\"\n\t}",
			errIs:       ErrMalformedRecord,
			errContains: "'['",
		},
		{
			name:        "collection never closed",
			input:       "[\n" + valid + "\n",
			errIs:       ErrMalformedRecord,
			errContains: "']'",
		},
		{
			name:        "record missing its tab sentinel",
			input:       "[\n{\n\"id_str\" : \"1\"\n,\"name\" : \"B\"\n}\n]",
			errIs:       ErrMalformedRecord,
			errContains: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			col, err := Load(testContext(), strings.NewReader(tc.input))

			require.ErrorIs(t, err, tc.errIs)
			if tc.errContains != "" {
				assert.ErrorContains(t, err, tc.errContains)
			}
			assert.Nil(t, col, "a failed load must not hand back a partial collection")
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("loads a dataset from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "network.json")
		content := datasetOf(record([2]string{"id_str", `"1"`}, [2]string{"name", `"Brandon"`}))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		col, err := LoadFile(testContext(), path)

		require.NoError(t, err)
		assert.Equal(t, 1, col.Len())
	})

	t.Run("fails for a missing file", func(t *testing.T) {
		_, err := LoadFile(testContext(), filepath.Join(t.TempDir(), "missing.json"))

		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to open dataset")
	})

	t.Run("reports the path of an unparseable dataset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("not a dataset"), 0644))

		_, err := LoadFile(testContext(), path)

		require.ErrorIs(t, err, ErrMalformedRecord)
		assert.ErrorContains(t, err, "broken.json")
	})
}
