package extractcmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"marcingest/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.mrc")
	require.NoError(t, os.WriteFile(path, []byte(testutil.Stream(testutil.SirLadybugRecord, "garbage")), 0o644))

	var buf bytes.Buffer
	c := &ExtractCommand{out: &buf}
	require.NoError(t, c.Execute(context.Background(), []string{path}))

	dec := json.NewDecoder(&buf)

	var first struct {
		Offset int64 `json:"offset"`
		Book   struct {
			Title      string `json:"title"`
			SeriesName string `json:"seriesName"`
		} `json:"book"`
	}
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, int64(0), first.Offset)
	assert.Equal(t, "Sir Ladybug and the Queen Bee", first.Book.Title)
	assert.Equal(t, "Sir Ladybug", first.Book.SeriesName)

	var second map[string]any
	require.NoError(t, dec.Decode(&second))
	assert.NotContains(t, second, "book")
	assert.NotEmpty(t, second["error"])
}

func TestExtractCommand_Args(t *testing.T) {
	assert.Error(t, NewExtractCommand().Execute(context.Background(), []string{"a", "b"}))
}
