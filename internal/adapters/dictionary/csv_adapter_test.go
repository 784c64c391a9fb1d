package dictionary

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corrections.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVAdapter_LoadsEntriesInFileOrder(t *testing.T) {
	path := writeCSV(t, "incorrect,correct\nparacitamol,Paracetamol\namoxicilin,Amoxicillin\n")

	dict, err := NewCSVAdapter(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, dict.Len())
	assert.Equal(t, []string{"paracitamol", "amoxicilin"}, dict.Keys())

	value, ok := dict.Lookup("paracitamol")
	assert.True(t, ok)
	assert.Equal(t, "Paracetamol", value)
}

func TestCSVAdapter_NormalizesAndSkipsBlankRows(t *testing.T) {
	path := writeCSV(t, "incorrect,correct\n Paracitamol ,Paracetamol\n,orphaned\nibuprofin,\n")

	dict, err := NewCSVAdapter(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, dict.Len())
	value, ok := dict.Lookup("paracitamol")
	assert.True(t, ok)
	assert.Equal(t, "Paracetamol", value)
}

func TestCSVAdapter_ColumnOrderIndependent(t *testing.T) {
	path := writeCSV(t, "correct,incorrect\nParacetamol,paracitamol\n")

	dict, err := NewCSVAdapter(path).Load(context.Background())
	require.NoError(t, err)

	value, ok := dict.Lookup("paracitamol")
	assert.True(t, ok)
	assert.Equal(t, "Paracetamol", value)
}

func TestCSVAdapter_MissingFileYieldsEmptyDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.csv")

	dict, err := NewCSVAdapter(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, dict.Len())
}

func TestCSVAdapter_MissingColumnsFails(t *testing.T) {
	path := writeCSV(t, "wrong,right\nparacitamol,Paracetamol\n")

	_, err := NewCSVAdapter(path).Load(context.Background())
	assert.Error(t, err)
}
