package sds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSectionKeywords(t *testing.T) {
	keywords := DefaultSectionKeywords()

	require.Contains(t, keywords, SectionIdentification)
	require.Contains(t, keywords, SectionComposition)
	require.Contains(t, keywords, SectionOther)
	assert.Contains(t, keywords[SectionComposition], "Hazardous Ingredients")
}

func TestLookupTableLongestKeywordFirst(t *testing.T) {
	keywords := SectionKeywords{
		"section_1":  {"Section 1"},
		"section_16": {"Section 16"},
	}

	entries := keywords.lookupTable()
	require.Len(t, entries, 2)
	assert.Equal(t, "section 16", entries[0].keyword)
	assert.Equal(t, "section_16", entries[0].sectionID)
}

func TestLookupTableLowercasesKeywords(t *testing.T) {
	keywords := SectionKeywords{"section_3": {"Hazardous Ingredients"}}

	entries := keywords.lookupTable()
	require.Len(t, entries, 1)
	assert.Equal(t, "hazardous ingredients", entries[0].keyword)
}

func TestLookupTableDuplicateKeywordLastWins(t *testing.T) {
	keywords := SectionKeywords{
		"section_1": {"Identification"},
		"section_2": {"Identification"},
	}

	entries := keywords.lookupTable()
	require.Len(t, entries, 1)
	assert.Equal(t, "section_2", entries[0].sectionID)
}

func TestLoadSectionKeywords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keywords.yaml")

	content := "section_1:\n" +
		"  - Identification\n" +
		"  - Section 1\n" +
		"section_3:\n" +
		"  - Composition\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	keywords, err := LoadSectionKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Identification", "Section 1"}, keywords["section_1"])
	assert.Equal(t, []string{"Composition"}, keywords["section_3"])
}

func TestLoadSectionKeywordsErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSectionKeywords(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("section_1: {{"), 0o600))
		_, err := LoadSectionKeywords(path)
		assert.Error(t, err)
	})

	t.Run("empty mapping", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))
		_, err := LoadSectionKeywords(path)
		assert.Error(t, err)
	})

	t.Run("section without variants", func(t *testing.T) {
		path := filepath.Join(dir, "novariants.yaml")
		require.NoError(t, os.WriteFile(path, []byte("section_1: []\n"), 0o600))
		_, err := LoadSectionKeywords(path)
		assert.Error(t, err)
	})
}
