package crossref

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/gospelpath-backend/internal/scripture"
)

const sampleTSV = "From Verse\tTo Verse\tVotes\t#www.openbible.info CC-BY 2024-01-01\n" +
	"# comment line\n" +
	"Gen.1.1\tPs.33.6\t42\n" +
	"Gen.1.1\tJohn.1.1-John.1.3\t97\n" +
	"Gen.1.1\tHeb.11.3\t42\n" +
	"Gen.1.1\tIsa.45.18\t0\n" +
	"Gen.1.1\tRev.4.11\t-3\n" +
	"Gen.1.1\tPs.89.11-Ps.90.2\t5\n" +
	"John.3.16\tRom.5.8\t300\r\n" +
	"1John.4.9\tSong.2.4\t7\n" +
	"\n" +
	"broken line\n"

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	c := NewConverter(scripture.DefaultParser(), 0)
	ds, stats, err := c.Convert(strings.NewReader(sampleTSV))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"John 1:1-3",
		"Psalm 33:6",
		"Hebrews 11:3",
		"Psalm 89:11-Psalm 90:2",
	}, ds["gen_1_1"])
	assert.Equal(t, []string{"Romans 5:8"}, ds["john_3_16"])
	assert.Equal(t, []string{"Song of Solomon 2:4"}, ds["1john_4_9"])

	assert.Equal(t, 6, stats.Links)
	assert.Equal(t, 2, stats.Skipped)
	assert.Equal(t, 3, stats.Verses)
}

func TestConverter_Limit(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for v := 1; v <= 12; v++ {
		b.WriteString("Matt.5.3\tLuke.6." + strconv.Itoa(v) + "\t" + strconv.Itoa(v) + "\n")
	}

	ds, _, err := NewConverter(scripture.DefaultParser(), 3).Convert(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, []string{"Luke 6:12", "Luke 6:11", "Luke 6:10"}, ds["matt_5_3"])
}

func TestConverter_UnknownBookKeptRaw(t *testing.T) {
	t.Parallel()

	ds, _, err := NewConverter(scripture.DefaultParser(), 0).Convert(strings.NewReader("Tob.1.1\tSir.2.3\t4\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Sir 2:3"}, ds["tob_1_1"])
}

func TestPopularSubsetAndWrite(t *testing.T) {
	t.Parallel()

	full := Dataset{
		"john_3_16": {"Romans 5:8"},
		"gen_1_1":   {"John 1:1"},
		"obad_1_1":  {"Jeremiah 49:14"},
	}
	popular := PopularSubset(full, PopularKeys)
	assert.Len(t, popular, 2)
	assert.NotContains(t, popular, "obad_1_1")

	dir := t.TempDir()
	path := filepath.Join(dir, "popular.json")
	require.NoError(t, WriteDataset(path, popular, true))

	back, err := ReadDataset(path)
	require.NoError(t, err)
	assert.Equal(t, popular, back)
}

func TestPopularKeysParse(t *testing.T) {
	t.Parallel()

	p := scripture.DefaultParser()
	for _, key := range PopularKeys {
		parts := strings.Split(key, "_")
		require.Len(t, parts, 3, key)
		ref, err := p.FromParts(parts[0], parts[1], parts[2])
		require.NoError(t, err, key)
		assert.Equal(t, key, string(p.BuildLookupKey(ref)), key)
	}
}
