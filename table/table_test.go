package table

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onebrc/chunk"
	"onebrc/station"
)

func TestMergeCombineOrInsert(t *testing.T) {
	tbl := New(4)

	tbl.Merge(1, station.New("A", 120))
	tbl.Merge(1, station.New("A", 86))
	tbl.Merge(2, station.New("B", -34))

	require.Equal(t, 2, tbl.Len())
	for _, st := range tbl.Stats() {
		switch st.Name {
		case "A":
			assert.Equal(t, int32(86), st.Min)
			assert.Equal(t, int32(120), st.Max)
			assert.Equal(t, int64(206), st.Sum)
			assert.Equal(t, int32(2), st.Count)
		case "B":
			assert.Equal(t, int32(-34), st.Min)
			assert.Equal(t, int32(1), st.Count)
		default:
			t.Fatalf("unexpected station %s", st.Name)
		}
	}
}

func TestMergeLocalIntoEmptyIsIdentity(t *testing.T) {
	local := chunk.NewTable()
	local.Fold(station.NameHash([]byte("Hamburg")), []byte("Hamburg"), 120)
	local.Fold(station.NameHash([]byte("Hamburg")), []byte("Hamburg"), 86)
	local.Fold(station.NameHash([]byte("Berlin")), []byte("Berlin"), -34)

	tbl := New(0)
	tbl.MergeLocal(local)

	require.Equal(t, local.Len(), tbl.Len())
	local.Each(func(k uint32, want *station.Stats) {
		found := false
		for _, got := range tbl.Stats() {
			if got.Name != want.Name {
				continue
			}
			found = true
			assert.Equal(t, want.Min, got.Min)
			assert.Equal(t, want.Max, got.Max)
			assert.Equal(t, want.Sum, got.Sum)
			assert.Equal(t, want.Count, got.Count)
		}
		assert.True(t, found, "missing station %s", want.Name)
	})
}

func TestConcurrentMergesLoseNothing(t *testing.T) {
	const (
		workers = 8
		merges  = 200
	)
	tbl := New(4)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < merges; i++ {
				tbl.Merge(1, station.New("A", 5))
				tbl.Merge(2, station.New("B", -5))
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 2, tbl.Len())
	for _, st := range tbl.Stats() {
		assert.Equal(t, int32(workers*merges), st.Count, st.Name)
		switch st.Name {
		case "A":
			assert.Equal(t, int64(5*workers*merges), st.Sum)
		case "B":
			assert.Equal(t, int64(-5*workers*merges), st.Sum)
		}
	}
}
