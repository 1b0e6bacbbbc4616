// Package table holds the process-wide aggregate table shared by all
// chunk workers. Entries are combined under per-shard locks, so
// combine-or-insert is atomic per key while different keys mostly
// proceed independently.
package table

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/maps"

	"onebrc/chunk"
	"onebrc/station"
)

const defaultShards = 16

type shard struct {
	mu    sync.Mutex
	stats map[uint32]*station.Stats
}

type Table struct {
	shards []*shard
}

func New(shards int) *Table {
	if shards <= 0 {
		shards = defaultShards
	}

	t := &Table{shards: make([]*shard, shards)}
	for i := range t.shards {
		t.shards[i] = &shard{stats: make(map[uint32]*station.Stats)}
	}
	return t
}

func (t *Table) shardFor(key uint32) *shard {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], key)
	return t.shards[xxhash.Sum64(b[:])%uint64(len(t.shards))]
}

// Merge combines st into the entry for key, or inserts st directly if
// the key is new. The caller hands over ownership of st.
func (t *Table) Merge(key uint32, st *station.Stats) {
	sh := t.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if cur, ok := sh.stats[key]; ok {
		cur.Merge(st)
		return
	}
	sh.stats[key] = st
}

// MergeLocal folds a completed chunk-local table into t. Merging is
// commutative and associative per key, so the final state does not
// depend on chunk completion order.
func (t *Table) MergeLocal(local *chunk.Table) {
	local.Each(t.Merge)
}

// Stats snapshots all entries. Only call after every merge has
// completed; it takes the shard locks but the returned pointers are
// the live entries.
func (t *Table) Stats() []*station.Stats {
	var out []*station.Stats
	for _, sh := range t.shards {
		sh.mu.Lock()
		out = append(out, maps.Values(sh.stats)...)
		sh.mu.Unlock()
	}
	return out
}

func (t *Table) Len() int {
	var n int
	for _, sh := range t.shards {
		sh.mu.Lock()
		n += len(sh.stats)
		sh.mu.Unlock()
	}
	return n
}
