package chunk

import (
	"github.com/dolthub/swiss"

	"onebrc/station"
)

// maxStations sizes local tables for the known station cardinality.
const maxStations = 600

// Table is a chunk-local aggregate map keyed by the polynomial hash
// of the station name. It is unsynchronized and discarded after being
// merged into the global table.
type Table struct {
	m *swiss.Map[uint32, *station.Stats]
}

func NewTable() *Table {
	return &Table{m: swiss.NewMap[uint32, *station.Stats](maxStations)}
}

// Fold combines one scaled reading into the entry for hash, creating
// it from the name bytes on first sight. The name string is allocated
// at most once per unique station per chunk.
func (t *Table) Fold(hash uint32, name []byte, temp int32) {
	if st, ok := t.m.Get(hash); ok {
		st.Add(temp)
		return
	}
	t.m.Put(hash, station.New(string(name), temp))
}

func (t *Table) Get(hash uint32) (*station.Stats, bool) {
	return t.m.Get(hash)
}

func (t *Table) Len() int {
	return t.m.Count()
}

// Each visits every entry in unspecified order.
func (t *Table) Each(fn func(hash uint32, st *station.Stats)) {
	t.m.Iter(func(k uint32, v *station.Stats) bool {
		fn(k, v)
		return false
	})
}

// Parse scans one part's byte view and returns its local table.
//
// A part whose first byte is not an uppercase letter started mid-line;
// that line belongs to the previous part, whose trailing overlap
// covers it, so the scan skips to the next line start. The heuristic
// is intentionally imperfect for names that do not start with an
// uppercase ASCII letter; the first line of the file is assumed to.
//
// Only lines that start within nominal are consumed. Malformed
// records yield garbage values rather than errors.
func Parse(data []byte, nominal int64) *Table {
	t := NewTable()
	if len(data) == 0 {
		return t
	}

	pos := 0
	if data[0] < 'A' || data[0] > 'Z' {
		for pos < len(data) && data[pos] != '\n' {
			pos++
		}
		pos++
	}

	var scratch [MaxNameLen]byte
	for int64(pos) < nominal && len(data)-pos > MaxTempLen {
		var hash uint32
		n := 0
		for data[pos] != ';' {
			if n < MaxNameLen {
				scratch[n] = data[pos]
				n++
			}
			hash = hash*31 + uint32(data[pos])
			pos++
		}
		pos++

		neg := data[pos] == '-'
		if neg {
			pos++
		}
		var temp int32
		for data[pos] != '\n' {
			if data[pos] != '.' {
				temp = temp*10 + int32(data[pos]-'0')
			}
			pos++
		}
		pos++
		if neg {
			temp = -temp
		}

		t.Fold(hash, scratch[:n], temp)
	}
	return t
}
