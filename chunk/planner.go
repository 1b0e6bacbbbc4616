// Package chunk splits the input file into independently parseable
// byte ranges and folds each range into a chunk-local aggregate table.
package chunk

const (
	// MaxNameLen bounds station names; longer names are truncated.
	MaxNameLen = 30
	// MaxTempLen is the widest temperature field ("-99.9").
	MaxTempLen = 5
	// MaxLineLen is a full line including the ';' and '\n' delimiters.
	MaxLineLen = MaxNameLen + MaxTempLen + 2

	// DefaultPartSize is the nominal size of one part.
	DefaultPartSize = 10 * 1024 * 1024
)

// Part is one planned byte range of the input. Len extends up to
// MaxLineLen past Nominal so the last line starting inside the part
// can be read to completion; the parser only starts lines within
// Nominal, which keeps the overlap from double counting.
type Part struct {
	Off     int64
	Len     int64
	Nominal int64
}

// Plan divides a file of the given size into ceil(size/partSize)
// overlapping parts. Parts carry no ordering requirement.
func Plan(size, partSize int64) []Part {
	if size <= 0 || partSize <= 0 {
		return nil
	}

	n := (size + partSize - 1) / partSize
	parts := make([]Part, 0, n)
	for i := int64(0); i < n; i++ {
		off := i * partSize
		end := min(size, off+partSize+MaxLineLen)
		parts = append(parts, Part{
			Off:     off,
			Len:     end - off,
			Nominal: partSize,
		})
	}
	return parts
}
