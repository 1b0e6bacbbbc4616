// Package pipeline wires the stages together: plan parts over a
// memory-mapped input, parse them on a bounded worker pool, merge the
// partial tables, and format the report.
package pipeline

import (
	"fmt"
	"os"
	"runtime"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/sync/errgroup"

	"onebrc/chunk"
	"onebrc/report"
	"onebrc/table"
)

type Config struct {
	Path     string
	PartSize int64
	Workers  int
}

func (c Config) withDefaults() Config {
	if c.PartSize <= 0 {
		c.PartSize = chunk.DefaultPartSize
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return c
}

// Run aggregates the whole input file and returns the summary line.
// Any I/O failure aborts the run; no partial output is produced.
func Run(cfg Config) (string, error) {
	cfg = cfg.withDefaults()

	file, err := os.Open(cfg.Path)
	if err != nil {
		return "", fmt.Errorf("unable to open %s: %w", cfg.Path, err)
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("unable to stat %s: %w", cfg.Path, err)
	}
	if fi.Size() == 0 {
		return report.Format(nil), nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("unable to mmap %s: %w", cfg.Path, err)
	}
	defer data.Unmap()

	global := table.New(0)

	var eg errgroup.Group
	eg.SetLimit(cfg.Workers)
	for _, p := range chunk.Plan(int64(len(data)), cfg.PartSize) {
		p := p
		eg.Go(func() error {
			local := chunk.Parse(data[p.Off:p.Off+p.Len], p.Nominal)
			global.MergeLocal(local)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return "", err
	}

	return report.Format(global.Stats()), nil
}

// RunSequential aggregates the file as one chunk on the calling
// goroutine. It is the oracle the parallel run must agree with for
// any part size.
func RunSequential(cfg Config) (string, error) {
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return "", fmt.Errorf("unable to read %s: %w", cfg.Path, err)
	}

	global := table.New(1)
	global.MergeLocal(chunk.Parse(data, int64(len(data))))
	return report.Format(global.Stats()), nil
}
