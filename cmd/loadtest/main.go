package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/jamiealquiza/tachymeter"
	"github.com/rodaine/table"

	"onebrc/pipeline"
)

var (
	filePath   string
	iters      int
	numWorkers int
)

func init() {
	flag.StringVar(&filePath, "filePath", "measurements.txt", "filepath")
	flag.IntVar(&iters, "iters", 10, "number of runs")
	flag.IntVar(&numWorkers, "numWorkers", runtime.NumCPU(), "number of workers")
	flag.Parse()
}

func main() {
	cfg := pipeline.Config{Path: filePath, Workers: numWorkers}
	m := tachymeter.New(&tachymeter.Config{Size: iters})

	for i := 0; i < iters; i++ {
		start := time.Now()
		if _, err := pipeline.Run(cfg); err != nil {
			log.Fatalf("run %d failed: %v", i, err)
		}
		m.AddTime(time.Since(start))
	}

	calc := m.Calc()

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()
	tbl := table.
		New("Runs", "Workers", "Avg", "P50", "P99", "Max").
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt)
	tbl.AddRow(
		iters,
		numWorkers,
		calc.Time.Avg,
		calc.Time.P50,
		calc.Time.P99,
		calc.Time.Max,
	)
	tbl.Print()
}
