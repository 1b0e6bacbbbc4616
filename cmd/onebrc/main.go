package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"onebrc/chunk"
	"onebrc/pipeline"
)

var (
	sol        int
	numWorkers int
	filePath   string
	partSize   int64
	profile    bool
)

func init() {
	flag.IntVar(&sol, "sol", 2, "solution implementation (1=sequential, 2=parallel)")
	flag.IntVar(&numWorkers, "numWorkers", runtime.NumCPU(), "number of workers")
	flag.StringVar(&filePath, "filePath", "measurements.txt", "filepath")
	flag.Int64Var(&partSize, "partSize", chunk.DefaultPartSize, "nominal part size in bytes")
	flag.BoolVar(&profile, "profile", false, "profile cpu")
	flag.Parse()
}

func main() {
	if profile {
		f, err := os.Create("cpu_profile.pprof")
		if err != nil {
			log.Fatalf("unable to create CPU profile: %v", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("unable to start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	cfg := pipeline.Config{
		Path:     filePath,
		PartSize: partSize,
		Workers:  numWorkers,
	}

	var out string
	var err error
	switch sol {
	case 1:
		out, err = pipeline.RunSequential(cfg)
	case 2:
		out, err = pipeline.Run(cfg)
	default:
		log.Fatalf("unknown solution %d", sol)
	}
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(out)
}
