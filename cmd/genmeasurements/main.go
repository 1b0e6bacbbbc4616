package main

import (
	"flag"
	"log"
	"os"

	"onebrc/gen"
)

var (
	rows     int64
	stations int
	seed     int64
	out      string
)

func init() {
	flag.Int64Var(&rows, "rows", 1_000_000, "number of measurement lines")
	flag.IntVar(&stations, "stations", 0, "distinct stations (0 = all)")
	flag.Int64Var(&seed, "seed", 42, "rng seed")
	flag.StringVar(&out, "out", "measurements.txt", "output file")
	flag.Parse()
}

func main() {
	f, err := os.Create(out)
	if err != nil {
		log.Fatalf("unable to create %s: %v", out, err)
	}
	defer f.Close()

	cfg := gen.Config{Rows: rows, Stations: stations, Seed: seed}
	if err := gen.Write(f, cfg); err != nil {
		log.Fatalf("unable to generate measurements: %v", err)
	}
}
