// Package gen writes synthetic measurement files for benchmarking and
// tests. Station frequencies are zipfian-skewed, readings are gaussian
// around each city's mean.
package gen

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/pingcap/go-ycsb/pkg/generator"
)

type city struct {
	name string
	mean float64
}

var cities = []city{
	{"Abha", 18.0}, {"Accra", 26.4}, {"Amsterdam", 10.2},
	{"Athens", 19.2}, {"Baghdad", 22.8}, {"Bangkok", 28.6},
	{"Berlin", 10.3}, {"Bordeaux", 14.2}, {"Brussels", 10.5},
	{"Bucharest", 10.8}, {"Cairo", 21.4}, {"Cape Town", 16.2},
	{"Chicago", 9.8}, {"Copenhagen", 9.1}, {"Dakar", 24.0},
	{"Dallas", 19.0}, {"Denver", 10.4}, {"Dublin", 9.8},
	{"Hamburg", 9.7}, {"Helsinki", 5.9}, {"Istanbul", 13.9},
	{"Jakarta", 26.7}, {"Lagos", 26.8}, {"Lisbon", 17.0},
	{"London", 11.3}, {"Madrid", 15.0}, {"Melbourne", 15.1},
	{"Mexico City", 17.5}, {"Moscow", 5.8}, {"Mumbai", 27.1},
	{"Nairobi", 17.8}, {"New York City", 12.9}, {"Oslo", 5.7},
	{"Paris", 12.3}, {"Prague", 8.4}, {"Reykjavik", 4.3},
	{"Rome", 15.2}, {"Singapore", 27.0}, {"Stockholm", 6.6},
	{"Sydney", 17.7}, {"Tokyo", 15.4}, {"Toronto", 9.4},
	{"Vienna", 10.4}, {"Warsaw", 8.5},
}

type Config struct {
	Rows     int64
	Stations int
	Seed     int64
}

// Write emits cfg.Rows lines of `name;temp` to w. Output is
// deterministic for a given config.
func Write(w io.Writer, cfg Config) error {
	stations := cfg.Stations
	if stations <= 0 || stations > len(cities) {
		stations = len(cities)
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	g := generator.NewScrambledZipfian(0, int64(stations-1), generator.ZipfianConstant)

	bw := bufio.NewWriterSize(w, 1<<20)
	for i := int64(0); i < cfg.Rows; i++ {
		c := cities[int(g.Next(r))%stations]
		temp := c.mean + r.NormFloat64()*7
		if _, err := fmt.Fprintf(bw, "%s;%.1f\n", c.name, temp); err != nil {
			return fmt.Errorf("unable to write measurement: %w", err)
		}
	}
	return bw.Flush()
}
