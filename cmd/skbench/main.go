// skbench runs put/get/remove/sublist workloads against the skip list and
// its concurrent wrapper and prints timing plus level occupancy tables.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"

	skiplist "github.com/dimits-exe/SkipLists"
)

type opTimings struct {
	impl    string
	putMs   float64
	getMs   float64
	rangeMs float64
	remMs   float64
	opsPerS float64
}

type target interface {
	Put(key int, value int) error
	Get(key int) (int, bool, error)
	Remove(key int) (int, bool, error)
	Sublist(start, end int) ([]skiplist.Entry[int, int], error)
	Len() int
	LevelStats() []int
}

func main() {
	var (
		ops        = flag.Int("ops", 100000, "operations per phase")
		keySpace   = flag.Int("keyspace", 1<<16, "distinct key range")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "workload seed")
		configPath = flag.String("config", "", "optional YAML config file for the list")
	)
	flag.Parse()

	cfg := skiplist.DefaultConfig()
	if *configPath != "" {
		loaded, err := skiplist.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	fmt.Printf("ops: %d\n", *ops)
	fmt.Printf("keyspace: %d\n", *keySpace)
	fmt.Printf("seed: %d\n", *seed)
	fmt.Printf("max_level: %d  probability: %g\n", cfg.MaxLevel, cfg.Probability)

	base, err := skiplist.New[int, int](skiplist.WithConfig(cfg))
	if err != nil {
		log.Fatalf("init skip list: %v", err)
	}
	conc := skiplist.NewConcurrent(base)

	rows := make([][]string, 0, 2)
	var last target
	for _, run := range []struct {
		name string
		t    target
	}{
		{"skiplist", base},
		{"concurrent", conc},
	} {
		timings := benchmark(run.name, run.t, *ops, *keySpace, *seed)
		rows = append(rows, []string{
			timings.impl,
			fmt.Sprintf("%d", *ops),
			fmt.Sprintf("%.3f", timings.putMs),
			fmt.Sprintf("%.3f", timings.getMs),
			fmt.Sprintf("%.3f", timings.rangeMs),
			fmt.Sprintf("%.3f", timings.remMs),
			fmt.Sprintf("%.2f", timings.opsPerS),
		})
		last = run.t
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Impl", "Ops", "Put(ms)", "Get(ms)", "Range(ms)", "Remove(ms)", "Ops/s"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	printLevels(last)
}

func benchmark(name string, t target, ops, keySpace int, seed int64) opTimings {
	r := rand.New(rand.NewSource(seed))

	start := time.Now()
	for i := 0; i < ops; i++ {
		if err := t.Put(r.Intn(keySpace), i); err != nil {
			log.Fatalf("%s: put: %v", name, err)
		}
	}
	putMs := msSince(start)

	start = time.Now()
	for i := 0; i < ops; i++ {
		if _, _, err := t.Get(r.Intn(keySpace)); err != nil {
			log.Fatalf("%s: get: %v", name, err)
		}
	}
	getMs := msSince(start)

	start = time.Now()
	rangeRuns := ops / 100
	for i := 0; i < rangeRuns; i++ {
		lo := r.Intn(keySpace)
		hi := lo + r.Intn(keySpace-lo)
		if _, err := t.Sublist(lo, hi); err != nil {
			log.Fatalf("%s: sublist: %v", name, err)
		}
	}
	rangeMs := msSince(start)

	start = time.Now()
	for i := 0; i < ops; i++ {
		if _, _, err := t.Remove(r.Intn(keySpace)); err != nil {
			log.Fatalf("%s: remove: %v", name, err)
		}
	}
	remMs := msSince(start)

	totalSec := (putMs + getMs + rangeMs + remMs) / 1000.0
	return opTimings{
		impl:    name,
		putMs:   putMs,
		getMs:   getMs,
		rangeMs: rangeMs,
		remMs:   remMs,
		opsPerS: float64(3*ops+rangeRuns) / totalSec,
	}
}

func printLevels(t target) {
	stats := t.LevelStats()
	rows := make([][]string, 0, len(stats))
	for i := len(stats) - 1; i >= 0; i-- {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", stats[i]),
		})
	}

	fmt.Printf("entries: %d\n", t.Len())
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Level", "Nodes"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.AppendBulk(rows)
	table.Render()
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
