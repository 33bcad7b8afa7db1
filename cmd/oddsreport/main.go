package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/osse101/SwordForge_Go/internal/catalog"
	"github.com/osse101/SwordForge_Go/internal/config"
	"github.com/osse101/SwordForge_Go/internal/odds"
	"github.com/osse101/SwordForge_Go/internal/sampler"
)

type options struct {
	configPath string
	schemaPath string
	category   string
	level      int
	compare    bool
	factor     float64
	simulate   int
	seed       int64
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintln(os.Stderr, "oddsreport:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("oddsreport", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", envOr("FORGE_CONFIG_PATH", config.ConfigPathForge), "forge data file")
	fs.StringVar(&opts.schemaPath, "schema", envOr("FORGE_SCHEMA_PATH", config.ConfigPathForgeSchema), "forge data schema")
	fs.StringVar(&opts.category, "category", "", "category to report (empty reports every category)")
	fs.IntVar(&opts.level, "level", 0, "upgrade level to evaluate")
	fs.BoolVar(&opts.compare, "compare", false, "show level 0 next to the chosen level")
	fs.Float64Var(&opts.factor, "k", envFloat("IMPROVEMENT_FACTOR", config.DefaultImprovementFactor), "improvement factor")
	fs.IntVar(&opts.simulate, "simulate", 0, "draw N items and print the observed distribution")
	fs.Int64Var(&opts.seed, "seed", 1, "seed for -simulate")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.level < 0 {
		return opts, fmt.Errorf("-level must not be negative")
	}
	if err := odds.ValidateImprovementFactor(opts.factor); err != nil {
		return opts, err
	}
	return opts, nil
}

func run(w io.Writer, opts options) error {
	cat, err := catalog.NewLoader(opts.schemaPath).LoadCatalog(opts.configPath)
	if err != nil {
		return err
	}

	tables := cat.TableMap()
	names := make([]string, 0, len(tables))
	if opts.category != "" {
		if _, ok := tables[opts.category]; !ok {
			return fmt.Errorf("unknown category %q", opts.category)
		}
		names = append(names, opts.category)
	} else {
		for _, t := range cat.Tables {
			names = append(names, t.Category())
		}
	}

	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(w)
		}
		snap := odds.Redistribute(tables[name], opts.level, opts.factor)
		if opts.compare {
			fmt.Fprint(w, odds.CompareReport(odds.Redistribute(tables[name], 0, opts.factor), snap))
		} else {
			fmt.Fprint(w, odds.Report(snap))
		}
		if opts.simulate > 0 {
			simulate(w, snap, opts.simulate, sampler.NewSeededSource(opts.seed))
		}
	}
	return nil
}

// simulate draws n options from snap and prints observed against expected share
func simulate(w io.Writer, snap odds.Snapshot, n int, src sampler.Source) {
	entries := snap.Entries()
	weighted := make([]sampler.Weighted[string], len(entries))
	for i, e := range entries {
		weighted[i] = sampler.Weighted[string]{Value: e.Name, Weight: e.Weight()}
	}
	expected := sampler.Percentages(weighted)

	counts := make(map[string]int, len(entries))
	for i := 0; i < n; i++ {
		counts[sampler.Pick(src, weighted)]++
	}

	type row struct {
		name     string
		observed float64
		expected float64
	}
	rows := make([]row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, row{e.Name, 100 * float64(counts[e.Name]) / float64(n), expected[i]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].expected > rows[j].expected })

	fmt.Fprintf(w, "\nSimulated %d draws:\n", n)
	for _, r := range rows {
		fmt.Fprintf(w, "  %-16s observed %7.3f%%  expected %7.3f%%\n", r.name, r.observed, r.expected)
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}
