package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	benchResultsDir  = "benchmarks/results"
	benchProfilesDir = "benchmarks/profiles"
	benchBaseline    = "baseline.txt"
	benchCurrent     = "current.txt"
	benchTime        = "-benchtime=2s"
)

// hotPath is one benchmark worth watching on every change
type hotPath struct {
	label   string
	dir     string
	pattern string
}

var hotPaths = []hotPath{
	{"Odds: Redistribute", "./benchmarks/odds", "BenchmarkRedistribute"},
	{"Odds: cached snapshot", "./benchmarks/odds", "BenchmarkRedistributor_CachedSnapshot"},
	{"Roller: RollAll", "./benchmarks/odds", "BenchmarkRoller_RollAll"},
	{"Forge: Craft", "./benchmarks/odds", "BenchmarkForge_Craft"},
}

type BenchCommand struct{}

func (c *BenchCommand) Name() string {
	return "bench"
}

func (c *BenchCommand) Description() string {
	return "Run benchmarks (run|hot|save|baseline|compare|profile)"
}

func (c *BenchCommand) Run(args []string) error {
	if len(args) == 0 {
		return c.runAll()
	}

	switch args[0] {
	case "run":
		return c.runAll()
	case "hot":
		return c.runHot()
	case "save":
		return c.runAndSave(fmt.Sprintf("%s.txt", time.Now().Format("20060102-150405")))
	case "baseline":
		return c.runAndSave(benchBaseline)
	case "compare":
		return c.compare()
	case "profile":
		return c.profile()
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func (c *BenchCommand) runAll() error {
	PrintHeader("Running all benchmarks...")
	return runCommandVerbose("go", "test", "-run=^$", "-bench=.", "-benchmem", benchTime, "./...")
}

func (c *BenchCommand) runHot() error {
	PrintHeader("Running hot path benchmarks...")
	for _, hp := range hotPaths {
		fmt.Printf("  -> %s\n", hp.label)
		if err := runCommandVerbose("go", "test", "-run=^$", "-bench="+hp.pattern, "-benchmem", benchTime, hp.dir); err != nil {
			PrintWarning("%s failed: %v", hp.pattern, err)
		}
	}
	return nil
}

func (c *BenchCommand) runAndSave(filename string) error {
	PrintHeader("Running benchmarks and saving results...")
	path, err := c.runInto(filename, true)
	if err != nil {
		return err
	}
	PrintSuccess("Results saved to %s", path)
	return nil
}

// runInto runs every benchmark and writes the output to benchmarks/results/filename
func (c *BenchCommand) runInto(filename string, echo bool) (string, error) {
	if err := os.MkdirAll(benchResultsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(benchResultsDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	var out io.Writer = f
	if echo {
		out = io.MultiWriter(os.Stdout, f)
	}

	cmd := exec.Command("go", "test", "-run=^$", "-bench=.", "-benchmem", benchTime, "./...")
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return path, fmt.Errorf("benchmark execution failed: %w", err)
	}
	return path, nil
}

func (c *BenchCommand) compare() error {
	baseline := filepath.Join(benchResultsDir, benchBaseline)
	if _, err := os.Stat(baseline); os.IsNotExist(err) {
		return fmt.Errorf("no baseline found. Run 'devtool bench baseline' first")
	}

	PrintHeader("Running benchmarks and comparing to baseline...")
	current, err := c.runInto(benchCurrent, false)
	if err != nil {
		// Compare whatever finished
		PrintWarning("%v", err)
	}

	if _, err := exec.LookPath("benchstat"); err == nil {
		return runCommandVerbose("benchstat", baseline, current)
	}

	PrintWarning("benchstat not installed. Install with: go install golang.org/x/perf/cmd/benchstat@latest")
	PrintInfo("Showing raw comparison")
	fmt.Println("\nBASELINE:")
	printBenchLines(baseline, 5)
	fmt.Println("\nCURRENT:")
	printBenchLines(current, 5)
	return nil
}

func printBenchLines(path string, n int) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", path, err)
		return
	}
	count := 0
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "Benchmark") {
			fmt.Println(line)
			if count++; count >= n {
				return
			}
		}
	}
}

func (c *BenchCommand) profile() error {
	PrintHeader("Profiling the craft path...")
	if err := os.MkdirAll(benchProfilesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cpu := filepath.Join(benchProfilesDir, "cpu.prof")
	mem := filepath.Join(benchProfilesDir, "mem.prof")
	if err := runCommand("go", "test", "-run=^$", "-bench=BenchmarkForge_Craft", "-cpuprofile="+cpu, "./benchmarks/odds"); err != nil {
		return fmt.Errorf("cpu profile: %w", err)
	}
	if err := runCommand("go", "test", "-run=^$", "-bench=BenchmarkForge_Craft", "-benchmem", "-memprofile="+mem, "./benchmarks/odds"); err != nil {
		return fmt.Errorf("memory profile: %w", err)
	}

	PrintSuccess("Profiles saved to %s/", benchProfilesDir)
	fmt.Println("View with:")
	fmt.Printf("  go tool pprof -http=:8081 %s\n", cpu)
	fmt.Printf("  go tool pprof -http=:8081 %s\n", mem)
	return nil
}
