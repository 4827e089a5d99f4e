// Command treesize runs a full estimation experiment: exact backtracking
// ground truth, repeated seeded Monte Carlo runs, and a summary report.
//
// Usage:
//
//	treesize -n 12 -trials 1000 -runs 5 -seed 42
//	treesize -config experiment.json -out report.txt
//
// Explicit flags override values loaded from -config.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/treesize/experiment"
)

func main() {
	// Define arguments.
	nPtr := flag.Int("n", experiment.DefaultConfig().N, "Board size (number of queens)")
	trialsPtr := flag.Int("trials", experiment.DefaultConfig().Trials, "Monte Carlo trials per run")
	runsPtr := flag.Int("runs", experiment.DefaultConfig().Runs, "Number of independent estimator runs (min 2)")
	seedPtr := flag.Int64("seed", experiment.DefaultConfig().Seed, "Experiment seed; 0 selects the fixed default stream")
	workersPtr := flag.Int("workers", experiment.DefaultConfig().Workers, "Trial worker goroutines; >1 enables per-trial derived streams")
	configPtr := flag.String("config", "", "Path to a JSON config file; explicit flags override its values")
	outPtr := flag.String("out", "", "Path to write the report; if empty, it is printed to the standard output")
	flag.Parse()

	// Start from defaults, then config file, then explicit flags.
	cfg := experiment.DefaultConfig()
	if *configPtr != "" {
		loaded, err := experiment.LoadConfig(*configPtr)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.N = *nPtr
		case "trials":
			cfg.Trials = *trialsPtr
		case "runs":
			cfg.Runs = *runsPtr
		case "seed":
			cfg.Seed = *seedPtr
		case "workers":
			cfg.Workers = *workersPtr
		}
	})

	report, err := experiment.Run(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *outPtr == "" {
		fmt.Print(report.String())

		return
	}
	if err = os.WriteFile(*outPtr, []byte(report.String()), 0o644); err != nil {
		log.Fatal(err)
	}
}
