package cmd

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/proc-sim/proc-sim/sim"
)

var (
	// CLI flags shared by the subcommands
	workloadPath string // Path to the YAML workload file
	policyName   string // Policy override (fcfs, sjf, srtf, rr, priority)
	quantum      int64  // Round Robin quantum override
	logLevel     string // Log verbosity level
	csvPath      string // Optional per-task CSV export path
	showGantt    bool   // Render the Gantt line above the table

	// sweep flags
	quantumMin int64
	quantumMax int64
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "proc-sim",
	Short: "Deterministic single-CPU scheduling simulator",
}

// setupLogging applies the --log flag before any subcommand runs.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// loadSpec reads the workload file and applies flag overrides.
func loadSpec(cmd *cobra.Command) *sim.RunSpec {
	if workloadPath == "" {
		logrus.Fatalf("Workload file not provided. Exiting simulation.")
	}
	spec, err := sim.LoadRunSpec(workloadPath)
	if err != nil {
		logrus.Fatalf("Unable to read workload: %v", err)
	}
	if cmd.Flags().Changed("policy") {
		spec.Policy = policyName
	}
	if cmd.Flags().Changed("quantum") {
		spec.Quantum = quantum
	}
	return spec
}

// runCmd executes one simulation using parameters from the workload file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		spec := loadSpec(cmd)

		result, err := sim.Run(*spec)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		renderResult(os.Stdout, result, showGantt)
		if csvPath != "" {
			if err := writeCSV(csvPath, result); err != nil {
				logrus.Fatalf("CSV export failed: %v", err)
			}
			logrus.Infof("Per-task results written to %s", csvPath)
		}
	},
}

// compareCmd runs every policy over the same task set. Runs are stateless
// and isolated, so they execute concurrently, one goroutine per policy.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all policies over one task set and compare averages",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		spec := loadSpec(cmd)

		policies := sim.AllPolicies()
		results := make([]*sim.Result, len(policies))
		errs := make([]error, len(policies))

		var wg sync.WaitGroup
		for i, p := range policies {
			wg.Add(1)
			go func(i int, p sim.Policy) {
				defer wg.Done()
				run := *spec
				run.Policy = string(p)
				if !p.NeedsQuantum() {
					run.Quantum = 0
				}
				results[i], errs[i] = sim.Run(run)
			}(i, p)
		}
		wg.Wait()

		for i, err := range errs {
			if err != nil {
				logrus.Fatalf("Policy %s failed: %v", policies[i], err)
			}
		}
		renderComparison(os.Stdout, results)
	},
}

// sweepCmd runs Round Robin across a quantum range, one goroutine per value.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep Round Robin quantum values over one task set",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		spec := loadSpec(cmd)
		if quantumMin < 1 || quantumMax < quantumMin {
			logrus.Fatalf("Invalid sweep range [%d, %d]", quantumMin, quantumMax)
		}

		count := int(quantumMax - quantumMin + 1)
		results := make([]*sim.Result, count)
		errs := make([]error, count)

		var wg sync.WaitGroup
		for i := 0; i < count; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				run := *spec
				run.Policy = string(sim.PolicyRoundRobin)
				run.Quantum = quantumMin + int64(i)
				results[i], errs[i] = sim.Run(run)
			}(i)
		}
		wg.Wait()

		for i, err := range errs {
			if err != nil {
				logrus.Fatalf("Quantum %d failed: %v", quantumMin+int64(i), err)
			}
		}
		renderSweep(os.Stdout, quantumMin, results)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, compareCmd, sweepCmd} {
		c.Flags().StringVar(&workloadPath, "workload", "", "Path to YAML workload file")
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	}

	runCmd.Flags().StringVar(&policyName, "policy", "", "Policy (fcfs, sjf, srtf, rr, priority); overrides the workload file")
	runCmd.Flags().Int64Var(&quantum, "quantum", 0, "Round Robin quantum; overrides the workload file")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Write per-task results to this CSV file")
	runCmd.Flags().BoolVar(&showGantt, "gantt", true, "Render the Gantt schedule line")

	sweepCmd.Flags().Int64Var(&quantumMin, "quantum-min", 1, "Smallest quantum in the sweep")
	sweepCmd.Flags().Int64Var(&quantumMax, "quantum-max", 8, "Largest quantum in the sweep")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(sweepCmd)
}
