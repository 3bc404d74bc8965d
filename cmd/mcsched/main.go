package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"mcsched/internal/sched"
)

var red = color.New(color.FgRed, color.Bold)

func main() {
	var (
		configPath string
		cpus       int
		tasks      int
		ticks      int
		seed       uint64
		workload   string
		traceCSV   string
		showTable  bool
		progress   bool
	)
	flag.StringVar(&configPath, "config", "config.yml", "path to the YAML config")
	flag.IntVar(&cpus, "cpus", 0, "number of virtual cpus")
	flag.IntVar(&tasks, "tasks", 0, "number of user tasks")
	flag.IntVar(&ticks, "ticks", 0, "global dispatch steps to simulate")
	flag.Uint64Var(&seed, "seed", 0, "random seed (0 = from the wall clock)")
	flag.StringVar(&workload, "workload", "", "task workload (randomuser/fixed)")
	flag.StringVar(&traceCSV, "trace", "", "write every scheduler event to this CSV file")
	flag.BoolVar(&showTable, "table", false, "print summary tables after the run")
	flag.BoolVar(&progress, "progress", false, "show a progress bar on stderr")
	flag.Parse()

	// Read the configuration, then let explicitly set flags win
	cfg, err := sched.Load(configPath)
	if err != nil {
		fail(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cpus":
			cfg.CPUs = cpus
		case "tasks":
			cfg.Tasks = tasks
		case "ticks":
			cfg.Ticks = ticks
		case "seed":
			cfg.Seed = seed
		case "workload":
			cfg.Workload = workload
		case "trace":
			cfg.TraceCSV = traceCSV
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, showTable, progress); err != nil {
		stop()
		fail(err)
	}
}

func run(ctx context.Context, cfg sched.Config, showTable, progress bool) error {
	cfg.Normalize()

	var opts []sched.Option
	if progress {
		bar := progressbar.NewOptions64(int64(cfg.Ticks),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Simulating"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
		)
		defer bar.Finish()
		opts = append(opts, sched.WithOnTick(func(uint64) { _ = bar.Add(1) }))
	}

	s := sched.New(cfg, opts...)
	if cfg.TraceCSV != "" {
		if err := s.Recorder().EnableCSVLogging(cfg.TraceCSV); err != nil {
			return err
		}
	}
	defer func() {
		if err := s.Recorder().Close(); err != nil {
			red.Fprintf(os.Stderr, "mcsched: close trace: %v\n", err)
		}
	}()

	s.AddCPUs(cfg.CPUs)
	if err := s.AddTasks(cfg.Tasks); err != nil {
		return err
	}

	s.PrintQueue(os.Stdout, 0)

	// an interrupted run still reports what it got through
	runErr := s.RunForever(ctx)

	sched.PrintSeparator(os.Stdout)
	s.PrintCPUClocks(os.Stdout)
	s.PrintTaskRuntime(os.Stdout)

	if showTable {
		if err := s.PrintSummaryTable(os.Stdout); err != nil {
			return err
		}
		if err := s.PrintTaskTable(os.Stdout); err != nil {
			return err
		}
	}

	if runErr != nil {
		return fmt.Errorf("simulation stopped after %d ticks: %w", s.Ticks(), runErr)
	}
	return nil
}

func fail(err error) {
	red.Fprintf(os.Stderr, "mcsched: %v\n", err)
	os.Exit(1)
}
