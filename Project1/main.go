package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/jar0582/CSCE4600/Project1/logging"
	"github.com/jar0582/CSCE4600/Project1/report"
	"github.com/jar0582/CSCE4600/Project1/sched"
	"github.com/jar0582/CSCE4600/Project1/workload"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

type outcome struct {
	result  sched.Result
	metrics sched.Metrics
	err     error
}

// run loads the workload once and simulates every requested discipline on
// its own copy of it. A failing discipline is logged and skipped; the errors
// of all failed disciplines are returned together.
func run(args []string, stdout, stderr io.Writer) error {
	/* Configuration */
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	logger := logging.BuildLogger(stderr, level)

	/* Load and parse processes */
	processes, loadErr := workload.LoadFile(cfg.Workload)
	if loadErr == nil {
		logger.Info("workload loaded", slog.String("file", cfg.Workload), slog.Int("processes", len(processes)))
	}

	/* Scheduling */
	outcomes := make([]outcome, len(cfg.Disciplines))
	var wg sync.WaitGroup
	for i, name := range cfg.Disciplines {
		if loadErr != nil {
			outcomes[i].err = &sched.RunError{Discipline: strings.ToUpper(name), Stage: sched.StageLoad, Err: loadErr}
			continue
		}
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			outcomes[i] = simulate(cfg, name, processes, logger)
		}(i, name)
	}
	wg.Wait()

	/* Output */
	var (
		errs []error
		runs []sched.Metrics
	)
	for _, o := range outcomes {
		if o.err != nil {
			logger.Error("discipline failed", logging.ErrAttr(o.err))
			errs = append(errs, o.err)
			continue
		}
		report.Run(stdout, o.result, o.metrics)
		runs = append(runs, o.metrics)
	}
	if len(runs) > 1 {
		report.Comparison(stdout, runs)
	}
	if cfg.Chart != "" && len(runs) > 0 {
		if err := report.Chart(cfg.Chart, runs); err != nil {
			logger.Error("writing chart", slog.String("file", cfg.Chart), logging.ErrAttr(err))
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func simulate(cfg Config, name string, processes []sched.Descriptor, logger *slog.Logger) outcome {
	d, err := cfg.discipline(name)
	if err != nil {
		return outcome{err: &sched.RunError{Discipline: strings.ToUpper(name), Stage: sched.StageSimulate, Err: err}}
	}

	logger.Info("simulation started", slog.String("discipline", d.Name()))
	res, err := sched.Simulate(d, processes, sched.WithLogger(logger))
	if err != nil {
		return outcome{err: &sched.RunError{Discipline: d.Name(), Stage: sched.StageSimulate, Err: err}}
	}

	m := sched.Calculate(res)
	logger.Info("simulation finished",
		slog.String("discipline", d.Name()),
		slog.Int("total_time", m.TotalTime),
		slog.Float64("utilization", m.Utilization),
	)
	return outcome{result: res, metrics: m}
}
