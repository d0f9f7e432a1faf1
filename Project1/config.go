package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jar0582/CSCE4600/Project1/sched"
)

var (
	ErrInvalidArgs       = errors.New("invalid args")
	ErrUnknownDiscipline = errors.New("unknown discipline")
)

// Config holds everything a run needs besides the workload itself.
type Config struct {
	Quantum1    int      `json:"quantum1"`
	Quantum2    int      `json:"quantum2"`
	Disciplines []string `json:"disciplines"`
	LogLevel    string   `json:"log_level"`
	Chart       string   `json:"chart"`

	Workload string `json:"-"`
}

func defaultConfig() Config {
	return Config{
		Quantum1:    6,
		Quantum2:    11,
		Disciplines: []string{"fcfs", "sjf", "mlfq"},
		LogLevel:    "info",
	}
}

// parseConfig reads the command line. Values from a -config file are applied
// first; flags given explicitly on the command line win over them.
func parseConfig(args []string, stderr io.Writer) (Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("scheduler", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(fs.Output(), "usage: scheduler [flags] <workload.csv>")
		fs.PrintDefaults()
	}
	var (
		configPath  = fs.String("config", "", "JSON config file")
		q1          = fs.Int("q1", cfg.Quantum1, "MLFQ level 1 quantum")
		q2          = fs.Int("q2", cfg.Quantum2, "MLFQ level 2 quantum")
		disciplines = fs.String("disciplines", strings.Join(cfg.Disciplines, ","), "comma separated list of fcfs, sjf, mlfq")
		logLevel    = fs.String("log-level", cfg.LogLevel, "debug, info, warn or error")
		chart       = fs.String("chart", "", "write a bar chart of the averages to this PNG file")
	)
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if fs.NArg() != 1 {
		return cfg, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	cfg.Workload = fs.Arg(0)

	if *configPath != "" {
		if err := loadConfigFile(*configPath, &cfg); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "q1":
			cfg.Quantum1 = *q1
		case "q2":
			cfg.Quantum2 = *q2
		case "disciplines":
			cfg.Disciplines = strings.Split(*disciplines, ",")
		case "log-level":
			cfg.LogLevel = *logLevel
		case "chart":
			cfg.Chart = *chart
		}
	})

	for i, name := range cfg.Disciplines {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "fcfs", "sjf", "mlfq":
		default:
			return cfg, fmt.Errorf("%w: %q", ErrUnknownDiscipline, name)
		}
		cfg.Disciplines[i] = name
	}
	if len(cfg.Disciplines) == 0 {
		return cfg, fmt.Errorf("%w: no disciplines requested", ErrInvalidArgs)
	}

	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: opening config file: %v", ErrInvalidArgs, err)
	}
	defer func() {
		_ = f.Close()
	}()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("%w: decoding config file %s: %v", ErrInvalidArgs, path, err)
	}
	return nil
}

// discipline builds the named discipline. Names are validated by parseConfig.
func (c Config) discipline(name string) (sched.Discipline, error) {
	switch name {
	case "fcfs":
		return sched.FCFS(), nil
	case "sjf":
		return sched.SJF(), nil
	case "mlfq":
		return sched.MLFQ(c.Quantum1, c.Quantum2)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDiscipline, name)
}
