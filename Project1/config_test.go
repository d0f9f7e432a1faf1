package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jar0582/CSCE4600/Project1/sched"
)

func TestParseConfig(t *testing.T) {
	configFile := filepath.Join("testdata", "config.json")

	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "defaults",
			args: []string{"w.csv"},
			want: Config{
				Quantum1:    6,
				Quantum2:    11,
				Disciplines: []string{"fcfs", "sjf", "mlfq"},
				LogLevel:    "info",
				Workload:    "w.csv",
			},
		},
		{
			name: "flags",
			args: []string{"-q1", "3", "-q2", "9", "-disciplines", " MLFQ,fcfs", "-chart", "out.png", "w.csv"},
			want: Config{
				Quantum1:    3,
				Quantum2:    9,
				Disciplines: []string{"mlfq", "fcfs"},
				LogLevel:    "info",
				Chart:       "out.png",
				Workload:    "w.csv",
			},
		},
		{
			name: "config file",
			args: []string{"-config", configFile, "w.csv"},
			want: Config{
				Quantum1:    4,
				Quantum2:    8,
				Disciplines: []string{"fcfs", "mlfq"},
				LogLevel:    "error",
				Workload:    "w.csv",
			},
		},
		{
			name: "flags override config file",
			args: []string{"-config", configFile, "-q1", "2", "-log-level", "debug", "w.csv"},
			want: Config{
				Quantum1:    2,
				Quantum2:    8,
				Disciplines: []string{"fcfs", "mlfq"},
				LogLevel:    "debug",
				Workload:    "w.csv",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseConfig(tt.args, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	unknownField := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknownField, []byte(`{"quantum3": 2}`), 0o600))

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no workload", args: []string{}, wantErr: ErrInvalidArgs},
		{name: "two workloads", args: []string{"a.csv", "b.csv"}, wantErr: ErrInvalidArgs},
		{name: "bad flag", args: []string{"-q3", "1", "a.csv"}, wantErr: ErrInvalidArgs},
		{name: "unknown discipline", args: []string{"-disciplines", "rr", "a.csv"}, wantErr: ErrUnknownDiscipline},
		{name: "unknown config field", args: []string{"-config", unknownField, "a.csv"}, wantErr: ErrInvalidArgs},
		{name: "missing config file", args: []string{"-config", filepath.Join(dir, "nope.json"), "a.csv"}, wantErr: ErrInvalidArgs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(tt.args, io.Discard)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Discipline(t *testing.T) {
	cfg := defaultConfig()

	d, err := cfg.discipline("mlfq")
	require.NoError(t, err)
	assert.Equal(t, "MLFQ(q1=6,q2=11)", d.Name())

	cfg.Quantum2 = -1
	_, err = cfg.discipline("mlfq")
	assert.ErrorIs(t, err, sched.ErrInvalidQuantum)

	_, err = cfg.discipline("rr")
	assert.ErrorIs(t, err, ErrUnknownDiscipline)
}
