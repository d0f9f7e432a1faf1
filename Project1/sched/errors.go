package sched

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput    = errors.New("missing input")
	ErrMalformedRecord = errors.New("malformed record")
	ErrInvalidQuantum  = errors.New("invalid quantum")
)

// Stage names the part of a run that failed.
type Stage string

const (
	StageLoad     Stage = "load"
	StageSimulate Stage = "simulate"
)

// RunError reports which discipline failed and at which stage.
type RunError struct {
	Discipline string
	Stage      Stage
	Err        error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Discipline, e.Stage, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }
