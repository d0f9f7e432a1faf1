// Package workload reads process descriptions from CSV files.
//
// Each line is one process: an id token followed by alternating CPU burst and
// I/O durations, starting and usually ending with a burst:
//
//	P1,5,27,3,31,5
//
// The id token is a single character, or "P" followed by a single character.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jar0582/CSCE4600/Project1/sched"
)

// Open opens the workload file and returns it with a function that closes it.
func Open(path string) (*os.File, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening workload file: %v", sched.ErrMissingInput, err)
	}
	closeFn := func() error {
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing workload file: %w", err)
		}
		return nil
	}

	return f, closeFn, nil
}

// LoadFile opens path and parses it with Load. A failure to close the file is
// returned along with any parse error.
func LoadFile(path string) (processes []sched.Descriptor, err error) {
	f, closeFile, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closeFile(); cerr != nil {
			processes, err = nil, errors.Join(err, cerr)
		}
	}()

	return Load(f)
}

// Load parses every record from r. Nothing is returned unless every record is valid.
func Load(r io.Reader) ([]sched.Descriptor, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		processes []sched.Descriptor
		seen      = map[rune]int{}
	)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading CSV: %v", sched.ErrMalformedRecord, err)
		}
		line, _ := reader.FieldPos(0)

		d, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if prev, ok := seen[d.ID]; ok {
			return nil, fmt.Errorf("line %d: %w: process %c already defined on line %d",
				line, sched.ErrMalformedRecord, d.ID, prev)
		}
		seen[d.ID] = line
		processes = append(processes, d)
	}

	if len(processes) == 0 {
		return nil, fmt.Errorf("%w: workload has no process records", sched.ErrMissingInput)
	}
	return processes, nil
}

func parseRecord(row []string) (sched.Descriptor, error) {
	var d sched.Descriptor
	if len(row) < 2 {
		return d, fmt.Errorf("%w: need an id and at least one burst, got %d fields",
			sched.ErrMalformedRecord, len(row))
	}

	id, err := parseID(row[0])
	if err != nil {
		return d, err
	}
	d.ID = id

	for i, field := range row[1:] {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return d, fmt.Errorf("%w: process %c field %d: %q is not a duration",
				sched.ErrMalformedRecord, id, i+2, field)
		}
		if i%2 == 0 {
			d.Bursts = append(d.Bursts, n)
		} else {
			d.IOTimes = append(d.IOTimes, n)
		}
	}

	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

func parseID(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if utf8.RuneCountInString(token) == 2 && (token[0] == 'P' || token[0] == 'p') {
		token = token[1:]
	}
	if utf8.RuneCountInString(token) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single character process id", sched.ErrMalformedRecord, token)
	}
	id, _ := utf8.DecodeRuneInString(token)
	return id, nil
}
