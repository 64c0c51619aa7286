//
// main.go
//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/umn-ece-sartorilabs/MOTION/bench"
)

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage: %s <my-id> <party0-info> <party1-info> <operation> "+
			"<vector-size> [repetitions] [--debug]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, `
  my-id        this party's id (0 or 1)
  partyN-info  id,host,port of party N, e.g. 0,127.0.0.1,23000
  operation    sum | count | relu | billionaire
  vector-size  number of elements per input vector
  repetitions  benchmark repetitions (default 1)
  --debug, -d  print local input vectors and plaintext checks
`)
}

func parseArgs(args []string) (*bench.Config, error) {
	if len(args) < 5 {
		return nil, fmt.Errorf("expected at least 5 arguments, got %d",
			len(args))
	}

	cfg := &bench.Config{
		Repetitions: 1,
	}

	myID, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid my-id %q", args[0])
	}
	cfg.MyID = myID

	for i := 0; i < 2; i++ {
		ep, err := bench.ParseEndpoint(args[1+i])
		if err != nil {
			return nil, err
		}
		if ep.ID != i {
			return nil, fmt.Errorf("party %d info has id %d", i, ep.ID)
		}
		cfg.Parties[i] = ep
	}

	cfg.Op, err = bench.ParseOperation(args[3])
	if err != nil {
		return nil, err
	}

	cfg.VectorSize, err = strconv.Atoi(args[4])
	if err != nil || cfg.VectorSize < 0 {
		return nil, fmt.Errorf("invalid vector-size %q", args[4])
	}

	rest := args[5:]
	if len(rest) > 0 {
		if reps, err := strconv.Atoi(rest[0]); err == nil {
			if reps < 1 {
				return nil, fmt.Errorf("invalid repetitions %q", rest[0])
			}
			cfg.Repetitions = reps
			rest = rest[1:]
		}
	}
	for _, arg := range rest {
		switch arg {
		case "--debug", "-d":
			cfg.Debug = true
		default:
			fmt.Fprintf(os.Stderr, "Warning: ignoring argument %q\n", arg)
		}
	}

	return cfg, nil
}

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		usage()
		os.Exit(1)
	}
	if err := bench.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
