//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

// Package bench implements the two-party secure aggregation
// benchmarks: their configuration, the data-oblivious computation
// graphs of the individual operations, and the repetition driver.
package bench

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/umn-ece-sartorilabs/MOTION/p2p"
)

// Operation defines the benchmark operation.
type Operation int

// Benchmark operations.
const (
	Sum Operation = iota
	Count
	ReLU
	Billionaire
)

func (op Operation) String() string {
	switch op {
	case Sum:
		return "Sum"
	case Count:
		return "Count"
	case ReLU:
		return "ReLU"
	case Billionaire:
		return "Billionaire"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// ParseOperation parses an operation name, case-insensitively.
func ParseOperation(val string) (Operation, error) {
	switch strings.ToLower(val) {
	case "sum":
		return Sum, nil
	case "count":
		return Count, nil
	case "relu":
		return ReLU, nil
	case "billionaire":
		return Billionaire, nil
	default:
		return 0, fmt.Errorf(
			"invalid operation %q: use sum, count, relu, or billionaire",
			val)
	}
}

// ParseEndpoint parses a party endpoint of the form "id,host,port".
func ParseEndpoint(val string) (p2p.Endpoint, error) {
	parts := strings.Split(val, ",")
	if len(parts) != 3 {
		return p2p.Endpoint{}, fmt.Errorf(
			"invalid party info %q: expected id,host,port", val)
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil || id < 0 {
		return p2p.Endpoint{}, fmt.Errorf(
			"invalid party id %q in %q", parts[0], val)
	}
	if len(parts[1]) == 0 {
		return p2p.Endpoint{}, fmt.Errorf("empty host in %q", val)
	}
	port, err := strconv.Atoi(parts[2])
	if err != nil || port < 1 || port > 65535 {
		return p2p.Endpoint{}, fmt.Errorf(
			"invalid port %q in %q", parts[2], val)
	}
	return p2p.Endpoint{
		ID:   id,
		Host: parts[1],
		Port: port,
	}, nil
}

// Config defines one benchmark run. It is constructed once from the
// command line arguments and never mutated afterwards.
type Config struct {
	MyID        int
	Parties     [2]p2p.Endpoint
	Op          Operation
	VectorSize  int
	Repetitions int
	Debug       bool
}

// Validate checks the configuration before any network activity.
func (cfg *Config) Validate() error {
	if cfg.MyID != 0 && cfg.MyID != 1 {
		return fmt.Errorf("my id must be 0 or 1, got %d", cfg.MyID)
	}
	var has0, has1 bool
	for _, ep := range cfg.Parties {
		switch ep.ID {
		case 0:
			has0 = true
		case 1:
			has1 = true
		default:
			return fmt.Errorf("invalid party id %d in endpoints", ep.ID)
		}
	}
	if !has0 || !has1 {
		return fmt.Errorf("need endpoints for parties 0 and 1")
	}
	if cfg.VectorSize < 0 {
		return fmt.Errorf("invalid vector size %d", cfg.VectorSize)
	}
	if cfg.Repetitions < 1 {
		return fmt.Errorf("invalid repetition count %d", cfg.Repetitions)
	}
	return nil
}
