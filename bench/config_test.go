//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package bench

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/umn-ece-sartorilabs/MOTION/p2p"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		input string
		op    Operation
		ok    bool
	}{
		{"sum", Sum, true},
		{"SUM", Sum, true},
		{"count", Count, true},
		{"relu", ReLU, true},
		{"ReLU", ReLU, true},
		{"billionaire", Billionaire, true},
		{"mean", 0, false},
		{"", 0, false},
	}
	for _, test := range tests {
		op, err := ParseOperation(test.input)
		if test.ok {
			if err != nil {
				t.Errorf("ParseOperation(%q): %v", test.input, err)
			} else if op != test.op {
				t.Errorf("ParseOperation(%q)=%v, expected %v",
					test.input, op, test.op)
			}
		} else if err == nil {
			t.Errorf("ParseOperation(%q) did not fail", test.input)
		}
	}
}

func TestParseEndpoint(t *testing.T) {
	ep, err := ParseEndpoint("0,127.0.0.1,23000")
	if err != nil {
		t.Fatalf("ParseEndpoint: %v", err)
	}
	expected := p2p.Endpoint{
		ID:   0,
		Host: "127.0.0.1",
		Port: 23000,
	}
	if diff := cmp.Diff(expected, ep); diff != "" {
		t.Errorf("endpoint mismatch (-expected +got):\n%s", diff)
	}

	invalid := []string{
		"",
		"0,127.0.0.1",
		"0,127.0.0.1,23000,extra",
		"x,127.0.0.1,23000",
		"-1,127.0.0.1,23000",
		"0,,23000",
		"0,127.0.0.1,0",
		"0,127.0.0.1,70000",
		"0,127.0.0.1,port",
	}
	for _, input := range invalid {
		if _, err := ParseEndpoint(input); err == nil {
			t.Errorf("ParseEndpoint(%q) did not fail", input)
		}
	}
}

func validConfig() *Config {
	return &Config{
		MyID: 0,
		Parties: [2]p2p.Endpoint{
			{ID: 0, Host: "127.0.0.1", Port: 23000},
			{ID: 1, Host: "127.0.0.1", Port: 23001},
		},
		Op:          Sum,
		VectorSize:  100,
		Repetitions: 1,
	}
}

func TestConfigValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{
			"my id out of range",
			func(cfg *Config) { cfg.MyID = 2 },
		},
		{
			"duplicate party id",
			func(cfg *Config) { cfg.Parties[1].ID = 0 },
		},
		{
			"negative vector size",
			func(cfg *Config) { cfg.VectorSize = -1 },
		},
		{
			"zero repetitions",
			func(cfg *Config) { cfg.Repetitions = 0 },
		},
	}
	for _, test := range tests {
		cfg := validConfig()
		test.modify(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate did not fail", test.name)
		}
	}
}
