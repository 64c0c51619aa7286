//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package bench

import (
	"net"
	"testing"

	"github.com/umn-ece-sartorilabs/MOTION/p2p"
)

// freePort reserves a free TCP port on the loopback interface.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port
}

func testConfig(t *testing.T, myID int, parties [2]p2p.Endpoint,
	op Operation) *Config {
	t.Helper()
	return &Config{
		MyID:        myID,
		Parties:     parties,
		Op:          op,
		VectorSize:  8,
		Repetitions: 2,
	}
}

// TestRunEndToEnd drives the full benchmark path over loopback TCP:
// connection setup, session seeding, evaluation, and the repetition
// summary.
func TestRunEndToEnd(t *testing.T) {
	parties := [2]p2p.Endpoint{
		{ID: 0, Host: "127.0.0.1", Port: freePort(t)},
		{ID: 1, Host: "127.0.0.1", Port: freePort(t)},
	}

	errs := make(chan error, 2)
	go func() {
		errs <- Run(testConfig(t, 0, parties, Billionaire))
	}()
	go func() {
		errs <- Run(testConfig(t, 1, parties, Billionaire))
	}()

	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Fatalf("Run: %v", err)
		}
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := &Config{
		MyID:        3,
		Op:          Sum,
		VectorSize:  8,
		Repetitions: 1,
	}
	if err := Run(cfg); err == nil {
		t.Fatalf("Run accepted invalid config")
	}
}
