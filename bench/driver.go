//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package bench

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/markkurossi/tabulate"
	"github.com/umn-ece-sartorilabs/MOTION/agmw"
	"github.com/umn-ece-sartorilabs/MOTION/p2p"
)

// Run executes the configured benchmark: for each repetition it
// establishes a fresh connection and session, builds and evaluates
// the operation, and prints the per-repetition profiling report.
// Any repetition failure aborts the run without a summary.
func Run(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	debugMode := "OFF"
	if cfg.Debug {
		debugMode = "ON"
	}
	fmt.Printf("=== %s Benchmark ===\n", cfg.Op)
	fmt.Printf("My ID: %d\n", cfg.MyID)
	fmt.Printf("Vector size: %d\n", cfg.VectorSize)
	fmt.Printf("Repetitions: %d\n", cfg.Repetitions)
	fmt.Printf("Debug mode: %s\n", debugMode)
	fmt.Printf("All parties:\n")
	for i, ep := range cfg.Parties {
		var marker string
		if i == cfg.MyID {
			marker = " (me)"
		}
		fmt.Printf("  Party %d: %s%s\n", i, ep.Addr(), marker)
	}

	var stats runStats
	for rep := 1; rep <= cfg.Repetitions; rep++ {
		fmt.Printf("\n--- Repetition %d/%d ---\n", rep, cfg.Repetitions)
		result, timing, ioStats, err := runOnce(cfg)
		if err != nil {
			return fmt.Errorf("repetition %d: %w", rep, err)
		}
		timing.Print(os.Stdout, ioStats)
		fmt.Printf("Repetition %d completed.\n", rep)
		stats.add(result, timing, ioStats)
	}
	if cfg.Repetitions > 1 {
		stats.print(os.Stdout)
	}
	fmt.Printf("\n=== Benchmark Complete ===\n")
	return nil
}

// runOnce runs one repetition over a fresh connection. The session
// owns the connection and is closed before returning.
func runOnce(cfg *Config) (int64, *Timing, p2p.IOStats, error) {
	timing := NewTiming()

	conn, err := p2p.Establish(cfg.MyID, cfg.Parties)
	if err != nil {
		return 0, nil, p2p.IOStats{}, err
	}
	sess, err := agmw.NewSession(conn, cfg.MyID)
	if err != nil {
		conn.Close()
		return 0, nil, p2p.IOStats{}, err
	}
	defer sess.Close()
	timing.Sample("Connect", nil)

	var result int64
	switch cfg.Op {
	case Sum:
		result, err = runSum(sess, cfg)
	case Count:
		result, err = runCount(sess, cfg)
	case ReLU:
		result, err = runReLU(sess, cfg)
	case Billionaire:
		result, err = runBillionaire(sess, cfg)
	default:
		err = fmt.Errorf("invalid operation %d", cfg.Op)
	}
	if err != nil {
		return 0, nil, p2p.IOStats{}, err
	}

	ioStats := sess.Stats()
	timing.Sample("Eval", []string{FileSize(ioStats.Sum()).String()})
	return result, timing, ioStats, nil
}

// repStats is the per-repetition row of the run summary.
type repStats struct {
	result  int64
	connect time.Duration
	eval    time.Duration
	total   time.Duration
	xfer    uint64
}

// runStats accumulates per-repetition outcomes for the run summary.
type runStats struct {
	reps []repStats
}

func (r *runStats) add(result int64, timing *Timing, stats p2p.IOStats) {
	rep := repStats{
		result: result,
		total:  timing.Total(),
		xfer:   stats.Sum(),
	}
	for _, sample := range timing.Samples {
		d := sample.End.Sub(sample.Start)
		switch sample.Label {
		case "Connect":
			rep.connect = d
		case "Eval":
			rep.eval = d
		}
	}
	r.reps = append(r.reps, rep)
}

func (r *runStats) print(w io.Writer) {
	if len(r.reps) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Rep").SetAlign(tabulate.MR)
	tab.Header("Connect").SetAlign(tabulate.MR)
	tab.Header("Eval").SetAlign(tabulate.MR)
	tab.Header("Total").SetAlign(tabulate.MR)
	tab.Header("Xfer").SetAlign(tabulate.MR)
	tab.Header("Result").SetAlign(tabulate.MR)

	for i, rep := range r.reps {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", i+1))
		row.Column(rep.connect.String())
		row.Column(rep.eval.String())
		row.Column(rep.total.String())
		row.Column(FileSize(rep.xfer).String())
		row.Column(fmt.Sprintf("%d", rep.result))
	}

	min, max := r.reps[0].total, r.reps[0].total
	var sum time.Duration
	for _, rep := range r.reps {
		if rep.total < min {
			min = rep.total
		}
		if rep.total > max {
			max = rep.total
		}
		sum += rep.total
	}
	avg := sum / time.Duration(len(r.reps))

	row := tab.Row()
	row.Column("Min/Avg/Max").SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column("")
	row.Column(fmt.Sprintf("%s / %s / %s", min, avg, max)).
		SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column("")
	tab.Print(w)

	stable := true
	for _, rep := range r.reps[1:] {
		if rep.result != r.reps[0].result {
			stable = false
			break
		}
	}
	if stable {
		fmt.Fprintf(w, "Result = %d in every repetition\n", r.reps[0].result)
	} else {
		fmt.Fprintf(w, "Warning: results differed across repetitions\n")
	}
}
