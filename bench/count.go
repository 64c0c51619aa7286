//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package bench

import (
	"fmt"

	"github.com/umn-ece-sartorilabs/MOTION/agmw"
)

// countThreshold is the public cutoff: elements strictly greater
// count, elements equal to it do not.
const countThreshold = 50

// countResult reveals how many elements of the combined input vector
// strictly exceed countThreshold. Each comparison bit is promoted to
// an addable 0/1 indicator and accumulated into a running tally.
func countResult(sess *agmw.Session, input []uint8) (uint8, error) {
	n := len(input)
	if n == 0 {
		return 0, errEmptyInput
	}
	p0, p1, err := shareBoth(sess, input)
	if err != nil {
		return 0, err
	}
	combined, err := sess.Add(p0, p1)
	if err != nil {
		return 0, err
	}
	threshold, err := publicConst(sess, countThreshold, n)
	if err != nil {
		return 0, err
	}
	elems, err := sess.Unsimdify(combined)
	if err != nil {
		return 0, err
	}
	thElems, err := sess.Unsimdify(threshold)
	if err != nil {
		return 0, err
	}
	count, err := publicConst(sess, 0, 1)
	if err != nil {
		return 0, err
	}
	one, err := publicConst(sess, 1, 1)
	if err != nil {
		return 0, err
	}
	for i := range elems {
		above, err := sess.Gt(elems[i], thElems[i])
		if err != nil {
			return 0, err
		}
		indicator, err := mux(sess, above, one)
		if err != nil {
			return 0, err
		}
		count, err = sess.Add(count, indicator)
		if err != nil {
			return 0, err
		}
	}
	out, err := sess.Out(count)
	if err != nil {
		return 0, err
	}
	if err := sess.Run(); err != nil {
		return 0, err
	}
	return out.Uint8()
}

func runCount(sess *agmw.Session, cfg *Config) (int64, error) {
	myID := sess.ID()
	input := randomUnsigned(cfg.VectorSize, myID, 0, 100)

	fmt.Printf("Party %d: COUNT elements > %d from %d integers (0-100)\n",
		myID, countThreshold, cfg.VectorSize)
	if cfg.Debug {
		local := 0
		for _, v := range input {
			if v > countThreshold {
				local++
			}
		}
		fmt.Printf("[DEBUG] Party %d local input (first up to 8): %v\n",
			myID, head(input, 8))
		fmt.Printf("[DEBUG] Party %d local count > %d = %d\n",
			myID, countThreshold, local)
	}

	result, err := countResult(sess, input)
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	fmt.Printf("Count result = %d\n", result)
	return int64(result), nil
}
