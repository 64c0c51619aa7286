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

// sumResult reveals the sum of both parties' input vectors: the two
// input shares are combined element-wise, unbatched, and reduced by
// repeated addition into one scalar.
func sumResult(sess *agmw.Session, input []uint8) (uint8, error) {
	if len(input) == 0 {
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
	elems, err := sess.Unsimdify(combined)
	if err != nil {
		return 0, err
	}
	total, err := reduceSum(sess, elems)
	if err != nil {
		return 0, err
	}
	out, err := sess.Out(total)
	if err != nil {
		return 0, err
	}
	if err := sess.Run(); err != nil {
		return 0, err
	}
	return out.Uint8()
}

func runSum(sess *agmw.Session, cfg *Config) (int64, error) {
	myID := sess.ID()
	input := randomUnsigned(cfg.VectorSize, myID, 1, 100)

	fmt.Printf("Party %d: SUM-REDUCE on %d integers (1-100), "+
		"both parties contribute\n", myID, cfg.VectorSize)
	if cfg.Debug {
		var localSum uint64
		for _, v := range input {
			localSum += uint64(v)
		}
		fmt.Printf("[DEBUG] Party %d local input (first 16): %v\n",
			myID, head(input, 16))
		fmt.Printf("[DEBUG] Party %d local sum = %d\n", myID, localSum)
	}

	result, err := sumResult(sess, input)
	if err != nil {
		return 0, fmt.Errorf("sum: %w", err)
	}
	fmt.Printf("Sum result = %d\n", result)
	return int64(result), nil
}
