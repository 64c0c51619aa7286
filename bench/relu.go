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

// signThreshold separates the two halves of the ring: unsigned values
// below 128 reinterpret as non-negative signed values.
const signThreshold = 1 << 7

// reluResult reveals the sum of max(0, x) over the combined signed
// input vector. Signed values ride the ring as their two's-complement
// unsigned images, so x >= 0 becomes the public comparison
// 128 > image(x), and the comparison bit muxes the value itself.
func reluResult(sess *agmw.Session, input []int8) (int8, error) {
	n := len(input)
	if n == 0 {
		return 0, errEmptyInput
	}
	image := make([]uint8, n)
	for i, v := range input {
		image[i] = uint8(v)
	}
	p0, p1, err := shareBoth(sess, image)
	if err != nil {
		return 0, err
	}
	combined, err := sess.Add(p0, p1)
	if err != nil {
		return 0, err
	}
	threshold, err := publicConst(sess, signThreshold, n)
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
	rectified := make([]agmw.Share, n)
	for i := range elems {
		nonNeg, err := sess.Gt(thElems[i], elems[i])
		if err != nil {
			return 0, err
		}
		rectified[i], err = mux(sess, nonNeg, elems[i])
		if err != nil {
			return 0, err
		}
	}
	total, err := reduceSum(sess, rectified)
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
	return out.Int8()
}

func runReLU(sess *agmw.Session, cfg *Config) (int64, error) {
	myID := sess.ID()
	input := randomSigned(cfg.VectorSize, myID, -50, 50)

	fmt.Printf("Party %d: ReLU max(0,x) on %d signed integers "+
		"(-50 to +50)\n", myID, cfg.VectorSize)
	if cfg.Debug {
		local := 0
		for _, v := range input {
			if v > 0 {
				local += int(v)
			}
		}
		fmt.Printf("[DEBUG] Party %d local signed input (first up to 8): %v\n",
			myID, input[:min(8, len(input))])
		fmt.Printf("[DEBUG] Expected local ReLU sum = %d\n", local)
	}

	result, err := reluResult(sess, input)
	if err != nil {
		return 0, fmt.Errorf("relu: %w", err)
	}
	fmt.Printf("ReLU sum result = %d\n", result)
	return int64(result), nil
}
