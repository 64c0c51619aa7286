//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package bench

import (
	"math/rand"
)

// Benchmark inputs are reproducible per party id: two runs of the
// same party generate bit-identical vectors. This is a benchmarking
// requirement, not protocol randomness; the latter comes from the
// engine.
const (
	inputSeedBase   = 1000
	inputSeedStride = 12345
)

func inputRand(partyID int) *rand.Rand {
	return rand.New(rand.NewSource(
		int64(inputSeedBase + partyID*inputSeedStride)))
}

// randomUnsigned generates n uniform values in [min, max].
func randomUnsigned(n, partyID int, min, max uint8) []uint8 {
	rng := inputRand(partyID)
	result := make([]uint8, n)
	for i := range result {
		result[i] = min + uint8(rng.Intn(int(max)-int(min)+1))
	}
	return result
}

// head returns the first n elements for debug printouts.
func head(v []uint8, n int) []uint8 {
	if len(v) < n {
		n = len(v)
	}
	return v[:n]
}

// randomSigned generates n uniform signed values in [min, max].
func randomSigned(n, partyID int, min, max int8) []int8 {
	rng := inputRand(partyID)
	result := make([]int8, n)
	for i := range result {
		result[i] = min + int8(rng.Intn(int(max)-int(min)+1))
	}
	return result
}
