//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package agmw

// Element-wise vector helpers over Z_2^8. The uint8 arithmetic wraps
// naturally, which is exactly the ring reduction.

func addVec(a, b []uint8) []uint8 {
	result := make([]uint8, len(a))
	for i := range a {
		result[i] = a[i] + b[i]
	}
	return result
}

func subVec(a, b []uint8) []uint8 {
	result := make([]uint8, len(a))
	for i := range a {
		result[i] = a[i] - b[i]
	}
	return result
}

func mulVec(a, b []uint8) []uint8 {
	result := make([]uint8, len(a))
	for i := range a {
		result[i] = a[i] * b[i]
	}
	return result
}

func xorVec(a, b []uint8) []uint8 {
	result := make([]uint8, len(a))
	for i := range a {
		result[i] = a[i] ^ b[i]
	}
	return result
}

func andVec(a, b []uint8) []uint8 {
	result := make([]uint8, len(a))
	for i := range a {
		result[i] = a[i] & b[i]
	}
	return result
}

// notBit complements a public bit vector.
func notBit(a []uint8) []uint8 {
	result := make([]uint8, len(a))
	for i := range a {
		result[i] = a[i] ^ 1
	}
	return result
}

// bit extracts bit j of every element of the public vector v.
func bit(v []uint8, j uint) []uint8 {
	result := make([]uint8, len(v))
	for i := range v {
		result[i] = (v[i] >> j) & 1
	}
	return result
}
