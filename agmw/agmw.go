//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

// Package agmw implements a two-party arithmetic GMW protocol over
// the ring Z_2^8. Values are additively secret shared between the
// parties; all operations are SIMD over equal-length vectors.
//
// Both parties must issue the identical sequence of graph calls: the
// protocol is a fixed sequence of collective message exchanges, and
// only the message contents differ per party. A party that skips or
// reorders a call desynchronizes the protocol and deadlocks its peer.
//
// Multiplication uses Beaver triples and comparison uses masked bit
// decomposition with GF(2) AND triples. The correlated randomness
// behind both is expanded deterministically from a session seed known
// to both parties. This preprocessing is benchmark grade: the online
// message pattern is that of the real semi-honest protocol, but the
// correlations themselves offer no privacy.
package agmw

import (
	"errors"
)

// Kind defines the type of a shared value.
type Kind uint8

// Share kinds.
const (
	// Arith is an additive share of an 8-bit ring element.
	Arith Kind = iota

	// Bit is an additive share whose revealed value is 0 or 1,
	// produced by comparisons. Bit shares can be used directly in
	// arithmetic operations.
	Bit
)

func (k Kind) String() string {
	switch k {
	case Arith:
		return "arith"
	case Bit:
		return "bit"
	default:
		return "?"
	}
}

// Session usage errors.
var (
	ErrSessionExecuted = errors.New("session already executed")
	ErrNotExecuted     = errors.New("session not executed")
	ErrShapeMismatch   = errors.New("share shape mismatch")
	ErrKindMismatch    = errors.New("share kind mismatch")
	ErrEmptyShare      = errors.New("empty share")
)

// Share is one party's handle to a secret-shared vector. Shares are
// immutable; every operation yields a new share.
type Share struct {
	wire int
	n    int
	kind Kind
}

// Size returns the element count of the share.
func (s Share) Size() int {
	return s.n
}

// Kind returns the kind of the share.
func (s Share) Kind() Kind {
	return s.kind
}

// Result is a pending revealed value. Its plaintext is available only
// after Session.Run has completed.
type Result struct {
	wire  int
	val   []uint8
	ready bool
}

// Vector returns the revealed plaintext vector.
func (r *Result) Vector() ([]uint8, error) {
	if !r.ready {
		return nil, ErrNotExecuted
	}
	return r.val, nil
}

// Uint8 returns the first element of the revealed plaintext.
func (r *Result) Uint8() (uint8, error) {
	if !r.ready {
		return 0, ErrNotExecuted
	}
	if len(r.val) == 0 {
		return 0, ErrEmptyShare
	}
	return r.val[0], nil
}

// Int8 returns the first element of the revealed plaintext
// reinterpreted as a two's-complement signed value.
func (r *Result) Int8() (int8, error) {
	v, err := r.Uint8()
	if err != nil {
		return 0, err
	}
	return int8(v), nil
}
