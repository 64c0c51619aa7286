//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package bench

import (
	"errors"

	"github.com/umn-ece-sartorilabs/MOTION/agmw"
)

// The builders never branch on secret data: conditionals are
// re-expressed as share algebra, and every party issues the identical
// sequence of collective calls, substituting zero placeholders for
// inputs it does not own.

var errEmptyInput = errors.New("empty input vector")

// shareOwned issues the collective input call for a vector owned by
// the argument party. Parties other than the owner contribute a
// same-shaped zero placeholder so the call sequence matches.
func shareOwned(sess *agmw.Session, owner int, data []uint8) (
	agmw.Share, error) {

	if sess.ID() != owner {
		data = make([]uint8, len(data))
	}
	return sess.In(data, owner)
}

// shareBoth shares this party's input under its own id and a zero
// placeholder under the peer's id, returning both input shares.
func shareBoth(sess *agmw.Session, mine []uint8) (
	p0, p1 agmw.Share, err error) {

	p0, err = shareOwned(sess, 0, mine)
	if err != nil {
		return
	}
	p1, err = shareOwned(sess, 1, mine)
	return
}

// publicConst injects a public constant into the share algebra:
// party 0 shares the constant vector, party 1 a zero placeholder,
// both under owner id 0.
func publicConst(sess *agmw.Session, value uint8, n int) (
	agmw.Share, error) {

	vec := make([]uint8, n)
	if sess.ID() == 0 {
		for i := range vec {
			vec[i] = value
		}
	}
	return sess.In(vec, 0)
}

// mux is the oblivious conditional "if pred then val else 0": the
// 0/1 predicate share is multiplied into the value share. With a
// constant-one value this promotes a comparison result into an
// addable indicator.
func mux(sess *agmw.Session, pred, val agmw.Share) (agmw.Share, error) {
	return sess.Mul(pred, val)
}

// reduceSum folds scalar shares into one scalar by repeated addition.
func reduceSum(sess *agmw.Session, elems []agmw.Share) (
	agmw.Share, error) {

	if len(elems) == 0 {
		return agmw.Share{}, errEmptyInput
	}
	total := elems[0]
	var err error
	for _, e := range elems[1:] {
		total, err = sess.Add(total, e)
		if err != nil {
			return agmw.Share{}, err
		}
	}
	return total, nil
}
