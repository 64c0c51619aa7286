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

// billionaireResult compares per-round wealth totals of the two
// parties over three asset vectors each and reveals the combined
// tally of strict wins: rounds party 0 is richer count once, rounds
// party 1 is richer count once, ties count for neither.
func billionaireResult(sess *agmw.Session,
	cash, property, stock []uint8) (uint8, error) {

	n := len(cash)
	if n == 0 {
		return 0, errEmptyInput
	}
	if len(property) != n || len(stock) != n {
		return 0, agmw.ErrShapeMismatch
	}

	var shares [2][3]agmw.Share
	for owner := 0; owner < 2; owner++ {
		for j, vec := range [][]uint8{cash, property, stock} {
			s, err := shareOwned(sess, owner, vec)
			if err != nil {
				return 0, err
			}
			shares[owner][j] = s
		}
	}

	var totals [2]agmw.Share
	for owner := 0; owner < 2; owner++ {
		partial, err := sess.Add(shares[owner][0], shares[owner][1])
		if err != nil {
			return 0, err
		}
		totals[owner], err = sess.Add(partial, shares[owner][2])
		if err != nil {
			return 0, err
		}
	}

	one, err := publicConst(sess, 1, n)
	if err != nil {
		return 0, err
	}
	var winCounts [2]agmw.Share
	for owner := 0; owner < 2; owner++ {
		richer, err := sess.Gt(totals[owner], totals[1-owner])
		if err != nil {
			return 0, err
		}
		wins, err := mux(sess, richer, one)
		if err != nil {
			return 0, err
		}
		elems, err := sess.Unsimdify(wins)
		if err != nil {
			return 0, err
		}
		winCounts[owner], err = reduceSum(sess, elems)
		if err != nil {
			return 0, err
		}
	}

	tally, err := sess.Add(winCounts[0], winCounts[1])
	if err != nil {
		return 0, err
	}
	out, err := sess.Out(tally)
	if err != nil {
		return 0, err
	}
	if err := sess.Run(); err != nil {
		return 0, err
	}
	return out.Uint8()
}

func runBillionaire(sess *agmw.Session, cfg *Config) (int64, error) {
	myID := sess.ID()
	cash := randomUnsigned(cfg.VectorSize, myID, 10, 100)
	property := randomUnsigned(cfg.VectorSize, myID, 10, 100)
	stock := randomUnsigned(cfg.VectorSize, myID, 10, 100)

	fmt.Printf("Party %d: BILLIONAIRE wealth comparison on %d values\n",
		myID, cfg.VectorSize)
	if cfg.Debug {
		fmt.Printf("[DEBUG] Party %d cash (first 16): %v\n",
			myID, head(cash, 16))
		fmt.Printf("[DEBUG] Party %d property (first 16): %v\n",
			myID, head(property, 16))
		fmt.Printf("[DEBUG] Party %d stock (first 16): %v\n",
			myID, head(stock, 16))
	}

	result, err := billionaireResult(sess, cash, property, stock)
	if err != nil {
		return 0, fmt.Errorf("billionaire: %w", err)
	}
	fmt.Printf("Billionaire total comparisons (P0 wins + P1 wins) = %d\n",
		result)
	return int64(result), nil
}
