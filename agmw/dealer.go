//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package agmw

import (
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// dealer expands correlated randomness from the session seed. Both
// parties run an identical ChaCha20 keystream and consume it in
// program order, so each party can derive its own half of every
// correlation without further communication.
type dealer struct {
	id     int
	stream *chacha20.Cipher
}

func newDealer(seed []byte, id int) (*dealer, error) {
	if len(seed) != chacha20.KeySize {
		return nil, fmt.Errorf("invalid session seed length %d", len(seed))
	}
	nonce := make([]byte, chacha20.NonceSize)
	stream, err := chacha20.NewUnauthenticatedCipher(seed, nonce)
	if err != nil {
		return nil, err
	}
	return &dealer{
		id:     id,
		stream: stream,
	}, nil
}

// bytes returns the next n keystream bytes.
func (d *dealer) bytes(n int) []uint8 {
	buf := make([]uint8, n)
	d.stream.XORKeyStream(buf, buf)
	return buf
}

// bits returns the next n keystream bits, one per byte.
func (d *dealer) bits(n int) []uint8 {
	buf := d.bytes(n)
	for i := range buf {
		buf[i] &= 1
	}
	return buf
}

// split returns this party's additive share of v. The keystream is
// consumed identically by both parties, so the two halves sum to v.
func (d *dealer) split(v []uint8) []uint8 {
	s0 := d.bytes(len(v))
	if d.id == 0 {
		return s0
	}
	return subVec(v, s0)
}

// splitBits returns this party's XOR share of the bit vector v.
func (d *dealer) splitBits(v []uint8) []uint8 {
	s0 := d.bits(len(v))
	if d.id == 0 {
		return s0
	}
	return xorVec(v, s0)
}

// triple returns this party's shares of a Beaver multiplication
// triple (a, b, c) with c = a*b, element-wise over n elements.
func (d *dealer) triple(n int) (a, b, c []uint8) {
	av := d.bytes(n)
	bv := d.bytes(n)
	cv := mulVec(av, bv)
	return d.split(av), d.split(bv), d.split(cv)
}

// bitTriple returns this party's XOR shares of a GF(2) AND triple
// (a, b, c) with c = a AND b.
func (d *dealer) bitTriple(n int) (a, b, c []uint8) {
	av := d.bits(n)
	bv := d.bits(n)
	cv := andVec(av, bv)
	return d.splitBits(av), d.splitBits(bv), d.splitBits(cv)
}

// a2bMask returns this party's arithmetic share of a random mask r
// together with XOR shares of r's eight bit planes.
func (d *dealer) a2bMask(n int) (r []uint8, rbits [8][]uint8) {
	rv := d.bytes(n)
	r = d.split(rv)
	for j := uint(0); j < 8; j++ {
		rbits[j] = d.splitBits(bit(rv, j))
	}
	return
}

// daBit returns this party's shares of a random bit rho, both as an
// additive share mod 2^8 and as an XOR share.
func (d *dealer) daBit(n int) (arith, xor []uint8) {
	rho := d.bits(n)
	return d.split(rho), d.splitBits(rho)
}
