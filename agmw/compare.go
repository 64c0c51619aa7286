//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package agmw

// Unsigned 8-bit comparison on additive shares: both operands are bit
// decomposed into XOR shares via a masked opening, compared with a
// GF(2) circuit, and the result bit is converted back to an additive
// share. The gate sequence is fixed and independent of the share
// values.

func (s *Session) execGt(in *instr) error {
	xbits, err := s.toBits(s.wires[in.a])
	if err != nil {
		return err
	}
	ybits, err := s.toBits(s.wires[in.b])
	if err != nil {
		return err
	}
	gt, err := s.gtBits(in.n, xbits, ybits)
	if err != nil {
		return err
	}
	out, err := s.bitToArith(gt)
	if err != nil {
		return err
	}
	s.wires[in.out] = out
	return nil
}

// toBits converts an additive share of x into XOR shares of x's bit
// planes. The parties open m = x + r for a dealer mask r and compute
// the bits of m - r with a borrow-propagation circuit; the bits of r
// are XOR shared by the dealer, so only the AND gates of the borrow
// chain need communication.
func (s *Session) toBits(x []uint8) ([8][]uint8, error) {
	var bits [8][]uint8

	n := len(x)
	r, rbits := s.deal.a2bMask(n)

	m, err := s.openArith(addVec(x, r))
	if err != nil {
		return bits, err
	}

	// m - r bitwise: d_j = m_j ^ r_j ^ borrow, and the borrow out of
	// bit j is maj(~m_j, r_j, borrow).
	borrow := make([]uint8, n)
	for j := uint(0); j < 8; j++ {
		mj := bit(m, j)

		d := xorVec(rbits[j], borrow)
		if s.id == 0 {
			d = xorVec(d, mj)
		}
		bits[j] = d

		if j == 7 {
			break
		}
		nm := notBit(mj)
		rb, err := s.andBits(rbits[j], borrow)
		if err != nil {
			return bits, err
		}
		borrow = xorVec(xorVec(andVec(nm, rbits[j]), andVec(nm, borrow)), rb)
	}
	return bits, nil
}

// andBits computes the element-wise AND of two XOR-shared bit vectors
// with a GF(2) Beaver triple.
func (s *Session) andBits(u, v []uint8) ([]uint8, error) {
	a, b, c := s.deal.bitTriple(len(u))

	opened, err := s.exchange(xorVec(u, a), xorVec(v, b))
	if err != nil {
		return nil, err
	}
	d := xorVec(xorVec(u, a), opened[0])
	e := xorVec(xorVec(v, b), opened[1])

	z := xorVec(c, xorVec(andVec(d, b), andVec(e, a)))
	if s.id == 0 {
		z = xorVec(z, andVec(d, e))
	}
	return z, nil
}

// gtBits evaluates the unsigned greater-than circuit over XOR-shared
// bit planes, LSB to MSB:
//
//	gt_j = (x_j & ^y_j) ^ ((x_j == y_j) & gt_{j-1})
func (s *Session) gtBits(n int, xbits, ybits [8][]uint8) ([]uint8, error) {
	gt := make([]uint8, n)
	for j := 0; j < 8; j++ {
		xy, err := s.andBits(xbits[j], ybits[j])
		if err != nil {
			return nil, err
		}
		t := xorVec(xbits[j], ybits[j])
		tg, err := s.andBits(t, gt)
		if err != nil {
			return nil, err
		}
		gt = xorVec(xorVec(xorVec(xbits[j], xy), gt), tg)
	}
	return gt, nil
}

// bitToArith converts an XOR-shared bit vector into an additive share
// mod 2^8 using a dealer daBit: the parties open eps = b ^ rho and
// compute [b] = eps + [rho] - 2*eps*[rho] locally.
func (s *Session) bitToArith(b []uint8) ([]uint8, error) {
	rho, rhoBits := s.deal.daBit(len(b))

	eps, err := s.openBits(xorVec(b, rhoBits))
	if err != nil {
		return nil, err
	}

	out := make([]uint8, len(b))
	for i := range out {
		if eps[i] == 0 {
			out[i] = rho[i]
		} else {
			out[i] = -rho[i]
			if s.id == 0 {
				out[i] = 1 - rho[i]
			}
		}
	}
	return out, nil
}
