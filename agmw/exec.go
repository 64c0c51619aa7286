//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package agmw

import (
	"crypto/rand"
	"fmt"
)

// Run executes the recorded program. Both parties must have recorded
// the identical program; Run performs the lock-step message exchanges
// of the protocol and is the session's sole blocking point. Any graph
// call after Run fails with ErrSessionExecuted.
func (s *Session) Run() error {
	if s.state != stateBuilding {
		return ErrSessionExecuted
	}
	s.state = stateExecuted

	s.wires = make([][]uint8, s.numWires)

	for idx := range s.prog {
		in := &s.prog[idx]

		var err error
		switch in.op {
		case opIn:
			err = s.execIn(in)

		case opAdd:
			s.wires[in.out] = addVec(s.wires[in.a], s.wires[in.b])

		case opMul:
			err = s.execMul(in)

		case opGt:
			err = s.execGt(in)

		case opPack:
			packed := make([]uint8, 0, in.n)
			for _, w := range in.ins {
				packed = append(packed, s.wires[w]...)
			}
			s.wires[in.out] = packed

		case opUnpack:
			for i, w := range in.outs {
				s.wires[w] = []uint8{s.wires[in.a][i]}
			}

		case opOut:
			var val []uint8
			val, err = s.openArith(s.wires[in.a])
			if err == nil {
				in.result.val = val
				in.result.ready = true
			}

		default:
			err = fmt.Errorf("invalid opcode %v", in.op)
		}
		if err != nil {
			return fmt.Errorf("op %d: %w", idx, err)
		}
	}
	return nil
}

// execIn secret shares one input vector: the owner masks its
// plaintext with fresh randomness and sends the mask to the peer.
func (s *Session) execIn(in *instr) error {
	if in.owner == s.id {
		mask := make([]uint8, in.n)
		if _, err := rand.Read(mask); err != nil {
			return err
		}
		s.wires[in.out] = subVec(in.data, mask)
		if err := s.conn.SendVector(mask); err != nil {
			return err
		}
		return s.conn.Flush()
	}

	share, err := s.conn.ReceiveVector(in.n)
	if err != nil {
		return err
	}
	s.wires[in.out] = share
	return nil
}

// execMul multiplies with a Beaver triple: open d = x-a and e = y-b,
// then z = c + d*[b] + e*[a], with the public d*e term applied by
// party 0 only.
func (s *Session) execMul(in *instr) error {
	x := s.wires[in.a]
	y := s.wires[in.b]

	a, b, c := s.deal.triple(in.n)

	opened, err := s.exchange(subVec(x, a), subVec(y, b))
	if err != nil {
		return err
	}
	d := addVec(subVec(x, a), opened[0])
	e := addVec(subVec(y, b), opened[1])

	z := addVec(c, addVec(mulVec(d, b), mulVec(e, a)))
	if s.id == 0 {
		z = addVec(z, mulVec(d, e))
	}
	s.wires[in.out] = z
	return nil
}

// exchange sends this party's halves of the argument vectors to the
// peer and receives the peer's halves. The order is fixed by party
// id so both parties stay in lock-step.
func (s *Session) exchange(vals ...[]uint8) ([][]uint8, error) {
	peer := make([][]uint8, len(vals))

	if s.id == 0 {
		for _, v := range vals {
			if err := s.conn.SendVector(v); err != nil {
				return nil, err
			}
		}
		if err := s.conn.Flush(); err != nil {
			return nil, err
		}
		for i, v := range vals {
			p, err := s.conn.ReceiveVector(len(v))
			if err != nil {
				return nil, err
			}
			peer[i] = p
		}
	} else {
		for i, v := range vals {
			p, err := s.conn.ReceiveVector(len(v))
			if err != nil {
				return nil, err
			}
			peer[i] = p
		}
		for _, v := range vals {
			if err := s.conn.SendVector(v); err != nil {
				return nil, err
			}
		}
		if err := s.conn.Flush(); err != nil {
			return nil, err
		}
	}
	return peer, nil
}

// openArith reveals an additively shared vector.
func (s *Session) openArith(v []uint8) ([]uint8, error) {
	peer, err := s.exchange(v)
	if err != nil {
		return nil, err
	}
	return addVec(v, peer[0]), nil
}

// openBits reveals an XOR-shared bit vector.
func (s *Session) openBits(v []uint8) ([]uint8, error) {
	peer, err := s.exchange(v)
	if err != nil {
		return nil, err
	}
	return xorVec(v, peer[0]), nil
}
