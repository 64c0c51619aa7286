//
// Copyright (c) 2026 UMN ECE Sartori Labs
//
// All rights reserved.
//

package agmw

import (
	"crypto/rand"
	"fmt"

	"github.com/umn-ece-sartorilabs/MOTION/p2p"
)

type sessionState int

const (
	stateBuilding sessionState = iota
	stateExecuted
	stateClosed
)

type opcode int

const (
	opIn opcode = iota
	opAdd
	opMul
	opGt
	opPack
	opUnpack
	opOut
)

type instr struct {
	op     opcode
	a      int
	b      int
	out    int
	outs   []int
	ins    []int
	owner  int
	data   []uint8
	n      int
	result *Result
}

// Session is one party's handle to a two-party computation. Graph
// calls (In, Add, Mul, Gt, Simdify, Unsimdify, Out) only record
// operations; Run executes the recorded program in lock-step with the
// peer. A session executes exactly one program.
type Session struct {
	conn     *p2p.Conn
	id       int
	deal     *dealer
	state    sessionState
	prog     []instr
	numWires int
	wires    [][]uint8
}

// NewSession creates a new computation session on top of an
// established connection. Party 0 samples the correlated-randomness
// seed and sends it to party 1.
func NewSession(conn *p2p.Conn, id int) (*Session, error) {
	if id != 0 && id != 1 {
		return nil, fmt.Errorf("invalid party id %d", id)
	}

	var seed []byte
	if id == 0 {
		seed = make([]byte, 32)
		if _, err := rand.Read(seed); err != nil {
			return nil, err
		}
		if err := conn.SendData(seed); err != nil {
			return nil, err
		}
		if err := conn.Flush(); err != nil {
			return nil, err
		}
	} else {
		var err error
		seed, err = conn.ReceiveData()
		if err != nil {
			return nil, err
		}
	}
	deal, err := newDealer(seed, id)
	if err != nil {
		return nil, err
	}

	return &Session{
		conn: conn,
		id:   id,
		deal: deal,
	}, nil
}

// ID returns this party's id.
func (s *Session) ID() int {
	return s.id
}

// Stats returns the I/O statistics of the underlying connection.
func (s *Session) Stats() p2p.IOStats {
	return s.conn.Stats
}

// Close tears the session down and closes the connection. It is safe
// to call on every exit path.
func (s *Session) Close() error {
	if s.state == stateClosed {
		return nil
	}
	s.state = stateClosed
	return s.conn.Close()
}

func (s *Session) wire() int {
	w := s.numWires
	s.numWires++
	return w
}

// In shares the input vector vec owned by the argument party. Every
// party must call In for every logical input; parties other than the
// owner pass a same-length all-zero placeholder.
func (s *Session) In(vec []uint8, owner int) (Share, error) {
	if s.state != stateBuilding {
		return Share{}, ErrSessionExecuted
	}
	if owner != 0 && owner != 1 {
		return Share{}, fmt.Errorf("invalid input owner %d", owner)
	}
	in := instr{
		op:    opIn,
		owner: owner,
		n:     len(vec),
		out:   s.wire(),
	}
	if owner == s.id {
		in.data = append([]uint8(nil), vec...)
	}
	s.prog = append(s.prog, in)

	return Share{wire: in.out, n: in.n, kind: Arith}, nil
}

func (s *Session) binop(op opcode, a, b Share) (Share, error) {
	if s.state != stateBuilding {
		return Share{}, ErrSessionExecuted
	}
	if a.n != b.n {
		return Share{}, fmt.Errorf("%w: %d vs %d elements",
			ErrShapeMismatch, a.n, b.n)
	}
	out := s.wire()
	s.prog = append(s.prog, instr{
		op:  op,
		a:   a.wire,
		b:   b.wire,
		n:   a.n,
		out: out,
	})
	kind := Arith
	if op == opGt {
		kind = Bit
	}
	return Share{wire: out, n: a.n, kind: kind}, nil
}

// Add returns the element-wise sum of the argument shares.
func (s *Session) Add(a, b Share) (Share, error) {
	return s.binop(opAdd, a, b)
}

// Mul returns the element-wise product of the argument shares.
func (s *Session) Mul(a, b Share) (Share, error) {
	return s.binop(opMul, a, b)
}

// Gt returns the element-wise unsigned comparison a > b as a Bit
// share holding 0 or 1 per element.
func (s *Session) Gt(a, b Share) (Share, error) {
	return s.binop(opGt, a, b)
}

// Simdify packs the argument shares into a single share whose
// element count is the sum of the arguments'.
func (s *Session) Simdify(shares []Share) (Share, error) {
	if s.state != stateBuilding {
		return Share{}, ErrSessionExecuted
	}
	if len(shares) == 0 {
		return Share{}, ErrEmptyShare
	}
	var n int
	var ins []int
	kind := shares[0].kind
	for _, sh := range shares {
		if sh.kind != kind {
			return Share{}, ErrKindMismatch
		}
		n += sh.n
		ins = append(ins, sh.wire)
	}
	out := s.wire()
	s.prog = append(s.prog, instr{
		op:  opPack,
		ins: ins,
		n:   n,
		out: out,
	})
	return Share{wire: out, n: n, kind: kind}, nil
}

// Unsimdify unpacks the argument share into its scalar elements.
func (s *Session) Unsimdify(a Share) ([]Share, error) {
	if s.state != stateBuilding {
		return nil, ErrSessionExecuted
	}
	if a.n == 0 {
		return nil, ErrEmptyShare
	}
	outs := make([]int, a.n)
	result := make([]Share, a.n)
	for i := 0; i < a.n; i++ {
		outs[i] = s.wire()
		result[i] = Share{wire: outs[i], n: 1, kind: a.kind}
	}
	s.prog = append(s.prog, instr{
		op:   opUnpack,
		a:    a.wire,
		n:    a.n,
		outs: outs,
	})
	return result, nil
}

// Out queues the argument share for revealing. The result becomes
// available after Run.
func (s *Session) Out(a Share) (*Result, error) {
	if s.state != stateBuilding {
		return nil, ErrSessionExecuted
	}
	result := &Result{wire: a.wire}
	s.prog = append(s.prog, instr{
		op:     opOut,
		a:      a.wire,
		n:      a.n,
		result: result,
	})
	return result, nil
}
